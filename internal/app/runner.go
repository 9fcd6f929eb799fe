package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"example.com/lineedit/pkg/config"
	"example.com/lineedit/pkg/display"
	"example.com/lineedit/pkg/editor"
	"example.com/lineedit/pkg/history"
	"example.com/lineedit/pkg/logs"
)

// MaxInputLine is the longest command line accepted, excluding the newline.
const MaxInputLine = 4096

var errInputTooLong = errors.New("input line too long")

// Runner reads commands line by line and applies them to an editing session.
type Runner struct {
	Out         io.Writer
	Editor      *editor.Editor
	Formatter   *display.Formatter
	History     history.Store // nil disables HISTORY
	HistorySize int
	Logger      *logs.Logger
	Prompt      string
	Echo        bool // repeat each input line, for non-terminal input

	in   *bufio.Reader
	quit bool
}

// New creates a Runner with default settings reading from in and writing to
// out.
func New(in io.Reader, out io.Writer, ed *editor.Editor) *Runner {
	return &Runner{
		Out:         out,
		Editor:      ed,
		Formatter:   display.New(display.DefaultWidth),
		HistorySize: 10,
		Logger:      ed.Logger,
		Prompt:      config.DefaultPrompt,
		in:          bufio.NewReaderSize(in, MaxInputLine+1),
	}
}

// Configure applies user configuration.
func (r *Runner) Configure(cfg *config.Config) {
	r.Prompt = cfg.Prompt
	r.Formatter = display.New(cfg.WrapWidth)
	r.HistorySize = cfg.History.Size
}

// Run reads and executes commands until QUIT succeeds or input ends. Command
// errors are reported and never end the session; only a failing reader does.
func (r *Runner) Run() error {
	r.Logger.Event("session.start", map[string]any{"file": r.Editor.FilePath})
	defer func() {
		r.Logger.Event("session.end", map[string]any{"file": r.Editor.FilePath, "dirty": r.Editor.Dirty})
	}()
	r.quit = false
	for !r.quit {
		fmt.Fprint(r.Out, r.Prompt)
		line, err := r.readLine()
		switch {
		case errors.Is(err, errInputTooLong):
			fmt.Fprintln(r.Out)
			r.printError(err)
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.Out)
			if r.Editor.Dirty {
				fmt.Fprintln(r.Out, "warning: end of input, unsaved changes discarded")
			}
			return nil
		case err != nil:
			return err
		}
		if r.Echo {
			fmt.Fprintln(r.Out, line)
		}
		r.Exec(line)
	}
	return nil
}

// Exec runs a single command line.
func (r *Runner) Exec(line string) {
	c := newCursor(line)
	word := c.next()
	if word == "" {
		return
	}
	r.record(line)
	cmd, ok := lookup(word)
	if !ok {
		fmt.Fprintf(r.Out, "unknown command %q, type HELP for a list\n", word)
		r.Logger.Event("command", map[string]any{"verb": word, "ok": false, "error": "unknown command"})
		return
	}
	err := cmd.run(r, &c)
	fields := map[string]any{"verb": cmd.name, "ok": err == nil}
	if err != nil {
		fields["error"] = err.Error()
	}
	r.Logger.Event("command", fields)
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintf(r.Out, "usage: %s\n", cmd.synopsis())
	case err != nil:
		r.printError(err)
	}
}

// Quitting reports whether the last command ended the session.
func (r *Runner) Quitting() bool { return r.quit }

// PrintLoaded reports the size of the current document after a load.
func (r *Runner) PrintLoaded() {
	doc := r.Editor.Doc
	fmt.Fprintf(r.Out, "%d lines (%d bytes) read from %s\n", doc.Len(), doc.Size(), r.Editor.FilePath)
}

func (r *Runner) printError(err error) {
	fmt.Fprintf(r.Out, "error: %v\n", err)
}

func (r *Runner) record(line string) {
	if r.History == nil {
		return
	}
	if _, err := r.History.AddCmd(line); err != nil {
		r.Logger.Event("history.error", map[string]any{"error": err.Error()})
	}
}

// readLine returns the next input line without its terminator. Lines longer
// than MaxInputLine are consumed and reported as errInputTooLong.
func (r *Runner) readLine() (string, error) {
	tooLong := false
	for {
		b, err := r.in.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			tooLong = true
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if tooLong {
			return "", errInputTooLong
		}
		if err != nil && len(b) == 0 {
			return "", io.EOF
		}
		line := strings.TrimSuffix(string(b), "\n")
		return strings.TrimSuffix(line, "\r"), nil
	}
}
