// Command editor is a line-oriented text editor.
//
//	editor <filename>
//
// Commands are read one per line from standard input; type HELP for a list.
package main

import (
	"fmt"
	"io"
	"os"

	"example.com/lineedit/internal/app"
	"example.com/lineedit/pkg/config"
	"example.com/lineedit/pkg/editor"
	"example.com/lineedit/pkg/history"
	"example.com/lineedit/pkg/logs"
	"example.com/lineedit/pkg/persist"
	"github.com/mattn/go-isatty"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: editor <filename>")
		return exitUsage
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(stderr, "editor: %v\n", err)
		return exitError
	}
	logger := logs.NewFromEnv()
	defer logger.Close()

	ed := editor.New(persist.OS{}, logger)
	if err := ed.Open(args[0]); err != nil {
		fmt.Fprintf(stderr, "editor: %v\n", err)
		return exitError
	}
	defer ed.Close()

	r := app.New(stdin, stdout, ed)
	r.Configure(cfg)
	fd := stdin.Fd()
	r.Echo = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			fmt.Fprintf(stderr, "editor: warning: %v; command history disabled\n", err)
			logger.Event("history.error", map[string]any{"error": err.Error()})
		} else {
			defer store.Close()
			r.History = store
		}
	}

	fmt.Fprint(stdout, "editor: ")
	r.PrintLoaded()
	if err := r.Run(); err != nil {
		fmt.Fprintf(stderr, "editor: %v\n", err)
		return exitError
	}
	return exitOK
}
