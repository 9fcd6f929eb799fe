package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"example.com/lineedit/pkg/address"
	"example.com/lineedit/pkg/search"
)

var errUsage = errors.New("wrong number of arguments")

var errNoHistory = errors.New("command history is disabled")

type command struct {
	name    string
	aliases []string
	args    string
	summary string
	run     func(r *Runner, c *cursor) error
}

func (cmd *command) synopsis() string {
	if cmd.args == "" {
		return cmd.name
	}
	return cmd.name + " " + cmd.args
}

var (
	commands []*command
	byName   map[string]*command
)

func init() {
	commands = []*command{
		{name: "PRINT", summary: "print the whole document with line numbers", run: cmdPrint},
		{name: "LIST", args: "<range>", summary: "print the lines in range", run: cmdList},
		{name: "APPEND", aliases: []string{"END", "@END"}, args: "<text>", summary: "add a line at the end", run: cmdAppend},
		{name: "INSERT", aliases: []string{"ADD", "ADD<"}, args: "<pos> <text>", summary: "insert a line before line pos", run: cmdInsert},
		{name: "REPLACE", aliases: []string{"EDIT"}, args: "<pos> <text>", summary: "replace the content of line pos", run: cmdReplace},
		{name: "DROP", args: "<range>", summary: "delete the lines in range, after confirmation", run: cmdDrop},
		{name: "DUPLICATE", aliases: []string{"COPY"}, args: "<range> <pos>", summary: "copy the lines in range after line pos (0 for the top)", run: cmdDuplicate},
		{name: "FIND", args: "<text>", summary: "list the lines containing text", run: cmdFind},
		{name: "OPEN", args: "<file>", summary: "edit another file", run: cmdOpen},
		{name: "SAVE", args: "[file]", summary: "write the document, to file if given", run: cmdSave},
		{name: "HISTORY", args: "[n]", summary: "show the last n commands", run: cmdHistory},
		{name: "HELP", args: "[command]", summary: "describe commands", run: cmdHelp},
		{name: "QUIT", summary: "leave the editor, offering to save changes", run: cmdQuit},
	}
	byName = make(map[string]*command)
	for _, cmd := range commands {
		byName[cmd.name] = cmd
		for _, a := range cmd.aliases {
			byName[a] = cmd
		}
	}
}

// lookup finds a command by name or alias, ignoring case.
func lookup(word string) (*command, bool) {
	cmd, ok := byName[strings.ToUpper(word)]
	return cmd, ok
}

func cmdPrint(r *Runner, c *cursor) error {
	if !c.done() {
		return errUsage
	}
	doc := r.Editor.Doc
	return r.Formatter.WriteRange(r.Out, doc, 1, doc.Len())
}

func cmdList(r *Runner, c *cursor) error {
	tok := c.next()
	if tok == "" || !c.done() {
		return errUsage
	}
	doc := r.Editor.Doc
	rng, err := address.Resolve(tok, doc.Len())
	if err != nil {
		return err
	}
	return r.Formatter.WriteRange(r.Out, doc, rng.Begin, rng.End)
}

func cmdAppend(r *Runner, c *cursor) error {
	text, ok := c.rest()
	if !ok {
		return errUsage
	}
	if err := r.Editor.Append(text); err != nil {
		return err
	}
	fmt.Fprintln(r.Out, "Line added")
	return nil
}

func cmdInsert(r *Runner, c *cursor) error {
	tok := c.next()
	text, ok := c.rest()
	if tok == "" || !ok {
		return errUsage
	}
	pos, err := address.Line(tok, r.Editor.Doc.Len())
	if err != nil {
		return err
	}
	if err := r.Editor.Insert(pos, text); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "Line inserted at %d\n", pos)
	return nil
}

func cmdReplace(r *Runner, c *cursor) error {
	tok := c.next()
	text, ok := c.rest()
	if tok == "" || !ok {
		return errUsage
	}
	pos, err := address.Line(tok, r.Editor.Doc.Len())
	if err != nil {
		return err
	}
	if err := r.Editor.Replace(pos, text); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "Line %d replaced\n", pos)
	return nil
}

func cmdDrop(r *Runner, c *cursor) error {
	tok := c.next()
	if tok == "" || !c.done() {
		return errUsage
	}
	rng, err := address.Resolve(tok, r.Editor.Doc.Len())
	if err != nil {
		return err
	}
	q := fmt.Sprintf("Are you sure you want to drop lines %d to %d? (y/N) ", rng.Begin, rng.End)
	if rng.Single() {
		q = fmt.Sprintf("Are you sure you want to drop line %d? (y/N) ", rng.Begin)
	}
	ok, err := r.confirm(q, false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(r.Out, "Nothing dropped")
		return nil
	}
	if _, _, err := r.Editor.Remove(rng.Begin, rng.End); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "%d line(s) dropped\n", rng.Count())
	return nil
}

func cmdDuplicate(r *Runner, c *cursor) error {
	rtok := c.next()
	dtok := c.next()
	if rtok == "" || dtok == "" || !c.done() {
		return errUsage
	}
	n := r.Editor.Doc.Len()
	rng, err := address.Resolve(rtok, n)
	if err != nil {
		return err
	}
	dest, err := address.Line(dtok, n)
	if err != nil {
		return err
	}
	copied, err := r.Editor.Duplicate(rng.Begin, rng.End, dest)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "%d line(s) copied after line %d\n", copied, dest)
	return nil
}

func cmdFind(r *Runner, c *cursor) error {
	text, ok := c.rest()
	if !ok || text == "" {
		return errUsage
	}
	found := search.Lines(r.Editor.Doc, text)
	fmt.Fprintf(r.Out, "%s is found on line(s): %s\n", text, search.Format(found))
	return nil
}

func cmdOpen(r *Runner, c *cursor) error {
	name := c.next()
	if name == "" || !c.done() {
		return errUsage
	}
	if r.Editor.Dirty {
		save, err := r.confirm("Save modified file? (Y/n) ", true)
		if err != nil {
			return err
		}
		if save {
			if err := r.save(""); err != nil {
				return err
			}
		}
	}
	if err := r.Editor.Open(name); err != nil {
		return err
	}
	r.PrintLoaded()
	return nil
}

func cmdSave(r *Runner, c *cursor) error {
	name := c.next()
	if !c.done() {
		return errUsage
	}
	return r.save(name)
}

func (r *Runner) save(name string) error {
	if err := r.Editor.Save(name); err != nil {
		return err
	}
	doc := r.Editor.Doc
	fmt.Fprintf(r.Out, "%d lines (%d bytes) written to %s\n", doc.Len(), doc.Size(), r.Editor.FilePath)
	return nil
}

func cmdHistory(r *Runner, c *cursor) error {
	n := r.HistorySize
	if tok := c.next(); tok != "" {
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 || !c.done() {
			return errUsage
		}
		n = v
	}
	if r.History == nil {
		return errNoHistory
	}
	cmds, err := r.History.Cmds(n)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	for _, cmd := range cmds {
		fmt.Fprintf(r.Out, "%5d  %s\n", cmd.Seq, cmd.Text)
	}
	return nil
}

func cmdHelp(r *Runner, c *cursor) error {
	word := c.next()
	if !c.done() {
		return errUsage
	}
	if word == "" {
		for _, cmd := range commands {
			fmt.Fprintf(r.Out, "  %-24s %s\n", cmd.synopsis(), cmd.summary)
		}
		fmt.Fprintln(r.Out, "Ranges are N or B:E; either side of ':' may be omitted and negative numbers count from the last line.")
		return nil
	}
	cmd, ok := lookup(word)
	if !ok {
		return fmt.Errorf("unknown command %q", word)
	}
	fmt.Fprintf(r.Out, "%s\n  %s\n", cmd.synopsis(), cmd.summary)
	if len(cmd.aliases) > 0 {
		fmt.Fprintf(r.Out, "  aliases: %s\n", strings.Join(cmd.aliases, ", "))
	}
	return nil
}

func cmdQuit(r *Runner, c *cursor) error {
	if !c.done() {
		return errUsage
	}
	if r.Editor.Dirty {
		save, err := r.confirm("Save before quitting? (Y/n) ", true)
		if err != nil {
			return err
		}
		if save {
			if err := r.save(""); err != nil {
				return err
			}
		}
	}
	r.quit = true
	return nil
}
