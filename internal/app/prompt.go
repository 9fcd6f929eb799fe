package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirm asks a yes/no question. An answer starting with y or Y is yes, one
// starting with n or N is no; anything else, including end of input, gives
// def.
func (r *Runner) confirm(question string, def bool) (bool, error) {
	fmt.Fprint(r.Out, question)
	line, err := r.readLine()
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, errInputTooLong):
		fmt.Fprintln(r.Out)
		return def, nil
	case err != nil:
		return false, err
	}
	if r.Echo {
		fmt.Fprintln(r.Out, line)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	switch answer[0] {
	case 'y', 'Y':
		return true, nil
	case 'n', 'N':
		return false, nil
	}
	return def, nil
}
