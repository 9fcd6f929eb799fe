// Package history records the command lines entered in editing sessions.
package history

import "errors"

// ErrClosed is returned by a store used after Close.
var ErrClosed = errors.New("history store is closed")

// Cmd is one recorded command line.
type Cmd struct {
	Seq  int
	Text string
}

// Store keeps command lines in the order they were entered.
type Store interface {
	// AddCmd records text and returns its sequence number.
	AddCmd(text string) (int, error)
	// Cmds returns up to limit of the most recent commands, oldest first.
	Cmds(limit int) ([]Cmd, error)
	Close() error
}

// Mem is an in-memory Store, used when no history file is configured.
type Mem struct {
	cmds   []Cmd
	closed bool
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem { return &Mem{} }

func (m *Mem) AddCmd(text string) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	seq := len(m.cmds) + 1
	m.cmds = append(m.cmds, Cmd{Seq: seq, Text: text})
	return seq, nil
}

func (m *Mem) Cmds(limit int) ([]Cmd, error) {
	if m.closed {
		return nil, ErrClosed
	}
	return lastN(m.cmds, limit), nil
}

func (m *Mem) Close() error {
	m.closed = true
	return nil
}

func lastN(cmds []Cmd, limit int) []Cmd {
	if limit <= 0 || len(cmds) == 0 {
		return nil
	}
	if limit > len(cmds) {
		limit = len(cmds)
	}
	out := make([]Cmd, limit)
	copy(out, cmds[len(cmds)-limit:])
	return out
}
