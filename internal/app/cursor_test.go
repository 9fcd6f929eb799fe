package app

import "testing"

func TestCursor_NextAndRest(t *testing.T) {
	c := newCursor("insert  3   two  spaces ")
	if got := c.next(); got != "insert" {
		t.Fatalf("expected verb, got %q", got)
	}
	if got := c.next(); got != "3" {
		t.Fatalf("expected position, got %q", got)
	}
	rest, ok := c.rest()
	if !ok || rest != "  two  spaces " {
		t.Fatalf("expected rest with inner blanks kept, got %q %v", rest, ok)
	}
	if got := c.next(); got != "" {
		t.Fatalf("expected end of line, got %q", got)
	}
}

func TestCursor_RestAtEnd(t *testing.T) {
	c := newCursor("APPEND")
	c.next()
	if _, ok := c.rest(); ok {
		t.Fatalf("expected no field after bare verb")
	}

	c = newCursor("APPEND ")
	c.next()
	if rest, ok := c.rest(); !ok || rest != "" {
		t.Fatalf("expected empty field, got %q %v", rest, ok)
	}

	c = newCursor("APPEND\tx")
	c.next()
	if rest, ok := c.rest(); !ok || rest != "x" {
		t.Fatalf("expected tab to separate, got %q %v", rest, ok)
	}
}

func TestCursor_Done(t *testing.T) {
	c := newCursor("LIST 1:2   ")
	c.next()
	if c.done() {
		t.Fatalf("expected more tokens")
	}
	c.next()
	if !c.done() {
		t.Fatalf("expected only blanks to remain")
	}
	if got := c.next(); got != "" {
		t.Fatalf("done must not consume tokens, got %q", got)
	}
}

func TestCursor_Independent(t *testing.T) {
	a := newCursor("FIND a b")
	b := newCursor("DROP 1")
	a.next()
	b.next()
	if got, _ := a.rest(); got != "a b" {
		t.Fatalf("expected %q, got %q", "a b", got)
	}
	if got := b.next(); got != "1" {
		t.Fatalf("expected %q, got %q", "1", got)
	}
}
