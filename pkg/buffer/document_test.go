package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func docOf(lines ...string) *Document {
	ls := make([][]byte, len(lines))
	for i, l := range lines {
		ls[i] = []byte(l)
	}
	return NewDocument(ls)
}

func linesOf(d *Document) []string {
	var out []string
	for _, l := range d.Lines() {
		out = append(out, string(l))
	}
	return out
}

// checkInvariants verifies the count and terminator invariants.
func checkInvariants(t *testing.T, d *Document) {
	t.Helper()
	sum := 0
	for i, l := range d.lines {
		sum += len(l)
		if i < len(d.lines)-1 && (len(l) == 0 || l[len(l)-1] != '\n') {
			t.Fatalf("line %d is not terminated: %q", i+1, l)
		}
	}
	if d.Len() != len(d.lines) {
		t.Fatalf("expected Len %d, got %d", len(d.lines), d.Len())
	}
	if d.Size() != sum {
		t.Fatalf("expected Size %d, got %d", sum, d.Size())
	}
}

func TestDocument_InsertAt(t *testing.T) {
	d := docOf("b\n")
	if err := d.InsertAt(1, "a"); err != nil {
		t.Fatalf("insert at head: %v", err)
	}
	if err := d.InsertAt(3, "c\n"); err != nil {
		t.Fatalf("insert at tail: %v", err)
	}
	if err := d.InsertAt(2, "ab"); err != nil {
		t.Fatalf("insert in middle: %v", err)
	}
	want := []string{"a\n", "ab\n", "b\n", "c\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	checkInvariants(t, d)
}

func TestDocument_InsertAt_NormalizesTrailingNewlines(t *testing.T) {
	d := New()
	if err := d.InsertAt(1, "x\n\n\n"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := d.String(); got != "x\n" {
		t.Fatalf("expected %q, got %q", "x\n", got)
	}
	checkInvariants(t, d)
}

func TestDocument_InsertAt_LineTooLong(t *testing.T) {
	d := docOf("a\n", "b\n")
	before := d.String()
	err := d.InsertAt(1, strings.Repeat("x", 81))
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if d.Len() != 2 || d.Size() != 4 || d.String() != before {
		t.Fatalf("document changed after failed insert: len=%d size=%d %q", d.Len(), d.Size(), d.String())
	}
	// exactly 80 bytes is allowed
	if err := d.InsertAt(1, strings.Repeat("x", 80)); err != nil {
		t.Fatalf("80-byte insert failed: %v", err)
	}
	checkInvariants(t, d)
}

func TestDocument_InsertAt_OutOfRange(t *testing.T) {
	d := docOf("a\n")
	for _, pos := range []int{0, -1, 3} {
		if err := d.InsertAt(pos, "x"); !errors.Is(err, ErrLineLimitExceeded) {
			t.Fatalf("pos %d: expected ErrLineLimitExceeded, got %v", pos, err)
		}
	}
	if d.String() != "a\n" {
		t.Fatalf("document changed: %q", d.String())
	}
}

func TestDocument_InsertAt_EmbeddedNewline(t *testing.T) {
	d := New()
	if err := d.InsertAt(1, "a\nb"); !errors.Is(err, ErrEmbeddedNewline) {
		t.Fatalf("expected ErrEmbeddedNewline, got %v", err)
	}
	if d.Len() != 0 {
		t.Fatalf("expected empty document, got %d lines", d.Len())
	}
}

func TestDocument_AppendLine_TerminatesLastLine(t *testing.T) {
	d := docOf("a\n", "b")
	if err := d.AppendLine("c"); err != nil {
		t.Fatalf("append: %v", err)
	}
	want := []string{"a\n", "b\n", "c\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	checkInvariants(t, d)
}

func TestDocument_AppendLine_Empty(t *testing.T) {
	d := New()
	if err := d.AppendLine(""); err != nil {
		t.Fatalf("append: %v", err)
	}
	if d.String() != "\n" {
		t.Fatalf("expected single empty line, got %q", d.String())
	}
	checkInvariants(t, d)
}

func TestDocument_AppendLine_FileTooLarge(t *testing.T) {
	var lines [][]byte
	full := []byte(strings.Repeat("x", 79) + "\n")
	for i := 0; i < MaxFileSize/len(full); i++ {
		lines = append(lines, full)
	}
	d := NewDocument(lines)
	// 71680 / 80 leaves no room for another 80-byte line
	before := d.Size()
	if err := d.AppendLine(strings.Repeat("y", 79)); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if d.Size() != before {
		t.Fatalf("size changed from %d to %d", before, d.Size())
	}
}

func TestDocument_ReplaceAt(t *testing.T) {
	d := docOf("a\n", "b\n", "c")
	if err := d.ReplaceAt(2, "beta"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := d.ReplaceAt(3, "gamma"); err != nil {
		t.Fatalf("replace last: %v", err)
	}
	want := []string{"a\n", "beta\n", "gamma\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	checkInvariants(t, d)

	if err := d.ReplaceAt(4, "x"); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
	if err := d.ReplaceAt(1, strings.Repeat("x", 81)); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("document changed after failures (-want +got):\n%s", diff)
	}
}

func TestDocument_RemoveRange(t *testing.T) {
	d := docOf("a\n", "b\n", "c\n", "d\n", "e\n")
	b, e, err := d.RemoveRange(4, 99)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b != 4 || e != 5 {
		t.Fatalf("expected clamped range 4..5, got %d..%d", b, e)
	}
	if _, _, err := d.RemoveRange(-3, 1); err != nil {
		t.Fatalf("remove head: %v", err)
	}
	want := []string{"b\n", "c\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	checkInvariants(t, d)
}

func TestDocument_RemoveRange_OutsideDocument(t *testing.T) {
	d := docOf("a\n", "b\n", "c\n")
	if _, _, err := d.RemoveRange(4, 10); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, _, err := d.RemoveRange(3, 2); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for reversed range, got %v", err)
	}
	if d.Len() != 3 || d.Size() != 6 {
		t.Fatalf("document changed: len=%d size=%d", d.Len(), d.Size())
	}
}

func TestDocument_DuplicateRange(t *testing.T) {
	d := docOf("a\n", "b\n", "c\n")
	n, err := d.DuplicateRange(1, 2, 3)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 lines copied, got %d", n)
	}
	want := []string{"a\n", "b\n", "c\n", "a\n", "b\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	checkInvariants(t, d)
}

func TestDocument_DuplicateRange_ToHead(t *testing.T) {
	d := docOf("a\n", "b\n", "c\n")
	if _, err := d.DuplicateRange(3, 3, 0); err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	want := []string{"c\n", "a\n", "b\n", "c\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestDocument_DuplicateRange_Independent(t *testing.T) {
	d := docOf("a\n", "b\n")
	if _, err := d.DuplicateRange(1, 1, 2); err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if err := d.ReplaceAt(1, "changed"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := string(d.Line(3)); got != "a\n" {
		t.Fatalf("expected duplicate to keep %q, got %q", "a\n", got)
	}
}

func TestDocument_DuplicateRange_UnterminatedTail(t *testing.T) {
	d := docOf("a\n", "b")
	if _, err := d.DuplicateRange(2, 2, 2); err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	want := []string{"a\n", "b\n", "b\n"}
	if diff := cmp.Diff(want, linesOf(d)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	checkInvariants(t, d)
}

func TestDocument_DuplicateRange_Errors(t *testing.T) {
	d := docOf("a\n", "b\n")
	if _, err := d.DuplicateRange(3, 1, 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := d.DuplicateRange(1, 2, 3); !errors.Is(err, ErrLineLimitExceeded) {
		t.Fatalf("expected ErrLineLimitExceeded, got %v", err)
	}
	if d.Len() != 2 || d.Size() != 4 {
		t.Fatalf("document changed: len=%d size=%d", d.Len(), d.Size())
	}
}

func TestDocument_LineOutOfRange(t *testing.T) {
	d := docOf("a\n")
	if d.Line(0) != nil || d.Line(2) != nil {
		t.Fatalf("expected nil for positions outside the document")
	}
}
