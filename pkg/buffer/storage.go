package buffer

// LineStorage defines the read-only view of a document used by renderers
// and searches. Positions are 1-based line numbers.
type LineStorage interface {
	Len() int
	Size() int
	Line(pos int) []byte
}
