package buffer

import "errors"

// Sentinel errors returned by Document operations.
var (
	// ErrLineTooLong is returned when line content exceeds MaxLineLength bytes.
	ErrLineTooLong = errors.New("line too long")

	// ErrFileTooLarge is returned when a document would exceed MaxFileSize bytes.
	ErrFileTooLarge = errors.New("file too large")

	// ErrLineLimitExceeded is returned when an insert position is past the end.
	ErrLineLimitExceeded = errors.New("line number too large")

	// ErrLineNotFound is returned when a position names no existing line.
	ErrLineNotFound = errors.New("line not found")

	// ErrInvalidRange is returned when a clamped range contains no lines.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmbeddedNewline is returned when line text contains a newline
	// before its terminator.
	ErrEmbeddedNewline = errors.New("line contains a newline")
)
