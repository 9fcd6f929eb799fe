// Package persist moves documents between storage and memory. Files are read
// in fixed-size chunks and split on '\n'; saving replaces the backing file
// wholesale.
package persist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"example.com/lineedit/pkg/buffer"
)

// ChunkSize is the number of bytes requested per read.
const ChunkSize = 512

// ErrOpen is returned when a file cannot be opened or recreated.
var ErrOpen = errors.New("cannot open file")

// Load reads r to EOF and splits it into lines. A line may span any number of
// chunks. Loading stops with buffer.ErrFileTooLarge as soon as the ingested
// byte count passes buffer.MaxFileSize.
func Load(r io.Reader) (*buffer.Document, error) {
	chunk := make([]byte, ChunkSize)
	var (
		lines   [][]byte
		partial []byte
		total   int
	)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			total += n
			if total > buffer.MaxFileSize {
				return nil, fmt.Errorf("%w: more than %d bytes", buffer.ErrFileTooLarge, buffer.MaxFileSize)
			}
			data := chunk[:n]
			for {
				i := bytes.IndexByte(data, '\n')
				if i < 0 {
					partial = append(partial, data...)
					break
				}
				line := make([]byte, 0, len(partial)+i+1)
				line = append(line, partial...)
				line = append(line, data[:i+1]...)
				lines = append(lines, line)
				partial = partial[:0]
				data = data[i+1:]
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(partial) > 0 {
		lines = append(lines, bytes.Clone(partial))
	}
	return buffer.NewDocument(lines), nil
}

// Write writes every line of doc to w in order.
func Write(w io.Writer, doc buffer.LineStorage) error {
	bw := bufio.NewWriter(w)
	for pos := 1; pos <= doc.Len(); pos++ {
		if _, err := bw.Write(doc.Line(pos)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Open opens path on fs and loads its content. On success the handle stays
// open and is returned with the document.
func Open(fs FS, path string) (*buffer.Document, File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	doc, err := Load(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return doc, f, nil
}

// Save closes the current handle (which may be nil), deletes path, recreates
// it and writes doc. It returns a fresh open handle. doc is never modified.
func Save(fs FS, current File, path string, doc buffer.LineStorage) (File, error) {
	if current != nil {
		_ = current.Close()
	}
	if err := fs.Remove(path); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	if err := Write(f, doc); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return f, nil
}
