package editor

import (
	"errors"

	"example.com/lineedit/pkg/buffer"
	"example.com/lineedit/pkg/logs"
	"example.com/lineedit/pkg/persist"
)

// ErrNoFileName is returned by Save when neither an explicit name nor a
// current file name is available.
var ErrNoFileName = errors.New("no file name")

// Editor holds the state of one editing session: the document, the file it
// was loaded from, the open storage handle and the dirty flag.
type Editor struct {
	FS       persist.FS
	Doc      *buffer.Document
	FilePath string
	Dirty    bool
	Logger   *logs.Logger

	file persist.File
}

// New creates an Editor with an empty document. A nil fs means the host
// file system.
func New(fs persist.FS, logger *logs.Logger) *Editor {
	if fs == nil {
		fs = persist.OS{}
	}
	return &Editor{FS: fs, Doc: buffer.New(), Logger: logger}
}

// Open loads path and makes it the current document. On failure the current
// document, file name and dirty flag are kept.
func (e *Editor) Open(path string) error {
	e.Logger.Event("open.attempt", map[string]any{"file": path})
	doc, f, err := persist.Open(e.FS, path)
	if err != nil {
		e.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	if e.file != nil {
		_ = e.file.Close()
	}
	e.Doc = doc
	e.file = f
	e.FilePath = path
	e.Dirty = false
	e.Logger.Event("open.success", map[string]any{"file": path, "lines": doc.Len(), "bytes": doc.Size()})
	return nil
}

// Save writes the document to path, or to the current file name when path
// is empty. A successful save to a new name makes it the current file name.
// On failure the document and dirty flag are untouched.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.FilePath
	}
	if path == "" {
		return ErrNoFileName
	}
	e.Logger.Event("save.attempt", map[string]any{"file": path})
	f, err := persist.Save(e.FS, e.file, path, e.Doc)
	if err != nil {
		// persist.Save has already closed the previous handle.
		e.file = nil
		e.Logger.Event("save.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	e.file = f
	e.FilePath = path
	e.Dirty = false
	e.Logger.Event("save.success", map[string]any{"file": path, "lines": e.Doc.Len(), "bytes": e.Doc.Size()})
	return nil
}

// Close releases the storage handle.
func (e *Editor) Close() error {
	if e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	return err
}

func (e *Editor) Insert(pos int, text string) error {
	return e.touch(e.Doc.InsertAt(pos, text))
}

func (e *Editor) Append(text string) error {
	return e.touch(e.Doc.AppendLine(text))
}

func (e *Editor) Replace(pos int, text string) error {
	return e.touch(e.Doc.ReplaceAt(pos, text))
}

// Remove deletes the clamped range and returns it.
func (e *Editor) Remove(begin, end int) (int, int, error) {
	b, en, err := e.Doc.RemoveRange(begin, end)
	return b, en, e.touch(err)
}

// Duplicate copies the range after dest and returns the number of copies.
func (e *Editor) Duplicate(begin, end, dest int) (int, error) {
	n, err := e.Doc.DuplicateRange(begin, end, dest)
	return n, e.touch(err)
}

// touch marks the session dirty after a successful mutation.
func (e *Editor) touch(err error) error {
	if err == nil {
		e.Dirty = true
	}
	return err
}
