package testutil

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/schemer/pkg/types"
)

// Operation names understood by FaultyFS
const (
	OpStat     = "stat"
	OpReadFile = "readfile"
	OpMkdirAll = "mkdirall"
	OpOpenFile = "openfile"
	OpWrite    = "write"
	OpClose    = "close"
	OpRename   = "rename"
)

// FaultyFS wraps a types.FS and fails selected operations on selected paths
type FaultyFS struct {
	types.FS
	errs map[string]error
}

// NewFaultyFS wraps base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base, errs: make(map[string]error)}
}

// Fail makes op on path return err
func (f *FaultyFS) Fail(op, path string, err error) {
	f.errs[op+":"+filepath.Clean(path)] = err
}

func (f *FaultyFS) injected(op, path string) error {
	return f.errs[op+":"+filepath.Clean(path)]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.injected(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.injected(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.injected(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.injected(OpRename, newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.injected(OpOpenFile, name); err != nil {
		return nil, err
	}
	w, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyWriter{w: w, writeErr: f.injected(OpWrite, name), closeErr: f.injected(OpClose, name)}, nil
}

type faultyWriter struct {
	w        io.WriteCloser
	writeErr error
	closeErr error
}

func (w *faultyWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.w.Write(p)
}

func (w *faultyWriter) Close() error {
	err := w.w.Close()
	if w.closeErr != nil {
		return w.closeErr
	}
	return err
}
