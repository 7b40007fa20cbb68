package scaffold

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/types"
)

// Outcome reports what the Emitter did with a path
type Outcome int

const (
	// Failed is returned with every error; nothing can be assumed about the path
	Failed Outcome = iota
	// Created means a new file was written
	Created
	// Skipped means the file already existed and was left untouched
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name in JSON output
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Emitter writes new files without ever replacing existing ones
type Emitter struct {
	fs types.FS
}

// NewEmitter returns an Emitter writing through fs
func NewEmitter(fs types.FS) *Emitter {
	return &Emitter{fs: fs}
}

// Emit creates path with content. Missing parent directories are created.
// An existing path yields Skipped, including one created by another process
// between the existence check and the exclusive create.
func (e *Emitter) Emit(path, content string) (Outcome, error) {
	log := logging.GetLogger("scaffold.emit")

	if _, err := e.fs.Stat(path); err == nil {
		log.Debug().Str("path", path).Msg("File exists, skipping")
		return Skipped, nil
	}

	dir := filepath.Dir(path)
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return Failed, errors.Wrapf(err, errors.ErrDirCreate, "error creating %s", dir).
			WithDetail("path", dir)
	}

	f, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			log.Debug().Str("path", path).Msg("File appeared before create, skipping")
			return Skipped, nil
		}
		return Failed, errors.Wrapf(err, errors.ErrFileOpen, "cannot open %s", path).
			WithDetail("path", path)
	}

	if _, err := f.Write([]byte(content)); err != nil {
		_ = f.Close()
		return Failed, errors.Wrapf(err, errors.ErrFileWrite, "error writing %s", path).
			WithDetail("path", path)
	}

	if err := f.Close(); err != nil {
		return Failed, errors.Wrapf(err, errors.ErrFileClose, "error closing %s", path).
			WithDetail("path", path)
	}

	log.Debug().Str("path", path).Int("bytes", len(content)).Msg("Created file")
	return Created, nil
}
