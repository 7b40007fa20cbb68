package plan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/gofrs/flock"
)

// LockRetryDelay is how often a busy plan lock is retried
const LockRetryDelay = 50 * time.Millisecond

// LockFunc acquires an exclusive lock guarding the plan at path and returns
// the function releasing it.
type LockFunc func(ctx context.Context, path string) (func() error, error)

// FileLock takes an advisory lock on <path>.lock beside the plan, waiting
// until ctx is done. The lock file is left in place after unlocking.
func FileLock(ctx context.Context, path string) (func() error, error) {
	return lockFile(ctx, path, path+".lock")
}

// LockDir returns a LockFunc keeping lock files in dir instead of beside the
// plan. Each plan gets its own file, named after a digest of its absolute
// path.
func LockDir(dir string) LockFunc {
	return func(ctx context.Context, path string) (func() error, error) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "error creating %s", dir).
				WithDetail("path", dir)
		}
		return lockFile(ctx, path, LockPath(dir, abs))
	}
}

// LockPath is the lock file LockDir uses in dir for the plan at abs
func LockPath(dir, abs string) string {
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, hex.EncodeToString(sum[:8])+".lock")
}

func lockFile(ctx context.Context, path, lockPath string) (func() error, error) {
	fl := flock.New(lockPath)

	ok, err := fl.TryLockContext(ctx, LockRetryDelay)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPlanLock, "cannot lock plan %s", path).
			WithDetail("path", lockPath)
	}
	if !ok {
		return nil, errors.Newf(errors.ErrPlanLock, "plan %s is locked by another process", path).
			WithDetail("path", lockPath)
	}
	return fl.Unlock, nil
}

// NoLock is used where no other process can reach the plan, such as
// in-memory filesystems.
func NoLock(context.Context, string) (func() error, error) {
	return func() error { return nil }, nil
}

// Store reads and writes plan files through a types.FS
type Store struct {
	fs   types.FS
	lock LockFunc
}

// NewStore returns a Store. A nil lock means FileLock.
func NewStore(fs types.FS, lock LockFunc) *Store {
	if lock == nil {
		lock = FileLock
	}
	return &Store{fs: fs, lock: lock}
}

// Load reads the plan at path, or returns a new plan for project when the
// file does not exist.
func (s *Store) Load(path, project string) (*Plan, error) {
	log := logging.GetLogger("plan")

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("No plan file, starting a new one")
			return New(project), nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read plan %s", path).
			WithDetail("path", path)
	}

	p, err := Parse(string(data))
	if err != nil {
		if se, ok := err.(*errors.SchemerError); ok {
			return nil, se.WithDetail("path", path)
		}
		return nil, err
	}
	return p, nil
}

// Append adds change to the plan at path under the plan lock. The plan is
// reloaded once locked so concurrent additions are not lost.
func (s *Store) Append(ctx context.Context, path, project string, change types.Change) (*Plan, error) {
	log := logging.GetLogger("plan")

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "error creating %s", dir).
			WithDetail("path", dir)
	}

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to release plan lock")
		}
	}()

	p, err := s.Load(path, project)
	if err != nil {
		return nil, err
	}
	if err := p.Add(change); err != nil {
		return nil, err
	}
	if err := s.write(path, p); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Str("change", change.Name).Msg("Plan updated")
	return p, nil
}

// write replaces the plan through a temporary file and a rename
func (s *Store) write(path string, p *Plan) error {
	tmp := path + ".tmp"
	if err := s.fs.WriteFile(tmp, []byte(p.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "error writing %s", tmp).
			WithDetail("path", tmp)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "error replacing %s", path).
			WithDetail("path", path)
	}
	return nil
}
