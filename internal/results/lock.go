package results

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"singsync/internal/media"
)

// lockRetryInterval is how often a blocked lock acquisition re-polls.
const lockRetryInterval = 100 * time.Millisecond

// Locker serializes concurrent resolutions of the same media id across
// processes with a per-media advisory file lock. Different media ids never
// contend.
type Locker struct {
	layout media.Layout
}

// NewLocker builds a locker over the media layout.
func NewLocker(layout media.Layout) *Locker {
	return &Locker{layout: layout}
}

// Acquire blocks until the per-media lock is held or the context expires.
// The returned release function is safe to call once.
func (l *Locker) Acquire(ctx context.Context, mediaID string) (func(), error) {
	if _, err := l.layout.EnsureMediaDir(mediaID); err != nil {
		return nil, fmt.Errorf("acquire media lock: %w", err)
	}
	lock := flock.New(filepath.Join(l.layout.MediaDir(mediaID), ".resolve.lock"))
	ok, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquire media lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire media lock: not acquired")
	}
	return func() { _ = lock.Unlock() }, nil
}
