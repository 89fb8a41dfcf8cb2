package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"finos_backend/internal/feature/resolver/domain/entity"
)

// ListingSource supplies alias entries from an exchange listing. Following
// Go convention: interfaces are defined by the consumer (usecase), not the
// provider (adapters).
type ListingSource interface {
	FetchEntries(ctx context.Context) ([]entity.Entry, error)
}

// builtDirectory pairs a directory with its build time for staleness checks.
type builtDirectory struct {
	dir     *entity.Directory
	builtAt time.Time
}

// Store holds the published directory snapshot and rebuilds it on demand.
//
// Rebuilds follow a build-then-swap discipline: a new directory is
// constructed fully off to the side and then published with a single
// atomic pointer store. Readers observe either the old or the new snapshot
// in its entirety, never a partially populated one, so the read path needs
// no locking. The mutex only serializes rebuilds; with concurrent
// Refresh calls the later completion wins.
type Store struct {
	source ListingSource // nil means seed-only directories
	ttl    time.Duration

	mu   sync.Mutex
	snap atomic.Pointer[builtDirectory]
}

// NewStore creates a Store over the given listing source. A ttl of zero or
// less means snapshots never go stale on their own (refresh is then driven
// entirely by Refresh/RefreshEvery).
func NewStore(source ListingSource, ttl time.Duration) *Store {
	return &Store{source: source, ttl: ttl}
}

var _ DirectoryProvider = (*Store)(nil)

// Snapshot returns the current directory, building one first if none has
// been published yet or the published one is older than the ttl. A failed
// build keeps the previous snapshot; with nothing to keep, the static seed
// alone is published so shorthand resolution keeps working.
func (s *Store) Snapshot(ctx context.Context) *entity.Directory {
	if cur := s.snap.Load(); cur != nil && !s.stale(cur) {
		return cur.dir
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have rebuilt while we waited for the lock.
	if cur := s.snap.Load(); cur != nil && !s.stale(cur) {
		return cur.dir
	}

	if err := s.refreshLocked(ctx); err != nil {
		slog.Warn("directory rebuild failed, keeping previous snapshot", "error", err)
		if cur := s.snap.Load(); cur != nil {
			return cur.dir
		}
		// First build failed: publish the seed so resolution degrades to
		// shorthand + suffix inference instead of rescanning every call.
		seeded := &builtDirectory{dir: entity.NewDirectory(SeedEntries()), builtAt: time.Now()}
		s.snap.Store(seeded)
		return seeded.dir
	}
	return s.snap.Load().dir
}

// Refresh rebuilds the directory from the listing source and publishes it.
// On error the existing snapshot is left untouched.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

// refreshLocked builds a fresh directory off to the side and swaps it in.
// Callers must hold s.mu.
func (s *Store) refreshLocked(ctx context.Context) error {
	entries := SeedEntries()
	if s.source != nil {
		fetched, err := s.source.FetchEntries(ctx)
		if err != nil {
			return err
		}
		entries = append(entries, fetched...)
	}

	dir := entity.NewDirectory(entries)
	s.snap.Store(&builtDirectory{dir: dir, builtAt: time.Now()})
	slog.Info("directory snapshot published", "aliases", dir.Len())
	return nil
}

// RefreshEvery refreshes the snapshot on the given interval until ctx is
// done. Failures are logged and retried on the next tick.
func (s *Store) RefreshEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				slog.Warn("scheduled directory refresh failed", "error", err)
			}
		}
	}
}

// stale reports whether a published snapshot has outlived the ttl.
func (s *Store) stale(b *builtDirectory) bool {
	return s.ttl > 0 && time.Since(b.builtAt) >= s.ttl
}
