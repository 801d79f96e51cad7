// File path: internal/chain/snapshot.go
package chain

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
)

// snapshotCache holds complete lineage+metrics bundles keyed by node id.
// Entries are swapped in whole; readers never observe a partially updated
// snapshot.
type snapshotCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]Snapshot
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &snapshotCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Snapshot),
	}
}

func (c *snapshotCache) get(nodeID string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[nodeID]
	if !ok {
		return Snapshot{}, false
	}
	if c.now().Sub(entry.GeneratedAt) >= c.ttl {
		delete(c.entries, nodeID)
		return Snapshot{}, false
	}
	return entry, true
}

func (c *snapshotCache) store(entry Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.NodeID] = entry
}

func (c *snapshotCache) invalidate(nodeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, nodeID)
}

func (c *snapshotCache) invalidateAll(nodeIDs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range nodeIDs {
		delete(c.entries, id)
	}
}

// Snapshot returns the cached point-in-time view for a node, recomputing it
// when absent or expired. The returned bundle is always complete; lineage and
// metrics come from the same committed graph state.
func (s *Store) Snapshot(ctx context.Context, nodeID string) (Snapshot, error) {
	nodeID = strings.TrimSpace(nodeID)
	if !s.Exists(nodeID) {
		return Snapshot{}, NodeNotFoundError{NodeID: nodeID}
	}
	if entry, ok := s.snapshots.get(nodeID); ok {
		telemetry.RecordSnapshot(true)
		return entry, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	lineage, err := s.lineageLocked(ctx, nodeID)
	if err != nil {
		return Snapshot{}, err
	}
	metrics, err := s.metricsLocked(ctx, nodeID)
	if err != nil {
		return Snapshot{}, err
	}
	entry := Snapshot{
		NodeID:      nodeID,
		Lineage:     lineage,
		Metrics:     metrics,
		Seq:         s.seq,
		GeneratedAt: s.now(),
	}
	// Stored before the read lock is released: Register invalidates under the
	// write lock, so a racing mutation cannot be overwritten by this bundle.
	s.snapshots.store(entry)
	telemetry.RecordSnapshot(false)
	return entry, nil
}

// Invalidate evicts a cached snapshot explicitly.
func (s *Store) Invalidate(nodeID string) {
	s.snapshots.invalidate(nodeID)
}

// Stale reports whether the graph has mutated since the snapshot was taken.
func (s *Store) Stale(snap Snapshot) bool {
	return snap.Seq != s.Seq()
}
