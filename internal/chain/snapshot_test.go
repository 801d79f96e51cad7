// File path: internal/chain/snapshot_test.go
package chain

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSnapshotCachedWithinTTL(t *testing.T) {
	current := time.Unix(1700000000, 0)
	store := NewStore(WithSnapshotTTL(time.Minute), WithClock(func() time.Time { return current }))
	ctx := context.Background()
	register(t, store, "root", "cost_code")
	register(t, store, "child", "bid", "root")

	first, err := store.Snapshot(ctx, "child")
	if err != nil {
		t.Fatalf("snapshot child: %v", err)
	}
	current = current.Add(30 * time.Second)
	second, err := store.Snapshot(ctx, "child")
	if err != nil {
		t.Fatalf("snapshot child repeat: %v", err)
	}
	if !second.GeneratedAt.Equal(first.GeneratedAt) || second.Seq != first.Seq {
		t.Fatalf("expected cached snapshot within TTL, got %v vs %v", second, first)
	}
}

func TestSnapshotRecomputedAfterTTL(t *testing.T) {
	current := time.Unix(1700000000, 0)
	store := NewStore(WithSnapshotTTL(time.Minute), WithClock(func() time.Time { return current }))
	ctx := context.Background()
	register(t, store, "root", "cost_code")

	first, err := store.Snapshot(ctx, "root")
	if err != nil {
		t.Fatalf("snapshot root: %v", err)
	}
	current = current.Add(2 * time.Minute)
	second, err := store.Snapshot(ctx, "root")
	if err != nil {
		t.Fatalf("snapshot root after expiry: %v", err)
	}
	if second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Fatalf("expected recomputation after TTL expiry")
	}
}

func TestSnapshotInvalidatedByDescendantRegistration(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	register(t, store, "root", "cost_code")
	register(t, store, "mid", "bid", "root")

	before, err := store.Snapshot(ctx, "root")
	if err != nil {
		t.Fatalf("snapshot root: %v", err)
	}
	if before.Metrics.TotalDescendants != 1 {
		t.Fatalf("expected 1 descendant before, got %d", before.Metrics.TotalDescendants)
	}

	register(t, store, "leaf", "roi_analysis", "mid")

	if !store.Stale(before) {
		t.Fatalf("pre-mutation snapshot should be stale")
	}
	after, err := store.Snapshot(ctx, "root")
	if err != nil {
		t.Fatalf("snapshot root after mutation: %v", err)
	}
	if after.Metrics.TotalDescendants != 2 {
		t.Fatalf("expected recomputed descendants 2, got %d", after.Metrics.TotalDescendants)
	}
	if after.Seq == before.Seq {
		t.Fatalf("expected new sequence number after mutation")
	}
}

func TestSnapshotCacheCoherentUnderConcurrentRegistration(t *testing.T) {
	store := NewStore(WithMaxDepth(64), WithSnapshotTTL(time.Hour))
	ctx := context.Background()
	register(t, store, "root", "cost_code")

	// Snapshots race against registrations; a bundle computed before a commit
	// must never be cached after that commit's invalidation.
	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := store.Register(ctx, RegisterRequest{
				NodeID:    fmt.Sprintf("leaf-%02d", i),
				NodeType:  "bid",
				ParentIDs: []string{"root"},
			})
			if err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			if _, err := store.Snapshot(ctx, "root"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent operation failed: %v", err)
	}

	snap, err := store.Snapshot(ctx, "root")
	if err != nil {
		t.Fatalf("final snapshot: %v", err)
	}
	if snap.Metrics.TotalDescendants != workers {
		t.Fatalf("cached snapshot lost registrations: %d descendants, want %d", snap.Metrics.TotalDescendants, workers)
	}
	if store.Stale(snap) {
		t.Fatalf("final snapshot must reflect the latest mutation sequence")
	}
}

func TestSnapshotUnknownNode(t *testing.T) {
	store := NewStore()
	_, err := store.Snapshot(context.Background(), "ghost")
	notFound, ok := err.(NodeNotFoundError)
	if !ok {
		t.Fatalf("expected NodeNotFoundError, got %v", err)
	}
	if notFound.NodeID != "ghost" {
		t.Fatalf("expected offending id, got %q", notFound.NodeID)
	}
}

func TestSnapshotBundleIsComplete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	register(t, store, "a", "cost_code")
	register(t, store, "b", "bid", "a")
	register(t, store, "c", "roi_analysis", "b")

	snap, err := store.Snapshot(ctx, "c")
	if err != nil {
		t.Fatalf("snapshot c: %v", err)
	}
	if snap.Lineage.TotalAncestors != 2 {
		t.Fatalf("expected lineage in bundle, got %v", snap.Lineage)
	}
	if snap.Metrics.NodeType != "roi_analysis" || snap.Metrics.Depth != 2 {
		t.Fatalf("expected metrics in bundle, got %+v", snap.Metrics)
	}
	if snap.Lineage.TotalAncestors != snap.Metrics.TotalAncestors {
		t.Fatalf("bundle halves disagree: %d vs %d", snap.Lineage.TotalAncestors, snap.Metrics.TotalAncestors)
	}
}
