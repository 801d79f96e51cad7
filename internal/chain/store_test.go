// File path: internal/chain/store_test.go
package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func register(t *testing.T, store *Store, id, nodeType string, parents ...string) Node {
	t.Helper()
	node, err := store.Register(context.Background(), RegisterRequest{
		NodeID:    id,
		NodeType:  nodeType,
		ParentIDs: parents,
	})
	if err != nil {
		t.Fatalf("register %s: %v", id, err)
	}
	return node
}

func TestRegisterChainEndToEnd(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	a := register(t, store, "A", "cost_code")
	if a.Depth != 0 {
		t.Fatalf("expected depth 0 for root, got %d", a.Depth)
	}
	lineage, err := store.Lineage(ctx, "A")
	if err != nil {
		t.Fatalf("lineage A: %v", err)
	}
	if lineage.TotalAncestors != 0 {
		t.Fatalf("expected empty lineage for root, got %v", lineage.Ancestors)
	}

	b := register(t, store, "B", "bid", "A")
	if b.Depth != 1 {
		t.Fatalf("expected depth 1 for B, got %d", b.Depth)
	}
	metrics, err := store.Metrics(ctx, "A")
	if err != nil {
		t.Fatalf("metrics A: %v", err)
	}
	if metrics.IsLeaf {
		t.Fatalf("A should no longer be a leaf")
	}
	if metrics.TotalDescendants != 1 {
		t.Fatalf("expected 1 descendant for A, got %d", metrics.TotalDescendants)
	}

	c := register(t, store, "C", "roi_analysis", "B")
	if c.Depth != 2 {
		t.Fatalf("expected depth 2 for C, got %d", c.Depth)
	}
	lineage, err = store.Lineage(ctx, "C")
	if err != nil {
		t.Fatalf("lineage C: %v", err)
	}
	if lineage.TotalAncestors != 2 {
		t.Fatalf("expected 2 ancestors for C, got %d", lineage.TotalAncestors)
	}
	if lineage.Ancestors[0] != "B" || lineage.Ancestors[1] != "A" {
		t.Fatalf("expected nearest-first lineage [B A], got %v", lineage.Ancestors)
	}

	// A with parent C would make A its own ancestor.
	_, err = store.Register(ctx, RegisterRequest{NodeID: "A", NodeType: "cost_code", ParentIDs: []string{"C"}})
	if _, ok := err.(CyclicDependencyError); !ok {
		t.Fatalf("expected CyclicDependencyError for re-registering A under C, got %v", err)
	}
	// An unregistered self-parent is reported as missing, not cyclic; the
	// parent existence check runs before the validator.
	_, err = store.Register(ctx, RegisterRequest{NodeID: "D", NodeType: "bid", ParentIDs: []string{"D"}})
	if _, ok := err.(UnknownParentError); !ok {
		t.Fatalf("expected UnknownParentError for unregistered self-parent, got %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("failed registrations must not mutate the store, len=%d", store.Len())
	}
}

func TestRegisterDuplicateLeavesOriginalUntouched(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	register(t, store, "node", "cost_code")

	_, err := store.Register(ctx, RegisterRequest{NodeID: "node", NodeType: "bid"})
	dup, ok := err.(DuplicateNodeError)
	if !ok {
		t.Fatalf("expected DuplicateNodeError, got %v", err)
	}
	if dup.NodeID != "node" {
		t.Fatalf("expected offending id in error, got %q", dup.NodeID)
	}
	stored, err := store.Get("node")
	if err != nil {
		t.Fatalf("get node: %v", err)
	}
	if stored.NodeType != "cost_code" {
		t.Fatalf("original node mutated: %q", stored.NodeType)
	}
}

func TestRegisterUnknownParent(t *testing.T) {
	store := NewStore()
	_, err := store.Register(context.Background(), RegisterRequest{
		NodeID:    "child",
		NodeType:  "bid",
		ParentIDs: []string{"missing"},
	})
	unknown, ok := err.(UnknownParentError)
	if !ok {
		t.Fatalf("expected UnknownParentError, got %v", err)
	}
	if unknown.ParentID != "missing" {
		t.Fatalf("expected missing parent id, got %q", unknown.ParentID)
	}
	if store.Exists("child") {
		t.Fatalf("failed registration must not commit the node")
	}
}

func TestDiamondAncestryDeduplicated(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	register(t, store, "root", "cost_code")
	register(t, store, "left", "bid", "root")
	register(t, store, "right", "bid", "root")
	register(t, store, "merge", "roi_analysis", "left", "right")

	lineage, err := store.Lineage(ctx, "merge")
	if err != nil {
		t.Fatalf("lineage merge: %v", err)
	}
	if lineage.TotalAncestors != 3 {
		t.Fatalf("shared grandparent must be counted once, got %v", lineage.Ancestors)
	}
	first, err := store.Lineage(ctx, "merge")
	if err != nil {
		t.Fatalf("lineage merge repeat: %v", err)
	}
	for i := range first.Ancestors {
		if first.Ancestors[i] != lineage.Ancestors[i] {
			t.Fatalf("lineage not idempotent: %v vs %v", first.Ancestors, lineage.Ancestors)
		}
	}

	node, err := store.Get("merge")
	if err != nil {
		t.Fatalf("get merge: %v", err)
	}
	if node.Depth != 2 {
		t.Fatalf("expected depth 2 through either branch, got %d", node.Depth)
	}
}

func TestMaxDepthEnforced(t *testing.T) {
	store := NewStore(WithMaxDepth(2))
	register(t, store, "n0", "cost_code")
	register(t, store, "n1", "bid", "n0")
	register(t, store, "n2", "bid", "n1")

	_, err := store.Register(context.Background(), RegisterRequest{
		NodeID:    "n3",
		NodeType:  "bid",
		ParentIDs: []string{"n2"},
	})
	exceeded, ok := err.(ChainDepthExceededError)
	if !ok {
		t.Fatalf("expected ChainDepthExceededError, got %v", err)
	}
	if exceeded.Depth != 3 || exceeded.Limit != 2 {
		t.Fatalf("unexpected depth/limit in error: %d/%d", exceeded.Depth, exceeded.Limit)
	}
	if store.Exists("n3") {
		t.Fatalf("rejected node must not be committed")
	}
}

func TestMetricsTypeDistribution(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	register(t, store, "code-a", "cost_code")
	register(t, store, "code-b", "cost_code")
	register(t, store, "bid-1", "bid", "code-a", "code-b")
	register(t, store, "roi-1", "roi_analysis", "bid-1")

	metrics, err := store.Metrics(ctx, "roi-1")
	if err != nil {
		t.Fatalf("metrics roi-1: %v", err)
	}
	if metrics.TotalAncestors != 3 {
		t.Fatalf("expected 3 ancestors, got %d", metrics.TotalAncestors)
	}
	if metrics.TypeDistribution["cost_code"] != 2 || metrics.TypeDistribution["bid"] != 1 {
		t.Fatalf("unexpected type distribution: %v", metrics.TypeDistribution)
	}
	if !metrics.IsLeaf || metrics.IsRoot {
		t.Fatalf("roi-1 should be a non-root leaf")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	store := NewStore()
	register(t, store, "root", "cost_code")

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Register(context.Background(), RegisterRequest{
				NodeID:    fmt.Sprintf("node-%d", i),
				NodeType:  "bid",
				ParentIDs: []string{"root"},
			})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent register failed: %v", err)
	}
	if store.Len() != 65 {
		t.Fatalf("expected 65 nodes, got %d", store.Len())
	}
	metrics, err := store.Metrics(context.Background(), "root")
	if err != nil {
		t.Fatalf("metrics root: %v", err)
	}
	if metrics.TotalDescendants != 64 {
		t.Fatalf("expected 64 descendants, got %d", metrics.TotalDescendants)
	}
}

func TestRegisterCanceledContextDoesNotCommit(t *testing.T) {
	store := NewStore()
	register(t, store, "A", "cost_code")

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Register(canceled, RegisterRequest{
		NodeID:    "B",
		NodeType:  "bid",
		ParentIDs: []string{"A"},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if store.Exists("B") || store.Len() != 1 {
		t.Fatalf("canceled registration must leave the store unchanged")
	}
}

func TestCycleCheckDisabledStillBounded(t *testing.T) {
	store := NewStore(WithCycleCheck(false))
	register(t, store, "a", "cost_code")
	register(t, store, "b", "bid", "a")

	// With the validator off, traversal must still terminate and ancestry
	// stays consistent for valid inputs.
	lineage, err := store.Lineage(context.Background(), "b")
	if err != nil {
		t.Fatalf("lineage b: %v", err)
	}
	if lineage.TotalAncestors != 1 || lineage.Ancestors[0] != "a" {
		t.Fatalf("unexpected lineage: %v", lineage.Ancestors)
	}
}
