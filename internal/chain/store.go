// File path: internal/chain/store.go
package chain

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
)

const (
	defaultMaxDepth    = 10
	defaultSnapshotTTL = 5 * time.Minute
)

// Store owns the contextual chain nodes and their parent edges. Registration
// is serialized behind a writer lock; reads run concurrently against the last
// committed state.
type Store struct {
	mu       sync.RWMutex
	nodes    map[string]*Node
	children map[string]map[string]struct{}
	seq      uint64

	maxDepth   int
	cycleCheck bool
	now        func() time.Time

	snapshots *snapshotCache
}

type Option func(*Store)

// WithMaxDepth bounds the longest committed chain and every lineage traversal.
func WithMaxDepth(depth int) Option {
	return func(s *Store) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithSnapshotTTL sets the expiry applied to cached snapshots.
func WithSnapshotTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.snapshots.ttl = ttl
		}
	}
}

// WithCycleCheck toggles the explicit reachability check on registration.
// Disabling it is a caller choice; traversals remain bounded by visited sets
// either way.
func WithCycleCheck(enabled bool) Option {
	return func(s *Store) {
		s.cycleCheck = enabled
	}
}

// WithClock overrides the time source. Used by tests to drive TTL expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
			s.snapshots.now = now
		}
	}
}

// NewStore constructs an empty chain store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		nodes:      make(map[string]*Node),
		children:   make(map[string]map[string]struct{}),
		maxDepth:   defaultMaxDepth,
		cycleCheck: true,
		now:        time.Now,
		snapshots:  newSnapshotCache(defaultSnapshotTTL),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// RegisterRequest carries the caller-supplied fields for a new node.
type RegisterRequest struct {
	NodeID    string
	NodeType  string
	ParentIDs []string
	Metadata  map[string]interface{}
}

// Register validates and commits a new node. On failure the store is left
// unchanged; on success the node's depth is computed and every cached snapshot
// in its ancestry is invalidated.
func (s *Store) Register(ctx context.Context, req RegisterRequest) (Node, error) {
	nodeID := strings.TrimSpace(req.NodeID)
	if nodeID == "" {
		return Node{}, errNodeIDRequired
	}
	parents := dedupeIDs(req.ParentIDs)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[nodeID]; exists {
		// A re-registration that would also close a cycle reports the
		// structural failure, which is the more actionable one.
		if s.cycleCheck {
			if offender, cyclic := s.wouldIntroduceCycleLocked(ctx, nodeID, parents); cyclic {
				telemetry.RecordChainRegister("cycle")
				return Node{}, CyclicDependencyError{NodeID: nodeID, ParentID: offender}
			}
		}
		telemetry.RecordChainRegister("duplicate")
		return Node{}, DuplicateNodeError{NodeID: nodeID}
	}
	for _, parentID := range parents {
		if _, ok := s.nodes[parentID]; !ok {
			telemetry.RecordChainRegister("unknown_parent")
			return Node{}, UnknownParentError{NodeID: nodeID, ParentID: parentID}
		}
	}
	if s.cycleCheck {
		if offender, cyclic := s.wouldIntroduceCycleLocked(ctx, nodeID, parents); cyclic {
			telemetry.RecordChainRegister("cycle")
			return Node{}, CyclicDependencyError{NodeID: nodeID, ParentID: offender}
		}
	}

	ancestors, _, err := s.ancestorsLocked(ctx, nodeID, parents)
	if err != nil {
		var depthErr ChainDepthExceededError
		if errors.As(err, &depthErr) {
			telemetry.RecordChainRegister("depth_exceeded")
		} else {
			telemetry.RecordChainRegister("canceled")
		}
		return Node{}, err
	}
	depth := s.depthLocked(parents)
	if depth > s.maxDepth {
		telemetry.RecordChainRegister("depth_exceeded")
		return Node{}, ChainDepthExceededError{NodeID: nodeID, Depth: depth, Limit: s.maxDepth}
	}

	node := &Node{
		NodeID:    nodeID,
		NodeType:  strings.TrimSpace(req.NodeType),
		ParentIDs: parents,
		Metadata:  copyMetadata(req.Metadata),
		Depth:     depth,
		CreatedAt: s.now(),
	}
	s.nodes[nodeID] = node
	for _, parentID := range parents {
		set := s.children[parentID]
		if set == nil {
			set = make(map[string]struct{})
			s.children[parentID] = set
		}
		set[nodeID] = struct{}{}
	}
	s.seq++

	// This insertion changes descendant counts and leaf status for the whole
	// ancestry, not just the direct parents.
	s.snapshots.invalidate(nodeID)
	s.snapshots.invalidateAll(ancestors)

	telemetry.RecordChainRegister("")
	common.Logger().Info("chain: node registered", "node", nodeID, "type", node.NodeType, "depth", depth, "parents", len(parents))
	return node.clone(), nil
}

// Get returns the committed node for the given id.
func (s *Store) Get(nodeID string) (Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.nodes[strings.TrimSpace(nodeID)]
	if !ok {
		return Node{}, NodeNotFoundError{NodeID: nodeID}
	}
	return node.clone(), nil
}

// Exists reports whether a node id is committed. It never fails.
func (s *Store) Exists(nodeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[strings.TrimSpace(nodeID)]
	return ok
}

// Seq returns the store's mutation sequence number.
func (s *Store) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Len returns the number of committed nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// wouldIntroduceCycleLocked walks the existing parent edges backward from each
// proposed parent looking for nodeID. Iterative with an explicit stack; the
// visited set bounds work even on malformed data.
func (s *Store) wouldIntroduceCycleLocked(ctx context.Context, nodeID string, parents []string) (string, bool) {
	for _, parentID := range parents {
		if parentID == nodeID {
			return parentID, true
		}
		stack := []string{parentID}
		visited := map[string]struct{}{parentID: {}}
		for len(stack) > 0 {
			select {
			case <-ctx.Done():
				return parentID, false
			default:
			}
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node, ok := s.nodes[current]
			if !ok {
				continue
			}
			for _, ancestor := range node.ParentIDs {
				if ancestor == nodeID {
					return parentID, true
				}
				if _, seen := visited[ancestor]; seen {
					continue
				}
				visited[ancestor] = struct{}{}
				stack = append(stack, ancestor)
			}
		}
	}
	return "", false
}

// depthLocked computes 1 + max parent depth; parents are committed nodes so
// this is a direct lookup.
func (s *Store) depthLocked(parents []string) int {
	if len(parents) == 0 {
		return 0
	}
	maxParent := 0
	for _, parentID := range parents {
		if node, ok := s.nodes[parentID]; ok && node.Depth > maxParent {
			maxParent = node.Depth
		}
	}
	return maxParent + 1
}

// ancestorsLocked collects every distinct ancestor reachable from the given
// parent set via breadth-first traversal, ordered nearest to farthest with ties
// broken by id. Distance is the shortest path to the (possibly uncommitted)
// descendant node.
func (s *Store) ancestorsLocked(ctx context.Context, nodeID string, parents []string) ([]string, map[string]int, error) {
	distance := make(map[string]int)
	queue := make([]string, 0, len(parents))
	for _, parentID := range parents {
		if _, seen := distance[parentID]; seen {
			continue
		}
		distance[parentID] = 1
		queue = append(queue, parentID)
	}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}
		current := queue[0]
		queue = queue[1:]
		depth := distance[current]
		if depth > s.maxDepth {
			return nil, nil, ChainDepthExceededError{NodeID: nodeID, Depth: depth, Limit: s.maxDepth}
		}
		node, ok := s.nodes[current]
		if !ok {
			continue
		}
		for _, ancestor := range node.ParentIDs {
			if _, seen := distance[ancestor]; seen {
				continue
			}
			distance[ancestor] = depth + 1
			queue = append(queue, ancestor)
		}
	}

	ordered := make([]string, 0, len(distance))
	for id := range distance {
		ordered = append(ordered, id)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if distance[ordered[i]] == distance[ordered[j]] {
			return ordered[i] < ordered[j]
		}
		return distance[ordered[i]] < distance[ordered[j]]
	})
	return ordered, distance, nil
}

// descendantsLocked walks the reverse adjacency index forward, returning every
// distinct descendant of nodeID.
func (s *Store) descendantsLocked(ctx context.Context, nodeID string) ([]string, error) {
	visited := map[string]struct{}{}
	queue := []string{nodeID}
	var result []string
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
		current := queue[0]
		queue = queue[1:]
		for child := range s.children[current] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			result = append(result, child)
			queue = append(queue, child)
		}
	}
	sort.Strings(result)
	return result, nil
}

func (n *Node) clone() Node {
	out := *n
	out.ParentIDs = append([]string(nil), n.ParentIDs...)
	out.Metadata = copyMetadata(n.Metadata)
	return out
}

func copyMetadata(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
