// File path: internal/chain/lineage.go
package chain

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
)

// Lineage returns the full ancestor set of a committed node, deduplicated and
// ordered from nearest to most distant ancestor.
func (s *Store) Lineage(ctx context.Context, nodeID string) (Lineage, error) {
	nodeID = strings.TrimSpace(nodeID)
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	lineage, err := s.lineageLocked(ctx, nodeID)
	telemetry.RecordChainQuery("lineage", time.Since(start))
	return lineage, err
}

func (s *Store) lineageLocked(ctx context.Context, nodeID string) (Lineage, error) {
	node, ok := s.nodes[nodeID]
	if !ok {
		return Lineage{}, NodeNotFoundError{NodeID: nodeID}
	}
	ancestors, _, err := s.ancestorsLocked(ctx, nodeID, node.ParentIDs)
	if err != nil {
		return Lineage{}, err
	}
	return Lineage{Ancestors: ancestors, TotalAncestors: len(ancestors)}, nil
}

// Metrics returns the derived structural metrics for a committed node.
func (s *Store) Metrics(ctx context.Context, nodeID string) (Metrics, error) {
	nodeID = strings.TrimSpace(nodeID)
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	metrics, err := s.metricsLocked(ctx, nodeID)
	telemetry.RecordChainQuery("metrics", time.Since(start))
	return metrics, err
}

func (s *Store) metricsLocked(ctx context.Context, nodeID string) (Metrics, error) {
	node, ok := s.nodes[nodeID]
	if !ok {
		return Metrics{}, NodeNotFoundError{NodeID: nodeID}
	}
	ancestors, _, err := s.ancestorsLocked(ctx, nodeID, node.ParentIDs)
	if err != nil {
		return Metrics{}, err
	}
	descendants, err := s.descendantsLocked(ctx, nodeID)
	if err != nil {
		return Metrics{}, err
	}
	distribution := make(map[string]int)
	for _, ancestorID := range ancestors {
		if ancestor, ok := s.nodes[ancestorID]; ok {
			distribution[ancestor.NodeType]++
		}
	}
	return Metrics{
		NodeID:           node.NodeID,
		NodeType:         node.NodeType,
		Depth:            node.Depth,
		ParentIDs:        append([]string(nil), node.ParentIDs...),
		IsRoot:           len(node.ParentIDs) == 0,
		IsLeaf:           len(s.children[nodeID]) == 0,
		TotalAncestors:   len(ancestors),
		TotalDescendants: len(descendants),
		TypeDistribution: distribution,
		CreatedAt:        node.CreatedAt,
	}, nil
}

// Analysis bundles lineage and metrics for a node in one consistent read.
func (s *Store) Analysis(ctx context.Context, nodeID string) (Analysis, error) {
	nodeID = strings.TrimSpace(nodeID)
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	defer func() { telemetry.RecordChainQuery("analysis", time.Since(start)) }()

	lineage, err := s.lineageLocked(ctx, nodeID)
	if err != nil {
		return Analysis{}, err
	}
	metrics, err := s.metricsLocked(ctx, nodeID)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		NodeID:         metrics.NodeID,
		Depth:          metrics.Depth,
		Lineage:        lineage.Ancestors,
		TotalAncestors: lineage.TotalAncestors,
		Metrics:        metrics,
	}, nil
}

// Tree builds the descendant tree rooted at nodeID for visualization.
func (s *Store) Tree(ctx context.Context, nodeID string) (TreeNode, error) {
	nodeID = strings.TrimSpace(nodeID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.nodes[nodeID]
	if !ok {
		return TreeNode{}, NodeNotFoundError{NodeID: nodeID}
	}
	return s.treeLocked(ctx, node, map[string]struct{}{}), nil
}

func (s *Store) treeLocked(ctx context.Context, node *Node, visited map[string]struct{}) TreeNode {
	visited[node.NodeID] = struct{}{}
	out := TreeNode{
		NodeID:   node.NodeID,
		NodeType: node.NodeType,
		Depth:    node.Depth,
		Children: []TreeNode{},
		Metadata: copyMetadata(node.Metadata),
	}
	childIDs := make([]string, 0, len(s.children[node.NodeID]))
	for childID := range s.children[node.NodeID] {
		childIDs = append(childIDs, childID)
	}
	sort.Strings(childIDs)
	for _, childID := range childIDs {
		select {
		case <-ctx.Done():
			return out
		default:
		}
		if _, seen := visited[childID]; seen {
			continue
		}
		child, ok := s.nodes[childID]
		if !ok {
			continue
		}
		out.Children = append(out.Children, s.treeLocked(ctx, child, visited))
	}
	return out
}
