// File path: internal/chain/types.go
package chain

import "time"

// Node is a committed member of the contextual chain. ParentIDs reference
// other committed nodes by id only; Metadata is stored and returned verbatim.
type Node struct {
	NodeID    string                 `json:"node_id"`
	NodeType  string                 `json:"node_type"`
	ParentIDs []string               `json:"parent_nodes"`
	Metadata  map[string]interface{} `json:"metadata"`
	Depth     int                    `json:"lathering_depth"`
	CreatedAt time.Time              `json:"created_at"`
}

// Lineage is the deduplicated transitive ancestor set of a node, ordered from
// nearest to most distant ancestor.
type Lineage struct {
	Ancestors      []string `json:"heritage_lineage"`
	TotalAncestors int      `json:"total_ancestors"`
}

// Metrics is the derived structural view of a node's position in the chain.
type Metrics struct {
	NodeID           string         `json:"node_id"`
	NodeType         string         `json:"node_type"`
	Depth            int            `json:"lathering_depth"`
	ParentIDs        []string       `json:"parent_nodes"`
	IsRoot           bool           `json:"is_root"`
	IsLeaf           bool           `json:"is_leaf"`
	TotalAncestors   int            `json:"total_ancestors"`
	TotalDescendants int            `json:"total_descendants"`
	TypeDistribution map[string]int `json:"node_type_distribution"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Analysis bundles a node's lineage and metrics for API consumers.
type Analysis struct {
	NodeID         string   `json:"node_id"`
	Depth          int      `json:"lathering_depth"`
	Lineage        []string `json:"heritage_lineage"`
	TotalAncestors int      `json:"total_ancestors"`
	Metrics        Metrics  `json:"chain_metrics"`
}

// Snapshot is a cached point-in-time bundle of lineage and metrics. Seq is the
// store's mutation sequence number at generation time.
type Snapshot struct {
	NodeID      string    `json:"node_id"`
	Lineage     Lineage   `json:"lineage"`
	Metrics     Metrics   `json:"metrics"`
	Seq         uint64    `json:"seq"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TreeNode is a descendant-tree view rooted at a node, used by the snapshot
// endpoint for visualization.
type TreeNode struct {
	NodeID   string                 `json:"node_id"`
	NodeType string                 `json:"node_type"`
	Depth    int                    `json:"depth"`
	Children []TreeNode             `json:"children"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
