// File path: internal/chain/errors.go
package chain

import (
	"errors"
	"fmt"
)

var errNodeIDRequired = errors.New("node id required")

// DuplicateNodeError reports a registration attempt with an id that is already
// present in the store.
type DuplicateNodeError struct {
	NodeID string
}

func (e DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %s already exists", e.NodeID)
}

// UnknownParentError reports the first declared parent id that does not exist
// at registration time.
type UnknownParentError struct {
	NodeID   string
	ParentID string
}

func (e UnknownParentError) Error() string {
	return fmt.Sprintf("node %s references unknown parent %s", e.NodeID, e.ParentID)
}

// CyclicDependencyError reports the parent id through which the proposed edge
// set would make the node its own ancestor.
type CyclicDependencyError struct {
	NodeID   string
	ParentID string
}

func (e CyclicDependencyError) Error() string {
	return fmt.Sprintf("node %s would create circular dependency via parent %s", e.NodeID, e.ParentID)
}

// ChainDepthExceededError reports a depth or traversal that exceeds the
// configured maximum chain depth.
type ChainDepthExceededError struct {
	NodeID string
	Depth  int
	Limit  int
}

func (e ChainDepthExceededError) Error() string {
	return fmt.Sprintf("node %s depth %d exceeds maximum %d", e.NodeID, e.Depth, e.Limit)
}

// NodeNotFoundError reports a query against a nonexistent node id.
type NodeNotFoundError struct {
	NodeID string
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %s not found", e.NodeID)
}
