// File path: internal/api/chains_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evmaxhq/evmax-catalog/internal/chain"
	"github.com/evmaxhq/evmax-catalog/internal/common"
)

func (s *Server) handleRegisterNode(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req registerNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.NodeID) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("node_id is required"))
		return
	}
	node, err := s.chains.Register(r.Context(), chain.RegisterRequest{
		NodeID:    req.NodeID,
		NodeType:  req.NodeType,
		ParentIDs: req.ParentNodes,
		Metadata:  req.Metadata,
	})
	if err != nil {
		writeChainError(w, err)
		return
	}
	logger.Info("api: chain node registered", "node_id", node.NodeID, "type", node.NodeType, "depth", node.Depth)
	writeJSON(w, http.StatusCreated, node)
}

func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	node, err := s.chains.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeChainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, node)
}

func (s *Server) handleNodeHeritage(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "id")
	lineage, err := s.chains.Lineage(r.Context(), nodeID)
	if err != nil {
		writeChainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, heritageResponse{
		NodeID:          strings.TrimSpace(nodeID),
		HeritageLineage: lineage.Ancestors,
		TotalAncestors:  lineage.TotalAncestors,
	})
}

func (s *Server) handleNodeMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.chains.Metrics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeChainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleNodeAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.chains.Analysis(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeChainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleNodeTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.chains.Tree(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeChainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) handleNodeSnapshot(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	nodeID := chi.URLParam(r, "id")
	includeMetrics := true
	if raw := strings.TrimSpace(r.URL.Query().Get("include_metrics")); raw != "" {
		includeMetrics = raw != "false" && raw != "0"
	}
	snap, err := s.chains.Snapshot(r.Context(), nodeID)
	if err != nil {
		writeChainError(w, err)
		return
	}
	resp := snapshotResponse{
		SnapshotID:      uuid.NewString(),
		NodeID:          snap.NodeID,
		HeritageLineage: snap.Lineage.Ancestors,
		TotalAncestors:  snap.Lineage.TotalAncestors,
		Stale:           s.chains.Stale(snap),
		GeneratedAt:     snap.GeneratedAt,
	}
	if includeMetrics {
		metrics := snap.Metrics
		resp.ChainMetrics = &metrics
	}
	logger.Debug("api: snapshot served", "node_id", snap.NodeID, "stale", resp.Stale, "include_metrics", includeMetrics)
	writeJSON(w, http.StatusOK, resp)
}
