// File path: internal/api/bids_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/evmaxhq/evmax-catalog/internal/chain"
	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
	"github.com/evmaxhq/evmax-catalog/internal/pricing"
	"github.com/evmaxhq/evmax-catalog/internal/sqlite"
)

func (s *Server) handleGenerateBOM(w http.ResponseWriter, r *http.Request) {
	var req bomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	spec, err := projectSpecFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	items, err := pricing.GenerateBOM(spec)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	total := 0.0
	for _, item := range items {
		total += item.Subtotal
	}
	writeJSON(w, http.StatusOK, bomResponse{
		ProjectName:  spec.ProjectName,
		ChargingType: string(spec.ChargingType),
		NumPorts:     spec.NumPorts,
		LineItems:    items,
		TotalCost:    total,
	})
}

func (s *Server) handleCalculateBid(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req bomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	spec, err := projectSpecFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bid, err := s.calc.CalculateBid(spec)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: bid calculated", "project", spec.ProjectName, "type", spec.ChargingType, "total", bid.TotalCost)
	writeJSON(w, http.StatusOK, bid)
}

func (s *Server) handleListBids(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	bids, err := s.store.ListBids(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]bidResponse, 0, len(bids))
	for _, bid := range bids {
		resp, err := toBidResponse(bid)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, bidListResponse{Bids: out, Total: len(out)})
}

func (s *Server) handleCreateBid(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req bidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("project_name is required"))
		return
	}
	totals := pricing.CalculateBidFromCostCodes(req.LineItems, req.TaxRate)
	encoded, err := sqlite.EncodeLineItems(totals.LineItems)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	created, err := s.store.CreateBid(r.Context(), sqlite.Bid{
		ProjectName:      strings.TrimSpace(req.ProjectName),
		ClientName:       strings.TrimSpace(req.ClientName),
		Status:           strings.TrimSpace(req.Status),
		LineItems:        encoded,
		Subtotal:         totals.Subtotal,
		TaxRate:          totals.TaxRate,
		TaxAmount:        totals.TaxAmount,
		TotalAmount:      totals.TotalAmount,
		EstimatedRevenue: req.EstimatedRevenue,
		DurationMonths:   req.DurationMonths,
		Notes:            req.Notes,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp, err := toBidResponse(*created)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: bid created", "bid_number", created.BidNumber, "total", created.TotalAmount)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetBid(w http.ResponseWriter, r *http.Request) {
	bid, ok := s.loadBid(w, r)
	if !ok {
		return
	}
	resp, err := toBidResponse(*bid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateBid(w http.ResponseWriter, r *http.Request) {
	bid, ok := s.loadBid(w, r)
	if !ok {
		return
	}
	var req bidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	updated := *bid
	if strings.TrimSpace(req.ProjectName) != "" {
		updated.ProjectName = strings.TrimSpace(req.ProjectName)
	}
	if strings.TrimSpace(req.ClientName) != "" {
		updated.ClientName = strings.TrimSpace(req.ClientName)
	}
	if strings.TrimSpace(req.Status) != "" {
		updated.Status = strings.TrimSpace(req.Status)
	}
	if req.EstimatedRevenue > 0 {
		updated.EstimatedRevenue = req.EstimatedRevenue
	}
	if req.DurationMonths > 0 {
		updated.DurationMonths = req.DurationMonths
	}
	if req.Notes != "" {
		updated.Notes = req.Notes
	}
	if len(req.LineItems) > 0 {
		totals := pricing.CalculateBidFromCostCodes(req.LineItems, req.TaxRate)
		encoded, err := sqlite.EncodeLineItems(totals.LineItems)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		updated.LineItems = encoded
		updated.Subtotal = totals.Subtotal
		updated.TaxRate = totals.TaxRate
		updated.TaxAmount = totals.TaxAmount
		updated.TotalAmount = totals.TotalAmount
	}
	stored, err := s.store.UpdateBid(r.Context(), updated)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("bid %d not found", bid.ID))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp, err := toBidResponse(*stored)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteBid(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.DeleteBid(r.Context(), id); err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("bid %d not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
}

func (s *Server) handleBidROI(w http.ResponseWriter, r *http.Request) {
	bid, ok := s.loadBid(w, r)
	if !ok {
		return
	}
	if bid.EstimatedRevenue <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bid %s has no estimated revenue", bid.BidNumber))
		return
	}
	roi := pricing.CalculateBidROI(bid.EstimatedRevenue, bid.TotalAmount, bid.DurationMonths)
	writeJSON(w, http.StatusOK, roi)
}

// handleContextualizeBid derives a chain node from a stored bid: its line
// item cost codes become parent nodes (registered as roots when missing) and
// the bid itself becomes a child node.
func (s *Server) handleContextualizeBid(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	bid, ok := s.loadBid(w, r)
	if !ok {
		return
	}
	ctx, done := telemetry.StartSpan(r.Context(), "bid.contextualize")
	defer done("bid_number", bid.BidNumber)
	items, err := sqlite.DecodeLineItems(bid.LineItems)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	parents := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.CostCode]; ok {
			continue
		}
		seen[item.CostCode] = struct{}{}
		parents = append(parents, item.CostCode)
		if s.chains.Exists(item.CostCode) {
			continue
		}
		_, err := s.chains.Register(ctx, chain.RegisterRequest{
			NodeID:   item.CostCode,
			NodeType: "cost_code",
			Metadata: map[string]interface{}{"description": item.Description},
		})
		if err != nil {
			writeChainError(w, err)
			return
		}
	}
	node, err := s.chains.Register(ctx, chain.RegisterRequest{
		NodeID:    bid.BidNumber,
		NodeType:  "bid",
		ParentIDs: parents,
		Metadata: map[string]interface{}{
			"project_name": bid.ProjectName,
			"total_amount": bid.TotalAmount,
		},
	})
	if err != nil {
		writeChainError(w, err)
		return
	}
	bid.ChainNodeID = node.NodeID
	if _, err := s.store.UpdateBid(ctx, *bid); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: bid contextualized", "bid_number", bid.BidNumber, "parents", len(parents), "depth", node.Depth)
	writeJSON(w, http.StatusCreated, contextualizeResponse{
		BidID:     bid.ID,
		BidNumber: bid.BidNumber,
		Node:      &node,
	})
}

func (s *Server) loadBid(w http.ResponseWriter, r *http.Request) (*sqlite.Bid, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	bid, err := s.store.BidByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("bid %d not found", id))
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return bid, true
}

func toBidResponse(bid sqlite.Bid) (bidResponse, error) {
	items, err := sqlite.DecodeLineItems(bid.LineItems)
	if err != nil {
		return bidResponse{}, err
	}
	return bidResponse{
		ID:               bid.ID,
		BidNumber:        bid.BidNumber,
		ProjectName:      bid.ProjectName,
		ClientName:       bid.ClientName,
		Status:           bid.Status,
		LineItems:        items,
		Subtotal:         bid.Subtotal,
		TaxRate:          bid.TaxRate,
		TaxAmount:        bid.TaxAmount,
		TotalAmount:      bid.TotalAmount,
		EstimatedRevenue: bid.EstimatedRevenue,
		DurationMonths:   bid.DurationMonths,
		Notes:            bid.Notes,
		ChainNodeID:      bid.ChainNodeID,
		CreatedAt:        bid.CreatedAt,
		UpdatedAt:        bid.UpdatedAt,
	}, nil
}

func projectSpecFromRequest(req bomRequest) (pricing.ProjectSpecification, error) {
	if strings.TrimSpace(req.ProjectName) == "" {
		return pricing.ProjectSpecification{}, fmt.Errorf("project_name is required")
	}
	if req.NumPorts <= 0 {
		return pricing.ProjectSpecification{}, fmt.Errorf("num_ports must be positive")
	}
	chargingType := pricing.ChargingType(strings.ToUpper(strings.TrimSpace(req.ChargingType)))
	switch chargingType {
	case pricing.ChargingL2, pricing.ChargingDCFast:
	default:
		return pricing.ProjectSpecification{}, fmt.Errorf("charging_type must be L2 or DC_FAST")
	}
	return pricing.ProjectSpecification{
		ProjectName:      strings.TrimSpace(req.ProjectName),
		ChargingType:     chargingType,
		NumPorts:         req.NumPorts,
		SiteConditions:   req.SiteConditions,
		ExcavationLength: req.ExcavationLength,
	}, nil
}
