// File path: internal/api/roi_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/pricing"
)

func (s *Server) handleAnalyzeROI(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req roiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	spec, err := projectSpecFromRequest(bomRequest{
		ProjectName:      req.ProjectName,
		ChargingType:     req.ChargingType,
		NumPorts:         req.NumPorts,
		ExcavationLength: req.ExcavationLength,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bid, err := s.calc.CalculateBid(spec)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	analysis := s.calc.CalculateROI(bid, req.AnnualRevPerPort, req.AnnualOpCostPerPort)
	var payback interface{} = "none"
	if analysis.PaybackYears != nil {
		payback = *analysis.PaybackYears
	}
	logger.Info("api: roi analyzed", "project", spec.ProjectName, "payback_years", payback)
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleCompareBenchmarks(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, pricing.CompareBenchmarks(bid))
}

func (s *Server) handleIndustryAverages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricing.IndustryAverages())
}
