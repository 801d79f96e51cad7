// File path: internal/api/catalog_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/evmaxhq/evmax-catalog/internal/catalog"
	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/sqlite"
)

func (s *Server) handleListCostCodes(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	query := r.URL.Query()
	category := strings.TrimSpace(query.Get("category"))
	search := strings.ToLower(strings.TrimSpace(query.Get("search")))

	codes, err := s.store.ListCostCodes(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if search != "" {
		filtered := codes[:0]
		for _, code := range codes {
			if strings.Contains(strings.ToLower(code.Code), search) ||
				strings.Contains(strings.ToLower(code.Description), search) {
				filtered = append(filtered, code)
			}
		}
		codes = filtered
	}

	total := len(codes)
	offset := parseQueryInt(query.Get("offset"), 0)
	limit := parseQueryInt(query.Get("limit"), 0)
	if offset > total {
		offset = total
	}
	codes = codes[offset:]
	if limit > 0 && limit < len(codes) {
		codes = codes[:limit]
	}

	logger.Debug("api: cost codes listed", "category", category, "search", search, "returned", len(codes), "total", total)
	writeJSON(w, http.StatusOK, costCodeListResponse{
		CostCodes: codes,
		Total:     total,
		Offset:    offset,
		Limit:     limit,
	})
}

func (s *Server) handleGetCostCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	entry, err := s.store.CostCodeByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("cost code %s not found", strings.ToUpper(strings.TrimSpace(code))))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleCostCodeCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: catalog.Categories()})
}

func parseQueryInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
