// File path: internal/api/products_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/pricing"
	"github.com/evmaxhq/evmax-catalog/internal/sqlite"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	products, err := s.store.ListProducts(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp, err := toProductResponse(product)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, productListResponse{Products: out, Total: len(out)})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.SKU) == "" || strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("sku and name are required"))
		return
	}
	if req.BasePrice < 0 || req.BaseCost < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("prices must be non-negative"))
		return
	}
	row, err := productRowFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	created, err := s.store.CreateProduct(r.Context(), row)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp, err := toProductResponse(*created)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: product created", "sku", created.SKU, "id", created.ID)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := s.loadProduct(w, r)
	if !ok {
		return
	}
	resp, err := toProductResponse(*product)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := s.loadProduct(w, r)
	if !ok {
		return
	}
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	row, err := productRowFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	row.ID = product.ID
	row.SKU = product.SKU
	if strings.TrimSpace(row.Name) == "" {
		row.Name = product.Name
	}
	updated, err := s.store.UpdateProduct(r.Context(), row)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("product %d not found", product.ID))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp, err := toProductResponse(*updated)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("product %d not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
}

func (s *Server) handleProductQuote(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("quantity must be positive"))
		return
	}
	product, err := s.store.ProductBySKU(r.Context(), req.SKU)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("product %s not found", strings.TrimSpace(req.SKU)))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	tiers, err := sqlite.DecodePricingTiers(product.PricingTiers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	quote := pricing.ComputeQuote(pricing.QuoteInput{
		Quantity:     req.Quantity,
		Season:       req.Season,
		Tier:         req.CustomerTier,
		BasePrice:    product.BasePrice,
		BaseCost:     product.BaseCost,
		PricingTiers: tiers,
	})
	logger.Info("api: quote computed", "sku", product.SKU, "quantity", req.Quantity, "total", quote.TotalPrice)
	writeJSON(w, http.StatusOK, quoteResponse{SKU: product.SKU, ProductName: product.Name, Quote: quote})
}

func (s *Server) loadProduct(w http.ResponseWriter, r *http.Request) (*sqlite.Product, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	product, err := s.store.ProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("product %d not found", id))
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return product, true
}

func productRowFromRequest(req productRequest) (sqlite.Product, error) {
	tiers, err := sqlite.EncodePricingTiers(req.PricingTiers)
	if err != nil {
		return sqlite.Product{}, err
	}
	specs, err := sqlite.EncodeMaterialSpecs(req.MaterialSpecs)
	if err != nil {
		return sqlite.Product{}, err
	}
	return sqlite.Product{
		SKU:           strings.TrimSpace(req.SKU),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Category:      strings.TrimSpace(req.Category),
		BasePrice:     req.BasePrice,
		BaseCost:      req.BaseCost,
		PricingTiers:  tiers,
		MaterialSpecs: specs,
	}, nil
}

func toProductResponse(product sqlite.Product) (productResponse, error) {
	tiers, err := sqlite.DecodePricingTiers(product.PricingTiers)
	if err != nil {
		return productResponse{}, err
	}
	specs, err := sqlite.DecodeMaterialSpecs(product.MaterialSpecs)
	if err != nil {
		return productResponse{}, err
	}
	return productResponse{
		ID:            product.ID,
		SKU:           product.SKU,
		Name:          product.Name,
		Description:   product.Description,
		Category:      product.Category,
		BasePrice:     product.BasePrice,
		BaseCost:      product.BaseCost,
		PricingTiers:  tiers,
		MaterialSpecs: specs,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}, nil
}

func parseIDParam(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
