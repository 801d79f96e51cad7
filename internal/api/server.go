// File path: internal/api/server.go

// Package api exposes the catalog, pricing, and contextual chain services
// over HTTP.
package api

import (
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/evmaxhq/evmax-catalog/internal/chain"
	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/config"
	"github.com/evmaxhq/evmax-catalog/internal/pricing"
	"github.com/evmaxhq/evmax-catalog/internal/sqlite"
)

type Server struct {
	router   chi.Router
	store    *sqlite.Store
	chains   *chain.Store
	calc     *pricing.Calculator
	settings config.Settings
}

// NewServer wires the persistence layer, the chain tracker, and the pricing
// calculator behind the HTTP routes.
func NewServer(store *sqlite.Store, chains *chain.Store, settings config.Settings) (*Server, error) {
	logger := common.Logger()
	if store == nil {
		return nil, fmt.Errorf("sqlite store required")
	}
	if chains == nil {
		return nil, fmt.Errorf("chain store required")
	}
	srv := &Server{
		router:   chi.NewRouter(),
		store:    store,
		chains:   chains,
		calc:     pricing.NewCalculator(settings),
		settings: settings,
	}
	srv.routes()
	logger.Info("api: server ready",
		"max_chain_depth", settings.MaxChainDepth,
		"snapshot_ttl", settings.SnapshotTTL,
		"cycle_check", settings.CycleCheckEnabled(),
	)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/", s.handleRoot)
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/debug/vars", expvar.Handler())

	s.router.Get("/v1/cost-codes", s.handleListCostCodes)
	s.router.Get("/v1/cost-codes/categories", s.handleCostCodeCategories)
	s.router.Get("/v1/cost-codes/{code}", s.handleGetCostCode)

	s.router.Get("/v1/products", s.handleListProducts)
	s.router.Post("/v1/products", s.handleCreateProduct)
	s.router.Get("/v1/products/{id}", s.handleGetProduct)
	s.router.Put("/v1/products/{id}", s.handleUpdateProduct)
	s.router.Delete("/v1/products/{id}", s.handleDeleteProduct)
	s.router.Post("/v1/products/quote", s.handleProductQuote)

	s.router.Post("/v1/bom/generate", s.handleGenerateBOM)

	s.router.Get("/v1/bids", s.handleListBids)
	s.router.Post("/v1/bids", s.handleCreateBid)
	s.router.Post("/v1/bids/calculate", s.handleCalculateBid)
	s.router.Get("/v1/bids/{id}", s.handleGetBid)
	s.router.Put("/v1/bids/{id}", s.handleUpdateBid)
	s.router.Delete("/v1/bids/{id}", s.handleDeleteBid)
	s.router.Get("/v1/bids/{id}/roi", s.handleBidROI)
	s.router.Post("/v1/bids/{id}/contextualize", s.handleContextualizeBid)

	s.router.Post("/v1/roi/analyze", s.handleAnalyzeROI)

	s.router.Post("/v1/benchmarks/compare", s.handleCompareBenchmarks)
	s.router.Get("/v1/benchmarks/industry-averages", s.handleIndustryAverages)

	s.router.Post("/v1/chains/nodes", s.handleRegisterNode)
	s.router.Get("/v1/chains/nodes/{id}", s.handleGetNode)
	s.router.Get("/v1/chains/nodes/{id}/heritage", s.handleNodeHeritage)
	s.router.Get("/v1/chains/nodes/{id}/metrics", s.handleNodeMetrics)
	s.router.Get("/v1/chains/nodes/{id}/analysis", s.handleNodeAnalysis)
	s.router.Get("/v1/chains/nodes/{id}/tree", s.handleNodeTree)
	s.router.Get("/v1/chains/snapshots/{id}", s.handleNodeSnapshot)

	s.router.Get("/v1/logs", s.handleLogs)
}

// handleRoot reports the service identity and the effective tracker settings.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "evmax-catalog",
		"status":  "running",
		"settings": map[string]interface{}{
			"max_chain_depth": s.settings.MaxChainDepth,
			"snapshot_ttl":    s.settings.SnapshotTTL.String(),
			"cycle_check":     s.settings.CycleCheckEnabled(),
			"roi_years":       s.settings.ROIAnalysisYears,
			"material_markup": s.settings.MaterialMarkup,
			"overhead_rate":   s.settings.OverheadRate,
			"profit_margin":   s.settings.ProfitMargin,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		common.Logger().Error("response encoding failed", "status", status, "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeChainError maps the tracker's typed failures onto HTTP statuses.
func writeChainError(w http.ResponseWriter, err error) {
	switch err.(type) {
	case chain.NodeNotFoundError:
		writeError(w, http.StatusNotFound, err)
	case chain.DuplicateNodeError:
		writeError(w, http.StatusConflict, err)
	case chain.UnknownParentError, chain.CyclicDependencyError, chain.ChainDepthExceededError:
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
