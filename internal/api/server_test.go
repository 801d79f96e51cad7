// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/evmaxhq/evmax-catalog/internal/chain"
	"github.com/evmaxhq/evmax-catalog/internal/config"
	"github.com/evmaxhq/evmax-catalog/internal/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "api-test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	settings := config.Settings{
		MaterialMarkup:             0.10,
		OverheadRate:               0.18,
		ExcavationContingency:      0.15,
		ProfitMargin:               0.27,
		ROIAnalysisYears:           10,
		AnnualRevenuePerPort:       5000,
		AnnualOperatingCostPerPort: 800,
		MaxChainDepth:              10,
		SnapshotTTL:                time.Minute,
	}
	chains := chain.NewStore(
		chain.WithMaxDepth(settings.MaxChainDepth),
		chain.WithSnapshotTTL(settings.SnapshotTTL),
	)
	srv, err := NewServer(store, chains, settings)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCostCodeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/cost-codes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var listed costCodeListResponse
	decodeBody(t, rec, &listed)
	if listed.Total != 95 {
		t.Fatalf("expected 95 codes, got %d", listed.Total)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/cost-codes?category=Labor&limit=3", nil)
	decodeBody(t, rec, &listed)
	if len(listed.CostCodes) != 3 {
		t.Fatalf("expected limited page of 3, got %d", len(listed.CostCodes))
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/cost-codes/EQUIP-001", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/v1/cost-codes/EQUIP-999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing code: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/cost-codes/categories", nil)
	var categories categoriesResponse
	decodeBody(t, rec, &categories)
	if len(categories.Categories) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(categories.Categories))
	}
}

func TestProductCRUDAndQuote(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/products", productRequest{
		SKU:       "CHG-L2-40A",
		Name:      "Level 2 Charger 40A",
		Category:  "Equipment",
		BasePrice: 4200,
		BaseCost:  3100,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var product productResponse
	decodeBody(t, rec, &product)

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/v1/products/%d", product.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/products/quote", quoteRequest{
		SKU:          "CHG-L2-40A",
		Quantity:     100,
		Season:       "summer",
		CustomerTier: "premium",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("quote: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var quote quoteResponse
	decodeBody(t, rec, &quote)
	if quote.VolumeDiscountPercent != 10 {
		t.Fatalf("expected 10%% volume discount at 100 units, got %.0f", quote.VolumeDiscountPercent)
	}
	// 4200 * 0.90 * 0.95 * 0.95 = 3412.80
	if quote.UnitPrice != 3412.80 {
		t.Fatalf("expected unit price 3412.80, got %.2f", quote.UnitPrice)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/products/quote", quoteRequest{SKU: "MISSING", Quantity: 5})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("quote for missing product: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/v1/products/%d", product.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/v1/products/%d", product.ID), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted product: expected 404, got %d", rec.Code)
	}
}

func TestBOMAndBidCalculation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/bom/generate", bomRequest{
		ProjectName:  "Depot",
		ChargingType: "L2",
		NumPorts:     4,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("bom: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var bom bomResponse
	decodeBody(t, rec, &bom)
	if len(bom.LineItems) == 0 || bom.TotalCost <= 0 {
		t.Fatalf("unexpected bom response: %+v", bom)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/bids/calculate", bomRequest{
		ProjectName:  "Depot",
		ChargingType: "DC_FAST",
		NumPorts:     2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("calculate: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var bid map[string]interface{}
	decodeBody(t, rec, &bid)
	if bid["total_cost"].(float64) <= bid["subtotal"].(float64) {
		t.Fatalf("markup chain must raise the total above subtotal")
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/bids/calculate", bomRequest{
		ProjectName:  "Bad",
		ChargingType: "HYDROGEN",
		NumPorts:     2,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid type: expected 400, got %d", rec.Code)
	}
}

func TestBidLifecycleWithROIAndContextualize(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/bids", bidRequest{
		ProjectName: "Riverside Garage",
		ClientName:  "Acme Fleet",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create empty bid: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/bids", map[string]interface{}{
		"project_name": "Main Street Chargers",
		"tax_rate":     8,
		"line_items": []map[string]interface{}{
			{"cost_code": "EQUIP-001", "quantity": 2},
			{"cost_code": "LABOR-001", "quantity": 32},
		},
		"estimated_revenue": 50000,
		"duration_months":   12,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create bid: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created bidResponse
	decodeBody(t, rec, &created)
	if created.Subtotal <= 0 || created.TotalAmount <= created.Subtotal {
		t.Fatalf("expected priced line items with tax, got %+v", created)
	}

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/v1/bids/%d/roi", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("bid roi: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/v1/bids/%d/contextualize", created.ID), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("contextualize: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var ctxResp contextualizeResponse
	decodeBody(t, rec, &ctxResp)
	if ctxResp.Node == nil || ctxResp.Node.Depth != 1 {
		t.Fatalf("expected bid node at depth 1, got %+v", ctxResp.Node)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/chains/nodes/"+created.BidNumber+"/heritage", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("heritage: expected 200, got %d", rec.Code)
	}
	var heritage heritageResponse
	decodeBody(t, rec, &heritage)
	if heritage.TotalAncestors != 2 {
		t.Fatalf("expected 2 cost-code ancestors, got %d", heritage.TotalAncestors)
	}

	// Contextualizing again re-registers the same node id.
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/v1/bids/%d/contextualize", created.ID), nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("repeat contextualize: expected 409, got %d", rec.Code)
	}
}

func TestROIAndBenchmarkEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/roi/analyze", roiRequest{
		ProjectName:  "Depot",
		ChargingType: "L2",
		NumPorts:     4,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("roi: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var roi map[string]interface{}
	decodeBody(t, rec, &roi)
	if roi["projection_years"].(float64) != 10 {
		t.Fatalf("expected 10-year projection, got %v", roi["projection_years"])
	}
	// Omitted operating cost falls back to the configured $800/port.
	if roi["annual_operating_cost"].(float64) != 3200 {
		t.Fatalf("expected default operating cost 3200, got %v", roi["annual_operating_cost"])
	}

	// Operating cost above revenue: no payback, but the response must still
	// be a decodable JSON document with an explicit null.
	rec = doJSON(t, srv, http.MethodPost, "/v1/roi/analyze", map[string]interface{}{
		"project_name":                   "Depot",
		"charging_type":                  "L2",
		"num_ports":                      4,
		"annual_operating_cost_per_port": 6000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("roi without payback: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var noPayback map[string]interface{}
	decodeBody(t, rec, &noPayback)
	value, present := noPayback["payback_period_years"]
	if !present || value != nil {
		t.Fatalf("expected null payback for negative net income, got %v", value)
	}
	if noPayback["annual_net_income"].(float64) >= 0 {
		t.Fatalf("expected negative net income, got %v", noPayback["annual_net_income"])
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/benchmarks/compare", bomRequest{
		ProjectName:  "Depot",
		ChargingType: "L2",
		NumPorts:     4,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("compare: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/benchmarks/industry-averages", nil)
	var averages map[string]float64
	decodeBody(t, rec, &averages)
	if averages["l2_cost_per_port_keystone"] != 12000 {
		t.Fatalf("unexpected keystone average: %v", averages)
	}
}

func TestChainEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/chains/nodes", registerNodeRequest{
		NodeID:   "EQUIP-001",
		NodeType: "cost_code",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register root: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/chains/nodes", registerNodeRequest{
		NodeID:      "bid-100",
		NodeType:    "bid",
		ParentNodes: []string{"EQUIP-001"},
		Metadata:    map[string]interface{}{"project": "Depot"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register child: expected 201, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/chains/nodes", registerNodeRequest{
		NodeID:   "bid-100",
		NodeType: "bid",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/chains/nodes", registerNodeRequest{
		NodeID:      "orphan",
		NodeType:    "bid",
		ParentNodes: []string{"ghost"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown parent: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/chains/nodes/bid-100/analysis", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("analysis: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/chains/snapshots/bid-100", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("snapshot: expected 200, got %d", rec.Code)
	}
	var snap snapshotResponse
	decodeBody(t, rec, &snap)
	if snap.SnapshotID == "" || snap.ChainMetrics == nil || snap.Stale {
		t.Fatalf("unexpected snapshot response: %+v", snap)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/chains/snapshots/bid-100?include_metrics=false", nil)
	decodeBody(t, rec, &snap)
	if snap.ChainMetrics != nil {
		t.Fatalf("expected metrics omitted when include_metrics=false")
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/chains/snapshots/ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("snapshot for missing node: expected 404, got %d", rec.Code)
	}
}

func TestLogsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/v1/logs?limit=10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logs: expected 200, got %d", rec.Code)
	}
	var payload map[string]interface{}
	decodeBody(t, rec, &payload)
	if _, ok := payload["entries"]; !ok {
		t.Fatalf("expected entries field in logs response")
	}
}
