// File path: internal/catalog/catalog_test.go
package catalog

import (
	"strings"
	"testing"
)

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	if len(all) != 95 {
		t.Fatalf("expected 95 cost codes, got %d", len(all))
	}
	seen := make(map[string]struct{}, len(all))
	valid := make(map[Category]struct{})
	for _, category := range Categories() {
		valid[category] = struct{}{}
	}
	for _, code := range all {
		if _, dup := seen[code.Code]; dup {
			t.Fatalf("duplicate cost code %s", code.Code)
		}
		seen[code.Code] = struct{}{}
		if _, ok := valid[code.Category]; !ok {
			t.Fatalf("cost code %s has unknown category %q", code.Code, code.Category)
		}
		if code.UnitCost <= 0 {
			t.Fatalf("cost code %s has non-positive unit cost", code.Code)
		}
		if code.Unit == "" || code.Description == "" {
			t.Fatalf("cost code %s missing unit or description", code.Code)
		}
	}
}

func TestByCodeNormalizesInput(t *testing.T) {
	entry, ok := ByCode(" equip-001 ")
	if !ok {
		t.Fatalf("expected EQUIP-001 lookup to succeed")
	}
	if entry.Code != "EQUIP-001" {
		t.Fatalf("unexpected code %s", entry.Code)
	}
	if _, ok := ByCode("EQUIP-999"); ok {
		t.Fatalf("unexpected hit for missing code")
	}
}

func TestBOMCostCodesPresent(t *testing.T) {
	required := []string{
		"EQUIP-001", "EQUIP-003", "EQUIP-006", "EQUIP-008",
		"CONC-001", "CONC-008", "COND-002", "COND-007",
		"WIRE-001", "WIRE-010", "SITE-001", "GRND-001", "GRND-002",
		"SAFE-001", "LABOR-001", "LABOR-002", "REST-001", "REST-002",
	}
	for _, code := range required {
		if _, ok := ByCode(code); !ok {
			t.Fatalf("required cost code %s missing from catalog", code)
		}
	}
}

func TestListFilters(t *testing.T) {
	equipment, total := List(FilterOptions{Category: CategoryEquipment})
	if total == 0 || len(equipment) != total {
		t.Fatalf("expected unpaginated equipment listing, got %d/%d", len(equipment), total)
	}
	for _, code := range equipment {
		if code.Category != CategoryEquipment {
			t.Fatalf("unexpected category %s for %s", code.Category, code.Code)
		}
	}

	matched, total := List(FilterOptions{Search: "transformer"})
	if total == 0 {
		t.Fatalf("expected transformer matches")
	}
	for _, code := range matched {
		haystack := strings.ToLower(code.Code + " " + code.Description)
		if !strings.Contains(haystack, "transformer") {
			t.Fatalf("non-matching result %s", code.Code)
		}
	}

	page, total := List(FilterOptions{Offset: 10, Limit: 5})
	if total != 95 {
		t.Fatalf("expected full total 95, got %d", total)
	}
	if len(page) != 5 {
		t.Fatalf("expected page of 5, got %d", len(page))
	}
}

func TestTotalCost(t *testing.T) {
	entry, ok := ByCode("EQUIP-001")
	if !ok {
		t.Fatalf("lookup failed")
	}
	if got := entry.TotalCost(3); got != entry.UnitCost*3 {
		t.Fatalf("total cost mismatch: %.2f", got)
	}
}
