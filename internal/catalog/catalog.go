// File path: internal/catalog/catalog.go

// Package catalog serves the static EV charging installation cost-code
// catalog. The data never mutates at runtime; lookups are index-backed.
package catalog

import (
	"sort"
	"strings"
	"sync"
)

var (
	indexOnce sync.Once
	byCode    map[string]CostCode
)

func ensureIndex() {
	indexOnce.Do(func() {
		byCode = make(map[string]CostCode, len(costCodes))
		for _, code := range costCodes {
			byCode[code.Code] = code
		}
	})
}

// All returns a copy of the full catalog in canonical order.
func All() []CostCode {
	out := make([]CostCode, len(costCodes))
	copy(out, costCodes)
	return out
}

// ByCode looks up a cost code by its identifier, case-insensitively.
func ByCode(code string) (CostCode, bool) {
	ensureIndex()
	entry, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return entry, ok
}

// FilterOptions control List results. Zero values mean no filtering.
type FilterOptions struct {
	Category Category
	Search   string
	Offset   int
	Limit    int
}

// List returns catalog entries matching the filter plus the pre-pagination
// total.
func List(opts FilterOptions) ([]CostCode, int) {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	matched := make([]CostCode, 0, len(costCodes))
	for _, code := range costCodes {
		if opts.Category != "" && code.Category != opts.Category {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(code.Code + " " + code.Description)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		matched = append(matched, code)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Code < matched[j].Code })

	total := len(matched)
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	matched = matched[offset:]
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, total
}
