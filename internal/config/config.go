// File path: internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Settings holds the business-rate and chain-tracker configuration consumed by
// the pricing and chain packages. Values are merged from an optional JSON file
// (EVMAX_CONFIG_FILE) and EVMAX_* environment variables, with env taking
// precedence.
type Settings struct {
	MaterialMarkup        float64 `json:"material_markup"`
	OverheadRate          float64 `json:"overhead_rate"`
	ExcavationContingency float64 `json:"ga_excavation_contingency"`
	ProfitMargin          float64 `json:"target_profit_margin"`
	ROIAnalysisYears      int     `json:"roi_analysis_years"`

	AnnualRevenuePerPort       float64 `json:"annual_revenue_per_port"`
	AnnualOperatingCostPerPort float64 `json:"annual_operating_cost_per_port"`

	MaxChainDepth int  `json:"max_chain_depth"`
	CycleCheck    *bool `json:"enable_circular_dependency_check"`

	SnapshotTTL       time.Duration `json:"-"`
	SnapshotTTLString string        `json:"snapshot_ttl"`
}

// CycleCheckEnabled reports the cycle-check flag, defaulting to enabled.
func (s Settings) CycleCheckEnabled() bool {
	if s.CycleCheck == nil {
		return true
	}
	return *s.CycleCheck
}

func (s Settings) Merge(override Settings) Settings {
	result := s
	if override.MaterialMarkup > 0 {
		result.MaterialMarkup = override.MaterialMarkup
	}
	if override.OverheadRate > 0 {
		result.OverheadRate = override.OverheadRate
	}
	if override.ExcavationContingency > 0 {
		result.ExcavationContingency = override.ExcavationContingency
	}
	if override.ProfitMargin > 0 {
		result.ProfitMargin = override.ProfitMargin
	}
	if override.ROIAnalysisYears > 0 {
		result.ROIAnalysisYears = override.ROIAnalysisYears
	}
	if override.AnnualRevenuePerPort > 0 {
		result.AnnualRevenuePerPort = override.AnnualRevenuePerPort
	}
	if override.AnnualOperatingCostPerPort > 0 {
		result.AnnualOperatingCostPerPort = override.AnnualOperatingCostPerPort
	}
	if override.MaxChainDepth > 0 {
		result.MaxChainDepth = override.MaxChainDepth
	}
	if override.CycleCheck != nil {
		result.CycleCheck = override.CycleCheck
	}
	if override.SnapshotTTL > 0 {
		result.SnapshotTTL = override.SnapshotTTL
	}
	if strings.TrimSpace(override.SnapshotTTLString) != "" {
		result.SnapshotTTLString = strings.TrimSpace(override.SnapshotTTLString)
	}
	return result
}

// Load builds Settings from the config file and environment.
func Load() (Settings, error) {
	cfg := Settings{}
	if path := strings.TrimSpace(os.Getenv("EVMAX_CONFIG_FILE")); path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Settings{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	envCfg, err := loadEnv()
	if err != nil {
		return Settings{}, err
	}
	cfg = cfg.Merge(envCfg)
	cfg.applyDefaults()
	return cfg, nil
}

func (s *Settings) applyDefaults() {
	if s.MaterialMarkup <= 0 {
		s.MaterialMarkup = 0.10
	}
	if s.OverheadRate <= 0 {
		s.OverheadRate = 0.18
	}
	if s.ExcavationContingency <= 0 {
		s.ExcavationContingency = 0.15
	}
	if s.ProfitMargin <= 0 {
		s.ProfitMargin = 0.27
	}
	if s.ROIAnalysisYears <= 0 {
		s.ROIAnalysisYears = 10
	}
	if s.AnnualRevenuePerPort <= 0 {
		s.AnnualRevenuePerPort = 5000
	}
	if s.AnnualOperatingCostPerPort <= 0 {
		s.AnnualOperatingCostPerPort = 800
	}
	if s.MaxChainDepth <= 0 {
		s.MaxChainDepth = 10
	}
	if s.SnapshotTTL <= 0 {
		if s.SnapshotTTLString != "" {
			if parsed, err := time.ParseDuration(s.SnapshotTTLString); err == nil {
				s.SnapshotTTL = parsed
			}
		}
		if s.SnapshotTTL <= 0 {
			s.SnapshotTTL = 5 * time.Minute
		}
	}
}

func loadFile(path string) (Settings, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func loadEnv() (Settings, error) {
	cfg := Settings{}
	rates := map[string]*float64{
		"EVMAX_MATERIAL_MARKUP":           &cfg.MaterialMarkup,
		"EVMAX_OVERHEAD_RATE":             &cfg.OverheadRate,
		"EVMAX_EXCAVATION_CONTINGENCY":    &cfg.ExcavationContingency,
		"EVMAX_PROFIT_MARGIN":             &cfg.ProfitMargin,
		"EVMAX_ANNUAL_REVENUE_PER_PORT":   &cfg.AnnualRevenuePerPort,
		"EVMAX_ANNUAL_OPERATING_PER_PORT": &cfg.AnnualOperatingCostPerPort,
	}
	for key, target := range rates {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", key, err)
		}
		if value > 0 {
			*target = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv("EVMAX_ROI_YEARS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("parse EVMAX_ROI_YEARS: %w", err)
		}
		if value > 0 {
			cfg.ROIAnalysisYears = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv("EVMAX_MAX_CHAIN_DEPTH")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("parse EVMAX_MAX_CHAIN_DEPTH: %w", err)
		}
		if value > 0 {
			cfg.MaxChainDepth = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv("EVMAX_CYCLE_CHECK")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("parse EVMAX_CYCLE_CHECK: %w", err)
		}
		cfg.CycleCheck = &value
	}
	if raw := strings.TrimSpace(os.Getenv("EVMAX_SNAPSHOT_TTL")); raw != "" {
		cfg.SnapshotTTLString = raw
		if parsed, err := time.ParseDuration(raw); err == nil {
			cfg.SnapshotTTL = parsed
		}
	}
	return cfg, nil
}
