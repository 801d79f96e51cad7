// File path: internal/pricing/benchmark.go
package pricing

// Industry per-port estimates; adjust when actual market data lands.
const (
	keystoneL2PerPort     = 12000.0
	ggesL2PerPort         = 13500.0
	keystoneDCFastPerPort = 55000.0
	ggesDCFastPerPort     = 60000.0
)

// CompareBenchmarks positions a computed bid against Keystone and GGES
// per-port industry estimates.
func CompareBenchmarks(bid BidCalculation) BenchmarkComparison {
	keystonePerPort := keystoneL2PerPort
	ggesPerPort := ggesL2PerPort
	if bid.ChargingType == ChargingDCFast {
		keystonePerPort = keystoneDCFastPerPort
		ggesPerPort = ggesDCFastPerPort
	}

	ports := float64(bid.NumPorts)
	keystoneTotal := keystonePerPort * ports
	ggesTotal := ggesPerPort * ports

	keystoneSavings := keystoneTotal - bid.TotalCost
	ggesSavings := ggesTotal - bid.TotalCost

	keystonePct := 0.0
	if keystoneTotal > 0 {
		keystonePct = keystoneSavings / keystoneTotal * 100
	}
	ggesPct := 0.0
	if ggesTotal > 0 {
		ggesPct = ggesSavings / ggesTotal * 100
	}

	return BenchmarkComparison{
		ProjectName:  bid.ProjectName,
		ChargingType: bid.ChargingType,
		NumPorts:     bid.NumPorts,

		EvmaxCostPerPort:    bid.CostPerPort,
		EvmaxTotalCost:      bid.TotalCost,
		KeystoneCostPerPort: keystonePerPort,
		KeystoneTotalCost:   round2(keystoneTotal),
		GGESCostPerPort:     ggesPerPort,
		GGESTotalCost:       round2(ggesTotal),

		VsKeystoneSavings:    round2(keystoneSavings),
		VsGGESSavings:        round2(ggesSavings),
		VsKeystonePercentage: round2(keystonePct),
		VsGGESPercentage:     round2(ggesPct),
	}
}

// IndustryAverages returns benchmark data for comparison purposes.
func IndustryAverages() map[string]float64 {
	return map[string]float64{
		"l2_cost_per_port_keystone":      keystoneL2PerPort,
		"l2_cost_per_port_gges":          ggesL2PerPort,
		"dc_fast_cost_per_port_keystone": keystoneDCFastPerPort,
		"dc_fast_cost_per_port_gges":     ggesDCFastPerPort,
		"industry_average_l2":            (keystoneL2PerPort + ggesL2PerPort) / 2,
		"industry_average_dc_fast":       (keystoneDCFastPerPort + ggesDCFastPerPort) / 2,
	}
}
