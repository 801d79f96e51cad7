// File path: internal/pricing/roi.go
package pricing

import (
	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
)

// CalculateROI projects revenue against the bid's total cost over the
// configured number of years. A nil annualOpCostPerPort falls back to the
// configured per-port operating cost; an explicit zero is honored.
func (c *Calculator) CalculateROI(bid BidCalculation, annualRevPerPort float64, annualOpCostPerPort *float64) ROIAnalysis {
	if annualRevPerPort <= 0 {
		annualRevPerPort = c.settings.AnnualRevenuePerPort
	}
	opCostPerPort := c.settings.AnnualOperatingCostPerPort
	if annualOpCostPerPort != nil && *annualOpCostPerPort >= 0 {
		opCostPerPort = *annualOpCostPerPort
	}
	years := c.settings.ROIAnalysisYears

	ports := float64(bid.NumPorts)
	investment := bid.TotalCost
	totalRevenue := annualRevPerPort * ports
	operatingCost := opCostPerPort * ports
	netIncome := totalRevenue - operatingCost

	// No payback when the project never nets income; +Inf is not
	// JSON-encodable, so the field stays nil instead.
	var payback *float64
	if netIncome > 0 {
		value := round2(investment / netIncome)
		payback = &value
	}
	roiPct := 0.0
	if investment > 0 {
		roiPct = netIncome / investment * 100
	}

	yearsF := float64(years)
	projectedProfit := totalRevenue*yearsF - operatingCost*yearsF - investment
	projectedROI := 0.0
	if investment > 0 {
		projectedROI = projectedProfit / investment * 100
	}

	telemetry.RecordROI()
	return ROIAnalysis{
		ProjectName:         bid.ProjectName,
		InitialInvestment:   round2(investment),
		AnnualRevPerPort:    annualRevPerPort,
		TotalAnnualRevenue:  round2(totalRevenue),
		AnnualOperatingCost: round2(operatingCost),
		AnnualNetIncome:     round2(netIncome),
		PaybackYears:        payback,
		ROIPercentage:       round2(roiPct),
		ProjectionYears:     years,
		ProjectedNetProfit:  round2(projectedProfit),
		ProjectedROIPct:     round2(projectedROI),
	}
}

// BidROI summarizes profitability for a stored bid's revenue/cost estimates.
type BidROI struct {
	ROIPercentage    float64 `json:"roi_percentage"`
	Profit           float64 `json:"profit"`
	PaybackMonths    int     `json:"payback_months"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
	EstimatedCost    float64 `json:"estimated_cost"`
	MonthlyProfit    float64 `json:"monthly_profit"`
}

// CalculateBidROI computes roi/profit/payback for a stored bid.
func CalculateBidROI(estimatedRevenue, estimatedCost float64, durationMonths int) BidROI {
	profit := estimatedRevenue - estimatedCost
	roiPct := 0.0
	if estimatedCost > 0 {
		roiPct = profit / estimatedCost * 100
	}
	monthlyProfit := 0.0
	if durationMonths > 0 {
		monthlyProfit = profit / float64(durationMonths)
	}
	paybackMonths := 0
	if monthlyProfit > 0 {
		paybackMonths = int(estimatedCost / monthlyProfit)
	}
	return BidROI{
		ROIPercentage:    round2(roiPct),
		Profit:           round2(profit),
		PaybackMonths:    paybackMonths,
		EstimatedRevenue: estimatedRevenue,
		EstimatedCost:    estimatedCost,
		MonthlyProfit:    round2(monthlyProfit),
	}
}
