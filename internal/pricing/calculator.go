// Package pricing implements the resale price estimate for used consumer
// electronics: category depreciation lookup, condition weighting, compound
// monthly decay, warranty adjustment and the 10% price floor.
package pricing

import "math"

// warrantyBonus is the multiplier applied when the item still has warranty.
const warrantyBonus = 1.05

// priceFloorRatio is the minimum estimate as a fraction of the original
// price.
const priceFloorRatio = 0.1

// ProductQuery is a validated pricing request. It is built once per
// request and never mutated.
type ProductQuery struct {
	ProductName   string  `json:"productName"`
	Condition     string  `json:"condition"`
	UsageMonths   int     `json:"usageMonths"`
	Warranty      bool    `json:"warranty"`
	OriginalPrice float64 `json:"originalPrice"`
}

// MarketComparison holds the estimate scaled to different sales channels.
type MarketComparison struct {
	Online    float64 `json:"online"`
	Retail    float64 `json:"retail"`
	Wholesale float64 `json:"wholesale"`
}

// Depreciation summarizes the value lost since purchase.
type Depreciation struct {
	PriceLoss           float64 `json:"priceLoss"`
	PercentageLoss      float64 `json:"percentageLoss"`
	MonthlyDepreciation float64 `json:"monthlyDepreciation"`
}

// Estimate is the full pricing result for a query.
type Estimate struct {
	EstimatedMarketPrice float64          `json:"estimatedMarketPrice"`
	MarketComparison     MarketComparison `json:"marketComparison"`
	Depreciation         Depreciation     `json:"depreciation"`
	Recommendation       string           `json:"recommendation"`
}

// Calculate derives a price estimate from a validated query. It is a pure
// function: identical queries yield identical estimates, and it cannot fail
// given OriginalPrice > 0.
//
// The recommendation label is filled in separately with Recommend, keeping
// this function a straight transcription of the formula.
func Calculate(q ProductQuery) Estimate {
	monthlyRate := BaseDepreciation(q.ProductName) / 12

	conditionPrice := q.OriginalPrice * conditionMultiplier(q.Condition)
	decayedPrice := conditionPrice * math.Pow(1-monthlyRate, float64(q.UsageMonths))

	marketPrice := decayedPrice
	if q.Warranty {
		marketPrice *= warrantyBonus
	}

	// Price floor: never below 10% of the original price.
	marketPrice = math.Max(marketPrice, q.OriginalPrice*priceFloorRatio)

	priceLoss := q.OriginalPrice - marketPrice
	percentageLoss := priceLoss / q.OriginalPrice * 100

	return Estimate{
		EstimatedMarketPrice: round2(marketPrice),
		MarketComparison: MarketComparison{
			Online:    round2(marketPrice * 0.95),
			Retail:    round2(marketPrice * 1.05),
			Wholesale: round2(marketPrice * 0.80),
		},
		Depreciation: Depreciation{
			PriceLoss:           round2(priceLoss),
			PercentageLoss:      round2(percentageLoss),
			MonthlyDepreciation: round2(monthlyRate * 100),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
