package pricing

import "strings"

// ProductCategory is static market reference data for one recognized
// product type.
type ProductCategory struct {
	Key              string
	Categories       []string
	BaseDepreciation float64
	MarketFactor     float64
}

// DefaultBaseDepreciation is the annual depreciation rate used when a
// product name matches no catalog entry.
const DefaultBaseDepreciation = 0.15

// Catalog holds the supported product types in a fixed order. Lookups scan
// it front to back and the first key contained in the product name wins, so
// the order here is the tie-break. Read-only after initialization.
var Catalog = []ProductCategory{
	{
		Key:              "iphone",
		Categories:       []string{"iPhone 14", "iPhone 13", "iPhone 12", "iPhone SE"},
		BaseDepreciation: 0.15,
		MarketFactor:     0.85,
	},
	{
		Key:              "macbook",
		Categories:       []string{"MacBook Pro", "MacBook Air", "MacBook"},
		BaseDepreciation: 0.12,
		MarketFactor:     0.80,
	},
	{
		Key:              "laptop",
		Categories:       []string{"Dell", "HP", "Lenovo", "ASUS"},
		BaseDepreciation: 0.15,
		MarketFactor:     0.75,
	},
	{
		Key:              "tablet",
		Categories:       []string{"iPad", "Samsung Tab", "iPad Pro"},
		BaseDepreciation: 0.14,
		MarketFactor:     0.78,
	},
	{
		Key:              "camera",
		Categories:       []string{"DSLR", "Mirrorless", "Action Camera"},
		BaseDepreciation: 0.10,
		MarketFactor:     0.82,
	},
	{
		Key:              "smartwatch",
		Categories:       []string{"Apple Watch", "Samsung Watch", "Fitbit"},
		BaseDepreciation: 0.18,
		MarketFactor:     0.72,
	},
	{
		Key:              "headphones",
		Categories:       []string{"AirPods", "Sony", "Bose", "JBL"},
		BaseDepreciation: 0.20,
		MarketFactor:     0.70,
	},
	{
		Key:              "gaming",
		Categories:       []string{"PlayStation", "Xbox", "Nintendo"},
		BaseDepreciation: 0.16,
		MarketFactor:     0.76,
	},
}

// ConditionMultipliers maps a physical-condition grade to the fraction of
// the original price it retains. Read-only after initialization.
var ConditionMultipliers = map[string]float64{
	"New":      0.95,
	"Like New": 0.85,
	"Good":     0.70,
	"Fair":     0.50,
	"Poor":     0.30,
}

// defaultConditionMultiplier applies when the condition label is unknown.
// Validation rejects unknown labels before they reach the calculator, so
// this only matters for direct callers.
const defaultConditionMultiplier = 0.70

// BaseDepreciation returns the annual depreciation rate for a product name.
// Matching is case-insensitive substring containment against catalog keys,
// first match wins.
func BaseDepreciation(productName string) float64 {
	name := strings.ToLower(productName)
	for _, cat := range Catalog {
		if strings.Contains(name, cat.Key) {
			return cat.BaseDepreciation
		}
	}
	return DefaultBaseDepreciation
}

// ValidCondition reports whether the condition label is one of the
// recognized grades.
func ValidCondition(condition string) bool {
	_, ok := ConditionMultipliers[condition]
	return ok
}

func conditionMultiplier(condition string) float64 {
	if m, ok := ConditionMultipliers[condition]; ok {
		return m
	}
	return defaultConditionMultiplier
}
