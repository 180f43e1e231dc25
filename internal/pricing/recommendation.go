package pricing

// Recommend maps retained value (market price as a percentage of the
// original price) to a qualitative selling recommendation. Thresholds are
// strict greater-than, checked in descending order.
func Recommend(marketPrice, originalPrice float64) string {
	retained := marketPrice / originalPrice * 100

	switch {
	case retained > 70:
		return "Excellent - Strong market demand"
	case retained > 50:
		return "Good - Reasonable resale value"
	case retained > 30:
		return "Fair - Moderate depreciation"
	default:
		return "Poor - High depreciation rate"
	}
}
