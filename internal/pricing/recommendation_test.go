package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendThresholds(t *testing.T) {
	tests := []struct {
		marketPrice float64
		want        string
	}{
		{900, "Excellent - Strong market demand"},
		{701, "Excellent - Strong market demand"},
		{700, "Good - Reasonable resale value"}, // boundary: strict greater-than
		{505.62, "Good - Reasonable resale value"},
		{500, "Fair - Moderate depreciation"},
		{301, "Fair - Moderate depreciation"},
		{300, "Poor - High depreciation rate"},
		{100, "Poor - High depreciation rate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recommend(tt.marketPrice, 1000), "marketPrice=%v", tt.marketPrice)
	}
}
