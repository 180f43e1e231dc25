package llm

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/raine/resale-price-api/internal/pricing"
)

const analysisPromptTemplate = `
	Analyze the pricing data for this product and provide market insights.

	Product: %s
	Condition: %s
	Usage Duration: %d months
	Warranty: %s
	Original Price: $%.2f

	Calculated Market Data:
	- Estimated Market Price: $%.2f
	- Online Price Range: $%.2f
	- Retail Price Range: $%.2f
	- Wholesale Price: $%.2f
	- Total Depreciation: %v%%
	- Monthly Depreciation Rate: %v%%

	Please provide:
	1. Market analysis summary (2-3 sentences)
	2. Key factors affecting the price (3 points)
	3. Selling recommendations (2-3 tips)
	4. Price comparison with market trends
	5. Best platforms to sell for optimal price

	Keep the response concise and practical.`

// BuildAnalysisPrompt formats a query and its estimate into the analysis
// prompt sent to the insight provider. Assumes a well-formed estimate.
func BuildAnalysisPrompt(q pricing.ProductQuery, est pricing.Estimate) string {
	warranty := "No"
	if q.Warranty {
		warranty = "Yes"
	}

	return fmtf(analysisPromptTemplate,
		q.ProductName,
		q.Condition,
		q.UsageMonths,
		warranty,
		q.OriginalPrice,
		est.EstimatedMarketPrice,
		est.MarketComparison.Online,
		est.MarketComparison.Retail,
		est.MarketComparison.Wholesale,
		est.Depreciation.PercentageLoss,
		est.Depreciation.MonthlyDepreciation,
	)
}

func fmtf(text string, a ...any) string {
	return fmt.Sprintf(strings.TrimSpace(dedent.Dedent(text)), a...)
}
