// Command pricecheck posts a pricing query to a running resale-price-api
// server and prints the estimate, a terminal stand-in for the web page.
//
// Usage:
//
//	pricecheck -name "iPhone 13" -condition Good -months 12 -warranty -price 800
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/raine/resale-price-api/internal/pricing"
)

type predictRequest struct {
	ProductName   string  `json:"productName"`
	Condition     string  `json:"condition"`
	UsageMonths   int     `json:"usageMonths"`
	Warranty      bool    `json:"warranty"`
	OriginalPrice float64 `json:"originalPrice"`
}

type predictResponse struct {
	Success     bool                 `json:"success"`
	ProductData pricing.ProductQuery `json:"productData"`
	Prediction  pricing.Estimate     `json:"prediction"`
	AIInsights  string               `json:"aiInsights"`
	Timestamp   string               `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type client struct {
	httpClient *resty.Client
}

func newClient(baseURL string) *client {
	return &client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *client) predict(ctx context.Context, req predictRequest) (*predictResponse, error) {
	result := &predictResponse{}
	apiErr := &errorResponse{}

	res, err := c.httpClient.NewRequest().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(apiErr).
		Post("/api/predict")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("request failed: %s (status: %d)", apiErr.Error, res.StatusCode())
		}
		return nil, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return result, nil
}

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "server base URL")
		name      = flag.String("name", "", "product name (required)")
		condition = flag.String("condition", "Good", "condition: New, Like New, Good, Fair, Poor")
		months    = flag.Int("months", 0, "usage duration in months")
		warranty  = flag.Bool("warranty", false, "item still has warranty")
		price     = flag.Float64("price", 0, "original purchase price (required)")
	)
	flag.Parse()

	if *name == "" || *price <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := newClient(*baseURL).predict(ctx, predictRequest{
		ProductName:   *name,
		Condition:     *condition,
		UsageMonths:   *months,
		Warranty:      *warranty,
		OriginalPrice: *price,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	p := res.Prediction
	fmt.Printf("%s (%s, %d months used)\n\n", res.ProductData.ProductName, res.ProductData.Condition, res.ProductData.UsageMonths)
	fmt.Printf("Estimated market price: $%.2f\n", p.EstimatedMarketPrice)
	fmt.Printf("  Online:              $%.2f\n", p.MarketComparison.Online)
	fmt.Printf("  Retail:              $%.2f\n", p.MarketComparison.Retail)
	fmt.Printf("  Wholesale:           $%.2f\n", p.MarketComparison.Wholesale)
	fmt.Printf("Value lost:             $%.2f (%.2f%%)\n", p.Depreciation.PriceLoss, p.Depreciation.PercentageLoss)
	fmt.Printf("Monthly depreciation:   %.2f%%\n", p.Depreciation.MonthlyDepreciation)
	fmt.Printf("Recommendation:         %s\n", p.Recommendation)
	fmt.Printf("\n%s\n", res.AIInsights)
}
