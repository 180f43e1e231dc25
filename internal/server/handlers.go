package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/raine/resale-price-api/internal/llm"
	"github.com/raine/resale-price-api/internal/pricing"
)

type handler struct {
	insights       llm.InsightProvider
	insightTimeout time.Duration
}

type predictResponse struct {
	Success     bool                 `json:"success"`
	ProductData pricing.ProductQuery `json:"productData"`
	Prediction  pricing.Estimate     `json:"prediction"`
	AIInsights  string               `json:"aiInsights"`
	Timestamp   string               `json:"timestamp"`
}

func (h *handler) Index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

// Predict runs the full pipeline for one request: validate and coerce the
// payload, calculate the estimate, pick a recommendation, then fetch
// insight text. Only validation can fail; insight failures degrade into
// the aiInsights field.
func (h *handler) Predict(c *fiber.Ctx) error {
	q, err := parseQuery(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	est := pricing.Calculate(q)
	est.Recommendation = pricing.Recommend(est.EstimatedMarketPrice, q.OriginalPrice)

	prompt := llm.BuildAnalysisPrompt(q, est)
	insights := llm.FetchInsights(c.UserContext(), h.insights, prompt, h.insightTimeout)

	return c.JSON(predictResponse{
		Success:     true,
		ProductData: q,
		Prediction:  est,
		AIInsights:  insights,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

type productInfo struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}

func (h *handler) Products(c *fiber.Ctx) error {
	products := make([]productInfo, 0, len(pricing.Catalog))
	for _, cat := range pricing.Catalog {
		products = append(products, productInfo{Type: cat.Key, Categories: cat.Categories})
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "healthy",
		"timestamp":      time.Now().Format(time.RFC3339),
		"api_configured": h.insights != nil,
	})
}
