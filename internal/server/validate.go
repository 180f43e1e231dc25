package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/raine/resale-price-api/internal/pricing"
)

var requiredFields = []string{"productName", "condition", "usageMonths", "warranty", "originalPrice"}

// Validation failures surface verbatim as the 400 error body, so the
// messages are part of the API contract.
var (
	errInvalidBody      = errors.New("Invalid request body")
	errMissingFields    = errors.New("Missing required fields")
	errNonPositivePrice = errors.New("Original price must be greater than 0")
	errNegativeUsage    = errors.New("Usage months cannot be negative")
	errInvalidCondition = errors.New("Invalid condition")
)

func invalidInput(detail string) error {
	return fmt.Errorf("Invalid input: %s", detail)
}

// parseQuery validates a raw /api/predict payload and coerces it into a
// ProductQuery. Numeric fields accept JSON numbers or numeric strings;
// warranty accepts a bool or a yes/no string. No side effects.
func parseQuery(body []byte) (pricing.ProductQuery, error) {
	var q pricing.ProductQuery

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return q, errInvalidBody
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return q, errMissingFields
		}
	}

	name, ok := raw["productName"].(string)
	if !ok {
		return q, invalidInput("productName must be a string")
	}
	q.ProductName = strings.TrimSpace(name)

	if q.Condition, ok = raw["condition"].(string); !ok {
		return q, invalidInput("condition must be a string")
	}

	if q.UsageMonths, ok = coerceInt(raw["usageMonths"]); !ok {
		return q, invalidInput("usageMonths must be a whole number")
	}

	if q.Warranty, ok = coerceBool(raw["warranty"]); !ok {
		return q, invalidInput("warranty must be a yes/no value")
	}

	if q.OriginalPrice, ok = coerceFloat(raw["originalPrice"]); !ok {
		return q, invalidInput("originalPrice must be a number")
	}

	if q.OriginalPrice <= 0 {
		return q, errNonPositivePrice
	}
	if q.UsageMonths < 0 {
		return q, errNegativeUsage
	}
	if !pricing.ValidCondition(q.Condition) {
		return q, errInvalidCondition
	}

	return q, nil
}

func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		// Fractional JSON numbers truncate toward zero.
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "true", "1":
			return true, true
		case "no", "false", "0", "":
			return false, true
		}
	}
	return false, false
}
