// Package pricing implements the enrollment price pipeline: parsing
// author-entered price strings, resolving the effective base price of a
// course, and computing promo code discounts.
package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"shikkha/models"
)

// ErrInvalidPrice is returned when a price string has no parseable
// numeric content.
var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice extracts the numeric value from a display price string.
// Currency glyphs and separators are stripped ("৳1,000" -> 1000).
// Empty or non-numeric input is an explicit error, never silently 0.
func ParsePrice(s string) (float64, error) {
	cleaned := stripNonNumeric(s)
	if cleaned == "" {
		return 0, ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// ParsePriceLenient is the tolerant form used for optional price fields:
// anything unparseable degrades to 0.
func ParsePriceLenient(s string) float64 {
	v, err := ParsePrice(s)
	if err != nil {
		return 0
	}
	return v
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		// The sign is kept so negative inputs fail validation instead
		// of parsing as their absolute value.
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveBasePrice computes the effective price of a course at the
// given instant. An open pre-booking window (date not passed, seats
// left) takes precedence, then a positive discount price, then the
// regular price. The field finally selected must parse; optional fields
// that lose the fall-through are allowed to be blank or malformed.
func ResolveBasePrice(course *models.Course, now time.Time) (float64, error) {
	if course.PrebookingOpen(now) {
		return ParsePrice(course.PrebookingPrice)
	}
	if discount := ParsePriceLenient(course.DiscountPrice); discount > 0 {
		return discount, nil
	}
	return ParsePrice(course.Price)
}

// PromoDiscount computes the discount amount a promo code grants
// against a base price. Fixed codes discount their face value;
// percentage codes discount basePrice*value/100 rounded half-even to
// two decimals.
func PromoDiscount(promo *models.PromoCode, basePrice float64) float64 {
	switch promo.Type {
	case models.PromoTypePercentage:
		return Round2(basePrice * promo.Value / 100)
	default:
		return promo.Value
	}
}

// FinalPrice applies a discount to a base price, clamped at zero.
func FinalPrice(basePrice, discount float64) float64 {
	final := Round2(basePrice - discount)
	if final < 0 {
		return 0
	}
	return final
}

// Round2 rounds half-even to two decimal places.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
