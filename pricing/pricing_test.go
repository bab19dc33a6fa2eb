package pricing

import (
	"testing"
	"time"

	"shikkha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"plain", "1000", 1000, false},
		{"taka glyph", "৳1000", 1000, false},
		{"thousands separator", "৳1,000", 1000, false},
		{"decimal", "৳499.50", 499.50, false},
		{"whitespace and suffix", " 250 BDT ", 250, false},
		{"empty", "", 0, true},
		{"no digits", "free", 0, true},
		{"only glyph", "৳", 0, true},
		{"multiple dots", "1.2.3", 0, true},
		{"negative", "-100", 0, true},
		{"negative with glyph", "৳-100", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceLenient(t *testing.T) {
	assert.Equal(t, 0.0, ParsePriceLenient("not a price"))
	assert.Equal(t, 750.0, ParsePriceLenient("৳750"))
}

func TestResolveBasePrice_PrebookingWindow(t *testing.T) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	course := &models.Course{
		Price:             "৳1000",
		DiscountPrice:     "৳800",
		IsPrebooking:      true,
		PrebookingPrice:   "৳500",
		PrebookingEndDate: &tomorrow,
	}

	got, err := ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got, "active pre-booking ignores price and discountPrice")
}

func TestResolveBasePrice_PrebookingExpired(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	course := &models.Course{
		Price:             "৳1000",
		DiscountPrice:     "৳800",
		IsPrebooking:      true,
		PrebookingPrice:   "৳500",
		PrebookingEndDate: &yesterday,
	}

	got, err := ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 800.0, got, "expired pre-booking falls through to discount price")
}

func TestResolveBasePrice_PrebookingSeatsFull(t *testing.T) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	course := &models.Course{
		Price:             "৳1000",
		DiscountPrice:     "৳800",
		IsPrebooking:      true,
		PrebookingPrice:   "৳500",
		PrebookingEndDate: &tomorrow,
		PrebookingTarget:  50,
		PrebookingCount:   50,
	}

	got, err := ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 800.0, got, "a filled seat target closes the window before its end date")

	course.PrebookingCount = 49
	got, err = ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got)
}

func TestResolveBasePrice_DiscountChain(t *testing.T) {
	now := time.Now()

	course := &models.Course{Price: "৳1000", DiscountPrice: "৳800"}
	got, err := ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 800.0, got)

	course = &models.Course{Price: "৳1000"}
	got, err = ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	// Malformed optional discount is ignored, not an error.
	course = &models.Course{Price: "৳1000", DiscountPrice: "n/a"}
	got, err = ResolveBasePrice(course, now)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)
}

func TestResolveBasePrice_MalformedBaseIsError(t *testing.T) {
	_, err := ResolveBasePrice(&models.Course{Price: ""}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPrice)

	tomorrow := time.Now().Add(24 * time.Hour)
	_, err = ResolveBasePrice(&models.Course{
		IsPrebooking:      true,
		PrebookingPrice:   "coming soon",
		PrebookingEndDate: &tomorrow,
		Price:             "৳1000",
	}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPrice, "selected pre-booking price must parse")
}

func TestPromoDiscount(t *testing.T) {
	fixed := &models.PromoCode{Type: models.PromoTypeFixed, Value: 150}
	assert.Equal(t, 150.0, PromoDiscount(fixed, 1000))

	percentage := &models.PromoCode{Type: models.PromoTypePercentage, Value: 10}
	assert.Equal(t, 100.0, PromoDiscount(percentage, 1000))

	// Half-even rounding on fractional results.
	oddRate := &models.PromoCode{Type: models.PromoTypePercentage, Value: 3}
	assert.Equal(t, 7.54, PromoDiscount(oddRate, 251.50)) // 7.545 rounds to even
}

func TestFinalPrice(t *testing.T) {
	assert.Equal(t, 900.0, FinalPrice(1000, 100))
	assert.Equal(t, 0.0, FinalPrice(100, 150), "discount larger than price clamps to zero")
}

// A ৳1000 course with a 10% percentage promo checks out at 900.
func TestPercentagePromoScenario(t *testing.T) {
	course := &models.Course{Price: "৳1000"}
	base, err := ResolveBasePrice(course, time.Now())
	require.NoError(t, err)

	promo := &models.PromoCode{Type: models.PromoTypePercentage, Value: 10}
	discount := PromoDiscount(promo, base)

	assert.Equal(t, 100.0, discount)
	assert.Equal(t, 900.0, FinalPrice(base, discount))
}
