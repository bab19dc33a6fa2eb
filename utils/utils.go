package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReferralCode derives a shareable referral code from a name
// plus a short random suffix.
func GenerateReferralCode(name string) string {
	prefix := ""
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			prefix += string(r)
		}
		if len(prefix) == 4 {
			break
		}
	}
	if prefix == "" {
		prefix = "USER"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return prefix + "-" + suffix
}

// GeneratePromoCode makes a random uppercase promo code.
func GeneratePromoCode() string {
	return "PROMO-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// DayOf truncates a timestamp to UTC day granularity. Attendance rows
// and the date query filter both key on this, so stored and queried
// dates compare in a single location regardless of server timezone.
func DayOf(ts time.Time) time.Time {
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
