package report

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatDecimal formats f with thousands separators and at most digits
// decimals, rounding half away from zero. humanize drops extra digits
// instead of rounding them, so the value is rounded first.
func FormatDecimal(f float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	pow := math.Pow(10, float64(digits))
	if r := math.Round(f*pow) / pow; !math.IsInf(r, 0) && !math.IsNaN(r) {
		f = r
	}
	return humanize.CommafWithDigits(f, digits)
}

// FormatKm formats a kilometre distance as a whole number with thousands
// separators. Values past the int64 range stay exact to float precision.
func FormatKm(km float64) string {
	return humanize.Commaf(math.Round(km))
}
