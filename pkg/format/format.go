// Package format converts between the structured numeric values stored on
// care templates and the display strings the admin UI shows ("37.5-38°C",
// "21 ngày"), plus Vietnamese currency formatting.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeRe  = regexp.MustCompile(`(\d+\.?\d*)-(\d+\.?\d*)`)
	scalarRe = regexp.MustCompile(`(\d+\.?\d*)`)
)

// Scalar unit labels form closed sets per field.
const (
	UnitDays    = "ngày"
	UnitWeeks   = "tuần"
	UnitHours   = "giờ"
	UnitMinutes = "phút"
)

// FormatRange renders a numeric range with its unit, e.g. 37.5, 38, "°C"
// becomes "37.5-38°C". Trailing zeros are trimmed so the round trip through
// ParseRange is exact.
func FormatRange(min, max float64, unit string) string {
	return formatNumber(min) + "-" + formatNumber(max) + unit
}

// ParseRange extracts the first two hyphen-separated numbers from a display
// string. Decimal and integer components are both accepted.
func ParseRange(s string) (float64, float64, error) {
	m := rangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("no numeric range in %q", s)
	}
	min, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, err
	}
	max, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

// FormatScalar renders a value with a unit label, e.g. "21 ngày" or "2 giờ".
func FormatScalar(value float64, unit string) string {
	return formatNumber(value) + " " + unit
}

// ParseScalar extracts the leading number from a formatted scalar string.
func ParseScalar(s string) (float64, error) {
	m := scalarRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("no number in %q", s)
	}
	return strconv.ParseFloat(m[1], 64)
}

// FormatVND renders an amount as Vietnamese Dong with dot thousands
// separators and the trailing currency symbol, e.g. "5.200.000 ₫".
func FormatVND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := b.String() + " ₫"
	if neg {
		return "-" + out
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
