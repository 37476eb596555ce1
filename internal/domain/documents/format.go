package documents

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaskedDate stands in for dates that have not been entered yet. Contracts
// are routinely drafted before dates are fixed, so an empty date is a
// placeholder, never an error.
const MaskedDate = "202X年  月  日"

// FormatDate renders an ISO date as {year}年{month}月{day}日 without zero
// padding. Empty or unparseable input yields the masked placeholder.
func FormatDate(iso string) string {
	if iso == "" {
		return MaskedDate
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return MaskedDate
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// FormatYen renders an integer yen amount with thousands separators, e.g.
// "¥ 1,234,567". Negative amounts keep the sign ahead of the marker.
func FormatYen(v int64) string {
	if v < 0 {
		return "-¥ " + groupDigits(-v)
	}
	return "¥ " + groupDigits(v)
}

// FormatQuantity trims a decimal quantity to its shortest representation
// (2 stays 2, 1.5 stays 1.5).
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
