package game

import (
	"fmt"
	"math"
)

var numberSuffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp"}

// FormatNumber renders a currency amount with idle-game suffixes.
// Values under 1000 show as plain integers.
func FormatNumber(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if v < 0 {
		return "-" + FormatNumber(-v)
	}
	if v < 1000 {
		return fmt.Sprintf("%d", int64(v))
	}
	tier := int(math.Log10(v) / 3)
	if tier >= len(numberSuffixes) {
		return fmt.Sprintf("%.2e", v)
	}
	scaled := v / math.Pow(1000, float64(tier))
	switch {
	case scaled >= 100:
		return fmt.Sprintf("%.0f%s", scaled, numberSuffixes[tier])
	case scaled >= 10:
		return fmt.Sprintf("%.1f%s", scaled, numberSuffixes[tier])
	default:
		return fmt.Sprintf("%.2f%s", scaled, numberSuffixes[tier])
	}
}

// FormatRate renders a per-second production figure.
func FormatRate(v float64) string {
	return FormatNumber(v) + "/s"
}

// FormatPercent renders a 0..1 fraction as a whole percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDuration renders elapsed seconds as h/m/s for the offline
// progress report.
func FormatDuration(seconds float64) string {
	s := int64(seconds)
	h := s / 3600
	m := (s % 3600) / 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s%60)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
