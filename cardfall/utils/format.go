package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// FormatDuration renders a wait time the way players expect to read it,
// e.g. "1m 05s" or "12s".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}

// ProgressBar renders a filled/empty bar of the given width.
func ProgressBar(current, total int64, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if current > total {
		current = total
	}
	if current < 0 {
		current = 0
	}
	filled := int(current * int64(width) / total)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// XPBar renders progress toward the next level threshold.
func XPBar(xp, nextThreshold int64, width int) string {
	return fmt.Sprintf("%s %s/%s", ProgressBar(xp, nextThreshold, width), FormatNumber(xp), FormatNumber(nextThreshold))
}
