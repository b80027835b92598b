package ui

import (
	"fmt"
	"math/big"
	"time"
)

// FormatCountdown renders the time remaining until deadline as HH:MM:SS.
// Once the deadline has passed it stays pinned at 00:00:00.
func FormatCountdown(now, deadline time.Time) string {
	remaining := deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	secs := int64(remaining / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatAmount converts a decimal wei string into an ETH amount with three
// decimal places. Malformed input renders as "0.000".
func FormatAmount(wei string) string {
	n, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return "0.000"
	}
	r := new(big.Rat).SetFrac(n, big.NewInt(1e18))
	return r.FloatString(3)
}

// FormatDate renders a unix timestamp (seconds) in the local timezone.
func FormatDate(unix int64) string {
	return time.Unix(unix, 0).Format("Jan 2, 2006 15:04")
}
