package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	assert.Equal(t, "01:01:01", FormatCountdown(now, now.Add(3661*time.Second)))
}

func TestFormatCountdownZero(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	assert.Equal(t, "00:00:00", FormatCountdown(now, now))
}

// A deadline in the past pins at zero instead of going negative.
func TestFormatCountdownPastDeadline(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	assert.Equal(t, "00:00:00", FormatCountdown(now, now.Add(-5*time.Minute)))
}

func TestFormatCountdownFullDay(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	assert.Equal(t, "24:00:00", FormatCountdown(now, now.Add(24*time.Hour)))
}

func TestFormatCountdownSubSecondFloors(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	assert.Equal(t, "00:00:00", FormatCountdown(now, now.Add(900*time.Millisecond)))
}

func TestFormatAmountOneEther(t *testing.T) {
	assert.Equal(t, "1.000", FormatAmount("1000000000000000000"))
}

func TestFormatAmountSubmissionFee(t *testing.T) {
	// 0.01 ETH
	assert.Equal(t, "0.010", FormatAmount("10000000000000000"))
}

func TestFormatAmountRounds(t *testing.T) {
	// 0.0015 ETH rounds to three places
	assert.Equal(t, "0.002", FormatAmount("1500000000000000"))
}

func TestFormatAmountZero(t *testing.T) {
	assert.Equal(t, "0.000", FormatAmount("0"))
}

func TestFormatAmountMalformed(t *testing.T) {
	assert.Equal(t, "0.000", FormatAmount("not-a-number"))
	assert.Equal(t, "0.000", FormatAmount(""))
}

func TestFormatAmountHugeValue(t *testing.T) {
	// 2^128 wei ≈ 3.4e20 ETH; must not lose precision to float conversion.
	assert.Equal(t, "340282366920.938", FormatAmount("340282366920938463463374607431768211456"))
}

func TestTruncateAddr(t *testing.T) {
	assert.Equal(t, "0x1111…1111", TruncateAddr("0x1111111111111111111111111111111111111111"))
	assert.Equal(t, "0xshort", TruncateAddr("0xshort"))
}
