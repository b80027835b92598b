package contest

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBigIntPointer(t *testing.T) {
	n, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	out := NormalizeBigInts(n)
	assert.Equal(t, n.String(), out)
}

func TestNormalizeBigIntValue(t *testing.T) {
	assert.Equal(t, "42", NormalizeBigInts(*big.NewInt(42)))
}

func TestNormalizeNilBigInt(t *testing.T) {
	var n *big.Int
	assert.Nil(t, NormalizeBigInts(n))
}

func TestNormalizeAddress(t *testing.T) {
	addr := common.HexToAddress("0x7f460a9b660ce4bc7e87ecd130ddb544360ce90e")
	out := NormalizeBigInts(addr)
	assert.Equal(t, addr.Hex(), out)
}

func TestNormalizeNestedSlice(t *testing.T) {
	in := []interface{}{big.NewInt(1), []interface{}{big.NewInt(2), "keep"}}
	out := NormalizeBigInts(in).([]interface{})
	assert.Equal(t, "1", out[0])
	inner := out[1].([]interface{})
	assert.Equal(t, "2", inner[0])
	assert.Equal(t, "keep", inner[1])
}

func TestNormalizeNestedMap(t *testing.T) {
	in := map[string]interface{}{
		"votes": big.NewInt(7),
		"meta":  map[string]interface{}{"payout": big.NewInt(9)},
	}
	out := NormalizeBigInts(in).(map[string]interface{})
	assert.Equal(t, "7", out["votes"])
	assert.Equal(t, "9", out["meta"].(map[string]interface{})["payout"])
}

// Decoded tuples arrive as structs; they flatten into field-name maps so no
// positional indexing survives past the gateway.
func TestNormalizeStructBecomesFieldMap(t *testing.T) {
	in := winnerResult{
		Submitter:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
		MusicUrl:   "https://example.com/a.wav",
		Votes:      big.NewInt(5),
		Payout:     big.NewInt(1_000_000_000),
		Timestamp:  big.NewInt(1_700_000_000),
		VoterShare: big.NewInt(12),
	}
	out, ok := NormalizeBigInts(in).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "5", out["Votes"])
	assert.Equal(t, "1000000000", out["Payout"])
	assert.Equal(t, "https://example.com/a.wav", out["MusicUrl"])
}

func TestNormalizeStructSlice(t *testing.T) {
	in := []winnerResult{
		{Votes: big.NewInt(1), Payout: big.NewInt(2), Timestamp: big.NewInt(3), VoterShare: big.NewInt(4)},
	}
	out, ok := NormalizeBigInts(in).([]interface{})
	require.True(t, ok)
	first := out[0].(map[string]interface{})
	assert.Equal(t, "1", first["Votes"])
}

func TestNormalizePassesThroughScalars(t *testing.T) {
	assert.Equal(t, "hello", NormalizeBigInts("hello"))
	assert.Equal(t, 7, NormalizeBigInts(7))
	assert.Equal(t, true, NormalizeBigInts(true))
	assert.Nil(t, NormalizeBigInts(nil))
}

// Values that went through normalization parse back to the identical big
// integer, so no precision is lost crossing the boundary.
func TestNormalizeRoundTrip(t *testing.T) {
	orig, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2^128
	s := NormalizeBigInts(orig).(string)
	back, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	assert.Zero(t, orig.Cmp(back))
}
