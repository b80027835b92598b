package chain

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// rpcMock creates a test HTTP server that serves a fixed JSON-RPC response
// per method. Pass method→result pairs; any unknown method returns an RPC error.
func rpcMock(t *testing.T, responses map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     int    `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if result, ok := responses[req.Method]; ok {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
		} else {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]interface{}{"code": -32601, "message": "method not found"},
			})
		}
	}))
}

// rpcErrorServer creates a test HTTP server that always returns a JSON-RPC error.
func rpcErrorServer(t *testing.T, code int, msg string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID int `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]interface{}{"code": code, "message": msg},
		})
	}))
}

// ---------------------------------------------------------------------------
// reads
// ---------------------------------------------------------------------------

func TestGetBalance(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBalance": "0xDE0B6B3A7640000", // 1 ETH
	})
	defer srv.Close()

	bal, err := NewEVMClient(srv.URL).GetBalance("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	expected := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	assert.Equal(t, expected, bal)
}

func TestGetBalanceRPCError(t *testing.T) {
	srv := rpcErrorServer(t, -32000, "boom")
	defer srv.Close()

	_, err := NewEVMClient(srv.URL).GetBalance("0x1111111111111111111111111111111111111111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestChainID(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_chainId": "0x1ABDAB8",
	})
	defer srv.Close()

	id, err := NewEVMClient(srv.URL).ChainID()
	require.NoError(t, err)
	assert.Equal(t, int64(28122024), id)
}

func TestChainIDHex(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_chainId": "0x1abdab8",
	})
	defer srv.Close()

	hexID, err := NewEVMClient(srv.URL).ChainIDHex()
	require.NoError(t, err)
	assert.Equal(t, "0x1ABDAB8", hexID)
}

func TestCallContract(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_call": "0x0000000000000000000000000000000000000000000000000000000000000001",
	})
	defer srv.Close()

	out, err := NewEVMClient(srv.URL).CallContract("0x2222222222222222222222222222222222222222", "0xcafebabe")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", out)
}

// ---------------------------------------------------------------------------
// gas and nonce
// ---------------------------------------------------------------------------

func TestEstimateGas(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_estimateGas": "0x5208", // 21000
	})
	defer srv.Close()

	gas, err := NewEVMClient(srv.URL).EstimateGas("0x11", "0x22", "0xcafe", big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), gas)
}

func TestEstimateGasUnparsableFallsBack(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_estimateGas": "not-hex",
	})
	defer srv.Close()

	gas, err := NewEVMClient(srv.URL).EstimateGas("0x11", "0x22", "", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), gas)
}

func TestGetPendingNonce(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionCount": "0x5",
	})
	defer srv.Close()

	nonce, err := NewEVMClient(srv.URL).GetPendingNonce("0x11")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), nonce)
}

func TestGasPrice(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_gasPrice": "0x77359400", // 2 Gwei
	})
	defer srv.Close()

	price, err := NewEVMClient(srv.URL).GasPrice()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2_000_000_000), price)
}

// ---------------------------------------------------------------------------
// receipts
// ---------------------------------------------------------------------------

func TestGetTransactionReceiptMined(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": map[string]string{
			"status":      "0x1",
			"blockNumber": "0x10",
			"gasUsed":     "0x5208",
		},
	})
	defer srv.Close()

	r, err := NewEVMClient(srv.URL).GetTransactionReceipt("0xhash")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, uint64(1), r.Status)
	assert.Equal(t, uint64(16), r.BlockNumber)
	assert.Equal(t, uint64(21000), r.GasUsed)
}

func TestGetTransactionReceiptPending(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": nil,
	})
	defer srv.Close()

	r, err := NewEVMClient(srv.URL).GetTransactionReceipt("0xhash")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestWaitForReceiptSuccess(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": map[string]string{
			"status":      "0x1",
			"blockNumber": "0x10",
			"gasUsed":     "0x5208",
		},
	})
	defer srv.Close()

	r, err := NewEVMClient(srv.URL).WaitForReceipt("0xhash", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Status)
}

func TestWaitForReceiptReverted(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionReceipt": map[string]string{
			"status":      "0x0",
			"blockNumber": "0x10",
			"gasUsed":     "0x5208",
		},
	})
	defer srv.Close()

	_, err := NewEVMClient(srv.URL).WaitForReceipt("0xdead", 5*time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverted")
}

// ---------------------------------------------------------------------------
// CallRaw
// ---------------------------------------------------------------------------

func TestCallRawPassesThrough(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_blockNumber": "0xABC",
	})
	defer srv.Close()

	raw, err := NewEVMClient(srv.URL).CallRaw(context.Background(), "eth_blockNumber")
	require.NoError(t, err)
	assert.Equal(t, `"0xABC"`, string(raw))
}

func TestCallRawRPCError(t *testing.T) {
	srv := rpcErrorServer(t, -32601, "method not found")
	defer srv.Close()

	_, err := NewEVMClient(srv.URL).CallRaw(context.Background(), "eth_nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method not found")
}

// ---------------------------------------------------------------------------
// math helpers
// ---------------------------------------------------------------------------

func TestWeiToETHOneEther(t *testing.T) {
	one := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	assert.Equal(t, "1.000000000000000000", WeiToETH(one))
}

func TestWeiToETHZero(t *testing.T) {
	assert.Equal(t, "0.000000000000000000", WeiToETH(big.NewInt(0)))
}

func TestParseBigHexValid(t *testing.T) {
	n, ok := parseBigHex("0x64")
	require.True(t, ok)
	assert.Equal(t, int64(100), n.Int64())
}

func TestParseBigHexInvalid(t *testing.T) {
	_, ok := parseBigHex("xyz")
	assert.False(t, ok)
}
