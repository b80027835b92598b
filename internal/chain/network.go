package chain

import (
	"fmt"
	"math/big"
	"strings"
)

// NativeCurrency describes a chain's native token as wallet providers
// expect it in a wallet_addEthereumChain request.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Network is the chain descriptor consumed by the wallet-add flow.
// Field names and JSON keys follow the wallet_addEthereumChain parameter
// object, so a Network can be passed to a provider request as-is.
type Network struct {
	ChainID           string         `json:"chainId"` // 0x-prefixed hex
	ChainName         string         `json:"chainName"`
	RPCURLs           []string       `json:"rpcUrls"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

// DefaultNetwork returns the contest's target network. Connect always
// re-adds this configuration regardless of the wallet's current chain;
// there is deliberately no mainnet variant.
func DefaultNetwork() Network {
	return Network{
		ChainID:   "0x1ABDAB8", // 28122024
		ChainName: "Ancient8 Testnet",
		RPCURLs:   []string{"https://rpcv2-testnet.ancient8.gg/"},
		NativeCurrency: NativeCurrency{
			Name:     "ETH",
			Symbol:   "ETH",
			Decimals: 18,
		},
		BlockExplorerURLs: []string{},
	}
}

// RPCURL returns the network's primary RPC endpoint.
func (n Network) RPCURL() string {
	if len(n.RPCURLs) == 0 {
		return ""
	}
	return n.RPCURLs[0]
}

// ChainIDInt returns the network's chain ID as a big integer.
func (n Network) ChainIDInt() (*big.Int, error) {
	return ParseChainID(n.ChainID)
}

// HexChainID formats a numeric chain ID as its 0x-prefixed hex form.
func HexChainID(id int64) string {
	return fmt.Sprintf("0x%X", id)
}

// ParseChainID parses a 0x-prefixed hex chain ID string.
func ParseChainID(hexID string) (*big.Int, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(hexID, "0x"), "0X")
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid chain id %q", hexID)
	}
	return n, nil
}

// SameChainID compares two hex chain IDs numerically, so "0x01" and "0x1"
// count as the same chain.
func SameChainID(a, b string) bool {
	na, errA := ParseChainID(a)
	nb, errB := ParseChainID(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return na.Cmp(nb) == 0
}
