package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletCardDisconnected(t *testing.T) {
	out := WalletCard{TargetChainID: "0x1ABDAB8", ChainName: "Ancient8 Testnet"}.Render()
	assert.Contains(t, out, "No wallet connected")
	assert.Contains(t, out, "muralcli connect")
}

func TestWalletCardConnectedOnTarget(t *testing.T) {
	out := WalletCard{
		Account:       "0x1111111111111111111111111111111111111111",
		ChainID:       "0x1abdab8",
		TargetChainID: "0x1ABDAB8",
		ChainName:     "Ancient8 Testnet",
		Balance:       "1.000",
	}.Render()
	assert.Contains(t, out, "0x1111…1111")
	assert.Contains(t, out, "1.000 ETH")
	assert.Contains(t, out, "Ancient8 Testnet")
	assert.NotContains(t, out, "Wrong network")
}

func TestWalletCardWrongNetwork(t *testing.T) {
	out := WalletCard{
		Account:       "0x1111111111111111111111111111111111111111",
		ChainID:       "0x1",
		TargetChainID: "0x1ABDAB8",
		ChainName:     "Ancient8 Testnet",
	}.Render()
	assert.Contains(t, out, "Wrong network")
	assert.Contains(t, out, "0x1ABDAB8")
}

func TestWalletCardSwitching(t *testing.T) {
	out := WalletCard{
		Account:       "0x1111111111111111111111111111111111111111",
		ChainID:       "0x1",
		TargetChainID: "0x1ABDAB8",
		ChainName:     "Ancient8 Testnet",
		Switching:     true,
	}.Render()
	assert.Contains(t, out, "Switching to 0x1ABDAB8")
	assert.NotContains(t, out, "Wrong network")
}
