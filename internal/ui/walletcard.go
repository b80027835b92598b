package ui

import (
	"strings"

	"github.com/muralfm/muralcli/internal/chain"
)

// WalletCard summarizes the connected wallet for the status header shown
// above every screen.
type WalletCard struct {
	Account       string // empty when disconnected
	ChainID       string // hex chain id reported by the provider
	TargetChainID string // hex chain id the app wants
	ChainName     string
	Balance       string // formatted ETH balance, optional
	Switching     bool   // a network switch is in flight
}

// Render returns the bordered wallet card.
func (c WalletCard) Render() string {
	var sb strings.Builder

	if c.Account == "" {
		sb.WriteString(StyleMeta.Render("No wallet connected") + "\n")
		sb.WriteString(StyleMeta.Render("Run ") + Val("muralcli connect") + StyleMeta.Render(" to join the contest"))
		return StyleBorder.Render(sb.String())
	}

	sb.WriteString(StyleMeta.Render("Wallet   ") + Addr(TruncateAddr(c.Account)) + "\n")
	if c.Balance != "" {
		sb.WriteString(StyleMeta.Render("Balance  ") + Val(c.Balance+" ETH") + "\n")
	}
	sb.WriteString(StyleMeta.Render("Network  ") + Theme(c.ChainName) + " " + StyleMeta.Render(c.ChainID))

	if c.Switching {
		sb.WriteString("\n" + Warn("Switching to "+c.TargetChainID+"…"))
	} else if !chain.SameChainID(c.ChainID, c.TargetChainID) {
		sb.WriteString("\n" + Warn("Wrong network, expected "+c.TargetChainID))
	}

	return StyleBorder.Render(sb.String())
}
