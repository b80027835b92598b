// Package adapter bridges a wallet provider and the rest of the
// application: connect/disconnect, the forced switch to the contest's
// target network, and account/chain event subscriptions.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/provider"
)

// Adapter wraps a wallet provider. A nil provider is tolerated (the
// environment has no wallet); every operation then reports
// provider.ErrNoProvider and no account ever surfaces.
type Adapter struct {
	prov   provider.Provider
	target chain.Network

	mu            sync.Mutex
	cancelAccount func()
	cancelChain   func()
}

// New creates an adapter over prov targeting the given network.
func New(prov provider.Provider, target chain.Network) *Adapter {
	return &Adapter{prov: prov, target: target}
}

// Target returns the network Connect forces the wallet onto.
func (a *Adapter) Target() chain.Network { return a.target }

// Connect requests account access and returns the primary account and the
// wallet's chain id. On success it unconditionally asks the wallet to
// add/switch to the target network, regardless of the previously selected
// chain; a failed switch leaves the reported chain id as the wallet gave it.
func (a *Adapter) Connect(ctx context.Context) (account, chainID string, err error) {
	if a.prov == nil {
		return "", "", provider.ErrNoProvider
	}

	raw, err := a.prov.Request(ctx, "eth_requestAccounts")
	if err != nil {
		return "", "", err
	}
	var accounts []string
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return "", "", fmt.Errorf("parsing accounts: %w", err)
	}
	if len(accounts) == 0 || accounts[0] == "" {
		return "", "", provider.ErrUserRejected
	}
	account = accounts[0]

	raw, err = a.prov.Request(ctx, "eth_chainId")
	if err != nil {
		return "", "", err
	}
	if err := json.Unmarshal(raw, &chainID); err != nil {
		return "", "", fmt.Errorf("parsing chain id: %w", err)
	}

	if err := a.SwitchChain(ctx); err == nil {
		chainID = a.target.ChainID
	}
	return account, chainID, nil
}

// SwitchChain forces the wallet onto the target network via
// wallet_addEthereumChain. Always re-adds the full descriptor; wallets
// treat an already-known chain as a plain switch.
func (a *Adapter) SwitchChain(ctx context.Context) error {
	if a.prov == nil {
		return provider.ErrNoProvider
	}
	_, err := a.prov.Request(ctx, "wallet_addEthereumChain", a.target)
	if err != nil {
		return fmt.Errorf("adding target chain: %w", err)
	}
	return nil
}

// Disconnect tells the provider to drop the session, where supported.
// Local state clearing is the caller's job either way.
func (a *Adapter) Disconnect(ctx context.Context) {
	if a.prov == nil {
		return
	}
	a.prov.Request(ctx, "disconnect") //nolint:errcheck // best-effort
}

// SubscribeAccounts subscribes to accountsChanged. A second call replaces
// the previous subscription rather than stacking a duplicate handler.
func (a *Adapter) SubscribeAccounts() <-chan provider.Event {
	if a.prov == nil {
		ch := make(chan provider.Event)
		close(ch)
		return ch
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelAccount != nil {
		a.cancelAccount()
	}
	ch, cancel := a.prov.Subscribe(provider.EventAccountsChanged)
	a.cancelAccount = cancel
	return ch
}

// SubscribeChain subscribes to chainChanged, replacing any previous
// subscription.
func (a *Adapter) SubscribeChain() <-chan provider.Event {
	if a.prov == nil {
		ch := make(chan provider.Event)
		close(ch)
		return ch
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelChain != nil {
		a.cancelChain()
	}
	ch, cancel := a.prov.Subscribe(provider.EventChainChanged)
	a.cancelChain = cancel
	return ch
}

// Close removes all event listeners.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelAccount != nil {
		a.cancelAccount()
		a.cancelAccount = nil
	}
	if a.cancelChain != nil {
		a.cancelChain()
		a.cancelChain = nil
	}
}
