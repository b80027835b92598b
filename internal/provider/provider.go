// Package provider defines the wallet provider surface the rest of the
// application talks to: an Ethereum-style request(method, params) call plus
// explicit event subscriptions for account and chain changes.
package provider

import (
	"context"
	"encoding/json"
	"errors"
)

// EventKind identifies a provider event stream.
type EventKind string

const (
	EventAccountsChanged EventKind = "accountsChanged"
	EventChainChanged    EventKind = "chainChanged"
)

// Event is one provider notification.
type Event struct {
	Kind     EventKind
	Accounts []string // accountsChanged: current account list, may be empty
	ChainID  string   // chainChanged: new chain id, 0x-prefixed hex
}

// Errors surfaced by providers.
var (
	// ErrNoProvider means no wallet provider is available in this
	// environment. Callers surface no account and no message.
	ErrNoProvider = errors.New("no wallet provider available")

	// ErrUserRejected means the user declined a connect or transaction
	// request. Logged by callers; no state changes.
	ErrUserRejected = errors.New("request rejected by user")

	// ErrUnsupportedMethod means the provider does not implement the
	// requested wallet method.
	ErrUnsupportedMethod = errors.New("unsupported provider method")
)

// Provider is an Ethereum-style wallet provider.
//
// Request issues a wallet method (eth_requestAccounts, eth_chainId,
// wallet_addEthereumChain, ...) and returns the raw JSON result.
// Subscribe returns a stream of events of the given kind together with an
// unsubscribe function; callers must unsubscribe on teardown.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
	Subscribe(kind EventKind) (<-chan Event, func())
}
