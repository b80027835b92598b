package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/wallet"
)

// LocalProvider implements Provider on top of a locally stored signing
// wallet and a JSON-RPC client. It is the terminal-world stand-in for a
// browser-injected wallet: eth_requestAccounts exposes the configured
// wallet's address, wallet_addEthereumChain re-points the RPC client at the
// requested network, and everything else is forwarded to the node.
type LocalProvider struct {
	mu      sync.Mutex
	wallet  *wallet.Wallet
	ks      wallet.KeystoreBackend
	client  *chain.EVMClient
	chainID string // hex, tracks the chain the client currently points at

	subMu   sync.Mutex
	subs    map[EventKind]map[int]chan Event
	nextSub int
}

// NewLocal creates a provider backed by the given wallet and RPC endpoint.
// wallet may be nil, in which case account requests are rejected the way a
// user declining a connect prompt would be.
func NewLocal(w *wallet.Wallet, ks wallet.KeystoreBackend, rpcURL, chainIDHex string) *LocalProvider {
	return &LocalProvider{
		wallet:  w,
		ks:      ks,
		client:  chain.NewEVMClient(rpcURL),
		chainID: chainIDHex,
		subs:    make(map[EventKind]map[int]chan Event),
	}
}

// Client returns the RPC client currently backing the provider. The client
// changes when a wallet_addEthereumChain request switches networks, so
// callers should not cache it across chain switches.
func (p *LocalProvider) Client() *chain.EVMClient {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client
}

// Signer returns a fresh transaction signer for the provider's wallet.
// A new signer is built on every call so a changed wallet is always
// reflected on the next transaction.
func (p *LocalProvider) Signer() (*wallet.Signer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wallet == nil {
		return nil, ErrUserRejected
	}
	return wallet.NewSigner(p.wallet, p.ks), nil
}

// SetWallet swaps the active wallet and emits accountsChanged, mirroring a
// user switching accounts inside a wallet extension.
func (p *LocalProvider) SetWallet(w *wallet.Wallet) {
	p.mu.Lock()
	p.wallet = w
	p.mu.Unlock()

	var accounts []string
	if w != nil {
		accounts = []string{w.Address}
	}
	p.emit(Event{Kind: EventAccountsChanged, Accounts: accounts})
}

// Request implements Provider.
func (p *LocalProvider) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	switch method {
	case "eth_requestAccounts", "eth_accounts":
		p.mu.Lock()
		w := p.wallet
		p.mu.Unlock()
		if w == nil {
			if method == "eth_accounts" {
				return json.Marshal([]string{})
			}
			return nil, ErrUserRejected
		}
		return json.Marshal([]string{w.Address})

	case "eth_chainId":
		p.mu.Lock()
		client := p.client
		p.mu.Unlock()
		hexID, err := client.ChainIDHex()
		if err != nil {
			// Fall back to the locally tracked id when the node is
			// unreachable, matching what wallets report offline.
			p.mu.Lock()
			hexID = p.chainID
			p.mu.Unlock()
			if hexID == "" {
				return nil, err
			}
		}
		return json.Marshal(hexID)

	case "wallet_addEthereumChain", "wallet_switchEthereumChain":
		if len(params) == 0 {
			return nil, fmt.Errorf("%s: missing chain descriptor", method)
		}
		return p.switchChain(params[0])

	case "disconnect":
		// Local wallets have no session to drop; callers clear their own
		// state.
		return json.Marshal(true)

	default:
		// Everything else goes straight to the node.
		p.mu.Lock()
		client := p.client
		p.mu.Unlock()
		return client.CallRaw(ctx, method, params...)
	}
}

// switchChain re-points the provider at the requested network and emits
// chainChanged. The descriptor is accepted either as a chain.Network or as
// any JSON-compatible value with the same shape.
func (p *LocalProvider) switchChain(descriptor any) (json.RawMessage, error) {
	var network chain.Network
	switch d := descriptor.(type) {
	case chain.Network:
		network = d
	default:
		raw, err := json.Marshal(descriptor)
		if err != nil {
			return nil, fmt.Errorf("invalid chain descriptor: %w", err)
		}
		if err := json.Unmarshal(raw, &network); err != nil {
			return nil, fmt.Errorf("invalid chain descriptor: %w", err)
		}
	}
	if network.ChainID == "" {
		return nil, fmt.Errorf("chain descriptor missing chainId")
	}

	p.mu.Lock()
	if url := network.RPCURL(); url != "" {
		p.client = chain.NewEVMClient(url)
	}
	p.chainID = network.ChainID
	p.mu.Unlock()

	p.emit(Event{Kind: EventChainChanged, ChainID: network.ChainID})
	return json.Marshal(true)
}

// Subscribe implements Provider.
func (p *LocalProvider) Subscribe(kind EventKind) (<-chan Event, func()) {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	if p.subs[kind] == nil {
		p.subs[kind] = make(map[int]chan Event)
	}
	id := p.nextSub
	p.nextSub++

	ch := make(chan Event, 4)
	p.subs[kind][id] = ch

	cancel := func() {
		p.subMu.Lock()
		defer p.subMu.Unlock()
		if sub, ok := p.subs[kind][id]; ok {
			delete(p.subs[kind], id)
			close(sub)
		}
	}
	return ch, cancel
}

// emit fans an event out to subscribers of its kind. Slow subscribers drop
// events rather than block the emitter.
func (p *LocalProvider) emit(ev Event) {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	for _, ch := range p.subs[ev.Kind] {
		select {
		case ch <- ev:
		default:
		}
	}
}
