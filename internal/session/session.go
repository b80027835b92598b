// Package session holds the process-wide connection state: the
// authenticated account, the wallet's chain id and the contract gateway
// handle. It is created once at startup and lives for the process lifetime;
// there is no silent reauthentication — connecting is always an explicit
// user action.
package session

import (
	"context"
	"sync"

	"github.com/muralfm/muralcli/internal/adapter"
	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/contest"
)

// Change is a notification that the account or chain id changed.
type Change struct {
	Account string
	ChainID string
}

// GatewayFactory builds a contract gateway once a connection exists. It is
// invoked on connect and again after chain changes, so the gateway always
// reflects the current network.
type GatewayFactory func() *contest.Gateway

// Session owns the account and chain id. All mutation goes through the
// session; subscribers are notified on every change.
type Session struct {
	adapter    *adapter.Adapter
	newGateway GatewayFactory

	mu      sync.RWMutex
	account string
	chainID string
	gateway *contest.Gateway

	subMu sync.Mutex
	subs  map[int]chan Change
	next  int

	watchOnce sync.Once
	done      chan struct{}
}

// New creates a disconnected session.
func New(a *adapter.Adapter, newGateway GatewayFactory) *Session {
	return &Session{
		adapter:    a,
		newGateway: newGateway,
		subs:       make(map[int]chan Change),
		done:       make(chan struct{}),
	}
}

// Connect requests wallet access via the adapter, records the account and
// chain id, builds the gateway and starts watching provider events.
// Rejection or an absent provider leaves the session unchanged.
func (s *Session) Connect(ctx context.Context) error {
	account, chainID, err := s.adapter.Connect(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.account = account
	s.chainID = chainID
	s.gateway = s.newGateway()
	s.mu.Unlock()

	s.watchOnce.Do(func() { go s.watch() })
	s.notify()
	return nil
}

// Disconnect drops the provider session (best-effort) and clears the
// account. The chain id is left as last reported.
func (s *Session) Disconnect(ctx context.Context) {
	s.adapter.Disconnect(ctx)

	s.mu.Lock()
	s.account = ""
	s.gateway = nil
	s.mu.Unlock()
	s.notify()
}

// Account returns the connected account, or "" when disconnected.
func (s *Session) Account() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// ChainID returns the wallet's current chain id (hex).
func (s *Session) ChainID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chainID
}

// Connected reports whether an account is present.
func (s *Session) Connected() bool {
	return s.Account() != ""
}

// OnTargetChain reports whether the wallet is on the contest's network.
func (s *Session) OnTargetChain() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.chainID == "" {
		return false
	}
	return chain.SameChainID(s.chainID, s.adapter.Target().ChainID)
}

// Gateway returns the contract gateway handle, or nil when disconnected.
func (s *Session) Gateway() *contest.Gateway {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gateway
}

// Subscribe registers for change notifications. The returned cancel
// function must be called on teardown.
func (s *Session) Subscribe() (<-chan Change, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.next
	s.next++
	ch := make(chan Change, 4)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close stops event watching and removes adapter listeners. Sessions
// normally live for the whole process; Close exists for tests.
func (s *Session) Close() {
	close(s.done)
	s.adapter.Close()
}

// --- internals ---

// watch consumes adapter event streams and folds them into session state.
func (s *Session) watch() {
	accounts := s.adapter.SubscribeAccounts()
	chains := s.adapter.SubscribeChain()

	for {
		select {
		case <-s.done:
			return

		case ev, ok := <-accounts:
			if !ok {
				return
			}
			s.mu.Lock()
			if len(ev.Accounts) > 0 {
				s.account = ev.Accounts[0]
				s.gateway = s.newGateway()
			} else {
				s.account = ""
				s.gateway = nil
			}
			s.mu.Unlock()
			s.notify()

		case ev, ok := <-chains:
			if !ok {
				return
			}
			s.mu.Lock()
			s.chainID = ev.ChainID
			if s.account != "" {
				s.gateway = s.newGateway()
			}
			s.mu.Unlock()
			s.notify()
		}
	}
}

// notify fans the current state out to subscribers without blocking on
// slow ones.
func (s *Session) notify() {
	s.mu.RLock()
	change := Change{Account: s.account, ChainID: s.chainID}
	s.mu.RUnlock()

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
