package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/muralfm/muralcli/internal/adapter"
	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/contest"
	"github.com/muralfm/muralcli/internal/provider"
	"github.com/muralfm/muralcli/internal/session"
	"github.com/muralfm/muralcli/internal/wallet"
)

const connectTimeout = 30 * time.Second

// walletManager opens the wallet registry backed by the config dir and the
// OS keychain.
func walletManager() *wallet.Manager {
	return wallet.NewManager(
		wallet.WithStore(wallet.NewJSONStore(cfg.WalletsPath())),
		wallet.WithKeystore(wallet.DefaultKeystore()),
	)
}

// resolveWallet picks the wallet to act as: the named one, the configured
// default, or the manager's default. A nil wallet (with nil error) means
// no wallet is set up at all.
func resolveWallet(mgr *wallet.Manager, name string) (*wallet.Wallet, error) {
	if name == "" {
		name = cfg.DefaultWallet
	}
	if name == "" {
		return mgr.Default(), nil
	}
	return mgr.Get(name)
}

// connectSession wires wallet → provider → adapter → session and runs the
// connect flow, which also forces the provider onto the target network.
func connectSession(w *wallet.Wallet, mgr *wallet.Manager) (*session.Session, error) {
	prov := provider.NewLocal(w, mgr.Keystore(), cfg.Network.RPCURL(), cfg.Network.ChainID)
	ad := adapter.New(prov, cfg.Network)

	factory := func() *contest.Gateway {
		id, err := cfg.Network.ChainIDInt()
		if err != nil {
			id, _ = chain.DefaultNetwork().ChainIDInt()
		}
		return contest.NewGateway(prov.Client(), cfg.ContractAddress, id, prov.Signer)
	}

	sess := session.New(ad, factory)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sess.Connect(ctx); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

// readGateway builds a read-only gateway straight against the configured
// RPC endpoint. Writes through it fail with a connect hint.
func readGateway() (*contest.Gateway, error) {
	client := chain.NewEVMClient(cfg.Network.RPCURL())
	id, err := cfg.Network.ChainIDInt()
	if err != nil {
		return nil, fmt.Errorf("bad chain id %q in config: %w", cfg.Network.ChainID, err)
	}
	noSigner := func() (*wallet.Signer, error) {
		return nil, fmt.Errorf("no wallet connected: run `muralcli connect` first")
	}
	return contest.NewGateway(client, cfg.ContractAddress, id, noSigner), nil
}
