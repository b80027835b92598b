package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/provider"
	"github.com/muralfm/muralcli/internal/ui"
)

var connectCmd = &cobra.Command{
	Use:   "connect [wallet-name]",
	Short: "Connect a wallet and switch it to the contest network",
	Long: `Connect a wallet for this session.

The connect flow requests accounts from the wallet and then forces it
onto the contest network (Ancient8 Testnet by default), exactly once per
connect. It never reconnects silently: every invocation goes through the
full account request again.

Examples:
  muralcli connect             # use the default wallet
  muralcli connect artist      # use the wallet named "artist"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		mgr := walletManager()
		w, err := resolveWallet(mgr, name)
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("no wallet set up: run `muralcli wallet import <name> <key>` first")
		}

		// The handshake forces the wallet onto the contest network, so the
		// card shows the switch in flight until the session reports back.
		fmt.Println(ui.WalletCard{
			Account:       w.Address,
			TargetChainID: cfg.Network.ChainID,
			ChainName:     cfg.Network.ChainName,
			Switching:     true,
		}.Render())

		spin := ui.NewSpinner(fmt.Sprintf("Connecting %s…", w.Name))
		spin.Start()
		sess, err := connectSession(w, mgr)
		spin.Stop()
		if err != nil {
			if errors.Is(err, provider.ErrUserRejected) {
				return fmt.Errorf("wallet refused the connection")
			}
			return err
		}
		defer sess.Close()

		balance := ""
		if bal, err := chain.NewEVMClient(cfg.Network.RPCURL()).GetBalance(sess.Account()); err == nil {
			balance = chain.WeiToETH(bal)
		}

		fmt.Println(ui.WalletCard{
			Account:       sess.Account(),
			ChainID:       sess.ChainID(),
			TargetChainID: cfg.Network.ChainID,
			ChainName:     cfg.Network.ChainName,
			Balance:       balance,
		}.Render())
		fmt.Println(ui.Success("Connected to " + cfg.Network.ChainName))

		// Remember the choice for future invocations.
		if cfg.DefaultWallet != w.Name {
			cfg.DefaultWallet = w.Name
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		return nil
	},
}
