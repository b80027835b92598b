package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show wallet, network, and contest round at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := walletManager()
		w, err := resolveWallet(mgr, "")
		if err != nil {
			return err
		}

		card := ui.WalletCard{
			TargetChainID: cfg.Network.ChainID,
			ChainName:     cfg.Network.ChainName,
		}
		if w != nil {
			card.Account = w.Address
			card.ChainID = cfg.Network.ChainID
		}
		fmt.Println(card.Render())

		gw, err := readGateway()
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Fetching contest state…")
		spin.Start()
		theme, err := gw.CurrentTheme()
		if err != nil {
			spin.Stop()
			return err
		}
		fee, err := gw.SubmissionFee()
		if err != nil {
			spin.Stop()
			return err
		}
		funds, err := gw.TotalFunds()
		if err != nil {
			spin.Stop()
			return err
		}
		snap, err := gw.ContestDetails()
		if err != nil {
			spin.Stop()
			return err
		}
		info, err := gw.RoundInfo()
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.KeyValueBlock("Current Round", [][2]string{
			{"Theme", theme},
			{"Entry fee", ui.FormatAmount(fee) + " ETH"},
			{"Prize pool", ui.FormatAmount(funds) + " ETH"},
			{"Submissions", fmt.Sprintf("%d", len(snap.Submissions))},
			{"Total votes", fmt.Sprintf("%d", snap.TotalVotes)},
			{"Started", ui.FormatDate(snap.StartTimestamp)},
			{"Round length", (time.Duration(info.Interval) * time.Second).String()},
			{"Round opened", ui.FormatDate(info.LastTimestamp)},
			{"Organizer", info.Owner},
			{"Contract", cfg.ContractAddress},
		}))
		return nil
	},
}
