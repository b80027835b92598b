package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var contestWallet string

var contestCmd = &cobra.Command{
	Use:   "contest",
	Short: "Browse the live contest round",
	Long: `Open the live contest view: current theme, countdown, prize pool,
and every submission in the round. Vote from inside the view with enter.

Without a connected wallet the view is read-only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := readGateway()
		if err != nil {
			return err
		}

		account := ""
		mgr := walletManager()
		if w, err := resolveWallet(mgr, contestWallet); err == nil && w != nil {
			sess, err := connectSession(w, mgr)
			if err != nil {
				return err
			}
			defer sess.Close()
			account = sess.Account()
			gw = sess.Gateway()
		}

		fetch := func() (ui.ContestData, error) {
			theme, err := gw.CurrentTheme()
			if err != nil {
				return ui.ContestData{}, err
			}
			fee, err := gw.SubmissionFee()
			if err != nil {
				return ui.ContestData{}, err
			}
			funds, err := gw.TotalFunds()
			if err != nil {
				return ui.ContestData{}, err
			}
			snap, err := gw.ContestDetails()
			if err != nil {
				return ui.ContestData{}, err
			}
			return ui.ContestData{Theme: theme, Fee: fee, Funds: funds, Snapshot: *snap}, nil
		}

		vote := func(index uint64) (string, error) {
			if account == "" {
				return "", fmt.Errorf("no wallet connected: run `muralcli connect` first")
			}
			receipt, err := gw.Vote(index)
			if err != nil {
				return "", err
			}
			return receipt.Hash, nil
		}

		_, err = ui.NewContest(account, fetch, vote).Run()
		return err
	},
}

func init() {
	contestCmd.Flags().StringVar(&contestWallet, "wallet", "", "wallet to vote with (default: configured default)")
}
