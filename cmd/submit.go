package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var (
	submitTheme  string
	submitPrompt string
	submitWallet string
	submitYes    bool
)

var submitCmd = &cobra.Command{
	Use:   "submit <music-url>",
	Short: "Submit a track to the current round",
	Long: `Submit a hosted track to the current contest round. The on-chain
submission fee is attached automatically.

The theme defaults to the round's current theme; pass --theme only if
you generated against an earlier announcement.

Examples:
  muralcli submit https://res.cloudinary.com/…/track.wav
  muralcli submit https://…/track.wav --prompt "lo-fi rain at midnight"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		musicURL := args[0]

		mgr := walletManager()
		w, err := resolveWallet(mgr, submitWallet)
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("no wallet set up: run `muralcli wallet import <name> <key>` first")
		}

		sess, err := connectSession(w, mgr)
		if err != nil {
			return err
		}
		defer sess.Close()
		gw := sess.Gateway()

		fee, err := gw.SubmissionFee()
		if err != nil {
			return err
		}
		theme := submitTheme
		if theme == "" {
			if theme, err = gw.CurrentTheme(); err != nil {
				return err
			}
		}

		fmt.Println(ui.KeyValueBlock("Submission", [][2]string{
			{"Track", musicURL},
			{"Theme", theme},
			{"Fee", ui.FormatAmount(fee) + " ETH"},
			{"From", sess.Account()},
		}))
		if !submitYes && !ui.ConfirmSpend("Submit this track", ui.FormatAmount(fee)) {
			fmt.Println(ui.Meta("Aborted."))
			return nil
		}

		spin := ui.NewSpinner("Submitting track…")
		spin.Start()
		receipt, err := gw.SubmitMusic(musicURL, theme, submitPrompt)
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.Success("Track submitted"))
		fmt.Println(ui.Meta("tx ") + ui.Addr(receipt.Hash))
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitTheme, "theme", "", "theme to submit under (default: current round theme)")
	submitCmd.Flags().StringVar(&submitPrompt, "prompt", "", "generation prompt to record with the submission")
	submitCmd.Flags().StringVar(&submitWallet, "wallet", "", "wallet to submit with")
	submitCmd.Flags().BoolVarP(&submitYes, "yes", "y", false, "skip the confirmation prompt")
}
