package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var (
	voteWallet string
	voteYes    bool
)

var voteCmd = &cobra.Command{
	Use:   "vote <submission-number>",
	Short: "Vote for a submission in the current round",
	Long: `Vote for a submission by its number, as shown in the contest view
(the first submission is 1). Each wallet gets one vote per round; the
vote is checked against the round's voter list before anything is sent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil || num == 0 {
			return fmt.Errorf("submission number must be a positive integer, got %q", args[0])
		}

		mgr := walletManager()
		w, err := resolveWallet(mgr, voteWallet)
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

		snap, err := gw.ContestDetails()
		if err != nil {
			return err
		}
		if int(num) > len(snap.Submissions) {
			return fmt.Errorf("submission %d does not exist: the round has %d", num, len(snap.Submissions))
		}
		if ok, reason := ui.CanVote(sess.Account(), *snap); !ok {
			return fmt.Errorf("%s", reason)
		}

		target := snap.Submissions[num-1]
		fmt.Println(ui.KeyValueBlock("Vote", [][2]string{
			{"Submission", fmt.Sprintf("#%d", num)},
			{"Artist", target.Submitter},
			{"Track", target.MusicURL},
			{"From", sess.Account()},
		}))
		if !voteYes && !ui.Confirm("Cast this vote?") {
			fmt.Println(ui.Meta("Aborted."))
			return nil
		}

		spin := ui.NewSpinner("Casting vote…")
		spin.Start()
		receipt, err := gw.Vote(num - 1)
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.Success("Vote cast"))
		fmt.Println(ui.Meta("tx ") + ui.Addr(receipt.Hash))
		return nil
	},
}

func init() {
	voteCmd.Flags().StringVar(&voteWallet, "wallet", "", "wallet to vote with")
	voteCmd.Flags().BoolVarP(&voteYes, "yes", "y", false, "skip the confirmation prompt")
}
