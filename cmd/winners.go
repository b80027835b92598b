package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/contest"
	"github.com/muralfm/muralcli/internal/ui"
)

var winnersPlain bool

var winnersCmd = &cobra.Command{
	Use:   "winners",
	Short: "Browse past contest winners",
	Long: `Show every past round's winners, grouped by round: theme, date,
per-voter reward share, and each winning track with its payout.

With --plain the rounds are printed once and the command exits; the
default is an interactive view where enter opens the selected track.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := readGateway()
		if err != nil {
			return err
		}

		fetch := func() ([]contest.ContestResult, error) {
			records, err := gw.Winners()
			if err != nil {
				return nil, err
			}
			return contest.GroupWinners(records), nil
		}

		if winnersPlain {
			results, err := fetch()
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println(ui.Meta("No winners yet."))
				return nil
			}
			for _, res := range results {
				fmt.Println(ui.Theme(res.Theme) + "  " + ui.Meta(ui.FormatDate(res.Timestamp)))
				for _, w := range res.Winners {
					fmt.Printf("  %s  %3d votes  %s ETH  %s\n",
						ui.Addr(ui.TruncateAddr(w.Submitter)), w.Votes,
						ui.Val(ui.FormatAmount(w.Payout)), w.MusicURL)
				}
			}
			return nil
		}

		_, err = ui.NewWinners(fetch).Run()
		return err
	},
}

func init() {
	winnersCmd.Flags().BoolVar(&winnersPlain, "plain", false, "print rounds once instead of the interactive view")
}
