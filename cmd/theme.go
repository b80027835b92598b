package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the current contest theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := readGateway()
		if err != nil {
			return err
		}
		theme, err := gw.CurrentTheme()
		if err != nil {
			return err
		}
		fmt.Println(ui.Theme(theme))
		return nil
	},
}
