package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage wallets",
}

var walletImportCmd = &cobra.Command{
	Use:   "import <name> <private-key>",
	Short: "Import a signing wallet",
	Long: `Import a private key as a signing wallet. The key goes into the OS
keychain, never onto disk.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := walletManager()
		if err := mgr.ImportKey(name, args[1]); err != nil {
			return err
		}
		w, _ := mgr.Get(name)
		fmt.Println(ui.Success(fmt.Sprintf("Signing wallet %q imported: %s", name, ui.Addr(w.Address))))
		fmt.Println(ui.Meta(fmt.Sprintf("Set as default with: muralcli wallet use %s", name)))
		return nil
	},
}

var walletWatchCmd = &cobra.Command{
	Use:   "watch <name> <address>",
	Short: "Add a watch-only wallet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, address := args[0], args[1]
		mgr := walletManager()
		if err := mgr.AddWatchOnly(name, address); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Watch-only wallet %q added: %s", name, ui.Addr(address))))
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := walletManager()
		wallets := mgr.List()

		if len(wallets) == 0 {
			fmt.Println(ui.Meta("No wallets configured yet."))
			fmt.Println(ui.Meta("Import one with: muralcli wallet import artist 0xYourKey"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 16},
			{Title: "Address", Width: 44},
			{Title: "Type", Width: 12},
			{Title: "Default", Width: 8},
		})
		for _, w := range wallets {
			def := ""
			if w.IsDefault {
				def = "✓"
			}
			t.AddRow(ui.Row{w.Name, w.Address, w.Type, def})
		}
		fmt.Print(t.Render())
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !ui.ConfirmDanger(fmt.Sprintf("Remove wallet %q and its key?", name)) {
			fmt.Println(ui.Meta("Aborted."))
			return nil
		}
		mgr := walletManager()
		if err := mgr.Remove(name); err != nil {
			return err
		}
		if cfg.DefaultWallet == name {
			cfg.DefaultWallet = ""
			if err := cfg.Save(); err != nil {
				return err
			}
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wallet %q removed", name)))
		return nil
	},
}

var walletUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := walletManager()
		if err := mgr.SetDefault(name); err != nil {
			return err
		}
		cfg.DefaultWallet = name
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default wallet is now %q", name)))
		return nil
	},
}

func init() {
	walletCmd.AddCommand(walletImportCmd, walletWatchCmd, walletListCmd, walletRemoveCmd, walletUseCmd)
}
