package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.KeyValueBlock("Configuration", [][2]string{
			{"Config dir", cfg.Dir()},
			{"Contract", cfg.ContractAddress},
			{"Network", cfg.Network.ChainName},
			{"Chain ID", cfg.Network.ChainID},
			{"RPC", cfg.Network.RPCURL()},
			{"Default wallet", cfg.DefaultWallet},
			{"Cloudinary URL", cfg.CloudinaryURL},
			{"Cloudinary preset", cfg.CloudinaryPreset},
		}))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it.

Keys:
  contract            deployed MusicContest address
  rpc                 RPC endpoint for the target network
  cloudinary-url      unsigned upload endpoint for generated tracks
  cloudinary-preset   unsigned upload preset name`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "contract":
			cfg.ContractAddress = value
		case "rpc":
			cfg.Network.RPCURLs = []string{value}
		case "cloudinary-url":
			cfg.CloudinaryURL = value
		case "cloudinary-preset":
			cfg.CloudinaryPreset = value
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s = %s", key, value)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
