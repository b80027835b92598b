package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/muralfm/muralcli/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "muralcli",
	Short: "On-chain music contest client",
	Long: `muralcli is a terminal client for the Mural music contest.

  Connect a wallet, browse the current round, submit AI-generated
  tracks, vote for your favorite, and look back at past winners,
  all against the MusicContest contract on Ancient8 Testnet.

API keys for track generation come from the environment (or a .env
file in the working directory): MURAL_GOOGLE_API_KEY for themes,
MURAL_HUGGINGFACE_API_KEY for audio.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		// A local .env supplies API keys during development; absence
		// is not an error.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// MURAL_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("MURAL_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.muralcli)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		connectCmd,
		statusCmd,
		themeCmd,
		contestCmd,
		winnersCmd,
		submitCmd,
		voteCmd,
		generateCmd,
		walletCmd,
		configCmd,
	)
}
