package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muralfm/muralcli/internal/config"
	"github.com/muralfm/muralcli/internal/media"
	"github.com/muralfm/muralcli/internal/ui"
)

var (
	generateOut    string
	generateSubmit bool
	generateWallet string
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a track from a prompt",
	Long: `Generate a contest entry from a text prompt: a short theme via
Gemini, audio via MusicGen, and an upload of the result to Cloudinary.

Requires MURAL_GOOGLE_API_KEY and MURAL_HUGGINGFACE_API_KEY in the
environment (a .env file works), plus cloudinary-url and
cloudinary-preset in the config for the upload step.

Examples:
  muralcli generate "lo-fi rain at midnight"
  muralcli generate "chiptune sunrise" --submit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := args[0]

		googleKey := config.GoogleAPIKey()
		if googleKey == "" {
			return fmt.Errorf("MURAL_GOOGLE_API_KEY is not set")
		}
		hfKey := config.HuggingFaceAPIKey()
		if hfKey == "" {
			return fmt.Errorf("MURAL_HUGGINGFACE_API_KEY is not set")
		}

		spin := ui.NewSpinner("Generating theme…")
		spin.Start()
		theme, err := media.NewThemeGenerator(googleKey).Generate(prompt)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("theme generation: %w", err)
		}
		fmt.Println(ui.Meta("Theme  ") + ui.Theme(theme))

		spin = ui.NewSpinner("Generating audio (this can take a minute)…")
		spin.Start()
		audio, err := media.NewMusicGenerator(hfKey).Generate(prompt)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("music generation: %w", err)
		}

		if generateOut != "" {
			if err := os.WriteFile(generateOut, audio, 0o644); err != nil {
				return err
			}
			fmt.Println(ui.Success("Audio saved to " + generateOut))
		}

		if cfg.CloudinaryURL == "" || cfg.CloudinaryPreset == "" {
			if generateOut == "" {
				return fmt.Errorf("no cloudinary config: set cloudinary-url and cloudinary-preset, or use --out to save locally")
			}
			return nil
		}

		spin = ui.NewSpinner("Uploading track…")
		spin.Start()
		url, err := media.NewUploader(cfg.CloudinaryURL, cfg.CloudinaryPreset).
			Upload(bytes.NewReader(audio), "mural-entry.wav")
		spin.Stop()
		if err != nil {
			return fmt.Errorf("upload: %w", err)
		}
		fmt.Println(ui.Meta("Track  ") + ui.Addr(url))

		if !generateSubmit {
			fmt.Println(ui.Meta(fmt.Sprintf("Submit with: muralcli submit %s --prompt %q", url, prompt)))
			return nil
		}

		mgr := walletManager()
		w, err := resolveWallet(mgr, generateWallet)
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
		if !ui.ConfirmSpend("Submit this track", ui.FormatAmount(fee)) {
			fmt.Println(ui.Meta("Aborted."))
			return nil
		}

		spin = ui.NewSpinner("Submitting track…")
		spin.Start()
		receipt, err := gw.SubmitMusic(url, theme, prompt)
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
	generateCmd.Flags().StringVar(&generateOut, "out", "", "also save the generated audio to this file")
	generateCmd.Flags().BoolVar(&generateSubmit, "submit", false, "submit the uploaded track to the current round")
	generateCmd.Flags().StringVar(&generateWallet, "wallet", "", "wallet to submit with")
}
