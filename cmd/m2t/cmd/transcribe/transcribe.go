package transcribe

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"media2text/internal/app"
	"media2text/internal/app/util/files"
)

var (
	providerName string
	language     string
	outputPath   string
	fromURL      bool
)

func init() {
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "", "transcription provider (openai, groq, fal); empty uses the configured default")
	Cmd.Flags().StringVarP(&language, "language", "l", "auto", "language hint, 'auto' detects the language")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the transcript to this file instead of stdout")
	Cmd.Flags().BoolVarP(&fromURL, "url", "u", false, "treat the argument as a URL instead of a local file")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file-or-url>",
	Short: "Transcribe a single media file or URL to text",
	Long: `Transcribe a single media file or URL to text.

- Video files get their audio track extracted first
- Audio over the provider upload ceiling is recompressed
- The finished transcript is printed and saved to history`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

		svc, err := app.InitializeService(app.ProviderName(providerName), app.Verbose(verbose))
		if err != nil {
			return err
		}

		input := args[0]
		isURL := fromURL || strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")

		if isURL {
			r, err := svc.TranscribeURL(cmd.Context(), input, language)
			if err != nil {
				return err
			}
			return emit(cmd, r.Text, r.SourceName, r.ProviderUsed, r.Elapsed.Seconds())
		}

		r, err := svc.TranscribeFile(cmd.Context(), input, language)
		if err != nil {
			return err
		}
		return emit(cmd, r.Text, r.SourceName, r.ProviderUsed, r.Elapsed.Seconds())
	},
}

func emit(cmd *cobra.Command, text, source, providerUsed string, elapsedSec float64) error {
	if outputPath != "" {
		if err := files.WriteToFile(text, outputPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "transcribed %s with %s in %.1fs, transcript written to %s\n",
			source, providerUsed, elapsedSec, outputPath)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
