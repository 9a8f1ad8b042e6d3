package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"media2text/internal/app"
	"media2text/internal/app/converter"
)

var (
	inputDir     string
	providerName string
	language     string
	limit        int
	parallel     int
	showProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "", "directory holding the media files to transcribe")
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "", "transcription provider; empty uses the configured default")
	Cmd.Flags().StringVarP(&language, "language", "l", "auto", "language hint, 'auto' detects the language")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0, "cap on files to transcribe this run, 0 means all")
	Cmd.Flags().IntVarP(&parallel, "parallel", "P", 1, "files in flight at once")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "force the progress bar even without a TTY")

	Cmd.MarkFlagRequired("inputDir")
}

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Transcribe every supported media file in a directory",
	Long: `Transcribe every supported media file in a directory.

- Files already present in history are skipped
- Files are processed oldest first
- Individual failures are logged, they do not stop the run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

		c, err := app.InitializeConverter(app.ProviderName(providerName), app.Verbose(verbose))
		if err != nil {
			return err
		}
		defer c.Close()

		result, err := c.ConvertDir(cmd.Context(), converter.Options{
			InputDir: inputDir,
			Language: language,
			Limit:    limit,
			Parallel: parallel,
			Progress: converter.ProgressConfig{Enabled: converter.ShouldShowProgress(showProgress)},
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "done: %d transcribed, %d skipped, %d failed\n",
			result.Processed, result.Skipped, result.Failed)
		return nil
	},
}
