package download

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"media2text/internal/app/util/files"
	"media2text/internal/downloader"
	"media2text/internal/logging"
)

var outputDir string

func init() {
	Cmd.Flags().StringVarP(&outputDir, "dir", "d", "", "directory to save into, defaults to the data downloads directory")
}

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download the media behind a URL without transcribing it",
	Long: `Download the media behind a URL without transcribing it.

Direct media URLs are saved as is; web pages are scraped for their
Open Graph audio or video tag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

		dir := outputDir
		if dir == "" {
			dataDir, err := files.DataDir()
			if err != nil {
				return err
			}
			dir = filepath.Join(dataDir, "downloads")
		}

		dl := downloader.New(logging.NewSugared(verbose))
		fetched, err := dl.Fetch(cmd.Context(), args[0], dir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "saved %q to %s\n", fetched.Title, fetched.FilePath)
		return nil
	},
}
