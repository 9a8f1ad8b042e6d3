package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"media2text/cmd/m2t/cmd/convert"
	"media2text/cmd/m2t/cmd/doctor"
	"media2text/cmd/m2t/cmd/download"
	"media2text/cmd/m2t/cmd/export"
	"media2text/cmd/m2t/cmd/history"
	"media2text/cmd/m2t/cmd/serve"
	"media2text/cmd/m2t/cmd/transcribe"
	"media2text/cmd/m2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m2t",
	Short: "Turn audio and video into text with cloud speech-to-text APIs",
	Long: `Turn audio and video files, or media URLs, into text transcripts.

- Video files get their audio track extracted with ffmpeg
- Oversized audio is recompressed to fit the provider upload ceiling
- Finished transcripts are saved to a local history database`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(download.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(doctor.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
