package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"media2text/internal/app/media"
	"media2text/internal/config"
)

// Cmd represents the doctor command
var Cmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that external tools and API keys are in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := media.CheckTools(); err != nil {
			fmt.Fprintf(out, "tools:     MISSING (%v)\n", err)
		} else {
			fmt.Fprintln(out, "tools:     ffmpeg and ffprobe found")
		}

		if err := config.LoadEnv(); err != nil {
			return err
		}
		keys, err := config.GetAPIKeys()
		if err != nil {
			fmt.Fprintf(out, "api keys:  INVALID (%v)\n", err)
			return nil
		}

		available := keys.Available()
		if len(available) == 0 {
			fmt.Fprintln(out, "api keys:  none configured (set OPENAI_API_KEY, GROQ_API_KEY or FAL_KEY)")
		} else {
			fmt.Fprintf(out, "api keys:  %v\n", available)
		}
		return nil
	},
}
