package serve

import (
	"github.com/spf13/cobra"

	"media2text/internal/app"
)

var (
	addr         string
	providerName string
)

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "", "transcription provider; empty uses the configured default")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for transcription and history",
	Long: `Run the HTTP API for transcription and history.

Endpoints live under /api/v1; /healthz and /metrics are at the root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

		server, err := app.InitializeServer(app.ListenAddr(addr), app.ProviderName(providerName), app.Verbose(verbose))
		if err != nil {
			return err
		}
		return server.Start()
	},
}
