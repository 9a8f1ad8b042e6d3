package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"media2text/internal/app"
	"media2text/internal/app/converter/export"
)

var (
	outputFilePath string
	limit          int
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "path of the xlsx file to write")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0, "cap on records to export, 0 means all")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transcription history to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := app.InitializeHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		max := limit
		if max <= 0 {
			max = 1 << 30
		}
		records, err := dao.List(max, 0)
		if err != nil {
			return err
		}

		if err := export.ToExcel(records, outputFilePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(records), outputFilePath)
		return nil
	},
}
