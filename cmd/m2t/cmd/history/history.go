package history

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"media2text/internal/app"
	"media2text/internal/app/model"
)

var (
	listLimit  int
	listOffset int
)

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum records to show")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "records to skip")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(searchCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(favoriteCmd)
	Cmd.AddCommand(deleteCmd)
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past transcriptions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List past transcriptions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := app.InitializeHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		records, err := dao.List(listLimit, listOffset)
		if err != nil {
			return err
		}
		printRecords(cmd, records)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search transcripts and source names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := app.InitializeHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		records, err := dao.Search(args[0], 50)
		if err != nil {
			return err
		}
		printRecords(cmd, records)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the full transcript of one record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		dao, err := app.InitializeHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		record, err := dao.GetByID(id)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  %s  %s  %.1fs\n\n%s\n",
			record.ID, record.CreatedAt.Format(time.RFC3339), record.SourceName,
			record.APIUsed, record.Duration, record.Transcript)
		return nil
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle the favorite flag on a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		dao, err := app.InitializeHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		favorite, err := dao.ToggleFavorite(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "record %d favorite: %v\n", id, favorite)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record from history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		dao, err := app.InitializeHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		if err := dao.Delete(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "record %d deleted\n", id)
		return nil
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid record id %q", raw)
	}
	return id, nil
}

func printRecords(cmd *cobra.Command, records []model.HistoryRecord) {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no records")
		return
	}
	for _, r := range records {
		marker := " "
		if r.Favorite {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s #%-5d %s  %-8s %-30s %s\n",
			marker, r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.APIUsed,
			truncate(r.SourceName, 30), truncate(r.Transcript, 60))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
