// Package export writes transcript history to spreadsheet files.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"media2text/internal/app/model"
)

// ToExcel writes history records to an xlsx file, one row per
// transcription.
func ToExcel(records []model.HistoryRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range []string{"ID", "Created At", "Source", "Type", "API", "Language", "Duration (s)", "Favorite", "Transcript"} {
		headerRow.AddCell().Value = header
	}

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = r.SourceName
		row.AddCell().Value = r.SourceType
		row.AddCell().Value = r.APIUsed
		row.AddCell().Value = r.Language
		row.AddCell().Value = fmt.Sprintf("%.2f", r.Duration)
		row.AddCell().Value = fmt.Sprint(r.Favorite)
		row.AddCell().Value = r.Transcript
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
