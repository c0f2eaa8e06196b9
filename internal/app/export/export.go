// Package export writes the episode archive to an Excel workbook for
// review outside the app.
package export

import (
	"fmt"

	"github.com/tealeg/xlsx"
	"suomicast/internal/app/model"
)

// ToExcel writes stored episodes into a two-sheet workbook: one row per
// episode, plus the full transcripts.
func ToExcel(episodes []model.StoredEpisode, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Episodes")
	if err != nil {
		return fmt.Errorf("failed to add episodes sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Date"
	headerRow.AddCell().Value = "Episode ID"
	headerRow.AddCell().Value = "Title"
	headerRow.AddCell().Value = "Description"
	headerRow.AddCell().Value = "Duration"
	headerRow.AddCell().Value = "Segments"

	for _, e := range episodes {
		row := sheet.AddRow()
		row.AddCell().Value = e.DateKey
		row.AddCell().Value = e.Episode.ID
		row.AddCell().Value = e.Episode.Title
		row.AddCell().Value = e.Episode.Description
		row.AddCell().Value = e.Episode.Duration
		row.AddCell().Value = fmt.Sprint(len(e.Episode.Transcript))
	}

	transcriptSheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return fmt.Errorf("failed to add transcripts sheet: %w", err)
	}

	transcriptHeader := transcriptSheet.AddRow()
	transcriptHeader.AddCell().Value = "Date"
	transcriptHeader.AddCell().Value = "Segment ID"
	transcriptHeader.AddCell().Value = "Start"
	transcriptHeader.AddCell().Value = "End"
	transcriptHeader.AddCell().Value = "Text"

	for _, e := range episodes {
		for _, segment := range e.Episode.Transcript {
			row := transcriptSheet.AddRow()
			row.AddCell().Value = e.DateKey
			row.AddCell().Value = segment.ID
			row.AddCell().Value = fmt.Sprintf("%.2f", segment.StartTime)
			row.AddCell().Value = fmt.Sprintf("%.2f", segment.EndTime)
			row.AddCell().Value = segment.Text
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
