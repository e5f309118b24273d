// package formatter renders library data for terminal output and export (tables, CSV, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/store"
)

// PodcastTable renders the podcast collection as a rounded table.
func PodcastTable(podcasts []models.Podcast) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title", "Language", "Episodes", "Feed"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, podcast := range podcasts {
		tw.AppendRow(table.Row{
			podcast.ID,
			podcast.Title,
			podcast.OriginalLanguage,
			podcast.EpisodeCount,
			podcast.RSSFeedURL,
		})
	}

	return tw.Render()
}

// TranslationTable renders translation jobs as a rounded table. Podcast titles
// are resolved from the given collection when available.
func TranslationTable(translations []models.Translation, podcasts []models.Podcast) string {
	titles := make(map[int]string, len(podcasts))
	for _, podcast := range podcasts {
		titles[podcast.ID] = podcast.Title
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Podcast", "Language", "Status", "Progress"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for _, translation := range translations {
		title, ok := titles[translation.PodcastID]
		if !ok {
			title = fmt.Sprintf("podcast #%d", translation.PodcastID)
		}
		tw.AppendRow(table.Row{
			translation.ID,
			title,
			translation.TargetLanguage,
			string(translation.Status),
			fmt.Sprintf("%d%%", translation.Progress),
		})
	}

	return tw.Render()
}

// StatsTable renders the dashboard summary as a two-column table.
func StatsTable(stats store.LibraryStats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	tw.AppendRow(table.Row{"Podcasts", stats.Podcasts})
	tw.AppendRow(table.Row{"Translations", stats.Translations})
	tw.AppendRow(table.Row{"Published", stats.Published})
	tw.AppendRow(table.Row{"In flight", stats.InFlight})
	tw.AppendRow(table.Row{"Errored", stats.Errored})

	return tw.Render()
}

// ExportToCSV converts the translation collection to CSV with columns:
// ID, Podcast, Language, Status, Progress, Episodes
func ExportToCSV(translations []models.Translation, podcasts []models.Podcast) ([]byte, error) {
	titles := make(map[int]string, len(podcasts))
	for _, podcast := range podcasts {
		titles[podcast.ID] = podcast.Title
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Podcast", "Language", "Status", "Progress", "Episodes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, translation := range translations {
		record := []string{
			strconv.Itoa(translation.ID),
			titles[translation.PodcastID],
			translation.TargetLanguage,
			string(translation.Status),
			strconv.Itoa(translation.Progress),
			strconv.Itoa(translation.EpisodeCount),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToText converts the library to a plain text listing grouped by podcast
func ExportToText(podcasts []models.Podcast, translations []models.Translation) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Podcasts: %d\n\n", len(podcasts)))
	for _, podcast := range podcasts {
		buf.WriteString(fmt.Sprintf("%s (%s, %d episodes)\n", podcast.Title, podcast.OriginalLanguage, podcast.EpisodeCount))
		for _, translation := range translations {
			if translation.PodcastID != podcast.ID {
				continue
			}
			buf.WriteString(fmt.Sprintf("  -> %s: %s %d%%\n", translation.TargetLanguage, translation.Status, translation.Progress))
		}
	}

	return buf.Bytes()
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	TranslationsFile string
	MetadataFile     string
}

// WriteCSVExport exports the translation collection to CSV with an
// accompanying metadata JSON file.
//
// Defaults to "library" as the base filename & creates {base}_translations.csv
// and {base}_metadata.json
func WriteCSVExport(podcasts []models.Podcast, translations []models.Translation, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "library"
	}

	csvData, err := ExportToCSV(translations, podcasts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	translationsFile := baseFilepath + "_translations.csv"
	if err := os.WriteFile(translationsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := json.MarshalIndent(podcasts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		TranslationsFile: translationsFile,
		MetadataFile:     metadataFile,
	}, nil
}
