// Package excel imports catalog content from spreadsheet files. It is the
// seeding tool for deployments that replace the built-in lesson and
// resource catalogs with their own.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/signlearn/internal/database"
	"github.com/example/signlearn/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string // Path to the Excel or CSV file
	IDColumn          string // Column with the lesson id
	TitleColumn       string // Column with the title
	DescriptionColumn string // Column with the description
	CategoryColumn    string // Column with the category
	DifficultyColumn  string // Column with the difficulty
	DurationColumn    string // Column with the duration
	VideoURLColumn    string // Column with the video URL
	SheetName         string // Name of the sheet to import
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:          "A",
		TitleColumn:       "B",
		DescriptionColumn: "C",
		CategoryColumn:    "D",
		DifficultyColumn:  "E",
		DurationColumn:    "F",
		VideoURLColumn:    "G",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportLessons imports lessons from an Excel or CSV file
func ImportLessons(config ImportConfig) (*ImportResult, error) {
	rows, err := readRows(config)
	if err != nil {
		return nil, err
	}

	lessonRepo := database.NewLessonRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		lesson := models.Lesson{
			ID:          cell(row, config.IDColumn),
			Title:       cell(row, config.TitleColumn),
			Description: cell(row, config.DescriptionColumn),
			Category:    strings.ToLower(cell(row, config.CategoryColumn)),
			Difficulty:  cell(row, config.DifficultyColumn),
			Duration:    cell(row, config.DurationColumn),
			VideoURL:    cell(row, config.VideoURLColumn),
		}

		if lesson.ID == "" || lesson.Title == "" {
			result.Skipped++
			continue
		}
		if lesson.Category == "" {
			lesson.Category = models.CategoryBasics
		}

		if err := lessonRepo.Upsert(&lesson); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ImportResources imports resources from an Excel or CSV file. Columns are
// fixed: id, title, description, category, difficulty, type, url, duration,
// tags (comma separated).
func ImportResources(config ImportConfig) (*ImportResult, error) {
	rows, err := readRows(config)
	if err != nil {
		return nil, err
	}

	resourceRepo := database.NewResourceRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		id, err := strconv.Atoi(cell(row, "A"))
		if err != nil || cell(row, "B") == "" {
			result.Skipped++
			continue
		}

		resource := models.Resource{
			ID:          id,
			Title:       cell(row, "B"),
			Description: cell(row, "C"),
			Category:    strings.ToLower(cell(row, "D")),
			Difficulty:  strings.ToLower(cell(row, "E")),
			Type:        strings.ToLower(cell(row, "F")),
			URL:         cell(row, "G"),
			Duration:    cell(row, "H"),
			Tags:        splitTags(cell(row, "I")),
		}

		if err := resourceRepo.Upsert(&resource); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

// readRows loads all rows from the configured file, dispatching on extension
func readRows(config ImportConfig) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return readCSVRows(config.FilePath)
	}
	return readExcelRows(config)
}

func readExcelRows(config ImportConfig) ([][]string, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cell returns the trimmed value at a column letter, or "" when out of range
func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts a column letter like "A" to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
