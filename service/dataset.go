package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// LabeledNote is one training example: a free-text expense note and its
// category.
type LabeledNote struct {
	Text     string
	Category string
}

// datasetRow maps the relevant columns of the expense CSV; other columns
// (date, amount, ...) are ignored.
type datasetRow struct {
	Note     string `csv:"Note"`
	Category string `csv:"Category"`
}

// LoadDataset reads labeled notes from the expense CSV at path, skipping
// rows with an empty note or category.
func LoadDataset(path string) ([]LabeledNote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	var rows []*datasetRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	notes := make([]LabeledNote, 0, len(rows))
	for _, row := range rows {
		text := strings.TrimSpace(row.Note)
		category := strings.TrimSpace(row.Category)
		if text == "" || category == "" {
			continue
		}
		notes = append(notes, LabeledNote{Text: text, Category: category})
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("dataset %s contains no labeled notes", path)
	}
	return notes, nil
}
