package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/glowmatch/backend/internal/domain"
)

// candidateDelimiters are tried in order when parsing an uploaded dataset.
var candidateDelimiters = []rune{',', ';'}

// ReadTable parses a CSV dataset with flexible delimiter handling: the
// content is parsed with a comma first, then a semicolon. A parse only
// counts when it yields a header plus at least one data row and more than
// one column — a semicolon file read with a comma delimiter "succeeds" as
// a single wide column, which is useless downstream.
func ReadTable(r io.Reader) (domain.RawTable, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetUnreadable, err)
	}

	for _, delimiter := range candidateDelimiters {
		reader := csv.NewReader(bytes.NewReader(content))
		reader.Comma = delimiter
		reader.TrimLeadingSpace = true
		// Ragged rows degrade to missing cells downstream instead of
		// failing the whole parse
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil {
			continue
		}
		if len(records) < 2 || len(records[0]) < 2 {
			continue
		}
		return recordsToTable(records), nil
	}

	return nil, domain.ErrDatasetUnreadable
}

// recordsToTable converts header + data records into raw rows keyed by the
// free-form header names. Short rows leave trailing columns absent.
func recordsToTable(records [][]string) domain.RawTable {
	header := records[0]
	table := make(domain.RawTable, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.RawRow, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		table = append(table, row)
	}
	return table
}

// FileSource loads a catalog from a CSV file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a catalog source for the given CSV path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source in startup logs.
func (s *FileSource) Name() string {
	return fmt.Sprintf("csv file %s", s.path)
}

// Rows reads and parses the CSV file.
func (s *FileSource) Rows(_ context.Context) (domain.RawTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetUnreadable, err)
	}
	defer f.Close()
	return ReadTable(f)
}
