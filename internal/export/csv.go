// Package export writes finished report tables in downloadable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ContentTypeCSV is the media type of WriteCSV output.
const ContentTypeCSV = "text/csv; charset=utf-8"

// Table is a finished tabular result. Every row should have len(Header) cells.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	Footer [][]string
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Filename derives a download name such as "collection-report.csv" from the title.
func (t Table) Filename(ext string) string {
	base := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.ToLower(t.Title), "-"), "-")
	if base == "" {
		base = "export"
	}
	return base + "." + ext
}

// WriteCSV writes the header, the rows and then the footer rows.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if len(t.Header) > 0 {
		if err := cw.Write(t.Header); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	for i, row := range t.Footer {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv footer row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
