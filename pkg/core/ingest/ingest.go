// Package ingest converts uploaded P&L reports into the tab-delimited text
// understood by the profitloss parser.
package ingest

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

// Format is the kind of document a report arrives as.
type Format string

const (
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

var (
	ErrNoTable = errors.New("no financial table with year columns found")
	ErrNoSheet = errors.New("workbook has no sheets")
)

var yearToken = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// Detect guesses the report format from the uploaded file name and content type.
func Detect(filename, contentType string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".html", ".htm":
		return FormatHTML
	case ".txt", ".tsv":
		return FormatText
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "spreadsheetml"):
		return FormatXLSX
	case strings.Contains(ct, "text/html"):
		return FormatHTML
	}
	return FormatText
}

// SniffText reports FormatHTML for pasted content that is an HTML table
// (browsers put HTML on the clipboard when copying from web exports).
func SniffText(text string) Format {
	lower := strings.ToLower(strings.TrimSpace(text))
	if strings.HasPrefix(lower, "<") && strings.Contains(lower, "<table") {
		return FormatHTML
	}
	return FormatText
}

// joinRows renders rows as tab-separated lines.
func joinRows(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(strings.TrimSpace(c), "\t", " ")
		}
		line := strings.Join(cells, "\t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
