package ingest

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// XLSXToText reads one sheet of a workbook as tab-delimited text. An empty
// sheet name selects the first sheet.
func XLSXToText(r io.Reader, sheet string) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return "", ErrNoSheet
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	log.Printf("[Ingest] xlsx sheet=%q rows=%d", sheet, len(rows))

	return joinRows(rows), nil
}
