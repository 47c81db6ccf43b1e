package profitloss

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"franchise_dashboard/pkg/models"
)

var (
	// ErrInsufficientLines is returned when the text lacks a header plus at least one data line.
	ErrInsufficientLines = errors.New("los datos deben tener al menos una línea de encabezado y una línea de datos")

	// ErrNoYears is returned when the header line contains no year token.
	ErrNoYears = errors.New(`no se encontraron años válidos en el encabezado; asegúrate de que el encabezado contenga años como "Ejerc. 2023"`)
)

// Diagnostics describes what happened to each data row of a parse.
type Diagnostics struct {
	MappedRows    int      `json:"mapped_rows"`
	SkippedTotals []string `json:"skipped_totals,omitempty"`
	Unmapped      []string `json:"unmapped,omitempty"`
	ShortRows     int      `json:"short_rows"`
}

// Result is the outcome of a successful parse.
type Result struct {
	Years       []models.YearlyData `json:"years"`
	Diagnostics Diagnostics         `json:"diagnostics"`
}

// ParseDetailedDataFromText parses a tab-delimited P&L export into one record
// per header year, in header order.
func ParseDetailedDataFromText(text string) ([]models.YearlyData, error) {
	res, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return res.Years, nil
}

// Parse is ParseDetailedDataFromText with row level diagnostics.
//
// The first non-blank line is the header and declares the years. Every other
// line is "label\tvalue\tvalue...". Blank cells and percentage cells are
// skipped, and a single column cursor is shared by all years of a row, so the
// n-th usable cell belongs to the n-th year.
func Parse(text string) (*Result, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, fmt.Errorf("error al procesar los datos: %w", ErrInsufficientLines)
	}

	years := ExtractYearsFromHeader(lines[0])
	if len(years) == 0 {
		return nil, fmt.Errorf("error al procesar los datos: %w", ErrNoYears)
	}

	yearly := make(map[int]*DetailedYearlyData, len(years))
	for _, year := range years {
		yearly[year] = CreateEmptyDetailedYearlyData(year)
	}

	var diag Diagnostics
	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			diag.ShortRows++
			continue
		}

		rawConcept := strings.TrimSpace(parts[0])
		concept := NormalizeConceptName(rawConcept)
		if IsHeaderOrTotalLine(concept) {
			diag.SkippedTotals = append(diag.SkippedTotals, rawConcept)
			continue
		}

		field, ok := LookupField(concept)
		if !ok {
			diag.Unmapped = append(diag.Unmapped, rawConcept)
			continue
		}
		diag.MappedRows++

		assignRow(parts, years, field, yearly)
	}

	result := &Result{
		Years:       make([]models.YearlyData, 0, len(years)),
		Diagnostics: diag,
	}
	for _, year := range years {
		result.Years = append(result.Years, ConvertDetailedToStandard(yearly[year]))
	}

	log.Printf("[PnLParser] years=%v mapped=%d totals=%d unmapped=%d short=%d",
		years, diag.MappedRows, len(diag.SkippedTotals), len(diag.Unmapped), diag.ShortRows)

	return result, nil
}

// assignRow walks the value columns of one row with a cursor shared across
// years. Columns running out leave the remaining years untouched.
func assignRow(parts []string, years []int, field models.Field, yearly map[int]*DetailedYearlyData) {
	col := 1
	for _, year := range years {
		for col < len(parts) && !isUsableCell(parts[col]) {
			col++
		}
		if col >= len(parts) {
			return
		}
		yearly[year].Set(field, ParseNumber(parts[col]))
		col++
	}
}

// isUsableCell is false for blank cells and percentage columns.
func isUsableCell(cell string) bool {
	return strings.TrimSpace(cell) != "" && !strings.Contains(cell, "%")
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
