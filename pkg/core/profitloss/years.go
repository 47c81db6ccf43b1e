// Package profitloss parses historical profit and loss reports pasted from
// spreadsheet exports into yearly records.
package profitloss

import (
	"regexp"
	"strconv"
)

// =============================================================================
// HEADER YEARS - Fiscal years declared by the report header
// =============================================================================

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// ExtractYearsFromHeader returns the years found in a header line, in order of
// first appearance and without duplicates.
// Examples:
//
//	"Concepto\tEjerc. 2022\t%\tEjerc. 2023\t%" → [2022 2023]
//	"2023\t2023\t2024" → [2023 2024]
//	"Concepto\tImporte" → []
func ExtractYearsFromHeader(header string) []int {
	matches := yearPattern.FindAllString(header, -1)
	years := make([]int, 0, len(matches))
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		year, err := strconv.Atoi(m)
		if err != nil || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	return years
}
