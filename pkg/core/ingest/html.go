package ingest

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLTableToText extracts the first table whose header row mentions a year
// and renders it as tab-delimited text.
func HTMLTableToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	var rows [][]string
	totalTables := 0
	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		totalTables++
		candidate := tableRows(table)
		if len(candidate) == 0 || !yearToken.MatchString(strings.Join(candidate[0], " ")) {
			return true
		}
		rows = candidate
		return false
	})

	log.Printf("[Ingest] html tables=%d selected_rows=%d", totalTables, len(rows))
	if rows == nil {
		return "", ErrNoTable
	}
	return joinRows(rows), nil
}

func tableRows(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// Skip rows of nested tables
		if tr.Closest("table").Get(0) != table.Get(0) {
			return
		}
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if cell.Closest("tr").Get(0) != tr.Get(0) {
				return
			}
			cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return rows
}
