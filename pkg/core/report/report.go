// Package report renders stored P&L years as a Markdown table and as HTML.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"franchise_dashboard/pkg/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RenderMarkdown renders one column per year (ascending) and one row per
// field that is non-zero in at least one year.
func RenderMarkdown(siteNumber string, years []models.YearlyData) string {
	sorted := make([]models.YearlyData, len(years))
	copy(sorted, years)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Cuenta de explotación - Restaurante %s\n\n", siteNumber)
	if len(sorted) == 0 {
		sb.WriteString("_Sin datos históricos._\n")
		return sb.String()
	}

	sb.WriteString("| Concepto |")
	for _, y := range sorted {
		fmt.Fprintf(&sb, " %d |", y.Year)
	}
	sb.WriteString("\n|---|")
	for range sorted {
		sb.WriteString("---:|")
	}
	sb.WriteString("\n")

	for _, spec := range models.YearlyFields {
		values := make([]float64, len(sorted))
		nonZero := false
		for i := range sorted {
			values[i] = *spec.Ptr(&sorted[i])
			if values[i] != 0 {
				nonZero = true
			}
		}
		if !nonZero {
			continue
		}
		fmt.Fprintf(&sb, "| %s |", spec.Label)
		for _, v := range values {
			fmt.Fprintf(&sb, " %s |", formatAmount(v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderHTML converts the Markdown report to an HTML fragment.
func RenderHTML(siteNumber string, years []models.YearlyData) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(siteNumber, years)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

// formatAmount prints a value in the es-ES locale with two decimals ("-12.345,50").
func formatAmount(v float64) string {
	return message.NewPrinter(language.Spanish).Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
