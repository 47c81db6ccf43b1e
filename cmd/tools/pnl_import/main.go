package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"franchise_dashboard/pkg/core/config"
	"franchise_dashboard/pkg/core/ingest"
	"franchise_dashboard/pkg/core/profitloss"
	"franchise_dashboard/pkg/core/store"
)

func main() {
	in := flag.String("in", "", "report file (.txt, .tsv, .xlsx, .html)")
	sheet := flag.String("sheet", "", "worksheet name for .xlsx input (default: first sheet)")
	site := flag.String("site", "", "restaurant site number, required with -save")
	save := flag.Bool("save", false, "store the parsed years")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *save && *site == "" {
		log.Fatal("Error: -site is required with -save")
	}

	text, format, err := readReport(*in, *sheet)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *in, err)
	}

	res, err := profitloss.Parse(text)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))

	if len(res.Diagnostics.Unmapped) > 0 {
		log.Printf("Unmapped concepts: %v", res.Diagnostics.Unmapped)
	}

	if !*save {
		return
	}

	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.InitDB(ctx, cfg.DatabaseURL); err != nil {
		log.Printf("Warning: %v", err)
	}

	pnlStore, err := store.NewProfitLossStore(store.GetPool(), cfg.SQLitePath)
	if err == nil {
		err = pnlStore.SaveYears(ctx, *site, res.Years, string(format))
	}
	store.Close()
	if err != nil {
		log.Fatalf("Error saving: %v", err)
	}
	fmt.Printf("Saved %d years for site %s\n", len(res.Years), *site)
}

func readReport(path, sheet string) (string, ingest.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	format := ingest.Detect(filepath.Base(path), "")
	if format == ingest.FormatXLSX {
		text, err := ingest.XLSXToText(f, sheet)
		return text, format, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	text := string(data)
	if format == ingest.FormatHTML || ingest.SniffText(text) == ingest.FormatHTML {
		text, err = ingest.HTMLTableToText(text)
		return text, ingest.FormatHTML, err
	}
	return text, ingest.FormatText, nil
}
