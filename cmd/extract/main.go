package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/prasetyadi/contracts-tracker/internal/extraction"
)

// extract runs the field-extraction engine on local OCR dumps, no database
// needed. Each input file holds one page's raw OCR output as JSON.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	page1Path := flag.String("page1", "", "path to the page 1 OCR JSON dump (required)")
	page2Path := flag.String("page2", "", "path to the page 2 OCR JSON dump (optional)")
	outPath := flag.String("out", "", "write the record JSON here instead of stdout")
	flag.Parse()

	if *page1Path == "" {
		log.Error("usage: extract -page1 <file> [-page2 <file>] [-out <file>]")
		os.Exit(2)
	}

	page1 := loadTokens(log, *page1Path)
	if len(page1) == 0 {
		log.Warnw("no tokens recognized on page 1", "path", *page1Path)
	}

	start := time.Now()
	rec := extraction.ExtractPage(page1)
	if *page2Path != "" {
		page2 := loadTokens(log, *page2Path)
		rec = extraction.MergeSecondPage(rec, page2)
	}
	dur := time.Since(start)

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatalf("encode record: %v", err)
	}
	if err := extraction.ValidateRecordJSON(out); err != nil {
		log.Fatalf("record failed validation: %v", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, out, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
	} else {
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
	}

	log.Infow("extraction OK",
		"customer", rec.Customer.Name,
		"payment_method", paymentMethod(rec),
		"duration_ms", dur.Milliseconds(),
	)
}

func loadTokens(log *zap.SugaredLogger, path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read dump %s: %v", path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		log.Fatalf("dump %s is not valid JSON: %v", path, err)
	}
	return extraction.NormalizeTokens(v)
}

func paymentMethod(rec *extraction.ContractRecord) string {
	if rec.Payment == nil {
		return string(extraction.PaymentUnknown)
	}
	return string(rec.Payment.Method)
}
