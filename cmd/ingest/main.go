package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"

	"vedic-chart-service/internal/ingest"
)

// main chunks every PDF in the input directory into JSONL record files,
// one <stem>.jsonl per source document.
func main() {
	input := flag.String("input", "", "directory with PDF files")
	output := flag.String("output", "", "directory for JSONL chunks")
	chunkSize := flag.Int("chunk-size", 1200, "chunk window size in runes")
	overlap := flag.Int("overlap", 150, "runes shared between consecutive chunks")
	flag.Parse()

	if *input == "" || *output == "" {
		log.Fatal("-input and -output are required")
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatal(err)
	}

	pdfs, err := filepath.Glob(filepath.Join(*input, "*.pdf"))
	if err != nil {
		log.Fatal(err)
	}
	sort.Strings(pdfs)
	if len(pdfs) == 0 {
		log.Fatal("no PDF files found in input directory")
	}

	for _, path := range pdfs {
		written, err := ingest.IngestPDF(path, *output, *chunkSize, *overlap)
		if err != nil {
			log.Fatalf("ingest %s failed: %v", path, err)
		}
		log.Printf("ingested source=%s records=%d", filepath.Base(path), written)
	}
}
