package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ChunkRecord is one JSONL line of extracted PDF text.
type ChunkRecord struct {
	Source     string `json:"source"`
	Page       int    `json:"page"`
	ChunkIndex int    `json:"chunk_index"`
	Text       string `json:"text"`
}

// WriteRecords chunks the given page texts and encodes one JSONL record per
// chunk. Pages are numbered from 1; blank pages are skipped but keep their
// number, and the chunk index restarts at 0 on every page.
func WriteRecords(w io.Writer, source string, pages []string, chunkSize, overlap int) (int, error) {
	enc := json.NewEncoder(w)

	written := 0
	for pageIndex, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}

		chunks, err := ChunkText(text, chunkSize, overlap)
		if err != nil {
			return written, err
		}

		for idx, chunk := range chunks {
			rec := ChunkRecord{
				Source:     source,
				Page:       pageIndex + 1,
				ChunkIndex: idx,
				Text:       chunk,
			}
			if err := enc.Encode(rec); err != nil {
				return written, fmt.Errorf("write record: %w", err)
			}
			written++
		}
	}

	return written, nil
}

// IngestPDF extracts one PDF and writes its records to <stem>.jsonl in
// outputDir. Returns the number of records written.
func IngestPDF(pdfPath, outputDir string, chunkSize, overlap int) (int, error) {
	pages, err := PageTexts(pdfPath)
	if err != nil {
		return 0, err
	}

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	outPath := filepath.Join(outputDir, stem+".jsonl")

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", outPath, err)
	}

	written, err := WriteRecords(out, filepath.Base(pdfPath), pages, chunkSize, overlap)
	if err != nil {
		out.Close()
		return written, err
	}
	if err := out.Close(); err != nil {
		return written, fmt.Errorf("close %s: %w", outPath, err)
	}

	return written, nil
}
