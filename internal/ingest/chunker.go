package ingest

import (
	"errors"
	"strings"
)

// ChunkText splits text into windows of chunkSize runes, each window
// starting overlap runes before the previous one ended. Chunks are trimmed
// and blank ones dropped. The chunk that reaches the end of the text is the
// last one; the overlap being strictly smaller than the window guarantees
// every step advances.
func ChunkText(text string, chunkSize, overlap int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, errors.New("chunk text: chunk size must be positive")
	}
	if overlap < 0 {
		return nil, errors.New("chunk text: overlap must not be negative")
	}
	if overlap >= chunkSize {
		return nil, errors.New("chunk text: overlap must be smaller than chunk size")
	}

	runes := []rune(text)

	var chunks []string
	for start := 0; start < len(runes); {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		start = end - overlap
	}

	return chunks, nil
}
