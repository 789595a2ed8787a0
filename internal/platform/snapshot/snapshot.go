package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer persists chart responses as timestamped JSON files in a fixed
// directory, one file per chart. Writes go through a temp file and a
// rename so a snapshot is never visible half-written.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write stores v as chart-YYYYMMDD-HHMMSS.json and returns the final path.
func (w *Writer) Write(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir snapshot dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(w.dir, "chart-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return "", fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return "", fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp snapshot: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("chart-%s.json", time.Now().Format("20060102-150405")))
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename temp snapshot: %w", err)
	}
	cleanup = false
	return path, nil
}
