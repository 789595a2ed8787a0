package ingest

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []ChunkRecord {
	t.Helper()

	var records []ChunkRecord
	dec := json.NewDecoder(buf)
	for {
		var rec ChunkRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode record: %v", err)
		}
		records = append(records, rec)
	}
	return records
}

func TestWriteRecordsSkipsBlankPagesButKeepsNumbering(t *testing.T) {
	pages := []string{"alpha beta", "", "   ", "gamma"}

	var buf bytes.Buffer
	written, err := WriteRecords(&buf, "book.pdf", pages, 1200, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 2 {
		t.Fatalf("written = %d, want 2", written)
	}

	records := decodeRecords(t, &buf)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.Source != "book.pdf" || first.Page != 1 || first.ChunkIndex != 0 || first.Text != "alpha beta" {
		t.Errorf("first record = %+v", first)
	}

	second := records[1]
	if second.Page != 4 || second.Text != "gamma" {
		t.Errorf("second record = %+v, want page 4 gamma", second)
	}
}

func TestWriteRecordsRestartsChunkIndexPerPage(t *testing.T) {
	pages := []string{"abcdefgh", "ijkl"}

	var buf bytes.Buffer
	written, err := WriteRecords(&buf, "book.pdf", pages, 4, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 3 {
		t.Fatalf("written = %d, want 3", written)
	}

	records := decodeRecords(t, &buf)
	want := []ChunkRecord{
		{Source: "book.pdf", Page: 1, ChunkIndex: 0, Text: "abcd"},
		{Source: "book.pdf", Page: 1, ChunkIndex: 1, Text: "efgh"},
		{Source: "book.pdf", Page: 2, ChunkIndex: 0, Text: "ijkl"},
	}
	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func TestWriteRecordsPropagatesChunkErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteRecords(&buf, "book.pdf", []string{"some text"}, 10, 10)
	if err == nil {
		t.Fatal("expected an error for overlap equal to chunk size")
	}
}
