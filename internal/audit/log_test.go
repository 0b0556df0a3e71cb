package audit

import (
	"testing"
	"time"

	"github.com/secrethunter/secrethunter/internal/types"
)

func TestAppendAndHistory(t *testing.T) {
	root := t.TempDir()
	l := New(root)

	fs := []types.Finding{
		{Severity: types.SevHigh},
		{Severity: types.SevMed},
		{Severity: types.SevHigh},
	}
	if err := l.Append(NewRecord(root, fs, 12, 300*time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(NewRecord(root, nil, 12, 100*time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	recs, err := l.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].TotalFindings != 3 || recs[0].SeverityCounts["high"] != 2 {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].TotalFindings != 0 {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestHistoryMissingFile(t *testing.T) {
	l := New(t.TempDir())
	if _, err := l.History(); err == nil {
		t.Fatal("expected error for missing journal")
	}
}
