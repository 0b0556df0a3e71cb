// Package audit keeps an append-only JSONL journal of scan runs so teams can
// track how a tree's exposure changes over time.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/secrethunter/secrethunter/internal/types"
)

// ScanRecord is one journal line summarizing a completed scan.
type ScanRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	Root           string         `json:"root"`
	TotalFindings  int            `json:"total_findings"`
	SeverityCounts map[string]int `json:"severity_counts"`
	FilesScanned   int            `json:"files_scanned"`
	Duration       string         `json:"duration"`
}

// NewRecord summarizes findings into a journal record.
func NewRecord(root string, findings []types.Finding, filesScanned int, duration time.Duration) ScanRecord {
	counts := map[string]int{}
	for _, f := range findings {
		counts[string(f.Severity)]++
	}
	return ScanRecord{
		Timestamp:      time.Now().UTC(),
		Root:           root,
		TotalFindings:  len(findings),
		SeverityCounts: counts,
		FilesScanned:   filesScanned,
		Duration:       duration.String(),
	}
}

type Log struct {
	path string
}

// New returns the journal for a scan root. The file lives under .git when the
// root is a repository, otherwise next to the scanned tree.
func New(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	p := filepath.Join(root, ".secrethunter_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		p = filepath.Join(gitDir, "secrethunter_audit.jsonl")
	}
	return &Log{path: p}
}

// Append writes one record to the journal.
func (l *Log) Append(rec ScanRecord) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	return enc.Encode(rec)
}

// History returns all journal records, oldest first. Corrupt lines are skipped.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec ScanRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	return records, nil
}
