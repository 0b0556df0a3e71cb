package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/secrethunter/secrethunter/internal/types"
)

func TestWriteSARIF_Shape(t *testing.T) {
	var buf bytes.Buffer
	fs := []types.Finding{
		{Path: "a.txt", Line: 3, Detector: "email", Severity: types.SevMed},
		{Path: "b.env", Line: 1, Detector: "api_key", Severity: types.SevHigh},
	}
	if err := WriteSARIF(&buf, fs, "0.1.0"); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("sarif json: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Fatalf("expected SARIF 2.1.0, got %v", doc["version"])
	}
	runs := doc["runs"].([]any)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	results := runs[0].(map[string]any)["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0].(map[string]any)
	if first["ruleId"] != "email" || first["level"] != "warning" {
		t.Fatalf("unexpected first result: %v", first)
	}
}
