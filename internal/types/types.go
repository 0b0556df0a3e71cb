package types

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding describes one suspected credential or exposed email detected at a
// path and 1-based line, including the rule ID, severity, and confidence in [0,1].
type Finding struct {
	Path       string   `json:"path"`
	Line       int      `json:"line"`
	Match      string   `json:"match"`
	Secret     string   `json:"secret,omitempty"` // Extracted secret value (capture group)
	Detector   string   `json:"detector"`
	Severity   Severity `json:"severity"`
	Confidence float64  `json:"confidence"`
	Context    string   `json:"context,omitempty"` // Original line text, whitespace-trimmed
}

// ScanError records a per-file failure that did not abort the scan.
type ScanError struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

func (e ScanError) Error() string {
	return "could not read " + e.Path + ": " + e.Err.Error()
}

func (e ScanError) Unwrap() error { return e.Err }
