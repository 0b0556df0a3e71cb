package rules

import "github.com/secrethunter/secrethunter/internal/types"

// Rule scans file data and returns findings. Line numbers are 1-based.
type Rule func(path string, data []byte) []types.Finding

var all = []Rule{Email, Password, APIKey}

// rank fixes the report order of rules that fire on the same line.
var rank = map[string]int{
	IDEmail:    0,
	IDPassword: 1,
	IDAPIKey:   2,
}

const (
	IDEmail    = "email"
	IDPassword = "password"
	IDAPIKey   = "api_key"
)

// RunAll applies every rule to the data. Rules fire independently: the same
// line may yield one finding per rule, and every non-overlapping match on a
// line yields its own finding.
func RunAll(path string, data []byte) []types.Finding {
	var out []types.Finding
	for _, r := range all {
		out = append(out, r(path, data)...)
	}
	return out
}

// IDs returns the rule IDs in report order.
func IDs() []string {
	return []string{IDEmail, IDPassword, IDAPIKey}
}

// Rank returns the position of a rule ID in report order. Unknown IDs sort last.
func Rank(id string) int {
	if r, ok := rank[id]; ok {
		return r
	}
	return len(rank)
}
