package rules

import (
	"regexp"

	"github.com/secrethunter/secrethunter/internal/types"
)

// Any token containing "password" (bare, prefixed like db_password, or quoted
// like "password":) followed by : or =, then a single- or double-quoted value.
// Group 1 is the secret. Known limitation: keys such as confirm_password_hint
// also match.
var rePassword = regexp.MustCompile(`(?i)["\w]*password["\w]*\s*[:=]\s*["']([^"']*)["']`)

// Password flags hardcoded password assignments.
func Password(path string, data []byte) []types.Finding {
	return findCaptured(path, data, rePassword, IDPassword, types.SevHigh, 0.85)
}
