package rules

import (
	"regexp"

	"github.com/secrethunter/secrethunter/internal/types"
)

var reAPIKey = regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*["']([^"']*)["']`)

// APIKey flags hardcoded API key assignments (api_key, api-key, apikey).
func APIKey(path string, data []byte) []types.Finding {
	return findCaptured(path, data, reAPIKey, IDAPIKey, types.SevHigh, 0.85)
}
