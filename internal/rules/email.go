package rules

import (
	"regexp"

	"github.com/secrethunter/secrethunter/internal/types"
)

// Local part allows word characters plus ._%+-, domain needs at least one dot,
// TLD is 2-4 letters. The upper bound keeps noise from tokens like pkg@1.2.3 low.
var reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}`)

// Email flags exposed email addresses.
func Email(path string, data []byte) []types.Finding {
	return findAll(path, data, reEmail, IDEmail, types.SevMed, 0.8)
}
