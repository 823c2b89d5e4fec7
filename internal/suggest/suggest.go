// Package suggest offers "did you mean" hints for mistyped identifiers.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to input by edit distance. Candidates
// further away than half the input length are not considered useful and an
// empty string is returned instead.
func Closest(input string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" || len(candidates) == 0 {
		return ""
	}

	best := ""
	bestDist := -1
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if bestDist < 0 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}

	limit := len(needle) / 2
	if limit < 1 {
		limit = 1
	}
	if bestDist > limit {
		return ""
	}
	return best
}
