package diagnostic

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestionDistance = 5

// ClosestMatch returns the candidate with the smallest edit distance to input,
// or the empty string when nothing is within a reasonable distance.
func ClosestMatch(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}

// DidYouMean returns a "did you mean" help line for input against the given
// candidates, or the empty string when no candidate is close enough.
func DidYouMean(input string, candidates []string) string {
	closest := ClosestMatch(input, candidates)
	if closest == "" {
		return ""
	}
	return fmt.Sprintf("did you mean `%s`?", closest)
}

// AvailableModulesHelp builds the canonical help text listing the modules a
// Tana contract may import, e.g. "Available modules: tana/core, tana/kv".
func AvailableModulesHelp(modules []string) string {
	return "Available modules: " + strings.Join(modules, ", ")
}
