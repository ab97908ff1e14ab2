// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Nearest returns the candidate closest to word, provided it is within
// a third of word's length in edits (at least one edit).
func Nearest(word string, candidates []string) (string, bool) {
	maxDistance := len(word) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}

	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(word, candidate)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best, best != ""
}

// Hint formats a " (did you mean 'x'?)" suffix, or "" without a close match.
func Hint(word string, candidates []string) string {
	if nearest, found := Nearest(word, candidates); found {
		return fmt.Sprintf(" (did you mean '%s'?)", nearest)
	}
	return ""
}
