// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package library

import (
	"sort"

	"github.com/agext/levenshtein"
)

// maxSuggestions bounds how many near-miss names E500's help text lists.
const maxSuggestions = 3

// suggestDistance is the maximum edit distance a known library name may be
// from an unresolved import before it stops being offered as a suggestion;
// beyond this the names are probably unrelated, not a typo.
const suggestDistance = 3

// Suggest returns the known names closest to name, ordered by increasing
// edit distance (ties broken alphabetically), for E500 help text.
func (r *Registry) Suggest(name string) []string {
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, known := range r.Names() {
		d := levenshtein.Distance(name, known, nil)
		if d <= suggestDistance {
			candidates = append(candidates, scored{known, d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}
