package dispatchers

import (
	"slices"
	"strings"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 3
)

// levenshtein calculates the case-insensitive edit distance between two strings.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults labels within edit distance
// 3 of input, closest first and alphabetical among equals. An exact match
// is not a suggestion.
func FindSimilarCommands(input string, labels []string, maxResults int) []string {
	var suggestions []suggestion
	seen := make(map[string]bool, len(labels))

	for _, label := range labels {
		if seen[label] {
			continue
		}
		seen[label] = true

		dist := levenshtein(input, label)
		if dist > 0 && dist <= maxSuggestionDistance {
			suggestions = append(suggestions, suggestion{name: label, distance: dist})
		}
	}

	slices.SortFunc(suggestions, func(a, b suggestion) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.name, b.name)
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
