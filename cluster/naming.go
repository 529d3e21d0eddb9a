package cluster

import (
	"strings"
	"unicode"
)

// nameStopwords are tokens too generic to identify a cluster of medical
// search terms.
var nameStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true,
	"for": true, "and": true, "or": true, "with": true,
	"cancer": true, "disease": true, "syndrome": true,
}

const maxNameLength = 25

// ClusterName derives a short display name for a cluster from its member
// terms: the shortest member containing the most frequent meaningful word.
func ClusterName(members []string) string {
	if len(members) == 0 {
		return "Unnamed"
	}

	// Count meaningful words across all members, first-seen order breaks ties
	counts := make(map[string]int)
	var order []string
	for _, member := range members {
		for _, word := range strings.Fields(strings.ToLower(member)) {
			if nameStopwords[word] {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	if len(order) == 0 {
		return titleCase(truncate(members[0]))
	}

	top := order[0]
	for _, word := range order {
		if counts[word] > counts[top] {
			top = word
		}
	}

	// Shortest member mentioning the top word
	best := ""
	for _, member := range members {
		if !strings.Contains(strings.ToLower(member), top) {
			continue
		}
		if best == "" || len(member) < len(best) {
			best = member
		}
	}

	// No match, or every match runs long: shortest member overall
	if best == "" || len(best) > maxNameLength {
		shortest := members[0]
		for _, member := range members {
			if len(member) < len(shortest) {
				shortest = member
			}
		}
		best = shortest
	}

	return titleCase(truncate(best))
}

func truncate(s string) string {
	if len(s) > maxNameLength {
		return s[:maxNameLength-3] + "..."
	}
	return s
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
