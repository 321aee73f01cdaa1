package dispatchers

import (
	"sort"
	"strings"
)

// levenshtein calculates the edit distance between two strings, ignoring case.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two rows are enough: each row depends only on the previous one.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilar returns up to maxResults candidates within edit distance 3 of
// input, closest first. Exact matches are not suggestions.
func FindSimilar(input string, candidates []string, maxResults int) []string {
	const maxDistance = 3

	var found []suggestion
	for _, name := range candidates {
		dist := levenshtein(input, name)
		if dist <= maxDistance && dist > 0 {
			found = append(found, suggestion{name: name, distance: dist})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})

	if len(found) > maxResults {
		found = found[:maxResults]
	}

	result := make([]string, len(found))
	for i, s := range found {
		result[i] = s.name
	}
	return result
}

// FindSimilarCommands suggests children of node that resemble input.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	return FindSimilar(input, names, maxResults)
}
