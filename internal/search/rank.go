package search

import (
	"sort"
	"strings"

	"github.com/ytget/sample-gallery/internal/model"
)

// Score weights
const (
	ExactMatchScore  = 100
	TokenMatchScore  = 50
	SubsequenceScore = 1
)

// Match is an entry paired with its score and its position in the catalog
type Match struct {
	Entry model.CatalogEntry
	Score int
	Index int
}

// NormalizeQuery lowercases and trims a raw query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// SearchableText returns the lowercased text an entry is matched against
func SearchableText(entry model.CatalogEntry) string {
	text := entry.Name + " " + entry.Description + " " + strings.Join(entry.Tags, " ")
	return strings.ToLower(text)
}

// Score computes the score of an entry for an already normalized query
func Score(entry model.CatalogEntry, query string) int {
	if query == "" {
		return 0
	}
	return scoreText(SearchableText(entry), query)
}

func scoreText(text, query string) int {
	score := 0

	if strings.Contains(text, query) {
		score += ExactMatchScore
	}

	for _, token := range strings.Fields(query) {
		if strings.Contains(text, token) {
			score += TokenMatchScore
		}
	}

	score += subsequenceScore(text, query)

	return score
}

// subsequenceScore scans text left to right and awards a point each time the
// next unmatched query character is found
func subsequenceScore(text, query string) int {
	pattern := []rune(query)
	cursor := 0
	for _, r := range text {
		if cursor >= len(pattern) {
			break
		}
		if r == pattern[cursor] {
			cursor++
		}
	}
	return cursor * SubsequenceScore
}

// Rank scores every entry and returns those with a positive score, best
// first. Equal scores keep catalog order. An empty query returns every entry
// in catalog order with a zero score.
func Rank(entries []model.CatalogEntry, rawQuery string) []Match {
	query := NormalizeQuery(rawQuery)

	matches := make([]Match, 0, len(entries))
	if query == "" {
		for i, entry := range entries {
			matches = append(matches, Match{Entry: entry, Index: i})
		}
		return matches
	}

	for i, entry := range entries {
		score := scoreText(SearchableText(entry), query)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Entry: entry, Score: score, Index: i})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	return matches
}

// Filter returns the ranked entries without their scores
func Filter(entries []model.CatalogEntry, rawQuery string) []model.CatalogEntry {
	matches := Rank(entries, rawQuery)
	result := make([]model.CatalogEntry, len(matches))
	for i, match := range matches {
		result[i] = match.Entry
	}
	return result
}
