// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking theme names against a query
// ABOUTME: Suggest also matches the other way round so over-typed names still resolve

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Suggest returns up to limit items resembling query, best first, compared
// case-insensitively. Items are first matched with query as the pattern;
// when nothing matches, items that are themselves a subsequence of query
// are returned in their original order. A limit <= 0 means no limit.
func Suggest(query string, items []string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(items) == 0 {
		return nil
	}
	lower := make([]string, len(items))
	for i, it := range items {
		lower[i] = strings.ToLower(it)
	}

	var out []string
	for _, m := range Find(query, lower) {
		out = append(out, items[m.Index])
	}
	if len(out) == 0 {
		target := []string{query}
		for i, it := range lower {
			if len(fuzzy.Find(it, target)) > 0 {
				out = append(out, items[i])
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
