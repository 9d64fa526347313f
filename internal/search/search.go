package search

import (
	"github.com/nikbrunner/curdirmark/internal/model"
	"github.com/sahilm/fuzzy"
)

// Match represents a bookmark matched by a query.
type Match struct {
	Bookmark       model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkNames implements fuzzy.Source for a bookmark slice.
type bookmarkNames []model.Bookmark

func (bn bookmarkNames) String(i int) string {
	return bn[i].Name
}

func (bn bookmarkNames) Len() int {
	return len(bn)
}

// Find matches bookmark names against query using fuzzy matching.
// An empty query returns every bookmark sorted by name; otherwise results
// are sorted by match score (best first).
func Find(store *model.Store, query string) []Match {
	bookmarks := bookmarkNames(store.List())

	if query == "" {
		results := make([]Match, len(bookmarks))
		for i, b := range bookmarks {
			results[i] = Match{Bookmark: b}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]Match, len(matches))
	for i, m := range matches {
		results[i] = Match{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
