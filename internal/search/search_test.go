package search

import (
	"testing"

	"github.com/nikbrunner/curdirmark/internal/model"
)

func newStore(entries map[string]string) *model.Store {
	store := model.NewStore()
	for name, path := range entries {
		store.Set(name, path)
	}
	return store
}

func TestFind_EmptyQueryReturnsAllSorted(t *testing.T) {
	store := newStore(map[string]string{
		"work": "/a",
		"home": "/b",
		"dots": "/c",
	})

	results := Find(store, "")

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := []string{"dots", "home", "work"}
	for i, name := range want {
		if results[i].Bookmark.Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, results[i].Bookmark.Name)
		}
	}
}

func TestFind_ExactMatch(t *testing.T) {
	store := newStore(map[string]string{
		"work": "/a",
		"home": "/b",
	})

	results := Find(store, "work")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark.Path != "/a" {
		t.Errorf("expected path /a, got %s", results[0].Bookmark.Path)
	}
}

func TestFind_FuzzyMatch(t *testing.T) {
	store := newStore(map[string]string{
		"curdirmark-src": "/src/curdirmark",
		"dotfiles":       "/home/u/dotfiles",
	})

	results := Find(store, "cdm")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result for 'cdm', got %d", len(results))
	}
	if results[0].Bookmark.Name != "curdirmark-src" {
		t.Errorf("expected curdirmark-src as first result, got %s", results[0].Bookmark.Name)
	}
}

func TestFind_NoMatch(t *testing.T) {
	store := newStore(map[string]string{"work": "/a"})

	results := Find(store, "xyz123")

	if len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz123', got %d", len(results))
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	store := newStore(map[string]string{"Projects": "/p"})

	results := Find(store, "projects")

	if len(results) != 1 {
		t.Fatalf("expected 1 result for case-insensitive match, got %d", len(results))
	}
}

func TestFind_SortedByScore(t *testing.T) {
	store := newStore(map[string]string{
		"old-api-backup": "/x",
		"api":            "/y",
	})

	results := Find(store, "api")

	if len(results) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(results))
	}
	if results[0].Bookmark.Name != "api" {
		t.Errorf("expected 'api' as first result (exact match), got %s", results[0].Bookmark.Name)
	}
}

func TestFind_EmptyStore(t *testing.T) {
	results := Find(model.NewStore(), "")

	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}
