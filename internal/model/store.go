package model

import "sort"

// Store holds all bookmarks keyed by name.
// A name maps to at most one path.
type Store struct {
	Bookmarks map[string]string
}

// NewStore creates an empty Store with an initialized map.
func NewStore() *Store {
	return &Store{
		Bookmarks: map[string]string{},
	}
}

// Set assigns path to name, replacing any previous path.
func (s *Store) Set(name, path string) {
	if s.Bookmarks == nil {
		s.Bookmarks = map[string]string{}
	}
	s.Bookmarks[name] = path
}

// Get returns the path stored under name.
func (s *Store) Get(name string) (string, bool) {
	path, ok := s.Bookmarks[name]
	return path, ok
}

// Delete removes name from the store.
// Returns false if the name was not present.
func (s *Store) Delete(name string) bool {
	if _, ok := s.Bookmarks[name]; !ok {
		return false
	}
	delete(s.Bookmarks, name)
	return true
}

// Len returns the number of bookmarks.
func (s *Store) Len() int {
	return len(s.Bookmarks)
}

// Names returns all bookmark names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Bookmarks))
	for name := range s.Bookmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all bookmarks sorted by name.
func (s *Store) List() []Bookmark {
	names := s.Names()
	result := make([]Bookmark, len(names))
	for i, name := range names {
		result[i] = Bookmark{Name: name, Path: s.Bookmarks[name]}
	}
	return result
}
