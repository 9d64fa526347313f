package model

// Bookmark is a named reference to a directory path.
type Bookmark struct {
	Name string
	Path string
}
