package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/curdirmark/internal/model"
)

// Styles holds the lipgloss styles used for list output.
type Styles struct {
	Name lipgloss.Style
	Path lipgloss.Style
}

// DefaultStyles returns list styles bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#A0A0A0"}

	return Styles{
		Name: r.NewStyle().Bold(true).Foreground(accent),
		Path: r.NewStyle().Foreground(subtle),
	}
}

// List writes one line per bookmark, sorted by name, with names padded to
// a common width. Colors are dropped when w is not a terminal.
func List(w io.Writer, store *model.Store) error {
	styles := DefaultStyles(lipgloss.NewRenderer(w))

	bookmarks := store.List()
	width := 0
	for _, b := range bookmarks {
		width = max(width, lipgloss.Width(b.Name))
	}

	for _, b := range bookmarks {
		pad := strings.Repeat(" ", width-lipgloss.Width(b.Name))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n",
			styles.Name.Render(b.Name), pad, styles.Path.Render(b.Path)); err != nil {
			return err
		}
	}
	return nil
}
