package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/curdirmark/internal/model"
)

func testStore() *model.Store {
	store := model.NewStore()
	store.Set("work", "/a")
	store.Set("workshop", "/b")
	store.Set("home", "/c")
	return store
}

func update(p Picker, msg tea.Msg) (Picker, tea.Cmd) {
	newModel, cmd := p.Update(msg)
	return newModel.(Picker), cmd
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testStore(), "")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 3 {
		t.Errorf("expected 3 results, got %d", len(p.results))
	}
	if p.input.Value() != "" {
		t.Errorf("expected empty input, got %q", p.input.Value())
	}
}

func TestPicker_InitialQueryFilters(t *testing.T) {
	p := New(testStore(), "work")

	if len(p.results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(p.results))
	}
	if p.results[0].Bookmark.Name != "work" {
		t.Errorf("expected work first, got %s", p.results[0].Bookmark.Name)
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(testStore(), "")

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyDown})
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyUp})
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}

func TestPicker_CtrlNavigation(t *testing.T) {
	p := New(testStore(), "")

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyCtrlN})
	p, _ = update(p, tea.KeyMsg{Type: tea.KeyCtrlJ})
	if p.cursor != 2 {
		t.Errorf("expected cursor at 2, got %d", p.cursor)
	}

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyCtrlP})
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(testStore(), "")

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyUp})
	if p.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", p.cursor)
	}

	for i := 0; i < 5; i++ {
		p, _ = update(p, tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.cursor != 2 {
		t.Errorf("expected cursor to stop at 2, got %d", p.cursor)
	}
}

func TestPicker_TypingRefilters(t *testing.T) {
	p := New(testStore(), "")
	p.cursor = 2

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ho")})

	if p.input.Value() != "ho" {
		t.Fatalf("expected input 'ho', got %q", p.input.Value())
	}
	if len(p.results) != 2 {
		t.Fatalf("expected 2 results for 'ho', got %d", len(p.results))
	}
	if p.cursor != 0 {
		t.Errorf("expected cursor reset to 0, got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(testStore(), "")
	p.cursor = 1

	p, cmd := update(p, tea.KeyMsg{Type: tea.KeyEnter})

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}

	got := p.Selected()
	if got == nil || got.Name != "work" {
		t.Errorf("expected work to be selected, got %v", got)
	}
}

func TestPicker_EnterWithoutResults(t *testing.T) {
	p := New(testStore(), "zzz")

	p, cmd := update(p, tea.KeyMsg{Type: tea.KeyEnter})

	if p.selected {
		t.Error("expected nothing selected without results")
	}
	if cmd != nil {
		t.Error("expected no command without results")
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := New(testStore(), "")

	p, cmd := update(p, tea.KeyMsg{Type: tea.KeyEsc})

	if !p.Cancelled() {
		t.Error("expected cancelled to be true after Esc")
	}
	if cmd == nil {
		t.Error("expected quit command after cancel")
	}
	if p.Selected() != nil {
		t.Error("expected nil when cancelled")
	}
}

func TestPicker_ViewListsMatches(t *testing.T) {
	p := New(testStore(), "work")

	view := p.View()

	if !strings.Contains(view, "2 matches") {
		t.Errorf("expected match count in view, got:\n%s", view)
	}
	if !strings.Contains(view, "/b") {
		t.Errorf("expected workshop path in view, got:\n%s", view)
	}
	if strings.Contains(view, "/c") {
		t.Errorf("expected home to be filtered out, got:\n%s", view)
	}
}
