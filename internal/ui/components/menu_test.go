package components

import (
	"strings"
	"testing"
)

func threeItemMenu() Menu {
	return NewMenu([]MenuItem{
		{Label: "FIRST", Hint: "the first thing"},
		{Label: "SECOND"},
		{Label: "THIRD", Disabled: true},
	})
}

func TestNewMenuStartsOnFirstEnabledItem(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "LOCKED", Disabled: true},
		{Label: "OPEN"},
	})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if got := m.SelectedItem().Label; got != "OPEN" {
		t.Errorf("SelectedItem().Label = %q, want %q", got, "OPEN")
	}
}

func TestMenuCursorSkipsDisabledItems(t *testing.T) {
	m := threeItemMenu()

	if got := m.nextEnabled(0, +1); got != 1 {
		t.Errorf("nextEnabled(0, +1) = %d, want 1", got)
	}
	// THIRD is disabled, so the cursor stays on SECOND.
	if got := m.nextEnabled(1, +1); got != 1 {
		t.Errorf("nextEnabled(1, +1) = %d, want 1", got)
	}
	if got := m.nextEnabled(0, -1); got != 0 {
		t.Errorf("nextEnabled(0, -1) = %d, want 0", got)
	}
}

func TestMenuViewMarksSelectionAndHint(t *testing.T) {
	m := threeItemMenu()
	view := m.View()

	if strings.Count(view, "▸") != 1 {
		t.Errorf("view renders %d cursors, want 1:\n%s", strings.Count(view, "▸"), view)
	}
	if !strings.Contains(view, "the first thing") {
		t.Errorf("view missing hint for selected item:\n%s", view)
	}

	// Hints only appear on the item under the cursor.
	m.Selected = 1
	view = m.View()
	if strings.Contains(view, "the first thing") {
		t.Errorf("view shows hint for unselected item:\n%s", view)
	}
}

func TestMenuSelectedItemOutOfRange(t *testing.T) {
	m := Menu{Items: []MenuItem{{Label: "ONLY"}}, Selected: 5}
	if got := m.SelectedItem(); got.Label != "" {
		t.Errorf("SelectedItem() = %+v, want zero value", got)
	}
}
