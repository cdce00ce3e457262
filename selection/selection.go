// Package selection tracks which theme of the catalog is highlighted.
package selection

import (
	"errors"

	"github.com/Rshep3087/alacritty-themes/catalog"
)

var (
	// ErrEmpty is returned by New for a catalog without themes.
	ErrEmpty = errors.New("no themes found")
	// ErrNoSelection is returned by Apply before any theme is selected.
	ErrNoSelection = errors.New("no theme selected")
)

// Applier applies the theme file at path.
type Applier interface {
	Apply(themePath string) error
}

// Machine is either unselected or has one entry selected. Navigation wraps
// at both ends of the catalog.
type Machine struct {
	entries []catalog.Entry

	selected    int
	hasSelected bool

	// last is resumed from when navigating out of the unselected state
	last    int
	hasLast bool
}

// New returns an unselected Machine over entries.
func New(entries []catalog.Entry) (*Machine, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	return &Machine{entries: entries}, nil
}

// Entries returns the catalog the machine navigates.
func (m *Machine) Entries() []catalog.Entry {
	return m.entries
}

// Len is the number of entries.
func (m *Machine) Len() int {
	return len(m.entries)
}

// Selected returns the selected index, if any.
func (m *Machine) Selected() (int, bool) {
	return m.selected, m.hasSelected
}

// Next selects the following entry, wrapping to the first.
func (m *Machine) Next() {
	if !m.hasSelected {
		m.selectIndex(m.resume())
		return
	}
	m.selectIndex((m.selected + 1) % len(m.entries))
}

// Previous selects the preceding entry, wrapping to the last.
func (m *Machine) Previous() {
	if !m.hasSelected {
		m.selectIndex(m.resume())
		return
	}
	m.selectIndex((m.selected - 1 + len(m.entries)) % len(m.entries))
}

// Top selects the first entry.
func (m *Machine) Top() {
	m.selectIndex(0)
}

// Bottom selects the last entry.
func (m *Machine) Bottom() {
	m.selectIndex(len(m.entries) - 1)
}

// Deselect clears the selection, remembering it for the next move.
func (m *Machine) Deselect() {
	if !m.hasSelected {
		return
	}
	m.last, m.hasLast = m.selected, true
	m.hasSelected = false
}

// Highlighted is the entry to preview: the selection, else the last
// selection, else the first entry.
func (m *Machine) Highlighted() catalog.Entry {
	if m.hasSelected {
		return m.entries[m.selected]
	}
	return m.entries[m.resume()]
}

// Apply applies the selected entry. The selection is left as it is.
func (m *Machine) Apply(a Applier) (catalog.Entry, error) {
	if !m.hasSelected {
		return catalog.Entry{}, ErrNoSelection
	}

	e := m.entries[m.selected]
	return e, a.Apply(e.Path)
}

func (m *Machine) resume() int {
	if m.hasLast {
		return m.last
	}
	return 0
}

func (m *Machine) selectIndex(i int) {
	m.selected, m.hasSelected = i, true
}
