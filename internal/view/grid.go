package view

import (
	"fmt"

	"github.com/ytget/sample-gallery/internal/search"
	"github.com/ytget/sample-gallery/internal/state"
)

// Empty state messages
const (
	EmptyNoMatches = "No samples match %q"
	EmptyNoSamples = "No samples available"
)

// GridViewModel is one full render of the gallery grid. A new value replaces
// the previous one entirely.
type GridViewModel struct {
	// Loading is true while the catalog load is pending; nothing is drawn
	Loading bool
	Query   string
	Cards   []CardViewModel
	// Empty is true when no card is visible; EmptyMessage explains why
	Empty        bool
	EmptyMessage string
	Total        int
}

// RenderGrid derives the grid from a snapshot
func RenderGrid(s state.Snapshot) GridViewModel {
	if !s.Loaded() {
		return GridViewModel{Loading: true, Query: s.Query()}
	}

	visible := s.Visible()
	query := search.NormalizeQuery(s.Query())

	grid := GridViewModel{
		Query: s.Query(),
		Cards: make([]CardViewModel, 0, len(visible)),
		Total: len(s.Catalog()),
	}

	for _, entry := range visible {
		grid.Cards = append(grid.Cards, BuildCardForQuery(entry, query))
	}

	if len(grid.Cards) == 0 {
		grid.Empty = true
		grid.EmptyMessage = EmptyNoSamples
		if query != "" {
			grid.EmptyMessage = fmt.Sprintf(EmptyNoMatches, s.Query())
		}
	}

	return grid
}
