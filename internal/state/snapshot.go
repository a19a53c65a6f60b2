// Package state holds the gallery's application state as immutable snapshots.
// Every transition returns a new Snapshot and leaves the receiver untouched,
// so surfaces can keep the previous value around for comparison or tests.
package state

import (
	"slices"

	"github.com/google/uuid"

	"github.com/ytget/sample-gallery/internal/model"
	"github.com/ytget/sample-gallery/internal/search"
)

// NoticeKind classifies a transient notice
type NoticeKind string

const (
	NoticeInfo  NoticeKind = "info"
	NoticeError NoticeKind = "error"
)

// Notice is a transient, auto-dismissing message
type Notice struct {
	ID      string
	Kind    NoticeKind
	Message string
}

// Snapshot is one immutable view of the application state
type Snapshot struct {
	loaded   bool
	catalog  []model.CatalogEntry
	query    string
	matches  []search.Match
	selected *model.CatalogEntry
	notice   *Notice
}

// New returns the initial state: catalog not loaded yet, nothing visible
func New() Snapshot {
	return Snapshot{}
}

// Loaded reports whether the catalog load has finished, successfully or not
func (s Snapshot) Loaded() bool {
	return s.loaded
}

// Query returns the raw query the visible set was computed from
func (s Snapshot) Query() string {
	return s.query
}

// Catalog returns the full catalog in load order
func (s Snapshot) Catalog() []model.CatalogEntry {
	return slices.Clone(s.catalog)
}

// Visible returns the filtered and ranked entries
func (s Snapshot) Visible() []model.CatalogEntry {
	visible := make([]model.CatalogEntry, len(s.matches))
	for i, match := range s.matches {
		visible[i] = match.Entry
	}
	return visible
}

// Matches returns the visible entries with their scores
func (s Snapshot) Matches() []search.Match {
	return slices.Clone(s.matches)
}

// Selected returns the entry shown in the detail view, if any
func (s Snapshot) Selected() (model.CatalogEntry, bool) {
	if s.selected == nil {
		return model.CatalogEntry{}, false
	}
	return *s.selected, true
}

// Notice returns the current notice, if any
func (s Snapshot) Notice() (Notice, bool) {
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

// WithCatalog marks the load as finished and recomputes the visible set for
// the current query
func (s Snapshot) WithCatalog(entries []model.CatalogEntry) Snapshot {
	next := s
	next.loaded = true
	next.catalog = make([]model.CatalogEntry, len(entries))
	for i, entry := range entries {
		next.catalog[i] = entry.Clone()
	}
	next.matches = search.Rank(next.catalog, next.query)
	next.selected = nil
	return next
}

// WithLoadFailure marks the load as finished with an empty catalog and
// raises an error notice
func (s Snapshot) WithLoadFailure(message string) Snapshot {
	next := s.WithCatalog(nil)
	return next.WithNotice(NoticeError, message)
}

// WithQuery recomputes the visible set from the full catalog and the query
func (s Snapshot) WithQuery(query string) Snapshot {
	next := s
	next.query = query
	next.matches = search.Rank(s.catalog, query)
	return next
}

// Select opens the detail view for the visible entry at index
func (s Snapshot) Select(index int) (Snapshot, bool) {
	if index < 0 || index >= len(s.matches) {
		return s, false
	}
	entry := s.matches[index].Entry.Clone()
	next := s
	next.selected = &entry
	return next, true
}

// SelectEntry opens the detail view for the given entry
func (s Snapshot) SelectEntry(entry model.CatalogEntry) Snapshot {
	selected := entry.Clone()
	next := s
	next.selected = &selected
	return next
}

// ClearSelection closes the detail view
func (s Snapshot) ClearSelection() Snapshot {
	next := s
	next.selected = nil
	return next
}

// WithNotice replaces the current notice with a new one carrying a fresh ID
func (s Snapshot) WithNotice(kind NoticeKind, message string) Snapshot {
	next := s
	next.notice = &Notice{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
	}
	return next
}

// DismissNotice removes the notice only if it is still the one with the
// given ID, so a stale timer cannot dismiss a newer notice
func (s Snapshot) DismissNotice(id string) Snapshot {
	if s.notice == nil || s.notice.ID != id {
		return s
	}
	next := s
	next.notice = nil
	return next
}
