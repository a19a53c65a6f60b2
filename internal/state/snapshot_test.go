package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sample-gallery/internal/model"
)

func testCatalog() []model.CatalogEntry {
	return model.NormalizeAll([]any{
		map[string]any{"name": "Route Planning Tool", "tags": []any{"Routing"}},
		map[string]any{"name": "Terrain Analysis", "tags": []any{"Terrain"}},
		map[string]any{"name": "Custom Vector Tiles", "tags": []any{"Vector Tiles"}},
	})
}

func TestNew_NotLoaded(t *testing.T) {
	s := New()

	assert.False(t, s.Loaded())
	assert.Empty(t, s.Visible())
	_, selected := s.Selected()
	assert.False(t, selected)
	_, hasNotice := s.Notice()
	assert.False(t, hasNotice)
}

func TestWithCatalog_ShowsEverything(t *testing.T) {
	catalog := testCatalog()
	s := New().WithCatalog(catalog)

	assert.True(t, s.Loaded())
	assert.Equal(t, catalog, s.Visible())
	assert.Equal(t, catalog, s.Catalog())
}

func TestWithCatalog_CopiesInput(t *testing.T) {
	catalog := testCatalog()
	s := New().WithCatalog(catalog)

	catalog[0].Name = "changed"
	catalog[0].Tags[0] = "changed"

	assert.Equal(t, "Route Planning Tool", s.Catalog()[0].Name)
	assert.Equal(t, "Routing", s.Catalog()[0].Tags[0])
}

func TestWithQuery_DoesNotMutateReceiver(t *testing.T) {
	before := New().WithCatalog(testCatalog())
	after := before.WithQuery("route")

	assert.Equal(t, "", before.Query())
	assert.Len(t, before.Visible(), 3)

	assert.Equal(t, "route", after.Query())
	require.NotEmpty(t, after.Visible())
	assert.Equal(t, "Route Planning Tool", after.Visible()[0].Name)
}

func TestWithQuery_RecomputedFromFullCatalog(t *testing.T) {
	s := New().WithCatalog(testCatalog())

	narrowed := s.WithQuery("zzz")
	assert.Empty(t, narrowed.Visible())

	widened := narrowed.WithQuery("")
	assert.Len(t, widened.Visible(), 3)
}

func TestQueryBeforeLoadAppliesOnLoad(t *testing.T) {
	s := New().WithQuery("terrain").WithCatalog(testCatalog())

	require.NotEmpty(t, s.Visible())
	assert.Equal(t, "Terrain Analysis", s.Visible()[0].Name)
}

func TestMatches_CarryScores(t *testing.T) {
	s := New().WithCatalog(testCatalog()).WithQuery("route")

	matches := s.Matches()
	require.NotEmpty(t, matches)
	assert.Equal(t, 155, matches[0].Score)
}

func TestSelect(t *testing.T) {
	s := New().WithCatalog(testCatalog()).WithQuery("terrain")

	selected, ok := s.Select(0)
	require.True(t, ok)

	entry, has := selected.Selected()
	require.True(t, has)
	assert.Equal(t, "Terrain Analysis", entry.Name)

	_, had := s.Selected()
	assert.False(t, had, "receiver must not change")

	cleared := selected.ClearSelection()
	_, has = cleared.Selected()
	assert.False(t, has)
}

func TestSelect_OutOfRange(t *testing.T) {
	s := New().WithCatalog(testCatalog())

	_, ok := s.Select(-1)
	assert.False(t, ok)
	_, ok = s.Select(3)
	assert.False(t, ok)
}

func TestSelectEntry(t *testing.T) {
	catalog := testCatalog()
	s := New().WithCatalog(catalog).SelectEntry(catalog[2])

	entry, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Custom Vector Tiles", entry.Name)
}

func TestWithLoadFailure(t *testing.T) {
	s := New().WithLoadFailure("Failed to load sample apps.")

	assert.True(t, s.Loaded())
	assert.Empty(t, s.Catalog())
	assert.Empty(t, s.Visible())

	notice, ok := s.Notice()
	require.True(t, ok)
	assert.Equal(t, NoticeError, notice.Kind)
	assert.Equal(t, "Failed to load sample apps.", notice.Message)
	assert.NotEmpty(t, notice.ID)
}

func TestDismissNotice_OnlyMatchingID(t *testing.T) {
	first := New().WithNotice(NoticeInfo, "first")
	firstNotice, _ := first.Notice()

	second := first.WithNotice(NoticeInfo, "second")
	secondNotice, _ := second.Notice()
	require.NotEqual(t, firstNotice.ID, secondNotice.ID)

	stale := second.DismissNotice(firstNotice.ID)
	notice, ok := stale.Notice()
	require.True(t, ok)
	assert.Equal(t, "second", notice.Message)

	dismissed := second.DismissNotice(secondNotice.ID)
	_, ok = dismissed.Notice()
	assert.False(t, ok)
}
