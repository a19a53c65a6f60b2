package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sample-gallery/internal/model"
)

func exampleCatalog() []model.CatalogEntry {
	return model.NormalizeAll([]any{
		map[string]any{"name": "Route Planning Tool", "tags": []any{"Routing"}},
		map[string]any{"name": "Terrain Analysis", "tags": []any{"Terrain"}},
	})
}

func TestSearchableText(t *testing.T) {
	entry := model.CatalogEntry{Name: "Route Planning", Description: "Turn-by-Turn", Tags: []string{"Routing", "3D"}}
	assert.Equal(t, "route planning turn-by-turn routing 3d", SearchableText(entry))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "route", NormalizeQuery("  ROUTE \n"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestScore_SubsequenceComponent(t *testing.T) {
	assert.Equal(t, 3, subsequenceScore("xaxbxc", "abc"))
	assert.Equal(t, 2, subsequenceScore("xaxb", "abc"))
	assert.Equal(t, 0, subsequenceScore("xyz", "abc"))

	entry := model.CatalogEntry{Name: "xaxbxc"}
	assert.Equal(t, 3, Score(entry, "abc"))
}

func TestScore_ExactWordInName(t *testing.T) {
	catalog := exampleCatalog()

	score := Score(catalog[0], NormalizeQuery("route"))
	assert.GreaterOrEqual(t, score, ExactMatchScore+TokenMatchScore)
	assert.Equal(t, 155, score)
}

func TestScore_MultipleTokens(t *testing.T) {
	catalog := exampleCatalog()

	// no exact substring, two tokens, all ten characters in order
	assert.Equal(t, 110, Score(catalog[0], "route tool"))
}

func TestScore_RepeatedSpacesInQuery(t *testing.T) {
	catalog := exampleCatalog()

	// two tokens only; the spaces still count towards the subsequence
	assert.Equal(t, 111, Score(catalog[0], NormalizeQuery("route   tool")))
	assert.Equal(t, 0, Score(model.CatalogEntry{Name: "xyz"}, NormalizeQuery("a   b")))
}

func TestScore_TagsAreSearchable(t *testing.T) {
	catalog := exampleCatalog()

	assert.Equal(t, 157, Score(catalog[0], "routing"))
}

func TestScore_EmptyQuery(t *testing.T) {
	assert.Equal(t, 0, Score(exampleCatalog()[0], ""))
}

func TestRank_RoutePlanningExample(t *testing.T) {
	matches := Rank(exampleCatalog(), "route")
	require.NotEmpty(t, matches)

	assert.Equal(t, "Route Planning Tool", matches[0].Entry.Name)
	assert.Equal(t, 0, matches[0].Index)
	assert.GreaterOrEqual(t, matches[0].Score, 150)

	// "r" from "terrain", "o" from "no description"
	require.Len(t, matches, 2)
	assert.Equal(t, "Terrain Analysis", matches[1].Entry.Name)
	assert.Equal(t, 2, matches[1].Score)
}

func TestRank_EmptyQueryReturnsCatalogInOrder(t *testing.T) {
	catalog := exampleCatalog()

	for _, query := range []string{"", "   ", "\t\n"} {
		matches := Rank(catalog, query)
		require.Len(t, matches, len(catalog))
		for i, match := range matches {
			assert.Equal(t, catalog[i], match.Entry)
			assert.Equal(t, i, match.Index)
			assert.Zero(t, match.Score)
		}
	}
}

func TestRank_SortsByDescendingScore(t *testing.T) {
	catalog := []model.CatalogEntry{
		{Name: "Terrain"},
		{Name: "Tool"},
	}

	matches := Rank(catalog, "tool")
	require.Len(t, matches, 2)
	assert.Equal(t, "Tool", matches[0].Entry.Name)
	assert.Equal(t, 154, matches[0].Score)
	assert.Equal(t, "Terrain", matches[1].Entry.Name)
	assert.Equal(t, 1, matches[1].Score)
}

func TestRank_StableForEqualScores(t *testing.T) {
	catalog := []model.CatalogEntry{
		{Name: "Map Two"},
		{Name: "Unrelated"},
		{Name: "Map One"},
		{Name: "Map Six"},
	}

	matches := Rank(catalog, "map")
	require.Len(t, matches, 3)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, matches[1].Score, matches[2].Score)
	assert.Equal(t, []int{0, 2, 3}, []int{matches[0].Index, matches[1].Index, matches[2].Index})
}

func TestRank_NoMatches(t *testing.T) {
	matches := Rank(exampleCatalog(), "zzz")
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
}

func TestRank_CaseInsensitive(t *testing.T) {
	catalog := exampleCatalog()
	assert.Equal(t, Rank(catalog, "route"), Rank(catalog, "  ROUTE "))
}

func TestRank_Deterministic(t *testing.T) {
	catalog := model.NormalizeAll([]any{
		map[string]any{"name": "3D Building Explorer", "tags": []any{"3D", "Scene"}},
		map[string]any{"name": "Population Clustering", "tags": []any{"Clustering"}},
		map[string]any{"name": "Terrain Analysis", "tags": []any{"Terrain", "3D"}},
		map[string]any{"name": "Custom Vector Tiles", "tags": []any{"Vector Tiles"}},
	})

	first := Rank(catalog, "3d scene")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(catalog, "3d scene"))
	}
}

func TestFilter(t *testing.T) {
	entries := Filter(exampleCatalog(), "route")
	require.NotEmpty(t, entries)
	assert.Equal(t, "Route Planning Tool", entries[0].Name)

	assert.Len(t, Filter(exampleCatalog(), ""), 2)
	assert.Empty(t, Filter(exampleCatalog(), "zzz"))
}
