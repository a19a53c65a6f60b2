package model

import "testing"

func TestCatalogEntry_PreviewSource(t *testing.T) {
	tests := []struct {
		name     string
		entry    CatalogEntry
		expected string
	}{
		{
			name:     "image with preview",
			entry:    CatalogEntry{Media: "full.png", PreviewMedia: "thumb.png", MediaType: MediaTypeImage},
			expected: "thumb.png",
		},
		{
			name:     "image without preview falls back to media",
			entry:    CatalogEntry{Media: "full.png", MediaType: MediaTypeImage},
			expected: "full.png",
		},
		{
			name:     "video uses preview",
			entry:    CatalogEntry{Media: "clip.mp4", PreviewMedia: "clip.gif", MediaType: MediaTypeVideo},
			expected: "clip.gif",
		},
	}

	for _, test := range tests {
		result := test.entry.PreviewSource()
		if result != test.expected {
			t.Errorf("%s: PreviewSource() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestCatalogEntry_Links(t *testing.T) {
	entry := CatalogEntry{SampleLink: DefaultSampleLink}
	if entry.HasSampleLink() {
		t.Error("default sample link should not count as a link")
	}
	if entry.HasCodeLink() {
		t.Error("empty code link should not count as a link")
	}

	entry = CatalogEntry{SampleLink: "https://example.com/sample", CodeLink: "https://github.com/example/repo"}
	if !entry.HasSampleLink() {
		t.Error("expected sample link")
	}
	if !entry.HasCodeLink() {
		t.Error("expected code link")
	}
}

func TestCatalogEntry_GetDisplayName(t *testing.T) {
	entry := CatalogEntry{Name: "  Route\tPlanning\nTool "}
	expected := "Route Planning Tool"
	if result := entry.GetDisplayName(); result != expected {
		t.Errorf("GetDisplayName() = %q, expected %q", result, expected)
	}
}

func TestCatalogEntry_Clone(t *testing.T) {
	original := CatalogEntry{Name: "Terrain", Tags: []string{"3D"}}
	clone := original.Clone()
	clone.Tags[0] = "changed"

	if original.Tags[0] != "3D" {
		t.Errorf("Clone shares tags with original: %v", original.Tags)
	}

	empty := CatalogEntry{}.Clone()
	if empty.Tags == nil {
		t.Error("Clone should never return nil tags")
	}
}
