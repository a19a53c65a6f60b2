package model

import (
	"slices"
	"strings"
)

// CatalogEntry represents a single sample in the gallery
type CatalogEntry struct {
	Name string `json:"name" yaml:"name"`
	// Media is the full size image or video
	Media     string    `json:"media" yaml:"media"`
	MediaType MediaType `json:"mediaType" yaml:"mediaType"`
	// SampleLink points at the live sample, "#" when unknown
	SampleLink string `json:"sampleLink" yaml:"sampleLink"`
	// CodeLink points at the source code, empty when absent
	CodeLink    string   `json:"codeLink,omitempty" yaml:"codeLink,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
	Description string   `json:"description" yaml:"description"`
	// PreviewMedia is the grid thumbnail
	PreviewMedia string `json:"previewMedia" yaml:"previewMedia"`
}

// HasCodeLink reports whether the entry links to its source code
func (e CatalogEntry) HasCodeLink() bool {
	return strings.TrimSpace(e.CodeLink) != ""
}

// HasSampleLink reports whether the entry links to a live sample
func (e CatalogEntry) HasSampleLink() bool {
	link := strings.TrimSpace(e.SampleLink)
	return link != "" && link != DefaultSampleLink
}

// PreviewSource returns the media shown on the grid card. Video entries
// always use their preview still; images fall back to the full media.
func (e CatalogEntry) PreviewSource() string {
	if e.MediaType.IsVideo() || e.PreviewMedia != "" {
		return e.PreviewMedia
	}
	return e.Media
}

// GetDisplayName returns the name with control characters flattened so it
// can be shown on a single line
func (e CatalogEntry) GetDisplayName() string {
	name := strings.ReplaceAll(e.Name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	return strings.TrimSpace(name)
}

// Clone returns a deep copy of the entry
func (e CatalogEntry) Clone() CatalogEntry {
	e.Tags = slices.Clone(e.Tags)
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e
}
