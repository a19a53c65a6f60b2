package view

import (
	"github.com/ytget/sample-gallery/internal/model"
)

// MediaViewModel is the large media preview of the detail view
type MediaViewModel struct {
	Kind   model.MediaType
	Source string
	// Poster is a still frame for surfaces that cannot play Source
	Poster string
	Alt    string
}

// DetailViewModel is the content of the detail view
type DetailViewModel struct {
	Title       string
	Description string
	Tags        []string
	Media       MediaViewModel
	Actions     []Action
}

// BuildDetail maps the selected entry to its detail view
func BuildDetail(entry model.CatalogEntry) DetailViewModel {
	title := entry.GetDisplayName()

	return DetailViewModel{
		Title:       title,
		Description: entry.Description,
		Tags:        append([]string{}, entry.Tags...),
		Media: MediaViewModel{
			Kind:   entry.MediaType,
			Source: entry.Media,
			Poster: entry.PreviewMedia,
			Alt:    title,
		},
		Actions: entryActions(entry, false),
	}
}

// HasCodeAction reports whether the code action is shown
func (d DetailViewModel) HasCodeAction() bool {
	for _, action := range d.Actions {
		if action.Kind == ActionOpenCode {
			return true
		}
	}
	return false
}
