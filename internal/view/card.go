package view

import (
	"github.com/sahilm/fuzzy"

	"github.com/ytget/sample-gallery/internal/model"
)

// MaxCardTags is the number of tags shown on a card
const MaxCardTags = 3

// ActionKind identifies what an action does
type ActionKind string

const (
	ActionOpenSample  ActionKind = "open-sample"
	ActionOpenCode    ActionKind = "open-code"
	ActionViewDetails ActionKind = "view-details"
)

// Default action labels; surfaces may localize them by Kind
const (
	LabelOpenSample  = "Preview"
	LabelOpenCode    = "View Code"
	LabelViewDetails = "View Details"
)

// Action is a user affordance on a card or in the detail view
type Action struct {
	Kind  ActionKind
	Label string
	// Target is the link opened by external actions
	Target string
	// External actions leave the application (browser navigation)
	External bool
}

// CardViewModel is everything a surface needs to draw one grid card
type CardViewModel struct {
	Entry     model.CatalogEntry
	Title     string
	Preview   string
	AltText   string
	MediaType model.MediaType
	Tags      []string
	Actions   []Action
	// Highlights holds byte offsets in Title matched by the current query
	Highlights []int
}

// BuildCard maps an entry to its card
func BuildCard(entry model.CatalogEntry) CardViewModel {
	title := entry.GetDisplayName()

	tags := entry.Tags
	if len(tags) > MaxCardTags {
		tags = tags[:MaxCardTags]
	}

	return CardViewModel{
		Entry:     entry,
		Title:     title,
		Preview:   entry.PreviewSource(),
		AltText:   title,
		MediaType: entry.MediaType,
		Tags:      append([]string{}, tags...),
		Actions:   entryActions(entry, true),
	}
}

// BuildCardForQuery maps an entry to its card and marks the title characters
// matched by query
func BuildCardForQuery(entry model.CatalogEntry, query string) CardViewModel {
	card := BuildCard(entry)
	card.Highlights = titleHighlights(card.Title, query)
	return card
}

// DefaultAction is triggered when the card itself is activated by keyboard
func (c CardViewModel) DefaultAction() Action {
	return Action{Kind: ActionViewDetails, Label: LabelViewDetails}
}

// Action returns the card's action of the given kind
func (c CardViewModel) Action(kind ActionKind) (Action, bool) {
	for _, action := range c.Actions {
		if action.Kind == kind {
			return action, true
		}
	}
	return Action{}, false
}

// entryActions lists the actions of an entry in display order. The code
// action is omitted entirely when the entry has no code link.
func entryActions(entry model.CatalogEntry, withDetails bool) []Action {
	actions := []Action{{
		Kind:     ActionOpenSample,
		Label:    LabelOpenSample,
		Target:   entry.SampleLink,
		External: true,
	}}

	if entry.HasCodeLink() {
		actions = append(actions, Action{
			Kind:     ActionOpenCode,
			Label:    LabelOpenCode,
			Target:   entry.CodeLink,
			External: true,
		})
	}

	if withDetails {
		actions = append(actions, Action{Kind: ActionViewDetails, Label: LabelViewDetails})
	}

	return actions
}

func titleHighlights(title, query string) []int {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{title})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
