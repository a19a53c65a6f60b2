package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/sample-gallery/internal/state"
	"github.com/ytget/sample-gallery/internal/view"
)

const appTitle = "Sample Gallery"

// View renders the model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if notice, ok := m.snapshot.Notice(); ok {
		b.WriteString(m.renderNotice(notice))
	}
	b.WriteString("\n")

	if m.detail {
		b.WriteString(m.styles.Detail.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.keys.detailHelp()))
		return b.String()
	}

	b.WriteString(m.renderGrid(view.RenderGrid(m.snapshot)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderNotice(notice state.Notice) string {
	if notice.Kind == state.NoticeError {
		return m.styles.Error.Render("✗ " + notice.Message)
	}
	return m.styles.Info.Render("ℹ " + notice.Message)
}

// renderGrid draws the visible cards, scrolled so the cursor stays in view
func (m Model) renderGrid(grid view.GridViewModel) string {
	if grid.Loading {
		return m.spinner.View() + " Loading samples..."
	}
	if grid.Empty {
		return m.styles.Muted.Render(grid.EmptyMessage)
	}

	cards := make([]string, 0, len(grid.Cards))
	for i, card := range grid.Cards {
		cards = append(cards, m.renderCard(card, i == m.cursor))
	}

	// each card takes its title, tags and actions rows plus two border rows
	const cardRows = 5
	perPage := max((m.height-chromeHeight)/cardRows, 1)
	start := 0
	if m.cursor >= perPage {
		start = m.cursor - perPage + 1
	}
	end := min(start+perPage, len(cards))

	status := m.styles.Muted.Render(fmt.Sprintf("%d of %d samples", len(grid.Cards), grid.Total))
	return lipgloss.JoinVertical(lipgloss.Left, append(cards[start:end], status)...)
}

func (m Model) renderCard(card view.CardViewModel, selected bool) string {
	title := m.renderTitle(card)
	if card.MediaType.IsVideo() {
		title = m.styles.Badge.Render("▶ video") + " " + title
	}

	tags := make([]string, 0, len(card.Tags))
	for _, tag := range card.Tags {
		tags = append(tags, "#"+tag)
	}

	actions := make([]string, 0, len(card.Actions))
	for _, action := range card.Actions {
		actions = append(actions, action.Label)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.styles.Tags.Render(strings.Join(tags, " · ")),
		m.styles.Muted.Render(strings.Join(actions, " | ")),
	)

	style := m.styles.Card
	if selected {
		style = m.styles.Selected
	}
	return style.Width(max(m.width-2, 20)).Render(body)
}

// renderTitle styles the title characters matched by the query
func (m Model) renderTitle(card view.CardViewModel) string {
	if len(card.Highlights) == 0 {
		return m.styles.CardTitle.Render(card.Title)
	}

	marked := make(map[int]bool, len(card.Highlights))
	for _, offset := range card.Highlights {
		marked[offset] = true
	}

	var b strings.Builder
	for i, r := range card.Title {
		if marked[i] {
			b.WriteString(m.styles.Highlight.Render(string(r)))
		} else {
			b.WriteString(m.styles.CardTitle.Render(string(r)))
		}
	}
	return b.String()
}

// detailMarkdown is the markdown source of the detail pane
func detailMarkdown(detail view.DetailViewModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", detail.Title)
	if detail.Media.Kind.IsVideo() {
		fmt.Fprintf(&b, "Video: %s\n\n", detail.Media.Source)
		fmt.Fprintf(&b, "![%s](%s)\n\n", detail.Media.Alt, detail.Media.Poster)
	} else {
		fmt.Fprintf(&b, "![%s](%s)\n\n", detail.Media.Alt, detail.Media.Source)
	}

	b.WriteString(detail.Description)
	b.WriteString("\n\n")

	if len(detail.Tags) > 0 {
		tags := make([]string, 0, len(detail.Tags))
		for _, tag := range detail.Tags {
			tags = append(tags, "`#"+tag+"`")
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n")
	}

	for _, action := range detail.Actions {
		fmt.Fprintf(&b, "- **%s**: %s\n", action.Label, action.Target)
	}

	return b.String()
}
