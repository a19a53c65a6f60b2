package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the terminal surface
type Styles struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	CardTitle lipgloss.Style
	Highlight lipgloss.Style
	Badge     lipgloss.Style
	Tags      lipgloss.Style
	Muted     lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Detail    lipgloss.Style
}

// DefaultStyles returns the styles used when none are configured
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Card:      card,
		Selected:  card.BorderForeground(primary),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Highlight: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(primary),
		Badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Padding(0, 1),
		Tags:      lipgloss.NewStyle().Italic(true).Foreground(muted),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}),
		Detail:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(primary).Padding(0, 1),
	}
}
