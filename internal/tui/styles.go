package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/myday/internal/models"
)

const dangerColor = "#E06C75"

// Styles are the lipgloss styles for one theme palette.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Secondary   lipgloss.Style
	Danger      lipgloss.Style
	Box         lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Doc         lipgloss.Style
}

// NewStyles builds styles from a theme.
func NewStyles(theme models.Theme) Styles {
	c := theme.Colors
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Secondary)).
			Bold(true).
			MarginTop(1),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextPrimary)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextSecondary)).Italic(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary)),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Secondary)),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color(dangerColor)).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Bg)).
			Background(lipgloss.Color(c.Primary)).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TextSecondary)).
			Padding(0, 1),
		Doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
