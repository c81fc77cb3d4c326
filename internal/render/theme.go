package render

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#F5C518")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Red        = lipgloss.Color("#EF4444")
	Pink       = lipgloss.Color("#EC4899")
)

// Theme holds the styles used by every render function. The plain theme
// carries no colors or borders and lays grids out as one line per item,
// which suits pipes and non-terminal output.
type Theme struct {
	Plain bool

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Label    lipgloss.Style

	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Star         lipgloss.Style

	Page         lipgloss.Style
	ActivePage   lipgloss.Style
	FocusedPage  lipgloss.Style
	DisabledPage lipgloss.Style

	Chip         lipgloss.Style
	SelectedChip lipgloss.Style

	Modal  lipgloss.Style
	Button lipgloss.Style
	Badge  lipgloss.Style
}

// DefaultTheme is the styled terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(White).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(LightGray),
		Dim:      lipgloss.NewStyle().Foreground(DimGray),
		Accent:   lipgloss.NewStyle().Foreground(Amber),
		Error:    lipgloss.NewStyle().Foreground(Red),
		Label:    lipgloss.NewStyle().Foreground(Amber).Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1).
			Width(cardWidth),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(0, 1).
			Width(cardWidth),
		Star: lipgloss.NewStyle().Foreground(Amber),

		Page:         lipgloss.NewStyle().Foreground(LightGray).Padding(0, 1),
		ActivePage:   lipgloss.NewStyle().Foreground(SlateDark).Background(Amber).Bold(true).Padding(0, 1),
		FocusedPage:  lipgloss.NewStyle().Foreground(White).Background(SlateLight).Padding(0, 1),
		DisabledPage: lipgloss.NewStyle().Foreground(DimGray).Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1).
			MarginRight(1),
		SelectedChip: lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(Amber).
			Padding(0, 1).
			MarginRight(1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(1, 2),
		Button: lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(Amber).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(White).
			Background(Pink).
			Padding(0, 1),
	}
}

// PlainTheme renders without styling.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Plain:        true,
		Title:        s,
		Subtitle:     s,
		Dim:          s,
		Accent:       s,
		Error:        s,
		Label:        s,
		Card:         s,
		SelectedCard: s,
		Star:         s,
		Page:         s,
		ActivePage:   s,
		FocusedPage:  s,
		DisabledPage: s,
		Chip:         s,
		SelectedChip: s,
		Modal:        s,
		Button:       s,
		Badge:        s,
	}
}
