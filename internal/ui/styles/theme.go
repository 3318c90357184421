package styles

import (
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/platform"
)

// Theme содержит все стили приложения
type Theme struct {
	// Размеры экрана
	width  int
	height int

	palette platform.Palette
	colors  ColorScheme

	// Стили компонентов
	StatusBarStyle   lipgloss.Style
	BadgeStyle       lipgloss.Style
	TitleStyle       lipgloss.Style
	SubtitleStyle    lipgloss.Style
	TextStyle        lipgloss.Style
	HintStyle        lipgloss.Style
	LinkStyle        lipgloss.Style
	HighlightStyle   lipgloss.Style
	ErrorStyle       lipgloss.Style
	SuccessStyle     lipgloss.Style
	WarningStyle     lipgloss.Style
	CardStyle        lipgloss.Style
	SelectedCard     lipgloss.Style
	ChipStyle        lipgloss.Style
	ActiveTabStyle   lipgloss.Style
	InactiveTabStyle lipgloss.Style
	ButtonStyle      lipgloss.Style
	SecondaryButton  lipgloss.Style
	InputStyle       lipgloss.Style
	SheetStyle       lipgloss.Style
}

// ColorScheme цветовая схема
type ColorScheme struct {
	Primary     string
	OnPrimary   string
	Background  string
	Surface     string
	Text        string
	TextDim     string
	Link        string
	Error       string
	Success     string
	Warning     string
	Border      string
	PriorityLow string
	PriorityMid string
	PriorityHi  string
}

// schemeFromPalette дополняет палитру платформы служебными цветами
func schemeFromPalette(p platform.Palette) ColorScheme {
	scheme := ColorScheme{
		Primary:     p.Button,
		OnPrimary:   p.ButtonText,
		Background:  p.Bg,
		Surface:     p.SecondaryBg,
		Text:        p.Text,
		TextDim:     p.Hint,
		Link:        p.Link,
		PriorityLow: "#64748b",
		PriorityMid: "#f59e0b",
		PriorityHi:  "#ef4444",
	}
	if p.Scheme == platform.SchemeDark {
		scheme.Error = "#EF4444"
		scheme.Success = "#10B981"
		scheme.Warning = "#F59E0B"
		scheme.Border = "#334155"
	} else {
		scheme.Error = "#DC2626"
		scheme.Success = "#059669"
		scheme.Warning = "#D97706"
		scheme.Border = "#E2E8F0"
	}
	return scheme
}

// NewTheme создает тему из палитры платформы
func NewTheme(palette platform.Palette) *Theme {
	theme := &Theme{}
	theme.Apply(palette)
	return theme
}

// Apply пересобирает стили под новую палитру, размеры сохраняются
func (t *Theme) Apply(palette platform.Palette) {
	t.palette = palette
	t.colors = schemeFromPalette(palette)
	t.initStyles()
}

// Palette текущая палитра
func (t *Theme) Palette() platform.Palette {
	return t.palette
}

// Colors текущая цветовая схема
func (t *Theme) Colors() ColorScheme {
	return t.colors
}

// initStyles инициализирует стили
func (t *Theme) initStyles() {
	c := t.colors

	t.StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface)).
		Foreground(lipgloss.Color(c.TextDim)).
		Padding(0, 1)

	t.BadgeStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Primary)).
		Foreground(lipgloss.Color(c.OnPrimary)).
		Padding(0, 1).
		Bold(true)

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text)).
		Bold(true)

	t.SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextDim))

	t.TextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text))

	t.HintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextDim))

	t.LinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Link)).
		Underline(true)

	t.HighlightStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Primary)).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Error)).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Success)).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Warning)).
		Bold(true)

	t.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(0, 1)

	t.SelectedCard = t.CardStyle.
		BorderForeground(lipgloss.Color(c.Primary))

	t.ChipStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface)).
		Foreground(lipgloss.Color(c.TextDim)).
		Padding(0, 1)

	t.ActiveTabStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Primary)).
		Foreground(lipgloss.Color(c.OnPrimary)).
		Padding(0, 2).
		Bold(true)

	t.InactiveTabStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface)).
		Foreground(lipgloss.Color(c.TextDim)).
		Padding(0, 2)

	t.ButtonStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Primary)).
		Foreground(lipgloss.Color(c.OnPrimary)).
		Padding(0, 2).
		Margin(0, 1).
		Bold(true)

	t.SecondaryButton = lipgloss.NewStyle().
		Background(lipgloss.Color(c.Surface)).
		Foreground(lipgloss.Color(c.Link)).
		Padding(0, 2).
		Margin(0, 1)

	t.InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(0, 1)

	t.SheetStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Primary)).
		Padding(1, 2)
}

// PriorityColor цвет бейджа приоритета
func (t *Theme) PriorityColor(priority string) lipgloss.Color {
	switch priority {
	case "high":
		return lipgloss.Color(t.colors.PriorityHi)
	case "medium":
		return lipgloss.Color(t.colors.PriorityMid)
	default:
		return lipgloss.Color(t.colors.PriorityLow)
	}
}

// SetDimensions устанавливает размеры экрана
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину экрана
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту экрана
func (t *Theme) Height() int {
	return t.height
}

// StatusBar рендерит статус-бар
func (t *Theme) StatusBar(text string) string {
	return t.StatusBarStyle.
		Width(t.width).
		Render(text)
}
