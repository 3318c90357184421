package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// CommandEntry описывает одну команду в палитре.
type CommandEntry struct {
	ID      string
	Title   string
	Key     string
	Context string
	Enabled bool
}

// CommandFetcher возвращает доступные команды.
type CommandFetcher func() []CommandEntry

// CommandExecuteMsg сообщает приложению, какую команду нужно выполнить.
type CommandExecuteMsg struct {
	ID string
}

// CommandPaletteClosedMsg сигнал закрытия палитры без выбора.
type CommandPaletteClosedMsg struct{}

// CommandPalette отображает список команд с нечетким поиском.
type CommandPalette struct {
	env      *Env
	width    int
	visible  bool
	fetch    CommandFetcher
	filter   textinput.Model
	entries  []CommandEntry
	filtered []CommandEntry
	selected int
}

func NewCommandPalette(env *Env, fetch CommandFetcher) *CommandPalette {
	ti := textinput.New()
	return &CommandPalette{
		env:    env,
		width:  60,
		fetch:  fetch,
		filter: ti,
	}
}

// Open показывает палитру со свежим списком команд
func (ps *CommandPalette) Open() tea.Cmd {
	ps.visible = true
	ps.filter.Placeholder = ps.env.T.T("palette.placeholder")
	ps.filter.SetValue("")
	ps.selected = 0
	ps.refresh()
	return ps.filter.Focus()
}

// Close прячет палитру
func (ps *CommandPalette) Close() {
	ps.visible = false
	ps.filter.Blur()
}

// Visible открыта ли палитра
func (ps *CommandPalette) Visible() bool {
	return ps.visible
}

// Filtered команды после фильтра
func (ps *CommandPalette) Filtered() []CommandEntry {
	return ps.filtered
}

// SetWidth ширина палитры
func (ps *CommandPalette) SetWidth(width int) {
	ps.width = width
}

func (ps *CommandPalette) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.KeyMsg)
	if !ok || !ps.visible {
		return nil
	}
	switch m.String() {
	case "up", "shift+tab", "ctrl+k":
		if ps.selected > 0 {
			ps.selected--
		}
		return nil
	case "down", "tab", "ctrl+j":
		if ps.selected < len(ps.filtered)-1 {
			ps.selected++
		}
		return nil
	case "enter":
		if ps.selected >= 0 && ps.selected < len(ps.filtered) {
			entry := ps.filtered[ps.selected]
			if entry.Enabled {
				return emit(CommandExecuteMsg{ID: entry.ID})
			}
		}
		return nil
	case "esc":
		return emit(CommandPaletteClosedMsg{})
	}
	before := ps.filter.Value()
	var cmd tea.Cmd
	ps.filter, cmd = ps.filter.Update(m)
	if ps.filter.Value() != before {
		ps.applyFilter()
	}
	return cmd
}

func (ps *CommandPalette) View() string {
	if !ps.visible {
		return ""
	}
	theme := ps.env.Theme
	width := ps.width
	if width < 20 {
		width = 20
	}
	ps.filter.Width = width - 8

	var lines []string
	if len(ps.filtered) == 0 {
		lines = append(lines, theme.HintStyle.Render(ps.env.T.T("palette.empty")))
	}
	for i, entry := range ps.filtered {
		prefix := "  "
		style := theme.TextStyle
		if !entry.Enabled {
			style = style.Faint(true)
		}
		if i == ps.selected {
			prefix = "→ "
			style = theme.HighlightStyle
		}
		line := style.Render(prefix + entry.Title)
		if entry.Context != "" {
			line += theme.HintStyle.Render(" · " + entry.Context)
		}
		if entry.Key != "" {
			line += theme.HintStyle.Render(" [" + entry.Key + "]")
		}
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render(ps.env.T.T("palette.title")),
		theme.InputStyle.Render(ps.filter.View()),
		strings.Join(lines, "\n"),
	)
	return theme.SheetStyle.Width(width).Render(content)
}

func (ps *CommandPalette) refresh() {
	if ps.fetch == nil {
		ps.entries = nil
		ps.filtered = nil
		return
	}
	ps.entries = ps.fetch()
	ps.applyFilter()
}

type commandSource []CommandEntry

func (s commandSource) String(i int) string {
	return s[i].Title + " " + s[i].Context + " " + s[i].ID
}

func (s commandSource) Len() int { return len(s) }

func (ps *CommandPalette) applyFilter() {
	query := strings.TrimSpace(ps.filter.Value())
	if query == "" {
		ps.filtered = ps.entries
	} else {
		matches := fuzzy.FindFrom(query, commandSource(ps.entries))
		ps.filtered = make([]CommandEntry, 0, len(matches))
		for _, m := range matches {
			ps.filtered = append(ps.filtered, ps.entries[m.Index])
		}
	}
	if len(ps.filtered) == 0 {
		ps.selected = -1
	} else if ps.selected >= len(ps.filtered) {
		ps.selected = len(ps.filtered) - 1
	} else if ps.selected < 0 {
		ps.selected = 0
	}
}
