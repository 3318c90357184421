package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
)

// SettingType тип настройки
type SettingType int

const (
	SettingToggle SettingType = iota
	SettingChoice
	SettingAction
)

// SettingItem одна строка настроек
type SettingItem struct {
	Key      string
	LabelKey string
	Type     SettingType
}

var settingItems = []SettingItem{
	{Key: "new_wish", LabelKey: "settings.new_wish", Type: SettingToggle},
	{Key: "updated_wish", LabelKey: "settings.updated_wish", Type: SettingToggle},
	{Key: "digest", LabelKey: "settings.digest", Type: SettingToggle},
	{Key: "language", LabelKey: "settings.language", Type: SettingChoice},
	{Key: "theme", LabelKey: "settings.theme", Type: SettingChoice},
	{Key: "test", LabelKey: "settings.test", Type: SettingAction},
}

// SettingsData внешнее состояние настроек
type SettingsData struct {
	Locale        i18n.Locale
	Scheme        platform.ColorScheme
	Notifications []api.Notification
	Sending       bool
}

// SettingsScreen уведомления, язык и тема
type SettingsScreen struct {
	BaseScreen

	data     SettingsData
	toggles  map[string]bool
	selected int
	history  viewport.Model
}

// NewSettingsScreen создает экран настроек. Переключатели уведомлений
// хранятся только локально.
func NewSettingsScreen(env *Env) *SettingsScreen {
	return &SettingsScreen{
		BaseScreen: NewBaseScreen(env),
		toggles: map[string]bool{
			"new_wish":     true,
			"updated_wish": true,
			"digest":       false,
		},
		history: viewport.New(80, 8),
	}
}

// SetData обновляет язык, тему и историю уведомлений
func (ss *SettingsScreen) SetData(data SettingsData) {
	ss.data = data
	ss.history.SetContent(ss.renderHistory())
}

// Toggle значение локального переключателя
func (ss *SettingsScreen) Toggle(key string) bool {
	return ss.toggles[key]
}

// OnEnter история уведомлений перечитывается при каждом входе
func (ss *SettingsScreen) OnEnter() tea.Cmd {
	return emit(LoadNotificationsMsg{})
}

func (ss *SettingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ss.SetSize(m.Width, m.Height)
		ss.history.Width = ss.Width() - 4
		h := ss.Height() - len(settingItems) - 6
		if h < 3 {
			h = 3
		}
		ss.history.Height = h
		ss.history.SetContent(ss.renderHistory())
		return ss, nil
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if ss.selected > 0 {
				ss.selected--
			}
		case "down", "j":
			if ss.selected < len(settingItems)-1 {
				ss.selected++
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			ss.history, cmd = ss.history.Update(m)
			return ss, cmd
		case "enter", " ", "space", "left", "right", "h", "l":
			return ss, ss.activate(settingItems[ss.selected])
		}
	}
	return ss, nil
}

func (ss *SettingsScreen) activate(item SettingItem) tea.Cmd {
	switch item.Key {
	case "language":
		next := i18n.RU
		if ss.data.Locale == i18n.RU {
			next = i18n.EN
		}
		return emit(SetLocaleMsg{Locale: next})
	case "theme":
		next := platform.SchemeDark
		if ss.data.Scheme == platform.SchemeDark {
			next = platform.SchemeLight
		}
		return emit(SetThemeMsg{Scheme: next})
	case "test":
		if ss.data.Sending {
			return nil
		}
		return emit(SendTestNotificationMsg{})
	default:
		ss.toggles[item.Key] = !ss.toggles[item.Key]
	}
	return nil
}

func (ss *SettingsScreen) value(item SettingItem) string {
	switch item.Type {
	case SettingToggle:
		if ss.toggles[item.Key] {
			return "[x]"
		}
		return "[ ]"
	case SettingChoice:
		if item.Key == "language" {
			return "‹ " + localeLabel(ss.data.Locale) + " ›"
		}
		return "‹ " + string(ss.data.Scheme) + " ›"
	}
	return "⏎"
}

func (ss *SettingsScreen) View() string {
	theme := ss.theme()
	labelWidth := 0
	for _, item := range settingItems {
		if w := lipgloss.Width(ss.t(item.LabelKey)); w > labelWidth {
			labelWidth = w
		}
	}

	lines := []string{theme.TitleStyle.Render(ss.t("settings.notifications"))}
	for i, item := range settingItems {
		prefix := "  "
		style := theme.TextStyle
		if i == ss.selected {
			prefix = "→ "
			style = theme.HighlightStyle
		}
		label := fmt.Sprintf("%-*s", labelWidth, ss.t(item.LabelKey))
		lines = append(lines, style.Render(prefix+label)+"  "+theme.HintStyle.Render(ss.value(item)))
	}

	lines = append(lines, "", theme.TitleStyle.Render(ss.t("settings.history")), ss.history.View())
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (ss *SettingsScreen) renderHistory() string {
	if len(ss.data.Notifications) == 0 {
		return ss.theme().HintStyle.Render(ss.t("settings.history_empty"))
	}
	lines := make([]string, 0, len(ss.data.Notifications))
	for _, n := range ss.data.Notifications {
		state := ss.t("settings.pending")
		style := ss.theme().WarningStyle
		if n.IsSent {
			state = ss.t("settings.sent")
			style = ss.theme().SuccessStyle
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			ss.theme().HintStyle.Render(n.CreatedAt.Local().Format("02.01 15:04")),
			ss.theme().TextStyle.Render(n.Type),
			style.Render(state),
		))
	}
	return strings.Join(lines, "\n")
}

func (ss *SettingsScreen) ShortHelp() string {
	return ss.t("help.settings")
}
