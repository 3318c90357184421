package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UsernamePrompt просит выбрать имя, если у пользователя его нет
type UsernamePrompt struct {
	env     *Env
	input   textinput.Model
	visible bool
	saving  bool
}

// NewUsernamePrompt создает окно выбора имени
func NewUsernamePrompt(env *Env) *UsernamePrompt {
	ti := textinput.New()
	ti.Prompt = "@"
	ti.CharLimit = 32
	return &UsernamePrompt{env: env, input: ti}
}

// Open показывает окно
func (up *UsernamePrompt) Open() tea.Cmd {
	if up.visible {
		return nil
	}
	up.visible = true
	up.saving = false
	up.input.SetValue("")
	return up.input.Focus()
}

// Close прячет окно
func (up *UsernamePrompt) Close() {
	up.visible = false
	up.saving = false
	up.input.Blur()
}

// Visible открыто ли окно
func (up *UsernamePrompt) Visible() bool {
	return up.visible
}

// SetSaving помечает запрос в полете
func (up *UsernamePrompt) SetSaving(v bool) {
	up.saving = v
}

// Update обрабатывает ввод. Закрыть окно без сохранения нельзя.
func (up *UsernamePrompt) Update(msg tea.Msg) tea.Cmd {
	if !up.visible {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "enter" {
		username := strings.TrimPrefix(strings.TrimSpace(up.input.Value()), "@")
		if username == "" || up.saving {
			return nil
		}
		return emit(SaveCustomUsernameMsg{Username: username})
	}
	var cmd tea.Cmd
	up.input, cmd = up.input.Update(key)
	return cmd
}

// View рендерит окно
func (up *UsernamePrompt) View() string {
	if !up.visible {
		return ""
	}
	theme := up.env.Theme
	t := up.env.T
	hint := theme.HintStyle.Render("enter " + t.T("actions.save"))
	if up.saving {
		hint = theme.HintStyle.Render(t.T("app.status_saving"))
	}
	return theme.SheetStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render(t.T("profile.custom_username_title")),
		theme.HintStyle.Render(t.T("profile.custom_username_hint")),
		"",
		theme.InputStyle.Render(up.input.View()),
		"",
		hint,
	))
}
