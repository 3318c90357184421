package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/api"
)

// ProfileData что показывает вкладка профиля
type ProfileData struct {
	Own      *api.User
	External bool
	Handle   string
	User     *api.PublicUser // чужой профиль, nil пока грузится
	Loading  bool
	Saving   bool
}

const (
	profileFieldName = iota
	profileFieldUsername
	profileFieldBio
	profileFieldCount
)

// ProfileScreen свой профиль с редактированием или чужая карточка
type ProfileScreen struct {
	BaseScreen

	data    ProfileData
	editing bool
	focus   int
	inputs  [profileFieldCount]textinput.Model
}

// NewProfileScreen создает экран профиля
func NewProfileScreen(env *Env) *ProfileScreen {
	ps := &ProfileScreen{BaseScreen: NewBaseScreen(env)}
	for i := range ps.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ps.inputs[i] = ti
	}
	ps.inputs[profileFieldBio].CharLimit = 280
	return ps
}

// SetData заменяет данные профиля. Чужой профиль закрывает редактирование.
func (ps *ProfileScreen) SetData(data ProfileData) {
	ps.data = data
	if data.External {
		ps.stopEditing()
	}
}

// Editing открыта ли форма редактирования
func (ps *ProfileScreen) Editing() bool {
	return ps.editing
}

func (ps *ProfileScreen) Capturing() bool {
	return ps.editing
}

func (ps *ProfileScreen) startEditing() tea.Cmd {
	u := ps.data.Own
	if u == nil {
		return nil
	}
	ps.inputs[profileFieldName].SetValue(u.DisplayName)
	ps.inputs[profileFieldUsername].SetValue(api.Str(u.CustomUsername))
	ps.inputs[profileFieldBio].SetValue(api.Str(u.Bio))
	ps.editing = true
	ps.focus = profileFieldName
	return ps.focusInput()
}

func (ps *ProfileScreen) stopEditing() {
	ps.editing = false
	for i := range ps.inputs {
		ps.inputs[i].Blur()
	}
}

func (ps *ProfileScreen) focusInput() tea.Cmd {
	var cmd tea.Cmd
	for i := range ps.inputs {
		if i == ps.focus {
			cmd = ps.inputs[i].Focus()
		} else {
			ps.inputs[i].Blur()
		}
	}
	return cmd
}

// patch собирает изменения профиля
func (ps *ProfileScreen) patch() api.UserPatch {
	name := strings.TrimSpace(ps.inputs[profileFieldName].Value())
	username := strings.TrimPrefix(strings.TrimSpace(ps.inputs[profileFieldUsername].Value()), "@")
	bio := strings.TrimSpace(ps.inputs[profileFieldBio].Value())
	return api.UserPatch{
		DisplayName:    api.StrPtr(name),
		CustomUsername: api.StrPtr(username),
		Bio:            &bio,
	}
}

func (ps *ProfileScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ps.SetSize(m.Width, m.Height)
		for i := range ps.inputs {
			ps.inputs[i].Width = ps.Width() - 8
		}
		return ps, nil
	case tea.KeyMsg:
		if ps.editing {
			return ps.updateEditing(m)
		}
		return ps.updateView(m)
	}
	return ps, nil
}

func (ps *ProfileScreen) updateEditing(m tea.KeyMsg) (Screen, tea.Cmd) {
	switch m.String() {
	case "esc":
		ps.stopEditing()
		return ps, nil
	case "tab", "down":
		ps.focus = (ps.focus + 1) % profileFieldCount
		return ps, ps.focusInput()
	case "shift+tab", "up":
		ps.focus = (ps.focus + profileFieldCount - 1) % profileFieldCount
		return ps, ps.focusInput()
	case "ctrl+s", "enter":
		if ps.data.Saving {
			return ps, nil
		}
		patch := ps.patch()
		ps.stopEditing()
		return ps, emit(UpdateProfileMsg{Patch: patch})
	}
	var cmd tea.Cmd
	ps.inputs[ps.focus], cmd = ps.inputs[ps.focus].Update(m)
	return ps, cmd
}

func (ps *ProfileScreen) updateView(m tea.KeyMsg) (Screen, tea.Cmd) {
	if ps.data.External {
		switch m.String() {
		case "w", "enter":
			if ps.data.User != nil {
				return ps, emit(ViewWishlistMsg{User: UserFromPublic(ps.data.User)})
			}
		case "b":
			return ps, emit(BackToMyProfileMsg{})
		}
		return ps, nil
	}
	switch m.String() {
	case "e":
		return ps, ps.startEditing()
	case "s":
		return ps, emit(ShareProfileMsg{})
	}
	return ps, nil
}

func (ps *ProfileScreen) View() string {
	if ps.data.External {
		return ps.viewExternal()
	}
	if ps.data.Own == nil {
		return loadingState(ps.env, ps.t("app.loading"))
	}
	if ps.editing {
		return ps.viewEditing()
	}
	return ps.viewOwn()
}

func (ps *ProfileScreen) card(name, handle, bio string, extra ...string) string {
	theme := ps.theme()
	width := ps.Width() - 4
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, avatar(theme, name), " ", theme.TitleStyle.Render(truncate(name, width-6))),
	}
	if handle != "" {
		lines = append(lines, theme.HintStyle.Render("@"+handle))
	}
	if bio == "" {
		lines = append(lines, theme.HintStyle.Italic(true).Render(ps.t("profile.empty_bio")))
	} else {
		lines = append(lines, theme.TextStyle.Render(wrap(bio, width-4)))
	}
	lines = append(lines, extra...)
	return theme.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (ps *ProfileScreen) viewOwn() string {
	u := ps.data.Own
	theme := ps.theme()
	actions := theme.ButtonStyle.Render("e "+ps.t("profile.edit_button")) +
		theme.SecondaryButton.Render("s "+ps.t("actions.share"))
	extra := []string{"", theme.HintStyle.Render(ps.t("profile.share_hint")), actions}
	return ps.card(userName(u), u.DisplayHandle(), api.Str(u.Bio), extra...)
}

func (ps *ProfileScreen) viewExternal() string {
	if ps.data.Loading && ps.data.User == nil {
		return loadingState(ps.env, ps.t("profile.loading"))
	}
	p := ps.data.User
	if p == nil {
		return loadingState(ps.env, ps.t("profile.loading"))
	}
	theme := ps.theme()
	name := p.DisplayName
	if strings.TrimSpace(name) == "" {
		name = "@" + p.Username
	}
	actions := theme.ButtonStyle.Render("w "+ps.t("actions.view")) +
		theme.SecondaryButton.Render("esc "+ps.t("actions.back_to_mine"))
	return ps.card(name, p.Username, api.Str(p.Bio), "", actions)
}

func (ps *ProfileScreen) viewEditing() string {
	theme := ps.theme()
	labels := [profileFieldCount]string{
		ps.t("profile.display_name"),
		ps.t("profile.username"),
		ps.t("profile.bio"),
	}
	var lines []string
	for i, label := range labels {
		style := theme.HintStyle
		if i == ps.focus {
			style = theme.HighlightStyle
		}
		lines = append(lines, style.Render(label), theme.InputStyle.Render(ps.inputs[i].View()))
	}
	lines = append(lines, theme.HintStyle.Render("ctrl+s "+ps.t("profile.save")+" • esc "+ps.t("actions.cancel")))
	return theme.SheetStyle.Width(ps.Width() - 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (ps *ProfileScreen) ShortHelp() string {
	switch {
	case ps.editing:
		return ps.t("help.profile_editing")
	case ps.data.External:
		return ps.t("help.profile_external")
	default:
		return ps.t("help.profile_own")
	}
}
