package screens

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"wishfox-tui/internal/api"
)

type subscriptionsMode int

const (
	subsBrowse subscriptionsMode = iota
	subsFilter
	subsAdd
)

// SubscriptionsScreen список подписок, фильтр и подписка по имени
type SubscriptionsScreen struct {
	BaseScreen

	subs         []api.Subscription
	visible      []api.Subscription
	activeHandle string
	loading      bool
	cursor       int

	mode   subscriptionsMode
	filter textinput.Model
	input  textinput.Model
}

// NewSubscriptionsScreen создает экран подписок
func NewSubscriptionsScreen(env *Env) *SubscriptionsScreen {
	filter := textinput.New()
	filter.Prompt = "/ "
	input := textinput.New()
	input.Prompt = "+ "
	input.CharLimit = 64

	return &SubscriptionsScreen{
		BaseScreen: NewBaseScreen(env),
		filter:     filter,
		input:      input,
	}
}

// SetData заменяет подписки; activeHandle подсвечивает открытый сейчас вишлист
func (ss *SubscriptionsScreen) SetData(subs []api.Subscription, activeHandle string, loading bool) {
	ss.subs = subs
	ss.activeHandle = activeHandle
	ss.loading = loading
	ss.applyFilter()
}

// Visible подписки после фильтра
func (ss *SubscriptionsScreen) Visible() []api.Subscription {
	return ss.visible
}

func (ss *SubscriptionsScreen) Capturing() bool {
	return ss.mode != subsBrowse
}

// subscriptionSource адаптер для fuzzy.FindFrom
type subscriptionSource []api.Subscription

func (s subscriptionSource) String(i int) string {
	t := s[i].Target
	if t == nil {
		return ""
	}
	return strings.Join(append(t.SelfHandles(), t.DisplayName), " ")
}

func (s subscriptionSource) Len() int { return len(s) }

func (ss *SubscriptionsScreen) applyFilter() {
	query := strings.TrimSpace(ss.filter.Value())
	if query == "" {
		ss.visible = ss.subs
	} else {
		matches := fuzzy.FindFrom(query, subscriptionSource(ss.subs))
		ss.visible = make([]api.Subscription, 0, len(matches))
		for _, m := range matches {
			ss.visible = append(ss.visible, ss.subs[m.Index])
		}
	}
	ss.cursor = clampCursor(ss.cursor, len(ss.visible))
}

func (ss *SubscriptionsScreen) selected() (*api.User, bool) {
	if ss.cursor < 0 || ss.cursor >= len(ss.visible) || ss.visible[ss.cursor].Target == nil {
		return nil, false
	}
	return ss.visible[ss.cursor].Target, true
}

func (ss *SubscriptionsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ss.SetSize(m.Width, m.Height)
		ss.filter.Width = ss.Width() - 6
		ss.input.Width = ss.Width() - 6
		return ss, nil
	case tea.KeyMsg:
		switch ss.mode {
		case subsFilter:
			return ss.updateFilter(m)
		case subsAdd:
			return ss.updateAdd(m)
		}
		return ss.updateBrowse(m)
	}
	return ss, nil
}

func (ss *SubscriptionsScreen) updateFilter(m tea.KeyMsg) (Screen, tea.Cmd) {
	switch m.String() {
	case "esc", "enter":
		ss.mode = subsBrowse
		ss.filter.Blur()
		return ss, nil
	}
	var cmd tea.Cmd
	ss.filter, cmd = ss.filter.Update(m)
	ss.applyFilter()
	return ss, cmd
}

func (ss *SubscriptionsScreen) updateAdd(m tea.KeyMsg) (Screen, tea.Cmd) {
	switch m.String() {
	case "esc":
		ss.mode = subsBrowse
		ss.input.Blur()
		ss.input.SetValue("")
		return ss, nil
	case "enter":
		handle := strings.TrimPrefix(strings.TrimSpace(ss.input.Value()), "@")
		ss.mode = subsBrowse
		ss.input.Blur()
		ss.input.SetValue("")
		if handle == "" {
			return ss, nil
		}
		return ss, emit(SubscribeMsg{Handle: handle})
	}
	var cmd tea.Cmd
	ss.input, cmd = ss.input.Update(m)
	return ss, cmd
}

func (ss *SubscriptionsScreen) updateBrowse(m tea.KeyMsg) (Screen, tea.Cmd) {
	switch m.String() {
	case "up", "k":
		if ss.cursor > 0 {
			ss.cursor--
		}
	case "down", "j":
		if ss.cursor < len(ss.visible)-1 {
			ss.cursor++
		}
	case "/":
		ss.mode = subsFilter
		return ss, ss.filter.Focus()
	case "+", "n":
		ss.mode = subsAdd
		return ss, ss.input.Focus()
	case "enter", "w":
		if target, ok := ss.selected(); ok {
			return ss, emit(ViewWishlistMsg{User: *target})
		}
	case "p":
		if target, ok := ss.selected(); ok {
			return ss, emit(ViewProfileMsg{User: *target})
		}
	case "u", "delete":
		if target, ok := ss.selected(); ok && target.Handle() != "" {
			return ss, emit(UnsubscribeMsg{Handle: target.Handle()})
		}
	}
	return ss, nil
}

func (ss *SubscriptionsScreen) View() string {
	theme := ss.theme()
	width := ss.Width()

	var sections []string
	switch ss.mode {
	case subsFilter:
		sections = append(sections, theme.InputStyle.Width(width-4).Render(ss.filter.View()))
	case subsAdd:
		ss.input.Placeholder = ss.t("subscriptions.input")
		sections = append(sections, theme.InputStyle.Width(width-4).Render(ss.input.View()))
	default:
		if ss.filter.Value() != "" {
			sections = append(sections, theme.HintStyle.Render(ss.t("subscriptions.filter")+": "+ss.filter.Value()))
		}
	}

	if ss.loading && len(ss.subs) == 0 {
		sections = append(sections, loadingState(ss.env, ss.t("app.loading")))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	if len(ss.subs) == 0 {
		sections = append(sections, emptyState(ss.env, "subscriptions.empty_title", "subscriptions.empty_body", width))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	start, end := visibleRange(len(ss.visible), ss.cursor, ss.Height()-len(sections)-1)
	for i := start; i < end; i++ {
		sections = append(sections, ss.renderRow(ss.visible[i], i == ss.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (ss *SubscriptionsScreen) renderRow(sub api.Subscription, selected bool) string {
	theme := ss.theme()
	target := sub.Target
	name := userName(target)
	if name == "" {
		name = "#" + strconv.FormatInt(sub.TargetUserID, 10)
	}
	handle := ""
	if target != nil {
		if h := target.DisplayHandle(); h != "" {
			handle = "@" + h
		}
	}

	prefix := "  "
	nameStyle := theme.TextStyle
	if selected {
		prefix = "→ "
		nameStyle = theme.HighlightStyle
	}
	row := prefix + avatar(theme, name) + " " + nameStyle.Render(truncate(name, ss.Width()/2))
	if handle != "" {
		row += " " + theme.HintStyle.Render(handle)
	}
	if target != nil && ss.activeHandle != "" && target.HasHandle(ss.activeHandle) {
		row += " " + theme.SuccessStyle.Render("●")
	}
	return row
}

func (ss *SubscriptionsScreen) ShortHelp() string {
	return ss.t("help.subscriptions")
}
