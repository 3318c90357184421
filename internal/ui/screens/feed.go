package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/api"
)

// FeedScreen лента активности друзей
type FeedScreen struct {
	BaseScreen

	items   []api.FeedItem
	loading bool
	cursor  int
	now     func() time.Time
}

// NewFeedScreen создает экран ленты
func NewFeedScreen(env *Env) *FeedScreen {
	return &FeedScreen{
		BaseScreen: NewBaseScreen(env),
		now:        time.Now,
	}
}

// SetItems заменяет события ленты
func (fs *FeedScreen) SetItems(items []api.FeedItem, loading bool) {
	fs.items = items
	fs.loading = loading
	fs.cursor = clampCursor(fs.cursor, len(items))
}

func (fs *FeedScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		fs.SetSize(m.Width, m.Height)
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if fs.cursor > 0 {
				fs.cursor--
			}
		case "down", "j":
			if fs.cursor < len(fs.items)-1 {
				fs.cursor++
			}
		case "home", "g":
			fs.cursor = 0
		case "end", "G":
			fs.cursor = clampCursor(len(fs.items)-1, len(fs.items))
		case "enter", "w":
			if item, ok := fs.selected(); ok {
				return fs, emit(ViewWishlistMsg{User: item.Actor})
			}
		case "p":
			if item, ok := fs.selected(); ok {
				return fs, emit(ViewProfileMsg{User: item.Actor})
			}
		}
	}
	return fs, nil
}

func (fs *FeedScreen) selected() (api.FeedItem, bool) {
	if fs.cursor < 0 || fs.cursor >= len(fs.items) {
		return api.FeedItem{}, false
	}
	return fs.items[fs.cursor], true
}

func (fs *FeedScreen) View() string {
	if fs.loading && len(fs.items) == 0 {
		return loadingState(fs.env, fs.t("app.loading"))
	}
	if len(fs.items) == 0 {
		return emptyState(fs.env, "feed.empty_title", "feed.empty_body", fs.Width())
	}

	perPage := (fs.Height() - 2) / 7
	if perPage < 1 {
		perPage = 1
	}
	start, end := visibleRange(len(fs.items), fs.cursor, perPage)
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, fs.renderItem(fs.items[i], i == fs.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (fs *FeedScreen) renderItem(item api.FeedItem, selected bool) string {
	theme := fs.theme()
	name := userName(&item.Actor)

	action := fs.t("feed.activity.created")
	if item.Action == api.FeedUpdated {
		action = fs.t("feed.activity.updated")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatar(theme, name), " ",
		theme.TitleStyle.Render(truncate(name, fs.Width()/3)), " ",
		theme.HintStyle.Render(action+" • "+fs.env.T.RelativeTime(item.CreatedAt, fs.now())),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, wishCard(fs.env, item.Wish, selected, fs.Width()))
}

func (fs *FeedScreen) ShortHelp() string {
	return fs.t("help.feed")
}
