package screens

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/wishlist"
)

// WishlistData что показывает вкладка вишлиста
type WishlistData struct {
	Wishes  []api.Wish
	Own     bool
	Loading bool
	Handle  string
}

// WishlistScreen свой или чужой вишлист с поиском и фильтрами
type WishlistScreen struct {
	BaseScreen

	data      WishlistData
	visible   []api.Wish
	cursor    int
	search    textinput.Model
	searching bool
	filters   wishlist.Filters
}

// NewWishlistScreen создает экран вишлиста
func NewWishlistScreen(env *Env) *WishlistScreen {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 120

	return &WishlistScreen{
		BaseScreen: NewBaseScreen(env),
		search:     ti,
	}
}

// SetData заменяет данные, фильтры сохраняются
func (ws *WishlistScreen) SetData(data WishlistData) {
	ws.data = data
	ws.applyFilters()
}

// Filters текущие фильтры
func (ws *WishlistScreen) Filters() wishlist.Filters {
	return ws.filters
}

// ResetFilters сбрасывает поиск и фильтры
func (ws *WishlistScreen) ResetFilters() {
	ws.filters = wishlist.Filters{}
	ws.search.SetValue("")
	ws.search.Blur()
	ws.searching = false
	ws.cursor = 0
	ws.applyFilters()
}

// Visible отфильтрованные желания в порядке отображения
func (ws *WishlistScreen) Visible() []api.Wish {
	return ws.visible
}

// Cursor индекс выбранного желания
func (ws *WishlistScreen) Cursor() int {
	return ws.cursor
}

func (ws *WishlistScreen) Capturing() bool {
	return ws.searching
}

func (ws *WishlistScreen) applyFilters() {
	ws.filters.Search = ws.search.Value()
	ws.visible = ws.filters.Apply(ws.data.Wishes)
	ws.cursor = clampCursor(ws.cursor, len(ws.visible))
}

func (ws *WishlistScreen) selected() (api.Wish, bool) {
	if ws.cursor < 0 || ws.cursor >= len(ws.visible) {
		return api.Wish{}, false
	}
	return ws.visible[ws.cursor], true
}

func (ws *WishlistScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ws.SetSize(m.Width, m.Height)
		ws.search.Width = ws.Width() - 6
		return ws, nil
	case tea.KeyMsg:
		if ws.searching {
			return ws.updateSearch(m)
		}
		return ws.updateList(m)
	}
	return ws, nil
}

func (ws *WishlistScreen) updateSearch(m tea.KeyMsg) (Screen, tea.Cmd) {
	switch m.String() {
	case "esc", "enter":
		ws.searching = false
		ws.search.Blur()
		return ws, nil
	}
	var cmd tea.Cmd
	ws.search, cmd = ws.search.Update(m)
	ws.applyFilters()
	return ws, cmd
}

func (ws *WishlistScreen) updateList(m tea.KeyMsg) (Screen, tea.Cmd) {
	switch m.String() {
	case "up", "k":
		if ws.cursor > 0 {
			ws.cursor--
		}
	case "down", "j":
		if ws.cursor < len(ws.visible)-1 {
			ws.cursor++
		}
	case "/":
		ws.searching = true
		return ws, ws.search.Focus()
	case "p":
		ws.filters = ws.filters.CyclePriority()
		ws.applyFilters()
	case "s":
		ws.filters = ws.filters.CycleStatus()
		ws.applyFilters()
	case "x":
		ws.ResetFilters()
	case "shift+up", "K":
		return ws, ws.move(-1)
	case "shift+down", "J":
		return ws, ws.move(1)
	case "enter", "e":
		if w, ok := ws.selected(); ok && ws.data.Own {
			return ws, emit(EditWishMsg{Wish: w})
		}
	case " ", "space":
		if w, ok := ws.selected(); ok && ws.data.Own {
			return ws, emit(ToggleWishStatusMsg{Wish: w})
		}
	case "b":
		if !ws.data.Own {
			return ws, emit(BackToMyWishlistMsg{})
		}
	}
	return ws, nil
}

// move переставляет выбранное желание и сразу показывает новый порядок
func (ws *WishlistScreen) move(delta int) tea.Cmd {
	if !wishlist.CanReorder(ws.data.Own, ws.filters) {
		if ws.data.Own {
			return emit(ShowToastMsg{Text: ws.t("wishlist.reorder_locked")})
		}
		return nil
	}
	to := ws.cursor + delta
	if to < 0 || to >= len(ws.visible) {
		return nil
	}
	ordered := wishlist.Renumber(wishlist.Move(ws.visible, ws.cursor, to))
	ws.data.Wishes = ordered
	ws.cursor = to
	ws.applyFilters()
	return emit(ReorderWishesMsg{Ordered: ordered})
}

func (ws *WishlistScreen) View() string {
	env := ws.env
	width := ws.Width()

	if ws.data.Loading {
		return loadingState(env, ws.t("wishlist.loading_external", "handle", ws.data.Handle))
	}

	var sections []string
	sections = append(sections, ws.filterBar())
	if ws.searching || ws.search.Value() != "" {
		sections = append(sections, ws.theme().InputStyle.Width(width-4).Render(ws.search.View()))
	}

	if len(ws.data.Wishes) == 0 {
		if ws.data.Own {
			sections = append(sections, emptyState(env, "wishlist.empty_title", "wishlist.empty_body", width))
		} else {
			sections = append(sections, emptyState(env, "wishlist.external_empty", "wishlist.empty_body", width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	// карточка занимает около пяти строк
	perPage := (ws.Height() - 4) / 5
	if perPage < 1 {
		perPage = 1
	}
	start, end := visibleRange(len(ws.visible), ws.cursor, perPage)
	for i := start; i < end; i++ {
		sections = append(sections, wishCard(env, ws.visible[i], i == ws.cursor, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (ws *WishlistScreen) filterBar() string {
	priority := ws.t("wishlist.filter_any")
	if ws.filters.Priority != "" {
		priority = ws.t("wishlist.priority." + string(ws.filters.Priority))
	}
	status := ws.t("wishlist.filter_any")
	if ws.filters.Status != "" {
		status = ws.t("wishlist.status." + string(ws.filters.Status))
	}
	bar := ws.theme().HintStyle.Render(ws.t("wishlist.filters", "priority", priority, "status", status))
	if ws.filters.Active() && ws.data.Own {
		bar += "  " + ws.theme().WarningStyle.Render(ws.t("wishlist.reorder_locked"))
	}
	return bar
}

func (ws *WishlistScreen) ShortHelp() string {
	if ws.data.Own {
		return ws.t("help.wishlist_own")
	}
	return ws.t("help.wishlist_external")
}
