package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Tab вкладка приложения
type Tab int

const (
	TabWishlist Tab = iota
	TabFeed
	TabSubscriptions
	TabProfile
	TabSettings
)

// tabOrder порядок вкладок в панели и при переключении по кругу
var tabOrder = []Tab{TabWishlist, TabFeed, TabSubscriptions, TabProfile, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabWishlist:
		return "wishlist"
	case TabFeed:
		return "feed"
	case TabSubscriptions:
		return "subscriptions"
	case TabProfile:
		return "profile"
	case TabSettings:
		return "settings"
	}
	return "unknown"
}

// labelKey ключ перевода названия вкладки
func (t Tab) labelKey() string {
	return "tabs." + t.String()
}

// TabSwitchMsg запрос на смену вкладки
type TabSwitchMsg struct {
	Tab Tab
}

// TabRouter переключает вкладки по кругу
type TabRouter struct {
	app *App
}

// NewTabRouter создает роутер
func NewTabRouter(app *App) *TabRouter {
	return &TabRouter{app: app}
}

// SwitchTo переключается на указанную вкладку
func (r *TabRouter) SwitchTo(tab Tab) tea.Cmd {
	return func() tea.Msg {
		return TabSwitchMsg{Tab: tab}
	}
}

// SwitchToNext переключается на следующую вкладку по порядку
func (r *TabRouter) SwitchToNext() tea.Cmd {
	return r.SwitchTo(nextTab(r.app.tab))
}

// SwitchToPrevious переключается на предыдущую вкладку по порядку
func (r *TabRouter) SwitchToPrevious() tea.Cmd {
	return r.SwitchTo(prevTab(r.app.tab))
}

// nextTab возвращает следующую вкладку в циклическом порядке
func nextTab(current Tab) Tab {
	for i, tab := range tabOrder {
		if tab == current {
			return tabOrder[(i+1)%len(tabOrder)]
		}
	}
	return TabWishlist
}

// prevTab возвращает предыдущую вкладку в циклическом порядке
func prevTab(current Tab) Tab {
	for i, tab := range tabOrder {
		if tab == current {
			if i == 0 {
				return tabOrder[len(tabOrder)-1]
			}
			return tabOrder[i-1]
		}
	}
	return TabWishlist
}
