package app

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/ui/screens"
)

// Command describes an executable action, optionally bound to a key and/or tab.
type Command struct {
	ID       string
	TitleKey string
	Title    func(*App) string // перекрывает TitleKey
	Key      string
	Tab      *Tab // nil → global
	Enabled  func(*App) bool
	Run      func(*App) tea.Cmd
}

func (c *Command) enabled(app *App) bool {
	return c.Enabled == nil || c.Enabled(app)
}

func (c *Command) title(app *App) string {
	if c.Title != nil {
		return c.Title(app)
	}
	return app.t(c.TitleKey)
}

// CommandRegistry stores commands and resolves them by key and tab.
type CommandRegistry struct {
	byID  map[string]*Command
	byKey map[string][]*Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		byID:  make(map[string]*Command),
		byKey: make(map[string][]*Command),
	}
}

func (r *CommandRegistry) Register(cmd *Command) {
	if cmd == nil || cmd.ID == "" {
		return
	}
	r.byID[cmd.ID] = cmd
	if canonical := platform.CanonicalKey(cmd.Key); canonical != "" {
		r.byKey[canonical] = append(r.byKey[canonical], cmd)
	}
}

// Resolve returns the enabled command for key on tab.
// Tab-specific commands win over global ones.
func (r *CommandRegistry) Resolve(key string, tab Tab, app *App) *Command {
	cmds := r.byKey[platform.CanonicalKey(key)]
	var global *Command
	for _, c := range cmds {
		if !c.enabled(app) {
			continue
		}
		if c.Tab == nil {
			if global == nil {
				global = c
			}
			continue
		}
		if *c.Tab == tab {
			return c
		}
	}
	return global
}

// Get returns command by id.
func (r *CommandRegistry) Get(id string) *Command {
	if r == nil {
		return nil
	}
	return r.byID[id]
}

// All returns commands sorted by id.
func (r *CommandRegistry) All() []*Command {
	list := make([]*Command, 0, len(r.byID))
	for _, cmd := range r.byID {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Run executes command by id if enabled.
func (r *CommandRegistry) Run(id string, app *App) tea.Cmd {
	cmd := r.Get(id)
	if cmd == nil || cmd.Run == nil || !cmd.enabled(app) {
		return nil
	}
	return cmd.Run(app)
}

func tabPtr(t Tab) *Tab { return &t }

func authenticated(a *App) bool { return a.snapshot.Authenticated() }

// registerCommands заполняет реестр из настроек клавиш
func (a *App) registerCommands() {
	keys := a.config.Keybindings
	reg := a.commands

	reg.Register(&Command{
		ID:       "app.quit",
		TitleKey: "commands.quit",
		Key:      keys["quit"],
		Run: func(a *App) tea.Cmd {
			a.requestQuit()
			return nil
		},
	})
	reg.Register(&Command{
		ID:       "palette.open",
		TitleKey: "palette.title",
		Key:      keys["command_palette"],
		Enabled:  func(a *App) bool { return !a.palette.Visible() },
		Run:      func(a *App) tea.Cmd { return a.palette.Open() },
	})
	reg.Register(&Command{
		ID:       "tab.next",
		TitleKey: "commands.next_tab",
		Key:      keys["next_tab"],
		Enabled:  authenticated,
		Run:      func(a *App) tea.Cmd { return a.router.SwitchToNext() },
	})
	reg.Register(&Command{
		ID:       "tab.prev",
		TitleKey: "commands.prev_tab",
		Key:      keys["prev_tab"],
		Enabled:  authenticated,
		Run:      func(a *App) tea.Cmd { return a.router.SwitchToPrevious() },
	})

	tabKeys := map[Tab]string{
		TabWishlist:      "tab_wishlist",
		TabFeed:          "tab_feed",
		TabSubscriptions: "tab_subs",
		TabProfile:       "tab_profile",
		TabSettings:      "tab_settings",
	}
	for _, tab := range tabOrder {
		tab := tab
		reg.Register(&Command{
			ID: "tab." + tab.String(),
			Title: func(a *App) string {
				return a.t("commands.open_tab", "tab", a.t(tab.labelKey()))
			},
			Key:     keys[tabKeys[tab]],
			Enabled: authenticated,
			Run:     func(a *App) tea.Cmd { return a.router.SwitchTo(tab) },
		})
	}

	reg.Register(&Command{
		ID:       "wish.add",
		TitleKey: "commands.add_wish",
		Key:      keys["add_wish"],
		Tab:      tabPtr(TabWishlist),
		Enabled: func(a *App) bool {
			return authenticated(a) && a.tab == TabWishlist && !a.wishlistView.External
		},
		Run: func(a *App) tea.Cmd { return a.openCreateSheet() },
	})
	reg.Register(&Command{
		ID:       "nav.back",
		TitleKey: "commands.back",
		Key:      keys["back"],
		Enabled: func(a *App) bool {
			return (a.tab == TabWishlist && a.wishlistView.External) ||
				(a.tab == TabProfile && a.profileView.External)
		},
		Run: func(a *App) tea.Cmd {
			if a.tab == TabProfile {
				a.backToMyProfile()
			} else {
				a.backToMyWishlist()
			}
			return nil
		},
	})
	reg.Register(&Command{
		ID:       "app.refresh",
		TitleKey: "commands.refresh",
		Key:      keys["refresh"],
		Enabled:  authenticated,
		Run:      func(a *App) tea.Cmd { return a.refresh() },
	})
	reg.Register(&Command{
		ID:       "profile.share",
		TitleKey: "commands.share",
		Key:      keys["share"],
		Enabled:  authenticated,
		Run: func(a *App) tea.Cmd {
			a.shareProfile()
			return nil
		},
	})

	// только из палитры
	reg.Register(&Command{
		ID:       "settings.locale",
		TitleKey: "commands.toggle_locale",
		Run: func(a *App) tea.Cmd {
			next := i18n.RU
			if a.env.T.Locale() == i18n.RU {
				next = i18n.EN
			}
			a.setLocale(next)
			return nil
		},
	})
	reg.Register(&Command{
		ID:       "settings.theme",
		TitleKey: "commands.toggle_theme",
		Run: func(a *App) tea.Cmd {
			next := platform.SchemeDark
			if a.theme.Palette().Scheme == platform.SchemeDark {
				next = platform.SchemeLight
			}
			a.setScheme(next)
			return nil
		},
	})
	reg.Register(&Command{
		ID:       "notifications.test",
		TitleKey: "commands.test",
		Enabled:  authenticated,
		Run:      func(a *App) tea.Cmd { return a.sendTestNotification() },
	})
}

// paletteEntries список команд для палитры
func (a *App) paletteEntries() []screens.CommandEntry {
	all := a.commands.All()
	entries := make([]screens.CommandEntry, 0, len(all))
	for _, cmd := range all {
		if cmd.ID == "palette.open" {
			continue
		}
		context := a.t("palette.global")
		if cmd.Tab != nil {
			context = a.t(cmd.Tab.labelKey())
		}
		entries = append(entries, screens.CommandEntry{
			ID:      cmd.ID,
			Title:   cmd.title(a),
			Key:     platform.DisplayKey(cmd.Key),
			Context: context,
			Enabled: cmd.enabled(a),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Title < entries[j].Title
	})
	return entries
}

// requestQuit спрашивает подтверждение выхода
func (a *App) requestQuit() {
	if a.quitDialog.Visible() {
		return
	}
	a.quitDialog.Ask(a.t("actions.quit"), a.t("app.quit_confirm"), quitConfirmedMsg{})
}
