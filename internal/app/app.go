package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/config"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/session"
	"wishfox-tui/internal/ui/components"
	"wishfox-tui/internal/ui/screens"
	"wishfox-tui/internal/ui/styles"
)

// Options зависимости приложения
type Options struct {
	Config  *config.Config
	Session *session.Session
	Bridge  *platform.Bridge
	Logger  logrus.FieldLogger
}

// App представляет главное приложение
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	config   *config.Config
	session  *session.Session
	bridge   *platform.Bridge
	logger   logrus.FieldLogger
	router   *TabRouter
	commands *CommandRegistry

	env    *screens.Env
	theme  *styles.Theme
	width  int
	height int

	tab            Tab
	screens        map[Tab]screens.Screen
	wishlistScreen *screens.WishlistScreen
	feedScreen     *screens.FeedScreen
	subsScreen     *screens.SubscriptionsScreen
	profileScreen  *screens.ProfileScreen
	settingsScreen *screens.SettingsScreen

	sheet        *screens.WishSheet
	prompt       *screens.UsernamePrompt
	palette      *screens.CommandPalette
	quitDialog   *components.ConfirmDialog
	deleteDialog *components.ConfirmDialog
	toast        components.Toast
	popupCmds    []tea.Cmd

	// Глобальное состояние
	snapshot            session.Snapshot
	wishlistView        WishlistView
	profileView         ProfileView
	feed                []api.FeedItem
	subscriptions       []api.Subscription
	subscriptionsLoaded bool
	notifications       []api.Notification
	editTarget          *api.Wish
	deepLinkHandled     bool
	preview             *previewDebouncer

	// запросы в полете
	bootstrapping   bool
	feedLoading     bool
	subsLoading     bool
	externalLoading bool
	profileLoading  bool
	creating        bool
	savingProfile   bool
	sendingTest     bool

	skipSync bool
	quitting bool
}

// New создает новое приложение
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		ctx:          ctx,
		cancel:       cancel,
		config:       cfg,
		session:      opts.Session,
		bridge:       opts.Bridge,
		logger:       logger,
		screens:      make(map[Tab]screens.Screen),
		preview:      newPreviewDebouncer(cfg.PreviewDebounce()),
		quitDialog:   components.NewConfirmDialog("", ""),
		deleteDialog: components.NewConfirmDialog("", ""),
	}

	palette := a.bridge.Palette()
	if cfg.Theme == string(platform.SchemeDark) || cfg.Theme == string(platform.SchemeLight) {
		palette = platform.ResolvePalette(platform.ColorScheme(cfg.Theme), platform.ThemeParams{})
	}
	a.theme = styles.NewTheme(palette)
	a.env = &screens.Env{T: i18n.New(a.bridge.Locale()), Theme: a.theme}

	a.router = NewTabRouter(a)
	a.commands = NewCommandRegistry()
	a.registerCommands()
	a.initScreens()
	a.bridge.AttachPopups(a.queuePopup)
	return a
}

// initScreens создает экраны вкладок и модальные окна
func (a *App) initScreens() {
	a.wishlistScreen = screens.NewWishlistScreen(a.env)
	a.feedScreen = screens.NewFeedScreen(a.env)
	a.subsScreen = screens.NewSubscriptionsScreen(a.env)
	a.profileScreen = screens.NewProfileScreen(a.env)
	a.settingsScreen = screens.NewSettingsScreen(a.env)

	a.screens[TabWishlist] = a.wishlistScreen
	a.screens[TabFeed] = a.feedScreen
	a.screens[TabSubscriptions] = a.subsScreen
	a.screens[TabProfile] = a.profileScreen
	a.screens[TabSettings] = a.settingsScreen

	a.sheet = screens.NewWishSheet(a.env)
	a.prompt = screens.NewUsernamePrompt(a.env)
	a.palette = screens.NewCommandPalette(a.env, a.paletteEntries)
	a.updateDialogTexts()
}

// Init инициализирует приложение (Bubble Tea)
func (a *App) Init() tea.Cmd {
	a.tab = TabWishlist
	a.bootstrapping = true
	a.syncScreens()
	return tea.Batch(a.bootstrap(), a.getCurrentScreen().Init())
}

// Close останавливает фоновые запросы
func (a *App) Close() {
	a.preview.stop()
	a.cancel()
	a.bridge.AttachPopups(nil)
}

// Update обрабатывает сообщения (Bubble Tea)
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.skipSync = false
	cmd := a.update(msg)
	if !a.skipSync {
		a.syncScreens()
	}
	if a.quitting {
		return a, tea.Quit
	}
	return a, tea.Batch(cmd, a.drainPopups())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeys(msg)
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)
	case TabSwitchMsg:
		return a.switchTab(msg.Tab)
	case ThemeChangedMsg:
		a.applyPalette(msg.Palette)
		return nil
	case PopupMsg:
		a.queuePopup(msg.Popup)
		return nil
	case components.ToastExpiredMsg:
		a.toast.Update(msg)
		return nil
	case quitConfirmedMsg:
		a.quitting = true
		a.Close()
		return nil

	case sessionReadyMsg:
		return a.handleSessionReady(msg)
	case dataLoadedMsg:
		return a.handleDataLoaded(msg)
	case sessionRefreshedMsg:
		return a.handleSessionRefreshed(msg)
	case subscriptionsLoadedMsg:
		return a.handleSubscriptionsLoaded(msg)
	case externalWishlistLoadedMsg:
		return a.handleExternalWishlistLoaded(msg)
	case externalProfileLoadedMsg:
		return a.handleExternalProfileLoaded(msg)
	case previewTickMsg:
		return a.handlePreviewTick(msg)
	case previewLoadedMsg:
		return a.handlePreviewLoaded(msg)
	case wishSavedMsg:
		return a.handleWishSaved(msg)
	case deleteConfirmedMsg:
		return a.deleteWish(msg.id)
	case wishDeletedMsg:
		return a.handleWishDeleted(msg)
	case reorderDoneMsg:
		return a.handleReorderDone(msg)
	case statusToggledMsg:
		return a.handleStatusToggled(msg)
	case subscribeDoneMsg:
		return a.handleSubscribeDone(msg)
	case unsubscribeDoneMsg:
		return a.handleUnsubscribeDone(msg)
	case profileUpdatedMsg:
		return a.handleProfileUpdated(msg)
	case notificationsLoadedMsg:
		return a.handleNotificationsLoaded(msg)
	case testNotificationSentMsg:
		return a.handleTestNotificationSent(msg)
	}

	if cmd, ok := a.handleIntent(msg); ok {
		return cmd
	}

	// остальное (спиннеры, мигание курсора) отдаем открытым компонентам
	var cmds []tea.Cmd
	if a.sheet.Visible() {
		cmds = append(cmds, a.sheet.Update(msg))
	}
	if screen := a.getCurrentScreen(); screen != nil {
		updated, cmd := screen.Update(msg)
		a.screens[a.tab] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// handleIntent применяет намерения экранов
func (a *App) handleIntent(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case screens.OpenCreateSheetMsg:
		return a.openCreateSheet(), true
	case screens.EditWishMsg:
		return a.openEditSheet(msg.Wish), true
	case screens.CloseSheetMsg:
		a.closeSheet()
		return nil, true
	case screens.SubmitWishMsg:
		return a.submitWish(), true
	case screens.RequestDeleteWishMsg:
		a.requestDeleteWish()
		return nil, true
	case screens.ReorderWishesMsg:
		return a.reorderWishes(msg.Ordered), true
	case screens.ToggleWishStatusMsg:
		return a.toggleWishStatus(msg.Wish), true
	case screens.ShowToastMsg:
		return a.toast.Show("", msg.Text, "", components.ToastInfo), true
	case screens.BackToMyWishlistMsg:
		a.backToMyWishlist()
		return nil, true
	case screens.BackToMyProfileMsg:
		a.backToMyProfile()
		return nil, true
	case screens.ViewWishlistMsg:
		return a.viewWishlist(msg.User), true
	case screens.ViewProfileMsg:
		return a.viewProfile(msg.User), true
	case screens.SubscribeMsg:
		return a.subscribe(msg.Handle, false), true
	case screens.UnsubscribeMsg:
		return a.unsubscribe(msg.Handle), true
	case screens.UpdateProfileMsg:
		return a.updateProfile(msg.Patch, false), true
	case screens.SaveCustomUsernameMsg:
		return a.saveCustomUsername(msg.Username), true
	case screens.ShareProfileMsg:
		a.shareProfile()
		return nil, true
	case screens.SetLocaleMsg:
		a.setLocale(msg.Locale)
		return nil, true
	case screens.SetThemeMsg:
		a.setScheme(msg.Scheme)
		return nil, true
	case screens.SendTestNotificationMsg:
		return a.sendTestNotification(), true
	case screens.LoadNotificationsMsg:
		return a.loadNotifications(), true
	case screens.CommandExecuteMsg:
		a.palette.Close()
		return a.commands.Run(msg.ID, a), true
	case screens.CommandPaletteClosedMsg:
		a.palette.Close()
		return nil, true
	}
	return nil, false
}

// View отрисовывает приложение (Bubble Tea)
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var body string
	switch {
	case a.bootstrapping:
		body = a.theme.HintStyle.Padding(1, 2).Render(a.t("app.loading"))
	case !a.snapshot.Authenticated():
		body = lipgloss.NewStyle().Padding(1, 2).Render(
			a.theme.TitleStyle.Render(a.t("app.unauth_title")) + "\n\n" +
				a.theme.HintStyle.Render(a.t("app.unauth_body")),
		)
	default:
		body = a.renderBody()
	}

	parts := []string{}
	if a.snapshot.Authenticated() {
		parts = append(parts, renderHeader(a.theme, a.env.T, a.header(), a.config.Keybindings), a.renderTabBar())
	}
	parts = append(parts, body)
	if toast := a.toast.View(a.theme); toast != "" {
		parts = append(parts, toast)
	}
	parts = append(parts, a.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderBody() string {
	switch {
	case a.quitDialog.Visible():
		return a.quitDialog.View(a.theme)
	case a.deleteDialog.Visible():
		return a.deleteDialog.View(a.theme)
	case a.prompt.Visible():
		return a.prompt.View()
	case a.palette.Visible():
		return a.palette.View()
	case a.sheet.Visible():
		return a.sheet.View()
	}
	if screen := a.getCurrentScreen(); screen != nil {
		return screen.View()
	}
	return ""
}

func (a *App) renderTabBar() string {
	tabs := make([]string, 0, len(tabOrder))
	for i, tab := range tabOrder {
		label := fmt.Sprintf("%d %s", i+1, a.t(tab.labelKey()))
		if tab == a.tab {
			tabs = append(tabs, a.theme.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, a.theme.InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusBar рендерит статус-бар
func (a *App) renderStatusBar() string {
	status := a.t("app.status_ready")
	if a.creating || a.savingProfile {
		status = a.t("app.status_saving")
	}
	help := a.t("app.help")
	if screen := a.getCurrentScreen(); screen != nil && a.snapshot.Authenticated() {
		help = screen.ShortHelp()
	}
	return a.theme.StatusBar(strings.Join([]string{status, help}, " │ "))
}

// header шапка текущей вкладки
func (a *App) header() Header {
	return BuildHeader(a.env.T, HeaderInput{
		Tab:               a.tab,
		User:              a.snapshot.User,
		Wishlist:          a.wishlistView,
		Profile:           a.profileView,
		OwnWishlist:       a.snapshot.PrimaryWishlist(),
		FeedCount:         len(a.feed),
		SubscriptionCount: len(a.subscriptions),
	})
}

// getCurrentScreen возвращает текущий экран
func (a *App) getCurrentScreen() screens.Screen {
	return a.screens[a.tab]
}

// syncScreens переносит состояние приложения в экраны
func (a *App) syncScreens() {
	own := !a.wishlistView.External
	data := screens.WishlistData{Own: own, Handle: a.wishlistView.Handle}
	if own {
		if wl := a.snapshot.PrimaryWishlist(); wl != nil {
			data.Wishes = wl.Wishes
		}
	} else {
		data.Loading = a.wishlistView.Wishlist == nil
		if wl := a.wishlistView.Wishlist; wl != nil {
			data.Wishes = wl.Wishes
		}
	}
	a.wishlistScreen.SetData(data)

	a.feedScreen.SetItems(a.feed, a.feedLoading)
	a.subsScreen.SetData(a.subscriptions, a.wishlistView.Handle, a.subsLoading)
	a.profileScreen.SetData(screens.ProfileData{
		Own:      a.snapshot.User,
		External: a.profileView.External,
		Handle:   a.profileView.Handle,
		User:     a.profileView.User,
		Loading:  a.profileLoading,
		Saving:   a.savingProfile,
	})
	a.settingsScreen.SetData(screens.SettingsData{
		Locale:        a.env.T.Locale(),
		Scheme:        a.theme.Palette().Scheme,
		Notifications: a.notifications,
		Sending:       a.sendingTest,
	})
}

// t переводит ключ текущим языком
func (a *App) t(key string, vars ...string) string {
	return a.env.T.T(key, vars...)
}

// queuePopup получатель сообщений платформы. Вызывается из Update.
func (a *App) queuePopup(p platform.Popup) {
	a.popupCmds = append(a.popupCmds, a.toast.Show(p.Title, p.Message, p.Extra, components.ToastInfo))
}

func (a *App) drainPopups() tea.Cmd {
	if len(a.popupCmds) == 0 {
		return nil
	}
	cmds := a.popupCmds
	a.popupCmds = nil
	return tea.Batch(cmds...)
}

func (a *App) showError(key string) tea.Cmd {
	return a.toast.Show("", a.t(key), "", components.ToastError)
}

// applyPalette перекрашивает интерфейс
func (a *App) applyPalette(p platform.Palette) {
	a.theme.Apply(p)
	a.logger.WithField("scheme", p.Scheme).Debug("theme changed")
}

// setScheme переключение темы из настроек
func (a *App) setScheme(scheme platform.ColorScheme) {
	a.bridge.SetTheme(scheme, platform.ThemeParams{})
	a.applyPalette(a.bridge.Palette())
}

// setLocale смена языка интерфейса
func (a *App) setLocale(locale i18n.Locale) {
	a.env.T = i18n.New(locale)
	a.updateDialogTexts()
	a.logger.WithField("locale", locale).Info("locale changed")
}

func (a *App) updateDialogTexts() {
	a.quitDialog.ConfirmText = a.t("actions.quit")
	a.quitDialog.CancelText = a.t("actions.cancel")
	a.deleteDialog.ConfirmText = a.t("actions.delete")
	a.deleteDialog.CancelText = a.t("actions.cancel")
}
