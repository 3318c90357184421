package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"wishfox-tui/internal/api"
)

// switchTab меняет вкладку. Уход с вишлиста закрывает чужой вишлист,
// уход с профиля закрывает чужой профиль; чужие оверлеи других вкладок не трогаются.
func (a *App) switchTab(tab Tab) tea.Cmd {
	if tab == a.tab {
		return nil
	}
	var cmds []tea.Cmd
	if current := a.getCurrentScreen(); current != nil {
		cmds = append(cmds, current.OnExit())
	}

	switch a.tab {
	case TabWishlist:
		a.backToMyWishlist()
	case TabProfile:
		a.backToMyProfile()
	}

	a.logger.WithField("tab", tab.String()).Debug("switch tab")
	a.tab = tab
	if next := a.getCurrentScreen(); next != nil {
		cmds = append(cmds, next.OnEnter())
	}
	return tea.Batch(cmds...)
}

// backToMyWishlist закрывает чужой вишлист и сбрасывает фильтры
func (a *App) backToMyWishlist() {
	a.wishlistView = WishlistView{}
	a.externalLoading = false
	a.wishlistScreen.ResetFilters()
}

// backToMyProfile закрывает чужой профиль
func (a *App) backToMyProfile() {
	a.profileView = ProfileView{}
	a.profileLoading = false
}

// viewWishlist открывает вишлист пользователя. Без handle показывает
// сообщение платформы и ничего не меняет.
func (a *App) viewWishlist(target api.User) tea.Cmd {
	handle := target.Handle()
	if handle == "" {
		a.bridge.Alert(a.t("subscriptions.handle_missing"))
		return nil
	}

	a.closeSheet()
	a.wishlistScreen.ResetFilters()
	var cmds []tea.Cmd
	if a.tab != TabWishlist {
		cmds = append(cmds, a.switchTab(TabWishlist))
	}
	a.wishlistView = externalWishlist(handle, target.Public())
	a.externalLoading = true
	a.logger.WithField("handle", handle).Info("open external wishlist")

	cmds = append(cmds, a.fetchExternalWishlist(handle))
	return tea.Batch(cmds...)
}

// fetchExternalWishlist грузит вишлист и профиль владельца параллельно.
// Ошибка вишлиста отменяет запрос профиля, ошибка профиля не фатальна.
func (a *App) fetchExternalWishlist(handle string) tea.Cmd {
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		msg := externalWishlistLoadedMsg{handle: handle}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			msg.wishlist, msg.wishlistErr = client.UserWishlist(gctx, handle)
			return msg.wishlistErr
		})
		g.Go(func() error {
			msg.owner, msg.ownerErr = client.PublicUser(gctx, handle)
			return nil
		})
		_ = g.Wait()
		return msg
	}
}

func (a *App) handleExternalWishlistLoaded(msg externalWishlistLoadedMsg) tea.Cmd {
	log := a.logger.WithField("handle", msg.handle)
	if !a.wishlistView.Showing(msg.handle) {
		log.Debug("stale external wishlist dropped")
		return nil
	}
	a.externalLoading = false

	if msg.wishlistErr != nil {
		log.WithError(msg.wishlistErr).Error("failed to load user wishlist")
		a.backToMyWishlist()
		if api.IsNotFound(msg.wishlistErr) {
			return a.showError("app.user_missing")
		}
		return a.showError("app.load_failed")
	}

	if msg.ownerErr != nil {
		if !errors.Is(msg.ownerErr, context.Canceled) {
			log.WithError(msg.ownerErr).Warn("failed to load user profile")
		}
	} else if msg.owner != nil {
		a.wishlistView.Owner = msg.owner
		if a.profileView.Showing(msg.handle) {
			a.profileView.User = msg.owner
		}
	}
	a.wishlistView.Wishlist = msg.wishlist
	return nil
}

// viewProfile открывает профиль пользователя
func (a *App) viewProfile(target api.User) tea.Cmd {
	handle := target.Handle()
	if handle == "" {
		a.bridge.Alert(a.t("profile.handle_missing"))
		return nil
	}

	a.backToMyWishlist()
	a.closeSheet()
	var cmds []tea.Cmd
	if a.tab != TabProfile {
		cmds = append(cmds, a.switchTab(TabProfile))
	}
	a.profileView = externalProfile(handle, nil)
	a.profileLoading = true
	a.logger.WithField("handle", handle).Info("open external profile")

	client := a.session.API()
	ctx := a.ctx
	provisional := target.Public()
	cmds = append(cmds, func() tea.Msg {
		user, err := client.PublicUser(ctx, handle)
		if err != nil {
			return externalProfileLoadedMsg{handle: handle, user: provisional, err: err}
		}
		return externalProfileLoadedMsg{handle: handle, user: user}
	})
	return tea.Batch(cmds...)
}

func (a *App) handleExternalProfileLoaded(msg externalProfileLoadedMsg) tea.Cmd {
	log := a.logger.WithField("handle", msg.handle)
	if !a.profileView.Showing(msg.handle) {
		log.Debug("stale external profile dropped")
		return nil
	}
	a.profileLoading = false
	if msg.err != nil {
		log.WithError(msg.err).Error("failed to load profile")
	}
	a.profileView.User = msg.user
	return nil
}
