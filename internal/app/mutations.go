package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/ui/components"
	"wishfox-tui/internal/wishlist"
)

// ===== Сессия и загрузка данных =====

// bootstrap рукопожатие с сервером
func (a *App) bootstrap() tea.Cmd {
	s := a.session
	ctx := a.ctx
	return func() tea.Msg {
		return sessionReadyMsg{err: s.Bootstrap(ctx)}
	}
}

func (a *App) handleSessionReady(msg sessionReadyMsg) tea.Cmd {
	a.bootstrapping = false
	a.snapshot = a.session.Snapshot()
	if msg.err != nil {
		a.logger.WithError(msg.err).Warn("session is not authenticated")
		return nil
	}
	a.feedLoading = true
	a.subsLoading = true
	return tea.Batch(a.loadInitial(), a.promptUsernameIfNeeded())
}

// loadInitial первая загрузка ленты и подписок
func (a *App) loadInitial() tea.Cmd {
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		msg := dataLoadedMsg{withSubscriptions: true}
		var g errgroup.Group
		g.Go(func() error {
			msg.feed, msg.feedErr = client.Feed(ctx)
			return msg.feedErr
		})
		g.Go(func() error {
			msg.subscriptions, msg.subscriptionsErr = client.Subscriptions(ctx)
			return msg.subscriptionsErr
		})
		msg.err = g.Wait()
		return msg
	}
}

// refreshAll обновляет сессию и ленту после изменения желаний
func (a *App) refreshAll() tea.Cmd {
	a.feedLoading = true
	s := a.session
	client := s.API()
	ctx := a.ctx
	return func() tea.Msg {
		msg := dataLoadedMsg{refreshed: true}
		var g errgroup.Group
		g.Go(func() error {
			if err := s.Refresh(ctx); err != nil {
				return fmt.Errorf("refresh session: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			msg.feed, msg.feedErr = client.Feed(ctx)
			return msg.feedErr
		})
		msg.err = g.Wait()
		return msg
	}
}

// refreshSession перечитывает только сессию
func (a *App) refreshSession() tea.Cmd {
	s := a.session
	ctx := a.ctx
	return func() tea.Msg {
		return sessionRefreshedMsg{err: s.Refresh(ctx)}
	}
}

func (a *App) handleSessionRefreshed(msg sessionRefreshedMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to refresh session")
	}
	a.snapshot = a.session.Snapshot()
	return a.promptUsernameIfNeeded()
}

func (a *App) handleDataLoaded(msg dataLoadedMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to load data")
	}
	var cmds []tea.Cmd
	if msg.refreshed {
		a.snapshot = a.session.Snapshot()
		cmds = append(cmds, a.promptUsernameIfNeeded())
	}
	a.feedLoading = false
	if msg.feedErr == nil {
		a.feed = msg.feed
	}
	if msg.withSubscriptions {
		a.subsLoading = false
		if msg.subscriptionsErr == nil {
			a.subscriptions = msg.subscriptions
			a.subscriptionsLoaded = true
			cmds = append(cmds, a.maybeAutoSubscribe())
		}
	}
	return tea.Batch(cmds...)
}

// loadSubscriptions перечитывает подписки
func (a *App) loadSubscriptions() tea.Cmd {
	a.subsLoading = true
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		subs, err := client.Subscriptions(ctx)
		return subscriptionsLoadedMsg{subscriptions: subs, err: err}
	}
}

func (a *App) handleSubscriptionsLoaded(msg subscriptionsLoadedMsg) tea.Cmd {
	a.subsLoading = false
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to load subscriptions")
		return nil
	}
	a.subscriptions = msg.subscriptions
	a.subscriptionsLoaded = true
	return a.maybeAutoSubscribe()
}

// refresh ручное обновление всего
func (a *App) refresh() tea.Cmd {
	if !a.snapshot.Authenticated() {
		return nil
	}
	cmds := []tea.Cmd{a.refreshAll(), a.loadSubscriptions()}
	if a.wishlistView.External {
		a.wishlistView.Wishlist = nil
		a.externalLoading = true
		cmds = append(cmds, a.fetchExternalWishlist(a.wishlistView.Handle))
	}
	return tea.Batch(cmds...)
}

// ===== Форма желания =====

// openCreateSheet форма нового желания, только в своем вишлисте
func (a *App) openCreateSheet() tea.Cmd {
	if a.wishlistView.External || !a.snapshot.Authenticated() {
		return nil
	}
	a.editTarget = nil
	a.preview.stop()
	return a.sheet.Open(wishlist.NewForm(), false)
}

// openEditSheet форма редактирования
func (a *App) openEditSheet(w api.Wish) tea.Cmd {
	if a.wishlistView.External {
		return nil
	}
	target := w
	a.editTarget = &target
	a.preview.stop()
	return a.sheet.Open(wishlist.FromWish(w), true)
}

// closeSheet закрывает форму, черновик и цель редактирования сбрасываются
func (a *App) closeSheet() {
	a.preview.stop()
	a.sheet.Close()
	a.editTarget = nil
}

// submitWish загружает картинку (если выбран файл) и создает или обновляет желание
func (a *App) submitWish() tea.Cmd {
	form := a.sheet.Form()
	if !form.CanSubmit(a.creating) {
		return nil
	}
	var editID, wishlistID int64
	if a.editTarget != nil {
		editID = a.editTarget.ID
	} else if wl := a.snapshot.PrimaryWishlist(); wl != nil {
		wishlistID = wl.ID
	} else {
		a.logger.Warn("no wishlist to add the wish to")
		return nil
	}

	a.creating = true
	client := a.session.API()
	ctx := a.ctx
	log := a.logger.WithFields(logrus.Fields{"wish_id": editID, "wishlist_id": wishlistID})
	return tea.Batch(a.sheet.SetSubmitting(true), func() tea.Msg {
		uploaded := ""
		if form.ImageFile != "" {
			url, err := client.UploadMedia(ctx, form.ImageFile)
			if err != nil {
				return wishSavedMsg{err: fmt.Errorf("upload image: %w", err)}
			}
			uploaded = url
			log.WithField("url", url).Debug("image uploaded")
		}
		var err error
		if editID != 0 {
			_, err = client.UpdateWish(ctx, editID, form.UpdatePayload(uploaded))
		} else {
			_, err = client.CreateWish(ctx, form.CreatePayload(wishlistID, uploaded))
		}
		return wishSavedMsg{err: err}
	})
}

func (a *App) handleWishSaved(msg wishSavedMsg) tea.Cmd {
	a.creating = false
	a.sheet.SetSubmitting(false)
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to save wish")
		return a.showError("app.error")
	}
	a.closeSheet()
	return a.refreshAll()
}

// requestDeleteWish спрашивает подтверждение удаления редактируемого желания
func (a *App) requestDeleteWish() {
	if a.editTarget == nil {
		return
	}
	target := *a.editTarget
	a.deleteDialog.Ask(
		a.t("actions.delete"),
		a.t("wishlist.delete_confirm", "title", target.Title),
		deleteConfirmedMsg{id: target.ID},
	)
}

// deleteWish удаляет желание, если оно все еще редактируется
func (a *App) deleteWish(id int64) tea.Cmd {
	if a.editTarget == nil || a.editTarget.ID != id {
		return nil
	}
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		return wishDeletedMsg{id: id, err: client.DeleteWish(ctx, id)}
	}
}

func (a *App) handleWishDeleted(msg wishDeletedMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).WithField("wish_id", msg.id).Error("failed to delete wish")
		return a.showError("app.error")
	}
	a.logger.WithField("wish_id", msg.id).Info("wish deleted")
	a.closeSheet()
	return a.refreshAll()
}

// reorderWishes оптимистично применяет порядок и отправляет его на сервер.
// Откат при ошибке не делается.
func (a *App) reorderWishes(ordered []api.Wish) tea.Cmd {
	if !wishlist.CanReorder(!a.wishlistView.External, a.wishlistScreen.Filters()) {
		return nil
	}
	wl := a.snapshot.PrimaryWishlist()
	if wl == nil {
		return nil
	}
	a.session.ApplyWishOrder(wl.ID, ordered)
	a.snapshot = a.session.Snapshot()

	items := wishlist.Positions(ordered)
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		return reorderDoneMsg{err: client.ReorderWishes(ctx, items)}
	}
}

func (a *App) handleReorderDone(msg reorderDoneMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to reorder wishes")
		return nil
	}
	return a.refreshSession()
}

// toggleWishStatus переводит желание в следующий статус
func (a *App) toggleWishStatus(w api.Wish) tea.Cmd {
	if a.wishlistView.External {
		return nil
	}
	next := wishlist.NextStatus(w.Status)
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		_, err := client.UpdateWish(ctx, w.ID, api.WishPatch{Status: &next})
		return statusToggledMsg{err: err}
	}
}

func (a *App) handleStatusToggled(msg statusToggledMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to change wish status")
		return a.showError("app.error")
	}
	return a.refreshAll()
}

// ===== Подписки =====

func (a *App) subscribe(handle string, auto bool) tea.Cmd {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return nil
	}
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		return subscribeDoneMsg{handle: handle, auto: auto, err: client.Subscribe(ctx, handle)}
	}
}

func (a *App) handleSubscribeDone(msg subscribeDoneMsg) tea.Cmd {
	log := a.logger.WithFields(logrus.Fields{"handle": msg.handle, "auto": msg.auto})
	if msg.err != nil {
		log.WithError(msg.err).Error("failed to subscribe")
		if msg.auto {
			return nil
		}
		if api.IsNotFound(msg.err) {
			return a.showError("app.user_missing")
		}
		return a.showError("app.error")
	}
	log.Info("subscribed")
	return a.loadSubscriptions()
}

func (a *App) unsubscribe(handle string) tea.Cmd {
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		return unsubscribeDoneMsg{handle: handle, err: client.Unsubscribe(ctx, handle)}
	}
}

func (a *App) handleUnsubscribeDone(msg unsubscribeDoneMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).WithField("handle", msg.handle).Error("failed to unsubscribe")
		return a.showError("app.error")
	}
	return a.loadSubscriptions()
}

// ===== Профиль =====

func (a *App) updateProfile(patch api.UserPatch, customUsername bool) tea.Cmd {
	if a.savingProfile {
		return nil
	}
	a.savingProfile = true
	s := a.session
	ctx := a.ctx
	return func() tea.Msg {
		if err := s.UpdateUser(ctx, patch); err != nil {
			return profileUpdatedMsg{customUsername: customUsername, err: err}
		}
		if customUsername {
			return profileUpdatedMsg{customUsername: true, err: s.Refresh(ctx)}
		}
		return profileUpdatedMsg{}
	}
}

// saveCustomUsername сохраняет имя из обязательного окна выбора
func (a *App) saveCustomUsername(username string) tea.Cmd {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil
	}
	a.prompt.SetSaving(true)
	return a.updateProfile(api.UserPatch{CustomUsername: &username}, true)
}

func (a *App) handleProfileUpdated(msg profileUpdatedMsg) tea.Cmd {
	a.savingProfile = false
	a.prompt.SetSaving(false)
	a.snapshot = a.session.Snapshot()
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to update profile")
		return a.showError("app.error")
	}
	if msg.customUsername && a.snapshot.User != nil && !a.snapshot.User.RequiresCustomUsername {
		a.prompt.Close()
	}
	return nil
}

// promptUsernameIfNeeded показывает окно выбора имени, если сервер его требует
func (a *App) promptUsernameIfNeeded() tea.Cmd {
	if u := a.snapshot.User; u != nil && u.RequiresCustomUsername {
		return a.prompt.Open()
	}
	a.prompt.Close()
	return nil
}

// shareProfile копирует deep link на свой вишлист
func (a *App) shareProfile() {
	u := a.snapshot.User
	if u == nil {
		return
	}
	if link := a.bridge.ShareDeepLink(api.Str(u.TgUsername)); link != "" {
		a.logger.WithField("link", link).Info("share link created")
	}
}

// ===== Уведомления =====

func (a *App) loadNotifications() tea.Cmd {
	if !a.snapshot.Authenticated() {
		return nil
	}
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		items, err := client.Notifications(ctx)
		return notificationsLoadedMsg{notifications: items, err: err}
	}
}

func (a *App) handleNotificationsLoaded(msg notificationsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		a.logger.WithError(msg.err).Warn("failed to load notifications")
		return nil
	}
	a.notifications = msg.notifications
	return nil
}

func (a *App) sendTestNotification() tea.Cmd {
	if a.sendingTest || !a.snapshot.Authenticated() {
		return nil
	}
	a.sendingTest = true
	client := a.session.API()
	ctx := a.ctx
	return func() tea.Msg {
		return testNotificationSentMsg{err: client.SendTestNotification(ctx)}
	}
}

func (a *App) handleTestNotificationSent(msg testNotificationSentMsg) tea.Cmd {
	a.sendingTest = false
	if msg.err != nil {
		a.logger.WithError(msg.err).Error("failed to send test notification")
		return a.showError("app.error")
	}
	return tea.Batch(
		a.toast.Show("", a.t("settings.test_sent"), "", components.ToastSuccess),
		a.loadNotifications(),
	)
}
