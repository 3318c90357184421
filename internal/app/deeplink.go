package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wishfox-tui/internal/api"
)

// maybeAutoSubscribe подписывает на пользователя из параметра запуска.
// Срабатывает один раз за сессию, после загрузки пользователя и подписок.
func (a *App) maybeAutoSubscribe() tea.Cmd {
	user := a.snapshot.User
	if user == nil || !a.subscriptionsLoaded || a.deepLinkHandled {
		return nil
	}
	a.deepLinkHandled = true

	param := strings.TrimPrefix(strings.TrimSpace(a.bridge.StartParam()), "@")
	if param == "" {
		return nil
	}
	log := a.logger.WithField("start_param", param)
	if user.HasHandle(param) {
		log.Debug("deep link points to self")
		return nil
	}
	if subscribedTo(a.subscriptions, param) {
		log.Debug("already subscribed")
		return nil
	}
	log.Info("auto subscribe from deep link")
	return a.subscribe(param, true)
}

// subscribedTo есть ли подписка на пользователя с таким именем
func subscribedTo(subs []api.Subscription, handle string) bool {
	for _, sub := range subs {
		if sub.Target != nil && sub.Target.HasHandle(handle) {
			return true
		}
	}
	return false
}
