package app

import (
	"wishfox-tui/internal/api"
	"wishfox-tui/internal/platform"
)

// ThemeChangedMsg платформа сменила тему. main пересылает сюда событие themeChanged.
type ThemeChangedMsg struct {
	Palette platform.Palette
}

// PopupMsg всплывающее сообщение платформы
type PopupMsg struct {
	Popup platform.Popup
}

// sessionReadyMsg рукопожатие завершено
type sessionReadyMsg struct {
	err error
}

// dataLoadedMsg результат параллельной загрузки. withSubscriptions
// означает, что подписки тоже запрашивались.
type dataLoadedMsg struct {
	feed              []api.FeedItem
	feedErr           error
	subscriptions     []api.Subscription
	subscriptionsErr  error
	withSubscriptions bool
	refreshed         bool
	err               error
}

// subscriptionsLoadedMsg подписки перечитаны
type subscriptionsLoadedMsg struct {
	subscriptions []api.Subscription
	err           error
}

// externalWishlistLoadedMsg результат загрузки чужого вишлиста
type externalWishlistLoadedMsg struct {
	handle      string
	wishlist    *api.Wishlist
	wishlistErr error
	owner       *api.PublicUser
	ownerErr    error
}

// externalProfileLoadedMsg результат загрузки чужого профиля.
// При ошибке user содержит предварительный снимок.
type externalProfileLoadedMsg struct {
	handle string
	user   *api.PublicUser
	err    error
}

// wishSavedMsg создание или редактирование завершено
type wishSavedMsg struct {
	err error
}

// wishDeletedMsg удаление завершено
type wishDeletedMsg struct {
	id  int64
	err error
}

// deleteConfirmedMsg пользователь подтвердил удаление
type deleteConfirmedMsg struct {
	id int64
}

// reorderDoneMsg новый порядок отправлен
type reorderDoneMsg struct {
	err error
}

// statusToggledMsg статус желания изменен
type statusToggledMsg struct {
	err error
}

// subscribeDoneMsg подписка завершена. auto: подписка по deep link.
type subscribeDoneMsg struct {
	handle string
	auto   bool
	err    error
}

// unsubscribeDoneMsg отписка завершена
type unsubscribeDoneMsg struct {
	handle string
	err    error
}

// profileUpdatedMsg профиль сохранен
type profileUpdatedMsg struct {
	customUsername bool
	err            error
}

// notificationsLoadedMsg история уведомлений
type notificationsLoadedMsg struct {
	notifications []api.Notification
	err           error
}

// testNotificationSentMsg тестовое уведомление поставлено в очередь
type testNotificationSentMsg struct {
	err error
}

// quitConfirmedMsg пользователь подтвердил выход
type quitConfirmedMsg struct{}

// sessionRefreshedMsg сессия перечитана без ленты
type sessionRefreshedMsg struct {
	err error
}
