package screens

import (
	"wishfox-tui/internal/api"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
)

// Экраны не меняют состояние приложения напрямую: они отправляют
// намерения, а App применяет их в своем Update.

// OpenCreateSheetMsg открыть форму нового желания
type OpenCreateSheetMsg struct{}

// EditWishMsg открыть форму редактирования
type EditWishMsg struct {
	Wish api.Wish
}

// ReorderWishesMsg новый полный порядок желаний своего вишлиста
type ReorderWishesMsg struct {
	Ordered []api.Wish
}

// ToggleWishStatusMsg перевести желание в следующий статус
type ToggleWishStatusMsg struct {
	Wish api.Wish
}

// ShowToastMsg показать подсказку без обращения к платформе
type ShowToastMsg struct {
	Text string
}

// BackToMyWishlistMsg закрыть чужой вишлист
type BackToMyWishlistMsg struct{}

// BackToMyProfileMsg закрыть чужой профиль
type BackToMyProfileMsg struct{}

// ViewWishlistMsg открыть вишлист пользователя
type ViewWishlistMsg struct {
	User api.User
}

// ViewProfileMsg открыть профиль пользователя
type ViewProfileMsg struct {
	User api.User
}

// SubscribeMsg подписаться по введенному имени
type SubscribeMsg struct {
	Handle string
}

// UnsubscribeMsg отписаться
type UnsubscribeMsg struct {
	Handle string
}

// UpdateProfileMsg сохранить свой профиль
type UpdateProfileMsg struct {
	Patch api.UserPatch
}

// ShareProfileMsg поделиться ссылкой на свой вишлист
type ShareProfileMsg struct{}

// SetLocaleMsg сменить язык интерфейса
type SetLocaleMsg struct {
	Locale i18n.Locale
}

// SetThemeMsg сменить цветовую схему
type SetThemeMsg struct {
	Scheme platform.ColorScheme
}

// SendTestNotificationMsg отправить тестовое уведомление
type SendTestNotificationMsg struct{}

// LoadNotificationsMsg перечитать историю уведомлений
type LoadNotificationsMsg struct{}

// SubmitWishMsg сохранить форму желания
type SubmitWishMsg struct{}

// CloseSheetMsg закрыть форму желания
type CloseSheetMsg struct{}

// RequestDeleteWishMsg удалить редактируемое желание (после подтверждения)
type RequestDeleteWishMsg struct{}

// SaveCustomUsernameMsg сохранить выбранное имя пользователя
type SaveCustomUsernameMsg struct {
	Username string
}

// UserFromPublic собирает User из публичной проекции для навигации
func UserFromPublic(p *api.PublicUser) api.User {
	if p == nil {
		return api.User{}
	}
	return api.User{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Username:    p.Username,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
	}
}
