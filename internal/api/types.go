package api

import (
	"strconv"
	"time"
)

// Priority приоритет желания
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities возвращает приоритеты в порядке отображения
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// WishStatus статус желания
type WishStatus string

const (
	StatusPlanned WishStatus = "planned"
	StatusOrdered WishStatus = "ordered"
	StatusGifted  WishStatus = "gifted"
)

// Statuses возвращает статусы в порядке отображения
func Statuses() []WishStatus {
	return []WishStatus{StatusPlanned, StatusOrdered, StatusGifted}
}

// Visibility видимость вишлиста
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// ===== JSON контракты API =====

// User текущий пользователь (владелец сессии).
type User struct {
	ID                     int64   `json:"id"`
	DisplayName            string  `json:"display_name"`
	Username               string  `json:"username"`
	TgUsername             *string `json:"tg_username,omitempty"`
	CustomUsername         *string `json:"custom_username,omitempty"`
	AvatarURL              *string `json:"avatar_url,omitempty"`
	Bio                    *string `json:"bio,omitempty"`
	Locale                 *string `json:"locale,omitempty"`
	RequiresCustomUsername bool    `json:"requires_custom_username,omitempty"`
}

// PublicUser урезанная проекция User для чужих профилей.
type PublicUser struct {
	ID          int64   `json:"id"`
	DisplayName string  `json:"display_name"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// Wish одно желание в вишлисте.
type Wish struct {
	ID          int64      `json:"id"`
	WishlistID  int64      `json:"wishlist_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Price       *string    `json:"price,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Tags        []string   `json:"tags"`
	Priority    Priority   `json:"priority"`
	Status      WishStatus `json:"status"`
	Position    int        `json:"position"`
}

// Wishlist контейнер желаний.
type Wishlist struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Visibility Visibility `json:"visibility"`
	CoverURL   *string    `json:"cover_url,omitempty"`
	Wishes     []Wish     `json:"wishes"`
}

// Subscription ребро follower→target со снимком target.
type Subscription struct {
	ID           int64 `json:"id"`
	FollowerID   int64 `json:"follower_id"`
	TargetUserID int64 `json:"target_user_id"`
	Target       *User `json:"target,omitempty"`
}

// FeedAction тип события в ленте
type FeedAction string

const (
	FeedCreated FeedAction = "created"
	FeedUpdated FeedAction = "updated"
)

// FeedItem событие ленты.
type FeedItem struct {
	Actor     User       `json:"actor"`
	Wish      Wish       `json:"wish"`
	Action    FeedAction `json:"action"`
	CreatedAt time.Time  `json:"created_at"`
}

// LinkPreview метаданные ссылки, клиент их не сохраняет.
type LinkPreview struct {
	URL         string  `json:"url"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Notification уведомление пользователя.
type Notification struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	IsSent    bool           `json:"is_sent"`
	CreatedAt time.Time      `json:"created_at"`
	SentAt    *time.Time     `json:"sent_at,omitempty"`
}

// AuthResponse ответ на рукопожатие /auth/telegram.
type AuthResponse struct {
	User      User   `json:"user"`
	CSRFToken string `json:"csrf_token"`
}

// ReorderItem новая позиция одного желания.
type ReorderItem struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

// WishCreate тело POST /wishes.
type WishCreate struct {
	WishlistID  int64      `json:"wishlist_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Price       *string    `json:"price,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      WishStatus `json:"status"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Tags        []string   `json:"tags"`
}

// WishPatch тело PATCH /wishes/:id, nil-поля не отправляются.
type WishPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	URL         *string     `json:"url,omitempty"`
	Price       *string     `json:"price,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	Status      *WishStatus `json:"status,omitempty"`
	Tags        *[]string   `json:"tags,omitempty"`
}

// UserPatch тело PATCH /me.
type UserPatch struct {
	DisplayName    *string `json:"display_name,omitempty"`
	CustomUsername *string `json:"custom_username,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Locale         *string `json:"locale,omitempty"`
}

// Str разворачивает опциональную строку.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StrPtr возвращает nil для пустой строки.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ===== Handles =====

// ResolveHandle выбирает handle по приоритету:
// platform username > custom username > username > id > "".
func ResolveHandle(tgUsername, customUsername *string, username string, id int64) string {
	if h := Str(tgUsername); h != "" {
		return h
	}
	if h := Str(customUsername); h != "" {
		return h
	}
	if username != "" {
		return username
	}
	if id != 0 {
		return strconv.FormatInt(id, 10)
	}
	return ""
}

// Handle возвращает handle пользователя по общему приоритету.
func (u *User) Handle() string {
	if u == nil {
		return ""
	}
	return ResolveHandle(u.TgUsername, u.CustomUsername, u.Username, u.ID)
}

// DisplayHandle как Handle, но без числового fallback.
func (u *User) DisplayHandle() string {
	if u == nil {
		return ""
	}
	return ResolveHandle(u.TgUsername, u.CustomUsername, u.Username, 0)
}

// SelfHandles возвращает все непустые имена пользователя.
func (u *User) SelfHandles() []string {
	if u == nil {
		return nil
	}
	var out []string
	for _, h := range []string{Str(u.TgUsername), Str(u.CustomUsername), u.Username} {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// HasHandle проверяет совпадение с любым из имен пользователя.
func (u *User) HasHandle(handle string) bool {
	for _, h := range u.SelfHandles() {
		if h == handle {
			return true
		}
	}
	return false
}

// Public строит предварительный PublicUser из снимка User.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Username:    u.DisplayHandle(),
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
	}
}
