package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AuthTelegram выполняет рукопожатие по init data платформы.
func (c *Client) AuthTelegram(ctx context.Context, initData string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"init_data": initData}
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/telegram", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me возвращает текущего пользователя
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe частично обновляет профиль
func (c *Client) UpdateMe(ctx context.Context, patch UserPatch) (*User, error) {
	var user User
	if err := c.sendJSON(ctx, http.MethodPatch, "/me", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// MyWishlists возвращает вишлисты владельца сессии
func (c *Client) MyWishlists(ctx context.Context) ([]Wishlist, error) {
	var lists []Wishlist
	if err := c.getJSON(ctx, "/wishlists/mine", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateWish создает желание
func (c *Client) CreateWish(ctx context.Context, payload WishCreate) (*Wish, error) {
	if payload.Tags == nil {
		payload.Tags = []string{}
	}
	var wish Wish
	if err := c.sendJSON(ctx, http.MethodPost, "/wishes", payload, &wish); err != nil {
		return nil, err
	}
	return &wish, nil
}

// UpdateWish частично обновляет желание
func (c *Client) UpdateWish(ctx context.Context, id int64, patch WishPatch) (*Wish, error) {
	var wish Wish
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/wishes/%d", id), patch, &wish); err != nil {
		return nil, err
	}
	return &wish, nil
}

// DeleteWish удаляет желание
func (c *Client) DeleteWish(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/wishes/%d", id), nil, nil)
}

// ReorderWishes отправляет полный новый порядок
func (c *Client) ReorderWishes(ctx context.Context, items []ReorderItem) error {
	if items == nil {
		items = []ReorderItem{}
	}
	return c.sendJSON(ctx, http.MethodPost, "/wishes/reorder", items, nil)
}

// UploadMedia загружает локальный файл и возвращает его URL
func (c *Client) UploadMedia(ctx context.Context, filePath string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.upload(ctx, "/media/upload", "file", filePath, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// Feed возвращает ленту подписок
func (c *Client) Feed(ctx context.Context) ([]FeedItem, error) {
	var items []FeedItem
	if err := c.getJSON(ctx, "/feed", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Subscriptions возвращает подписки текущего пользователя
func (c *Client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.getJSON(ctx, "/subscriptions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Subscribe подписывается на пользователя по handle
func (c *Client) Subscribe(ctx context.Context, handle string) error {
	return c.sendJSON(ctx, http.MethodPost, "/subscriptions/"+url.PathEscape(handle), nil, nil)
}

// Unsubscribe отписывается от пользователя
func (c *Client) Unsubscribe(ctx context.Context, handle string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/subscriptions/"+url.PathEscape(handle), nil, nil)
}

// PublicUser возвращает публичный профиль
func (c *Client) PublicUser(ctx context.Context, handle string) (*PublicUser, error) {
	var user PublicUser
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(handle), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWishlist возвращает вишлист другого пользователя
func (c *Client) UserWishlist(ctx context.Context, handle string) (*Wishlist, error) {
	var list Wishlist
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(handle)+"/wishlist", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// LinkPreview запрашивает метаданные ссылки. Запрос отменяется через ctx.
func (c *Client) LinkPreview(ctx context.Context, target string) (*LinkPreview, error) {
	var preview LinkPreview
	query := url.Values{"url": []string{target}}
	if err := c.getJSON(ctx, "/links/preview", query, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// Notifications возвращает уведомления пользователя
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var items []Notification
	if err := c.getJSON(ctx, "/notifications", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SendTestNotification просит сервер поставить тестовое уведомление в очередь
func (c *Client) SendTestNotification(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/notifications/test", nil, nil)
}
