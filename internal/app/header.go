package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/ui/styles"
)

// HeaderAction кнопка в шапке
type HeaderAction int

const (
	HeaderActionNone HeaderAction = iota
	HeaderActionAdd
	HeaderActionBackToMine
)

// Header модель шапки текущей вкладки
type Header struct {
	Badge    string
	Title    string
	Subtitle string
	Metrics  []string
	Action   HeaderAction
}

// HeaderInput состояние, от которого зависит шапка
type HeaderInput struct {
	Tab               Tab
	User              *api.User
	Wishlist          WishlistView
	Profile           ProfileView
	OwnWishlist       *api.Wishlist
	FeedCount         int
	SubscriptionCount int
}

// BuildHeader собирает шапку для вкладки
func BuildHeader(t *i18n.Translator, in HeaderInput) Header {
	switch in.Tab {
	case TabFeed:
		h := Header{
			Badge:    t.T("tabs.feed"),
			Title:    t.T("header.feed_title"),
			Subtitle: t.T("header.feed_subtitle"),
		}
		if in.FeedCount > 0 {
			h.Metrics = []string{t.Count("feed.items_count", in.FeedCount)}
		}
		return h
	case TabSubscriptions:
		return Header{
			Badge:    t.T("tabs.subscriptions"),
			Title:    t.T("header.subscriptions_title"),
			Subtitle: t.T("header.subscriptions_subtitle"),
			Metrics:  []string{t.Count("subscriptions.count", in.SubscriptionCount)},
		}
	case TabProfile:
		h := Header{
			Badge:    t.T("tabs.profile"),
			Title:    profileName(in),
			Subtitle: t.T("header.profile_self"),
		}
		if in.Profile.External {
			h.Subtitle = t.T("header.profile_external", "handle", in.Profile.Handle)
		}
		if h.Title == "" {
			h.Title = t.T("header.profile_title")
		}
		return h
	case TabSettings:
		return Header{
			Badge:    t.T("tabs.settings"),
			Title:    t.T("header.settings_title"),
			Subtitle: t.T("header.settings_subtitle"),
		}
	}
	return buildWishlistHeader(t, in)
}

func buildWishlistHeader(t *i18n.Translator, in HeaderInput) Header {
	h := Header{Badge: t.T("app.title")}

	var wishes []api.Wish
	handle := ""
	if in.Wishlist.External {
		handle = in.Wishlist.Handle
		if in.Wishlist.Wishlist != nil {
			wishes = in.Wishlist.Wishlist.Wishes
			h.Subtitle = in.Wishlist.Wishlist.Title
		}
		h.Action = HeaderActionBackToMine
	} else {
		handle = in.User.DisplayHandle()
		if in.OwnWishlist != nil {
			wishes = in.OwnWishlist.Wishes
			h.Subtitle = in.OwnWishlist.Title
		}
		h.Action = HeaderActionAdd
	}

	if handle != "" {
		h.Title = t.T("header.title_with_handle", "handle", handle)
	} else {
		h.Title = t.T("header.title_default")
	}

	h.Metrics = []string{t.Count("header.total_wishes", len(wishes))}
	if !in.Wishlist.External {
		h.Metrics = append(h.Metrics, t.Count("header.following", in.SubscriptionCount))
	}
	return h
}

// profileName имя в шапке профиля: чужой профиль, затем свой
func profileName(in HeaderInput) string {
	if in.Profile.External {
		if u := in.Profile.User; u != nil {
			if u.DisplayName != "" {
				return u.DisplayName
			}
			if u.Username != "" {
				return "@" + u.Username
			}
		}
		return "@" + in.Profile.Handle
	}
	if in.User == nil {
		return ""
	}
	if in.User.DisplayName != "" {
		return in.User.DisplayName
	}
	if h := in.User.DisplayHandle(); h != "" {
		return "@" + h
	}
	return ""
}

// renderHeader рисует шапку
func renderHeader(theme *styles.Theme, t *i18n.Translator, h Header, keys map[string]string) string {
	top := theme.BadgeStyle.Render(h.Badge) + " " + theme.TitleStyle.Render(h.Title)
	switch h.Action {
	case HeaderActionAdd:
		top += "  " + theme.HintStyle.Render("["+platform.DisplayKey(keys["add_wish"])+"] "+t.T("actions.add"))
	case HeaderActionBackToMine:
		top += "  " + theme.HintStyle.Render("["+platform.DisplayKey(keys["back"])+"] "+t.T("actions.back_to_mine"))
	}
	lines := []string{top}
	var sub []string
	if h.Subtitle != "" {
		sub = append(sub, theme.SubtitleStyle.Render(h.Subtitle))
	}
	for _, m := range h.Metrics {
		sub = append(sub, theme.ChipStyle.Render(m))
	}
	if len(sub) > 0 {
		lines = append(lines, strings.Join(sub, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
