package screens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/ui/styles"
)

// truncate обрезает строку по ширине в ячейках терминала
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// wrap переносит текст по словам
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// avatarInitial первая буква имени, "?" если имени нет
func avatarInitial(name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "@")
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || r == 0 {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// avatar круглая "аватарка" из инициала
func avatar(theme *styles.Theme, name string) string {
	return theme.BadgeStyle.Render(avatarInitial(name))
}

// userName отображаемое имя с запасным вариантом @handle
func userName(u *api.User) string {
	if u == nil {
		return ""
	}
	if strings.TrimSpace(u.DisplayName) != "" {
		return u.DisplayName
	}
	if h := u.DisplayHandle(); h != "" {
		return "@" + h
	}
	return ""
}

// priorityChip бейдж приоритета
func priorityChip(env *Env, p api.Priority) string {
	return env.Theme.ChipStyle.
		Foreground(env.Theme.PriorityColor(string(p))).
		Render(env.T.T("wishlist.priority." + string(p)))
}

// statusChip бейдж статуса
func statusChip(env *Env, s api.WishStatus) string {
	return env.Theme.ChipStyle.Render(env.T.T("wishlist.status." + string(s)))
}

// wishCard карточка желания
func wishCard(env *Env, w api.Wish, selected bool, width int) string {
	theme := env.Theme
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	title := theme.TitleStyle.Render(truncate(w.Title, inner))
	meta := []string{priorityChip(env, w.Priority), statusChip(env, w.Status)}
	if price := api.Str(w.Price); price != "" {
		meta = append(meta, theme.HighlightStyle.Render(env.T.FormatPrice(price)))
	}
	lines := []string{title, strings.Join(meta, " ")}

	if desc := api.Str(w.Description); desc != "" {
		lines = append(lines, theme.TextStyle.Render(wrap(desc, inner)))
	}
	if link := api.Str(w.URL); link != "" {
		lines = append(lines, theme.LinkStyle.Render(truncate(link, inner)))
	}
	if len(w.Tags) > 0 {
		lines = append(lines, theme.HintStyle.Render(truncate("#"+strings.Join(w.Tags, " #"), inner)))
	}

	style := theme.CardStyle
	if selected {
		style = theme.SelectedCard
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// emptyState заглушка пустого списка
func emptyState(env *Env, titleKey, bodyKey string, width int) string {
	title := env.Theme.TitleStyle.Render(env.T.T(titleKey))
	body := env.Theme.HintStyle.Render(wrap(env.T.T(bodyKey), width-4))
	return lipgloss.NewStyle().Padding(1, 2).Render(title + "\n" + body)
}

// loadingState заглушка загрузки
func loadingState(env *Env, text string) string {
	return lipgloss.NewStyle().Padding(1, 2).Render(env.Theme.HintStyle.Render(text))
}

// visibleRange окно списка вокруг курсора
func visibleRange(total, cursor, visible int) (int, int) {
	if visible <= 0 || total <= visible {
		return 0, total
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}

// clampCursor держит курсор в пределах списка
func clampCursor(cursor, total int) int {
	if total == 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// localeLabel название языка в переключателе
func localeLabel(l i18n.Locale) string {
	switch l {
	case i18n.RU:
		return "Русский"
	default:
		return "English"
	}
}
