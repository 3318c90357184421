package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/ui/styles"
)

// ToastKind оформление тоста
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

const (
	defaultToastTTL = 4 * time.Second
	// тост с QR-кодом живет дольше, его надо успеть отсканировать
	extraToastTTL = 30 * time.Second
)

// ToastExpiredMsg истек срок показа тоста с номером Seq
type ToastExpiredMsg struct {
	Seq int
}

// Toast одно всплывающее сообщение внизу экрана. Новое сообщение заменяет старое.
type Toast struct {
	title string
	text  string
	extra string
	kind  ToastKind
	seq   int
}

// Show показывает сообщение и возвращает таймер его скрытия
func (t *Toast) Show(title, text, extra string, kind ToastKind) tea.Cmd {
	t.seq++
	t.title = title
	t.text = text
	t.extra = extra
	t.kind = kind

	ttl := defaultToastTTL
	if extra != "" {
		ttl = extraToastTTL
	}
	seq := t.seq
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Update скрывает тост, если пришел таймер текущего сообщения
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(ToastExpiredMsg); ok && m.Seq == t.seq {
		t.Dismiss()
	}
}

// Dismiss скрывает тост
func (t *Toast) Dismiss() {
	t.title, t.text, t.extra = "", "", ""
}

// Visible есть ли что показывать
func (t *Toast) Visible() bool {
	return t.text != "" || t.extra != ""
}

// Text текущий текст
func (t *Toast) Text() string {
	return t.text
}

// View рендерит тост
func (t *Toast) View(theme *styles.Theme) string {
	if !t.Visible() {
		return ""
	}
	style := theme.TextStyle
	switch t.kind {
	case ToastSuccess:
		style = theme.SuccessStyle
	case ToastError:
		style = theme.ErrorStyle
	}

	var parts []string
	if t.title != "" {
		parts = append(parts, theme.TitleStyle.Render(t.title))
	}
	if t.text != "" {
		parts = append(parts, style.Render(t.text))
	}
	if t.extra != "" {
		parts = append(parts, strings.TrimRight(t.extra, "\n"))
	}
	return theme.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
