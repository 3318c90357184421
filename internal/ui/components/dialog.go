package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/ui/styles"
)

// ConfirmDialog окно подтверждения поверх экрана. Пока оно открыто,
// все нажатия идут сюда; подтверждение отдает сохраненное сообщение.
type ConfirmDialog struct {
	Title       string
	Description string
	ConfirmText string
	CancelText  string

	visible   bool
	onConfirm tea.Msg
}

// NewConfirmDialog создает диалог с дефолтными кнопками.
func NewConfirmDialog(title, description string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:       title,
		Description: description,
		ConfirmText: "Yes",
		CancelText:  "No",
	}
}

// Ask открывает диалог. onConfirm вернется из Update после "да".
func (d *ConfirmDialog) Ask(title, description string, onConfirm tea.Msg) {
	d.Title = title
	d.Description = description
	d.onConfirm = onConfirm
	d.visible = true
}

func (d *ConfirmDialog) Visible() bool {
	return d.visible
}

// Dismiss закрывает без ответа
func (d *ConfirmDialog) Dismiss() {
	d.visible = false
	d.onConfirm = nil
}

// Update: y/enter подтверждает, n/esc отменяет, остальное игнорируется.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !d.visible || !ok {
		return nil
	}
	switch platform.CanonicalKey(key.String()) {
	case "y", "enter":
		confirmed := d.onConfirm
		d.Dismiss()
		if confirmed == nil {
			return nil
		}
		return func() tea.Msg { return confirmed }
	case "n", "esc":
		d.Dismiss()
	}
	return nil
}

func (d *ConfirmDialog) View(theme *styles.Theme) string {
	if !d.visible {
		return ""
	}
	hint := theme.HintStyle.Render(d.ConfirmText + ": y/Enter  " + d.CancelText + ": n/Esc")
	return theme.SheetStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render(d.Title),
		"",
		theme.TextStyle.Render(d.Description),
		"",
		hint,
	))
}
