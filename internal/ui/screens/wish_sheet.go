package screens

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/wishlist"
)

type sheetField int

const (
	fieldTitle sheetField = iota
	fieldDescription
	fieldURL
	fieldPrice
	fieldTags
	fieldPriority
	fieldStatus
	fieldImage
	fieldCount
)

var sheetLabels = [fieldCount]string{
	"wishlist.form.title",
	"wishlist.form.description",
	"wishlist.form.url",
	"wishlist.form.price",
	"wishlist.form.tags",
	"wishlist.form.priority",
	"wishlist.form.status",
	"wishlist.form.image",
}

// WishSheet модальная форма создания и редактирования желания.
// Источник правды черновик wishlist.Form, поля ввода синхронизируются с ним.
type WishSheet struct {
	env     *Env
	width   int
	visible bool
	editing bool

	form           wishlist.Form
	focus          sheetField
	inputs         map[sheetField]*textinput.Model
	description    textarea.Model
	spinner        spinner.Model
	submitting     bool
	previewLoading bool
}

// NewWishSheet создает форму
func NewWishSheet(env *Env) *WishSheet {
	ws := &WishSheet{
		env:     env,
		width:   80,
		form:    wishlist.NewForm(),
		inputs:  make(map[sheetField]*textinput.Model),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, f := range []sheetField{fieldTitle, fieldURL, fieldPrice, fieldTags, fieldImage} {
		ti := textinput.New()
		ti.CharLimit = 512
		ws.inputs[f] = &ti
	}
	ws.inputs[fieldTitle].CharLimit = 200
	ws.inputs[fieldPrice].CharLimit = 32

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.CharLimit = 2000
	ws.description = ta
	return ws
}

// Open показывает форму с черновиком. editing включает удаление.
func (ws *WishSheet) Open(form wishlist.Form, editing bool) tea.Cmd {
	ws.visible = true
	ws.editing = editing
	ws.submitting = false
	ws.previewLoading = false
	ws.setForm(form)
	ws.focus = fieldTitle
	return ws.focusField()
}

// Close прячет форму и сбрасывает черновик
func (ws *WishSheet) Close() {
	ws.visible = false
	ws.editing = false
	ws.submitting = false
	ws.previewLoading = false
	ws.setForm(wishlist.NewForm())
	ws.blurAll()
}

// Visible открыта ли форма
func (ws *WishSheet) Visible() bool {
	return ws.visible
}

// Editing форма редактирует существующее желание
func (ws *WishSheet) Editing() bool {
	return ws.editing
}

// Form текущий черновик
func (ws *WishSheet) Form() wishlist.Form {
	return ws.form
}

// SetSubmitting помечает отправку в полете
func (ws *WishSheet) SetSubmitting(v bool) tea.Cmd {
	ws.submitting = v
	if v {
		return ws.spinner.Tick
	}
	return nil
}

// SetPreviewLoading помечает запрос превью ссылки
func (ws *WishSheet) SetPreviewLoading(v bool) tea.Cmd {
	ws.previewLoading = v
	if v {
		return ws.spinner.Tick
	}
	return nil
}

// ApplyPreview дополняет черновик превью и обновляет поля ввода
func (ws *WishSheet) ApplyPreview(target string, p *api.LinkPreview) bool {
	if !ws.form.ApplyPreview(target, p) {
		return false
	}
	ws.syncInputs()
	return true
}

// MarkPreviewAttempted запоминает ссылку после неудачного превью
func (ws *WishSheet) MarkPreviewAttempted(target string) bool {
	return ws.form.MarkPreviewAttempted(target)
}

// SetWidth ширина формы
func (ws *WishSheet) SetWidth(width int) {
	ws.width = width
	for _, in := range ws.inputs {
		in.Width = width - 12
	}
	ws.description.SetWidth(width - 10)
}

func (ws *WishSheet) setForm(form wishlist.Form) {
	ws.form = form
	ws.syncInputs()
}

// syncInputs переносит черновик в поля ввода
func (ws *WishSheet) syncInputs() {
	ws.inputs[fieldTitle].SetValue(ws.form.Title)
	ws.inputs[fieldURL].SetValue(ws.form.URL)
	ws.inputs[fieldPrice].SetValue(ws.form.Price)
	ws.inputs[fieldTags].SetValue(ws.form.Tags)
	ws.inputs[fieldImage].SetValue(ws.form.ImageFile)
	ws.description.SetValue(ws.form.Description)
}

// syncField переносит значение поля в черновик
func (ws *WishSheet) syncField(f sheetField) {
	switch f {
	case fieldTitle:
		ws.form.Title = ws.inputs[f].Value()
	case fieldDescription:
		ws.form.Description = ws.description.Value()
	case fieldURL:
		ws.form.SetURL(ws.inputs[f].Value())
	case fieldPrice:
		ws.form.Price = ws.inputs[f].Value()
	case fieldTags:
		ws.form.Tags = ws.inputs[f].Value()
	case fieldImage:
		ws.form.AttachImage(ws.inputs[f].Value())
	}
}

func (ws *WishSheet) blurAll() {
	for _, in := range ws.inputs {
		in.Blur()
	}
	ws.description.Blur()
}

func (ws *WishSheet) focusField() tea.Cmd {
	ws.blurAll()
	if ws.focus == fieldDescription {
		return ws.description.Focus()
	}
	if in, ok := ws.inputs[ws.focus]; ok {
		return in.Focus()
	}
	return nil
}

// Update обрабатывает ввод, пока форма открыта
func (ws *WishSheet) Update(msg tea.Msg) tea.Cmd {
	if !ws.visible {
		return nil
	}
	switch m := msg.(type) {
	case spinner.TickMsg:
		if !ws.submitting && !ws.previewLoading {
			return nil
		}
		var cmd tea.Cmd
		ws.spinner, cmd = ws.spinner.Update(m)
		return cmd
	case tea.KeyMsg:
		return ws.handleKey(m)
	}
	return nil
}

func (ws *WishSheet) handleKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "esc":
		return emit(CloseSheetMsg{})
	case "ctrl+s":
		if !ws.form.CanSubmit(ws.submitting) {
			return nil
		}
		return emit(SubmitWishMsg{})
	case "ctrl+d":
		if ws.editing && !ws.submitting {
			return emit(RequestDeleteWishMsg{})
		}
		return nil
	case "tab", "down":
		ws.focus = (ws.focus + 1) % fieldCount
		return ws.focusField()
	case "shift+tab", "up":
		ws.focus = (ws.focus + fieldCount - 1) % fieldCount
		return ws.focusField()
	}

	switch ws.focus {
	case fieldPriority:
		switch m.String() {
		case "left", "h":
			ws.form.Priority = wishlist.PrevPriority(ws.form.Priority)
		case "right", "l", " ", "space", "enter":
			ws.form.Priority = wishlist.NextPriority(ws.form.Priority)
		}
		return nil
	case fieldStatus:
		switch m.String() {
		case "left", "h":
			ws.form.Status = wishlist.PrevStatus(ws.form.Status)
		case "right", "l", " ", "space", "enter":
			ws.form.Status = wishlist.NextStatus(ws.form.Status)
		}
		return nil
	case fieldDescription:
		var cmd tea.Cmd
		ws.description, cmd = ws.description.Update(m)
		ws.syncField(fieldDescription)
		return cmd
	}

	in, ok := ws.inputs[ws.focus]
	if !ok {
		return nil
	}
	if m.String() == "enter" {
		ws.focus = (ws.focus + 1) % fieldCount
		return ws.focusField()
	}
	updated, cmd := in.Update(m)
	*in = updated
	ws.syncField(ws.focus)
	return cmd
}

// View рендерит форму
func (ws *WishSheet) View() string {
	if !ws.visible {
		return ""
	}
	theme := ws.env.Theme
	t := ws.env.T

	titleKey := "wishlist.form.create_title"
	if ws.editing {
		titleKey = "wishlist.form.edit_title"
	}
	lines := []string{theme.TitleStyle.Render(t.T(titleKey)), ""}

	for f := sheetField(0); f < fieldCount; f++ {
		label := theme.HintStyle
		if f == ws.focus {
			label = theme.HighlightStyle
		}
		var value string
		switch f {
		case fieldDescription:
			value = ws.description.View()
		case fieldPriority:
			value = "‹ " + priorityChip(ws.env, ws.form.Priority) + " ›"
		case fieldStatus:
			value = "‹ " + statusChip(ws.env, ws.form.Status) + " ›"
		default:
			value = ws.inputs[f].View()
		}
		lines = append(lines, label.Render(t.T(sheetLabels[f])), value)
	}

	if img := ws.form.ImagePreview; img != "" {
		lines = append(lines, theme.LinkStyle.Render(truncate(img, ws.width-10)))
	}
	if ws.previewLoading {
		lines = append(lines, ws.spinner.View()+" "+theme.HintStyle.Render(t.T("wishlist.form.preview")))
	}

	hint := t.T("wishlist.form.submit_hint")
	if ws.editing {
		hint += " • " + t.T("wishlist.form.delete_hint")
	}
	footer := theme.HintStyle.Render(hint)
	if ws.submitting {
		footer = ws.spinner.View() + " " + theme.HintStyle.Render(t.T("app.status_saving"))
	}
	lines = append(lines, "", footer)

	return theme.SheetStyle.Width(ws.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
