package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"wishfox-tui/internal/api"
)

// previewTickMsg сработал таймер тишины для ссылки
type previewTickMsg struct {
	seq int
	url string
}

// previewLoadedMsg ответ /links/preview
type previewLoadedMsg struct {
	seq     int
	url     string
	preview *api.LinkPreview
	err     error
}

// previewDebouncer откладывает запрос превью до паузы во вводе ссылки.
// Таймер отменяется сменой seq, запрос отменяется через context.
// Используется только из Update.
type previewDebouncer struct {
	delay  time.Duration
	seq    int
	cancel context.CancelFunc
}

func newPreviewDebouncer(delay time.Duration) *previewDebouncer {
	return &previewDebouncer{delay: delay}
}

// restart сбрасывает таймер и запрос; для валидной ссылки запускает новый таймер
func (d *previewDebouncer) restart(target string, ok bool) tea.Cmd {
	d.stop()
	if !ok {
		return nil
	}
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return previewTickMsg{seq: seq, url: target}
	})
}

// stop отменяет ожидающий таймер и запрос в полете
func (d *previewDebouncer) stop() {
	d.seq++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// fire запускает запрос, если таймер не устарел
func (d *previewDebouncer) fire(ctx context.Context, msg previewTickMsg, client *api.Client) tea.Cmd {
	if msg.seq != d.seq {
		return nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	return func() tea.Msg {
		p, err := client.LinkPreview(reqCtx, msg.url)
		return previewLoadedMsg{seq: msg.seq, url: msg.url, preview: p, err: err}
	}
}

// accept ответ относится к текущему запросу
func (d *previewDebouncer) accept(msg previewLoadedMsg) bool {
	if msg.seq != d.seq {
		return false
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	return true
}

// schedulePreview перезапускает таймер, если ссылка в форме изменилась
func (a *App) schedulePreview(urlBefore string) tea.Cmd {
	form := a.sheet.Form()
	if form.URL == urlBefore {
		return nil
	}
	a.sheet.SetPreviewLoading(false)
	return a.preview.restart(form.PreviewTarget())
}

func (a *App) handlePreviewTick(msg previewTickMsg) tea.Cmd {
	if !a.sheet.Visible() {
		return nil
	}
	target, ok := a.sheet.Form().PreviewTarget()
	if !ok || target != msg.url {
		return nil
	}
	cmd := a.preview.fire(a.ctx, msg, a.session.API())
	if cmd == nil {
		return nil
	}
	a.logger.WithField("url", msg.url).Debug("fetching link preview")
	return tea.Batch(a.sheet.SetPreviewLoading(true), cmd)
}

func (a *App) handlePreviewLoaded(msg previewLoadedMsg) tea.Cmd {
	if !a.preview.accept(msg) {
		return nil
	}
	a.sheet.SetPreviewLoading(false)
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return nil
		}
		a.logger.WithError(msg.err).WithField("url", msg.url).Warn("link preview failed")
		a.sheet.MarkPreviewAttempted(msg.url)
		return nil
	}
	if !a.sheet.ApplyPreview(msg.url, msg.preview) {
		a.logger.WithFields(logrus.Fields{"url": msg.url}).Debug("stale link preview dropped")
	}
	return nil
}
