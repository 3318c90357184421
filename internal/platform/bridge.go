package platform

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"wishfox-tui/internal/i18n"
)

// Popup сообщение для пользователя
type Popup struct {
	Title   string
	Message string
	// Extra дополнительный блок (например, QR-код), отображается моноширинно
	Extra string
}

// PopupSink получатель всплывающих сообщений (в TUI это тост)
type PopupSink func(Popup)

// Options параметры моста
type Options struct {
	InitData     string
	StartParam   string // перекрывает start_param из init data
	BotName      string
	LanguageCode string // используется, если в init data нет языка
	Scheme       ColorScheme
	Theme        ThemeParams
	Logger       logrus.FieldLogger
	// Clipboard по умолчанию atotto/clipboard
	Clipboard func(string) error
	// Fallback вывод, когда sink не подключен
	Fallback io.Writer
}

// Bridge связь с платформой: init data, тема, deep links, popups, буфер обмена
type Bridge struct {
	mu       sync.RWMutex
	initData InitData
	override string
	botName  string
	langCode string
	scheme   ColorScheme
	params   ThemeParams
	sink     PopupSink

	events    *eventBus
	logger    logrus.FieldLogger
	clipboard func(string) error
	fallback  io.Writer
}

// NewBridge создает мост. Некорректная init data не мешает работе:
// рукопожатие отправит ее на сервер как есть.
func NewBridge(opts Options) *Bridge {
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Fallback == nil {
		opts.Fallback = os.Stderr
	}

	data, err := ParseInitData(opts.InitData)
	if err != nil {
		opts.Logger.WithError(err).Warn("init data is malformed")
		data = InitData{Raw: opts.InitData}
	}

	return &Bridge{
		initData:  data,
		override:  strings.TrimSpace(opts.StartParam),
		botName:   strings.TrimPrefix(strings.TrimSpace(opts.BotName), "@"),
		langCode:  opts.LanguageCode,
		scheme:    opts.Scheme,
		params:    opts.Theme,
		events:    newEventBus(),
		logger:    opts.Logger,
		clipboard: opts.Clipboard,
		fallback:  opts.Fallback,
	}
}

// InitData строка для рукопожатия, пустая если платформа ее не дала
func (b *Bridge) InitData() string {
	return b.initData.Raw
}

// StartParam deep-link параметр запуска
func (b *Bridge) StartParam() string {
	if b.override != "" {
		return b.override
	}
	return strings.TrimSpace(b.initData.StartParam)
}

// BotName имя бота для ссылок
func (b *Bridge) BotName() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.botName
}

// Locale язык из init data или из настроек
func (b *Bridge) Locale() i18n.Locale {
	if code := b.initData.LanguageCode(); code != "" {
		return i18n.Resolve(code)
	}
	return i18n.Resolve(b.langCode)
}

// Palette текущая палитра с fallback
func (b *Bridge) Palette() Palette {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ResolvePalette(b.scheme, b.params)
}

// SetTheme обновляет тему и рассылает themeChanged
func (b *Bridge) SetTheme(scheme ColorScheme, params ThemeParams) {
	b.mu.Lock()
	b.scheme = scheme
	b.params = params
	palette := ResolvePalette(scheme, params)
	b.mu.Unlock()

	b.Emit(Event{Name: EventThemeChanged, Data: palette})
}

// OnEvent регистрирует обработчик события платформы
func (b *Bridge) OnEvent(name string, handler EventHandler) Subscription {
	return b.events.on(name, handler)
}

// OffEvent снимает обработчик
func (b *Bridge) OffEvent(sub Subscription) {
	b.events.off(sub)
}

// Emit рассылает событие подписчикам
func (b *Bridge) Emit(event Event) {
	b.events.emit(event)
}

// Close дожидается завершения обработчиков событий
func (b *Bridge) Close() {
	b.events.wait()
}

// AttachPopups подключает получателя сообщений. nil отключает.
func (b *Bridge) AttachPopups(sink PopupSink) {
	b.mu.Lock()
	b.sink = sink
	b.mu.Unlock()
}

// Alert короткое сообщение без заголовка
func (b *Bridge) Alert(message string) {
	b.ShowPopup(Popup{Message: message})
}

// ShowPopup показывает сообщение через sink, иначе пишет в fallback
func (b *Bridge) ShowPopup(p Popup) {
	b.mu.RLock()
	sink := b.sink
	b.mu.RUnlock()

	if sink != nil {
		sink(p)
		return
	}

	b.logger.WithField("title", p.Title).Info(p.Message)
	text := p.Message
	if p.Title != "" {
		text = p.Title + ": " + text
	}
	if p.Extra != "" {
		text += "\n" + p.Extra
	}
	fmt.Fprintln(b.fallback, text)
}

// BuildDeepLink ссылка на мини-приложение. Без имени бота ссылки нет.
func BuildDeepLink(bot, username string) string {
	bot = strings.TrimPrefix(strings.TrimSpace(bot), "@")
	if bot == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s?startapp=%s", bot, username)
}

// DeepLink ссылка для пользователя с текущим именем бота
func (b *Bridge) DeepLink(username string) string {
	return BuildDeepLink(b.BotName(), username)
}

// ShareDeepLink копирует ссылку на вишлист пользователя. Нужен
// telegram username; если копирование не удалось, ссылка показывается в popup.
func (b *Bridge) ShareDeepLink(tgUsername string) string {
	t := i18n.New(b.Locale())

	if strings.TrimSpace(tgUsername) == "" {
		b.Alert(t.T("share.missing_username"))
		return ""
	}

	link := b.DeepLink(tgUsername)
	if link == "" {
		b.Alert(t.T("share.unavailable"))
		return ""
	}

	qr := RenderQR(link, b.logger)
	if err := b.clipboard(link); err != nil {
		b.logger.WithError(err).Warn("clipboard write failed")
		b.ShowPopup(Popup{Message: t.T("share.copy_failed", "url", link), Extra: qr})
		return link
	}
	b.ShowPopup(Popup{Message: t.T("share.copied"), Extra: qr})
	return link
}

// RenderQR QR-код ссылки в виде блочных символов для терминала
func RenderQR(content string, logger logrus.FieldLogger) string {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		if logger != nil {
			logger.WithError(err).Debug("qr render failed")
		}
		return ""
	}
	return code.ToSmallString(false)
}
