package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/ui/styles"
)

// Screen интерфейс для всех экранов приложения
type Screen interface {
	// Bubble Tea методы
	Init() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View() string

	// Методы жизненного цикла экрана
	OnEnter() tea.Cmd // Вызывается при входе на экран
	OnExit() tea.Cmd  // Вызывается при выходе с экрана

	// Capturing экран сейчас принимает текст, глобальные клавиши без модификаторов
	// до приложения не доходят
	Capturing() bool

	ShortHelp() string // Краткая справка по горячим клавишам
}

// Env общие зависимости экранов. Приложение меняет поля на месте
// (язык, палитра), экраны читают их при каждом рендере.
type Env struct {
	T     *i18n.Translator
	Theme *styles.Theme
}

// BaseScreen базовая реализация экрана с общей функциональностью
type BaseScreen struct {
	env    *Env
	width  int
	height int
}

// NewBaseScreen создает базовый экран
func NewBaseScreen(env *Env) BaseScreen {
	return BaseScreen{env: env}
}

// SetSize устанавливает размеры экрана
func (bs *BaseScreen) SetSize(width, height int) {
	bs.width = width
	bs.height = height
}

// Width возвращает ширину экрана
func (bs *BaseScreen) Width() int {
	if bs.width <= 0 {
		return 80
	}
	return bs.width
}

// Height возвращает высоту экрана
func (bs *BaseScreen) Height() int {
	if bs.height <= 0 {
		return 24
	}
	return bs.height
}

// t переводит ключ текущим языком
func (bs *BaseScreen) t(key string, vars ...string) string {
	return bs.env.T.T(key, vars...)
}

func (bs *BaseScreen) theme() *styles.Theme {
	return bs.env.Theme
}

// Capturing базовая реализация - ввода нет
func (bs *BaseScreen) Capturing() bool {
	return false
}

// Init базовая реализация - ничего не делаем
func (bs *BaseScreen) Init() tea.Cmd {
	return nil
}

// OnEnter базовая реализация - ничего не делаем
func (bs *BaseScreen) OnEnter() tea.Cmd {
	return nil
}

// OnExit базовая реализация - ничего не делаем
func (bs *BaseScreen) OnExit() tea.Cmd {
	return nil
}

// ShortHelp базовая реализация справки
func (bs *BaseScreen) ShortHelp() string {
	return bs.t("app.help")
}

// emit оборачивает сообщение в команду
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
