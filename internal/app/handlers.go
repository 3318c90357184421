package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"wishfox-tui/internal/platform"
)

// handleKeys разводит нажатия: модальные окна, реестр команд, затем экран
func (a *App) handleKeys(msg tea.KeyMsg) tea.Cmd {
	rawKey := msg.String()

	switch {
	case a.quitDialog.Visible():
		return a.quitDialog.Update(msg)
	case a.deleteDialog.Visible():
		return a.deleteDialog.Update(msg)
	}

	// ctrl+c работает всегда, кроме открытых диалогов
	if platform.MatchesKey(rawKey, a.config.Keybindings["quit"]) {
		a.requestQuit()
		return nil
	}

	switch {
	case a.prompt.Visible():
		return a.prompt.Update(msg)
	case a.palette.Visible():
		return a.palette.Update(msg)
	case a.sheet.Visible():
		urlBefore := a.sheet.Form().URL
		cmd := a.sheet.Update(msg)
		return tea.Batch(cmd, a.schedulePreview(urlBefore))
	}

	screen := a.getCurrentScreen()
	if screen != nil && screen.Capturing() {
		if platform.MatchesKey(rawKey, a.config.Keybindings["command_palette"]) {
			return a.palette.Open()
		}
		return a.forwardKey(msg)
	}

	if cmd := a.commands.Resolve(rawKey, a.tab, a); cmd != nil {
		return cmd.Run(a)
	}
	return a.forwardKey(msg)
}

// forwardKey отдает нажатие текущему экрану. Экран уже обновил
// свое состояние, поэтому синхронизация в этом цикле не нужна.
func (a *App) forwardKey(msg tea.KeyMsg) tea.Cmd {
	screen := a.getCurrentScreen()
	if screen == nil {
		return nil
	}
	updated, cmd := screen.Update(msg)
	a.screens[a.tab] = updated
	a.skipSync = true
	return cmd
}

// handleWindowResize обрабатывает изменение размера окна
func (a *App) handleWindowResize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width, a.height = msg.Width, msg.Height
	a.theme.SetDimensions(msg.Width, msg.Height)
	a.sheet.SetWidth(msg.Width)
	a.palette.SetWidth(msg.Width)

	// Передаем всем экранам
	var cmds []tea.Cmd
	for tab, screen := range a.screens {
		if screen == nil {
			continue
		}
		updated, cmd := screen.Update(msg)
		a.screens[tab] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
