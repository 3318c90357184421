package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishfox-tui/internal/config"
	"wishfox-tui/internal/logging"
)

func TestPrintDeepLink(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printDeepLink(&out, "@wishfox_bot", "alice"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 2, "QR code is printed under the link")
	assert.Equal(t, "https://t.me/wishfox_bot?startapp=alice", lines[0])
	for _, line := range lines[1:] {
		assert.NotEmpty(t, strings.TrimSpace(line))
	}
}

func TestPrintDeepLink_UnknownBot(t *testing.T) {
	var out bytes.Buffer
	err := printDeepLink(&out, "", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot name is unknown")
	assert.Empty(t, out.String())
}

func TestBotName_PrefersConfiguredName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Telegram.BotName = "wishfox_bot"
	cfg.Telegram.BotToken = "123:abc"
	assert.Equal(t, "wishfox_bot", botName(cfg, logging.Discard()))

	cfg.Telegram = config.TelegramConfig{}
	assert.Empty(t, botName(cfg, logging.Discard()))
}
