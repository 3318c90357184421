package platform

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ResolveBotName узнает имя бота через getMe. Пустой endpoint означает api.telegram.org.
func ResolveBotName(token, endpoint string) (string, error) {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{})
	if err != nil {
		return "", fmt.Errorf("resolve bot name: %w", err)
	}
	return bot.Self.UserName, nil
}
