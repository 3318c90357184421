package platform

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrInitDataHash подпись init data не совпала
var ErrInitDataHash = errors.New("init data hash mismatch")

// InitData разобранная строка initData
type InitData struct {
	Raw        string
	StartParam string
	User       *tgbotapi.User
	AuthDate   time.Time
	Hash       string
}

// ParseInitData разбирает query-строку initData без проверки подписи
func ParseInitData(raw string) (InitData, error) {
	data := InitData{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return data, nil
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return data, fmt.Errorf("parse init data: %w", err)
	}

	data.StartParam = values.Get("start_param")
	data.Hash = values.Get("hash")

	if rawUser := values.Get("user"); rawUser != "" {
		var user tgbotapi.User
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
			return data, fmt.Errorf("parse init data user: %w", err)
		}
		data.User = &user
	}

	if ts := values.Get("auth_date"); ts != "" {
		sec, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return data, fmt.Errorf("parse init data auth_date: %w", err)
		}
		data.AuthDate = time.Unix(sec, 0).UTC()
	}

	return data, nil
}

// LanguageCode код языка пользователя из init data
func (d InitData) LanguageCode() string {
	if d.User == nil {
		return ""
	}
	return d.User.LanguageCode
}

// SignInitData собирает initData для локальной разработки, подписанную
// токеном бота так же, как это делает Telegram.
func SignInitData(botToken string, user tgbotapi.User, startParam string, authDate time.Time) (string, error) {
	if botToken == "" {
		return "", errors.New("bot token is required to sign init data")
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("encode init data user: %w", err)
	}

	values := url.Values{}
	values.Set("user", string(payload))
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	if startParam != "" {
		values.Set("start_param", startParam)
	}
	values.Set("hash", initDataHash(botToken, values))

	return values.Encode(), nil
}

// VerifyInitData проверяет подпись initData
func VerifyInitData(raw, botToken string) error {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("parse init data: %w", err)
	}
	received := values.Get("hash")
	if received == "" {
		return fmt.Errorf("%w: hash is missing", ErrInitDataHash)
	}
	if !hmac.Equal([]byte(received), []byte(initDataHash(botToken, values))) {
		return ErrInitDataHash
	}
	return nil
}

// initDataHash hex(HMAC(HMAC("WebAppData", token), data-check-string))
func initDataHash(botToken string, values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}
