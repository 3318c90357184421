package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config конфигурация приложения
type Config struct {
	// Внешний вид: "auto" берет схему из темы платформы
	Theme string `yaml:"theme"`

	API      APIConfig      `yaml:"api"`
	Telegram TelegramConfig `yaml:"telegram"`
	Preview  PreviewConfig  `yaml:"preview"`

	// Горячие клавиши
	Keybindings map[string]string `yaml:"keybindings"`

	// Логирование
	Logging LoggingConfig `yaml:"logging"`

	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig настройки HTTP API
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // в секундах
}

// TelegramConfig настройки платформы
type TelegramConfig struct {
	BotName      string  `yaml:"bot_name"`
	BotToken     string  `yaml:"bot_token"`     // нужен для dev-подписи init data и GetMe
	InitData     string  `yaml:"init_data"`     // готовая строка initData
	StartParam   string  `yaml:"start_param"`   // перекрывает start_param из initData
	ThemeFile    string  `yaml:"theme_file"`    // JSON/YAML с themeParams
	LanguageCode string  `yaml:"language_code"` // en, ru
	DevUser      DevUser `yaml:"dev_user"`
}

// DevUser пользователь для локально подписанной init data
type DevUser struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Username  string `yaml:"username"`
}

// PreviewConfig настройки превью ссылок
type PreviewConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// LoggingConfig настройки логирования
type LoggingConfig struct {
	Level    string `yaml:"level"`     // debug, info, warn, error
	FilePath string `yaml:"file_path"` // Путь к файлу логов
}

// MetricsConfig адрес для /metrics, пустой выключает
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Theme: "auto",
		API: APIConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: 30,
		},
		Telegram: TelegramConfig{
			LanguageCode: "en",
		},
		Preview: PreviewConfig{
			DebounceMs: 600,
		},
		Keybindings: map[string]string{
			"quit":            "ctrl+c",
			"command_palette": "ctrl+p",
			"next_tab":        "tab",
			"prev_tab":        "shift+tab",
			"tab_wishlist":    "1",
			"tab_feed":        "2",
			"tab_subs":        "3",
			"tab_profile":     "4",
			"tab_settings":    "5",
			"add_wish":        "a",
			"back":            "esc",
			"refresh":         "ctrl+r",
			"share":           "ctrl+s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load загружает конфигурацию: файл, затем .env и WISHFOX_* переменные.
// Пустой path означает стандартное XDG-расположение.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return cfg, err
		}
	}

	// Если файл не существует, создаем его с настройками по умолчанию
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cfg.Save(path); err != nil {
			return cfg, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// .env не обязателен
	_ = godotenv.Load()
	cfg.applyEnv(os.Getenv)

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = getDefaultLogPath()
	}

	cfg.applyKeybindingDefaults(DefaultConfig().Keybindings)

	// Валидация исправляет значения, ошибки только информируют
	_ = cfg.Validate()

	return cfg, nil
}

// applyEnv перекрывает значения переменными окружения
func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Theme, "WISHFOX_THEME")
	set(&c.API.BaseURL, "WISHFOX_API_BASE")
	set(&c.Telegram.BotName, "WISHFOX_BOT_NAME")
	set(&c.Telegram.BotToken, "WISHFOX_BOT_TOKEN")
	set(&c.Telegram.InitData, "WISHFOX_INIT_DATA")
	set(&c.Telegram.StartParam, "WISHFOX_START_PARAM")
	set(&c.Telegram.ThemeFile, "WISHFOX_THEME_FILE")
	set(&c.Telegram.LanguageCode, "WISHFOX_LANGUAGE")
	set(&c.Logging.Level, "WISHFOX_LOG_LEVEL")
	set(&c.Logging.FilePath, "WISHFOX_LOG_FILE")
	set(&c.Metrics.Addr, "WISHFOX_METRICS_ADDR")

	if v := getenv("WISHFOX_PREVIEW_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Preview.DebounceMs = ms
		}
	}
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for key, value := range defaults {
		current, ok := c.Keybindings[key]
		if !ok || strings.TrimSpace(current) == "" {
			c.Keybindings[key] = value
		}
	}
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Path возвращает стандартный путь к конфигу
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath возвращает путь к конфигурационному файлу
func getConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wishfox-tui", "config.yaml"), nil
}

// getDefaultLogPath возвращает путь к файлу логов по умолчанию
func getDefaultLogPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}
	return filepath.Join(cacheDir, "wishfox-tui", "app.log")
}

// PreviewDebounce задержка перед запросом превью
func (c *Config) PreviewDebounce() time.Duration {
	return time.Duration(c.Preview.DebounceMs) * time.Millisecond
}

// APITimeout таймаут HTTP-запросов
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Second
}

// Validate нормализует некорректные значения и сообщает, что было исправлено
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Theme {
	case "auto", "dark", "light":
	default:
		result = multierror.Append(result, fmt.Errorf("theme %q is not one of auto|dark|light", c.Theme))
		c.Theme = "auto"
	}

	if strings.TrimSpace(c.API.BaseURL) == "" {
		result = multierror.Append(result, errors.New("api.base_url is empty"))
		c.API.BaseURL = DefaultConfig().API.BaseURL
	}

	if c.API.Timeout < 1 || c.API.Timeout > 300 {
		result = multierror.Append(result, fmt.Errorf("api.timeout %d out of range", c.API.Timeout))
		c.API.Timeout = 30
	}

	if c.Preview.DebounceMs < 50 || c.Preview.DebounceMs > 10000 {
		result = multierror.Append(result, fmt.Errorf("preview.debounce_ms %d out of range", c.Preview.DebounceMs))
		c.Preview.DebounceMs = 600
	}

	c.Telegram.BotName = strings.TrimPrefix(strings.TrimSpace(c.Telegram.BotName), "@")

	switch c.Telegram.LanguageCode {
	case "en", "ru":
	default:
		if strings.HasPrefix(c.Telegram.LanguageCode, "ru") {
			c.Telegram.LanguageCode = "ru"
		} else {
			c.Telegram.LanguageCode = "en"
		}
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		result = multierror.Append(result, fmt.Errorf("logging.level %q is invalid", c.Logging.Level))
		c.Logging.Level = "info"
	}

	return result.ErrorOrNil()
}
