package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorScheme схема оформления платформы
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// ThemeParams цвета темы, как их отдает Telegram WebApp. Пустые поля
// заполняются палитрой по умолчанию.
type ThemeParams struct {
	BgColor          string `yaml:"bg_color" json:"bg_color,omitempty"`
	TextColor        string `yaml:"text_color" json:"text_color,omitempty"`
	HintColor        string `yaml:"hint_color" json:"hint_color,omitempty"`
	LinkColor        string `yaml:"link_color" json:"link_color,omitempty"`
	ButtonColor      string `yaml:"button_color" json:"button_color,omitempty"`
	ButtonTextColor  string `yaml:"button_text_color" json:"button_text_color,omitempty"`
	SecondaryBgColor string `yaml:"secondary_bg_color" json:"secondary_bg_color,omitempty"`
}

// ThemeFile содержимое файла темы (JSON или YAML)
type ThemeFile struct {
	ColorScheme ColorScheme `yaml:"color_scheme"`
	Params      ThemeParams `yaml:"theme_params"`
}

// Palette итоговые цвета после применения fallback
type Palette struct {
	Scheme      ColorScheme
	Bg          string
	Text        string
	Hint        string
	Link        string
	Button      string
	ButtonText  string
	SecondaryBg string
}

// ResolvePalette накладывает параметры платформы на палитру по умолчанию.
// Пустая схема считается светлой.
func ResolvePalette(scheme ColorScheme, params ThemeParams) Palette {
	if scheme != SchemeDark {
		scheme = SchemeLight
	}
	dark := scheme == SchemeDark
	pick := func(value, darkDefault, lightDefault string) string {
		if value != "" {
			return value
		}
		if dark {
			return darkDefault
		}
		return lightDefault
	}
	return Palette{
		Scheme:      scheme,
		Bg:          pick(params.BgColor, "#0d1117", "#f5f7fb"),
		Text:        pick(params.TextColor, "#f0f6fc", "#161616"),
		Hint:        pick(params.HintColor, "#8b949e", "#667085"),
		Link:        pick(params.LinkColor, "#2a63f6", "#2a63f6"),
		Button:      pick(params.ButtonColor, "#2a63f6", "#2a63f6"),
		ButtonText:  pick(params.ButtonTextColor, "#ffffff", "#ffffff"),
		SecondaryBg: pick(params.SecondaryBgColor, "#161b22", "#ffffff"),
	}
}

// CSSVars custom properties в формате WebApp
func (p Palette) CSSVars() map[string]string {
	return map[string]string{
		"--tg-bg":           p.Bg,
		"--tg-text":         p.Text,
		"--tg-hint":         p.Hint,
		"--tg-link":         p.Link,
		"--tg-button":       p.Button,
		"--tg-button-text":  p.ButtonText,
		"--tg-secondary-bg": p.SecondaryBg,
	}
}

// LoadThemeFile читает файл темы. JSON тоже разбирается как YAML.
// Если схема не указана, она выводится из яркости фона.
func LoadThemeFile(path string) (ThemeFile, error) {
	var tf ThemeFile
	data, err := os.ReadFile(path)
	if err != nil {
		return tf, fmt.Errorf("read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return tf, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	if tf.ColorScheme == "" && tf.Params.BgColor != "" {
		if isDarkColor(tf.Params.BgColor) {
			tf.ColorScheme = SchemeDark
		} else {
			tf.ColorScheme = SchemeLight
		}
	}
	return tf, nil
}

// isDarkColor грубая оценка яркости #rrggbb
func isDarkColor(hex string) bool {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return false
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return false
	}
	r := float64(rgb >> 16 & 0xff)
	g := float64(rgb >> 8 & 0xff)
	b := float64(rgb & 0xff)
	return 0.299*r+0.587*g+0.114*b < 128
}
