package i18n

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale поддерживаемый язык интерфейса
type Locale string

const (
	EN Locale = "en"
	RU Locale = "ru"
)

// Locales возвращает языки в порядке отображения
func Locales() []Locale {
	return []Locale{EN, RU}
}

var russian, _ = language.Russian.Base()

// Resolve сопоставляет код языка платформы с поддерживаемым языком.
// Все, что не русский, считается английским. Близкие языки (uk, be, kk)
// тоже получают английский.
func Resolve(code string) Locale {
	code = strings.TrimSpace(code)
	if code == "" {
		return EN
	}
	tag, err := language.Parse(code)
	if err != nil {
		if strings.HasPrefix(strings.ToLower(code), "ru") {
			return RU
		}
		return EN
	}
	if base, _ := tag.Base(); base == russian {
		return RU
	}
	return EN
}

func (l Locale) tag() language.Tag {
	if l == RU {
		return language.Russian
	}
	return language.English
}

// Translator переводит ключи каталога и форматирует значения под язык
type Translator struct {
	locale  Locale
	printer *message.Printer
}

// New создает переводчик для языка
func New(locale Locale) *Translator {
	if locale != RU {
		locale = EN
	}
	return &Translator{
		locale:  locale,
		printer: message.NewPrinter(locale.tag()),
	}
}

// Locale текущий язык
func (t *Translator) Locale() Locale {
	return t.locale
}

// T возвращает перевод ключа. vars: пары имя/значение для {{имя}}.
// Отсутствующий ключ ищется в английском каталоге, затем возвращается как есть.
func (t *Translator) T(key string, vars ...string) string {
	text, ok := catalog[t.locale][key]
	if !ok {
		text, ok = catalog[EN][key]
	}
	if !ok {
		return key
	}
	for i := 0; i+1 < len(vars); i += 2 {
		text = strings.ReplaceAll(text, "{{"+vars[i]+"}}", vars[i+1])
	}
	return text
}

// Count подставляет число в {{count}}
func (t *Translator) Count(key string, n int) string {
	return t.T(key, "count", t.printer.Sprint(n))
}

// FormatPrice нормализует введенную пользователем цену и форматирует ее
// по правилам языка. Нераспознанное значение возвращается без изменений.
func (t *Translator) FormatPrice(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, raw)
	if cleaned == "" {
		return raw
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	normalized := cleaned
	switch {
	case hasComma && hasDot:
		normalized = strings.ReplaceAll(cleaned, ",", "")
	case hasComma:
		normalized = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return raw
	}

	if strings.Contains(normalized, ".") {
		return t.printer.Sprint(number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return t.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(0)))
}

// RelativeTime «3 minutes ago» / «3 мин. назад»
func (t *Translator) RelativeTime(then, now time.Time) string {
	if t.locale == RU {
		return humanize.CustomRelTime(then, now, "назад", "вперед", ruMagnitudes)
	}
	return humanize.RelTime(then, now, "ago", "from now")
}

var ruMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "только что", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 сек. %s", DivBy: 1},
	{D: time.Minute, Format: "%d сек. %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 мин. %s", DivBy: 1},
	{D: time.Hour, Format: "%d мин. %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 ч. %s", DivBy: 1},
	{D: humanize.Day, Format: "%d ч. %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 дн. %s", DivBy: 1},
	{D: humanize.Week, Format: "%d дн. %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 нед. %s", DivBy: 1},
	{D: humanize.Month, Format: "%d нед. %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 мес. %s", DivBy: 1},
	{D: humanize.Year, Format: "%d мес. %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "1 г. %s", DivBy: 1},
	{D: 2 * humanize.Year, Format: "2 г. %s", DivBy: 1},
	{D: humanize.LongTime, Format: "%d г. %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "давно", DivBy: 1},
}
