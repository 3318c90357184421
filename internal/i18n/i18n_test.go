package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := map[string]Locale{
		"":      EN,
		"en":    EN,
		"ru":    RU,
		"ru-RU": RU,
		"RU_ru": RU,
		"de":    EN,
		"uk":    EN,
		"be":    EN,
		"kk":    EN,
		"xx??":  EN,
	}
	for code, want := range cases {
		assert.Equal(t, want, Resolve(code), "code %q", code)
	}
}

func TestTranslator_T(t *testing.T) {
	ru := New(RU)
	assert.Equal(t, "Лента", ru.T("tabs.feed"))
	assert.Equal(t, "Вишлист @bob", ru.T("header.title_with_handle", "handle", "bob"))
	assert.Equal(t, "missing.key", ru.T("missing.key"))

	en := New("fr")
	assert.Equal(t, EN, en.Locale())
	assert.Equal(t, "3 following", en.Count("header.following", 3))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalog[EN] {
		_, ok := catalog[RU][key]
		assert.True(t, ok, "ru catalog is missing %q", key)
	}
	for key := range catalog[RU] {
		_, ok := catalog[EN][key]
		assert.True(t, ok, "en catalog is missing %q", key)
	}
}

func TestFormatPrice(t *testing.T) {
	en := New(EN)
	assert.Equal(t, "1,299.99", en.FormatPrice("$1,299.99"))
	assert.Equal(t, "1,500", en.FormatPrice("1500"))
	assert.Equal(t, "12.50", en.FormatPrice("12,5"))
	assert.Equal(t, "priceless", en.FormatPrice("priceless"))

	ru := New(RU)
	assert.Contains(t, ru.FormatPrice("1500,5"), ",50")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 minutes ago", New(EN).RelativeTime(now.Add(-3*time.Minute), now))
	assert.Equal(t, "3 мин. назад", New(RU).RelativeTime(now.Add(-3*time.Minute), now))
	assert.Equal(t, "5 ч. назад", New(RU).RelativeTime(now.Add(-5*time.Hour), now))
}
