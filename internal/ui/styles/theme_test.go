package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wishfox-tui/internal/platform"
)

func TestNewTheme_FollowsPalette(t *testing.T) {
	palette := platform.ResolvePalette(platform.SchemeDark, platform.ThemeParams{ButtonColor: "#123456"})
	theme := NewTheme(palette)

	assert.Equal(t, "#123456", theme.Colors().Primary)
	assert.Equal(t, "#0d1117", theme.Colors().Background)
	assert.Equal(t, "#334155", theme.Colors().Border)

	theme.SetDimensions(80, 24)
	theme.Apply(platform.ResolvePalette(platform.SchemeLight, platform.ThemeParams{}))
	assert.Equal(t, "#2a63f6", theme.Colors().Primary)
	assert.Equal(t, "#E2E8F0", theme.Colors().Border)
	assert.Equal(t, 80, theme.Width(), "dimensions survive palette change")
}
