package appconfig

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noted-input/noted-analyze/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvTest))
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.LogLevel)
	assert.Equal(t, 2100, conf.TimelineWidth)
	assert.Equal(t, 600, conf.TimelineHeight)
	assert.Equal(t, 200.0, conf.DeltaLookupWindow)
	assert.Equal(t, []string{"A", "D", "W", "S"}, conf.MonitoredKeys)
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}, conf.TimelineBackground.NRGBA())
	assert.Equal(t, appcontext.EnvTest, conf.AppContext.Env)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("NOTED_TIMELINE_WIDTH", "800")
	t.Setenv("NOTED_MONITORED_KEYS", "Left,Right")
	t.Setenv("NOTED_TIMELINE_CLICK_COLOR", "00ff00")

	conf, err := Parse(appcontext.Declare(appcontext.EnvTest))
	require.NoError(t, err)

	assert.Equal(t, 800, conf.TimelineWidth)
	assert.Equal(t, []string{"Left", "Right"}, conf.MonitoredKeys)
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, conf.TimelineClickColor.NRGBA())
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		t.Setenv("NOTED_TIMELINE_WIDTH", "10")
		_, err := Parse(appcontext.Declare(appcontext.EnvTest))
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("NOTED_LOG_LEVEL", "loud")
		_, err := Parse(appcontext.Declare(appcontext.EnvTest))
		assert.Error(t, err)
	})

	t.Run("bad color", func(t *testing.T) {
		t.Setenv("NOTED_TIMELINE_BACKGROUND", "#12345")
		_, err := Parse(appcontext.Declare(appcontext.EnvTest))
		assert.Error(t, err)
	})
}

func TestHexColorDecode(t *testing.T) {
	var c HexColor
	require.NoError(t, c.Decode("#FF6B35"))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xff}, c.NRGBA())

	assert.Error(t, c.Decode("#GG0000"))
	assert.Error(t, c.Decode(""))
}
