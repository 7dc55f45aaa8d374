package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/app/appcontext"
	"github.com/noted-input/noted-analyze/internal/loader"
	"github.com/noted-input/noted-analyze/internal/pkg/testentry"
	"github.com/noted-input/noted-analyze/internal/service"
	"github.com/noted-input/noted-analyze/internal/timeline"
)

type graph struct {
	fx.In

	Config       *appconfig.Config
	Loader       *loader.Loader
	Statistics   *service.Statistics
	Reporter     *service.Reporter
	Distribution *service.Distribution
	Delta        *service.DeltaCalculator
	Renderer     timeline.Renderer
}

func TestGraphResolves(t *testing.T) {
	var g graph
	testentry.Populate(t, &g)

	require.NotNil(t, g.Config)
	assert.Equal(t, appcontext.EnvTest, g.Config.AppContext.Env)
	assert.NotNil(t, g.Loader)
	assert.NotNil(t, g.Statistics)
	assert.NotNil(t, g.Reporter)
	assert.NotNil(t, g.Distribution)
	assert.NotNil(t, g.Renderer)

	require.NotNil(t, g.Delta)
	assert.InDelta(t, 200.0, g.Delta.WindowMs, 1e-9)
	assert.Equal(t, []string{"A", "D", "W", "S"}, g.Delta.MonitoredKeys)
}
