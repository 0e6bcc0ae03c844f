package hover

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
images:
  - img/one.jpg
  - img/two.jpg
`))
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Container)
	assert.Equal(t, "span", cfg.Links)
	assert.Equal(t, 1000.0, cfg.Perspective)
	assert.Equal(t, 650.0, cfg.Plane.Width)
	assert.Equal(t, 850.0, cfg.Plane.Height)
	assert.Equal(t, 20, cfg.Plane.Segments)
	assert.Equal(t, 0.1, cfg.Factors.Ease)
	assert.Equal(t, 0.0005, cfg.Factors.Offset)
	assert.True(t, cfg.Lag)
	assert.Equal(t, []int{0, 1}, cfg.LinkTable())
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
container: "#stage"
hover: ".primary"
lag: false
plane: {width: 300, height: 400}
factors: {ease: 0.2}
background: "#ff8000"
background_alpha: 0.5
images: [a.png, b.png, c.png]
links_map: [2, 0]
`))
	require.NoError(t, err)
	assert.Equal(t, "#stage", cfg.Container)
	assert.Equal(t, ".primary", cfg.Hover)
	assert.False(t, cfg.Lag)
	assert.Equal(t, 300.0, cfg.Plane.Width)
	assert.Equal(t, 20, cfg.Plane.Segments)
	assert.Equal(t, 0.2, cfg.Factors.Ease)
	assert.Equal(t, 0.1, cfg.Factors.Fade)
	assert.Equal(t, []int{2, 0}, cfg.LinkTable())

	r, g, b, a := cfg.ClearColor()
	assert.InDelta(t, 0.5, r, 1e-6)
	assert.InDelta(t, 0.25, g, 0.01)
	assert.InDelta(t, 0, b, 1e-6)
	assert.InDelta(t, 0.5, a, 1e-6)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"no images":        func(c *Config) { c.Images = nil },
		"no container":     func(c *Config) { c.Container = "" },
		"no links":         func(c *Config) { c.Links = "" },
		"perspective":      func(c *Config) { c.Perspective = 0 },
		"clip planes":      func(c *Config) { c.Far = c.Near },
		"plane size":       func(c *Config) { c.Plane.Height = -1 },
		"segments":         func(c *Config) { c.Plane.Segments = 0 },
		"too many seg":     func(c *Config) { c.Plane.Segments = 1000 },
		"ease":             func(c *Config) { c.Factors.Ease = 0 },
		"fade":             func(c *Config) { c.Factors.Fade = 1.5 },
		"links_map":        func(c *Config) { c.LinksMap = []int{0, 2} },
		"background":       func(c *Config) { c.Background = "red" },
		"background alpha": func(c *Config) { c.BackgroundAlpha = 2 },
		"placeholder":      func(c *Config) { c.Placeholder = "#12" },
	}
	for name, mut := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			require.NoError(t, cfg.Validate())
			mut(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrConfig), "got %v", err)
		})
	}
}

func TestParseConfigBadYAML(t *testing.T) {
	_, err := ParseConfig([]byte("images: [a\n"))
	assert.True(t, errors.Is(err, ErrConfig))
}
