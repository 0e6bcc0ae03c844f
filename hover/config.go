package hover

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrConfig is wrapped by every validation failure.
var ErrConfig = errors.New("invalid config")

// maxSegments keeps the plane vertex count addressable by uint16 indices.
const maxSegments = 255

// Config drives the scene, usually loaded from an embedded yaml file.
type Config struct {
	Container string `yaml:"container"`
	Links     string `yaml:"links"`
	// Hover selects the element that fades the plane in, empty means the
	// first Links match.
	Hover string `yaml:"hover"`
	FPS   string `yaml:"fps"`

	Perspective float64 `yaml:"perspective"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`

	Plane   PlaneConfig   `yaml:"plane"`
	Factors FactorsConfig `yaml:"factors"`

	// Lag keeps the draw one frame behind the eased offset.
	Lag bool `yaml:"lag"`

	Background      string  `yaml:"background"`
	BackgroundAlpha float64 `yaml:"background_alpha"`
	// Placeholder tints the textures shown while images load.
	Placeholder string `yaml:"placeholder"`

	Images   []string `yaml:"images"`
	LinksMap []int    `yaml:"links_map"`
}

// PlaneConfig is the plane size in css pixels and its subdivisions.
type PlaneConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Segments int     `yaml:"segments"`
}

// FactorsConfig holds the per frame interpolation factors.
type FactorsConfig struct {
	Ease   float64 `yaml:"ease"`
	Fade   float64 `yaml:"fade"`
	Offset float64 `yaml:"offset"`
}

// DefaultConfig returns the stock scene settings.
func DefaultConfig() Config {
	return Config{
		Container:   "main",
		Links:       "span",
		Perspective: 1000,
		Near:        0.1,
		Far:         2000,
		Plane: PlaneConfig{
			Width:    650,
			Height:   850,
			Segments: 20,
		},
		Factors: FactorsConfig{
			Ease:   0.1,
			Fade:   0.1,
			Offset: 0.0005,
		},
		Lag:         true,
		Background:  "#000000",
		Placeholder: "#3b4a6b",
	}
}

// ParseConfig reads yaml on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field the scene relies on.
func (c Config) Validate() error {
	switch {
	case c.Container == "":
		return fmt.Errorf("%w: container selector is empty", ErrConfig)
	case c.Links == "":
		return fmt.Errorf("%w: links selector is empty", ErrConfig)
	case c.Perspective <= 0:
		return fmt.Errorf("%w: perspective must be positive, got %v", ErrConfig, c.Perspective)
	case c.Near <= 0 || c.Far <= c.Near:
		return fmt.Errorf("%w: bad clip planes near=%v far=%v", ErrConfig, c.Near, c.Far)
	case c.Plane.Width <= 0 || c.Plane.Height <= 0:
		return fmt.Errorf("%w: plane size must be positive, got %vx%v", ErrConfig, c.Plane.Width, c.Plane.Height)
	case c.Plane.Segments < 1 || c.Plane.Segments > maxSegments:
		return fmt.Errorf("%w: plane segments must be in [1,%d], got %d", ErrConfig, maxSegments, c.Plane.Segments)
	case len(c.Images) == 0:
		return fmt.Errorf("%w: no images", ErrConfig)
	case c.BackgroundAlpha < 0 || c.BackgroundAlpha > 1:
		return fmt.Errorf("%w: background_alpha must be in [0,1], got %v", ErrConfig, c.BackgroundAlpha)
	}
	for name, f := range map[string]float64{
		"ease":   c.Factors.Ease,
		"fade":   c.Factors.Fade,
		"offset": c.Factors.Offset,
	} {
		if f <= 0 || f > 1 {
			return fmt.Errorf("%w: factor %s must be in (0,1], got %v", ErrConfig, name, f)
		}
	}
	for i, img := range c.LinksMap {
		if img < 0 || img >= len(c.Images) {
			return fmt.Errorf("%w: links_map[%d]=%d out of range for %d images", ErrConfig, i, img, len(c.Images))
		}
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrConfig, err)
	}
	if _, err := colorful.Hex(c.Placeholder); err != nil {
		return fmt.Errorf("%w: placeholder: %v", ErrConfig, err)
	}
	return nil
}

// ClearColor returns the background as premultiplied rgba.
func (c Config) ClearColor() (r, g, b, a float32) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return 0, 0, 0, 0
	}
	a = float32(c.BackgroundAlpha)
	return float32(col.R) * a, float32(col.G) * a, float32(col.B) * a, a
}

// PlaceholderColor returns the parsed placeholder tint.
func (c Config) PlaceholderColor() colorful.Color {
	col, err := colorful.Hex(c.Placeholder)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}

// LinkTable maps link index to texture index.
func (c Config) LinkTable() []int {
	if len(c.LinksMap) > 0 {
		return append([]int(nil), c.LinksMap...)
	}
	t := make([]int, len(c.Images))
	for i := range t {
		t[i] = i
	}
	return t
}
