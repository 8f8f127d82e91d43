package sapling

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Theme holds the overlay colors.
type Theme struct {
	Accent         Color `yaml:"accent"`
	Proximity      Color `yaml:"proximity"`
	MarqueeFill    Color `yaml:"marquee_fill"`
	MarqueeOutline Color `yaml:"marquee_outline"`
}

// Settings configures the selection controller and its input bindings.
// Zero numeric fields and zero colors are replaced by DefaultSettings values.
type Settings struct {
	// SelectionBox is the side of the square hit box around entity origins.
	SelectionBox float64 `yaml:"selection_box"`
	// DragMinDuration is the time in seconds a press must be held over an
	// entity before the selection moves.
	DragMinDuration float64 `yaml:"drag_min_duration"`
	// GridSize is the snap cell size.
	GridSize float64 `yaml:"grid_size"`
	// ProximityRadius is the world distance at which proximity dots appear.
	ProximityRadius float64 `yaml:"proximity_radius"`
	SelectChildren  bool    `yaml:"select_children"`
	Theme           Theme   `yaml:"theme"`
	// Bindings maps button names to key and mouse names; see ParseBindings.
	Bindings map[string][]string `yaml:"bindings"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		SelectionBox:    12,
		DragMinDuration: 0.25,
		GridSize:        16,
		ProximityRadius: 128,
		Theme: Theme{
			Accent:         ColorFrom(colornames.Mediumpurple),
			Proximity:      ColorFrom(colornames.Yellow),
			MarqueeFill:    ColorWhite.Fade(0.25),
			MarqueeOutline: ColorWhite.Fade(0.75),
		},
		Bindings: map[string][]string{
			ButtonSelect.String():  {"mouse_left"},
			ButtonMulti.String():   {"shift"},
			ButtonSnap.String():    {"ctrl"},
			ButtonDelete.String():  {"delete", "backspace"},
			ButtonCancel.String():  {"escape"},
			ButtonConsole.String(): {"f1"},
			ButtonEditor.String():  {"f2"},
		},
	}
}

// withDefaults fills every zero field from DefaultSettings.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.SelectionBox <= 0 {
		s.SelectionBox = d.SelectionBox
	}
	if s.DragMinDuration <= 0 {
		s.DragMinDuration = d.DragMinDuration
	}
	if s.GridSize <= 0 {
		s.GridSize = d.GridSize
	}
	if s.ProximityRadius <= 0 {
		s.ProximityRadius = d.ProximityRadius
	}
	fillColor(&s.Theme.Accent, d.Theme.Accent)
	fillColor(&s.Theme.Proximity, d.Theme.Proximity)
	fillColor(&s.Theme.MarqueeFill, d.Theme.MarqueeFill)
	fillColor(&s.Theme.MarqueeOutline, d.Theme.MarqueeOutline)

	merged := make(map[string][]string, len(d.Bindings))
	for k, v := range d.Bindings {
		merged[k] = v
	}
	for k, v := range s.Bindings {
		if len(v) > 0 {
			merged[k] = v
		}
	}
	s.Bindings = merged
	return s
}

func fillColor(c *Color, def Color) {
	if *c == (Color{}) {
		*c = def
	}
}

func (s Settings) boxSize() Vec2 {
	return Vec2{s.SelectionBox, s.SelectionBox}
}

// ParseSettings decodes YAML settings. Missing fields take default values.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("sapling: unmarshal settings: %w", err)
	}
	s = s.withDefaults()
	if _, err := ParseBindings(s.Bindings); err != nil {
		return Settings{}, fmt.Errorf("sapling: settings bindings: %w", err)
	}
	return s, nil
}

// LoadSettings reads and decodes the settings file at path.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("sapling: load settings %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("sapling: load settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as YAML.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("sapling: marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sapling: save settings %s: %w", path, err)
	}
	return nil
}

// MarshalYAML encodes the color as #rrggbbaa.
func (c Color) MarshalYAML() (any, error) {
	n := color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

// UnmarshalYAML accepts #rrggbb, #rrggbbaa or an SVG color name.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		*c = ColorFrom(named)
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
		}
		ch[i] = uint8(v)
	}
	*c = ColorFrom(color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]})
	return nil
}
