package mobject

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// themeEntry mirrors one style block in a theme file. Absent fields keep
// the defaults, so entries only name what they change.
type themeEntry struct {
	StrokeColor   *string  `yaml:"strokeColor"`
	StrokeOpacity *float64 `yaml:"strokeOpacity"`
	FillColor     *string  `yaml:"fillColor"`
	FillOpacity   *float64 `yaml:"fillOpacity"`
	StrokeWidth   *float64 `yaml:"strokeWidth"`
}

type themeFile struct {
	Themes map[string]themeEntry `yaml:"themes"`
}

// LoadThemes reads named styles from a YAML document of the form:
//
//	themes:
//	  highlight:
//	    strokeColor: "#FFFF00"
//	    fillColor: "#1C1C1C"
//	    fillOpacity: 0.8
//
// Colors are "#RRGGBB" strings. Fields left out keep DefaultStyle values.
func LoadThemes(r io.Reader) (map[string]Style, error) {
	var tf themeFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("mobject: decoding themes: %w", err)
	}

	styles := make(map[string]Style, len(tf.Themes))
	for name, e := range tf.Themes {
		s := DefaultStyle()
		if e.StrokeColor != nil {
			c, err := ParseColor(*e.StrokeColor)
			if err != nil {
				return nil, fmt.Errorf("mobject: theme %q: %w", name, err)
			}
			s.StrokeColor = c
		}
		if e.StrokeOpacity != nil {
			s.StrokeOpacity = *e.StrokeOpacity
		}
		if e.FillColor != nil {
			c, err := ParseColor(*e.FillColor)
			if err != nil {
				return nil, fmt.Errorf("mobject: theme %q: %w", name, err)
			}
			s.FillColor = c
		}
		if e.FillOpacity != nil {
			s.FillOpacity = *e.FillOpacity
		}
		if e.StrokeWidth != nil {
			s.StrokeWidth = *e.StrokeWidth
		}
		styles[name] = s
	}
	return styles, nil
}

// LoadThemeFile reads themes from a YAML file on disk.
func LoadThemeFile(path string) (map[string]Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mobject: opening theme file: %w", err)
	}
	defer f.Close()
	return LoadThemes(f)
}

// Options converts a Style into the option list that reproduces it, for
// applying a loaded theme to New or Update.
func (s Style) Options() []StyleOption {
	return []StyleOption{
		WithStrokeColor(s.StrokeColor),
		WithStrokeOpacity(s.StrokeOpacity),
		WithFillColor(s.FillColor),
		WithFillOpacity(s.FillOpacity),
		WithStrokeWidth(s.StrokeWidth),
	}
}
