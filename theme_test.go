package mobject

import (
	"strings"
	"testing"
)

const themeYAML = `
themes:
  highlight:
    strokeColor: "#FFFF00"
    fillColor: "#1C1C1C"
    fillOpacity: 0.8
  ghost:
    strokeOpacity: 0.2
    fillOpacity: 0
`

func TestLoadThemes(t *testing.T) {
	styles, err := LoadThemes(strings.NewReader(themeYAML))
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if len(styles) != 2 {
		t.Fatalf("themes = %d, want 2", len(styles))
	}

	hl := styles["highlight"]
	if hl.StrokeColor != 0xFFFF00 {
		t.Errorf("strokeColor = %v", hl.StrokeColor)
	}
	if hl.FillColor != 0x1C1C1C || hl.FillOpacity != 0.8 {
		t.Errorf("fill = %v/%v", hl.FillColor, hl.FillOpacity)
	}
	// Unset fields keep defaults.
	if hl.StrokeWidth != 4 || hl.StrokeOpacity != 1 {
		t.Errorf("defaults not kept: width %v opacity %v", hl.StrokeWidth, hl.StrokeOpacity)
	}

	ghost := styles["ghost"]
	if ghost.StrokeOpacity != 0.2 || ghost.FillOpacity != 0 {
		t.Errorf("ghost opacities = %v/%v", ghost.StrokeOpacity, ghost.FillOpacity)
	}
	if ghost.StrokeColor != White {
		t.Errorf("ghost strokeColor = %v, want default white", ghost.StrokeColor)
	}
}

func TestLoadThemesBadColor(t *testing.T) {
	_, err := LoadThemes(strings.NewReader("themes:\n  bad:\n    fillColor: \"#XYZ\"\n"))
	if err == nil {
		t.Fatal("want error for invalid color")
	}
}

func TestLoadThemesBadYAML(t *testing.T) {
	_, err := LoadThemes(strings.NewReader(":\t:::not yaml"))
	if err == nil {
		t.Fatal("want error for invalid document")
	}
}
