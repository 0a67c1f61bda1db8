package mobject

import "testing"

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0xFF8000).RGB()
	if r != 1 {
		t.Errorf("r = %v, want 1", r)
	}
	if g < 0.5 || g > 0.51 {
		t.Errorf("g = %v, want ~0.502", g)
	}
	if b != 0 {
		t.Errorf("b = %v, want 0", b)
	}
}

func TestColorString(t *testing.T) {
	if got := Color(0x00ABCD).String(); got != "#00ABCD" {
		t.Errorf("String = %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FFFFFF", White, false},
		{"000000", Black, false},
		{" #123abc ", 0x123ABC, false},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorFloats4(t *testing.T) {
	q := White.Floats4(0.5)
	if q != [4]float32{1, 1, 1, 0.5} {
		t.Errorf("Floats4 = %v", q)
	}
}
