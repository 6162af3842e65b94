package display

import (
	"testing"

	"github.com/automoto/zoomlens/config"
)

func twoDisplays() []Info {
	return []Info{
		{ID: "d0", Name: "Built-in", X: 0, Y: 0, Width: 1920, Height: 1080, ScaleX: 2, ScaleY: 2, Primary: true},
		{ID: "d1", Name: "External", X: 1920, Y: 0, Width: 2560, Height: 1440, ScaleX: 1, ScaleY: 1},
	}
}

func TestManagerNormalizesZeroScale(t *testing.T) {
	m := NewManager([]Info{{ID: "d0", Width: 800, Height: 600}}, nil)
	d := m.Primary()
	if d.ScaleX != 1 || d.ScaleY != 1 {
		t.Errorf("scale = %v/%v, want 1/1", d.ScaleX, d.ScaleY)
	}
}

func TestManagerAppliesOverrides(t *testing.T) {
	x := 100
	overrides := map[string]config.DisplayOverride{
		"d1":       {ScaleX: 1.5, ScaleY: 1.5},
		"Built-in": {X: &x},
	}
	m := NewManager(twoDisplays(), overrides)

	ext := m.Displays()[1]
	if ext.ScaleX != 1.5 || ext.ScaleY != 1.5 {
		t.Errorf("override by ID not applied: %+v", ext)
	}

	// Overrides match by ID first, then by name.
	builtin := m.Displays()[0]
	if builtin.X != 100 {
		t.Errorf("override by name not applied: %+v", builtin)
	}
	if builtin.ScaleX != 2 {
		t.Errorf("unrelated field changed: %+v", builtin)
	}
}

func TestAt(t *testing.T) {
	m := NewManager(twoDisplays(), nil)

	if d := m.At(500, 500); d.ID != "d0" {
		t.Errorf("At(500,500) = %s, want d0", d.ID)
	}
	if d := m.At(2000, 500); d.ID != "d1" {
		t.Errorf("At(2000,500) = %s, want d1", d.ID)
	}
	// Off-screen points fall back to the primary display.
	if d := m.At(-5000, -5000); d.ID != "d0" {
		t.Errorf("At(off-screen) = %s, want primary d0", d.ID)
	}
}

func TestPrimaryFallbacks(t *testing.T) {
	displays := twoDisplays()
	displays[0].Primary = false
	m := NewManager(displays, nil)
	if d := m.Primary(); d.ID != "d0" {
		t.Errorf("Primary() = %s, want first display", d.ID)
	}

	empty := NewManager(nil, nil)
	if d := empty.Primary(); d.ScaleX != 1 || d.ScaleY != 1 {
		t.Errorf("empty Primary() = %+v, want unit scale zero Info", d)
	}
}

func TestSourceInfoFor(t *testing.T) {
	d := Info{ID: "d1", X: 1920, Y: 0, Width: 2560, Height: 1440, ScaleX: 1.5, ScaleY: 1.5}
	src := SourceInfoFor(d, 3840, 2160, 10, 20, 30, 40)

	if src.Width != 3840 || src.Height != 2160 {
		t.Errorf("size = %dx%d", src.Width, src.Height)
	}
	if src.DisplayX != 1920 || src.DisplayY != 0 {
		t.Errorf("origin = %d,%d", src.DisplayX, src.DisplayY)
	}
	if src.ScaleX != 1.5 || src.ScaleY != 1.5 {
		t.Errorf("scale = %v/%v", src.ScaleX, src.ScaleY)
	}
	if src.CropLeft != 10 || src.CropTop != 20 || src.CropRight != 30 || src.CropBottom != 40 {
		t.Errorf("crop = %d/%d/%d/%d", src.CropLeft, src.CropTop, src.CropRight, src.CropBottom)
	}
}
