// Package display models the host's monitor topology: each display's
// origin in the virtual screen, its logical size, and its pixel
// density scale. Enumeration itself is platform work done by the host;
// this package holds the snapshot, applies user overrides from config,
// and answers geometry questions for the zoom engine.
package display

import (
	"fmt"

	"github.com/automoto/zoomlens/config"
	"github.com/automoto/zoomlens/zoom"
)

// Info describes one display.
type Info struct {
	ID   string
	Name string

	// Origin in virtual screen coordinates (logical units).
	X int
	Y int

	// Logical size.
	Width  int
	Height int

	// Pixel density scale (physical pixels per logical unit).
	ScaleX float64
	ScaleY float64

	Primary bool
}

// Manager holds an immutable display snapshot. Replace the whole
// snapshot on topology changes rather than mutating entries.
type Manager struct {
	displays []Info
}

// NewManager builds a manager from an enumerated snapshot, applying
// config overrides keyed by display ID, then by name. Zero scales are
// normalized to 1.
func NewManager(displays []Info, overrides map[string]config.DisplayOverride) *Manager {
	out := make([]Info, len(displays))
	for i, d := range displays {
		if d.ScaleX == 0 {
			d.ScaleX = 1
		}
		if d.ScaleY == 0 {
			d.ScaleY = 1
		}

		o, ok := overrides[d.ID]
		if !ok {
			o, ok = overrides[d.Name]
		}
		if ok {
			if o.ScaleX > 0 {
				d.ScaleX = o.ScaleX
			}
			if o.ScaleY > 0 {
				d.ScaleY = o.ScaleY
			}
			if o.X != nil {
				d.X = *o.X
			}
			if o.Y != nil {
				d.Y = *o.Y
			}
		}
		out[i] = d
	}
	return &Manager{displays: out}
}

// Displays returns the snapshot.
func (m *Manager) Displays() []Info { return m.displays }

// Primary returns the primary display, or the first one, or a zero
// Info when nothing was enumerated.
func (m *Manager) Primary() Info {
	for _, d := range m.displays {
		if d.Primary {
			return d
		}
	}
	if len(m.displays) > 0 {
		return m.displays[0]
	}
	return Info{ScaleX: 1, ScaleY: 1}
}

// At returns the display containing the screen point, falling back to
// the primary display so an off-screen cursor still resolves.
func (m *Manager) At(x, y int) Info {
	for _, d := range m.displays {
		if x >= d.X && x < d.X+d.Width && y >= d.Y && y < d.Y+d.Height {
			return d
		}
	}
	return m.Primary()
}

// SourceInfoFor builds the zoom engine's source snapshot for a capture
// of the given display: source pixel size, the capture's static crop
// margins, and the display's scale and origin.
func SourceInfoFor(d Info, sourceWidth, sourceHeight int, cropLeft, cropTop, cropRight, cropBottom int) zoom.SourceInfo {
	return zoom.SourceInfo{
		Width:      sourceWidth,
		Height:     sourceHeight,
		CropLeft:   cropLeft,
		CropTop:    cropTop,
		CropRight:  cropRight,
		CropBottom: cropBottom,
		ScaleX:     d.ScaleX,
		ScaleY:     d.ScaleY,
		DisplayX:   d.X,
		DisplayY:   d.Y,
	}
}

func (d Info) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d scale %.2fx%.2f", d.Name, d.Width, d.Height, d.X, d.Y, d.ScaleX, d.ScaleY)
}
