package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	gwease "github.com/tanema/gween/ease"

	"github.com/automoto/zoomlens/fonts"
	"github.com/automoto/zoomlens/zoom"
)

const (
	overlayMargin   = 10
	overlayPadding  = 6
	overlayLineH    = 18
	minimapWidth    = 160
	borderFlashTime = 1.2
)

var stateColors = map[zoom.State]color.RGBA{
	zoom.Idle:       {120, 120, 120, 255},
	zoom.ZoomingIn:  {230, 180, 40, 255},
	zoom.Zoomed:     {40, 170, 220, 255},
	zoom.Following:  {40, 220, 90, 255},
	zoom.ZoomingOut: {230, 120, 40, 255},
}

// Overlay draws the on-screen indicator: a status chip, a minimap of
// the crop within the source, and a border flash on state changes.
type Overlay struct {
	Enabled bool

	state      zoom.State
	flash      *gween.Tween
	flashAlpha float32
}

func NewOverlay(enabled bool) *Overlay {
	return &Overlay{Enabled: enabled}
}

// NoteState records a transition and restarts the border flash.
func (o *Overlay) NoteState(s zoom.State) {
	o.state = s
	o.flash = gween.New(1, 0, borderFlashTime, gwease.OutQuad)
	o.flashAlpha = 1
}

func (o *Overlay) Update(dt float64) {
	if o.flash == nil {
		return
	}
	alpha, done := o.flash.Update(float32(dt))
	o.flashAlpha = alpha
	if done {
		o.flash = nil
		o.flashAlpha = 0
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, st zoom.Status, src zoom.SourceInfo, profileName string) {
	if !o.Enabled {
		return
	}

	o.drawFlash(screen)
	o.drawChip(screen, st, profileName)
	o.drawMinimap(screen, st, src)
}

func (o *Overlay) drawFlash(screen *ebiten.Image) {
	if o.flashAlpha <= 0 {
		return
	}
	clr := stateColors[o.state]
	clr.A = uint8(o.flashAlpha * 200)
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.StrokeRect(screen, 2, 2, w-4, h-4, 4, clr, false)
}

func (o *Overlay) drawChip(screen *ebiten.Image, st zoom.Status, profileName string) {
	lines := []string{
		fmt.Sprintf("state: %s", st.State),
		fmt.Sprintf("profile: %s", profileName),
		fmt.Sprintf("crop: %.0f,%.0f %.0fx%.0f", st.Crop.X, st.Crop.Y, st.Crop.Width, st.Crop.Height),
	}
	if st.Following {
		if st.Locked {
			lines = append(lines, "follow: locked")
		} else {
			lines = append(lines, "follow: tracking")
		}
	}

	chipW := 200
	chipH := overlayPadding*2 + overlayLineH*len(lines)
	vector.DrawFilledRect(screen,
		overlayMargin, overlayMargin,
		float32(chipW), float32(chipH),
		color.RGBA{20, 20, 20, 200}, false)
	vector.DrawFilledRect(screen,
		overlayMargin, overlayMargin,
		4, float32(chipH),
		stateColors[o.state], false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		y := overlayMargin + overlayPadding + overlayLineH*(i+1) - 5
		text.Draw(screen, line, face, overlayMargin+overlayPadding+6, y, color.White)
	}
}

func (o *Overlay) drawMinimap(screen *ebiten.Image, st zoom.Status, src zoom.SourceInfo) {
	if src.Width <= 0 || src.Height <= 0 {
		return
	}

	scale := float64(minimapWidth) / float64(src.Width)
	mapW := float32(minimapWidth)
	mapH := float32(float64(src.Height) * scale)

	x0 := float32(screen.Bounds().Dx()) - mapW - overlayMargin
	y0 := float32(screen.Bounds().Dy()) - mapH - overlayMargin

	vector.DrawFilledRect(screen, x0, y0, mapW, mapH, color.RGBA{20, 20, 20, 180}, false)
	vector.StrokeRect(screen, x0, y0, mapW, mapH, 1, color.RGBA{120, 120, 120, 255}, false)

	crop := st.Crop
	vector.StrokeRect(screen,
		x0+float32(crop.X*scale), y0+float32(crop.Y*scale),
		float32(crop.Width*scale), float32(crop.Height*scale),
		1, stateColors[o.state], false)
}
