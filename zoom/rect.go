package zoom

import "github.com/automoto/zoomlens/ease"

// Rect is a crop rectangle in source-pixel space, origin top-left.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside the rectangle,
// borders included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// SourceInfo describes the zoom target: its pixel size, any static
// crop already applied by the compositor, the pixel-density scale of
// the display it captures, and that display's origin in screen space.
// The host supplies a fresh snapshot whenever the target changes.
type SourceInfo struct {
	Width  int
	Height int

	CropLeft   int
	CropTop    int
	CropRight  int
	CropBottom int

	ScaleX float64
	ScaleY float64

	DisplayX int
	DisplayY int
}

// Valid reports whether the source has a usable size. A zero-sized
// source must never reach the crop math (division by zero).
func (s SourceInfo) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// TransformMouse maps a raw screen-space mouse position into
// source-pixel space: display origin first, then density scale, then
// the pre-existing static crop. The result may be outside the source
// bounds; TargetCrop clamps the rectangle, not the point.
func TransformMouse(mouseX, mouseY float64, src SourceInfo) (float64, float64) {
	x := (mouseX - float64(src.DisplayX)) * src.ScaleX
	y := (mouseY - float64(src.DisplayY)) * src.ScaleY
	return x - float64(src.CropLeft), y - float64(src.CropTop)
}

// TargetCrop computes the zoomed rectangle centered on the mouse,
// clamped so it never exceeds the source bounds even at edges and
// corners. Callers must check src.Valid() and p.ZoomFactor > 0 first.
func TargetCrop(mouseX, mouseY float64, p Profile, src SourceInfo) Rect {
	sx, sy := TransformMouse(mouseX, mouseY, src)

	w := float64(src.Width) / p.ZoomFactor
	h := float64(src.Height) / p.ZoomFactor

	return Rect{
		X:      ease.Clamp(sx-w/2, 0, float64(src.Width)-w),
		Y:      ease.Clamp(sy-h/2, 0, float64(src.Height)-h),
		Width:  w,
		Height: h,
	}
}
