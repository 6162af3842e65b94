// Package zoom implements the mouse-centered zoom engine: a per-frame
// state machine that decides which sub-region of a captured source
// should be visible, animating between the full frame and a rectangle
// centered on the cursor and optionally tracking the cursor while
// zoomed.
//
// The engine is single-threaded and synchronous. The host calls Update
// once per frame tick from one control goroutine; there are no
// callbacks, no goroutines and no locks inside. Every mutation returns
// a Result describing what the host has to apply.
package zoom

import (
	"math"

	"github.com/automoto/zoomlens/ease"
)

// State identifies the controller's position in the zoom lifecycle.
type State int

const (
	Idle State = iota
	ZoomingIn
	Zoomed
	Following
	ZoomingOut
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ZoomingIn:
		return "zooming_in"
	case Zoomed:
		return "zoomed"
	case Following:
		return "following"
	case ZoomingOut:
		return "zooming_out"
	default:
		return "unknown"
	}
}

// Result reports what a controller operation changed. Hosts apply
// Crop to the compositor when CropChanged, and react to transitions
// (overlay updates, stopping the tick source on return to Idle) when
// StateChanged.
type Result struct {
	Crop        Rect
	CropChanged bool

	State        State
	StateChanged bool
}

// Status is a point-in-time snapshot of the controller for the remote
// status surface.
type Status struct {
	State      string  `json:"state"`
	Following  bool    `json:"is_following"`
	Progress   float64 `json:"animation_progress"`
	Crop       Rect    `json:"crop"`
	ZoomFactor float64 `json:"zoom_factor"`
	Locked     bool    `json:"locked"`
}

type point struct {
	x, y float64
}

// Controller owns the zoom state machine. The zero value is not
// usable; construct with New and call SetSourceInfo before the first
// ToggleZoom or Update.
type Controller struct {
	profile Profile
	src     SourceInfo

	current  Rect
	target   Rect
	original Rect

	progress  float64
	following bool

	// Dead-zone bookkeeping, only meaningful while following.
	lockedCenter point
	hasLock      bool
	lastPos      point
	hasLastPos   bool
	lastDiff     point

	state State
}

func New(profile Profile) *Controller {
	return &Controller{profile: profile, state: Idle}
}

func (c *Controller) State() State     { return c.state }
func (c *Controller) Profile() Profile { return c.profile }
func (c *Controller) Crop() Rect       { return c.current }
func (c *Controller) Original() Rect   { return c.original }

// IsZoomed reports whether the controller is in any non-idle state.
func (c *Controller) IsZoomed() bool { return c.state != Idle }

// IsAnimating reports whether a zoom in/out animation is running.
func (c *Controller) IsAnimating() bool {
	return c.state == ZoomingIn || c.state == ZoomingOut
}

// IsFollowing reports whether mouse following is active.
func (c *Controller) IsFollowing() bool {
	return c.following && (c.state == Zoomed || c.state == Following)
}

// SetProfile swaps the active profile. Swapping mid-animation is safe;
// the animation continues with the new speed and easing, which may
// produce a visible discontinuity.
func (c *Controller) SetProfile(p Profile) { c.profile = p }

// SetSourceInfo replaces the source snapshot and resets the original
// and current rectangles to the full unzoomed frame. Zero scale
// factors are normalized to 1 so a partially filled snapshot still
// transforms sanely.
func (c *Controller) SetSourceInfo(src SourceInfo) Result {
	if src.ScaleX == 0 {
		src.ScaleX = 1
	}
	if src.ScaleY == 0 {
		src.ScaleY = 1
	}
	c.src = src
	c.original = Rect{Width: float64(src.Width), Height: float64(src.Height)}
	c.current = c.original
	return Result{Crop: c.current, CropChanged: true, State: c.state}
}

// SourceInfo returns the current source snapshot.
func (c *Controller) SourceInfo() SourceInfo { return c.src }

// ToggleZoom starts zooming in from Idle, or zooming out from
// Zoomed/Following. Mid-animation toggles are ignored, as is a zoom-in
// on an invalid source or non-positive zoom factor.
func (c *Controller) ToggleZoom(mouseX, mouseY float64) Result {
	switch c.state {
	case Idle:
		if !c.src.Valid() || c.profile.ZoomFactor <= 0 {
			return Result{Crop: c.current, State: c.state}
		}
		c.target = TargetCrop(mouseX, mouseY, c.profile, c.src)
		c.progress = 0
		c.hasLock = false
		c.hasLastPos = false
		return c.transition(ZoomingIn)

	case Zoomed, Following:
		c.target = c.original
		c.progress = 0
		c.following = false
		c.hasLock = false
		return c.transition(ZoomingOut)
	}
	return Result{Crop: c.current, State: c.state}
}

// ToggleFollow flips mouse following. Only meaningful while zoomed;
// from any other state it is a no-op.
func (c *Controller) ToggleFollow() Result {
	if c.state != Zoomed && c.state != Following {
		return Result{Crop: c.current, State: c.state}
	}
	c.following = !c.following
	if c.following {
		return c.transition(Following)
	}
	return c.transition(Zoomed)
}

// Update advances the state machine by one tick. dt is informational
// only: progress advances by the profile's fixed per-tick ZoomSpeed so
// animation duration is tied to the host's tick cadence, matching the
// compositor frame interval the tick source runs at.
func (c *Controller) Update(dt, mouseX, mouseY float64) Result {
	switch c.state {
	case ZoomingIn:
		return c.updateZoomIn(mouseX, mouseY)
	case ZoomingOut:
		return c.updateZoomOut()
	case Zoomed, Following:
		return c.updateFollowing(mouseX, mouseY)
	}
	return Result{Crop: c.current, State: c.state}
}

// Reset hard-cancels to Idle from any state and forces a crop
// notification so the host reapplies the full frame.
func (c *Controller) Reset() Result {
	prev := c.state
	c.state = Idle
	c.current = c.original
	c.progress = 0
	c.following = false
	c.hasLock = false
	c.hasLastPos = false
	return Result{
		Crop:         c.current,
		CropChanged:  true,
		State:        Idle,
		StateChanged: prev != Idle,
	}
}

// StatusSnapshot returns the remote-facing view of the controller.
func (c *Controller) StatusSnapshot() Status {
	return Status{
		State:      c.state.String(),
		Following:  c.following,
		Progress:   c.progress,
		Crop:       c.current,
		ZoomFactor: c.profile.ZoomFactor,
		Locked:     c.hasLock,
	}
}

func (c *Controller) transition(next State) Result {
	changed := next != c.state
	c.state = next
	return Result{Crop: c.current, State: next, StateChanged: changed}
}

func (c *Controller) updateZoomIn(mouseX, mouseY float64) Result {
	c.progress += c.profile.ZoomSpeed

	if c.progress >= 1 {
		// Clamp so the animation lands exactly on its endpoint.
		c.progress = 1
		c.current = c.target

		var res Result
		if c.profile.AutoFollow {
			c.following = true
			res = c.transition(Following)
			cx, cy := c.current.Center()
			c.lockedCenter = point{cx, cy}
			c.hasLock = true
		} else {
			res = c.transition(Zoomed)
		}
		res.CropChanged = true
		return res
	}

	// With auto-follow on, keep retargeting mid-flight so the
	// animation chases the live cursor.
	if c.profile.AutoFollow {
		c.target = TargetCrop(mouseX, mouseY, c.profile, c.src)
	}

	c.lerpCrop(c.original, c.target)
	return Result{Crop: c.current, CropChanged: true, State: c.state}
}

func (c *Controller) updateZoomOut() Result {
	c.progress += c.profile.ZoomSpeed

	if c.progress >= 1 {
		c.progress = 1
		c.current = c.original
		res := c.transition(Idle)
		res.CropChanged = true
		return res
	}

	c.lerpCrop(c.target, c.original)
	return Result{Crop: c.current, CropChanged: true, State: c.state}
}

// lerpCrop eases c.progress and interpolates all four fields of the
// current rectangle between from and to with the same eased t, so
// position and size complete in lockstep.
func (c *Controller) lerpCrop(from, to Rect) {
	t := ease.Get(c.profile.Easing)(c.progress)
	c.current.X = ease.Lerp(from.X, to.X, t)
	c.current.Y = ease.Lerp(from.Y, to.Y, t)
	c.current.Width = ease.Lerp(from.Width, to.Width, t)
	c.current.Height = ease.Lerp(from.Height, to.Height, t)
}

func (c *Controller) updateFollowing(mouseX, mouseY float64) Result {
	unchanged := Result{Crop: c.current, State: c.state}
	if !c.following {
		return unchanged
	}

	target := TargetCrop(mouseX, mouseY, c.profile, c.src)
	sourceX, sourceY := TransformMouse(mouseX, mouseY, c.src)

	// Cursor left the zoomed view: freeze unless configured to chase
	// outside the bounds.
	if !c.profile.FollowOutsideBounds && !target.Contains(sourceX, sourceY) {
		return unchanged
	}

	if c.hasLock {
		diffX := sourceX - c.lockedCenter.x
		diffY := sourceY - c.lockedCenter.y

		borderX := target.Width * (0.5 - c.profile.FollowBorder*0.01)
		borderY := target.Height * (0.5 - c.profile.FollowBorder*0.01)

		if math.Abs(diffX) > borderX || math.Abs(diffY) > borderY {
			// Cursor exited the dead-zone; remember the exit direction
			// for reversal detection.
			c.hasLock = false
			c.lastPos = point{sourceX, sourceY}
			c.hasLastPos = true
			c.lastDiff = point{diffX, diffY}
		}
	}

	if c.hasLock {
		return unchanged
	}

	changed := false
	if math.Abs(target.X-c.current.X) > 0.5 || math.Abs(target.Y-c.current.Y) > 0.5 {
		c.current.X = ease.Lerp(c.current.X, target.X, c.profile.FollowSpeed)
		c.current.Y = ease.Lerp(c.current.Y, target.Y, c.profile.FollowSpeed)
		changed = true
	}

	if c.hasLastPos {
		c.relock(target, sourceX, sourceY)
	}
	if c.hasLastPos {
		c.lastPos = point{sourceX, sourceY}
	}

	return Result{Crop: c.current, CropChanged: changed, State: c.state}
}

// relock freezes following again once the crop is close enough to its
// target, or as soon as cursor movement reverses on the dominant axis
// of the dead-zone exit when auto-lock-on-reverse is enabled.
func (c *Controller) relock(target Rect, sourceX, sourceY float64) {
	shouldLock := false
	if c.profile.AutoLockOnReverse {
		moveX := sourceX - c.lastPos.x
		moveY := sourceY - c.lastPos.y
		if math.Abs(c.lastDiff.x) > math.Abs(c.lastDiff.y) {
			shouldLock = (moveX < 0 && c.lastDiff.x > 0) || (moveX > 0 && c.lastDiff.x < 0)
		} else {
			shouldLock = (moveY < 0 && c.lastDiff.y > 0) || (moveY > 0 && c.lastDiff.y < 0)
		}
	}

	sensitivity := c.profile.FollowSafezoneSensitivity
	diffX := math.Abs(c.current.X - target.X)
	diffY := math.Abs(c.current.Y - target.Y)

	if shouldLock || (diffX <= sensitivity && diffY <= sensitivity) {
		cx, cy := c.current.Center()
		c.lockedCenter = point{cx, cy}
		c.hasLock = true
		c.hasLastPos = false
	}
}
