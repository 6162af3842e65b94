package zoom

import "testing"

func testSource() SourceInfo {
	return SourceInfo{Width: 1920, Height: 1080, ScaleX: 1, ScaleY: 1}
}

// newZoomed drives a controller into the Following state in a single
// tick using an instant animation.
func newZoomed(t *testing.T, p Profile) *Controller {
	t.Helper()
	p.ZoomSpeed = 1.0
	p.AutoFollow = true
	c := New(p)
	c.SetSourceInfo(testSource())
	c.ToggleZoom(960, 540)
	res := c.Update(1.0/60, 960, 540)
	if res.State != Following {
		t.Fatalf("setup: state = %v, want following", res.State)
	}
	return c
}

func TestInitialState(t *testing.T) {
	c := New(DefaultProfile())
	if c.State() != Idle {
		t.Errorf("new controller state = %v, want idle", c.State())
	}
	if c.IsZoomed() || c.IsAnimating() || c.IsFollowing() {
		t.Error("new controller should not report zoomed/animating/following")
	}
}

func TestToggleZoomRequiresValidSource(t *testing.T) {
	c := New(DefaultProfile())
	res := c.ToggleZoom(100, 100)
	if res.StateChanged || c.State() != Idle {
		t.Error("toggle on zero-sized source should be a no-op")
	}

	p := DefaultProfile()
	p.ZoomFactor = 0
	c = New(p)
	c.SetSourceInfo(testSource())
	res = c.ToggleZoom(100, 100)
	if res.StateChanged || c.State() != Idle {
		t.Error("toggle with non-positive zoom factor should be a no-op")
	}
}

func TestSetSourceInfoResetsCrop(t *testing.T) {
	c := New(DefaultProfile())
	res := c.SetSourceInfo(testSource())
	if !res.CropChanged {
		t.Error("SetSourceInfo should report a crop change")
	}
	want := Rect{Width: 1920, Height: 1080}
	if c.Crop() != want || c.Original() != want {
		t.Errorf("crop = %+v, original = %+v, want full frame %+v", c.Crop(), c.Original(), want)
	}
}

func TestSetSourceInfoNormalizesScale(t *testing.T) {
	c := New(DefaultProfile())
	c.SetSourceInfo(SourceInfo{Width: 100, Height: 100})
	if src := c.SourceInfo(); src.ScaleX != 1 || src.ScaleY != 1 {
		t.Errorf("zero scales should normalize to 1, got %v/%v", src.ScaleX, src.ScaleY)
	}
}

func TestLinearZoomInLandsExactly(t *testing.T) {
	p := DefaultProfile()
	p.ZoomSpeed = 0.5
	p.Easing = "linear"
	p.AutoFollow = false

	c := New(p)
	c.SetSourceInfo(testSource())

	res := c.ToggleZoom(960, 540)
	if !res.StateChanged || res.State != ZoomingIn {
		t.Fatalf("toggle result = %+v, want transition to zooming_in", res)
	}

	// Tick 1: progress 0.5, halfway between full frame and target.
	res = c.Update(1.0/60, 960, 540)
	if !res.CropChanged {
		t.Fatal("mid-animation tick should change the crop")
	}
	want := Rect{X: 240, Y: 135, Width: 1440, Height: 810}
	if res.Crop != want {
		t.Errorf("tick 1 crop = %+v, want %+v", res.Crop, want)
	}

	// Tick 2: progress reaches 1.0 exactly and lands on the target.
	res = c.Update(1.0/60, 960, 540)
	target := Rect{X: 480, Y: 270, Width: 960, Height: 540}
	if res.Crop != target {
		t.Errorf("tick 2 crop = %+v, want exact target %+v", res.Crop, target)
	}
	if !res.StateChanged || res.State != Zoomed {
		t.Errorf("tick 2 result = %+v, want transition to zoomed", res)
	}
}

func TestZoomOutRoundTrip(t *testing.T) {
	p := DefaultProfile()
	p.ZoomSpeed = 0.25
	p.Easing = "linear"
	p.AutoFollow = false

	c := New(p)
	c.SetSourceInfo(testSource())
	c.ToggleZoom(960, 540)
	for c.State() == ZoomingIn {
		c.Update(1.0/60, 960, 540)
	}

	res := c.ToggleZoom(960, 540)
	if res.State != ZoomingOut {
		t.Fatalf("second toggle state = %v, want zooming_out", res.State)
	}

	ticks := 0
	for c.State() == ZoomingOut {
		res = c.Update(1.0/60, 960, 540)
		ticks++
		if ticks > 10 {
			t.Fatal("zoom out never finished")
		}
	}
	if res.State != Idle {
		t.Errorf("final state = %v, want idle", res.State)
	}
	if c.Crop() != c.Original() {
		t.Errorf("crop = %+v, want exact original %+v", c.Crop(), c.Original())
	}
}

func TestToggleZoomIgnoredMidAnimation(t *testing.T) {
	p := DefaultProfile()
	p.AutoFollow = false
	c := New(p)
	c.SetSourceInfo(testSource())
	c.ToggleZoom(960, 540)
	c.Update(1.0/60, 960, 540)

	res := c.ToggleZoom(960, 540)
	if res.StateChanged || c.State() != ZoomingIn {
		t.Errorf("toggle mid-animation should be ignored, state = %v", c.State())
	}
}

func TestAutoFollowRetargetsMidFlight(t *testing.T) {
	p := DefaultProfile()
	p.ZoomSpeed = 0.1
	p.AutoFollow = true
	c := New(p)
	c.SetSourceInfo(testSource())

	c.ToggleZoom(0, 0)
	c.Update(1.0/60, 0, 0)

	// Move the cursor; the in-flight animation should chase it.
	c.Update(1.0/60, 1920, 1080)
	wantTarget := Rect{X: 960, Y: 540, Width: 960, Height: 540}
	if c.target != wantTarget {
		t.Errorf("target = %+v, want retargeted %+v", c.target, wantTarget)
	}
}

func TestAutoFollowLocksOnArrival(t *testing.T) {
	c := newZoomed(t, DefaultProfile())
	st := c.StatusSnapshot()
	if !st.Locked {
		t.Error("arriving with auto-follow should set the locked center")
	}
	if !c.IsFollowing() {
		t.Error("controller should report following")
	}
}

func TestToggleFollowOnlyWhileZoomed(t *testing.T) {
	c := New(DefaultProfile())
	c.SetSourceInfo(testSource())

	res := c.ToggleFollow()
	if res.StateChanged || c.State() != Idle {
		t.Error("toggle follow from idle should be a no-op")
	}

	c = newZoomed(t, DefaultProfile())
	res = c.ToggleFollow()
	if res.State != Zoomed || c.IsFollowing() {
		t.Errorf("toggle follow from following = %v, want zoomed", res.State)
	}
	res = c.ToggleFollow()
	if res.State != Following || !c.IsFollowing() {
		t.Errorf("toggle follow from zoomed = %v, want following", res.State)
	}
}

func TestFollowSkipsWhenCursorOutsideView(t *testing.T) {
	p := DefaultProfile()
	p.FollowOutsideBounds = false
	c := newZoomed(t, p)
	before := c.Crop()

	res := c.Update(1.0/60, -500, 540)
	if res.CropChanged {
		t.Error("cursor outside the zoomed view should produce no movement")
	}
	if c.Crop() != before {
		t.Errorf("crop moved from %+v to %+v", before, c.Crop())
	}
}

func TestFollowDeadZoneFreezesSmallMoves(t *testing.T) {
	c := newZoomed(t, DefaultProfile())
	before := c.Crop()

	// border_x = 960 * (0.5 - 0.08) = 403.2; a 140 px move stays inside.
	res := c.Update(1.0/60, 1100, 540)
	if res.CropChanged || c.Crop() != before {
		t.Error("movement inside the dead-zone should not move the crop")
	}
	if !c.StatusSnapshot().Locked {
		t.Error("lock should survive movement inside the dead-zone")
	}
}

func TestFollowUnlocksAndChases(t *testing.T) {
	c := newZoomed(t, DefaultProfile())

	// 540 px to the right of the locked center exits the dead-zone.
	res := c.Update(1.0/60, 1500, 540)
	if !res.CropChanged {
		t.Fatal("dead-zone exit should start chasing the cursor")
	}
	if c.StatusSnapshot().Locked {
		t.Error("lock should clear on dead-zone exit")
	}
	// One exponential step toward target x=960 at speed 0.25.
	if got := c.Crop().X; got != 600 {
		t.Errorf("crop x = %v, want 600 after one follow step", got)
	}
	// Height and width never change while following.
	if c.Crop().Width != 960 || c.Crop().Height != 540 {
		t.Errorf("follow changed crop size: %+v", c.Crop())
	}
}

func TestFollowRelocksWithinSensitivity(t *testing.T) {
	p := DefaultProfile()
	p.FollowSpeed = 1.0 // snap to target in one step
	c := newZoomed(t, p)

	res := c.Update(1.0/60, 1500, 540)
	if !res.CropChanged {
		t.Fatal("expected movement on dead-zone exit")
	}
	if got := c.Crop().X; got != 960 {
		t.Errorf("crop x = %v, want snapped to 960", got)
	}
	if !c.StatusSnapshot().Locked {
		t.Error("landing within sensitivity should re-lock")
	}
}

func TestFollowRelocksOnReversal(t *testing.T) {
	p := DefaultProfile()
	p.AutoLockOnReverse = true
	c := newZoomed(t, p)

	c.Update(1.0/60, 1500, 540) // exit dead-zone moving right
	if c.StatusSnapshot().Locked {
		t.Fatal("should be unlocked and chasing")
	}

	c.Update(1.0/60, 1490, 540) // reverse on the dominant axis
	if !c.StatusSnapshot().Locked {
		t.Error("direction reversal should re-lock")
	}
}

func TestResetIdempotent(t *testing.T) {
	c := newZoomed(t, DefaultProfile())

	res := c.Reset()
	if !res.CropChanged || !res.StateChanged || res.State != Idle {
		t.Errorf("reset result = %+v, want forced crop change to idle", res)
	}
	if c.Crop() != c.Original() {
		t.Errorf("crop = %+v, want original %+v", c.Crop(), c.Original())
	}

	res = c.Reset()
	if res.StateChanged {
		t.Error("second reset should not report a state change")
	}
	if !res.CropChanged {
		t.Error("reset always forces a crop notification")
	}
	if c.State() != Idle || c.Crop() != c.Original() {
		t.Error("second reset should leave state unchanged")
	}
}

func TestUpdateIdleIsNoop(t *testing.T) {
	c := New(DefaultProfile())
	c.SetSourceInfo(testSource())
	res := c.Update(1.0/60, 500, 500)
	if res.CropChanged || res.StateChanged {
		t.Errorf("idle update = %+v, want no change", res)
	}
}

func TestSetProfileMidAnimation(t *testing.T) {
	p := DefaultProfile()
	p.ZoomSpeed = 0.1
	c := New(p)
	c.SetSourceInfo(testSource())
	c.ToggleZoom(960, 540)
	c.Update(1.0/60, 960, 540)

	quick := DefaultProfile()
	quick.Name = "quick"
	quick.ZoomSpeed = 1.0
	quick.Easing = "bounce"
	c.SetProfile(quick)

	res := c.Update(1.0/60, 960, 540)
	if res.State != Following && res.State != Zoomed {
		t.Errorf("state after profile swap = %v, want animation completed", res.State)
	}
	if c.Profile().Name != "quick" {
		t.Errorf("profile = %q, want quick", c.Profile().Name)
	}
}

func TestStatusSnapshot(t *testing.T) {
	c := newZoomed(t, DefaultProfile())
	st := c.StatusSnapshot()
	if st.State != "following" {
		t.Errorf("status state = %q, want following", st.State)
	}
	if st.ZoomFactor != 2.0 {
		t.Errorf("status zoom factor = %v, want 2.0", st.ZoomFactor)
	}
	if st.Crop != (Rect{X: 480, Y: 270, Width: 960, Height: 540}) {
		t.Errorf("status crop = %+v", st.Crop)
	}
}
