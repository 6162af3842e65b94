package zoom

// Profile is a named bundle of zoom and follow tuning. Profiles are
// immutable values: swapping behavior at runtime means constructing a
// new Profile and handing it to Controller.SetProfile between ticks.
type Profile struct {
	Name string `json:"-"`

	// ZoomFactor is the magnification applied while zoomed (>1).
	ZoomFactor float64 `json:"zoom_factor"`
	// ZoomSpeed is the animation progress added per update tick,
	// effectively 1/duration-in-ticks.
	ZoomSpeed float64 `json:"zoom_speed"`
	// FollowSpeed is the exponential interpolation coefficient applied
	// per tick while following (0-1).
	FollowSpeed float64 `json:"follow_speed"`
	// FollowBorder is the dead-zone size as a percentage of the zoomed
	// rectangle's half extent.
	FollowBorder float64 `json:"follow_border"`
	// FollowSafezoneSensitivity is the remaining distance in pixels
	// below which following re-locks.
	FollowSafezoneSensitivity float64 `json:"follow_safezone_sensitivity"`
	// Easing names the easing curve for zoom in/out animations.
	Easing string `json:"easing"`

	AutoFollow          bool `json:"auto_follow"`
	FollowOutsideBounds bool `json:"follow_outside_bounds"`
	AutoLockOnReverse   bool `json:"auto_lock_on_reverse"`
}

// DefaultProfile returns the standard tuning used when no config file
// provides one.
func DefaultProfile() Profile {
	return Profile{
		Name:                      "standard",
		ZoomFactor:                2.0,
		ZoomSpeed:                 0.06,
		FollowSpeed:               0.25,
		FollowBorder:              8,
		FollowSafezoneSensitivity: 4,
		Easing:                    "ease_in_out",
		AutoFollow:                true,
	}
}
