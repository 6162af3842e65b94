// Package ease provides normalized easing functions for zoom animations.
//
// Every function maps an animation progress t in [0, 1] to an eased
// progress, with exact endpoints (f(0) == 0 and f(1) == 1). Back,
// elastic and bounce variants may overshoot outside [0, 1] for
// intermediate t. Out-of-range t is not clamped; the curve simply
// extrapolates.
package ease

import "math"

// Func maps animation progress to eased progress.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

func InQuad(t float64) float64 { return t * t }

func OutQuad(t float64) float64 { return t * (2 - t) }

func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func InCubic(t float64) float64 { return t * t * t }

func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func InQuart(t float64) float64 { return t * t * t * t }

func OutQuart(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func InQuint(t float64) float64 { return t * t * t * t * t }

func OutQuint(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}

func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

func InSine(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

func OutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

func InOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

func InCirc(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func OutCirc(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func InOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// Back easing overshoot constants.
const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1
)

func InBack(t float64) float64 { return backC3*t*t*t - backC1*t*t }

func OutBack(t float64) float64 {
	return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
}

func InOutBack(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2
}

// Elastic period constants: 2pi/3 for the two-term forms, 2pi/4.5 for
// the in-out form.
const (
	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
)

func InElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
}

func OutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
}

func InOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
}

// OutBounce is the four-segment bounce curve the other bounce variants
// build on.
func OutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func InBounce(t float64) float64 { return 1 - OutBounce(1-t) }

func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}

// functions maps profile easing names to their implementations. The
// short names (ease_in, ease_out, ease_in_out, elastic, bounce) keep
// the aliases existing configs rely on; note ease_in_out resolves to
// cubic while ease_in/ease_out resolve to quad.
var functions = map[string]Func{
	"linear": Linear,

	"ease_in":          InQuad,
	"ease_out":         OutQuad,
	"ease_in_out":      InOutCubic,
	"ease_in_quad":     InQuad,
	"ease_out_quad":    OutQuad,
	"ease_in_out_quad": InOutQuad,

	"ease_in_cubic":     InCubic,
	"ease_out_cubic":    OutCubic,
	"ease_in_out_cubic": InOutCubic,

	"ease_in_quart":     InQuart,
	"ease_out_quart":    OutQuart,
	"ease_in_out_quart": InOutQuart,

	"ease_in_quint":     InQuint,
	"ease_out_quint":    OutQuint,
	"ease_in_out_quint": InOutQuint,

	"ease_in_sine":     InSine,
	"ease_out_sine":    OutSine,
	"ease_in_out_sine": InOutSine,

	"ease_in_expo":     InExpo,
	"ease_out_expo":    OutExpo,
	"ease_in_out_expo": InOutExpo,

	"ease_in_circ":     InCirc,
	"ease_out_circ":    OutCirc,
	"ease_in_out_circ": InOutCirc,

	"ease_in_back":     InBack,
	"ease_out_back":    OutBack,
	"ease_in_out_back": InOutBack,

	"elastic":             OutElastic,
	"ease_in_elastic":     InElastic,
	"ease_out_elastic":    OutElastic,
	"ease_in_out_elastic": InOutElastic,

	"bounce":             OutBounce,
	"bounce_in":          InBounce,
	"bounce_out":         OutBounce,
	"ease_in_out_bounce": InOutBounce,
}

// Get returns the easing function registered under name. Unknown names
// fall back to Linear so a typoed profile still animates.
func Get(name string) Func {
	if f, ok := functions[name]; ok {
		return f
	}
	return Linear
}

// Names returns the registered easing names, for config validation and
// UI listings.
func Names() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	return names
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
