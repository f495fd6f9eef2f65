package anim

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Curve maps linear progress in [0,1] to eased progress.
type Curve func(t float64) float64

// Linear returns t clamped to [0,1].
func Linear(t float64) float64 { return clampUnit(t) }

// Standard cubic-bezier curves, equivalent to their CSS namesakes.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// Spring is a critically damped spring sampled into a curve.
var Spring = SpringCurve(8, 1)

var curves = map[string]Curve{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"spring":      Spring,
}

// CurveByName returns a named curve. An empty name selects ease-in-out.
func CurveByName(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EaseInOut, nil
	}
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown animation curve %q (available: %s)", name, strings.Join(CurveNames(), ", "))
	}
	return c, nil
}

// CurveNames lists the names accepted by CurveByName.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CubicBezier returns an easing function with control points (x1,y1) and
// (x2,y2), the curve running from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton failed to converge; bisect.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

const springSamples = 120

// SpringCurve samples a harmonica spring moving from 0 to 1 over one
// normalized second. Lower damping ratios overshoot.
func SpringCurve(angularFrequency, dampingRatio float64) Curve {
	spring := harmonica.NewSpring(1.0/springSamples, angularFrequency, dampingRatio)
	table := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * springSamples
		i := int(f)
		return table[i] + (table[i+1]-table[i])*(f-float64(i))
	}
}
