package programs

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// squareComplex is (x² - y², 2xy), complex squaring over a vec2.
func squareComplex(z mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{z[0]*z[0] - z[1]*z[1], 2 * z[0] * z[1]}
}

// escapeIntensity iterates z ← z² + c from z = 0 and returns the normalized
// iteration count at which |z| exceeded 2, or 1 if c never escaped within
// the iteration budget.
func escapeIntensity(c mgl32.Vec2, iterations int32) float32 {
	z := mgl32.Vec2{}
	for i := int32(0); i < iterations; i++ {
		z = squareComplex(z).Add(c)
		if z.Len() > 2 {
			return float32(i) / float32(iterations)
		}
	}
	return 1
}

// smoothedIntensity is the log-smoothed variant: the escape radius is raised
// to 64 and the iteration count corrected by log₁₆|z|, which interpolates
// between iteration bands and removes most visible contouring. Points that
// never escape map to 0 so the set interior renders as background.
func smoothedIntensity(c mgl32.Vec2, iterations int32) float32 {
	z := mgl32.Vec2{}
	for i := int32(0); i < iterations; i++ {
		z = squareComplex(z).Add(c)
		if z.Len() > 64 {
			smoothed := float64(i) - math.Log(float64(z.Len()))/math.Log(16)
			return float32(smoothed) / float32(iterations)
		}
	}
	return 0
}

// hsv2rgb converts (h, s, v), all in [0,1], to RGB. Same construction as the
// fragment shaders' version.
func hsv2rgb(c mgl32.Vec3) mgl32.Vec3 {
	const kx, ky, kz, kw = 1.0, 2.0 / 3.0, 1.0 / 3.0, 3.0
	p := mgl32.Vec3{
		fabs(fract(c[0]+kx)*6 - kw),
		fabs(fract(c[0]+ky)*6 - kw),
		fabs(fract(c[0]+kz)*6 - kw),
	}
	return mgl32.Vec3{
		c[2] * mix(kx, clamp(p[0]-kx, 0, 1), c[1]),
		c[2] * mix(kx, clamp(p[1]-kx, 0, 1), c[1]),
		c[2] * mix(kx, clamp(p[2]-kx, 0, 1), c[1]),
	}
}

func fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

func fabs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
