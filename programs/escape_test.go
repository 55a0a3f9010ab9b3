package programs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func defaultUniforms() Uniforms {
	var u Uniforms
	u.DefaultValues()
	return u
}

func TestEscapeIntensityRangeAndDeterminism(t *testing.T) {
	u := defaultUniforms()

	// Sweep the disk |c| <= 2; every point must classify deterministically
	// with a normalized intensity.
	for x := float32(-2); x <= 2; x += 0.25 {
		for y := float32(-2); y <= 2; y += 0.25 {
			c := mgl32.Vec2{x, y}
			if c.Len() > 2 {
				continue
			}
			got := escapeIntensity(c, u.Iterations)
			if got < 0 || got > 1 {
				t.Fatalf("escapeIntensity(%v) = %v; want in [0,1]", c, got)
			}
			if again := escapeIntensity(c, u.Iterations); again != got {
				t.Fatalf("escapeIntensity(%v) = %v, then %v; want deterministic", c, got, again)
			}
		}
	}
}

func TestOriginNeverEscapes(t *testing.T) {
	u := defaultUniforms()
	c := mgl32.Vec2{0, 0}

	if got := escapeIntensity(c, u.Iterations); got != 1 {
		t.Fatalf("escapeIntensity(0) = %v; want 1 (in-set)", got)
	}
	if got := smoothedIntensity(c, u.Iterations); got != 0 {
		t.Fatalf("smoothedIntensity(0) = %v; want 0 (background convention)", got)
	}
}

func TestEscapeThresholdIsStrict(t *testing.T) {
	// c = 2+0i: after iteration 0, |z| == 2 exactly, which does not exceed a
	// strict threshold; iteration 1 gives |z| = 6 and escapes.
	u := defaultUniforms()
	got := escapeIntensity(mgl32.Vec2{2, 0}, u.Iterations)
	want := float32(1) / float32(u.Iterations)
	if got != want {
		t.Fatalf("escapeIntensity(2+0i) = %v; want %v (escape on iteration 1)", got, want)
	}
}

func TestSmoothedIntensityNearZeroForFastEscape(t *testing.T) {
	u := defaultUniforms()
	got := smoothedIntensity(mgl32.Vec2{2, 0}, u.Iterations)
	if got < 0 || got > 0.05 {
		t.Fatalf("smoothedIntensity(2+0i) = %v; want near 0", got)
	}
}

func TestHSVRed(t *testing.T) {
	got := hsv2rgb(mgl32.Vec3{0, 1, 1})
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Fatalf("hsv2rgb(0,1,1) = %v; want pure red", got)
	}
}

func TestHueProgramMasksInteriorToBlack(t *testing.T) {
	hue, ok := LookupProgram("hue")
	if !ok {
		t.Fatal("hue program not registered")
	}

	// The origin never escapes, so intensity is 0; without the ceil mask the
	// hue at 0 would paint the interior red.
	got := hue.GetPixel(defaultUniforms(), mgl32.Vec2{0, 0})
	if got != (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("hue pixel at origin = %v; want black", got)
	}
}

func TestGrayscaleProgramInteriorIsWhite(t *testing.T) {
	grayscale, ok := LookupProgram("grayscale")
	if !ok {
		t.Fatal("grayscale program not registered")
	}

	got := grayscale.GetPixel(defaultUniforms(), mgl32.Vec2{0, 0})
	if got != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("grayscale pixel at origin = %v; want white", got)
	}
}

func TestComplexCoordRemap(t *testing.T) {
	tcs := []struct {
		pos  mgl32.Vec2
		want mgl32.Vec2
	}{
		{pos: mgl32.Vec2{0, 0}, want: mgl32.Vec2{-1, 0}},
		{pos: mgl32.Vec2{1, 0}, want: mgl32.Vec2{1, 0}},
		{pos: mgl32.Vec2{-1, 0}, want: mgl32.Vec2{-3, 0}},
		{pos: mgl32.Vec2{0, 1}, want: mgl32.Vec2{-1, 2}},
		{pos: mgl32.Vec2{0, -1}, want: mgl32.Vec2{-1, -2}},
	}

	for _, tc := range tcs {
		if got := ComplexCoord(tc.pos); got != tc.want {
			t.Fatalf("ComplexCoord(%v) = %v; want %v", tc.pos, got, tc.want)
		}
	}
}

func TestViewportCenterAndEdgeClassification(t *testing.T) {
	// At zoom 1 and offset 0 the projection is an identity mapping over the
	// quad, so the viewport center is quad position (0,0) and the
	// rightmost-middle edge is (1,0).
	u := defaultUniforms()

	center := ComplexCoord(mgl32.Vec2{0, 0})
	if got := escapeIntensity(center, u.Iterations); got != 1 {
		t.Fatalf("center pixel c=%v intensity = %v; want 1 (in-set)", center, got)
	}

	edge := ComplexCoord(mgl32.Vec2{1, 0})
	got := escapeIntensity(edge, u.Iterations)
	if got == 1 || got > 5/float32(u.Iterations) {
		t.Fatalf("edge pixel c=%v intensity = %v; want escape within a few iterations", edge, got)
	}
}

func TestRegistry(t *testing.T) {
	if got, want := NumPrograms(), 2; got != want {
		t.Fatalf("NumPrograms() = %v; want %v", got, want)
	}

	names := Names()
	for _, name := range names {
		p, ok := LookupProgram(name)
		if !ok || p.Name != name {
			t.Fatalf("LookupProgram(%q) = %+v, %v; want registered program", name, p, ok)
		}
		if p.VertexShader == "" || p.FragmentShader == "" || p.GetPixel == nil {
			t.Fatalf("program %q incomplete: %+v", name, p)
		}
	}

	if _, ok := LookupProgram("nope"); ok {
		t.Fatal(`LookupProgram("nope") succeeded; want miss`)
	}
}

func TestSmoothedReducesBanding(t *testing.T) {
	// Sample along a line crossing the exterior: the smoothed intensity must
	// vary continuously (no two adjacent samples identical) where the
	// unsmoothed one plateaus within an iteration band.
	u := defaultUniforms()

	plateau := false
	prevRaw := float32(-1)
	prevSmooth := float32(-1)
	for x := float32(0.6); x < 0.9; x += 0.005 {
		c := mgl32.Vec2{x, 0.5}
		raw := escapeIntensity(c, u.Iterations)
		smooth := smoothedIntensity(c, u.Iterations)

		if raw == prevRaw {
			plateau = true
			if smooth == prevSmooth {
				t.Fatalf("smoothed intensity plateaued at c=%v (raw %v, smooth %v)", c, raw, smooth)
			}
		}
		prevRaw, prevSmooth = raw, smooth
	}
	if !plateau {
		t.Fatal("sample line never crossed an iteration band; test range needs adjusting")
	}
}
