package raycast

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func testEngine() *Engine {
	return New(Look(Position(0, 0, -10), Position(0, 0, 0)))
}

func TestTraceRayFirstVsNearest(t *testing.T) {
	far := NewSphere(Position(0, 0, 10), 1)
	near := NewSphere(Position(0, 0, 0), 1)
	e := testEngine()
	e.AddObject(far)
	e.AddObject(near)

	origin, dir := Position(0, 0, -10), Direction(0, 0, 1)
	hit, ok := e.TraceRay(origin, dir)
	if !ok || hit.Object != far || !nearly(hit.T, 19, eps) {
		t.Fatalf("first hit should be the far sphere added first: ok=%v t=%.6g", ok, hit.T)
	}
	if !vecNearly(hit.Point, Position(0, 0, 9), eps) {
		t.Fatalf("hit point: %+v", hit.Point)
	}

	e.SetHitPolicy(NearestHit)
	hit, ok = e.TraceRay(origin, dir)
	if !ok || hit.Object != near || !nearly(hit.T, 9, eps) {
		t.Fatalf("nearest hit: ok=%v t=%.6g", ok, hit.T)
	}
	if !vecNearly(hit.Point, Position(0, 0, -1), eps) {
		t.Fatalf("nearest hit point: %+v", hit.Point)
	}

	if _, ok := e.TraceRay(origin, Direction(0, 1, 0)); ok {
		t.Fatal("ray pointing up should miss")
	}
}

func TestIlluminateClampsSum(t *testing.T) {
	e := testEngine()
	s := NewSphere(Position(0, 0, 0), 1)
	e.AddObject(s)
	for i := 0; i < 3; i++ {
		e.AddLight(NewAmbientLight(gray(0.5)))
	}
	got := e.illuminate(ObjectHit{T: 9, Point: Position(0, 0, -1), Object: s}, Position(0, 0, -10))
	if got != (RGB8{255, 255, 255}) {
		t.Fatalf("sum of lights should clamp to 255: %v", got)
	}
}

func TestViewport(t *testing.T) {
	vp := newViewport(3, 3)
	if vp.scale != 1 || vp.offX != -1 || vp.offY != 1 {
		t.Fatalf("square viewport: %+v", vp)
	}
	if x, y := vp.ndc(0, 0); x != -1 || y != 1 {
		t.Fatalf("top-left: %g,%g", x, y)
	}
	if x, y := vp.ndc(2, 2); x != 1 || y != -1 {
		t.Fatalf("bottom-right: %g,%g", x, y)
	}

	wide := newViewport(5, 3)
	if wide.scale != 1 || !nearly(wide.offX, -5.0/3, eps) || wide.offY != 1 {
		t.Fatalf("wide viewport: %+v", wide)
	}
	if _, y := wide.ndc(4, 2); y != -1 {
		t.Fatalf("wide: shorter axis should span [-1,1], got bottom %g", y)
	}

	tall := newViewport(3, 5)
	if tall.scale != 1 || tall.offX != -1 || !nearly(tall.offY, 5.0/3, eps) {
		t.Fatalf("tall viewport: %+v", tall)
	}

	// single pixel rows or columns must not divide by zero
	one := newViewport(1, 1)
	if x, y := one.ndc(0, 0); !isFinite(x) || !isFinite(y) {
		t.Fatalf("1x1 viewport: %g,%g", x, y)
	}
}

func TestCameraDistance(t *testing.T) {
	if d := cameraDistance(90); !nearly(d, 1, 1e-12) {
		t.Fatalf("90° fov should put the eye at distance 1, got %.15g", d)
	}
}

func TestRenderMissIsBlack(t *testing.T) {
	e := testEngine()
	e.AddObject(NewSphere(Position(0, 100, 0), 1))
	e.AddLight(NewAmbientLight(gray(1)))
	img := e.Render(4, 3)
	if len(img.Pix) != 12 || img.Width != 4 || img.Height != 3 {
		t.Fatalf("buffer size: %dx%d len=%d", img.Width, img.Height, len(img.Pix))
	}
	for i, p := range img.Pix {
		if p != (RGB8{}) {
			t.Fatalf("pixel %d should be black, got %v", i, p)
		}
	}
}

func TestRenderCenterHit(t *testing.T) {
	e := testEngine()
	e.AddObject(NewSphere(Position(0, 0, 0), 1))
	e.AddLight(NewAmbientLightRGB8(20, 20, 20))
	img := e.Render(3, 3)
	if got := img.At(1, 1); got != (RGB8{20, 20, 20}) {
		t.Fatalf("centre pixel: %v", got)
	}
	if got := img.At(0, 0); got != (RGB8{}) {
		t.Fatalf("corner pixel should miss: %v", got)
	}
}

// Scanline y grows downwards while world Y grows upwards.
func TestRenderYFlip(t *testing.T) {
	e := testEngine()
	e.AddObject(NewSphere(Position(0, 5, -6), 1))
	e.AddLight(NewAmbientLight(gray(0.5)))
	img := e.Render(3, 3)
	if got := img.At(1, 0); got != (RGB8{127, 127, 127}) {
		t.Fatalf("top row should see the raised sphere: %v", got)
	}
	if got := img.At(1, 2); got != (RGB8{}) {
		t.Fatalf("bottom row should be empty: %v", got)
	}
}

func TestRenderParallelMatchesRender(t *testing.T) {
	e := testEngine()
	e.SetHitPolicy(NearestHit)
	e.AddObject(NewSphere(Position(0, 0, 0), 3))
	e.AddObject(NewSphere(Position(2, 1, -4), 1))
	dl, err := NewDirectionLight(Direction(1, -1, 1))
	if err != nil {
		t.Fatal(err)
	}
	e.AddLight(dl)
	e.AddLight(NewPointLight(Position(-25, 25, -25)))
	e.AddLight(NewAmbientLightRGB8(10, 20, 30))

	want := e.Render(64, 48)
	for _, workers := range []int{0, 1, 3} {
		got, err := e.RenderParallel(context.Background(), 64, 48, workers)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got.Pix, want.Pix) {
			t.Fatalf("workers=%d: parallel render differs from sequential", workers)
		}
	}
}

func TestRenderParallelCanceled(t *testing.T) {
	e := testEngine()
	e.AddObject(NewSphere(Position(0, 0, 0), 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.RenderParallel(ctx, 16, 16, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderRejectsEmptySize(t *testing.T) {
	e := testEngine()
	mustPanic(t, "zero width", func() { e.Render(0, 10) })
	mustPanic(t, "negative height", func() { e.Render(10, -1) })
}
