package raycast

import "testing"

func TestAmbientLight(t *testing.T) {
	s := NewSphere(Position(0, 0, 0), 1)
	a := NewAmbientLight(RGB{0.2, 1.5, -1})
	if got := a.Illuminate(s, Position(0, 1, 0), Position(0, 0, -10)); got != (RGB{0.2, 1, 0}) {
		t.Fatalf("ambient color should be clamped and constant: %+v", got)
	}
	a8 := NewAmbientLightRGB8(20, 255, 0)
	if got := a8.Illuminate(nil, Vec4{}, Vec4{}); got != (RGB{20.0 / 255, 1, 0}) {
		t.Fatalf("ambient RGB8: %+v", got)
	}
}

func TestDirectionLight(t *testing.T) {
	if _, err := NewDirectionLight(Direction(0, 0, 0)); err == nil {
		t.Fatal("expected error for zero direction")
	}
	s := NewSphere(Position(0, 0, 0), 1)
	// light travelling straight down
	l, err := NewDirectionLight(Direction(0, -5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Illuminate(s, Position(0, 1, 0), Vec4{}); got != (RGB{1, 1, 1}) {
		t.Fatalf("top of sphere should be fully lit: %+v", got)
	}
	if got := l.Illuminate(s, Position(0, -1, 0), Vec4{}); got != (RGB{}) {
		t.Fatalf("bottom of sphere should be dark: %+v", got)
	}
	got := l.Illuminate(s, Position(1, 0, 0), Vec4{})
	if !nearly(got.R, 0, eps) || got.R != got.G || got.G != got.B {
		t.Fatalf("grazing light should be ~0 and monochrome: %+v", got)
	}
}

func TestPointLight(t *testing.T) {
	s := NewSphere(Position(0, 0, 0), 1)
	l := NewPointLight(Position(0, 10, 0))
	if got := l.Illuminate(s, Position(0, 1, 0), Vec4{}); !nearly(got.R, 1, eps) || got.R != got.B {
		t.Fatalf("point facing the light: %+v", got)
	}
	if got := l.Illuminate(s, Position(0, -1, 0), Vec4{}); got != (RGB{}) {
		t.Fatalf("point facing away: %+v", got)
	}
	if got := l.Illuminate(s, Position(1, 0, 0), Vec4{}); got != (RGB{}) {
		t.Fatalf("light slightly behind the tangent plane: %+v", got)
	}
	// 45 degrees off the normal
	l2 := NewPointLight(Position(10, 11, 0))
	got := l2.Illuminate(s, Position(0, 1, 0), Vec4{})
	if !nearly(got.G, 1/1.4142135623730951, 1e-12) {
		t.Fatalf("lambert at 45°: %+v", got)
	}
}
