package raycast

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// HitPolicy selects how TraceRay picks among intersecting objects.
type HitPolicy uint8

const (
	FirstHit   HitPolicy = iota // first object in insertion order that intersects
	NearestHit                  // smallest t across all objects
)

// ObjectHit is the result of a successful trace.
type ObjectHit struct {
	T      Real
	Point  Vec4
	Object Geometry
}

// Engine owns the view transform, the scene objects and the lights.
// Objects and lights are appended during setup and only read while rendering.
type Engine struct {
	view    Mat4 // camera->world
	objects []Geometry
	lights  []Light
	policy  HitPolicy
}

// New creates an engine with an empty scene.
func New(view Mat4) *Engine {
	return &Engine{view: view}
}

func (e *Engine) AddObject(g Geometry) { e.objects = append(e.objects, g) }
func (e *Engine) AddLight(l Light)     { e.lights = append(e.lights, l) }

func (e *Engine) SetHitPolicy(p HitPolicy) { e.policy = p }

// TraceRay finds the object hit by the ray. With FirstHit the scan stops at the
// first intersecting object even when a later one is closer.
func (e *Engine) TraceRay(origin, dir Vec4) (ObjectHit, bool) {
	best := ObjectHit{T: math.Inf(1)}
	okAny := false
	for _, o := range e.objects {
		t, ok := o.Intersect(origin, dir)
		if !ok {
			continue
		}
		if e.policy == FirstHit {
			return ObjectHit{T: t, Point: origin.Add(dir.Mul(t)), Object: o}, true
		}
		if t < best.T {
			best, okAny = ObjectHit{T: t, Object: o}, true
		}
	}
	if okAny {
		best.Point = origin.Add(dir.Mul(best.T))
	}
	return best, okAny
}

// illuminate sums every light at the hit and quantizes the clamped total.
func (e *Engine) illuminate(h ObjectHit, eye Vec4) RGB8 {
	var sum RGB
	for _, l := range e.lights {
		sum = sum.Add(l.Illuminate(h.Object, h.Point, eye))
	}
	return quantize(sum.clamp01())
}

// viewport maps pixel coordinates to camera-plane NDC. The shorter image axis
// spans [-1,1]; the longer one is widened by the aspect ratio. Scanline y grows
// downwards while NDC y grows upwards.
type viewport struct {
	scale      Real
	offX, offY Real
}

func newViewport(width, height int) viewport {
	w, h := Real(width), Real(height)
	if width > height {
		return viewport{scale: 2 / math.Max(h-1, 1), offX: -w / h, offY: 1}
	}
	return viewport{scale: 2 / math.Max(w-1, 1), offX: -1, offY: h / w}
}

func (vp viewport) ndc(x, y int) (Real, Real) {
	return vp.offX + Real(x)*vp.scale, vp.offY - Real(y)*vp.scale
}

// cameraDistance is the distance from the eye to the z=0 image plane.
func cameraDistance(hfovDeg Real) Real {
	return 1 / math.Tan(degToRad(hfovDeg)/2)
}

// frame is everything a scanline needs; it is computed once per render.
type frame struct {
	vp     viewport
	origin Vec4 // eye in world space
}

func (e *Engine) newFrame(width, height int) frame {
	d := cameraDistance(HFOVDeg)
	fr := frame{
		vp:     newViewport(width, height),
		origin: e.view.MulVec(Position(0, 0, -d)),
	}
	DebugLog("Frame %dx%d: distance=%.6f, eye=%+v, viewport=%+v", width, height, d, fr.origin, fr.vp)
	return fr
}

// shadePixel traces the primary ray through pixel (x,y).
func (e *Engine) shadePixel(fr *frame, x, y int) RGB8 {
	fx, fy := fr.vp.ndc(x, y)
	target := e.view.MulVec(Position(fx, fy, 0))
	dir := target.Sub(fr.origin).Normalized()
	hit, ok := e.TraceRay(fr.origin, dir)
	if !ok {
		if Debug {
			logRay("primary", Miss, fr.origin, dir, Vec4{}, 0)
		}
		return RGB8{}
	}
	if Debug {
		logRay("primary", Hit, fr.origin, dir, hit.Point, hit.T)
	}
	return e.illuminate(hit, fr.origin)
}

func (e *Engine) renderRow(img *Image, fr *frame, y int) {
	row := img.row(y)
	for x := range row {
		row[x] = e.shadePixel(fr, x, y)
	}
}

// Render is the sequential reference: one pass over all pixels, row by row.
func (e *Engine) Render(width, height int) *Image {
	img := NewImage(width, height)
	fr := e.newFrame(width, height)
	for y := 0; y < height; y++ {
		e.renderRow(img, &fr, y)
	}
	return img
}

// RenderParallel renders one scanline per task on up to workers goroutines.
// The result is identical to Render. workers <= 0 uses runtime.NumCPU().
func (e *Engine) RenderParallel(ctx context.Context, width, height, workers int) (*Image, error) {
	img := NewImage(width, height)
	fr := e.newFrame(width, height)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	DebugLogOnce("RenderParallel: %d scanline workers", workers)

	var done int64
	nextPrint := int64(1)
	if height >= 100 {
		nextPrint = int64(height / 100) // ~1%
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e.renderRow(img, &fr, y)
			rows := atomic.AddInt64(&done, 1)
			if Progress && rows%nextPrint == 0 {
				fmt.Printf("[PROGRESS] %.2f%%\n", Real(rows)*100/Real(height))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, err)
	}
	// the loop can stop early on cancellation without any task failing
	if atomic.LoadInt64(&done) != int64(height) {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, context.Cause(gctx))
	}
	return img, nil
}
