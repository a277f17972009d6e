package raycast

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// scene holds the immutable objects and lights shared by every frame of a run.
type scene struct {
	objects []Geometry
	lights  []Light
	policy  HitPolicy
}

func buildScene(cfg *Config) (*scene, error) {
	policy, err := cfg.hitPolicy()
	if err != nil {
		return nil, err
	}
	s := &scene{policy: policy}
	for i, sc := range cfg.Spheres {
		o, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere #%d: %w", i, err)
		}
		s.objects = append(s.objects, o)
	}
	for i, lc := range cfg.Lights {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light #%d: %w", i, err)
		}
		s.lights = append(s.lights, l)
	}
	return s, nil
}

func (s *scene) engine(view Mat4) *Engine {
	e := New(view)
	e.SetHitPolicy(s.policy)
	for _, o := range s.objects {
		e.AddObject(o)
	}
	for _, l := range s.lights {
		e.AddLight(l)
	}
	return e
}

func Run(cfgPath string) error {
	return RunContext(context.Background(), cfgPath)
}

// RunContext loads the scene config, renders it and writes the configured outputs.
func RunContext(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}
	id := uuid.NewString()
	if Debug {
		resetRayLog()
	}

	start := time.Now()
	img, err := sc.engine(cfg.Camera.view(0)).RenderParallel(ctx, cfg.Width, cfg.Height, Workers)
	if err != nil {
		return err
	}
	DebugLog("[%s] Rendered %dx%d, time: %s", id, cfg.Width, cfg.Height, time.Since(start))

	if Debug {
		raysStats()
	}
	if PNG {
		if err := SavePNG(img, cfg.Out); err != nil {
			return err
		}
		DebugLog("[%s] Saved PNG: %s", id, cfg.Out)
	}
	if RAW {
		if err := img.SaveRawRGB8(cfg.RawOut); err != nil {
			return err
		}
		DebugLog("[%s] Saved RAW: %s", id, cfg.RawOut)
	}
	if cfg.Orbit.Frames > 0 {
		frames, err := renderOrbit(ctx, cfg, sc)
		if err != nil {
			return err
		}
		if err := SaveAnimatedGIF(frames, cfg.GIFOut, cfg.GIFDelay); err != nil {
			return err
		}
		DebugLog("[%s] Saved animated GIF: %s (%d frames)", id, cfg.GIFOut, len(frames))
	}
	return nil
}

// renderOrbit renders the scene once per frame with the camera stepped around the target.
func renderOrbit(ctx context.Context, cfg *Config, sc *scene) ([]*Image, error) {
	frames := make([]*Image, 0, cfg.Orbit.Frames)
	for k := 0; k < cfg.Orbit.Frames; k++ {
		angle := degToRad(cfg.Orbit.DegPerFrame * Real(k))
		img, err := sc.engine(cfg.Camera.view(angle)).RenderParallel(ctx, cfg.Width, cfg.Height, Workers)
		if err != nil {
			return nil, fmt.Errorf("orbit frame %d: %w", k, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}
