package raycast

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// XYZ is a plain coordinate triple in JSON; it becomes a position or a direction on use.
type XYZ struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (v XYZ) Position() Vec4  { return Position(v.X, v.Y, v.Z) }
func (v XYZ) Direction() Vec4 { return Direction(v.X, v.Y, v.Z) }

// Rotation in degrees for JSON (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (r Rot3Deg) Radians() Rot3 {
	return Rot3{X: degToRad(r.X), Y: degToRad(r.Y), Z: degToRad(r.Z)}
}

type CameraCfg struct {
	Position XYZ  `json:"position"`
	Target   XYZ  `json:"target"`
	Up       *XYZ `json:"up,omitempty"` // defaults to +Y
}

type SphereCfg struct {
	Center XYZ     `json:"center"`
	Radius Real    `json:"radius"`
	Scale  XYZ     `json:"scale,omitempty"` // optional per-axis multiplier of Radius; defaults 1
	RotDeg Rot3Deg `json:"rotDeg"`
}

type LightCfg struct {
	Type      string    `json:"type"` // ambient, direction or point
	Color     RGB       `json:"color"`
	ColorRGB8 *[3]uint8 `json:"colorRGB8,omitempty"` // ambient only; overrides color
	Direction XYZ       `json:"direction"`
	Position  XYZ       `json:"position"`
}

type OrbitCfg struct {
	Frames      int  `json:"frames"`
	DegPerFrame Real `json:"degPerFrame,omitempty"`
}

type Config struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Out       string      `json:"out"`
	RawOut    string      `json:"rawOut,omitempty"`
	GIFOut    string      `json:"gifOut,omitempty"`
	GIFDelay  int         `json:"gifDelay,omitempty"`
	HitPolicy string      `json:"hitPolicy,omitempty"` // first (default) or nearest
	Camera    CameraCfg   `json:"camera"`
	Spheres   []SphereCfg `json:"spheres"`
	Lights    []LightCfg  `json:"lights"`
	Orbit     OrbitCfg    `json:"orbit,omitempty"`
}

// Build validates and constructs the sphere. A plain sphere has zero rotation and unit scale.
func (sc SphereCfg) Build() (*Sphere, error) {
	if !(sc.Radius > 0) || !isFinite(sc.Radius) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %.6g", sc.Radius)
	}
	s := sc.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	if s.Z == 0 {
		s.Z = 1
	}
	if s == (XYZ{1, 1, 1}) && sc.RotDeg == (Rot3Deg{}) {
		return NewSphere(sc.Center.Position(), sc.Radius), nil
	}
	radii := Direction(sc.Radius*s.X, sc.Radius*s.Y, sc.Radius*s.Z)
	return NewEllipsoid(sc.Center.Position(), radii, sc.RotDeg.Radians())
}

// Build constructs the light described by lc.
func (lc LightCfg) Build() (Light, error) {
	switch strings.ToLower(lc.Type) {
	case "ambient":
		if lc.ColorRGB8 != nil {
			c := lc.ColorRGB8
			return NewAmbientLightRGB8(c[0], c[1], c[2]), nil
		}
		return NewAmbientLight(lc.Color), nil
	case "direction", "directional":
		l, err := NewDirectionLight(lc.Direction.Direction())
		if err != nil {
			return nil, err
		}
		return l, nil
	case "point":
		return NewPointLight(lc.Position.Position()), nil
	}
	return nil, fmt.Errorf("unknown light type %q", lc.Type)
}

func (c *Config) hitPolicy() (HitPolicy, error) {
	switch strings.ToLower(c.HitPolicy) {
	case "", "first":
		return FirstHit, nil
	case "nearest":
		return NearestHit, nil
	}
	return FirstHit, fmt.Errorf("unknown hit policy %q", c.HitPolicy)
}

// view builds the camera->world matrix, optionally with the camera orbited
// about the target by angle radians.
func (cc CameraCfg) view(angle Real) Mat4 {
	pos, target := cc.Position.Position(), cc.Target.Position()
	if angle != 0 {
		pos = orbitPosition(pos, target, angle)
	}
	if cc.Up != nil {
		return LookUp(pos, target, cc.Up.Direction())
	}
	return Look(pos, target)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Out == "" {
		cfg.Out = PNGOut
	}
	if cfg.RawOut == "" {
		cfg.RawOut = strings.TrimSuffix(cfg.Out, ".png") + ".raw"
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Orbit.Frames > 0 && cfg.Orbit.DegPerFrame == 0 {
		cfg.Orbit.DegPerFrame = OrbitDegStep
	}
	if _, err := cfg.hitPolicy(); err != nil {
		return nil, err
	}
	if cfg.Camera.Position == cfg.Camera.Target {
		return nil, errors.New("camera position and target must differ")
	}
	if len(cfg.Spheres) == 0 {
		return nil, fmt.Errorf("config has no spheres")
	}
	if len(cfg.Lights) == 0 {
		return nil, fmt.Errorf("config has no lights")
	}
	DebugLog("Loaded config from %s: size=(%d, %d), spheres=%d, lights=%d, policy=%q", path, cfg.Width, cfg.Height, len(cfg.Spheres), len(cfg.Lights), cfg.HitPolicy)
	return &cfg, nil
}
