package raycast

import "errors"

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(o RGB) RGB { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// gray broadcasts a scalar to all three channels.
func gray(v Real) RGB { return RGB{v, v, v} }

// Light contributes color at a surface point. Results are in [0,1] per channel.
type Light interface {
	Illuminate(obj Geometry, hit, eye Vec4) RGB
}

// AmbientLight adds a constant color everywhere.
type AmbientLight struct {
	Color RGB
}

func NewAmbientLight(color RGB) *AmbientLight {
	return &AmbientLight{Color: color.clamp01()}
}

// NewAmbientLightRGB8 takes an 8-bit color.
func NewAmbientLightRGB8(r, g, b uint8) *AmbientLight {
	return &AmbientLight{Color: RGB{Real(r) / 255, Real(g) / 255, Real(b) / 255}}
}

func (l *AmbientLight) Illuminate(Geometry, Vec4, Vec4) RGB { return l.Color }

// DirectionLight is a monochrome light arriving from a fixed direction.
type DirectionLight struct {
	// unit vector pointing back towards the light
	toLight Vec4
}

// NewDirectionLight takes the direction the light travels in.
func NewDirectionLight(dir Vec4) (*DirectionLight, error) {
	if dir.Mag() == 0 {
		return nil, errors.New("direction must be non-zero")
	}
	l := &DirectionLight{toLight: Direction(dir.X, dir.Y, dir.Z).Normalized().Reverse()}
	DebugLog("Created direction light %+v", l)
	return l, nil
}

func (l *DirectionLight) Illuminate(obj Geometry, hit, _ Vec4) RGB {
	n := obj.Normal(hit).Normalized()
	illum := n.Dot(l.toLight)
	if illum < 0 {
		return RGB{}
	}
	return gray(illum)
}

// PointLight is a monochrome light at a fixed position.
type PointLight struct {
	Position Vec4
}

func NewPointLight(pos Vec4) *PointLight {
	l := &PointLight{Position: Position(pos.X, pos.Y, pos.Z)}
	DebugLog("Created point light %+v", l)
	return l
}

func (l *PointLight) Illuminate(obj Geometry, hit, _ Vec4) RGB {
	toLight := l.Position.Sub(hit)
	if toLight.Mag() == 0 {
		return RGB{}
	}
	n := obj.Normal(hit)
	illum := n.Dot(toLight.Normalized())
	if illum < 0 {
		return RGB{}
	}
	return gray(illum)
}
