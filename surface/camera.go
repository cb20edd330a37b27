package surface

import (
	"math"

	"github.com/gogpu/viz"
)

// Mat4 is a column-major 4x4 matrix, the layout GPU uniform blocks
// expect.
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies the matrix to a point and performs the
// perspective divide. ok is false when the point is behind the
// camera.
func (m Mat4) TransformPoint(p [3]float32) ([3]float32, bool) {
	x := m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]
	y := m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]
	z := m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w <= 0 {
		return [3]float32{}, false
	}
	return [3]float32{x / w, y / w, z / w}, true
}

func lookAt(eye, target, up [3]float32) Mat4 {
	f := normalize3(sub3(target, eye))
	s := normalize3(cross3(f, up))
	u := cross3(s, f)
	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-dot3(s, eye), -dot3(u, eye), dot3(f, eye), 1,
	}
}

// perspective builds a right-handed projection with 0..1 depth.
func perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, far * near / (near - far), 0,
	}
}

// orthographic builds a right-handed projection with 0..1 depth.
func orthographic(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (near - far), 0,
		(left + right) / (left - right),
		(bottom + top) / (bottom - top),
		near / (near - far), 1,
	}
}

// Mode selects how the camera flattens 3D onto the viewport.
type Mode uint8

const (
	// Perspective projects through a pinhole with the configured FOV.
	Perspective Mode = iota
	// Orthographic drops depth, preserving parallel lines.
	Orthographic
	// Isometric is orthographic from the fixed 45 azimuth / 30
	// elevation viewpoint.
	Isometric
	// Oblique is a front view with depth sheared in at 45 degrees.
	Oblique
)

// Camera positions the viewer and owns the projection parameters.
type Camera struct {
	Mode     Mode
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
	FOV      float32 // radians, perspective only
	Aspect   float32
	Near     float32
	Far      float32
	Zoom     float32 // scales the orthographic extent
}

// NewCamera returns a perspective camera at the default orbit
// viewpoint.
func NewCamera() Camera {
	return Camera{
		Position: [3]float32{2, 2, 2},
		Target:   [3]float32{0, 0, 0},
		Up:       [3]float32{0, 1, 0},
		FOV:      float32(45 * math.Pi / 180),
		Aspect:   1,
		Near:     0.1,
		Far:      100,
		Zoom:     1,
	}
}

const orthoExtent = 1.6

// ViewMatrix returns the world-to-camera transform.
func (c Camera) ViewMatrix() Mat4 {
	switch c.Mode {
	case Isometric:
		dist := length3(sub3(c.Position, c.Target))
		if dist == 0 {
			dist = 3.5
		}
		az, el := float64(45*math.Pi/180), float64(30*math.Pi/180)
		eye := [3]float32{
			c.Target[0] + dist*float32(math.Cos(el)*math.Sin(az)),
			c.Target[1] + dist*float32(math.Sin(el)),
			c.Target[2] + dist*float32(math.Cos(el)*math.Cos(az)),
		}
		return lookAt(eye, c.Target, c.Up)
	case Oblique:
		dist := length3(sub3(c.Position, c.Target))
		if dist == 0 {
			dist = 3.5
		}
		eye := [3]float32{c.Target[0], c.Target[1], c.Target[2] + dist}
		view := lookAt(eye, c.Target, c.Up)
		// Cabinet shear: world depth recedes at 45 degrees, half
		// length, before the front view flattens it.
		k := float32(0.5 * math.Cos(math.Pi/4))
		shear := Identity4()
		shear[8] = k
		shear[9] = k
		return view.Mul(shear)
	default:
		return lookAt(c.Position, c.Target, c.Up)
	}
}

// ProjectionMatrix returns the camera-to-clip transform.
func (c Camera) ProjectionMatrix() Mat4 {
	if c.Mode == Perspective {
		return perspective(c.FOV, c.Aspect, c.Near, c.Far)
	}
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	e := float32(orthoExtent) / zoom
	return orthographic(-e*c.Aspect, e*c.Aspect, -e, e, -100, 100)
}

// ViewProjection returns projection * view.
func (c Camera) ViewProjection() Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// ProjectToScreen maps a world point to viewport pixels plus a depth
// in [0, 1]. ok is false behind the camera.
func (c Camera) ProjectToScreen(world [3]float32, width, height float64) (viz.Point, float64, bool) {
	ndc, ok := c.ViewProjection().TransformPoint(world)
	if !ok {
		return viz.Point{}, 0, false
	}
	x := (float64(ndc[0]) + 1) / 2 * width
	y := (1 - float64(ndc[1])) / 2 * height
	return viz.Pt(x, y), float64(ndc[2]), true
}

func length3(a [3]float32) float32 {
	return float32(math.Sqrt(float64(dot3(a, a))))
}

// Orbit tracks an azimuth/elevation/distance viewpoint around a
// target, the usual drag-to-rotate, wheel-to-zoom interaction.
type Orbit struct {
	Target    [3]float32
	Distance  float32
	Azimuth   float32 // radians
	Elevation float32 // radians

	MinDistance, MaxDistance   float32
	MinElevation, MaxElevation float32
	RotateSpeed                float32
	ZoomSpeed                  float32
	PanSpeed                   float32

	home orbitHome
}

// orbitHome is the reset snapshot.
type orbitHome struct {
	Target    [3]float32
	Distance  float32
	Azimuth   float32
	Elevation float32
}

// NewOrbit returns controls at distance 3.5, azimuth 45, elevation 30.
func NewOrbit() *Orbit {
	o := &Orbit{
		Distance:     3.5,
		Azimuth:      float32(45 * math.Pi / 180),
		Elevation:    float32(30 * math.Pi / 180),
		MinDistance:  0.5,
		MaxDistance:  20,
		MinElevation: float32(-math.Pi/2 + 0.1),
		MaxElevation: float32(math.Pi/2 - 0.1),
		RotateSpeed:  0.01,
		ZoomSpeed:    0.1,
		PanSpeed:     0.005,
	}
	o.home = o.snapshot()
	return o
}

func (o *Orbit) snapshot() orbitHome {
	return orbitHome{
		Target:    o.Target,
		Distance:  o.Distance,
		Azimuth:   o.Azimuth,
		Elevation: o.Elevation,
	}
}

// Rotate applies a drag delta in pixels.
func (o *Orbit) Rotate(dx, dy float32) {
	o.Azimuth -= dx * o.RotateSpeed
	o.Elevation = clampf(o.Elevation+dy*o.RotateSpeed, o.MinElevation, o.MaxElevation)
}

// Zoom applies a wheel delta; positive moves closer.
func (o *Orbit) Zoom(delta float32) {
	o.Distance = clampf(o.Distance*(1-delta*o.ZoomSpeed), o.MinDistance, o.MaxDistance)
}

// Pan slides the target in the camera plane.
func (o *Orbit) Pan(dx, dy float32, cam Camera) {
	forward := normalize3(sub3(cam.Target, cam.Position))
	right := normalize3(cross3(forward, cam.Up))
	up := cam.Up
	o.Target = [3]float32{
		o.Target[0] + right[0]*(-dx*o.PanSpeed*o.Distance) + up[0]*(dy*o.PanSpeed*o.Distance),
		o.Target[1] + right[1]*(-dx*o.PanSpeed*o.Distance) + up[1]*(dy*o.PanSpeed*o.Distance),
		o.Target[2] + right[2]*(-dx*o.PanSpeed*o.Distance) + up[2]*(dy*o.PanSpeed*o.Distance),
	}
}

// Reset restores the construction-time viewpoint.
func (o *Orbit) Reset() {
	o.Target = o.home.Target
	o.Distance = o.home.Distance
	o.Azimuth = o.home.Azimuth
	o.Elevation = o.home.Elevation
}

// EyePosition returns the camera position for the current orbit.
func (o *Orbit) EyePosition() [3]float32 {
	cosE := float32(math.Cos(float64(o.Elevation)))
	return [3]float32{
		o.Target[0] + o.Distance*cosE*float32(math.Sin(float64(o.Azimuth))),
		o.Target[1] + o.Distance*float32(math.Sin(float64(o.Elevation))),
		o.Target[2] + o.Distance*cosE*float32(math.Cos(float64(o.Azimuth))),
	}
}

// Apply writes the orbit viewpoint into a camera.
func (o *Orbit) Apply(cam *Camera) {
	cam.Position = o.EyePosition()
	cam.Target = o.Target
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
