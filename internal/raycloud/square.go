package raycloud

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lens describes the pinhole camera: focal length and sensor size in
// millimetres, and how many millimetres make one scene unit.
type Lens struct {
	FocalLength  Real
	SensorWidth  Real
	SensorHeight Real
	Unit         Real
}

// DefaultLens is a 50mm lens on a 36x24mm sensor with metre scene units.
var DefaultLens = Lens{FocalLength: FocalLength, SensorWidth: SensorWidth, SensorHeight: SensorHeight, Unit: Unit}

// Square is a camera image plane. The corners follow the perimeter
// A -> B -> C -> D -> A; A-B is the top edge, D-C the bottom edge.
type Square struct {
	A, B, C, D Point
	Source     Point  // camera position
	Name       string // camera index
	Label      string // cosmetic tag for renderers
}

// NewPicture builds the image plane of a camera at camera looking at the origin.
func NewPicture(camera Point, lens Lens, name, label string) (Square, error) {
	if camera.Magnitude() == 0 {
		return Square{}, ErrCameraAtOrigin
	}
	cam, err := camera.Vector(false)
	if err != nil {
		return Square{}, err
	}
	shrunk, err := cam.ShrinkBy(lens.FocalLength / lens.Unit)
	if err != nil {
		return Square{}, err
	}
	center := shrunk.End()
	plane, err := PlanePerpendicularAt(cam, center)
	if err != nil {
		return Square{}, err
	}
	// world up axis re-based at the image center, projected onto the plane;
	// cameras looking along the up axis take Forward as their up
	up := Up
	if r3.Norm(r3.Cross(cam.Direction, Up.Vec())) < epsParallel*cam.Magnitude() {
		up = Forward
	}
	upOnPlane, err := plane.Intersect(cam.OffsetTo(center.Add(up)))
	if err != nil {
		return Square{}, fmt.Errorf("camera %v: %w", camera, err)
	}
	mU, err := From(center).To(upOnPlane).Vector(true)
	if err != nil {
		return Square{}, fmt.Errorf("camera %v: %w", camera, err)
	}
	if mU, err = mU.ResizeTo(lens.SensorHeight / (2 * lens.Unit)); err != nil {
		return Square{}, err
	}
	mRL, err := Cross(mU, cam, true)
	if err != nil {
		return Square{}, err
	}
	if mRL, err = mRL.ResizeTo(lens.SensorWidth / (2 * lens.Unit)); err != nil {
		return Square{}, err
	}
	sq := Square{
		A:      center.MoveBy(mU).MoveBy(mRL.Neg()),
		B:      center.MoveBy(mU).MoveBy(mRL),
		C:      center.MoveBy(mU.Neg()).MoveBy(mRL),
		D:      center.MoveBy(mU.Neg()).MoveBy(mRL.Neg()),
		Source: camera,
		Name:   name,
		Label:  label,
	}
	DebugLog("Created picture %s: camera=%v, center=%v", name, camera, center)
	return sq, nil
}

// NewPictures builds one picture per camera, named by the camera's index.
func NewPictures(cameras []Point, lens Lens) ([]Square, error) {
	out := make([]Square, 0, len(cameras))
	for i, c := range cameras {
		sq, err := NewPicture(c, lens, strconv.Itoa(i), c.Name)
		if err != nil {
			return nil, fmt.Errorf("picture %d: %w", i, err)
		}
		out = append(out, sq)
	}
	return out, nil
}

// Outline returns the closed perimeter A, B, C, D, A.
func (s Square) Outline() [5]Point { return [5]Point{s.A, s.B, s.C, s.D, s.A} }

// Center returns the corner centroid.
func (s Square) Center() Point {
	sum := r3.Add(r3.Add(s.A.Vec(), s.B.Vec()), r3.Add(s.C.Vec(), s.D.Vec()))
	return PointFromVec(r3.Scale(0.25, sum), "")
}

// Normal returns (B-A) x (D-A), which points along the view direction (away
// from the camera, towards the origin).
func (s Square) Normal() r3.Vec {
	return r3.Cross(r3.Sub(s.B.Vec(), s.A.Vec()), r3.Sub(s.D.Vec(), s.A.Vec()))
}

// Mesh triangulates the image plane.
func (s Square) Mesh() Mesh {
	m := Mesh{Name: "img_" + s.Name}
	for _, p := range []Point{s.A, s.B, s.C, s.D} {
		m.addVertex(p)
	}
	m.addTriangle(0, 1, 2)
	m.addTriangle(0, 2, 3)
	return m
}

// Pixels samples the image plane on a pixelWidth x pixelHeight grid by
// bilinear interpolation of the corners. The outer loop runs over width
// steps, the inner over height steps, both spanning [0, 1].
func (s Square) Pixels(pixelWidth, pixelHeight int) []Point {
	ws := linspace(0, 1, pixelWidth)
	hs := linspace(0, 1, pixelHeight)
	pixels := make([]Point, 0, len(ws)*len(hs))
	a, b, c, d := s.A.Vec(), s.B.Vec(), s.C.Vec(), s.D.Vec()
	for wi, w := range ws {
		top := r3.Add(r3.Scale(1-w, a), r3.Scale(w, b))
		bottom := r3.Add(r3.Scale(1-w, d), r3.Scale(w, c))
		for hi, h := range hs {
			px := r3.Add(r3.Scale(1-h, top), r3.Scale(h, bottom))
			pixels = append(pixels, PointFromVec(px, fmt.Sprintf("img_%s w_%d h_%d", s.Name, wi, hi)))
		}
	}
	return pixels
}

// Rays casts one ray per pixel from the camera through the pixel, with the
// given length, each named after its pixel.
func (s Square) Rays(pixelWidth, pixelHeight int, length Real) ([]Line, error) {
	pixels := s.Pixels(pixelWidth, pixelHeight)
	rays := make([]Line, 0, len(pixels))
	for _, px := range pixels {
		v, err := From(s.Source).To(px).Vector(true)
		if err != nil {
			return nil, fmt.Errorf("ray through %s: %w", px.Name, err)
		}
		rays = append(rays, v.Scale(length).Line().WithName(px.Name))
	}
	return rays, nil
}
