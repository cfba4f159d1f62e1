package raycloud

import (
	"encoding/json"
	"fmt"
	"os"
)

// Shape is the closed set of things a Renderer can draw.
type Shape interface{ shape() }

type PointShape struct{ Point }
type VectorShape struct{ Vector }
type LineShape struct{ Line }
type SquareShape struct{ Square }
type SubspaceShape struct{ *Partition }

// SurfaceShape is a plane drawn as a size x size patch.
type SurfaceShape struct {
	Plane
	Size Real
}

func (PointShape) shape()    {}
func (VectorShape) shape()   {}
func (LineShape) shape()     {}
func (SurfaceShape) shape()  {}
func (SquareShape) shape()   {}
func (SubspaceShape) shape() {}

// Renderer draws each Shape variant.
type Renderer interface {
	RenderPoint(Point) error
	RenderVector(Vector) error
	RenderLine(Line) error
	RenderSurface(p Plane, size Real) error
	RenderSquare(Square) error
	RenderSubspaces(*Partition) error
}

// Dispatch hands every shape to the matching Renderer method, stopping at the
// first error.
func Dispatch(r Renderer, shapes ...Shape) error {
	for i, s := range shapes {
		var err error
		switch s := s.(type) {
		case PointShape:
			err = r.RenderPoint(s.Point)
		case VectorShape:
			err = r.RenderVector(s.Vector)
		case LineShape:
			err = r.RenderLine(s.Line)
		case SurfaceShape:
			err = r.RenderSurface(s.Plane, s.Size)
		case SquareShape:
			err = r.RenderSquare(s.Square)
		case SubspaceShape:
			err = r.RenderSubspaces(s.Partition)
		default:
			err = fmt.Errorf("unsupported shape %T", s)
		}
		if err != nil {
			return fmt.Errorf("render shape #%d: %w", i, err)
		}
	}
	return nil
}

// Trace is one plotly-style 3D trace.
type Trace struct {
	Type    string   `json:"type"`
	Mode    string   `json:"mode,omitempty"`
	Name    string   `json:"name,omitempty"`
	X       []Real   `json:"x"`
	Y       []Real   `json:"y"`
	Z       []Real   `json:"z"`
	I       []uint32 `json:"i,omitempty"`
	J       []uint32 `json:"j,omitempty"`
	K       []uint32 `json:"k,omitempty"`
	Opacity Real     `json:"opacity,omitempty"`
	Text    []string `json:"text,omitempty"`
}

func (t *Trace) add(p Point) {
	t.X = append(t.X, p.X)
	t.Y = append(t.Y, p.Y)
	t.Z = append(t.Z, p.Z)
}

// Figure is a plotly-compatible document: data traces plus a layout.
type Figure struct {
	Data   []Trace        `json:"data"`
	Layout map[string]any `json:"layout"`
}

// Save writes the figure as JSON.
func (f *Figure) Save(path string) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write figure: %w", err)
	}
	return nil
}

// FigureRenderer accumulates shapes into a Figure with fixed axes spanning
// [-window, window].
type FigureRenderer struct {
	fig Figure
}

func NewFigureRenderer(window Real) *FigureRenderer {
	axisRange := []Real{-window, window}
	fr := &FigureRenderer{fig: Figure{Layout: map[string]any{
		"showlegend": false,
		"scene": map[string]any{
			"aspectmode": "cube",
			"xaxis":      map[string]any{"range": axisRange},
			"yaxis":      map[string]any{"range": axisRange},
			"zaxis":      map[string]any{"range": axisRange},
		},
	}}}
	for _, axis := range []struct {
		name string
		dir  Point
	}{{"x", Right}, {"y", Forward}, {"z", Up}} {
		t := Trace{Type: "scatter3d", Mode: "lines", Name: axis.name + " axis"}
		t.add(Point{X: -window * axis.dir.X, Y: -window * axis.dir.Y, Z: -window * axis.dir.Z})
		t.add(Point{X: window * axis.dir.X, Y: window * axis.dir.Y, Z: window * axis.dir.Z})
		fr.fig.Data = append(fr.fig.Data, t)
	}
	return fr
}

func (f *FigureRenderer) Figure() *Figure { return &f.fig }

func (f *FigureRenderer) RenderPoint(p Point) error {
	t := Trace{Type: "scatter3d", Mode: "markers", Name: p.Name}
	t.add(p)
	f.fig.Data = append(f.fig.Data, t)
	return nil
}

func (f *FigureRenderer) RenderVector(v Vector) error {
	t := Trace{Type: "scatter3d", Mode: "lines+markers", Name: v.Start.Name}
	t.add(v.Start)
	t.add(v.End())
	f.fig.Data = append(f.fig.Data, t)
	return nil
}

func (f *FigureRenderer) RenderLine(l Line) error {
	t := Trace{Type: "scatter3d", Mode: "lines", Name: l.Name}
	t.add(l.Start)
	t.add(l.End)
	f.fig.Data = append(f.fig.Data, t)
	return nil
}

func (f *FigureRenderer) RenderSurface(p Plane, size Real) error {
	f.addMesh(p.Mesh(size), 0.5)
	return nil
}

func (f *FigureRenderer) RenderSquare(s Square) error {
	f.addMesh(s.Mesh(), 0.8)
	t := Trace{Type: "scatter3d", Mode: "lines", Name: s.Label}
	for _, p := range s.Outline() {
		t.add(p)
	}
	f.fig.Data = append(f.fig.Data, t)
	return nil
}

// RenderSubspaces draws each subspace's points as one marker trace named by
// its center key; hover text is the pixel each point was sampled through.
func (f *FigureRenderer) RenderSubspaces(p *Partition) error {
	if p == nil {
		return fmt.Errorf("nil partition")
	}
	for _, key := range p.Keys() {
		t := Trace{Type: "scatter3d", Mode: "markers", Name: key}
		for _, pt := range p.Points(key) {
			t.add(pt)
			t.Text = append(t.Text, pt.Name)
		}
		f.fig.Data = append(f.fig.Data, t)
	}
	return nil
}

func (f *FigureRenderer) addMesh(m Mesh, opacity Real) {
	t := Trace{Type: "mesh3d", Name: m.Name, Opacity: opacity}
	for i := 0; i < m.VertexCount(); i++ {
		t.add(m.Vertex(i))
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t.I = append(t.I, m.Indices[i])
		t.J = append(t.J, m.Indices[i+1])
		t.K = append(t.K, m.Indices[i+2])
	}
	f.fig.Data = append(f.fig.Data, t)
}
