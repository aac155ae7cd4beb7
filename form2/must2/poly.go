package must2

import (
	"math"

	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) sdf.SDF2 {
	s := polygon{}

	n := len(vertex)
	if n < 3 {
		panic("number of vertices < 3")
	}
	for _, v := range vertex {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			panic("non-finite polygon vertex")
		}
	}

	// Close the loop (if necessary)
	s.vertex = append([]r2.Vec{}, vertex...)
	if !d2.EqualWithin(vertex[0], vertex[n-1], tolerance) {
		s.vertex = append(s.vertex, vertex[0])
	}

	// allocate pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)

	vmin := s.vertex[0]
	vmax := s.vertex[0]

	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] < tolerance {
			panic("zero length polygon edge")
		}
		s.vector[i] = r2.Scale(1/s.length[i], l)
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}

	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	// iterate over the line segments
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// SelfIntersecting reports whether any two non-adjacent edges of the
// closed polygon described by vertex cross or touch.
func SelfIntersecting(vertex []r2.Vec) bool {
	n := len(vertex)
	if n > 1 && d2.EqualWithin(vertex[0], vertex[n-1], tolerance) {
		n--
	}
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a0, a1 := vertex[i], vertex[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			if segmentsIntersect(a0, a1, vertex[j], vertex[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 r2.Vec) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) || (d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) || (d4 == 0 && onSegment(p1, p2, q2))
}

func orient(a, b, c r2.Vec) float64 {
	v := r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
	if math.Abs(v) < tolerance*tolerance {
		return 0
	}
	return v
}

func onSegment(a, b, p r2.Vec) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// Polygon building code.

// PolygonBuilder stores a set of 2d polygon vertices.
type PolygonBuilder struct {
	reverse bool            // return the vertices in reverse order
	vlist   []polygonVertex // list of polygon vertices
}

// polygonVertex is a polygon vertex.
type polygonVertex struct {
	relative bool    // vertex position is relative to previous vertex
	vertex   r2.Vec  // vertex coordinates
	chamfer  float64 // chamfer leg length (0 == none)
}

// Rel positions the polygon vertex relative to the prior vertex.
func (v *polygonVertex) Rel() *polygonVertex {
	v.relative = true
	return v
}

// Chamfer replaces the vertex with a straight bevel. Both legs of the
// bevel measure size along the adjacent edges.
func (v *polygonVertex) Chamfer(size float64) *polygonVertex {
	if size > 0 {
		v.chamfer = size
	}
	return v
}

// NewPolygon returns an empty polygon.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Reverse reverses the order the vertices are returned.
func (p *PolygonBuilder) Reverse() {
	p.reverse = true
}

// AddV2 adds a V2 vertex to a polygon.
func (p *PolygonBuilder) AddV2(x r2.Vec) *polygonVertex {
	p.vlist = append(p.vlist, polygonVertex{vertex: x})
	return &p.vlist[len(p.vlist)-1]
}

// Add an x,y vertex to a polygon.
func (p *PolygonBuilder) Add(x, y float64) *polygonVertex {
	return p.AddV2(r2.Vec{X: x, Y: y})
}

// Vertices returns the vertices of the closed polygon with
// relative positions resolved and chamfers applied.
func (p *PolygonBuilder) Vertices() []r2.Vec {
	if len(p.vlist) == 0 {
		panic("empty vertex list. was PolygonBuilder initialized?")
	}
	abs := make([]r2.Vec, len(p.vlist))
	for i, v := range p.vlist {
		abs[i] = v.vertex
		if v.relative {
			if i == 0 {
				panic("first polygon vertex cannot be relative")
			}
			abs[i] = r2.Add(abs[i-1], v.vertex)
		}
	}
	n := len(abs)
	out := make([]r2.Vec, 0, n+4)
	for i, v := range p.vlist {
		if v.chamfer == 0 {
			out = append(out, abs[i])
			continue
		}
		prev := abs[(i+n-1)%n]
		next := abs[(i+1)%n]
		e0 := r2.Sub(prev, abs[i])
		e1 := r2.Sub(next, abs[i])
		if v.chamfer >= r2.Norm(e0) || v.chamfer >= r2.Norm(e1) {
			// bevel does not fit between neighbours
			out = append(out, abs[i])
			continue
		}
		out = append(out,
			r2.Add(abs[i], r2.Scale(v.chamfer, r2.Unit(e0))),
			r2.Add(abs[i], r2.Scale(v.chamfer, r2.Unit(e1))),
		)
	}
	if p.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Mirror returns the vertices reflected across the X axis (y -> -y)
// in reverse order so the winding direction is preserved.
func Mirror(vertex []r2.Vec) []r2.Vec {
	n := len(vertex)
	out := make([]r2.Vec, n)
	for i, v := range vertex {
		out[n-1-i] = r2.Vec{X: v.X, Y: -v.Y}
	}
	return out
}

const tolerance = 1e-9

// Nagon returns the vertices of a regular polygon with n sides
// inscribed in a circle of the given radius. The first vertex is on the X axis.
func Nagon(n int, radius float64) []r2.Vec {
	if n < 3 {
		panic("n-agon needs at least 3 sides")
	}
	if radius <= 0 {
		panic("radius <= 0")
	}
	v := make([]r2.Vec, n)
	for i := range v {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		v[i] = r2.Vec{X: radius * c, Y: radius * s}
	}
	return v
}
