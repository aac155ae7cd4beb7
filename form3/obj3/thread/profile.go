package thread

import (
	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/form2"
	"github.com/threadkit/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// profile is the thread cross section shared by every loop.
type profile struct {
	vertices []r2.Vec
	sdf      sdf.SDF2
}

// CrossSection returns the closed polygon swept to make the thread.
// X is axial and Y is radial measured from the root radius. Left hand
// threads have their polygon reflected across the X axis.
func CrossSection(s Spec) ([]r2.Vec, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return profileVertices(s), nil
}

func newProfile(s Spec) (*profile, error) {
	v := profileVertices(s)
	poly, err := form2.Polygon(v)
	if err != nil {
		return nil, geomErr("profile", err)
	}
	return &profile{vertices: v, sdf: poly}, nil
}

// profileVertices lays out the trapezoid with its base sunk below the
// root line by the interference.
func profileVertices(s Spec) []r2.Vec {
	h := s.Height()
	overlap := -s.Interference * sdf.Sign(h)
	rw := s.RootWidth / 2
	aw := s.ApexWidth / 2
	off := s.ApexOffset

	p := must2.NewPolygon()
	if overlap != 0 {
		p.Add(rw, overlap)
	}
	p.Add(rw, 0)
	p.Add(aw+off, h)
	p.Add(-aw+off, h)
	p.Add(-rw, 0)
	if overlap != 0 {
		p.Add(-rw, overlap)
	}
	v := p.Vertices()
	if s.Hand == LeftHand {
		v = must2.Mirror(v)
	}
	return v
}

// Bounds returns the bounding box of the cross section.
func (p *profile) Bounds() r2.Box { return p.sdf.Bounds() }
