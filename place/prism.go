package place

import (
	"github.com/npillmayer/cnc25d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Prism is a figure extruded along +z, described by its declared bounding box
// and the figure point which becomes the local origin. The declared size need
// not match the figure; it only defines the pivots of flips and orientations.
type Prism struct {
	Zero cnc25d.Pair // figure point mapped to the local origin
	Size r3.Vec      // declared bounding box, Size.Z is the extrusion height
}

// Corners returns the eight corners of the prism's bounding box in the local
// frame, i.e. after the shift by -Zero.
func (pr Prism) Corners() []r3.Vec {
	corners := make([]r3.Vec, 0, 8)
	for _, x := range []float64{0, pr.Size.X} {
		for _, y := range []float64{0, pr.Size.Y} {
			for _, z := range []float64{0, pr.Size.Z} {
				corners = append(corners, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return corners
}

// Local is the motion moving figure coordinates into the prism's local frame.
func (pr Prism) Local() Motion {
	return Translation(r3.Vec{X: -pr.Zero.X(), Y: -pr.Zero.Y()})
}

// Place computes the motion positioning a prism inside an assembly: shift to
// the local frame, flip, orient, then translate by t.
// It fails with cnc25d.ErrBadFlip or cnc25d.ErrBadOrientation for unknown tags.
func Place(pr Prism, flip Flip, orient Orientation, t r3.Vec, label string) (Motion, error) {
	if pr.Size.Z <= 0 {
		cnc25d.Warn(label, "prism has non-positive height %g", pr.Size.Z)
	}
	f, err := flip.Motion(pr.Size, label)
	if err != nil {
		return Motion{}, err
	}
	o, err := orient.Motion(pr.Size, label)
	if err != nil {
		return Motion{}, err
	}
	m := pr.Local().Then(f).Then(o).Then(Translation(t))
	tracer().Debugf("place flip=%s orientation=%s: %v", flip, orient, m)
	return m, nil
}

// PlacedBox returns the axis-aligned bounds of a prism's bounding box after
// the motion m, which is expected to come from Place.
func PlacedBox(pr Prism, m Motion) r3.Box {
	local := pr.Local()
	var box r3.Box
	for i, c := range pr.Corners() {
		// corners are local; undo the zero shift which m starts with
		p := m.Apply(r3.Sub(c, local.Shift))
		if i == 0 {
			box = r3.Box{Min: p, Max: p}
			continue
		}
		box.Min = r3.Vec{X: min(box.Min.X, p.X), Y: min(box.Min.Y, p.Y), Z: min(box.Min.Z, p.Z)}
		box.Max = r3.Vec{X: max(box.Max.X, p.X), Y: max(box.Max.Y, p.Y), Z: max(box.Max.Z, p.Z)}
	}
	return box
}
