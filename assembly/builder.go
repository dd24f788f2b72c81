package assembly

import (
	"fmt"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/outline"
	"gonum.org/v1/gonum/spatial/r3"
)

// FigureSet is the output of a design's 2D constructor: figures by name and
// the extrusion height of each.
type FigureSet struct {
	Figures map[string]outline.Figure
	Heights map[string]float64
}

// NewFigureSet creates an empty figure set.
func NewFigureSet() FigureSet {
	return FigureSet{
		Figures: make(map[string]outline.Figure),
		Heights: make(map[string]float64),
	}
}

// Add registers a figure with its height.
func (fs FigureSet) Add(name string, fig outline.Figure, height float64) {
	fs.Figures[name] = fig
	fs.Heights[name] = height
}

// Merge copies all figures of other into fs. Figures of other win on name
// clashes.
func (fs FigureSet) Merge(other FigureSet) {
	for name, fig := range other.Figures {
		fs.Add(name, fig, other.Heights[name])
	}
}

// Check verifies that every record of cfg references a figure of fs.
func (fs FigureSet) Check(cfg Configuration, label string) error {
	for i, r := range cfg {
		if _, ok := fs.Figures[r.Figure]; !ok {
			return cnc25d.Fail(label, cnc25d.ErrBadDocument,
				"record #%d references unknown figure %q", i, r.Figure)
		}
	}
	return nil
}

// Axis selects a coordinate axis of the assembly frame.
type Axis int

// The assembly axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

func (a Axis) of(v r3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	}
	return v.Z
}

// Slice describes the region of an assembly to export as cross sections:
// a box given by origin and size, and the positions of the cutting planes
// along each axis.
type Slice struct {
	Origin r3.Vec    `yaml:"origin"`
	Size   r3.Vec    `yaml:"size"`
	X      []float64 `yaml:"x"`
	Y      []float64 `yaml:"y"`
	Z      []float64 `yaml:"z"`
}

// Cut is a single cutting plane.
type Cut struct {
	Axis Axis
	At   float64
}

func (c Cut) String() string {
	return fmt.Sprintf("%s=%g", c.Axis, c.At)
}

// Cuts lists the cutting planes of the slice, z planes first.
func (s Slice) Cuts() []Cut {
	cuts := make([]Cut, 0, len(s.X)+len(s.Y)+len(s.Z))
	for _, z := range s.Z {
		cuts = append(cuts, Cut{AxisZ, z})
	}
	for _, y := range s.Y {
		cuts = append(cuts, Cut{AxisY, y})
	}
	for _, x := range s.X {
		cuts = append(cuts, Cut{AxisX, x})
	}
	return cuts
}

// SliceAround creates a slice spanning box, cut once through its middle
// along every axis.
func SliceAround(box r3.Box) Slice {
	mid := r3.Scale(0.5, r3.Add(box.Min, box.Max))
	return Slice{
		Origin: box.Min,
		Size:   r3.Sub(box.Max, box.Min),
		X:      []float64{mid.X},
		Y:      []float64{mid.Y},
		Z:      []float64{mid.Z},
	}
}

// Section selects the placements whose boxes are crossed by the plane c.
// Boxes merely touching the plane are not included.
func Section(pls []Placement, c Cut) []Placement {
	var sect []Placement
	for _, pl := range pls {
		lo, hi := c.Axis.of(pl.Box.Min), c.Axis.of(pl.Box.Max)
		if lo < c.At-cnc25d.Epsilon && c.At+cnc25d.Epsilon < hi {
			sect = append(sect, pl)
		}
	}
	return sect
}

// Assembly is the output of a design's 3D constructor for one named
// configuration.
type Assembly struct {
	Records Configuration
	Slice   Slice
}

// Builder is implemented by designs. Figures is the 2D constructor,
// Assemblies the 3D constructor. Both receive the effective settings.
type Builder interface {
	Figures(Settings) (FigureSet, error)
	Assemblies(Settings) (map[string]Assembly, error)
}

// Adopt runs a child design and re-situates its reference configuration
// name. It returns the child's figures and the new configuration; the child's
// geometry is used as is.
func Adopt(child Builder, settings Settings, name string,
	situate func(i int, r Record) Situation, label string) (FigureSet, Configuration, error) {
	//
	figs, err := child.Figures(settings)
	if err != nil {
		return FigureSet{}, nil, err
	}
	asms, err := child.Assemblies(settings)
	if err != nil {
		return FigureSet{}, nil, err
	}
	ref, ok := asms[name]
	if !ok {
		return FigureSet{}, nil, cnc25d.Fail(label, cnc25d.ErrBadDocument,
			"child design has no configuration %q", name)
	}
	if err = figs.Check(ref.Records, label); err != nil {
		return FigureSet{}, nil, err
	}
	return figs, ref.Records.Resituate(situate), nil
}
