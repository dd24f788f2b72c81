package outline

import (
	"github.com/npillmayer/cnc25d"
)

// Figure is a set of outlines forming a planar region. By convention outline 0
// is the outer contour and the others are holes, but no parity is enforced.
type Figure []*Outline

// ParseFigure parses every outline of a figure given in wire format.
func ParseFigure(raw [][][]float64, label string) (Figure, error) {
	fig := make(Figure, 0, len(raw))
	for _, r := range raw {
		o, err := Parse(r, label)
		if err != nil {
			return nil, err
		}
		fig = append(fig, o)
	}
	return fig, nil
}

// Closed is a predicate: are all outlines of the figure closed?
func (fig Figure) Closed() bool {
	for _, o := range fig {
		if !o.Closed() {
			return false
		}
	}
	return len(fig) > 0
}

// Transformed maps every outline of the figure by m.
func (fig Figure) Transformed(m cnc25d.AT) Figure {
	t := make(Figure, len(fig))
	for i, o := range fig {
		t[i] = o.Transformed(m)
	}
	return t
}

// Raw returns the figure in wire format.
func (fig Figure) Raw() [][][]float64 {
	raw := make([][][]float64, len(fig))
	for i, o := range fig {
		raw[i] = o.Raw()
	}
	return raw
}
