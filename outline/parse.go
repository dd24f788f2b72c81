package outline

import (
	"github.com/npillmayer/cnc25d"
)

// Parse validates an outline given in wire format and converts it.
//
// Element 0 is the anchor (x, y) or (x, y, bitRadius). Every following element
// is a line (xend, yend) or (xend, yend, bitRadius), or an arc
// (xmid, ymid, xend, yend) or (xmid, ymid, xend, yend, bitRadius).
//
// It fails with cnc25d.ErrShortList for lists with less than two elements,
// with cnc25d.ErrBadAnchor for a malformed element 0 and with
// cnc25d.ErrBadSegment for any other malformed element. raw is not modified.
func Parse(raw [][]float64, label string) (*Outline, error) {
	if len(raw) < 2 {
		return nil, cnc25d.Fail(label, cnc25d.ErrShortList,
			"outline needs at least 2 elements, has %d", len(raw))
	}
	a := raw[0]
	if len(a) != 2 && len(a) != 3 {
		return nil, cnc25d.Fail(label, cnc25d.ErrBadAnchor,
			"anchor must have 2 coordinates, has %d values", len(a))
	}
	o := Start(cnc25d.P(a[0], a[1]))
	if len(a) == 3 {
		o.AnchorRadius = a[2]
	}
	o.Segments = make([]Segment, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		s := raw[i]
		switch len(s) {
		case 2:
			o.LineTo(cnc25d.P(s[0], s[1]), 0)
		case 3:
			o.LineTo(cnc25d.P(s[0], s[1]), s[2])
		case 4:
			o.ArcTo(cnc25d.P(s[0], s[1]), cnc25d.P(s[2], s[3]), 0)
		case 5:
			o.ArcTo(cnc25d.P(s[0], s[1]), cnc25d.P(s[2], s[3]), s[4])
		default:
			return nil, cnc25d.Fail(label, cnc25d.ErrBadSegment,
				"segment %d has %d values", i, len(s))
		}
	}
	tracer().Debugf("parsed outline %s", AsString(o))
	return o, nil
}

// MustParse is a helper for tests and literal outlines. It panics on
// validation errors.
func MustParse(raw [][]float64) *Outline {
	o, err := Parse(raw, "outline")
	if err != nil {
		panic(err)
	}
	return o
}

// Raw returns the outline in wire format, with bit radii included.
func (o *Outline) Raw() [][]float64 {
	raw := make([][]float64, 0, len(o.Segments)+1)
	raw = append(raw, []float64{o.Anchor.X(), o.Anchor.Y(), o.AnchorRadius})
	for _, seg := range o.Segments {
		if seg.IsArc() {
			raw = append(raw, []float64{seg.Mid.X(), seg.Mid.Y(), seg.End.X(), seg.End.Y(), seg.BitRadius})
		} else {
			raw = append(raw, []float64{seg.End.X(), seg.End.Y(), seg.BitRadius})
		}
	}
	return raw
}

// Closed reports whether a wire format outline ends exactly at its anchor.
// It does not validate the list.
func Closed(raw [][]float64) bool {
	if len(raw) < 2 || len(raw[0]) < 2 {
		return false
	}
	last := raw[len(raw)-1]
	n := len(last)
	if n == 3 || n == 5 { // strip bit radius
		n--
	}
	if n < 2 {
		return false
	}
	return last[n-2] == raw[0][0] && last[n-1] == raw[0][1]
}
