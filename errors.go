package cnc25d

import (
	"errors"
	"fmt"
)

// Error kinds of the kernel. Terminal failures wrap one of these in a *Failure,
// so clients test with errors.Is.
var (
	// ErrDegenerateArc indicates three arc points which coincide or are colinear.
	ErrDegenerateArc = errors.New("degenerate arc")
	// ErrDegenerateLine indicates a line with coinciding endpoints.
	ErrDegenerateLine = errors.New("degenerate line")
	// ErrTriangleInfeasible indicates side lengths which cannot close a triangle.
	ErrTriangleInfeasible = errors.New("triangle infeasible")
	// ErrBadResolution indicates an arc resolution below 3.
	ErrBadResolution = errors.New("bad arc resolution")
	// ErrBadFlip indicates a flip tag outside {i,x,y,z}.
	ErrBadFlip = errors.New("bad flip")
	// ErrBadOrientation indicates an orientation tag outside {xy,xz,yx,yz,zx,zy}.
	ErrBadOrientation = errors.New("bad orientation")
	// ErrShortList indicates an outline with less than two entries.
	ErrShortList = errors.New("outline list too short")
	// ErrBadAnchor indicates a malformed start point of an outline.
	ErrBadAnchor = errors.New("bad outline anchor")
	// ErrBadSegment indicates a malformed outline segment.
	ErrBadSegment = errors.New("bad outline segment")
	// ErrBadDocument indicates an assembly document referencing unknown
	// figures or carrying malformed values.
	ErrBadDocument = errors.New("bad assembly document")
	// ErrInternalInconsistency indicates a failed self-check.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

// Failure is a terminal kernel error. Label is the opaque error-id handed in
// by the caller; it is echoed verbatim in diagnostics.
type Failure struct {
	Label  string
	Kind   error
	Detail string
}

func (f *Failure) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("%s %v", f.Label, f.Kind)
	}
	return fmt.Sprintf("%s %v: %s", f.Label, f.Kind, f.Detail)
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

// Fail creates a *Failure of the given kind and traces it at debug level.
// Reporting the failure is left to whoever ends up handling it.
func Fail(label string, kind error, format string, args ...interface{}) error {
	f := &Failure{
		Label:  label,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
	tracer().Debugf("failure %s", f.Error())
	return f
}

// LabelOf extracts the error-id of a kernel failure. It returns false for
// errors not created by the kernel.
func LabelOf(err error) (string, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Label, true
	}
	return "", false
}

// Warn writes a warning line to the diagnostic stream, prefixed by WARN and the
// caller's label. Warnings never stop a computation.
func Warn(label string, format string, args ...interface{}) {
	tracer().Infof("WARN %s %s", label, fmt.Sprintf(format, args...))
}

// Status is the outcome of a recoverable intersection query.
type Status int

// Outcomes of intersection queries.
const (
	OK      Status = iota // transverse intersection found
	Tangent               // exactly one solution within tolerance
	Miss                  // no real solution
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Tangent:
		return "tangent"
	case Miss:
		return "miss"
	}
	return fmt.Sprintf("status(%d)", int(s))
}
