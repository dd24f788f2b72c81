package assembly

import (
	"fmt"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/planar"
)

// Settings are the parameters shared by all designs of a document.
// A zero field means "not set".
type Settings struct {
	Resolution  int     `yaml:"resolution"`   // arc sampling resolution, at least 3
	BitRadius   float64 `yaml:"bit_radius"`   // default router bit radius
	StrokeWidth float64 `yaml:"stroke_width"` // SVG stroke width in mm
	Scale       float64 `yaml:"scale"`        // raster pixels per mm
}

// DefaultSettings are used where a document sets nothing.
func DefaultSettings() Settings {
	return Settings{
		Resolution:  10,
		BitRadius:   1,
		StrokeWidth: 0.2,
		Scale:       4,
	}
}

// Merge returns s with every field overridden by the non-zero fields of
// override. Neither argument is modified.
func (s Settings) Merge(override Settings) Settings {
	if override.Resolution != 0 {
		s.Resolution = override.Resolution
	}
	if override.BitRadius != 0 {
		s.BitRadius = override.BitRadius
	}
	if override.StrokeWidth != 0 {
		s.StrokeWidth = override.StrokeWidth
	}
	if override.Scale != 0 {
		s.Scale = override.Scale
	}
	return s
}

// Check verifies the settings before use.
func (s Settings) Check(label string) error {
	if s.Resolution < planar.MinResolution {
		return cnc25d.Fail(label, cnc25d.ErrBadResolution,
			"resolution %d below %d", s.Resolution, planar.MinResolution)
	}
	if s.Scale <= 0 {
		return cnc25d.Fail(label, cnc25d.ErrBadDocument, "scale %g must be positive", s.Scale)
	}
	return nil
}

// Style is the SVG style attribute for the settings' stroke width.
func (s Settings) Style() string {
	return fmt.Sprintf("fill:none;stroke:black;stroke-width:%g", s.StrokeWidth)
}
