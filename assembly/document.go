package assembly

import (
	"io"
	"maps"
	"slices"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/outline"
	"github.com/npillmayer/cnc25d/place"
	"github.com/npillmayer/cnc25d/polygon"
	"gopkg.in/yaml.v3"
)

// Document is a design given as data. It reads from YAML like this:
//
//	settings:
//	  resolution: 12
//	figures:
//	  plate:
//	    height: 3
//	    outlines:
//	      - [[0,0], [20,0,0], [20,20,0], [0,20,0], [0,0,0]]
//	assemblies:
//	  stack:
//	    records:
//	      - {figure: plate, flip: i, orientation: xy}
//	      - {figure: plate, flip: i, orientation: xz, ty: 30}
//
// Record sizes left at zero are taken from the figure: its height for
// size_z, the extent of its bounding box beyond the zero point for size_x
// and size_y. Sizes must be positive after defaulting. Empty flips and
// orientations default to i and xy.
//
// A Document is a Builder.
type Document struct {
	Settings   Settings                `yaml:"settings"`
	Shapes     map[string]figureDecl   `yaml:"figures"`
	Configs    map[string]assemblyDecl `yaml:"assemblies"`
	figures    FigureSet
	assemblies map[string]Assembly
}

type figureDecl struct {
	Height   float64       `yaml:"height"`
	Outlines [][][]float64 `yaml:"outlines"`
}

type assemblyDecl struct {
	Records Configuration `yaml:"records"`
	Slice   *Slice        `yaml:"slice"`
}

var _ Builder = (*Document)(nil)

// LoadDocument reads and checks a YAML document. Every outline is validated,
// every record must reference a known figure and carry valid tags.
func LoadDocument(r io.Reader, label string) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, cnc25d.Fail(label, cnc25d.ErrBadDocument, "%v", err)
	}
	settings := doc.Effective(Settings{})
	if err := settings.Check(label); err != nil {
		return nil, err
	}
	doc.figures = NewFigureSet()
	for _, name := range slices.Sorted(maps.Keys(doc.Shapes)) {
		decl := doc.Shapes[name]
		if decl.Height <= 0 {
			return nil, cnc25d.Fail(label, cnc25d.ErrBadDocument,
				"figure %q has non-positive height %g", name, decl.Height)
		}
		fig, err := outline.ParseFigure(decl.Outlines, label)
		if err != nil {
			return nil, err
		}
		doc.figures.Add(name, fig, decl.Height)
	}
	doc.assemblies = make(map[string]Assembly, len(doc.Configs))
	for _, name := range slices.Sorted(maps.Keys(doc.Configs)) {
		asm, err := doc.complete(doc.Configs[name], settings.Resolution, label)
		if err != nil {
			return nil, err
		}
		doc.assemblies[name] = asm
	}
	tracer().Debugf("loaded %d figures, %d assemblies", len(doc.figures.Figures), len(doc.assemblies))
	return doc, nil
}

// complete fills in defaults of an assembly's records and checks them.
func (doc *Document) complete(decl assemblyDecl, resolution int, label string) (Assembly, error) {
	if err := doc.figures.Check(decl.Records, label); err != nil {
		return Assembly{}, err
	}
	cfg := make(Configuration, len(decl.Records))
	for i, r := range decl.Records {
		if r.Flip == "" {
			r.Flip = place.FlipI
		}
		if r.Orientation == "" {
			r.Orientation = place.OrientXY
		}
		if _, err := place.ParseFlip(string(r.Flip), label); err != nil {
			return Assembly{}, err
		}
		if _, err := place.ParseOrientation(string(r.Orientation), label); err != nil {
			return Assembly{}, err
		}
		if r.SizeZ == 0 {
			r.SizeZ = doc.figures.Heights[r.Figure]
		}
		if r.SizeX == 0 || r.SizeY == 0 {
			_, hi, err := polygon.BoundingBox(doc.figures.Figures[r.Figure], resolution, label)
			if err != nil {
				return Assembly{}, err
			}
			if r.SizeX == 0 {
				r.SizeX = hi.X() - r.ZeroX
			}
			if r.SizeY == 0 {
				r.SizeY = hi.Y() - r.ZeroY
			}
		}
		if r.SizeX <= 0 || r.SizeY <= 0 || r.SizeZ <= 0 {
			return Assembly{}, cnc25d.Fail(label, cnc25d.ErrBadDocument,
				"record #%d (%s) has non-positive size (%g,%g,%g)", i, r.Figure, r.SizeX, r.SizeY, r.SizeZ)
		}
		cfg[i] = r
	}
	asm := Assembly{Records: cfg}
	if decl.Slice != nil {
		asm.Slice = *decl.Slice
	} else {
		pls, err := cfg.Place(label)
		if err != nil {
			return Assembly{}, err
		}
		asm.Slice = SliceAround(Bounds(pls))
	}
	return asm, nil
}

// Effective returns the default settings, overridden by the document's
// settings, overridden by s.
func (doc *Document) Effective(s Settings) Settings {
	return DefaultSettings().Merge(doc.Settings).Merge(s)
}

// Figures returns the figures of the document. Settings do not influence
// figures given as data.
func (doc *Document) Figures(Settings) (FigureSet, error) {
	fs := NewFigureSet()
	fs.Merge(doc.figures)
	return fs, nil
}

// Assemblies returns the configurations of the document.
func (doc *Document) Assemblies(Settings) (map[string]Assembly, error) {
	return maps.Clone(doc.assemblies), nil
}

// Figure returns a figure by name.
func (doc *Document) Figure(name string, label string) (outline.Figure, error) {
	fig, ok := doc.figures.Figures[name]
	if !ok {
		return nil, cnc25d.Fail(label, cnc25d.ErrBadDocument, "no figure %q", name)
	}
	return fig, nil
}

// Assembly returns a configuration by name.
func (doc *Document) Assembly(name string, label string) (Assembly, error) {
	asm, ok := doc.assemblies[name]
	if !ok {
		return Assembly{}, cnc25d.Fail(label, cnc25d.ErrBadDocument, "no assembly %q", name)
	}
	return asm, nil
}
