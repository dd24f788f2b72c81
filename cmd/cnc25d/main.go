/*
Command cnc25d renders the figures of an assembly document and lists the
placements of its assemblies.

	cnc25d svg plate.yaml plate -o plate.svg
	cnc25d place plate.yaml stack

Kernel errors end the program with exit status 2 and a single line on
stderr, starting with the error-id of the failing operation.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/assembly"
	"github.com/npillmayer/cnc25d/polygon"
	"github.com/npillmayer/cnc25d/render"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

const version = "0.1.0"

const usage = `cnc25d.

Usage:
  cnc25d (svg|dxf|png) <doc> <figure> [-o <file>] [--resolution=<n>] [--scale=<s>]
  cnc25d place <doc> <assembly>
  cnc25d -h | --help
  cnc25d --version

Options:
  <doc>             YAML document with figures and assemblies
  <figure>          Name of the figure to render
  <assembly>        Name of the assembly to place
  -o <file>         Output file [default: -]
  --resolution=<n>  Arc sampling resolution, overrides the document
  --scale=<s>       Pixels per mm for png, overrides the document
  -h --help         Show this screen.
  --version         Show version.
`

// margin around a rendered figure, in mm
const margin = 5.0

func main() {
	diagnostics(os.Stderr)
	args, err := docopt.Parse(usage, nil, true, version, false)
	if err == nil {
		err = run(args, os.Stdout)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(err))
		os.Exit(2)
	}
}

// diagnostics routes kernel warnings to w. Debug traces are suppressed.
func diagnostics(w io.Writer) func() {
	return cnc25d.TraceTo(w, tracing.LevelInfo)
}

// diagnostic formats an error as a single line starting with its error-id.
func diagnostic(err error) string {
	if _, ok := cnc25d.LabelOf(err); ok {
		return err.Error()
	}
	return "ERR900 " + err.Error()
}

func run(args map[string]interface{}, stdout io.Writer) error {
	f, err := os.Open(args["<doc>"].(string))
	if err != nil {
		return err
	}
	doc, err := assembly.LoadDocument(f, "ERR901")
	f.Close()
	if err != nil {
		return err
	}
	override, err := overrides(args)
	if err != nil {
		return err
	}
	settings := doc.Effective(override)
	if err = settings.Check("ERR902"); err != nil {
		return err
	}
	if flag(args, "place") {
		return listPlacements(doc, args["<assembly>"].(string), stdout)
	}
	out, closer, err := output(args, stdout)
	if err != nil {
		return err
	}
	format := ""
	for _, f := range []string{"svg", "dxf", "png"} {
		if flag(args, f) {
			format = f
		}
	}
	if format == "" {
		closer()
		return fmt.Errorf("no command given")
	}
	err = drawFigure(doc, args["<figure>"].(string), format, settings, out)
	if cerr := closer(); err == nil {
		err = cerr
	}
	return err
}

func flag(args map[string]interface{}, key string) bool {
	b, ok := args[key].(bool)
	return ok && b
}

func overrides(args map[string]interface{}) (assembly.Settings, error) {
	var s assembly.Settings
	if v, ok := args["--resolution"].(string); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, cnc25d.Fail("ERR903", cnc25d.ErrBadResolution, "%q is not a number", v)
		}
		s.Resolution = n
	}
	if v, ok := args["--scale"].(string); ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, cnc25d.Fail("ERR904", cnc25d.ErrBadDocument, "scale %q is not a number", v)
		}
		s.Scale = x
	}
	return s, nil
}

// output opens the target of -o. The returned closer reports errors of
// closing the file, which may be the first sign of a failed write.
func output(args map[string]interface{}, stdout io.Writer) (io.Writer, func() error, error) {
	name, _ := args["-o"].(string)
	if name == "" || name == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func drawFigure(doc *assembly.Document, name, format string, settings assembly.Settings, w io.Writer) error {
	fig, err := doc.Figure(name, "ERR910")
	if err != nil {
		return err
	}
	lo, hi, err := polygon.BoundingBox(fig, settings.Resolution, "ERR911")
	if err != nil {
		return err
	}
	pad := cnc25d.P(margin, margin)
	lo, hi = lo-pad, hi+pad
	switch format {
	case "svg":
		ss := render.NewSVGSink(w, lo, hi, settings.Style())
		ss.Group(name)
		for _, o := range fig {
			if err = render.DrawOutline(o, ss, settings.Resolution, "ERR912"); err != nil {
				return err
			}
		}
		ss.EndGroup()
		return ss.Commit()
	case "dxf":
		return render.DrawFigure(fig, render.NewDXFSink(w, name), settings.Resolution, "ERR913")
	}
	cv := render.NewCanvasSink(lo, hi, settings.Scale)
	if err = render.DrawFigure(fig, cv, settings.Resolution, "ERR914"); err != nil {
		return err
	}
	return png.Encode(w, cv.Image())
}

func listPlacements(doc *assembly.Document, name string, w io.Writer) error {
	asm, err := doc.Assembly(name, "ERR920")
	if err != nil {
		return err
	}
	pls, err := asm.Records.Place("ERR921")
	if err != nil {
		return err
	}
	for i, pl := range pls {
		fmt.Fprintf(w, "%3d %v\n    %v\n    box %s-%s\n", i, pl.Record, pl.Motion,
			vec(pl.Box.Min), vec(pl.Box.Max))
	}
	b := assembly.Bounds(pls)
	fmt.Fprintf(w, "bounds %s-%s\n", vec(b.Min), vec(b.Max))
	for _, cut := range asm.Slice.Cuts() {
		fmt.Fprintf(w, "cut %v:", cut)
		for _, pl := range assembly.Section(pls, cut) {
			fmt.Fprintf(w, " %s", pl.Record.Figure)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// vec formats a point rounded to µm.
func vec(v r3.Vec) string {
	um := func(x float64) float64 {
		return math.Round(x*1e3)/1e3 + 0 // no -0
	}
	return fmt.Sprintf("(%g,%g,%g)", um(v.X), um(v.Y), um(v.Z))
}
