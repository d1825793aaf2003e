// shapetool inspects EasyEDA component payloads and meshes without writing
// a library: decoded records, extents, footprints and VRML scenes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/internal/footprint"
	"github.com/Faultbox/lcsc2kicad/internal/logger"
	"github.com/Faultbox/lcsc2kicad/internal/model3d"
	"github.com/Faultbox/lcsc2kicad/pkg/formats"
	"github.com/Faultbox/lcsc2kicad/pkg/units"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "records", "rec":
		cmdRecords(args)
	case "bbox":
		cmdBBox(args)
	case "footprint", "fp":
		cmdFootprint(args)
	case "wrl":
		cmdWRL(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shapetool - EasyEDA footprint payload inspector

Usage:
  shapetool <command> [options] <file>

Commands:
  records [-dump] <component.json>              List decoded shape records
  bbox <component.json>                         Show the footprint extent
  footprint [-fix_parens] [-o out] <component.json>  Print the KiCad footprint
  wrl [-dump] [-o out] <mesh.obj>               Print the VRML scene

Common options:
  -v    Log skipped records and conversion details to stderr

Examples:
  shapetool records -dump components/5a6b.json
  shapetool footprint -o R_0805.kicad_mod components/5a6b.json
  shapetool wrl 3dmodel/9f1e.obj > R_0805.wrl`)
}

// commonFlags registers the options every command understands.
func commonFlags(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose logging to stderr")
	return fs, verbose
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := logger.New(logger.Options{Level: "debug", Console: os.Stderr})
	if err != nil {
		fail(err)
	}
	return log
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func loadComponent(path string) *formats.Component {
	data, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}
	comp, err := formats.ParseComponent(data)
	if err != nil {
		fail(fmt.Errorf("%s: %w", path, err))
	}
	return comp
}

// output returns stdout or the file named by path.
func output(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		fail(err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			fail(err)
		}
	}
}

func cmdRecords(args []string) {
	fs, _ := commonFlags("records")
	dump := fs.Bool("dump", false, "Dump every record with its fields")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shapetool records [-dump] <component.json>")
		os.Exit(1)
	}

	comp := loadComponent(fs.Arg(0))
	records := formats.DecodeRecords(comp.Shape)
	if *dump {
		spew.Dump(records)
		return
	}

	fmt.Printf("Component: %s (%s)\n", comp.Header.Title, comp.UUID)
	fmt.Printf("Origin:    %g, %g\n", comp.Header.OriginX, comp.Header.OriginY)
	fmt.Printf("Records:   %d\n", len(records))
	fmt.Println()

	tags := make(map[string]int)
	for _, r := range records {
		tags[r.Tag]++
		known := " "
		if _, ok := footprint.Table[r.Tag]; !ok {
			known = "?"
		}
		fmt.Printf("%4d %s %-12s %d fields\n", r.Line, known, r.Tag, len(r.Fields))
	}

	fmt.Println()
	fmt.Println("Records by tag:")
	names := make([]string, 0, len(tags))
	for t := range tags {
		names = append(names, t)
	}
	sort.Strings(names)
	for _, t := range names {
		fmt.Printf("  %-12s %d\n", t, tags[t])
	}
}

func cmdBBox(args []string) {
	fs, verbose := commonFlags("bbox")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shapetool bbox <component.json>")
		os.Exit(1)
	}

	comp := loadComponent(fs.Arg(0))
	res := footprint.Build(comp, footprint.Options{Units: units.Default(), Logger: newLogger(*verbose)})

	fmt.Printf("Footprint:  %s\n", res.Name)
	fmt.Printf("Items:      %d\n", len(res.Footprint.Items))
	fmt.Printf("Models:     %d\n", len(res.Models))
	if res.Box.Empty() {
		fmt.Println("Extent:     empty")
	} else {
		fmt.Printf("Extent:     (%.4f, %.4f) - (%.4f, %.4f) mm\n", res.Box.Min.X, res.Box.Min.Y, res.Box.Max.X, res.Box.Max.Y)
	}
	fmt.Printf("Translated: (%.4f, %.4f) - (%.4f, %.4f) mm\n",
		res.Normalized.Min.X, res.Normalized.Min.Y, res.Normalized.Max.X, res.Normalized.Max.Y)
	fmt.Printf("Shift:      (%.4f, %.4f) mm\n", res.Translation.X, res.Translation.Y)
	for tag, n := range res.Skipped {
		fmt.Printf("Skipped:    %s x%d\n", tag, n)
	}
}

func cmdFootprint(args []string) {
	fs, verbose := commonFlags("footprint")
	fixParens := fs.Bool("fix_parens", false, "Replace closing parentheses in the name")
	out := fs.String("o", "", "Write to file instead of stdout")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shapetool footprint [-fix_parens] [-o out] <component.json>")
		os.Exit(1)
	}

	comp := loadComponent(fs.Arg(0))
	res := footprint.Build(comp, footprint.Options{
		Units:     units.Default(),
		FixParens: *fixParens,
		Logger:    newLogger(*verbose),
	})

	w, done := output(*out)
	defer done()
	if err := res.Footprint.Write(w); err != nil {
		fail(err)
	}
}

func cmdWRL(args []string) {
	fs, verbose := commonFlags("wrl")
	dump := fs.Bool("dump", false, "Dump the parsed mesh instead of the scene")
	out := fs.String("o", "", "Write to file instead of stdout")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shapetool wrl [-dump] [-o out] <mesh.obj>")
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fail(err)
	}
	mesh, err := formats.ParseMesh(string(data), units.Default().MeshRatio)
	if err != nil {
		fail(fmt.Errorf("%s: %w", fs.Arg(0), err))
	}
	if *dump {
		spew.Dump(mesh)
		return
	}

	scene := &model3d.Scene{Shapes: model3d.Shapes(mesh, newLogger(*verbose))}
	w, done := output(*out)
	defer done()
	if err := scene.Write(w); err != nil {
		fail(err)
	}
}
