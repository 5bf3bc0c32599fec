// Command bezierconv reads stored geometry, rebuilds the editable curve and
// writes the curve's flattened geometry back out.
//
// Input is read from standard input, either one WKT geometry per line or a
// single GeoJSON geometry. Polylines that are the samples of a curve are
// recovered exactly; others are converted with the -mode fallback.
//
//	bezierconv -kind polygon -format geojson < shapes.wkt
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/bezieredit/bezier"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func main() {
	var (
		in        = flag.String("in", "wkt", "input format: wkt or geojson")
		format    = flag.String("format", "wkt", "output format: wkt, geojson or svg")
		mode      = flag.String("mode", "segments", "conversion for polylines that are not curve samples: segments or fit")
		kind      = flag.String("kind", "line", "output geometry: point, line or polygon")
		multi     = flag.Bool("multi", false, "wrap output in a multi-geometry")
		interp    = flag.Int("interpolation", bezier.DefaultInterpolation, "samples per segment")
		tolerance = flag.Float64("tolerance", 0, "fit tolerance; overrides -scale")
		scale     = flag.Float64("scale", 0, "view scale to derive the fit tolerance from")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		bezier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fallback, err := parseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	k, err := bezier.ParseGeometryKind(*kind)
	if err != nil {
		log.Fatal(err)
	}
	opts := []bezier.Option{bezier.WithInterpolation(*interp)}
	switch {
	case *tolerance > 0:
		opts = append(opts, bezier.WithFitTolerance(*tolerance))
	case *scale > 0:
		opts = append(opts, bezier.WithScale(*scale))
	}

	geoms, err := readGeometries(os.Stdin, *in)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	var curves []*bezier.Curve
	for i, g := range geoms {
		c, err := bezier.FromGeometry(g, fallback, opts...)
		if err != nil {
			log.Printf("geometry %d: %v", i, err)
			continue
		}
		curves = append(curves, c)
	}

	w := bufio.NewWriter(os.Stdout)
	if *format == "svg" {
		err = writeSVG(w, curves)
	} else {
		err = writeGeometries(w, curves, k, *multi, *format)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseMode(s string) (bezier.ConversionMode, error) {
	switch s {
	case "segments":
		return bezier.ModeSegments, nil
	case "fit":
		return bezier.ModeFit, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func readGeometries(r io.Reader, format string) ([]geom.T, error) {
	switch format {
	case "wkt":
		var out []geom.T
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
		for line := 1; sc.Scan(); line++ {
			s := strings.TrimSpace(sc.Text())
			if s == "" {
				continue
			}
			g, err := wkt.Unmarshal(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, g)
		}
		return out, sc.Err()
	case "geojson":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		return []geom.T{g}, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func writeGeometries(w io.Writer, curves []*bezier.Curve, kind bezier.GeometryKind, multi bool, format string) error {
	for i, c := range curves {
		g, status := c.Geometry(kind, multi)
		if status != bezier.StatusOK {
			log.Printf("curve %d: cannot write as %v: %v", i, kind, status)
			continue
		}
		var s string
		switch format {
		case "wkt":
			var err error
			if s, err = wkt.Marshal(g); err != nil {
				return err
			}
		case "geojson":
			b, err := geojson.Marshal(g)
			if err != nil {
				return err
			}
			s = string(b)
		default:
			return errors.New("unknown output format " + format)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// writeSVG draws every curve as a path in one document sized to fit their
// control points.
func writeSVG(w io.Writer, curves []*bezier.Curve) error {
	var box bezier.Rect
	for i, c := range curves {
		if i == 0 {
			box = c.ControlBox()
		} else {
			box = box.Union(c.ControlBox())
		}
	}
	box = box.Inflate(1, 1)
	if _, err := fmt.Fprintf(w, "<svg viewBox=\"%g %g %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		box.X0, box.Y0, box.Width(), box.Height()); err != nil {
		return err
	}
	for _, c := range curves {
		if c.AnchorCount() == 0 {
			continue
		}
		if _, err := io.WriteString(w, `<path d="`); err != nil {
			return err
		}
		if err := bezier.WriteSVG(w, c.PathElements(), bezier.SVGOptions{MaxPrecision: 3}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\" fill=\"none\" stroke=\"black\" />\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
