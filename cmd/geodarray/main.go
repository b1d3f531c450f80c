package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/geodarray"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch command := os.Args[1]; command {
	case "direct", "forward":
		err = runDirect(os.Args[2:], os.Stdin, os.Stdout)
	case "inverse":
		err = runInverse(os.Args[2:], os.Stdin, os.Stdout)
	case "distance":
		err = runDistance(os.Args[2:], os.Stdin, os.Stdout)
	case "path":
		err = runPath(os.Args[2:], os.Stdin, os.Stdout)
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printUsage() {
	fmt.Println("Usage: geodarray <command> [flags] < input.csv")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  direct    lat1,lon1,azi1,s12 -> lat2,lon2,azi2")
	fmt.Println("  inverse   lat1,lon1,lat2,lon2 -> s12,azi1,azi2")
	fmt.Println("  distance  lat1,lon1,lat2,lon2 -> s12")
	fmt.Println("  path      lat,lon rows (or -polyline) -> segment lengths")
	fmt.Println()
	fmt.Println("Empty cells are treated as missing and produce NaN.")
	fmt.Println("Flags:")
	fmt.Println("  -ellipsoid wgs84|globe  (default wgs84)")
	fmt.Println("  -lonlat                 points are given longitude first")
	fmt.Println("  -v                      log each mapping to stderr")
}

type commonFlags struct {
	ellipsoid string
	lonlat    bool
	verbose   bool
}

func newFlagSet(name string, cf *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cf.ellipsoid, "ellipsoid", "wgs84", "Ellipsoid: wgs84 or globe")
	fs.BoolVar(&cf.lonlat, "lonlat", false, "Points are given longitude first")
	fs.BoolVar(&cf.verbose, "v", false, "Log each mapping to stderr")
	return fs
}

func (cf *commonFlags) geod() (*geodarray.Geod, error) {
	var g *geodarray.Geod
	switch strings.ToLower(cf.ellipsoid) {
	case "wgs84":
		g = geodarray.WGS84
	case "globe", "sphere":
		g = geodarray.Globe
	default:
		return nil, fmt.Errorf("unknown ellipsoid %q", cf.ellipsoid)
	}
	if cf.verbose {
		g = g.With(geodarray.WithLogger(geodarray.NewTextLogger(os.Stderr, slog.LevelDebug)))
	}
	return g, nil
}

func runDirect(args []string, r io.Reader, w io.Writer) error {
	var cf commonFlags
	if err := newFlagSet("direct", &cf).Parse(args); err != nil {
		return err
	}
	g, err := cf.geod()
	if err != nil {
		return err
	}
	cols, err := readColumns(r, 4)
	if err != nil {
		return err
	}
	lat1, lon1 := cols[0], cols[1]
	if cf.lonlat {
		lat1, lon1 = lon1, lat1
	}
	lat2, lon2, azi2, err := g.Direct(lat1, lon1, cols[2], cols[3])
	if err != nil {
		return err
	}
	if cf.lonlat {
		return writeColumns(w, []string{"lon2", "lat2", "azi2"}, lon2, lat2, azi2)
	}
	return writeColumns(w, []string{"lat2", "lon2", "azi2"}, lat2, lon2, azi2)
}

func readPoints(cf *commonFlags, r io.Reader) (lat1, lon1, lat2, lon2 *geodarray.Array, err error) {
	cols, err := readColumns(r, 4)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if cf.lonlat {
		return cols[1], cols[0], cols[3], cols[2], nil
	}
	return cols[0], cols[1], cols[2], cols[3], nil
}

func runInverse(args []string, r io.Reader, w io.Writer) error {
	var cf commonFlags
	if err := newFlagSet("inverse", &cf).Parse(args); err != nil {
		return err
	}
	g, err := cf.geod()
	if err != nil {
		return err
	}
	lat1, lon1, lat2, lon2, err := readPoints(&cf, r)
	if err != nil {
		return err
	}
	s12, azi1, azi2, err := g.Inverse(lat1, lon1, lat2, lon2)
	if err != nil {
		return err
	}
	return writeColumns(w, []string{"s12", "azi1", "azi2"}, s12, azi1, azi2)
}

func runDistance(args []string, r io.Reader, w io.Writer) error {
	var cf commonFlags
	if err := newFlagSet("distance", &cf).Parse(args); err != nil {
		return err
	}
	g, err := cf.geod()
	if err != nil {
		return err
	}
	lat1, lon1, lat2, lon2, err := readPoints(&cf, r)
	if err != nil {
		return err
	}
	s12, err := g.Distance(lat1, lon1, lat2, lon2)
	if err != nil {
		return err
	}
	return writeColumns(w, []string{"s12"}, s12)
}

func runPath(args []string, r io.Reader, w io.Writer) error {
	var cf commonFlags
	fs := newFlagSet("path", &cf)
	encoded := fs.String("polyline", "", "Encoded polyline (instead of CSV input)")
	kmlPath := fs.String("kml", "", "Also write the path as KML to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	g, err := cf.geod()
	if err != nil {
		return err
	}

	var lat, lon *geodarray.Array
	if *encoded != "" {
		lat, lon, err = geodarray.DecodePolyline([]byte(*encoded))
		if err != nil {
			return err
		}
	} else {
		cols, err := readColumns(r, 2)
		if err != nil {
			return err
		}
		lat, lon = cols[0], cols[1]
		if cf.lonlat {
			lat, lon = lon, lat
		}
	}

	segs, err := g.PathLengths(lat, lon)
	if err != nil {
		return err
	}
	if *kmlPath != "" {
		f, err := os.Create(*kmlPath)
		if err != nil {
			return err
		}
		if err := geodarray.WriteKML(f, "path", lat, lon); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return writeColumns(w, []string{"s12"}, segs)
}

// readColumns reads ncol numeric CSV columns. Empty cells become missing
// elements. A first row that does not parse is treated as a header.
func readColumns(r io.Reader, ncol int) ([]*geodarray.Array, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = ncol
	cr.TrimLeadingSpace = true

	vals := make([][]float64, ncol)
	missing := make([][]int, ncol)
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		parsed := make([]float64, ncol)
		var perr error
		for c, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" || strings.EqualFold(cell, "nan") {
				parsed[c] = math.NaN()
				continue
			}
			if parsed[c], perr = strconv.ParseFloat(cell, 64); perr != nil {
				break
			}
		}
		if perr != nil {
			if row == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", row+1, perr)
		}
		for c, v := range parsed {
			if math.IsNaN(v) {
				missing[c] = append(missing[c], len(vals[c]))
			}
			vals[c] = append(vals[c], v)
		}
	}

	cols := make([]*geodarray.Array, ncol)
	for c := range cols {
		a, err := geodarray.Masked(vals[c], missing[c]...)
		if err != nil {
			return nil, err
		}
		cols[c] = a
	}
	return cols, nil
}

func writeColumns(w io.Writer, header []string, cols ...*geodarray.Array) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(cols))
	for i := 0; i < cols[0].Len(); i++ {
		for c, a := range cols {
			if a.Missing(i) {
				rec[c] = "NaN"
			} else {
				rec[c] = strconv.FormatFloat(a.At(i), 'f', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
