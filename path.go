package geodarray

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// DecodePolyline decodes an encoded polyline into latitude and longitude
// arrays (degrees).
func DecodePolyline(encoded []byte) (lat, lon *Array, err error) {
	coords, _, err := polyline.DecodeCoords(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("decode polyline: %w", err)
	}
	lat, lon = NewArray(len(coords)), NewArray(len(coords))
	for i, c := range coords {
		lat.data[i] = c[0]
		lon.data[i] = c[1]
	}
	return lat, lon, nil
}

// EncodePolyline encodes the points of lat and lon as a polyline. Missing
// points are left out.
func EncodePolyline(lat, lon *Array) ([]byte, error) {
	if err := checkPair("polyline", lat, lon); err != nil {
		return nil, err
	}
	coords := make([][]float64, 0, lat.n)
	for i := 0; i < lat.n; i++ {
		if lat.Missing(i) || lon.Missing(i) {
			continue
		}
		coords = append(coords, []float64{lat.At(i), lon.At(i)})
	}
	return polyline.EncodeCoords(coords), nil
}

// PathLengths returns the geodesic length of each segment of the path
// through lat and lon. The result has one element fewer than the path. A
// segment touching a missing point is NaN and missing.
func (g *Geod) PathLengths(lat, lon *Array) (*Array, error) {
	if err := checkPair("path", lat, lon); err != nil {
		return nil, err
	}
	if lat.n < 2 {
		return nil, ErrEmptyPath
	}
	n := lat.n
	return g.Distance(lat.Slice(0, n-1), lon.Slice(0, n-1), lat.Slice(1, n), lon.Slice(1, n))
}

// PathLength returns the total geodesic length of the path through lat and
// lon, skipping segments that touch a missing point.
func (g *Geod) PathLength(lat, lon *Array) (float64, error) {
	segs, err := g.PathLengths(lat, lon)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := 0; i < segs.n; i++ {
		if !segs.Missing(i) {
			total += segs.At(i)
		}
	}
	return total, nil
}
