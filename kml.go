package geodarray

import (
	"io"

	"github.com/twpayne/go-kml/v2"
)

// WriteKML writes the points of lat and lon as a single named KML
// LineString placemark. Missing points are left out.
func WriteKML(w io.Writer, name string, lat, lon *Array) error {
	if err := checkPair("kml", lat, lon); err != nil {
		return err
	}
	coords := make([]kml.Coordinate, 0, lat.n)
	for i := 0; i < lat.n; i++ {
		if lat.Missing(i) || lon.Missing(i) {
			continue
		}
		coords = append(coords, kml.Coordinate{Lon: lon.At(i), Lat: lat.At(i)})
	}
	doc := kml.KML(
		kml.Placemark(
			kml.Name(name),
			kml.LineString(
				kml.Coordinates(coords...),
			),
		),
	)
	return doc.WriteIndent(w, "", "  ")
}
