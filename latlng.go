package geodarray

import (
	"github.com/golang/geo/s2"
)

// FromLatLngs splits points into latitude and longitude arrays (degrees).
func FromLatLngs(points []s2.LatLng) (lat, lon *Array) {
	lat, lon = NewArray(len(points)), NewArray(len(points))
	for i, ll := range points {
		lat.data[i] = ll.Lat.Degrees()
		lon.data[i] = ll.Lng.Degrees()
	}
	return lat, lon
}

// ToLatLngs joins latitude and longitude arrays into points. Elements missing
// in either array are left out and their indices returned in skipped.
func ToLatLngs(lat, lon *Array) (points []s2.LatLng, skipped []int, err error) {
	if err := checkPair("latlng", lat, lon); err != nil {
		return nil, nil, err
	}
	points = make([]s2.LatLng, 0, lat.n)
	for i := 0; i < lat.n; i++ {
		if lat.Missing(i) || lon.Missing(i) {
			skipped = append(skipped, i)
			continue
		}
		points = append(points, s2.LatLngFromDegrees(lat.At(i), lon.At(i)))
	}
	return points, skipped, nil
}
