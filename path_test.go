package geodarray

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the polyline from the encoding algorithm documentation
const samplePolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func TestDecodeEncodePolyline(t *testing.T) {
	lat, lon, err := DecodePolyline([]byte(samplePolyline))
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{38.5, 40.7, 43.252}, lat.Values(), approx); diff != "" {
		t.Fatalf("lat mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-120.2, -120.95, -126.453}, lon.Values(), approx); diff != "" {
		t.Fatalf("lon mismatch (-want +got):\n%s", diff)
	}

	enc, err := EncodePolyline(lat, lon)
	require.NoError(t, err)
	assert.Equal(t, samplePolyline, string(enc))

	_, _, err = DecodePolyline([]byte("_p~iF~ps|U_"))
	require.Error(t, err)
}

func TestEncodePolylineSkipsMissing(t *testing.T) {
	lat, err := Masked([]float64{38.5, 0, 40.7, 43.252}, 1)
	require.NoError(t, err)
	lon := Wrap([]float64{-120.2, 0, -120.95, -126.453})
	enc, err := EncodePolyline(lat, lon)
	require.NoError(t, err)
	assert.Equal(t, samplePolyline, string(enc))

	_, err = EncodePolyline(lat, NewArray(2))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestPathLengths(t *testing.T) {
	lat, lon, err := DecodePolyline([]byte(samplePolyline))
	require.NoError(t, err)

	segs, err := WGS84.PathLengths(lat, lon)
	require.NoError(t, err)
	require.Equal(t, 2, segs.Len())

	for i := 0; i < 2; i++ {
		d, err := WGS84.Distance(Scalar(lat.At(i)), Scalar(lon.At(i)), Scalar(lat.At(i+1)), Scalar(lon.At(i+1)))
		require.NoError(t, err)
		assert.Equal(t, d.At(0), segs.At(i))
	}

	total, err := WGS84.PathLength(lat, lon)
	require.NoError(t, err)
	assert.InDelta(t, segs.At(0)+segs.At(1), total, 1e-9)
}

func TestPathLengthsMissingPoint(t *testing.T) {
	lat, err := Masked([]float64{0, 0, 0, 0}, 1)
	require.NoError(t, err)
	lon := Wrap([]float64{0, 1, 2, 3})

	segs, err := Globe.PathLengths(lat, lon)
	require.NoError(t, err)
	assert.True(t, segs.Missing(0))
	assert.True(t, segs.Missing(1))
	assert.False(t, segs.Missing(2))
	assert.True(t, math.IsNaN(segs.At(0)))

	total, err := Globe.PathLength(lat, lon)
	require.NoError(t, err)
	assert.InDelta(t, 6378137*math.Pi/180, total, 1e-6)

	// the input mask is left alone
	assert.Equal(t, 1, lat.MissingCount())
}

func TestPathTooShort(t *testing.T) {
	_, err := WGS84.PathLengths(Scalar(0), Scalar(0))
	require.ErrorIs(t, err, ErrEmptyPath)
	_, err = WGS84.PathLength(NewArray(2), NewArray(3))
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = WGS84.PathLength(nil, NewArray(3))
	require.ErrorIs(t, err, ErrNilArray)
}

func TestLatLngs(t *testing.T) {
	points := []s2.LatLng{
		s2.LatLngFromDegrees(38.5, -120.2),
		s2.LatLngFromDegrees(-10, 170),
		s2.LatLngFromDegrees(0, 0),
	}
	lat, lon := FromLatLngs(points)
	require.Equal(t, 3, lat.Len())
	assert.InDelta(t, 38.5, lat.At(0), 1e-12)
	assert.InDelta(t, 170, lon.At(1), 1e-12)

	lon.SetMissing(1, true)
	back, skipped, err := ToLatLngs(lat, lon)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, skipped)
	require.Len(t, back, 2)
	assert.True(t, back[0].ApproxEqual(points[0]))
	assert.True(t, back[1].ApproxEqual(points[2]))

	_, _, err = ToLatLngs(lat, NewArray(1))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestWriteKML(t *testing.T) {
	lat, err := Masked([]float64{38.5, 99, 40.7}, 1)
	require.NoError(t, err)
	lon := Wrap([]float64{-120.2, 99, -120.95})

	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, "route", lat, lon))
	out := buf.String()
	assert.Contains(t, out, "<name>route</name>")
	assert.Contains(t, out, "<LineString>")
	assert.Contains(t, out, "-120.2,38.5")
	assert.Contains(t, out, "-120.95,40.7")
	assert.False(t, strings.Contains(out, "99"))

	require.ErrorIs(t, WriteKML(&buf, "bad", lat, nil), ErrNilArray)
}
