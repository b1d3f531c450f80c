package geodarray

import "github.com/tidwall/geodesic"

// WGS84 maps arrays over the WGS84 conforming ellipsoid.
var WGS84 = FromEllipsoid(geodesic.WGS84)

// Globe maps arrays over a sphere with the WGS84 equatorial radius.
var Globe = FromEllipsoid(geodesic.Globe)

// Geod maps the direct and inverse geodesic problems over arrays.
//
// A Geod is bound to one ellipsoid for its lifetime. It holds no mutable
// state, so a single Geod may be shared between goroutines as long as
// concurrent calls write to distinct output elements. Disjoint views of one
// backing slice, such as two halves made by Slice, may be mapped at the
// same time since their shared mask is locked.
type Geod struct {
	e    *geodesic.Ellipsoid
	opts options
}

// New initializes a Geod over a new ellipsoid.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
func New(radius, flattening float64, opts ...Option) *Geod {
	return FromEllipsoid(geodesic.NewEllipsoid(radius, flattening), opts...)
}

// NewSpherical initializes a Geod that uses great-circle calculations on a
// sphere of the given radius (meters).
func NewSpherical(radius float64, opts ...Option) *Geod {
	return FromEllipsoid(geodesic.NewSpherical(radius), opts...)
}

// FromEllipsoid binds a Geod to an existing ellipsoid. The ellipsoid is
// only read.
func FromEllipsoid(e *geodesic.Ellipsoid, opts ...Option) *Geod {
	g := &Geod{e: e, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&g.opts)
	}
	return g
}

// With returns a copy of g bound to the same ellipsoid with opts applied on
// top of the current options.
func (g *Geod) With(opts ...Option) *Geod {
	c := &Geod{e: g.e, opts: g.opts}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Ellipsoid returns the underlying ellipsoid.
func (g *Geod) Ellipsoid() *geodesic.Ellipsoid {
	return g.e
}

// Radius of the ellipsoid
func (g *Geod) Radius() float64 {
	return g.e.Radius()
}

// Flattening of the ellipsoid
func (g *Geod) Flattening() float64 {
	return g.e.Flattening()
}

// Spherical returns true if the ellipsoid uses spherical operations.
func (g *Geod) Spherical() bool {
	return g.e.Spherical()
}

// DirectArrays solves the direct geodesic problem for every element.
//
// Inputs lat1, lon1 (degrees), azi1 (degrees) and s12 (meters) are read.
// Outputs lat2, lon2 and azi2 (degrees) are overwritten for every element.
// An element that is missing in any input is NaN and missing in every
// output. Inputs of length 1 broadcast; any other length disagreement fails
// before an output is written.
func (g *Geod) DirectArrays(lat1, lon1, azi1, s12, lat2, lon2, azi2 *Array) error {
	return g.zipMap("direct",
		[]*Array{lat1, lon1, azi1, s12}, []string{"lat1", "lon1", "azi1", "s12"},
		[]*Array{lat2, lon2, azi2}, []string{"lat2", "lon2", "azi2"},
		func(in *[4]float64, out []float64) {
			g.e.Direct(in[0], in[1], in[2], in[3], &out[0], &out[1], &out[2])
		})
}

// ForwardArrays is an alias for DirectArrays.
func (g *Geod) ForwardArrays(lat1, lon1, azi1, s12, lat2, lon2, azi2 *Array) error {
	return g.DirectArrays(lat1, lon1, azi1, s12, lat2, lon2, azi2)
}

// InverseArrays solves the inverse geodesic problem for every element.
//
// Inputs lat1, lon1, lat2, lon2 (degrees) are read. Outputs s12 (meters),
// azi1 and azi2 (degrees) are overwritten for every element, following the
// same masking and broadcasting rules as DirectArrays.
func (g *Geod) InverseArrays(lat1, lon1, lat2, lon2, s12, azi1, azi2 *Array) error {
	return g.zipMap("inverse",
		[]*Array{lat1, lon1, lat2, lon2}, []string{"lat1", "lon1", "lat2", "lon2"},
		[]*Array{s12, azi1, azi2}, []string{"s12", "azi1", "azi2"},
		func(in *[4]float64, out []float64) {
			g.e.Inverse(in[0], in[1], in[2], in[3], &out[0], &out[1], &out[2])
		})
}

// DistanceArrays is InverseArrays with only the distance computed.
func (g *Geod) DistanceArrays(lat1, lon1, lat2, lon2, s12 *Array) error {
	return g.zipMap("distance",
		[]*Array{lat1, lon1, lat2, lon2}, []string{"lat1", "lon1", "lat2", "lon2"},
		[]*Array{s12}, []string{"s12"},
		func(in *[4]float64, out []float64) {
			g.e.Inverse(in[0], in[1], in[2], in[3], &out[0], nil, nil)
		})
}

// Direct allocates the outputs of DirectArrays, sized to the longest input.
//
// Inputs that are not already arrays can be made with Scalar or FromValues.
func (g *Geod) Direct(lat1, lon1, azi1, s12 *Array) (lat2, lon2, azi2 *Array, err error) {
	n := longest(lat1, lon1, azi1, s12)
	lat2, lon2, azi2 = NewArray(n), NewArray(n), NewArray(n)
	if err := g.DirectArrays(lat1, lon1, azi1, s12, lat2, lon2, azi2); err != nil {
		return nil, nil, nil, err
	}
	return lat2, lon2, azi2, nil
}

// Forward is an alias for Direct.
func (g *Geod) Forward(lat1, lon1, azi1, s12 *Array) (lat2, lon2, azi2 *Array, err error) {
	return g.Direct(lat1, lon1, azi1, s12)
}

// DirectLonLat is Direct with the initial point given longitude first.
func (g *Geod) DirectLonLat(lon1, lat1, azi1, s12 *Array) (lat2, lon2, azi2 *Array, err error) {
	return g.Direct(lat1, lon1, azi1, s12)
}

// Inverse allocates the outputs of InverseArrays, sized to the longest input.
func (g *Geod) Inverse(lat1, lon1, lat2, lon2 *Array) (s12, azi1, azi2 *Array, err error) {
	n := longest(lat1, lon1, lat2, lon2)
	s12, azi1, azi2 = NewArray(n), NewArray(n), NewArray(n)
	if err := g.InverseArrays(lat1, lon1, lat2, lon2, s12, azi1, azi2); err != nil {
		return nil, nil, nil, err
	}
	return s12, azi1, azi2, nil
}

// InverseLonLat is Inverse with both points given longitude first.
func (g *Geod) InverseLonLat(lon1, lat1, lon2, lat2 *Array) (s12, azi1, azi2 *Array, err error) {
	return g.Inverse(lat1, lon1, lat2, lon2)
}

// Distance allocates the output of DistanceArrays, sized to the longest
// input.
func (g *Geod) Distance(lat1, lon1, lat2, lon2 *Array) (*Array, error) {
	s12 := NewArray(longest(lat1, lon1, lat2, lon2))
	if err := g.DistanceArrays(lat1, lon1, lat2, lon2, s12); err != nil {
		return nil, err
	}
	return s12, nil
}

// DistanceLonLat is Distance with both points given longitude first.
func (g *Geod) DistanceLonLat(lon1, lat1, lon2, lat2 *Array) (*Array, error) {
	return g.Distance(lat1, lon1, lat2, lon2)
}

// longest returns the length outputs need for the given inputs. When the
// inputs disagree it returns the longest length and the mapping itself
// reports the mismatch.
func longest(arrays ...*Array) int {
	if n, bad := broadcastLen(arrays); bad < 0 {
		return n
	}
	n := 0
	for _, a := range arrays {
		if a != nil && a.n > n {
			n = a.n
		}
	}
	return n
}
