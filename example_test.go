package geodarray_test

import (
	"fmt"

	"github.com/tidwall/geodarray"
)

func ExampleGeod_Direct() {
	lat1 := geodarray.Wrap([]float64{0, 0})
	lon1 := geodarray.Wrap([]float64{0, 0})
	azi1 := geodarray.Scalar(90)
	s12, _ := geodarray.Masked([]float64{111319.49079327357, 0}, 1)

	_, lon2, azi2, err := geodarray.WGS84.Direct(lat1, lon1, azi1, s12)
	if err != nil {
		panic(err)
	}
	for i := 0; i < lon2.Len(); i++ {
		fmt.Printf("%.6f %.6f missing=%v\n", lon2.At(i), azi2.At(i), lon2.Missing(i))
	}
	// Output:
	// 1.000000 90.000000 missing=false
	// NaN NaN missing=true
}

func ExampleGeod_PathLength() {
	lat := geodarray.Wrap([]float64{0, 0, 0})
	lon := geodarray.Wrap([]float64{0, 1, 2})
	total, err := geodarray.Globe.PathLength(lat, lon)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f km\n", total/1000)
	// Output:
	// 222.639 km
}
