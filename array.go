package geodarray

import "math"

// Number is any numeric type that is coerced to float64 by FromValues.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a strided view over a slice of float64 values with an optional
// missing-value mask.
//
// The mask is keyed by position in the backing slice, so every view created
// from an Array by Slice or ReadOnly sees the same missing elements.
// An Array with stride 0 repeats a single value and broadcasts against
// arrays of any length when used as an input. The zero Array is an empty
// array with no mask.
type Array struct {
	data     []float64
	mask     *maskStore
	offset   int
	stride   int
	n        int
	readonly bool
}

// NewArray returns a zeroed writable array of n values.
func NewArray(n int) *Array {
	if n < 0 {
		n = 0
	}
	return &Array{data: make([]float64, n), mask: newMaskStore(), stride: 1, n: n}
}

// Wrap returns an array viewing data. The values are not copied.
func Wrap(data []float64) *Array {
	return &Array{data: data, mask: newMaskStore(), stride: 1, n: len(data)}
}

// Strided returns an array of n values starting at data[offset] and stepping
// by stride. The stride may be zero or negative.
func Strided(data []float64, offset, stride, n int) (*Array, error) {
	if err := checkView(len(data), offset, stride, n); err != nil {
		return nil, err
	}
	return &Array{data: data, mask: newMaskStore(), offset: offset, stride: stride, n: n}, nil
}

// Scalar returns a length 1 array holding v.
func Scalar(v float64) *Array {
	return Wrap([]float64{v})
}

// FromValues copies vals into a new array, converting each to float64.
func FromValues[T Number](vals []T) *Array {
	a := NewArray(len(vals))
	for i, v := range vals {
		a.data[i] = float64(v)
	}
	return a
}

// Masked wraps data and marks the elements at the missing indices.
func Masked(data []float64, missing ...int) (*Array, error) {
	a := Wrap(data)
	for _, i := range missing {
		if i < 0 || i >= a.n {
			return nil, &ArrayError{Offset: i, Stride: 1, Len: 1, Cap: len(data), cause: ErrOutOfRange}
		}
		a.mask.set(i, true)
	}
	return a, nil
}

func checkView(capacity, offset, stride, n int) error {
	bad := &ArrayError{Offset: offset, Stride: stride, Len: n, Cap: capacity, cause: ErrOutOfRange}
	if n < 0 {
		return bad
	}
	if n == 0 {
		return nil
	}
	if offset < 0 || offset >= capacity {
		return bad
	}
	if n > 1 && stride != 0 {
		// bound the stride before multiplying so the last position cannot
		// overflow
		span := (capacity - 1) / (n - 1)
		if stride > span || stride < -span {
			return bad
		}
		last := offset + (n-1)*stride
		if last < 0 || last >= capacity {
			return bad
		}
	}
	return nil
}

// Len returns the logical number of elements.
func (a *Array) Len() int {
	return a.n
}

// Stride returns the step between consecutive elements in the backing slice.
func (a *Array) Stride() int {
	return a.stride
}

// IsReadOnly reports whether the array rejects writes.
func (a *Array) IsReadOnly() bool {
	return a.readonly
}

func (a *Array) pos(i int) int {
	if i < 0 || i >= a.n {
		panic("geodarray: index out of range")
	}
	return a.offset + i*a.stride
}

// At returns element i. Missing elements still return their stored value.
func (a *Array) At(i int) float64 {
	return a.data[a.pos(i)]
}

// Set stores v at element i. It panics if the array is read-only.
func (a *Array) Set(i int, v float64) {
	if a.readonly {
		panic(ErrReadOnly)
	}
	a.data[a.pos(i)] = v
}

// Missing reports whether element i is masked.
func (a *Array) Missing(i int) bool {
	return a.mask.contains(a.pos(i))
}

// SetMissing marks or clears element i in the mask.
func (a *Array) SetMissing(i int, missing bool) {
	a.mask.set(a.pos(i), missing)
}

// MissingCount returns the number of masked logical elements.
func (a *Array) MissingCount() int {
	return a.mask.count(a.offset, a.stride, a.n)
}

// Values returns a copy of the logical elements. Missing elements are NaN.
func (a *Array) Values() []float64 {
	vals := make([]float64, a.n)
	masked := !a.mask.empty()
	for i, p := 0, a.offset; i < a.n; i, p = i+1, p+a.stride {
		if masked && a.mask.contains(p) {
			vals[i] = math.NaN()
		} else {
			vals[i] = a.data[p]
		}
	}
	return vals
}

// Slice returns a view of elements [i, j) sharing storage and mask.
func (a *Array) Slice(i, j int) *Array {
	if i < 0 || j < i || j > a.n {
		panic("geodarray: slice bounds out of range")
	}
	b := *a
	b.offset = a.offset + i*a.stride
	b.n = j - i
	return &b
}

// ReadOnly returns a view sharing storage that is rejected as an output.
func (a *Array) ReadOnly() *Array {
	b := *a
	b.readonly = true
	return &b
}

// Template returns a new zeroed writable array with the same length and no
// missing elements.
func (a *Array) Template() *Array {
	return NewArray(a.n)
}

// checkPair validates a latitude/longitude pair of equal length.
func checkPair(op string, lat, lon *Array) error {
	if lat == nil {
		return argError(op, "lat", ErrNilArray)
	}
	if lon == nil {
		return argError(op, "lon", ErrNilArray)
	}
	if lat.n != lon.n {
		return &ShapeError{Op: op, Arg: "lon", Expected: lat.n, Actual: lon.n}
	}
	return nil
}
