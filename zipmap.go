package geodarray

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// cursor walks one array's backing slice.
type cursor struct {
	data []float64
	p    int
	step int
}

// broadcastLen returns the common logical length of arrays. Length 1
// arrays broadcast. On disagreement it returns the expected length and the
// index of the first offending array, otherwise bad is -1. Nil arrays are
// ignored.
func broadcastLen(arrays []*Array) (n, bad int) {
	n = -1
	for i, a := range arrays {
		if a == nil || a.n == 1 {
			continue
		}
		if n < 0 {
			n = a.n
		} else if a.n != n {
			return n, i
		}
	}
	if n < 0 {
		n = 0
		for _, a := range arrays {
			if a != nil {
				n = 1
				break
			}
		}
	}
	return n, -1
}

// attach validates the arguments of one mapping and returns the element
// count. Nothing is modified.
func attach(op string, ins []*Array, inNames []string, outs []*Array, outNames []string) (int, error) {
	for i, a := range ins {
		if a == nil {
			return 0, argError(op, inNames[i], ErrNilArray)
		}
	}
	for i, a := range outs {
		if a == nil {
			return 0, argError(op, outNames[i], ErrNilArray)
		}
		if a.readonly {
			return 0, argError(op, outNames[i], ErrReadOnly)
		}
	}
	count, bad := broadcastLen(ins)
	if bad >= 0 {
		return 0, &ShapeError{Op: op, Arg: inNames[bad], Expected: count, Actual: ins[bad].n}
	}
	for i, a := range outs {
		if a.n != count {
			return 0, &ShapeError{Op: op, Arg: outNames[i], Expected: count, Actual: a.n}
		}
	}
	return count, nil
}

// combinedMask returns the logical indices that are missing in any input.
func (g *Geod) combinedMask(count int, ins []*Array) *roaring64.Bitmap {
	missing := roaring64.New()
	for _, a := range ins {
		if a.mask.empty() && !g.opts.maskNaN {
			continue
		}
		if a.n == 1 && count != 1 {
			if g.isMissing(a, a.offset) {
				missing.AddRange(0, uint64(count))
				return missing
			}
			continue
		}
		for i, p := 0, a.offset; i < a.n; i, p = i+1, p+a.stride {
			if g.isMissing(a, p) {
				missing.Add(uint64(i))
			}
		}
	}
	return missing
}

func (g *Geod) isMissing(a *Array, p int) bool {
	if g.opts.maskNaN && math.IsNaN(a.data[p]) {
		return true
	}
	return a.mask.contains(p)
}

// zipMap runs fn once per unmasked element of the aligned inputs and stores
// its results in the outputs. Masked elements get NaN in every output.
func (g *Geod) zipMap(op string,
	ins []*Array, inNames []string,
	outs []*Array, outNames []string,
	fn func(in *[4]float64, out []float64),
) error {
	count, err := attach(op, ins, inNames, outs, outNames)
	if err != nil {
		g.opts.logger.LogMapping(op, 0, 0, err)
		return err
	}

	missing := g.combinedMask(count, ins)
	anyMissing := !missing.IsEmpty()

	var in [4]float64
	res := make([]float64, len(outs))
	src := make([]cursor, len(ins))
	for i, a := range ins {
		src[i] = cursor{data: a.data, p: a.offset, step: a.stride}
		if a.n == 1 {
			src[i].step = 0
		}
	}
	dst := make([]cursor, len(outs))
	for i, a := range outs {
		dst[i] = cursor{data: a.data, p: a.offset, step: a.stride}
	}

	nan := math.NaN()
	for i := 0; i < count; i++ {
		if anyMissing && missing.Contains(uint64(i)) {
			for k := range dst {
				dst[k].data[dst[k].p] = nan
			}
		} else {
			for k := range src {
				in[k] = src[k].data[src[k].p]
			}
			fn(&in, res)
			for k := range dst {
				dst[k].data[dst[k].p] = res[k]
			}
		}
		for k := range src {
			src[k].p += src[k].step
		}
		for k := range dst {
			dst[k].p += dst[k].step
		}
	}

	for _, a := range outs {
		syncMask(a, missing)
	}

	g.opts.logger.LogMapping(op, count, int(missing.GetCardinality()), nil)
	return nil
}

// syncMask makes the output's mask match the combined input mask.
func syncMask(a *Array, missing *roaring64.Bitmap) {
	a.mask.replace(a.offset, a.stride, a.n, missing)
}
