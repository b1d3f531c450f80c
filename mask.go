package geodarray

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// maskStore holds the missing positions of one backing slice. Every view of
// that slice points at the same store, so all access goes through mu. A nil
// store is empty.
type maskStore struct {
	mu sync.RWMutex
	bm *roaring64.Bitmap
}

func newMaskStore() *maskStore {
	return &maskStore{bm: roaring64.New()}
}

func (m *maskStore) empty() bool {
	if m == nil {
		return true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bm.IsEmpty()
}

func (m *maskStore) contains(p int) bool {
	if m == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bm.Contains(uint64(p))
}

func (m *maskStore) set(p int, missing bool) {
	if m == nil {
		if missing {
			panic("geodarray: array has no mask")
		}
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if missing {
		m.bm.Add(uint64(p))
	} else {
		m.bm.Remove(uint64(p))
	}
}

// count returns how many of the n positions starting at offset and stepping
// by stride are missing.
func (m *maskStore) count(offset, stride, n int) int {
	if m == nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.bm.IsEmpty() {
		return 0
	}
	c := 0
	for i, p := 0, offset; i < n; i, p = i+1, p+stride {
		if m.bm.Contains(uint64(p)) {
			c++
		}
	}
	return c
}

// replace clears the n positions of a view and then marks the logical
// indices in missing, all under one lock.
func (m *maskStore) replace(offset, stride, n int, missing *roaring64.Bitmap) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bm.IsEmpty() {
		for i, p := 0, offset; i < n; i, p = i+1, p+stride {
			m.bm.Remove(uint64(p))
		}
	}
	it := missing.Iterator()
	for it.HasNext() {
		m.bm.Add(uint64(offset + int(it.Next())*stride))
	}
}
