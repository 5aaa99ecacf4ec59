package memory

import (
	"errors"
	"testing"
)

type countingAllocator struct {
	allocs, frees int
}

func (a *countingAllocator) Alloc(size int) ([]byte, error) {
	a.allocs++
	return make([]byte, size), nil
}

func (a *countingAllocator) Free([]byte) error {
	a.frees++
	return nil
}

func TestAllocate_FreeOnce(t *testing.T) {
	a := &countingAllocator{}
	before := Live()

	r, err := AllocateWith(a, 64)
	if err != nil {
		t.Fatalf("AllocateWith failed: %v", err)
	}
	if !r.Owned() {
		t.Error("Owned() = false, want true")
	}
	if r.Len() != 64 {
		t.Errorf("Len() = %d, want 64", r.Len())
	}
	if Live() != before+1 {
		t.Errorf("Live() = %d, want %d", Live(), before+1)
	}

	for i := 0; i < 3; i++ {
		if err := r.Free(); err != nil {
			t.Fatalf("Free #%d failed: %v", i, err)
		}
	}
	if a.frees != 1 {
		t.Errorf("allocator frees = %d, want 1", a.frees)
	}
	if Live() != before {
		t.Errorf("Live() = %d, want %d", Live(), before)
	}
	if r.Bytes() != nil {
		t.Error("Bytes() after Free should be nil")
	}
	if !r.Freed() {
		t.Error("Freed() = false, want true")
	}
}

func TestAllocate_Native(t *testing.T) {
	r, err := AllocateWith(NativeAllocator{}, 4096+17)
	if err != nil {
		t.Fatalf("AllocateWith failed: %v", err)
	}
	b := r.Bytes()
	b[0], b[len(b)-1] = 1, 2
	if b[0] != 1 || b[len(b)-1] != 2 {
		t.Error("native region not writable")
	}
	if err := r.Free(); err != nil {
		t.Fatalf("Free failed: %v", err)
	}
	if err := r.Free(); err != nil {
		t.Fatalf("second Free failed: %v", err)
	}
}

func TestAllocate_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Allocate(n); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Allocate(%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
}

type shortAllocator struct{ countingAllocator }

func (a *shortAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size-1), nil
}

func TestAllocate_ShortAllocator(t *testing.T) {
	before := Live()
	if _, err := AllocateWith(&shortAllocator{}, 8); !errors.Is(err, ErrShortRegion) {
		t.Errorf("AllocateWith error = %v, want ErrShortRegion", err)
	}
	if Live() != before {
		t.Errorf("Live() = %d, want %d", Live(), before)
	}
}

func TestWrap(t *testing.T) {
	if _, err := Wrap(nil); !errors.Is(err, ErrNotAddressable) {
		t.Errorf("Wrap(nil) error = %v, want ErrNotAddressable", err)
	}

	buf := make([]byte, 10)
	r, err := Wrap(buf)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if r.Owned() {
		t.Error("Owned() = true, want false")
	}
	if err := r.Free(); err != nil {
		t.Fatalf("Free failed: %v", err)
	}
	// aliased memory stays usable after Free
	if len(r.Bytes()) != 10 {
		t.Errorf("Bytes() length = %d, want 10", len(r.Bytes()))
	}
	r.Bytes()[3] = 9
	if buf[3] != 9 {
		t.Error("Wrap should alias the caller's memory")
	}
}

func TestRegion_Slice(t *testing.T) {
	r, _ := Wrap(make([]byte, 36))
	spans, err := r.Slice(24, 12)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	want := []Span{{0, 24}, {24, 12}}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
	if spans[1].End() != 36 {
		t.Errorf("End() = %d, want 36", spans[1].End())
	}

	if _, err := r.Slice(24, 13); !errors.Is(err, ErrShortRegion) {
		t.Errorf("Slice(24, 13) error = %v, want ErrShortRegion", err)
	}
	if _, err := r.Slice(-1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Slice(-1) error = %v, want ErrInvalidSize", err)
	}
}

func TestAllocatorFromEnv(t *testing.T) {
	if _, ok := allocatorFromEnv("heap").(HeapAllocator); !ok {
		t.Error("allocatorFromEnv(heap) is not HeapAllocator")
	}
	if _, ok := allocatorFromEnv(" HEAP ").(HeapAllocator); !ok {
		t.Error("allocatorFromEnv( HEAP ) is not HeapAllocator")
	}
	for _, v := range []string{"", "native", "bogus"} {
		if _, ok := allocatorFromEnv(v).(NativeAllocator); !ok {
			t.Errorf("allocatorFromEnv(%q) is not NativeAllocator", v)
		}
	}
}

func TestSetAllocator(t *testing.T) {
	orig := DefaultAllocator()
	t.Cleanup(func() { SetAllocator(orig) })

	a := &countingAllocator{}
	SetAllocator(a)
	r, err := Allocate(4)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	SetAllocator(nil)
	if _, ok := DefaultAllocator().(NativeAllocator); !ok {
		t.Error("SetAllocator(nil) should restore NativeAllocator")
	}
	// the region keeps the allocator it came from
	_ = r.Free()
	if a.allocs != 1 || a.frees != 1 {
		t.Errorf("allocs/frees = %d/%d, want 1/1", a.allocs, a.frees)
	}
}
