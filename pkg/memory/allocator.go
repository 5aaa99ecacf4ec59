package memory

import (
	"os"
	"strings"
	"sync/atomic"
)

// Allocator obtains and releases contiguous byte regions.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte) error
}

// NativeAllocator maps memory outside the Go heap. On platforms without a
// native mapping primitive it falls back to the Go heap.
type NativeAllocator struct{}

func (NativeAllocator) Alloc(size int) ([]byte, error) {
	return nativeAlloc(size)
}

func (NativeAllocator) Free(b []byte) error {
	return nativeFree(b)
}

// HeapAllocator allocates from the Go heap. Freeing drops the reference and
// leaves reclamation to the garbage collector.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (HeapAllocator) Free([]byte) error {
	return nil
}

var current atomic.Pointer[Allocator]

func init() {
	SetAllocator(allocatorFromEnv(os.Getenv("YUV_ALLOCATOR")))
}

// allocatorFromEnv maps YUV_ALLOCATOR to an allocator; empty or unknown -> native.
func allocatorFromEnv(v string) Allocator {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "heap", "go":
		return HeapAllocator{}
	default:
		return NativeAllocator{}
	}
}

// SetAllocator replaces the allocator used by Allocate. Regions keep the
// allocator they were created with, so switching does not affect live regions.
// Passing nil restores the native allocator.
func SetAllocator(a Allocator) {
	if a == nil {
		a = NativeAllocator{}
	}
	current.Store(&a)
}

func DefaultAllocator() Allocator {
	return *current.Load()
}
