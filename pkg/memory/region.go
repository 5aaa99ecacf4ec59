// Package memory provides contiguous byte regions for pixel planes.
//
// A Region is either owned, in which case it was obtained from an Allocator
// and must be freed exactly once, or aliased, in which case it wraps memory
// whose lifetime belongs to the caller. Owned regions come from outside the Go
// heap when the native allocator is in use, so their addresses are stable and
// may be handed to C code.
package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	ErrNotAddressable = errors.New("memory is not directly addressable")
	ErrShortRegion    = errors.New("region too small")
	ErrInvalidSize    = errors.New("invalid region size")
)

// live counts owned regions that have not been freed yet.
var live atomic.Int64

// Live returns the number of allocated regions that have not been freed.
func Live() int {
	return int(live.Load())
}

type Region struct {
	id        uuid.UUID
	data      []byte
	owned     bool
	allocator Allocator
	freed     atomic.Bool
}

// Span is a [Offset, Offset+Length) slice of a region.
type Span struct {
	Offset int
	Length int
}

func (s Span) End() int {
	return s.Offset + s.Length
}

// Allocate obtains a new owned region of size bytes from the current allocator.
func Allocate(size int) (*Region, error) {
	return AllocateWith(DefaultAllocator(), size)
}

// AllocateWith obtains a new owned region of size bytes from a.
func AllocateWith(a Allocator, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b, err := a.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("allocating %d bytes: %w", size, err)
	}
	if len(b) < size {
		_ = a.Free(b)
		return nil, fmt.Errorf("allocator returned %d bytes, want %d: %w", len(b), size, ErrShortRegion)
	}
	r := &Region{id: uuid.New(), data: b[:size:size], owned: true, allocator: a}
	live.Add(1)
	Logger().Debug("memory: allocated region", slog.String("id", r.id.String()), slog.Int("size", size))
	return r, nil
}

// Wrap aliases b without taking ownership. The caller keeps b alive for as
// long as the region is in use.
func Wrap(b []byte) (*Region, error) {
	if b == nil {
		return nil, ErrNotAddressable
	}
	return &Region{id: uuid.New(), data: b}, nil
}

func (r *Region) ID() uuid.UUID {
	return r.id
}

// Owned reports whether freeing the region releases memory.
func (r *Region) Owned() bool {
	return r.owned
}

func (r *Region) Len() int {
	return len(r.data)
}

// Freed reports whether Free has been called on an owned region.
func (r *Region) Freed() bool {
	return r.freed.Load()
}

// Bytes returns the whole region, or nil once an owned region is freed.
func (r *Region) Bytes() []byte {
	if r.freed.Load() {
		return nil
	}
	return r.data
}

// Slice divides the region into consecutive spans of the given sizes
// starting at offset zero.
func (r *Region) Slice(sizes ...int) ([]Span, error) {
	spans := make([]Span, len(sizes))
	offset := 0
	for i, n := range sizes {
		if n < 0 {
			return nil, fmt.Errorf("%w: span %d has size %d", ErrInvalidSize, i, n)
		}
		spans[i] = Span{Offset: offset, Length: n}
		offset += n
	}
	if offset > len(r.data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortRegion, offset, len(r.data))
	}
	return spans, nil
}

// Free releases an owned region. It is safe to call more than once; only the
// first call on an owned region reaches the allocator. Free on an aliased
// region does nothing.
func (r *Region) Free() error {
	if !r.owned {
		return nil
	}
	if !r.freed.CompareAndSwap(false, true) {
		return nil
	}
	b := r.data
	r.data = nil
	live.Add(-1)
	if err := r.allocator.Free(b); err != nil {
		Logger().Warn("memory: free failed", slog.String("id", r.id.String()), slog.Any("err", err))
		return fmt.Errorf("freeing region %s: %w", r.id, err)
	}
	Logger().Debug("memory: freed region", slog.String("id", r.id.String()), slog.Int("size", len(b)))
	return nil
}
