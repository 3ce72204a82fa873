package iter

import (
	"github.com/shunkakinoki/huffc/internal/optional"
)

// Iterator is a pull-based sequence of values. Next returns None once the
// sequence is exhausted and every call after that. Iterators in this package
// hold no external resources and are fully synchronous.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

// Filter decides which values an iterator passes through.
type Filter[T any] interface {
	Keep(val T) bool
}

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next() optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next() optional.Optional[T] {
	for {
		v := it.iter.Next()
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(v.Value()) {
			return v
		}
	}
}

// Collect drains an iterator into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v := it.Next(); v.IsPresent(); v = it.Next() {
		out = append(out, v.Value())
	}
	return out
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(val T) bool

func (f FilterFunc[T]) Keep(val T) bool {
	return f(val)
}
