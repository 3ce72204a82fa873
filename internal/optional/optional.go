package optional

// Optional represents a value that may be absent. The zero value is None.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

// OrElse returns the contained value when present and the given fallback
// otherwise.
func (self Optional[T]) OrElse(fallback T) T {
	if self.present {
		return self.value
	}
	return fallback
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
