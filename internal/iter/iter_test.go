package iter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type elem struct {
	value int
}

func TestSliceIterator(t *testing.T) {
	t.Parallel()

	numValues := 10
	elems := make([]*elem, 0, numValues)
	for x := 0; x < numValues; x = x + 1 {
		elems = append(elems, &elem{value: x})
	}
	it := NewSlice(elems)
	for x := 0; x < numValues; x = x + 1 {
		val := it.Next()
		require.True(t, val.IsPresent())
		require.Equal(t, x, val.Value().value)
	}
	require.False(t, it.Next().IsPresent())
	require.False(t, it.Next().IsPresent())
}

func TestIteratorFilter(t *testing.T) {
	t.Parallel()

	numValues := 10
	filter := Filter[*elem](FilterFunc[*elem](func(val *elem) bool {
		return val.value%2 == 0
	}))
	elems := make([]*elem, 0, numValues)
	for x := 0; x < numValues; x = x + 1 {
		elems = append(elems, &elem{value: x})
	}
	it := NewIteratorFilter(NewSlice(elems), filter)
	for x := 0; x < numValues; x = x + 2 {
		val := it.Next()
		require.True(t, val.IsPresent())
		require.Equal(t, x, val.Value().value)
	}
	require.False(t, it.Next().IsPresent())
}

func TestCollect(t *testing.T) {
	t.Parallel()

	elems := []*elem{{value: 1}, {value: 2}, {value: 3}}
	out := Collect(NewSlice(elems))
	require.Equal(t, elems, out)

	require.Nil(t, Collect(NewSlice([]*elem{})))
}
