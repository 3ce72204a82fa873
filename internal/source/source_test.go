// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesProvenance(t *testing.T) {
	t.Parallel()

	text := "0123456789"

	testCases := []struct {
		name string
		prov []Provenance
		ok   bool
	}{
		{
			name: "empty map",
			prov: nil,
			ok:   true,
		},
		{
			name: "contiguous",
			prov: []Provenance{
				{File: "a", Start: 0, End: 4},
				{File: "b", Start: 4, End: 10},
			},
			ok: true,
		},
		{
			name: "gap between records",
			prov: []Provenance{
				{File: "a", Start: 0, End: 4},
				{File: "b", Start: 6, End: 10},
			},
			ok: true,
		},
		{
			name: "overlapping records",
			prov: []Provenance{
				{File: "a", Start: 0, End: 5},
				{File: "b", Start: 4, End: 10},
			},
			ok: false,
		},
		{
			name: "out of order records",
			prov: []Provenance{
				{File: "b", Start: 4, End: 10},
				{File: "a", Start: 0, End: 4},
			},
			ok: false,
		},
		{
			name: "record beyond buffer",
			prov: []Provenance{
				{File: "a", Start: 0, End: 11},
			},
			ok: false,
		},
		{
			name: "inverted record",
			prov: []Provenance{
				{File: "a", Start: 4, End: 2},
			},
			ok: false,
		},
	}

	for _, testCase := range testCases {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf, err := New(text, tc.prov)
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, buf)
				require.Equal(t, len(text), buf.Len())
				return
			}
			require.ErrorIs(t, err, ErrProvenance)
		})
	}
}

func TestOriginOf(t *testing.T) {
	t.Parallel()

	// "a" covers [0,4), a synthetic gap covers [4,6), "b" covers [6,10).
	buf, err := New("0123xx6789", []Provenance{
		{File: "a", Start: 0, End: 4},
		{File: "b", Start: 6, End: 10},
	})
	require.NoError(t, err)

	for offset := 0; offset < 4; offset = offset + 1 {
		require.Equal(t, FileID("a"), buf.OriginOf(offset).Value(), "offset %d", offset)
	}
	for offset := 4; offset < 6; offset = offset + 1 {
		require.False(t, buf.OriginOf(offset).IsPresent(), "offset %d", offset)
	}
	for offset := 6; offset < 10; offset = offset + 1 {
		require.Equal(t, FileID("b"), buf.OriginOf(offset).Value(), "offset %d", offset)
	}
	require.False(t, buf.OriginOf(10).IsPresent())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	buf := Flatten([]Part{
		{File: "main.huff", Content: "macro\n"},
		{File: "util.huff", Content: "takes"},
	})
	require.Equal(t, "macro\ntakes", buf.Text())
	require.Equal(t, FileID("main.huff"), buf.OriginOf(0).Value())
	require.Equal(t, FileID("main.huff"), buf.OriginOf(5).Value())
	require.Equal(t, FileID("util.huff"), buf.OriginOf(6).Value())
	require.Equal(t, FileID("util.huff"), buf.OriginOf(10).Value())
	require.False(t, buf.OriginOf(11).IsPresent())
}

func TestResolveAndSlice(t *testing.T) {
	t.Parallel()

	buf := Flatten([]Part{
		{File: "a.huff", Content: "hello world"},
	})
	span := buf.Resolve(6, 11)
	require.Equal(t, 6, span.Start)
	require.Equal(t, 11, span.End)
	require.Equal(t, 5, span.Len())
	require.Equal(t, FileID("a.huff"), span.File.Value())
	require.Equal(t, "world", buf.Slice(span))
	require.Equal(t, "[6, 11)", span.String())
}

func TestLineCol(t *testing.T) {
	t.Parallel()

	buf, err := New("ab\ncd\n\nef", nil)
	require.NoError(t, err)

	testCases := []struct {
		offset int
		line   int
		col    int
	}{
		{offset: 0, line: 1, col: 1},
		{offset: 1, line: 1, col: 2},
		{offset: 2, line: 1, col: 3},
		{offset: 3, line: 2, col: 1},
		{offset: 5, line: 2, col: 3},
		{offset: 6, line: 3, col: 1},
		{offset: 7, line: 4, col: 1},
		{offset: 9, line: 4, col: 3},
	}
	for _, tc := range testCases {
		line, col := buf.LineCol(tc.offset)
		require.Equal(t, tc.line, line, "offset %d", tc.offset)
		require.Equal(t, tc.col, col, "offset %d", tc.offset)
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	buf, err := New("ab\ncd\n\nef", nil)
	require.NoError(t, err)

	text, start := buf.LineAt(4)
	require.Equal(t, "cd", text)
	require.Equal(t, 3, start)

	text, start = buf.LineAt(6)
	require.Equal(t, "", text)
	require.Equal(t, 6, start)

	text, start = buf.LineAt(8)
	require.Equal(t, "ef", text)
	require.Equal(t, 7, start)
}
