package stack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/errs"
)

func TestStack_DecodeAllPreservesOrder(t *testing.T) {
	s := New()
	for v := range uint64(8) {
		p, err := encoding.Encode(0, 8, v)
		require.NoError(t, err)
		s.Push(p)
	}

	values, err := s.DecodeAll(0, 8)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, values)

	// decoding does not consume the stack
	require.Equal(t, 8, s.Len())
	again, err := s.DecodeAll(0, 8)
	require.NoError(t, err)
	require.Equal(t, values, again)
}

func TestStack_PushPop(t *testing.T) {
	s := NewWithCapacity(4)

	_, ok := s.Pop()
	require.False(t, ok, "pop on an empty stack")
	_, ok = s.Peek()
	require.False(t, ok)

	s.Push(bitpath.MustParse("0"))
	s.Push(bitpath.Path{})
	s.Push(bitpath.MustParse("101"))

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "101", top.String())
	require.Equal(t, 3, s.Len())
	require.Equal(t, 4, s.Bits())

	p, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, "101", p.String())

	p, ok = s.Pop()
	require.True(t, ok)
	require.True(t, p.IsEmpty())

	p, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, "0", p.String())

	_, ok = s.Pop()
	require.False(t, ok)
	require.Zero(t, s.Len())
}

func TestStack_PushValue(t *testing.T) {
	s := New()
	require.NoError(t, s.PushValue(100, 200, 150))
	require.NoError(t, s.PushValue(100, 200, 100))

	err := s.PushValue(100, 200, 200)
	require.ErrorIs(t, err, errs.ErrTargetOutOfBounds)
	require.Equal(t, 2, s.Len(), "failed push must not store anything")

	values, err := s.DecodeAll(100, 200)
	require.NoError(t, err)
	require.Equal(t, []uint64{150, 100}, values)
}

func TestStack_DecodeAllFrom(t *testing.T) {
	s := New()
	want := []uint64{0, 3, 7, 250, 255}
	for _, v := range want {
		p, err := encoding.EncodeFrom(0, 256, v, 4)
		require.NoError(t, err)
		s.Push(p)
	}

	values, err := s.DecodeAllFrom(0, 256, 4)
	require.NoError(t, err)
	require.Equal(t, want, values)

	_, err = s.DecodeAllFrom(0, 256, 0)
	require.ErrorIs(t, err, errs.ErrMidpointOutOfBounds)
}

func TestStack_DecodeAllErrors(t *testing.T) {
	s := New()
	s.Push(bitpath.MustParse("0"))
	s.Push(bitpath.MustParse("0000"))

	_, err := s.DecodeAll(0, 8)
	require.ErrorIs(t, err, errs.ErrIncompletePath)
	require.Contains(t, err.Error(), "entry 1")

	_, err = s.DecodeAll(5, 5)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	values, err := New().DecodeAll(0, 8)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestStack_MismatchedRangeDecodesWrongValue(t *testing.T) {
	// paths carry no range: a path from [0, 8) read over [0, 16) silently
	// yields another value
	s := New()
	require.NoError(t, s.PushValue(0, 8, 0))

	values, err := s.DecodeAll(0, 16)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, values)
}

func TestStack_AllAndReset(t *testing.T) {
	s := New()
	for v := range uint64(4) {
		require.NoError(t, s.PushValue(0, 4, v))
	}

	var idx []int
	for i, p := range s.All() {
		idx = append(idx, i)
		want, err := encoding.Encode(0, 4, uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, p)
	}
	require.Equal(t, []int{0, 1, 2, 3}, idx)

	n := 0
	for range s.All() {
		n++
		break
	}
	require.Equal(t, 1, n)

	s.Reset()
	require.Zero(t, s.Len())
	require.Zero(t, s.Bits())
}

func TestStack_Format(t *testing.T) {
	s := New()
	for v := range uint64(8) {
		require.NoError(t, s.PushValue(0, 8, v))
	}

	want := "encoded: 000\n" +
		"encoded: 00\n" +
		"encoded: 0\n" +
		"encoded: 01\n" +
		"encoded: []\n" +
		"encoded: 10\n" +
		"encoded: 1\n" +
		"encoded: 11\n"

	var buf bytes.Buffer
	require.NoError(t, s.Format(&buf))
	require.Equal(t, want, buf.String())
	require.Equal(t, want, s.String())
	require.Equal(t, 13, s.Bits())
}

func BenchmarkStack_DecodeAll(b *testing.B) {
	s := NewWithCapacity(1024)
	for v := range uint64(1024) {
		_ = s.PushValue(0, 1<<20, v*997)
	}

	for b.Loop() {
		_, _ = s.DecodeAll(0, 1<<20)
	}
}
