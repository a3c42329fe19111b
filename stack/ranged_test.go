package stack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/errs"
	"github.com/arloliu/bbse/format"
)

func mustCodec(t *testing.T, start, end uint64, opts ...encoding.CodecOption) *encoding.Codec {
	t.Helper()

	c, err := encoding.NewCodec(start, end, opts...)
	require.NoError(t, err)

	return c
}

func TestRangedStack_HeterogeneousRanges(t *testing.T) {
	small := mustCodec(t, 0, 8)
	large := mustCodec(t, 0, 16)
	biased := mustCodec(t, 1000, 5000, encoding.WithMidpoint(1001))
	single := mustCodec(t, 42, 43)

	s := NewRanged()
	require.NoError(t, s.PushValue(small, 0))
	require.NoError(t, s.PushValue(large, 0))
	require.NoError(t, s.PushValue(biased, 1002))
	require.NoError(t, s.PushValue(single, 42))
	require.NoError(t, s.PushValue(large, 15))

	values, err := s.DecodeAll()
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 0, 1002, 42, 15}, values)
	require.Equal(t, 5, s.Len())
}

func TestRangedStack_PushValueError(t *testing.T) {
	s := NewRanged()
	err := s.PushValue(mustCodec(t, 0, 8), 8)
	require.ErrorIs(t, err, errs.ErrTargetOutOfBounds)
	require.Zero(t, s.Len())
}

func TestRangedStack_NilCodec(t *testing.T) {
	s := NewRanged()

	require.PanicsWithValue(t, "stack: push with a nil codec", func() {
		s.Push(nil, bitpath.MustParse("01"))
	})
	require.PanicsWithValue(t, "stack: push with a nil codec", func() {
		_ = s.PushValue(nil, 3)
	})
	require.Zero(t, s.Len())

	// the stack stays usable
	values, err := s.DecodeAll()
	require.NoError(t, err)
	require.Empty(t, values)

	var buf bytes.Buffer
	require.NoError(t, s.Format(&buf))
	require.Empty(t, buf.String())
}

func TestRangedStack_Pop(t *testing.T) {
	c := mustCodec(t, 0, 8)
	s := NewRanged()

	_, ok := s.Pop()
	require.False(t, ok)

	s.Push(c, bitpath.MustParse("10"))
	e, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, format.Range{Start: 0, End: 8}, e.Range())

	v, err := e.Decode()
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)
	require.Zero(t, s.Len())
}

func TestRangedStack_DecodeAllError(t *testing.T) {
	s := NewRanged()
	s.Push(mustCodec(t, 0, 8), bitpath.MustParse("1"))
	s.Push(mustCodec(t, 0, 2), bitpath.MustParse("1"))

	_, err := s.DecodeAll()
	require.ErrorIs(t, err, errs.ErrIncompletePath)
	require.Contains(t, err.Error(), "entry 1 over [0, 2)")
}

func TestRangedStack_AllAndFormat(t *testing.T) {
	s := NewRanged()
	require.NoError(t, s.PushValue(mustCodec(t, 0, 8), 4))
	require.NoError(t, s.PushValue(mustCodec(t, 10, 20), 10))

	n := 0
	for i, e := range s.All() {
		require.Equal(t, n, i)
		require.NotNil(t, e.Codec)
		n++
	}
	require.Equal(t, 2, n)

	var buf bytes.Buffer
	require.NoError(t, s.Format(&buf))
	require.Equal(t, "encoded: [] [0, 8)\nencoded: 000 [10, 20)\n", buf.String())
}
