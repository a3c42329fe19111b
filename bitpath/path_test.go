package bitpath

import (
	"bytes"
	"slices"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/bbse/errs"
)

func TestPath_ZeroValue(t *testing.T) {
	var p Path

	require.True(t, p.IsEmpty())
	require.Zero(t, p.Len())
	require.Empty(t, p.String())
	require.Empty(t, p.Bytes())
	require.Zero(t, p.Uint64())
	require.Equal(t, Path{}, p)
}

func TestPath_PushAndBit(t *testing.T) {
	var p Path
	p.Push(true)
	p.Push(false)
	p.Push(true)
	p.Push(true)

	require.Equal(t, 4, p.Len())
	require.True(t, p.Bit(0))
	require.False(t, p.Bit(1))
	require.True(t, p.Bit(2))
	require.True(t, p.Bit(3))
	require.Equal(t, "1011", p.String())
	require.Equal(t, uint64(0b1011), p.Uint64())

	require.Panics(t, func() { p.Bit(4) })
	require.Panics(t, func() { p.Bit(-1) })
}

func TestPath_PushFull(t *testing.T) {
	var p Path
	for range MaxLen {
		p.Push(true)
	}
	require.Equal(t, MaxLen, p.Len())
	require.Equal(t, ^uint64(0), p.Uint64())
	require.Panics(t, func() { p.Push(false) })
}

func TestPath_Equality(t *testing.T) {
	a := MustParse("0101")
	b := MustParse("0101")
	c := MustParse("01010")

	require.True(t, a == b)
	require.False(t, a == c, "trailing zero decisions must still distinguish paths")
	require.Equal(t, a, c.Prefix(4))

	seen := map[Path]int{a: 1}
	seen[c] = 2
	require.Len(t, seen, 2)
}

func TestPath_All(t *testing.T) {
	p := MustParse("110010")
	got := slices.Collect(p.All())
	require.Equal(t, []bool{true, true, false, false, true, false}, got)

	// early break
	n := 0
	for range p.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestPath_Prefix(t *testing.T) {
	p := MustParse("10111")

	require.Equal(t, Path{}, p.Prefix(0))
	require.Equal(t, Path{}, p.Prefix(-3))
	require.Equal(t, "101", p.Prefix(3).String())
	require.Equal(t, p, p.Prefix(5))
	require.Equal(t, p, p.Prefix(99))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"simple", "0110", "0110", nil},
		{"grouped", "0110_1001 11", "0110100111", nil},
		{"bad rune", "01x0", "", errs.ErrInvalidPathString},
		{"too long", string(bytes.Repeat([]byte{'1'}, MaxLen+1)), "", errs.ErrPathTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, p.String())
		})
	}

	require.Panics(t, func() { MustParse("2") })
}

func TestFromUint64(t *testing.T) {
	p, err := FromUint64(0b011, 3)
	require.NoError(t, err)
	require.Equal(t, "011", p.String())

	p, err = FromUint64(0xFF, 0)
	require.NoError(t, err)
	require.True(t, p.IsEmpty())

	_, err = FromUint64(1, MaxLen+1)
	require.ErrorIs(t, err, errs.ErrPathTooLong)
}

func TestPath_Bytes(t *testing.T) {
	tests := []struct {
		path string
		want []byte
	}{
		{"", []byte{}},
		{"1", []byte{0x80}},
		{"0000_0001", []byte{0x01}},
		{"1100_1111_0101_0101", []byte{0xcf, 0x55}},
		{"1010_1010_1", []byte{0xaa, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := MustParse(tt.path)
			require.Equal(t, tt.want, p.Bytes())
			require.Equal(t, len(tt.want), p.ByteLen())

			back, err := FromBytes(p.Bytes(), p.Len())
			require.NoError(t, err)
			require.Equal(t, p, back)
		})
	}
}

func TestPath_AppendBytes(t *testing.T) {
	dst := []byte{0xde, 0xad}
	dst = MustParse("1111").AppendBytes(dst)
	require.Equal(t, []byte{0xde, 0xad, 0xf0}, dst)
}

func TestFromBytes_Errors(t *testing.T) {
	_, err := FromBytes([]byte{0xff}, 9)
	require.ErrorIs(t, err, errs.ErrIncompletePath)

	_, err = FromBytes(make([]byte, 16), MaxLen+1)
	require.ErrorIs(t, err, errs.ErrPathTooLong)

	// padding bits beyond n are dropped
	p, err := FromBytes([]byte{0xff}, 3)
	require.NoError(t, err)
	require.Equal(t, "111", p.String())
	require.Equal(t, MustParse("111"), p)
}

func TestFromBytes_ClearsPadding(t *testing.T) {
	tests := []struct {
		data []byte
		n    int
		want string
	}{
		{[]byte{0xff}, 3, "111"},
		{[]byte{0xff}, 0, ""},
		{[]byte{0xff, 0xff}, 9, "111111111"},
		{[]byte{0xa5, 0xff, 0x00}, 12, "1010_0101_1111"},
	}

	for _, tt := range tests {
		p, err := FromBytes(tt.data, tt.n)
		require.NoError(t, err)

		want := MustParse(tt.want)
		require.True(t, p == want, "FromBytes(%x, %d) = %q", tt.data, tt.n, p)
		require.Equal(t, want.Bytes(), p.Bytes())

		owners := map[Path]int{want: 1}
		require.Contains(t, owners, p)
	}

	// later pushes must not pick up stale padding
	p, err := FromBytes([]byte{0xff}, 3)
	require.NoError(t, err)
	p.Push(false)
	require.Equal(t, "1110", p.String())
	require.Equal(t, []byte{0xe0}, p.Bytes())
}

func TestPath_BitStream(t *testing.T) {
	paths := []Path{
		MustParse("0"),
		{},
		MustParse("1011"),
		MustParse("1100_1010_0110"),
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, p := range paths {
		require.NoError(t, p.Write(w))
	}
	require.NoError(t, w.Close())
	// 17 bits of payload round up to 3 bytes
	require.Equal(t, 3, buf.Len())

	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	for _, want := range paths {
		got, err := Read(r, want.Len())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := Read(r, MaxLen+1)
	require.ErrorIs(t, err, errs.ErrPathTooLong)
}

func TestRead_ShortStream(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xff}))
	_, err := Read(r, 16)
	require.Error(t, err)
}

func BenchmarkPath_Push(b *testing.B) {
	for b.Loop() {
		var p Path
		for i := range 32 {
			p.Push(i%3 == 0)
		}
		_ = p
	}
}
