package column

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/wire"
)

func TestNew(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		c, err := New(coltype.String())
		require.NoError(t, err)
		require.IsType(t, &String{}, c)
		require.Equal(t, coltype.String(), c.Type())
	})

	t.Run("fixed string", func(t *testing.T) {
		c, err := New(coltype.FixedString(4))
		require.NoError(t, err)
		require.IsType(t, &FixedString{}, c)
		require.Equal(t, 4, c.(*FixedString).Width())
	})

	t.Run("invalid width", func(t *testing.T) {
		_, err := New(coltype.FixedString(0))
		require.ErrorIs(t, err, errs.ErrInvalidWidth)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := New(coltype.Type{})
		require.ErrorIs(t, err, errs.ErrInvalidColumnType)
	})
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{name: "zero block size", opt: WithBlockSize(0), want: errs.ErrInvalidBlockSize},
		{name: "negative block size", opt: WithBlockSize(-1), want: errs.ErrInvalidBlockSize},
		{name: "negative size estimate", opt: WithSizeEstimate(-1), want: errs.ErrInvalidSizeEstimate},
		{name: "zero lookahead", opt: WithLookahead(0), want: errs.ErrInvalidLookahead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewString(tt.opt)
			require.ErrorIs(t, err, tt.want)
			require.True(t, errs.IsValidation(err))

			_, err = NewFixedString(8, tt.opt)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOptionsApply(t *testing.T) {
	c, err := NewString(WithBlockSize(128), WithSizeEstimate(10), WithLookahead(4))
	require.NoError(t, err)
	require.Equal(t, 128, c.blockSize)
	require.Equal(t, 10, c.estimate)
	require.Equal(t, 4, c.lookahead)
	require.Equal(t, 128, c.nextBlockSize)
}

func TestColumnRoundTripByType(t *testing.T) {
	tests := []struct {
		typ    coltype.Type
		values []string
	}{
		{typ: coltype.String(), values: []string{"", "one", "two two", "three three three"}},
		{typ: coltype.FixedString(8), values: []string{"fixed-01", "fixed-02", "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			src, err := New(tt.typ)
			require.NoError(t, err)
			for _, v := range tt.values {
				require.NoError(t, src.AppendString(v))
			}

			dst := src.CloneEmpty()
			require.NoError(t, loadBody(dst, saveBody(t, src), src.Rows()))

			require.Equal(t, src.Rows(), dst.Rows())
			for i := range src.Rows() {
				want, err := src.At(i)
				require.NoError(t, err)
				got, err := dst.At(i)
				require.NoError(t, err)
				require.Equal(t, want, got, "row %d", i)
			}
		})
	}
}

func BenchmarkStringAppend(b *testing.B) {
	value := []byte("a typical log message payload")

	b.ReportAllocs()
	for b.Loop() {
		c, _ := NewString()
		for range 1000 {
			_ = c.Append(value)
		}
	}
}

func BenchmarkFixedStringAppend(b *testing.B) {
	value := []byte("0123456789abcdef")

	b.ReportAllocs()
	for b.Loop() {
		c, _ := NewFixedString(16)
		for range 1000 {
			_ = c.Append(value)
		}
	}
}

func BenchmarkStringSaveBody(b *testing.B) {
	c, _ := NewString()
	for i := range 1000 {
		_ = c.AppendString(fmt.Sprintf("row-%06d-payload", i))
	}

	w := wire.NewWriter(io.Discard, endian.GetLittleEndianEngine())

	b.ReportAllocs()
	for b.Loop() {
		_ = c.SaveBody(w)
	}
}
