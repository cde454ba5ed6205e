package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/errs"
)

func TestNewFlag(t *testing.T) {
	flag := NewFlag()

	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.True(t, flag.IsValidMagicNumber())
	require.Equal(t, uint16(MagicBlockV1Opt), flag.GetMagicNumber())
	require.Equal(t, compress.MethodNone, flag.GetCompression())
	require.NoError(t, flag.Validate())
}

func TestFlagEndianness(t *testing.T) {
	flag := NewFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.True(t, flag.IsValidMagicNumber(), "endianness must not disturb the magic")

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.NoError(t, flag.Validate())
}

func TestFlagCompression(t *testing.T) {
	flag := NewFlag()

	for _, method := range []compress.Method{compress.MethodNone, compress.MethodZstd, compress.MethodS2, compress.MethodLZ4} {
		flag.SetCompression(method)
		require.Equal(t, method, flag.GetCompression())
		require.NoError(t, flag.Validate())
	}
}

func TestFlagValidate(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		flag := NewFlag()
		flag.Options = (flag.Options &^ MagicNumberMask) | 0xAA10

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagicNumber)
	})

	t.Run("reserved bits set", func(t *testing.T) {
		flag := NewFlag()
		flag.Options |= 0x0004

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("reserved byte set", func(t *testing.T) {
		flag := NewFlag()
		flag.Reserved = 0x7F

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("invalid compression", func(t *testing.T) {
		flag := NewFlag()
		flag.Compression = 0x7F

		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("zero flag is invalid", func(t *testing.T) {
		var flag Flag
		require.Error(t, flag.Validate())
	})
}
