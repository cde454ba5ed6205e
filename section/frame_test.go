package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/errs"
)

func TestFrameHeaderRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("frame payload "), 32)
	header := NewFrameHeader(compress.MethodS2, 4096, payload)

	require.Equal(t, uint32(len(payload)), header.CompressedSize)
	require.Equal(t, uint32(4096), header.RawSize)
	require.NoError(t, header.Verify(payload))

	buf := make([]byte, FrameHeaderSize)
	require.NoError(t, header.WriteToSlice(buf))

	parsed, err := ParseFrameHeader(buf)
	require.NoError(t, err)
	require.Equal(t, header, parsed)
	require.NoError(t, parsed.Verify(payload))
}

func TestFrameHeaderChecksumIsDeterministic(t *testing.T) {
	payload := []byte("same bytes")

	h1 := NewFrameHeader(compress.MethodNone, len(payload), payload)
	h2 := NewFrameHeader(compress.MethodNone, len(payload), payload)
	require.Equal(t, h1.Checksum, h2.Checksum)

	// The method byte participates in the checksum.
	h3 := NewFrameHeader(compress.MethodLZ4, len(payload), payload)
	require.NotEqual(t, h1.Checksum, h3.Checksum)
}

func TestFrameHeaderVerify(t *testing.T) {
	payload := []byte("protected payload")
	header := NewFrameHeader(compress.MethodNone, len(payload), payload)

	t.Run("flipped payload byte", func(t *testing.T) {
		corrupted := append([]byte(nil), payload...)
		corrupted[3] ^= 0xFF

		require.ErrorIs(t, header.Verify(corrupted), errs.ErrChecksumMismatch)
	})

	t.Run("wrong payload length", func(t *testing.T) {
		require.ErrorIs(t, header.Verify(payload[:5]), errs.ErrInvalidFrameSize)
	})

	t.Run("tampered stored checksum", func(t *testing.T) {
		tampered := header
		tampered.Checksum++

		require.ErrorIs(t, tampered.Verify(payload), errs.ErrChecksumMismatch)
	})
}

func TestParseFrameHeaderErrors(t *testing.T) {
	t.Run("short buffer", func(t *testing.T) {
		_, err := ParseFrameHeader(make([]byte, FrameHeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidFrameSize)
	})

	t.Run("unknown method byte", func(t *testing.T) {
		header := NewFrameHeader(compress.MethodZstd, 10, []byte("0123456789"))
		buf := make([]byte, FrameHeaderSize)
		require.NoError(t, header.WriteToSlice(buf))
		buf[8] = 0xEE

		_, err := ParseFrameHeader(buf)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})
}

func TestFrameHeaderEmptyPayload(t *testing.T) {
	header := NewFrameHeader(compress.MethodNone, 0, nil)

	require.Zero(t, header.CompressedSize)
	require.NoError(t, header.Verify(nil))
}
