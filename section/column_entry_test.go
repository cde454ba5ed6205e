package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
)

func TestColumnEntryRoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little endian": endian.GetLittleEndianEngine(),
		"big endian":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			entry := ColumnEntry{
				NameHash: 0xDEADBEEFCAFEF00D,
				Offset:   1024,
			}

			buf := make([]byte, ColumnEntrySize)
			require.NoError(t, entry.WriteToSlice(buf, engine))

			parsed, err := ParseColumnEntry(buf, engine)
			require.NoError(t, err)
			require.Equal(t, entry.NameHash, parsed.NameHash)
			require.Equal(t, entry.Offset, parsed.Offset)
			require.Zero(t, parsed.Reserved)
			require.Zero(t, parsed.Size, "size is derived, never parsed")
		})
	}
}

func TestColumnEntryLayout(t *testing.T) {
	entry := ColumnEntry{NameHash: 0x0102030405060708, Offset: 0x0A0B0C0D}

	buf := make([]byte, ColumnEntrySize)
	require.NoError(t, entry.WriteToSlice(buf, endian.GetBigEndianEngine()))

	require.Equal(t, []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // NameHash
		0x0A, 0x0B, 0x0C, 0x0D, // Offset
		0x00, 0x00, 0x00, 0x00, // Reserved
	}, buf)
}

func TestColumnEntryShortBuffer(t *testing.T) {
	entry := ColumnEntry{NameHash: 1}
	engine := endian.GetLittleEndianEngine()

	require.ErrorIs(t, entry.WriteToSlice(make([]byte, ColumnEntrySize-1), engine), errs.ErrInvalidIndexEntrySize)

	_, err := ParseColumnEntry(make([]byte, 3), engine)
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
