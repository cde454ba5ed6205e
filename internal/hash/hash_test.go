package hash

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, NameID(tt.data))
		})
	}

	t.Run("distinct names get distinct ids", func(t *testing.T) {
		assert.NotEqual(t, NameID("user_id"), NameID("user_name"))
	})
}

func TestChecksumMatchesNameID(t *testing.T) {
	// Same xxHash64 regardless of string or byte input.
	require.Equal(t, NameID("test"), Checksum([]byte("test")))
}

func TestChecksumParts(t *testing.T) {
	payload := bytes.Repeat([]byte("colwire"), 100)

	t.Run("split equals whole", func(t *testing.T) {
		whole := Checksum(payload)
		split := ChecksumParts(payload[:13], payload[13:200], payload[200:])
		require.Equal(t, whole, split)
	})

	t.Run("empty parts are transparent", func(t *testing.T) {
		require.Equal(t, Checksum(payload), ChecksumParts(nil, payload, []byte{}))
	})
}

func BenchmarkChecksum(b *testing.B) {
	payload := bytes.Repeat([]byte{0xAB}, 4096)
	b.ResetTimer()
	for b.Loop() {
		Checksum(payload)
	}
}
