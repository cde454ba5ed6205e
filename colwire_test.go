package colwire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colwire/block"
	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/column"
	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/errs"
)

// TestNewStringColumn verifies string column creation with options
func TestNewStringColumn(t *testing.T) {
	col, err := NewStringColumn(column.WithSizeEstimate(64))
	require.NoError(t, err)
	require.NotNil(t, col)
	require.Equal(t, coltype.String(), col.Type())
}

// TestNewFixedStringColumn verifies fixed column creation and width validation
func TestNewFixedStringColumn(t *testing.T) {
	col, err := NewFixedStringColumn(16)
	require.NoError(t, err)
	require.Equal(t, 16, col.Width())

	_, err = NewFixedStringColumn(0)
	require.ErrorIs(t, err, errs.ErrInvalidWidth)
}

// TestNewColumn verifies the type-driven factory
func TestNewColumn(t *testing.T) {
	typ, err := coltype.Parse("FixedString(8)")
	require.NoError(t, err)

	col, err := NewColumn(typ)
	require.NoError(t, err)
	require.Equal(t, typ, col.Type())
}

func testBlock(t *testing.T) *block.Block {
	t.Helper()

	messages, err := NewStringColumn()
	require.NoError(t, err)
	require.NoError(t, messages.AppendString("connection established"))
	require.NoError(t, messages.AppendString("connection lost"))

	hosts, err := NewFixedStringColumn(8)
	require.NoError(t, err)
	require.NoError(t, hosts.AppendString("db-01"))
	require.NoError(t, hosts.AppendString("db-02"))

	blk := NewBlock()
	require.NoError(t, blk.AddColumn("message", messages))
	require.NoError(t, blk.AddColumn("host", hosts))

	return blk
}

// TestEncodeDecodeBlock verifies the default encode/decode workflow
func TestEncodeDecodeBlock(t *testing.T) {
	data, err := EncodeBlock(testBlock(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	blk, err := DecodeBlock(data)
	require.NoError(t, err)
	require.Equal(t, []string{"message", "host"}, blk.Names())
	require.Equal(t, 2, blk.RowCount())

	messages, ok := blk.ColumnByName("message")
	require.True(t, ok)

	v, err := messages.At(1)
	require.NoError(t, err)
	require.Equal(t, "connection lost", string(v))
}

// TestEncodeBlockOptionOverride verifies caller options win over the defaults
func TestEncodeBlockOptionOverride(t *testing.T) {
	data, err := EncodeBlock(testBlock(t), block.WithCompression(compress.MethodNone))
	require.NoError(t, err)

	// The compression method byte sits at offset 2 of the header flag.
	require.Equal(t, byte(compress.MethodNone), data[2])

	_, err = DecodeBlock(data)
	require.NoError(t, err)
}

// TestWriteReadBlock verifies the streaming entry points
func TestWriteReadBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBlock(&buf, testBlock(t)))

	blk, err := ReadBlock(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, blk.ColumnCount())
}

// TestReadBlockColumn verifies single-column extraction by name
func TestReadBlockColumn(t *testing.T) {
	data, err := EncodeBlock(testBlock(t))
	require.NoError(t, err)

	col, err := ReadBlockColumn(data, "host")
	require.NoError(t, err)
	require.Equal(t, 2, col.Rows())

	v, err := col.At(0)
	require.NoError(t, err)
	require.Equal(t, "db-01\x00\x00\x00", string(v))

	_, err = ReadBlockColumn(data, "missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

// TestColumnID verifies name hashing is deterministic and non-trivial
func TestColumnID(t *testing.T) {
	require.Equal(t, ColumnID("message"), ColumnID("message"))
	require.NotEqual(t, ColumnID("message"), ColumnID("host"))
	require.NotZero(t, ColumnID("message"))
}
