package coltype

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colwire/errs"
)

func TestTypeName(t *testing.T) {
	require.Equal(t, "String", String().Name())
	require.Equal(t, "FixedString(16)", FixedString(16).Name())
	require.Equal(t, "Invalid", Type{}.Name())
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "String", CodeString.String())
	require.Equal(t, "FixedString", CodeFixedString.String())
	require.Equal(t, "Invalid", CodeInvalid.String())
	require.Equal(t, "Invalid", Code(0x7f).String())
}

func TestTypeAccessors(t *testing.T) {
	s := String()
	require.Equal(t, CodeString, s.Code())
	require.Equal(t, 0, s.Width())
	require.False(t, s.IsFixed())

	f := FixedString(32)
	require.Equal(t, CodeFixedString, f.Code())
	require.Equal(t, 32, f.Width())
	require.True(t, f.IsFixed())
}

func TestTypeEqual(t *testing.T) {
	require.True(t, String().Equal(String()))
	require.True(t, FixedString(8).Equal(FixedString(8)))
	require.False(t, String().Equal(FixedString(8)))
	require.False(t, FixedString(8).Equal(FixedString(16)))
	require.False(t, Type{}.Equal(String()))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{name: "String", want: String()},
		{name: "FixedString(1)", want: FixedString(1)},
		{name: "FixedString(16)", want: FixedString(16)},
		{name: "FixedString(65535)", want: FixedString(65535)},
		{
			name: "FixedString(" + strconv.FormatUint(uint64(MaxFixedWidth), 10) + ")",
			want: FixedString(MaxFixedWidth),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := Parse(tt.name)
			require.NoError(t, err)
			require.True(t, typ.Equal(tt.want))
			require.Equal(t, tt.name, typ.Name())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	names := []string{
		"",
		"string",
		"Int64",
		"FixedString",
		"FixedString()",
		"FixedString(0)",
		"FixedString(-4)",
		"FixedString(" + strconv.FormatUint(uint64(MaxFixedWidth)+1, 10) + ")",
		"FixedString(4611686018427387904)",
		"FixedString(abc)",
		"FixedString(8",
		"FixedString(8))",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name)
			require.ErrorIs(t, err, errs.ErrInvalidColumnType)
		})
	}
}
