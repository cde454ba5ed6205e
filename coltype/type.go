// Package coltype models the column types carried by the colwire format:
// variable-width strings and fixed-width strings of a declared byte width.
package coltype

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/colwire/errs"
)

// MaxFixedWidth is the largest byte width a parsed FixedString type may
// declare. Column bodies are addressed with 32 bits, so wider rows could
// never be carried; on 32-bit platforms the int range binds first.
const MaxFixedWidth = min(math.MaxUint32, math.MaxInt)

// Code identifies a column type kind.
type Code uint8

const (
	CodeInvalid     Code = 0x0 // CodeInvalid is the zero value, not a valid type.
	CodeString      Code = 0x1 // CodeString represents variable-width strings.
	CodeFixedString Code = 0x2 // CodeFixedString represents fixed-width strings.
)

func (c Code) String() string {
	switch c {
	case CodeString:
		return "String"
	case CodeFixedString:
		return "FixedString"
	default:
		return "Invalid"
	}
}

// Type describes a concrete column type: a kind code plus, for fixed-width
// columns, the byte width of every value.
//
// The zero Type is invalid; construct values with String or FixedString.
type Type struct {
	code  Code
	width int
}

// String returns the variable-width string type.
func String() Type {
	return Type{code: CodeString}
}

// FixedString returns the fixed-width string type of the given byte width.
// The width is not validated here; column constructors reject widths
// outside (0, MaxFixedWidth] with errs.ErrInvalidWidth.
func FixedString(width int) Type {
	return Type{code: CodeFixedString, width: width}
}

// Code returns the type's kind code.
func (t Type) Code() Code { return t.code }

// Width returns the fixed byte width, or 0 for variable-width types.
func (t Type) Width() int { return t.width }

// IsFixed reports whether every value of the type has the same byte width.
func (t Type) IsFixed() bool { return t.code == CodeFixedString }

// Equal reports whether two types are interchangeable: same code and, for
// fixed-width types, same width.
func (t Type) Equal(other Type) bool {
	return t.code == other.code && t.width == other.width
}

// Name renders the type's wire name: "String" or "FixedString(N)".
func (t Type) Name() string {
	switch t.code {
	case CodeString:
		return "String"
	case CodeFixedString:
		return "FixedString(" + strconv.Itoa(t.width) + ")"
	default:
		return "Invalid"
	}
}

// Parse inverts Name, decoding a wire type name back into a Type.
//
// Returns:
//   - Type: Parsed type on success
//   - error: errs.ErrInvalidColumnType when the name is unknown, malformed
//     or declares a width outside (0, MaxFixedWidth]
func Parse(name string) (Type, error) {
	if name == "String" {
		return String(), nil
	}

	inner, ok := strings.CutPrefix(name, "FixedString(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return Type{}, fmt.Errorf("%w: %q", errs.ErrInvalidColumnType, name)
	}

	width, err := strconv.Atoi(strings.TrimSuffix(inner, ")"))
	if err != nil || width <= 0 || width > MaxFixedWidth {
		return Type{}, fmt.Errorf("%w: %q", errs.ErrInvalidColumnType, name)
	}

	return FixedString(width), nil
}
