package column

import (
	"fmt"

	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/wire"
)

// ItemView is a typed view of a single row. Data aliases the column's
// storage and stays valid until the column is cleared, swapped or reloaded.
type ItemView struct {
	Type coltype.Type
	Data []byte
}

// Column is the contract shared by all column stores.
//
// Accessors return zero-copy views into the column's storage; mutating
// operations (Clear, Swap, LoadBody) invalidate previously returned views.
type Column interface {
	// Type returns the column's concrete type.
	Type() coltype.Type
	// Rows returns the current number of rows.
	Rows() int
	// Reserve prepares the store to accept rows additional values without
	// reallocating. Non-positive counts are ignored.
	Reserve(rows int)
	// Append adds one value, copying it into the column's storage.
	Append(v []byte) error
	// AppendString adds one value from a string without an intermediate
	// byte-slice conversion.
	AppendString(s string) error
	// AppendColumn bulk-appends every row of other, copying row content
	// into this column's storage. The column types must match.
	AppendColumn(other Column) error
	// At returns a zero-copy view of row i.
	At(i int) ([]byte, error)
	// Item returns row i together with the column type.
	Item(i int) (ItemView, error)
	// Slice returns a new independent column holding a copy of up to
	// length rows starting at begin. Out-of-range arguments clamp; a
	// begin at or past the row count yields an empty column.
	Slice(begin, length int) Column
	// CloneEmpty returns a fresh zero-row column with the same type and
	// sizing configuration.
	CloneEmpty() Column
	// Swap exchanges row content with other. The column kinds must match.
	Swap(other Column) error
	// Clear drops all rows.
	Clear()
	// MemoryUsage returns the approximate heap footprint in bytes.
	MemoryUsage() int
	// LoadBody replaces the column content with rows values decoded from
	// r. On failure the previous content is left intact.
	LoadBody(r *wire.Reader, rows int) error
	// SaveBody encodes all rows to w.
	SaveBody(w *wire.Writer) error
}

// New creates an empty column store for the given type.
func New(t coltype.Type, opts ...Option) (Column, error) {
	switch t.Code() {
	case coltype.CodeString:
		return NewString(opts...)
	case coltype.CodeFixedString:
		return NewFixedString(t.Width(), opts...)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidColumnType, t.Name())
	}
}
