package column

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/wire"
)

// FixedString stores fixed-width values in one contiguous buffer, row i at
// data[i*width : (i+1)*width]. Shorter values are zero-padded to the width;
// longer values are rejected.
type FixedString struct {
	width     int
	data      []byte
	blockSize int
}

var _ Column = (*FixedString)(nil)

// NewFixedString creates an empty fixed-width store.
//
// Returns:
//   - *FixedString: Empty column on success
//   - error: errs.ErrInvalidWidth when width is outside
//     (0, coltype.MaxFixedWidth], or an option validation error
func NewFixedString(width int, opts ...Option) (*FixedString, error) {
	if width <= 0 || width > coltype.MaxFixedWidth {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidWidth, width)
	}

	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	return &FixedString{width: width, blockSize: cfg.blockSize}, nil
}

// NewFixedStringFromValues creates a fixed-width store seeded with values.
// Every value must fit the width.
func NewFixedStringFromValues(width int, values [][]byte, opts ...Option) (*FixedString, error) {
	c, err := NewFixedString(width, opts...)
	if err != nil {
		return nil, err
	}

	c.data = make([]byte, 0, width*len(values))
	for _, v := range values {
		if err := c.Append(v); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Type returns the column's concrete type.
func (c *FixedString) Type() coltype.Type {
	return coltype.FixedString(c.width)
}

// Width returns the fixed byte width of every row.
func (c *FixedString) Width() int {
	return c.width
}

// Rows returns the current number of rows.
func (c *FixedString) Rows() int {
	return len(c.data) / c.width
}

// Reserve grows the buffer so rows additional values fit without
// reallocating.
func (c *FixedString) Reserve(rows int) {
	if rows <= 0 {
		return
	}

	c.data = slices.Grow(c.data, rows*c.width)
}

// Append adds one value, zero-padded to the column width.
//
// Returns:
//   - error: errs.ErrInvalidValueWidth when v is longer than the width
func (c *FixedString) Append(v []byte) error {
	if len(v) > c.width {
		return fmt.Errorf("%w: got %d bytes, width is %d", errs.ErrInvalidValueWidth, len(v), c.width)
	}

	pos := c.extend()
	copy(c.data[pos:], v)

	return nil
}

// AppendString adds one value from a string, zero-padded to the width.
func (c *FixedString) AppendString(s string) error {
	if len(s) > c.width {
		return fmt.Errorf("%w: got %d bytes, width is %d", errs.ErrInvalidValueWidth, len(s), c.width)
	}

	pos := c.extend()
	copy(c.data[pos:], s)

	return nil
}

// extend grows the buffer by one zeroed row and returns the row's offset.
// Growth is rounded up to the next block size multiple so append bursts
// reallocate once per block instead of once per row.
func (c *FixedString) extend() int {
	pos := len(c.data)

	if cap(c.data)-pos < c.width {
		size := ((pos+c.width)/c.blockSize + 1) * c.blockSize
		buf := make([]byte, pos, size)
		copy(buf, c.data)
		c.data = buf
	}

	c.data = c.data[:pos+c.width]
	// Reused capacity may hold stale bytes from before a Clear.
	clear(c.data[pos:])

	return pos
}

// AppendColumn bulk-appends every row of other.
//
// Returns:
//   - error: errs.ErrColumnTypeMismatch unless other is a FixedString of
//     the same width
func (c *FixedString) AppendColumn(other Column) error {
	src, ok := other.(*FixedString)
	if !ok || src.width != c.width {
		return fmt.Errorf("%w: cannot append %s to %s", errs.ErrColumnTypeMismatch, other.Type().Name(), c.Type().Name())
	}

	c.data = append(c.data, src.data...)

	return nil
}

// At returns a zero-copy view of row i.
func (c *FixedString) At(i int) ([]byte, error) {
	if i < 0 || i >= c.Rows() {
		return nil, fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, i, c.Rows())
	}

	pos := i * c.width

	return c.data[pos : pos+c.width : pos+c.width], nil
}

// Item returns row i together with the column type.
func (c *FixedString) Item(i int) (ItemView, error) {
	v, err := c.At(i)
	if err != nil {
		return ItemView{}, err
	}

	return ItemView{Type: c.Type(), Data: v}, nil
}

// Slice returns an independent copy of up to length rows starting at begin.
// Out-of-range arguments clamp to the available rows.
func (c *FixedString) Slice(begin, length int) Column {
	out := &FixedString{width: c.width, blockSize: c.blockSize}

	if begin >= 0 && begin < c.Rows() && length > 0 {
		n := min(length, c.Rows()-begin)
		pos := begin * c.width
		out.data = append(out.data, c.data[pos:pos+n*c.width]...)
	}

	return out
}

// CloneEmpty returns a fresh zero-row column of the same width and config.
func (c *FixedString) CloneEmpty() Column {
	return &FixedString{width: c.width, blockSize: c.blockSize}
}

// Swap exchanges row content and width with other.
//
// Returns:
//   - error: errs.ErrColumnTypeMismatch when other is not a FixedString
func (c *FixedString) Swap(other Column) error {
	src, ok := other.(*FixedString)
	if !ok {
		return fmt.Errorf("%w: cannot swap %s with %s", errs.ErrColumnTypeMismatch, c.Type().Name(), other.Type().Name())
	}

	c.width, src.width = src.width, c.width
	c.data, src.data = src.data, c.data

	return nil
}

// Clear drops all rows, keeping the buffer capacity for reuse.
func (c *FixedString) Clear() {
	c.data = c.data[:0]
}

// MemoryUsage returns the buffer capacity in bytes.
func (c *FixedString) MemoryUsage() int {
	return cap(c.data)
}

// LoadBody replaces the column content with rows values read from r. The
// body is raw row bytes with no per-row framing. The row count is checked
// against the bytes the source can still deliver before the row buffer is
// allocated. On failure the previous content is left intact.
func (c *FixedString) LoadBody(r *wire.Reader, rows int) error {
	if rows < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidRowCount, rows)
	}

	if rows > math.MaxInt/c.width {
		return fmt.Errorf("%w: %d rows of width %d", errs.ErrInvalidRowCount, rows, c.width)
	}

	need := rows * c.width
	if rem := r.Remaining(); rem >= 0 && need > rem {
		return io.ErrUnexpectedEOF
	}

	buf := make([]byte, need)
	if err := r.ReadFull(buf); err != nil {
		return err
	}

	c.data = buf

	return nil
}

// SaveBody writes all rows to w as raw bytes.
func (c *FixedString) SaveBody(w *wire.Writer) error {
	return w.WriteBytes(c.data)
}
