package column

import (
	"fmt"
	"io"
	"slices"
	"unsafe"

	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/internal/arena"
	"github.com/arloliu/colwire/wire"
)

type itemKind uint8

const (
	itemArena itemKind = iota
	itemOwned
	itemExternal
)

// item locates one row's bytes: in the arena for copied rows, or in the
// owned/external buffer lists for adopted and borrowed rows.
type item struct {
	ref  arena.Ref
	idx  int
	kind itemKind
}

const (
	itemSlotSize = int(unsafe.Sizeof(item{}))
	bufSlotSize  = int(unsafe.Sizeof([]byte(nil)))
)

// checkValueSize rejects values past the per-row bound shared by arena
// refs and the wire format's length prefixes.
func checkValueSize(n int) error {
	if n > arena.MaxBlockSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrValueTooLarge, n)
	}

	return nil
}

// String stores variable-width values as zero-copy views over bump-allocated
// arena blocks.
//
// Three append modes control ownership of the value bytes:
//   - Append and AppendString copy the value into the arena.
//   - AppendOwned adopts the caller's buffer without copying; the column
//     releases it on Clear.
//   - AppendNoCopy records a borrowed buffer the caller keeps alive.
//
// All three modes read and serialize identically. Arena blocks are sized
// from a per-value estimate so a typical append burst touches one
// allocation per block, not per value.
type String struct {
	items    []item
	arena    arena.Arena
	owned    [][]byte
	external [][]byte

	blockSize     int
	lookahead     int
	estimate      int
	nextBlockSize int
}

var _ Column = (*String)(nil)

// NewString creates an empty variable-width string column.
func NewString(opts ...Option) (*String, error) {
	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	return &String{
		blockSize:     cfg.blockSize,
		lookahead:     cfg.lookahead,
		estimate:      cfg.estimate,
		nextBlockSize: cfg.blockSize,
	}, nil
}

// NewStringFromValues creates a column seeded with copies of values, packed
// into a single arena block. The per-value size estimate is derived from
// the seed data.
func NewStringFromValues(values [][]byte, opts ...Option) (*String, error) {
	c, err := NewString(opts...)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, v := range values {
		if err := checkValueSize(len(v)); err != nil {
			return nil, err
		}

		total += len(v)
	}

	c.items = slices.Grow(c.items, len(values))
	if total > 0 {
		c.arena.Grow(total)
	}

	for _, v := range values {
		if c.arena.Available() < len(v) {
			c.arena.Grow(max(c.blockSize, len(v)))
		}

		c.appendArena(v)
	}

	c.estimate = computeSizeEstimate(total, len(values))

	return c, nil
}

// computeSizeEstimate derives a per-value byte size from observed data,
// falling back to the default when the data reveals nothing.
func computeSizeEstimate(totalBytes, rows int) int {
	if rows < 1 {
		rows = 1
	}

	est := (totalBytes + rows - 1) / rows
	if est == 0 {
		est = DefaultSizeEstimate
	}

	return est
}

func (c *String) nextBlockSizeHint() int {
	return max(c.blockSize, c.estimate*c.lookahead)
}

// Type returns the column's concrete type.
func (c *String) Type() coltype.Type {
	return coltype.String()
}

// Rows returns the current number of rows.
func (c *String) Rows() int {
	return len(c.items)
}

// Reserve prepares the store to accept rows additional values without
// reallocating, assuming values match the size estimate. When the active
// block still has room, only the next block's size hint is raised.
func (c *String) Reserve(rows int) {
	if rows <= 0 {
		return
	}

	c.items = slices.Grow(c.items, rows)

	if c.arena.Blocks() == 0 || c.arena.Available() < c.estimate {
		if n := rows * c.estimate; n > 0 {
			c.arena.Grow(n)
		}

		return
	}

	remaining := rows
	if c.estimate > 0 {
		remaining = rows - c.arena.Available()/c.estimate
	}

	if remaining > 0 {
		c.nextBlockSize = max(c.blockSize, remaining*c.estimate)
	}
}

// SetSizeEstimate overrides the per-value byte size used to size future
// arena blocks. Zero means unknown.
//
// Returns:
//   - error: errs.ErrInvalidSizeEstimate when n is negative
func (c *String) SetSizeEstimate(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidSizeEstimate, n)
	}

	c.estimate = n

	return nil
}

// ensureRoom grows the arena when the active block cannot hold n more
// bytes. The grown block is dedicated to oversized values when n exceeds
// the pending block size.
func (c *String) ensureRoom(n int) {
	if c.arena.Blocks() == 0 || c.arena.Available() < n {
		c.arena.Grow(max(c.nextBlockSize, n))
		c.nextBlockSize = c.nextBlockSizeHint()
	}
}

// appendArena copies v into the active arena block and records the view.
// The block must have room; Alloc panics otherwise.
func (c *String) appendArena(v []byte) {
	ref, buf := c.arena.Alloc(len(v))
	copy(buf, v)
	c.items = append(c.items, item{kind: itemArena, ref: ref})
}

// Append copies v into the arena and records a view of the copy. v may be
// reused by the caller afterwards.
//
// Returns:
//   - error: errs.ErrValueTooLarge when v exceeds the per-row limit
func (c *String) Append(v []byte) error {
	if err := checkValueSize(len(v)); err != nil {
		return err
	}

	c.ensureRoom(len(v))
	c.appendArena(v)

	return nil
}

// AppendString copies s into the arena without an intermediate byte-slice
// conversion.
func (c *String) AppendString(s string) error {
	if err := checkValueSize(len(s)); err != nil {
		return err
	}

	c.ensureRoom(len(s))

	ref, buf := c.arena.Alloc(len(s))
	copy(buf, s)
	c.items = append(c.items, item{kind: itemArena, ref: ref})

	return nil
}

// AppendOwned adopts buf as one row without copying. Ownership transfers
// to the column; the caller must not read or modify buf afterwards.
//
// Returns:
//   - error: errs.ErrValueTooLarge when buf exceeds the per-row limit
func (c *String) AppendOwned(buf []byte) error {
	if err := checkValueSize(len(buf)); err != nil {
		return err
	}

	c.owned = append(c.owned, buf)
	c.items = append(c.items, item{kind: itemOwned, idx: len(c.owned) - 1})

	return nil
}

// AppendNoCopy records buf as one row without copying. The caller keeps
// ownership and must keep buf alive and unchanged while the column can
// still reach it.
//
// Returns:
//   - error: errs.ErrValueTooLarge when buf exceeds the per-row limit
func (c *String) AppendNoCopy(buf []byte) error {
	if err := checkValueSize(len(buf)); err != nil {
		return err
	}

	c.external = append(c.external, buf)
	c.items = append(c.items, item{kind: itemExternal, idx: len(c.external) - 1})

	return nil
}

// AppendUnsafe copies v into the active arena block without a room check.
// It panics when no block exists or the block cannot hold v; callers must
// Reserve sufficient space first.
func (c *String) AppendUnsafe(v []byte) {
	c.appendArena(v)
}

// AppendColumn bulk-appends every row of other. Row content is copied into
// this column's arena regardless of the source rows' ownership mode.
//
// Returns:
//   - error: errs.ErrColumnTypeMismatch unless other is a String column
func (c *String) AppendColumn(other Column) error {
	src, ok := other.(*String)
	if !ok {
		return fmt.Errorf("%w: cannot append %s to %s", errs.ErrColumnTypeMismatch, other.Type().Name(), c.Type().Name())
	}

	total := 0
	for i := range src.items {
		n := src.itemLen(i)
		if err := checkValueSize(n); err != nil {
			return err
		}

		total += n
	}

	// TODO: top up the active block with leading rows before switching to
	// a dedicated block for the rest.
	if c.arena.Blocks() == 0 || c.arena.Available() < total {
		c.arena.Grow(max(c.nextBlockSize, total))
	}

	for i := range src.items {
		v := src.itemBytes(i)
		if c.arena.Available() < len(v) {
			c.arena.Grow(max(c.blockSize, len(v)))
		}

		c.appendArena(v)
	}

	return nil
}

func (c *String) itemBytes(i int) []byte {
	it := &c.items[i]
	switch it.kind {
	case itemOwned:
		return c.owned[it.idx]
	case itemExternal:
		return c.external[it.idx]
	default:
		return c.arena.Bytes(it.ref)
	}
}

func (c *String) itemLen(i int) int {
	it := &c.items[i]
	switch it.kind {
	case itemOwned:
		return len(c.owned[it.idx])
	case itemExternal:
		return len(c.external[it.idx])
	default:
		return int(it.ref.Len)
	}
}

// At returns a zero-copy view of row i.
func (c *String) At(i int) ([]byte, error) {
	if i < 0 || i >= len(c.items) {
		return nil, fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, i, len(c.items))
	}

	return c.itemBytes(i), nil
}

// Item returns row i together with the column type.
func (c *String) Item(i int) (ItemView, error) {
	v, err := c.At(i)
	if err != nil {
		return ItemView{}, err
	}

	return ItemView{Type: c.Type(), Data: v}, nil
}

// Slice returns an independent copy of up to length rows starting at
// begin, packed into a fresh arena. Out-of-range arguments clamp to the
// available rows.
func (c *String) Slice(begin, length int) Column {
	out := c.cloneEmpty()

	if begin < 0 || begin >= len(c.items) || length <= 0 {
		return out
	}

	n := min(length, len(c.items)-begin)

	total := 0
	for i := begin; i < begin+n; i++ {
		total += c.itemLen(i)
	}

	out.items = slices.Grow(out.items, n)
	out.arena.Grow(max(c.blockSize, total))

	for i := begin; i < begin+n; i++ {
		v := c.itemBytes(i)
		if out.arena.Available() < len(v) {
			out.arena.Grow(max(out.blockSize, len(v)))
		}

		out.appendArena(v)
	}

	return out
}

func (c *String) cloneEmpty() *String {
	return &String{
		blockSize:     c.blockSize,
		lookahead:     c.lookahead,
		estimate:      c.estimate,
		nextBlockSize: c.blockSize,
	}
}

// CloneEmpty returns a fresh zero-row column with the same sizing config.
func (c *String) CloneEmpty() Column {
	return c.cloneEmpty()
}

// Swap exchanges row content with other. Sizing configuration (block size,
// estimate, lookahead) stays with each column.
//
// Returns:
//   - error: errs.ErrColumnTypeMismatch when other is not a String column
func (c *String) Swap(other Column) error {
	src, ok := other.(*String)
	if !ok {
		return fmt.Errorf("%w: cannot swap %s with %s", errs.ErrColumnTypeMismatch, c.Type().Name(), other.Type().Name())
	}

	c.items, src.items = src.items, c.items
	c.arena.Swap(&src.arena)
	c.owned, src.owned = src.owned, c.owned
	c.external, src.external = src.external, c.external

	return nil
}

// Clear drops all rows. The item index keeps its capacity; arena blocks,
// adopted buffers and borrowed references are released.
func (c *String) Clear() {
	c.items = c.items[:0]
	c.arena.Reset()
	c.owned = nil
	c.external = nil
}

// MemoryUsage returns the approximate heap footprint: adopted buffer
// bytes, index slot costs and arena block capacities.
func (c *String) MemoryUsage() int {
	total := cap(c.items)*itemSlotSize + (len(c.owned)+len(c.external))*bufSlotSize
	for _, b := range c.owned {
		total += len(b)
	}

	return total + c.arena.MemoryUsage()
}

// LoadBody replaces the column content with rows length-prefixed values
// decoded from r. Decoding runs against fresh storage and the column is
// only updated on full success, so a failed load leaves the previous
// content intact.
//
// Row counts and per-row lengths are checked against the bytes the source
// can still deliver before any storage is sized from them; every row costs
// at least its one-byte length prefix.
func (c *String) LoadBody(r *wire.Reader, rows int) error {
	if rows < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidRowCount, rows)
	}

	if rows == 0 {
		c.Clear()
		return nil
	}

	if rem := r.Remaining(); rem >= 0 && rows > rem {
		return fmt.Errorf("%w: %d rows in a %d byte body", errs.ErrInvalidRowCount, rows, rem)
	}

	items := make([]item, 0, rows)

	// The first block is a plain blockSize: the stream does not reveal row
	// sizes up front.
	var a arena.Arena
	a.Grow(c.blockSize)

	for range rows {
		n, err := r.ReadUvarint()
		if err != nil {
			return err
		}

		if n > uint64(arena.MaxBlockSize) {
			return fmt.Errorf("%w: %d", errs.ErrInvalidRowLength, n)
		}

		size := int(n)
		if rem := r.Remaining(); rem >= 0 && size > rem {
			return io.ErrUnexpectedEOF
		}

		if size > a.Available() {
			a.Grow(max(c.blockSize, size))
		}

		ref, buf := a.Alloc(size)
		if err := r.ReadFull(buf); err != nil {
			return err
		}

		items = append(items, item{kind: itemArena, ref: ref})
	}

	c.items = items
	c.arena = a
	c.owned = nil
	c.external = nil

	return nil
}

// SaveBody writes all rows to w, each as a uvarint length prefix followed
// by the raw bytes.
func (c *String) SaveBody(w *wire.Writer) error {
	for i := range c.items {
		if err := w.WriteString(c.itemBytes(i)); err != nil {
			return err
		}
	}

	return nil
}
