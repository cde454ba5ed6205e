package block

import (
	"fmt"

	"github.com/arloliu/colwire/column"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/section"
)

type namedColumn struct {
	name string
	col  column.Column
}

// Block is an ordered set of named columns sharing one row count. It is the
// unit of encoding: Write serializes all columns into a single envelope and
// Read restores them.
type Block struct {
	columns []namedColumn
	index   map[string]int
}

// New creates an empty block.
func New() *Block {
	return &Block{index: make(map[string]int)}
}

// AddColumn appends a named column to the block.
//
// Returns:
//   - error: errs.ErrInvalidColumnName for an empty or duplicate name,
//     errs.ErrRowCountMismatch when col's row count differs from the
//     block's, errs.ErrInvalidColumnCount when the block is full
func (b *Block) AddColumn(name string, col column.Column) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidColumnName)
	}

	if _, dup := b.index[name]; dup {
		return fmt.Errorf("%w: duplicate name %q", errs.ErrInvalidColumnName, name)
	}

	if len(b.columns) > 0 && col.Rows() != b.RowCount() {
		return fmt.Errorf("%w: column %q has %d rows, block has %d",
			errs.ErrRowCountMismatch, name, col.Rows(), b.RowCount())
	}

	if len(b.columns) >= section.MaxColumnCount {
		return fmt.Errorf("%w: block already holds %d columns", errs.ErrInvalidColumnCount, len(b.columns))
	}

	b.index[name] = len(b.columns)
	b.columns = append(b.columns, namedColumn{name: name, col: col})

	return nil
}

// ColumnCount returns the number of columns.
func (b *Block) ColumnCount() int {
	return len(b.columns)
}

// RowCount returns the shared row count, 0 for an empty block.
func (b *Block) RowCount() int {
	if len(b.columns) == 0 {
		return 0
	}

	return b.columns[0].col.Rows()
}

// Column returns the i-th column, or nil when i is out of range.
func (b *Block) Column(i int) column.Column {
	if i < 0 || i >= len(b.columns) {
		return nil
	}

	return b.columns[i].col
}

// Name returns the i-th column's name, or "" when i is out of range.
func (b *Block) Name(i int) string {
	if i < 0 || i >= len(b.columns) {
		return ""
	}

	return b.columns[i].name
}

// Names returns the column names in block order.
func (b *Block) Names() []string {
	names := make([]string, len(b.columns))
	for i, nc := range b.columns {
		names[i] = nc.name
	}

	return names
}

// ColumnByName returns the column with the given name.
func (b *Block) ColumnByName(name string) (column.Column, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}

	return b.columns[i].col, true
}
