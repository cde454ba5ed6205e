// Package errs defines the sentinel errors shared across colwire packages.
//
// Callers match errors with errors.Is; producing code wraps these sentinels
// with fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

// Validation errors, returned when caller-supplied values or arguments
// violate a column's contract.
var (
	// ErrInvalidValueWidth indicates a value longer than a fixed-width
	// column's declared width.
	ErrInvalidValueWidth = errors.New("value exceeds column width")

	// ErrValueTooLarge indicates a single value larger than a column can
	// address or the wire format can carry in one row.
	ErrValueTooLarge = errors.New("value too large")

	// ErrInvalidWidth indicates a fixed-column width outside the
	// supported range.
	ErrInvalidWidth = errors.New("invalid column width")

	// ErrIndexOutOfRange indicates a row index or slice range outside the
	// column's current row count.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrColumnTypeMismatch indicates an operation across two columns of
	// different types, such as appending a String column to a FixedString
	// column or swapping columns of unequal width.
	ErrColumnTypeMismatch = errors.New("column type mismatch")

	// ErrInvalidColumnType indicates an unknown or unparsable column type.
	ErrInvalidColumnType = errors.New("invalid column type")

	// ErrInvalidRowCount indicates a row count that is negative or that no
	// body of the declared size could satisfy.
	ErrInvalidRowCount = errors.New("invalid row count")

	// ErrRowCountMismatch indicates a column whose row count differs from
	// the other columns of its block.
	ErrRowCountMismatch = errors.New("row count mismatch")

	// ErrInvalidColumnCount indicates a column count outside the envelope's
	// supported range.
	ErrInvalidColumnCount = errors.New("invalid column count")

	// ErrInvalidColumnName indicates an empty or duplicate column name.
	ErrInvalidColumnName = errors.New("invalid column name")

	// ErrInvalidBlockSize indicates a non-positive arena block size.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidSizeEstimate indicates a negative per-value size estimate.
	ErrInvalidSizeEstimate = errors.New("invalid size estimate")

	// ErrInvalidLookahead indicates a non-positive block sizing lookahead.
	ErrInvalidLookahead = errors.New("invalid lookahead")
)

// Envelope errors, returned while parsing an encoded block.
var (
	// ErrInvalidHeaderSize indicates a truncated block header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidHeaderFlags indicates header flags that fail validation.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidMagicNumber indicates a header without the colwire magic.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidIndexEntrySize indicates a truncated column index entry.
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")

	// ErrInvalidPayloadOffset indicates index or data offsets outside the
	// encoded data.
	ErrInvalidPayloadOffset = errors.New("invalid payload offset")

	// ErrInvalidFrameSize indicates a truncated compression frame.
	ErrInvalidFrameSize = errors.New("invalid frame size")

	// ErrInvalidRowLength indicates a decoded length prefix beyond the
	// format's limits.
	ErrInvalidRowLength = errors.New("invalid row length")

	// ErrChecksumMismatch indicates a compression frame whose checksum
	// does not match its payload.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrHashMismatch indicates a column whose stored name does not hash
	// to its index entry.
	ErrHashMismatch = errors.New("column name hash mismatch")

	// ErrColumnNotFound indicates a by-name lookup that matched no column.
	ErrColumnNotFound = errors.New("column not found")
)

var validationErrs = []error{
	ErrInvalidValueWidth,
	ErrValueTooLarge,
	ErrInvalidWidth,
	ErrIndexOutOfRange,
	ErrColumnTypeMismatch,
	ErrInvalidColumnType,
	ErrInvalidRowCount,
	ErrRowCountMismatch,
	ErrInvalidColumnCount,
	ErrInvalidColumnName,
	ErrInvalidBlockSize,
	ErrInvalidSizeEstimate,
	ErrInvalidLookahead,
}

// IsValidation reports whether err belongs to the validation error family,
// as opposed to wire or envelope failures.
func IsValidation(err error) bool {
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
