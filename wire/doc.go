// Package wire implements the primitive stream layer of the column format:
// unsigned varints (LEB128), length-prefixed byte strings, and fixed-width
// integers in a configurable byte order.
//
// Reader and Writer are thin stateful wrappers around io.Reader/io.Writer.
// Column bodies are built exclusively from these primitives, so a body
// produced by any Writer round-trips through a Reader with the same endian
// engine regardless of the underlying transport.
package wire
