// Package matrixio persists matrix.Dense values in a whitespace-delimited
// text format.
//
// Format:
//
//	<rows> <cols> <v00> <v01> ... <v(r-1)(c-1)>
//
// The row and column counts come first, then every element in row-major order.
// The writer follows every token with a single space; any run of whitespace
// (including line breaks, see WithRowBreaks) is accepted by the reader.
// Floats are written with the shortest representation that parses back to the
// same float64 unless WithPrecision says otherwise.
//
// Entry points:
//
//   - Write / Read: io.Writer and io.Reader.
//   - Marshal / Unmarshal: byte slices.
//   - SaveFile / LoadFile: files; LoadFile parses a read-only memory mapping
//     of the file instead of copying it through a buffer.
//
// Every parsing failure matches ErrFormat via errors.Is.
package matrixio
