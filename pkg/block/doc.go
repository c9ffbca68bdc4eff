// Package block defines the data model for snap-together visual blocks:
// rows, their kinds, connector flags and the measurement contract between
// a block definition and the layout engine.
//
// # Rows
//
// A block is an ordered list of [Row] values. Insertion order is visual
// order (top-to-bottom, and left-to-right within an inline line). Each row
// has one of three kinds:
//
//   - [KindDummy]: fields only
//   - [KindValue]: fields plus an optional nested expression (a socket)
//   - [KindStatement]: fields plus an optional nested statement sequence
//     (a notch below the fields)
//
// # Measurement
//
// Rows separate their minimum requirements (MinFieldWidth, MinChildWidth,
// MinChildHeight, FieldHeight) from pass-scoped results (FieldWidth, Width,
// Height). The layout engine in [layout] assigns FieldWidth, then calls
// [Row.Measure] to finalize dimensions. Measurement is exact integer
// arithmetic: identical inputs always produce identical outputs.
//
// [layout]: github.com/snapblocks/snapblocks/pkg/block/layout
package block
