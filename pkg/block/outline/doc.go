// Package outline builds the closed silhouette path of a laid-out block.
//
// The builder walks the block's edges in a fixed clockwise order — top,
// right, bottom, left — splicing connector notches where the definition's
// flags and rows require them:
//
//   - previous connector: top edge
//   - value-input sockets (external mode): right edge, one per Value row
//   - statement carves: right edge, spanning each Statement row's nested
//     content height
//   - next connector: bottom edge
//   - output tab: left edge
//
// In inline mode, every Value row additionally contributes a separate
// closed cutout contour. Rendered with an even-odd fill rule these cutouts
// appear as holes: the open sockets where child blocks nest.
//
// Outline building is pure geometry over the layout result; it cannot fail
// and never re-measures rows.
package outline
