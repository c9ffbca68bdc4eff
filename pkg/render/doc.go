// Package render groups the block output backends.
//
// Subpackage sink renders measured blocks into SVG and JSON artifacts;
// subpackage nodetree produces Graphviz-based structural diagrams for
// debugging block definitions.
package render
