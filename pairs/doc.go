// Package pairs builds the replacement set consumed by the renderer. Parse
// turns KEY=value command-line arguments into a mapping, resolving values
// prefixed with "@" from files; LoadFile reads a whole mapping from a JSON or
// YAML file; Merge layers one mapping over another, later sources winning.
package pairs
