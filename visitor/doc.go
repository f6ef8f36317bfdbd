// Package visitor offers per-kind element producers for container values.
// It provides reflection-backed iteration over slices, arrays, maps, channels,
// structs, and iterator functions, with simple callback-based traversal.
package visitor
