// Package flats flattens arbitrarily nested container values into a flat,
// order-preserving lazy sequence of leaf values, with an optional bound on
// how many nesting levels are traversed.
//
// A container is any value that admits iteration over a sequence of child
// values: slices, arrays, maps (iterated as keys), receive-capable channels,
// iterator functions of shape func(func(T) bool), and values implementing
// Iterable. Strings are always leaves. Classification is a pure type check
// and never consumes the value it inspects.
package flats
