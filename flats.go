package flats

import (
	"fmt"

	"github.com/viant/flats/visitor"
)

// ErrInvalidDepth is returned by FlattenDepth when depth is negative.
var ErrInvalidDepth = fmt.Errorf("flats: depth must be a non-negative integer")

// unbounded marks the absence of a depth limit; it is never exposed as a
// valid depth argument.
const unbounded = -1

// Flatten returns a lazy sequence of all leaf values reachable from root,
// traversing containers to any depth in left-to-right, in-order fashion.
// A non-container root yields a single-element sequence holding root itself.
func Flatten(root any, opts ...Option) Sequence {
	return flatten(root, unbounded, newOptions(opts))
}

// FlattenDepth is like Flatten but descends at most depth nesting levels
// below root. Containers sitting at the cutoff are emitted opaque, never
// iterated internally, and remain fully iterable by the caller. At depth 0
// the root's immediate children are emitted as-is. A negative depth fails
// with ErrInvalidDepth before any element is produced.
func FlattenDepth(root any, depth int, opts ...Option) (Sequence, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDepth, depth)
	}
	return flatten(root, depth, newOptions(opts)), nil
}

func flatten(root any, depth int, o *options) Sequence {
	return func(yield func(value any) (bool, error)) error {
		children, ok := o.childrenOf(root)
		if !ok {
			_, err := yield(root)
			return err
		}
		_, err := walk(children, depth, o, yield)
		return err
	}
}

// walk drives one container level and reports whether the consumer wants
// more elements, so that an early stop inside a nested level also stops
// every enclosing level.
func walk(children visitor.Visitor, depth int, o *options, yield func(value any) (bool, error)) (bool, error) {
	more := true
	err := children(func(element any) (bool, error) {
		var err error
		if depth == 0 {
			more, err = yield(element)
			return more, err
		}
		sub, ok := o.childrenOf(element)
		if !ok {
			more, err = yield(element)
			return more, err
		}
		next := depth
		if next != unbounded {
			next--
		}
		more, err = walk(sub, next, o, yield)
		return more, err
	})
	if err != nil {
		return false, err
	}
	return more, nil
}
