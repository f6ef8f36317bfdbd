package flats

import "github.com/viant/flats/visitor"

// Option customizes how values are classified during flattening.
type Option func(o *options)

type options struct {
	structs    bool
	classifier func(value any) (visitor.Visitor, bool)
}

var defaultOptions = &options{}

func newOptions(opts []Option) *options {
	if len(opts) == 0 {
		return defaultOptions
	}
	result := &options{}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// WithStructs classifies structs and non-nil pointers to structs as
// containers; their exported field values are traversed in declaration
// order, skipping fields tagged `json:"-"` or marked ignored by a format
// tag. Nil struct pointers stay leaves.
func WithStructs() Option {
	return func(o *options) {
		o.structs = true
	}
}

// WithClassifier registers a classifier consulted before the built-in
// rules. Returning (children, true) makes value a container iterated by
// children; returning (nil, false) falls through to the default rules.
func WithClassifier(classify func(value any) (visitor.Visitor, bool)) Option {
	return func(o *options) {
		o.classifier = classify
	}
}
