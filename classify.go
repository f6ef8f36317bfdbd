package flats

import (
	"reflect"

	"github.com/viant/flats/visitor"
)

// Iterable is the capability interface for user-defined containers. A value
// implementing Iterable is classified as a container and its Iterate method
// supplies the children, in the container's own order. An error returned by
// Iterate propagates unchanged to the consumer of the flattened sequence.
type Iterable interface {
	Iterate(yield func(element any) (bool, error)) error
}

// IsContainer reports whether value is classified as a container under the
// default rules: slices, arrays, maps, receive-capable channels, iterator
// functions, and Iterable implementations descend; strings and everything
// else are leaves. The check is pure and never iterates value.
func IsContainer(value any) bool {
	_, ok := defaultOptions.childrenOf(value)
	return ok
}

// childrenOf classifies value and, for a container, returns the visitor
// producing its children. Classification is a type check only; one-shot
// sources are not consumed here.
func (o *options) childrenOf(value any) (visitor.Visitor, bool) {
	if value == nil {
		return nil, false
	}
	if o.classifier != nil {
		if children, ok := o.classifier(value); ok {
			return children, true
		}
	}
	if iterable, ok := value.(Iterable); ok {
		return iterable.Iterate, true
	}
	if _, ok := value.(string); ok {
		return nil, false
	}
	valueType := reflect.TypeOf(value)
	switch valueType.Kind() {
	case reflect.String:
		return nil, false
	case reflect.Slice, reflect.Array:
		children, err := visitor.Slice(value)
		return children, err == nil
	case reflect.Map:
		children, err := visitor.MapKeys(value)
		return children, err == nil
	case reflect.Chan:
		// A nil channel would block forever on receive; unlike nil slices
		// and maps, which safely yield nothing, it stays a leaf.
		if valueType.ChanDir()&reflect.RecvDir == 0 || reflect.ValueOf(value).IsNil() {
			return nil, false
		}
		children, err := visitor.Chan(value)
		return children, err == nil
	case reflect.Func:
		// A nil iterator function would panic when invoked; it stays a leaf.
		if !visitor.IsSeq(valueType) || reflect.ValueOf(value).IsNil() {
			return nil, false
		}
		children, err := visitor.Seq(value)
		return children, err == nil
	case reflect.Struct:
		if !o.structs {
			return nil, false
		}
		children, err := visitor.Struct(value)
		return children, err == nil
	case reflect.Ptr:
		// A nil struct pointer has no fields to read; it stays a leaf.
		if !o.structs || valueType.Elem().Kind() != reflect.Struct || reflect.ValueOf(value).IsNil() {
			return nil, false
		}
		children, err := visitor.Struct(value)
		return children, err == nil
	}
	return nil, false
}
