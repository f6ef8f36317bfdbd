package visitor

import (
	"fmt"
	"iter"
	"reflect"
)

// Seq returns a Visitor over the elements of an iterator function of shape
// func(func(T) bool), i.e. iter.Seq[T] and compatible literals. The function
// is invoked only when the Visitor runs; constructing the Visitor never
// consumes a one-shot source.
func Seq(value any) (Visitor, error) {
	switch actual := value.(type) {
	case iter.Seq[any]:
		return typedSeq(actual), nil
	case func(func(any) bool):
		return typedSeq(actual), nil
	}
	seqType := reflect.TypeOf(value)
	if !IsSeq(seqType) {
		return nil, fmt.Errorf("expected iterator function func(func(T) bool), got %T", value)
	}
	fn := reflect.ValueOf(value)
	yieldType := seqType.In(0)
	return func(yield func(element any) (bool, error)) error {
		var visitErr error
		rYield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			continueVisit, err := yield(args[0].Interface())
			if err != nil {
				visitErr = err
				continueVisit = false
			}
			return []reflect.Value{reflect.ValueOf(continueVisit)}
		})
		fn.Call([]reflect.Value{rYield})
		return visitErr
	}, nil
}

func typedSeq(seq iter.Seq[any]) Visitor {
	return func(yield func(element any) (bool, error)) error {
		var visitErr error
		seq(func(element any) bool {
			continueVisit, err := yield(element)
			if err != nil {
				visitErr = err
				return false
			}
			return continueVisit
		})
		return visitErr
	}
}

// IsSeq reports whether seqType has the iterator function shape
// func(func(T) bool). It is a pure type check.
func IsSeq(seqType reflect.Type) bool {
	if seqType == nil || seqType.Kind() != reflect.Func {
		return false
	}
	if seqType.NumIn() != 1 || seqType.NumOut() != 0 || seqType.IsVariadic() {
		return false
	}
	yieldType := seqType.In(0)
	return yieldType.Kind() == reflect.Func &&
		yieldType.NumIn() == 1 &&
		yieldType.NumOut() == 1 &&
		yieldType.Out(0) == boolType &&
		!yieldType.IsVariadic()
}

var boolType = reflect.TypeOf(true)
