package visitor

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/xunsafe"
)

var sliceCache sync.Map // map[reflect.Type]*xunsafe.Slice

// Slice returns a Visitor over the elements of any slice or array value.
func Slice(value any) (Visitor, error) {
	switch actual := value.(type) {
	case []any:
		return TypedSlice(actual), nil
	case []string:
		return TypedSlice(actual), nil
	case []int:
		return TypedSlice(actual), nil
	case []int64:
		return TypedSlice(actual), nil
	case []uint64:
		return TypedSlice(actual), nil
	case []float64:
		return TypedSlice(actual), nil
	case []float32:
		return TypedSlice(actual), nil
	case []bool:
		return TypedSlice(actual), nil
	case []byte:
		return TypedSlice(actual), nil
	}
	valueType := reflect.TypeOf(value)
	switch valueType.Kind() {
	case reflect.Slice:
		return unsafeSlice(value, valueType), nil
	case reflect.Array:
		return arraySlice(value), nil
	}
	return nil, fmt.Errorf("expected slice or array, got %T", value)
}

// TypedSlice returns a Visitor over a slice of a known element type.
func TypedSlice[E any](slice []E) Visitor {
	return func(yield func(element any) (bool, error)) error {
		for _, e := range slice {
			continueVisit, err := yield(e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func unsafeSlice(value any, valueType reflect.Type) Visitor {
	xSlice := lookupSlice(valueType)
	valuePtr := xunsafe.AsPointer(value)
	return func(yield func(element any) (bool, error)) error {
		sliceLen := xSlice.Len(valuePtr)
		for i := 0; i < sliceLen; i++ {
			continueVisit, err := yield(xSlice.ValueAt(valuePtr, i))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func arraySlice(value any) Visitor {
	rValue := reflect.ValueOf(value)
	return func(yield func(element any) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			continueVisit, err := yield(rValue.Index(i).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func lookupSlice(valueType reflect.Type) *xunsafe.Slice {
	if cached, ok := sliceCache.Load(valueType); ok {
		return cached.(*xunsafe.Slice)
	}
	xSlice := xunsafe.NewSlice(valueType)
	sliceCache.Store(valueType, xSlice)
	return xSlice
}
