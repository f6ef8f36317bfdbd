package visitor

import (
	"fmt"
	"reflect"
)

// MapKeys returns a Visitor over the keys of any map value. Iterating a map
// exposes its keys only, mirroring the generic iteration capability of
// mapping types; values stay reachable through the map the caller still
// holds. Key order follows the host map iteration order.
func MapKeys(value any) (Visitor, error) {
	switch actual := value.(type) {
	case map[string]any:
		return TypedMapKeys(actual), nil
	case map[string]string:
		return TypedMapKeys(actual), nil
	case map[string]int:
		return TypedMapKeys(actual), nil
	case map[string]bool:
		return TypedMapKeys(actual), nil
	case map[int]any:
		return TypedMapKeys(actual), nil
	case map[int]string:
		return TypedMapKeys(actual), nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(yield func(element any) (bool, error)) error {
		entries := rValue.MapRange()
		for entries.Next() {
			continueVisit, err := yield(entries.Key().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// TypedMapKeys returns a Visitor over the keys of a map of known types.
func TypedMapKeys[K comparable, V any](aMap map[K]V) Visitor {
	return func(yield func(element any) (bool, error)) error {
		for k := range aMap {
			continueVisit, err := yield(k)
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
