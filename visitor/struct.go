package visitor

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

var structCache sync.Map // map[reflect.Type][]*xunsafe.Field

// Struct returns a Visitor over the exported field values of a struct or a
// pointer to struct, in declaration order. Fields tagged `json:"-"` or
// marked ignored by a format tag are skipped.
func Struct(value any) (Visitor, error) {
	valueType := reflect.TypeOf(value)
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected non-nil struct pointer, got %T", value)
		}
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	}
	if structType == nil || structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	fields := visitedFields(structType)
	ptr := xunsafe.AsPointer(value)
	return func(yield func(element any) (bool, error)) error {
		for _, xField := range fields {
			continueVisit, err := yield(xField.Value(ptr))
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

func visitedFields(structType reflect.Type) []*xunsafe.Field {
	if cached, ok := structCache.Load(structType); ok {
		return cached.([]*xunsafe.Field)
	}
	xStruct := xunsafe.NewStruct(structType)
	var fields []*xunsafe.Field
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		field, ok := structType.FieldByName(xField.Name)
		if !ok || field.PkgPath != "" {
			continue
		}
		if isTransient(field.Tag) {
			continue
		}
		fields = append(fields, xField)
	}
	structCache.Store(structType, fields)
	return fields
}

func isTransient(tag reflect.StructTag) bool {
	if tag.Get("json") == "-" {
		return true
	}
	if fTag, err := format.Parse(tag); err == nil && fTag != nil && fTag.Ignore {
		return true
	}
	return false
}
