package visitor

import (
	"fmt"
	"reflect"
)

// Chan returns a Visitor that receives from a channel until it is closed or
// the yield callback stops the iteration. The channel is consumed as it is
// visited; like any one-shot source, a second visit resumes where the first
// stopped.
func Chan(value any) (Visitor, error) {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Chan || rValue.Type().ChanDir()&reflect.RecvDir == 0 {
		return nil, fmt.Errorf("expected receivable channel, got %T", value)
	}
	return func(yield func(element any) (bool, error)) error {
		for {
			element, ok := rValue.Recv()
			if !ok {
				return nil
			}
			continueVisit, err := yield(element.Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				return nil
			}
		}
	}, nil
}
