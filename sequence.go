package flats

import "iter"

// Sequence is a lazy producer of leaf values. Running it calls yield once
// per value; yield returning (false, nil) stops the production early, and
// an error from yield or from iterating an underlying container stops it
// and is returned unchanged. A Sequence holds no state of its own: running
// it twice re-traverses the input, though one-shot sources (channels,
// consumed iterator functions) will not replay what an earlier run consumed.
type Sequence func(yield func(value any) (bool, error)) error

// Collect drains the sequence into a slice. On error it returns the values
// produced before the failure alongside the error.
func (s Sequence) Collect() ([]any, error) {
	var result []any
	err := s(func(value any) (bool, error) {
		result = append(result, value)
		return true, nil
	})
	return result, err
}

// First returns at most n leading values and then stops pulling, leaving
// the rest of the input untouched; it terminates on infinite inputs.
func (s Sequence) First(n int) ([]any, error) {
	if n <= 0 {
		return nil, nil
	}
	result := make([]any, 0, n)
	err := s(func(value any) (bool, error) {
		result = append(result, value)
		return len(result) < n, nil
	})
	return result, err
}

// Count drains the sequence and returns the number of values produced.
func (s Sequence) Count() (int, error) {
	count := 0
	err := s(func(any) (bool, error) {
		count++
		return true, nil
	})
	return count, err
}

// All adapts the sequence to the standard iterator protocol for
// range-over-func consumption. Values are paired with a nil error; a
// traversal error is delivered as the final pair with a nil value, unless
// the consumer already stopped the iteration.
func (s Sequence) All() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		stopped := false
		err := s(func(value any) (bool, error) {
			more := yield(value, nil)
			if !more {
				stopped = true
			}
			return more, nil
		})
		if err != nil && !stopped {
			yield(nil, err)
		}
	}
}
