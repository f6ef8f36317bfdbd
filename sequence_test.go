package flats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_Collect(t *testing.T) {
	actual, err := Flatten([]any{[]any{1, 2}, 3}).Collect()
	require.NoError(t, err)
	assert.EqualValues(t, []any{1, 2, 3}, actual)
}

func TestSequence_First(t *testing.T) {
	sequence := Flatten([]any{1, 2, 3, 4, 5})

	actual, err := sequence.First(3)
	require.NoError(t, err)
	assert.EqualValues(t, []any{1, 2, 3}, actual)

	all, err := sequence.First(10)
	require.NoError(t, err)
	assert.EqualValues(t, []any{1, 2, 3, 4, 5}, all)

	none, err := sequence.First(0)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSequence_Count(t *testing.T) {
	count, err := Flatten([]any{[]any{1, 2}, []any{3, []any{4, 5}}}).Count()
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestSequence_All(t *testing.T) {
	var values []any
	for value, err := range Flatten([]any{[]any{1, 2}, 3}).All() {
		require.NoError(t, err)
		values = append(values, value)
	}
	assert.EqualValues(t, []any{1, 2, 3}, values)
}

func TestSequence_AllError(t *testing.T) {
	boom := errors.New("boom")
	sequence := Flatten([]any{1, faulty{elements: []any{2}, err: boom}})

	var values []any
	var lastErr error
	for value, err := range sequence.All() {
		if err != nil {
			lastErr = err
			continue
		}
		values = append(values, value)
	}
	assert.EqualValues(t, []any{1, 2}, values)
	assert.Equal(t, boom, lastErr)
}

// lateFailing ignores an early stop and still returns its error.
type lateFailing struct {
	elements []any
	err      error
}

func (l lateFailing) Iterate(yield func(element any) (bool, error)) error {
	for _, element := range l.elements {
		if continueVisit, err := yield(element); err != nil || !continueVisit {
			break
		}
	}
	return l.err
}

func TestSequence_AllStopThenLateError(t *testing.T) {
	sequence := Flatten([]any{lateFailing{elements: []any{1, 2, 3}, err: errors.New("late")}})

	var values []any
	for value, err := range sequence.All() {
		require.NoError(t, err)
		values = append(values, value)
		break
	}
	assert.EqualValues(t, []any{1}, values)
}

func TestSequence_AllEarlyStop(t *testing.T) {
	var values []any
	for value := range Flatten([]any{1, 2, 3, 4}).All() {
		values = append(values, value)
		if len(values) == 2 {
			break
		}
	}
	assert.EqualValues(t, []any{1, 2}, values)
}
