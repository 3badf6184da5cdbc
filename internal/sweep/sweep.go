package sweep

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrShortReport reports a depth report too short to seed a fold.
var ErrShortReport = errors.New("depth report too short")

type increaseState[T constraints.Integer] struct {
	count int
	prev  T
}

func (s increaseState[T]) step(val T) increaseState[T] {
	if val > s.prev {
		return increaseState[T]{count: s.count + 1, prev: val}
	}
	return increaseState[T]{count: s.count, prev: val}
}

// IncreaseCount counts how many readings are strictly larger than the
// reading immediately before them. A single-element report has no increases.
func IncreaseCount[T constraints.Integer](report []T) (int, error) {
	if len(report) < 1 {
		return 0, ErrShortReport
	}
	state := increaseState[T]{prev: report[0]}
	for _, val := range report[1:] {
		state = state.step(val)
	}
	return state.count, nil
}

// windowState carries the running state of the three-measurement window
// fold: the previous window sum plus the two trailing readings that the next
// window shares with it.
type windowState[T constraints.Integer] struct {
	count   int
	prevSum T
	trail0  T
	trail1  T
}

func (s windowState[T]) step(val T) windowState[T] {
	next := windowState[T]{
		count:   s.count,
		prevSum: s.trail0 + s.trail1 + val,
		trail0:  s.trail1,
		trail1:  val,
	}
	if next.prevSum > s.prevSum {
		next.count++
	}
	return next
}

// WindowCount counts how many times the sum of three consecutive readings
// exceeds the sum of the window one reading earlier. A report of exactly
// three readings has a single window and no comparisons.
func WindowCount[T constraints.Integer](report []T) (int, error) {
	if len(report) < 3 {
		return 0, ErrShortReport
	}
	state := windowState[T]{
		prevSum: report[0] + report[1] + report[2],
		trail0:  report[1],
		trail1:  report[2],
	}
	for _, val := range report[3:] {
		state = state.step(val)
	}
	return state.count, nil
}
