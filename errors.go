package gridtable

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange matches every *IndexOutOfRangeError via errors.Is.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoRows is returned when a cell is added to a table without rows.
	ErrNoRows = errors.New("table has no rows")

	// ErrNilContent is returned when a nil node is passed as cell content.
	ErrNilContent = errors.New("cell content is nil")
)

// Axis identifies which index of a coordinate was rejected.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCell
)

// String returns "row" or "cell".
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCell:
		return "cell"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// IndexOutOfRangeError reports a row or cell index outside [0, Bound) on a mutating
// operation. For insertions the valid range is [0, Bound].
type IndexOutOfRangeError struct {
	Axis  Axis
	Index int
	Bound int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Axis, e.Index, e.Bound)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) succeed.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func rowOutOfRange(index, bound int) error {
	return &IndexOutOfRangeError{Axis: AxisRow, Index: index, Bound: bound}
}

func cellOutOfRange(index, bound int) error {
	return &IndexOutOfRangeError{Axis: AxisCell, Index: index, Bound: bound}
}
