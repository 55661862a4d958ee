package gridtable

import (
	"slices"
	"sort"
)

// RowRange returns the half-open range [start, end) of rows that overlap the vertical
// span [top, bottom) in table coordinates. Use it to skip rows outside a viewport:
//
//	start, end := l.RowRange(scrollY, scrollY+viewHeight)
//	for r := start; r < end; r++ {
//	    // draw row r
//	}
//
// Rows vary in height, so both ends are binary searches over RowOffsets. When a negative
// gap has made any row height negative the offsets are no longer sorted and every row is
// returned.
func (l Layout) RowRange(top, bottom float32) (start, end int) {
	n := len(l.RowHeights)
	if n == 0 || bottom <= top {
		return 0, 0
	}
	if slices.ContainsFunc(l.RowHeights, func(h float32) bool { return h < 0 }) {
		return 0, n
	}

	start = sort.Search(n, func(i int) bool { return l.RowOffsets[i+1] > top })
	end = sort.Search(n, func(i int) bool { return l.RowOffsets[i] >= bottom })
	return start, max(end, start)
}

// ContentHeight returns the distance from the first row's top to the last row's bottom.
func (l Layout) ContentHeight() float32 {
	if len(l.RowOffsets) == 0 {
		return 0
	}
	return l.RowOffsets[len(l.RowOffsets)-1] - l.RowOffsets[0]
}

// ScrollToRow returns the scroll offset that brings row index fully into a view of
// height visible currently scrolled to scroll. Offsets are in table coordinates. If the
// row is already visible or index is out of range, scroll is returned unchanged.
func (l Layout) ScrollToRow(index int, scroll, visible float32) float32 {
	if index < 0 || index >= len(l.RowHeights) {
		return scroll
	}

	top := l.RowOffsets[index]
	bottom := l.RowOffsets[index+1]
	if top < scroll {
		return top
	}
	if bottom > scroll+visible {
		return bottom - visible
	}
	return scroll
}
