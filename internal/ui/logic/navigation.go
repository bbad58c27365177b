package logic

// Directions understood by the navigator
const (
	DirUp       = "up"
	DirDown     = "down"
	DirLeft     = "left"
	DirRight    = "right"
	DirPageUp   = "pageup"
	DirPageDown = "pagedown"
	DirHome     = "home"
	DirEnd      = "end"
)

// listPageSize is how far page up/down jumps in the sidebar lists
const listPageSize = 5

// Navigator handles cursor movement and viewport management for the
// sidebar lists and the card grid
type Navigator struct {
	columns     int // cards per grid row
	visibleRows int // grid rows that fit on screen
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, visibleRows: 1}
}

// UpdateState updates the navigator with the current grid geometry
func (n *Navigator) UpdateState(columns, visibleRows int) {
	if columns < 1 {
		columns = 1
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	n.columns = columns
	n.visibleRows = visibleRows
}

// Columns returns the number of cards per grid row
func (n *Navigator) Columns() int {
	return n.columns
}

// VisibleRows returns the number of grid rows on screen
func (n *Navigator) VisibleRows() int {
	return n.visibleRows
}

// MoveInList moves a cursor in a one-dimensional list of total items
func (n *Navigator) MoveInList(cursor, total int, direction string) int {
	if total <= 0 {
		return 0
	}
	switch direction {
	case DirUp, DirLeft:
		cursor--
	case DirDown, DirRight:
		cursor++
	case DirPageUp:
		cursor -= listPageSize
	case DirPageDown:
		cursor += listPageSize
	case DirHome:
		cursor = 0
	case DirEnd:
		cursor = total - 1
	}
	return clamp(cursor, 0, total-1)
}

// MoveInGrid moves a cursor in the card grid of total items.
// Vertical moves keep the column; moving down into a short last row lands
// on its final card.
func (n *Navigator) MoveInGrid(cursor, total int, direction string) int {
	if total <= 0 {
		return 0
	}
	cols := n.columns
	lastRow := (total - 1) / cols

	switch direction {
	case DirLeft:
		cursor--
	case DirRight:
		cursor++
	case DirUp:
		if cursor-cols >= 0 {
			cursor -= cols
		}
	case DirDown:
		if cursor/cols < lastRow {
			cursor += cols
		}
	case DirPageUp:
		target := cursor - cols*n.visibleRows
		if target < 0 {
			target = cursor % cols
		}
		cursor = target
	case DirPageDown:
		target := cursor + cols*n.visibleRows
		if target/cols > lastRow {
			target = lastRow*cols + cursor%cols
		}
		cursor = target
	case DirHome:
		cursor = 0
	case DirEnd:
		cursor = total - 1
	}
	return clamp(cursor, 0, total-1)
}

// EnsureVisible returns the row offset that keeps cursor on screen,
// scrolling as little as possible from rowOffset
func (n *Navigator) EnsureVisible(cursor, rowOffset, total int) int {
	if total <= 0 {
		return 0
	}
	row := cursor / n.columns
	if row < rowOffset {
		rowOffset = row
	}
	if row >= rowOffset+n.visibleRows {
		rowOffset = row - n.visibleRows + 1
	}

	// Do not leave empty rows at the bottom when content shrinks
	totalRows := (total + n.columns - 1) / n.columns
	if maxOffset := totalRows - n.visibleRows; rowOffset > maxOffset {
		rowOffset = maxOffset
	}
	if rowOffset < 0 {
		rowOffset = 0
	}
	return rowOffset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
