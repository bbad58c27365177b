package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveInList(t *testing.T) {
	n := NewNavigator()

	tests := []struct {
		name      string
		cursor    int
		total     int
		direction string
		want      int
	}{
		{"down", 0, 5, DirDown, 1},
		{"down at end stays", 4, 5, DirDown, 4},
		{"up at top stays", 0, 5, DirUp, 0},
		{"right behaves like down", 2, 5, DirRight, 3},
		{"page down clamps", 1, 5, DirPageDown, 4},
		{"page up clamps", 3, 17, DirPageUp, 0},
		{"home", 3, 5, DirHome, 0},
		{"end", 0, 17, DirEnd, 16},
		{"empty list", 3, 0, DirDown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.MoveInList(tt.cursor, tt.total, tt.direction))
		})
	}
}

func TestMoveInGrid(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(3, 2)

	// 3 columns, 7 items:
	// 0 1 2
	// 3 4 5
	// 6
	tests := []struct {
		name      string
		cursor    int
		direction string
		want      int
	}{
		{"right", 0, DirRight, 1},
		{"right wraps to next row", 2, DirRight, 3},
		{"left at start stays", 0, DirLeft, 0},
		{"down keeps column", 1, DirDown, 4},
		{"down into short row clamps to last", 5, DirDown, 6},
		{"down on last row stays", 6, DirDown, 6},
		{"up keeps column", 4, DirUp, 1},
		{"up on first row stays", 2, DirUp, 2},
		{"page down", 1, DirPageDown, 6},
		{"page up", 6, DirPageUp, 0},
		{"page up keeps column", 5, DirPageUp, 2},
		{"home", 5, DirHome, 0},
		{"end", 0, DirEnd, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.MoveInGrid(tt.cursor, 7, tt.direction))
		})
	}
}

func TestEnsureVisible(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(2, 2)

	// 2 columns, 9 items -> 5 rows, 2 visible
	assert.Equal(t, 0, n.EnsureVisible(3, 0, 9), "row 1 already visible")
	assert.Equal(t, 1, n.EnsureVisible(4, 0, 9), "row 2 scrolls by one")
	assert.Equal(t, 3, n.EnsureVisible(8, 0, 9), "last row")
	assert.Equal(t, 1, n.EnsureVisible(2, 3, 9), "scroll back up")
	assert.Equal(t, 0, n.EnsureVisible(0, 2, 3), "content shrank")
	assert.Equal(t, 0, n.EnsureVisible(0, 5, 0), "empty")
}

func TestUpdateStateFloors(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, -1)
	assert.Equal(t, 1, n.Columns())
	assert.Equal(t, 1, n.VisibleRows())
}
