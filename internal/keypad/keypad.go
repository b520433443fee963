package keypad

// Layout models the standard 12-key phone pad used to detect geometric
// MPIN patterns. The grid and its derived lookup tables are fixed at
// package init and never mutated, so the package is safe for concurrent use.
type Layout struct {
	grid      [4][3]byte
	positions map[byte][2]int
}

// Standard is the process-wide 12-key layout.
var Standard = newStandardLayout()

// HorizontalTriples are the digit rows of the keypad.
var HorizontalTriples = []string{"123", "456", "789"}

// VerticalTriples are the digit columns of the keypad.
var VerticalTriples = []string{"147", "258", "369"}

// DiagonalTriples are the two diagonals through the 5 key.
var DiagonalTriples = []string{"159", "357"}

// cornerDigits are the four corner keys of the digit block.
var cornerDigits = map[byte]bool{'1': true, '3': true, '7': true, '9': true}

func newStandardLayout() *Layout {
	l := &Layout{
		grid: [4][3]byte{
			{'1', '2', '3'},
			{'4', '5', '6'},
			{'7', '8', '9'},
			{'*', '0', '#'},
		},
		positions: make(map[byte][2]int),
	}
	for i := range l.grid {
		for j := range l.grid[i] {
			l.positions[l.grid[i][j]] = [2]int{i, j}
		}
	}
	return l
}

// PositionOf returns the row/column of a key on the pad.
func (l *Layout) PositionOf(key byte) (row, col int, ok bool) {
	pos, ok := l.positions[key]
	if !ok {
		return 0, 0, false
	}
	return pos[0], pos[1], true
}

// Neighbors returns the digits adjacent to the given digit in any of the
// eight directions. The * and # keys are never returned.
func (l *Layout) Neighbors(digit byte) []byte {
	pos, ok := l.positions[digit]
	if !ok {
		return nil
	}

	var neighbors []byte
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := pos[0]+di, pos[1]+dj
			if ni < 0 || ni >= len(l.grid) || nj < 0 || nj >= len(l.grid[0]) {
				continue
			}
			n := l.grid[ni][nj]
			if n >= '0' && n <= '9' {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// IsCorner reports whether the digit sits on a corner of the digit block.
func IsCorner(digit byte) bool {
	return cornerDigits[digit]
}
