package keypad

import (
	"sort"
	"testing"
)

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		digit    byte
		expected string
	}{
		{
			name:     "center key",
			digit:    '5',
			expected: "12346789",
		},
		{
			name:     "top left corner",
			digit:    '1',
			expected: "245",
		},
		{
			name:     "bottom row excludes star and hash",
			digit:    '0',
			expected: "789",
		},
		{
			name:     "eight key includes zero",
			digit:    '8',
			expected: "045679",
		},
		{
			name:     "seven key excludes star",
			digit:    '7',
			expected: "458",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := Standard.Neighbors(tt.digit)
			sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
			if string(neighbors) != tt.expected {
				t.Errorf("Neighbors(%c) = %s, want %s", tt.digit, neighbors, tt.expected)
			}
		})
	}
}

func TestNeighborsUnknownKey(t *testing.T) {
	if n := Standard.Neighbors('x'); n != nil {
		t.Errorf("Neighbors('x') = %v, want nil", n)
	}
}

func TestPositionOf(t *testing.T) {
	row, col, ok := Standard.PositionOf('0')
	if !ok || row != 3 || col != 1 {
		t.Errorf("PositionOf('0') = (%d, %d, %v), want (3, 1, true)", row, col, ok)
	}

	if _, _, ok := Standard.PositionOf('x'); ok {
		t.Error("PositionOf('x') should not be found")
	}
}

func TestIsCorner(t *testing.T) {
	for _, d := range []byte{'1', '3', '7', '9'} {
		if !IsCorner(d) {
			t.Errorf("IsCorner(%c) = false, want true", d)
		}
	}
	for _, d := range []byte{'0', '2', '4', '5', '6', '8', '*', '#'} {
		if IsCorner(d) {
			t.Errorf("IsCorner(%c) = true, want false", d)
		}
	}
}
