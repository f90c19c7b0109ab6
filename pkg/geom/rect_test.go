package geom

import (
	"errors"
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expectedErr    error
	}{
		{name: "positive", x1: 0, y1: 0, x2: 800, y2: 600},
		{name: "positive_degenerate", x1: 10, y1: 10, x2: 10, y2: 10},
		{name: "negative_x_inverted", x1: 800, y1: 0, x2: 0, y2: 600, expectedErr: ErrInvalidRect},
		{name: "negative_y_inverted", x1: 0, y1: 600, x2: 800, y2: 0, expectedErr: ErrInvalidRect},
		{name: "negative_nan", x1: math.NaN(), y1: 0, x2: 800, y2: 600, expectedErr: ErrInvalidRect},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRect(test.x1, test.y1, test.x2, test.y2)
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("creating rectangle, got error: %v, expected: %v", err, test.expectedErr)
			}
		})
	}
}

func TestRect_Clamp(t *testing.T) {
	t.Parallel()
	r := Rect{X1: 0, Y1: 0, X2: 400, Y2: 300}
	tests := []struct {
		name      string
		x, y      float64
		expectedX float64
		expectedY float64
	}{
		{name: "inside", x: 150, y: 100, expectedX: 150, expectedY: 100},
		{name: "left_below", x: -20, y: 450, expectedX: 0, expectedY: 300},
		{name: "right_above", x: 900, y: -1, expectedX: 400, expectedY: 0},
		{name: "corner", x: 400, y: 300, expectedX: 400, expectedY: 300},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			x, y := r.Clamp(test.x, test.y)
			if x != test.expectedX || y != test.expectedY {
				t.Errorf("clamping point, got: (%v,%v), expected: (%v,%v)", x, y, test.expectedX, test.expectedY)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 800, Y2: 600}
	if !r.Contains(0, 600) {
		t.Errorf("boundary point must be contained in a closed rectangle")
	}
	if r.Contains(800.5, 10) {
		t.Errorf("point to the right of the rectangle must not be contained")
	}
}
