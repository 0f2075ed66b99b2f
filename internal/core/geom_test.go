package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"apart vertically", Box{0, 0, 10, 10}, Box{0, 20, 10, 10}, false},
		{"fractional overlap", Box{0, 0, 10.5, 10}, Box{10.25, 0, 5, 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxConstructors(t *testing.T) {
	b := BoxFromBottomCenter(150, 400, 27, 81)
	if b.X != 136.5 || b.Y != 319 || b.Bottom() != 400 {
		t.Errorf("BoxFromBottomCenter() = %+v, expected X=136.5 Y=319 bottom=400", b)
	}

	c := BoxFromCenter(100, 300, 60, 60)
	cx, cy := c.Center()
	if cx != 100 || cy != 300 {
		t.Errorf("BoxFromCenter().Center() = (%f, %f), expected (100, 300)", cx, cy)
	}
}

func TestCircleIntersectsBox(t *testing.T) {
	box := Box{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{5, 5, 1}, true},
		{"overlapping side", Circle{12, 5, 3}, true},
		{"near corner but outside", Circle{13, 13, 3}, false},
		{"far away", Circle{50, 50, 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IntersectsBox(box); got != tc.expected {
				t.Errorf("IntersectsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
