package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

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

func TestVecWithLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		l    float64
		want Vec
	}{
		{"scale up", Vec{3, 4}, 10, Vec{6, 8}},
		{"scale down", Vec{0, -8}, 2, Vec{0, -2}},
		{"zero stays zero", Vec{}, 5, Vec{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.WithLen(tc.l)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("WithLen(%v) = %v, expected %v", tc.l, got, tc.want)
			}
		})
	}
}

func TestBoxCircleIntersects(t *testing.T) {
	b := Box{X: 100, Y: 100, W: 60, H: 20}

	tests := []struct {
		name     string
		c        Vec
		r        float64
		expected bool
	}{
		{"centre inside", Vec{130, 110}, 8, true},
		{"touching left edge", Vec{92, 110}, 8, false},
		{"overlapping left edge", Vec{93, 110}, 8, true},
		{"above top", Vec{130, 91}, 8, false},
		{"near corner but outside", Vec{95, 95}, 7, false},
		{"corner overlap", Vec{96, 96}, 7, true},
		{"far away", Vec{0, 0}, 8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CircleIntersects(tc.c, tc.r); got != tc.expected {
				t.Errorf("CircleIntersects(%v, %v) = %v, expected %v", tc.c, tc.r, got, tc.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewSimpleRNG(7), NewSimpleRNG(7)
	for i := range 100 {
		x, y := a.Intn(10), b.Intn(10)
		if x != y {
			t.Fatalf("draw %d: %d != %d for the same seed", i, x, y)
		}
		if x < 0 || x >= 10 {
			t.Fatalf("Intn(10) = %d out of range", x)
		}
		if f := a.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", f)
		}
		b.Float64()
	}
	if NewSimpleRNG(0).State() == 0 {
		t.Error("zero seed should be remapped to a non-zero state")
	}
}
