package core

import "testing"

var samplePositions = []Position{
	P(0, 0), P(1, 2), P(-3, 4), P(7, -7), P(-5, -9), P(100, 31),
}

func TestPositionProperties(t *testing.T) {
	for _, a := range samplePositions {
		for _, b := range samplePositions {
			if got := a.Add(b).Sub(b); got != a {
				t.Errorf("(%v + %v) - %v = %v, expected %v", a, b, b, got, a)
			}
			if a.Add(b) != b.Add(a) {
				t.Errorf("%v + %v should be commutative", a, b)
			}
		}
		if got := a.Scale(1); got != a {
			t.Errorf("%v * 1 = %v, expected %v", a, got, a)
		}
		if got := a.Mul(P(1, 1)); got != a {
			t.Errorf("%v * (1,1) = %v, expected %v", a, got, a)
		}
		if got := a.DivScalar(1); got != a {
			t.Errorf("%v // 1 = %v, expected %v", a, got, a)
		}
		if got := a.Neg().Neg(); got != a {
			t.Errorf("-(-%v) = %v, expected %v", a, got, a)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestPositionDiv(t *testing.T) {
	got := P(-5, 9).Div(P(2, 4))
	if got != P(-3, 2) {
		t.Errorf("Div() = %v, expected (-3,2)", got)
	}
}

func TestPositionDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DivScalar(0) should panic")
		}
	}()
	P(1, 1).DivScalar(0)
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Position
		expected Position
	}{
		{"up", Up, P(0, -1)},
		{"down", Down, P(0, 1)},
		{"left", Left, P(-1, 0)},
		{"right", Right, P(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dir != tc.expected {
				t.Errorf("%s = %v, expected %v", tc.name, tc.dir, tc.expected)
			}
		})
	}

	if Up.Add(Down) != P(0, 0) || Left.Add(Right) != P(0, 0) {
		t.Error("Opposite directions should cancel out")
	}
}

func TestPositionString(t *testing.T) {
	if s := P(3, -1).String(); s != "(3,-1)" {
		t.Errorf("String() = %q, expected %q", s, "(3,-1)")
	}
}
