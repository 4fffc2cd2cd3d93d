package core

import (
	"math"
	"testing"
)

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Vec{X: 10, Y: 10}, Radius: 5}

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"center", Vec{10, 10}, true},
		{"inside", Vec{13, 13}, true},
		{"on boundary (exclusive)", Vec{15, 10}, false},
		{"outside", Vec{16, 10}, false},
		{"outside diagonal", Vec{14, 14}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsBox(t *testing.T) {
	box := Box{X: 100, Y: 100, W: 38, H: 48}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside box", Circle{Vec{110, 110}, 5}, true},
		{"touching left edge from outside", Circle{Vec{90, 120}, 10}, false},
		{"overlapping left edge", Circle{Vec{91, 120}, 10}, true},
		{"near corner but outside", Circle{Vec{92, 92}, 10}, false},
		{"overlapping corner", Circle{Vec{95, 95}, 10}, true},
		{"far away", Circle{Vec{500, 500}, 30}, false},
		{"box inside circle", Circle{Vec{119, 124}, 100}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IntersectsBox(box); got != tc.expected {
				t.Errorf("IntersectsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
		{-1e-15, 0},
	}

	for _, tc := range tests {
		got := WrapDegrees(tc.in)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
		if got < 0 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v, outside [0,360)", tc.in, got)
		}
	}
}

func TestVecAngleZero(t *testing.T) {
	if got := (Vec{}).Angle(); got != 0 {
		t.Errorf("zero vector angle = %v, expected 0", got)
	}
	v := FromAngle(Vec{X: 3, Y: 4}.Angle(), 10)
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("FromAngle() = %v, expected (6, 8)", v)
	}
}

func TestClampF(t *testing.T) {
	if ClampF(-5.5, 0, 10) != 0 || ClampF(15.5, 0, 10) != 10 || ClampF(5.5, 0, 10) != 5.5 {
		t.Error("ClampF returned an unexpected value")
	}
}
