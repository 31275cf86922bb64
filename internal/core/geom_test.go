package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec2Ops(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); math.Abs(got-5) > eps {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := Dist(a, V(0, 0)); math.Abs(got-5) > eps {
		t.Errorf("Dist() = %v, expected 5", got)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		length float64
		want   Vec2
	}{
		{"right", 0, 10, V(10, 0)},
		{"down", math.Pi / 2, 5, V(0, 5)},
		{"left", math.Pi, 2, V(-2, 0)},
		{"up", -math.Pi / 2, 1, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromAngle(tc.angle, tc.length)
			if math.Abs(got.X-tc.want.X) > eps || math.Abs(got.Y-tc.want.Y) > eps {
				t.Errorf("FromAngle(%v, %v) = %v, expected %v", tc.angle, tc.length, got, tc.want)
			}
		})
	}
}

func TestVec2Angle(t *testing.T) {
	if got := V(0, 1).Angle(); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Angle() = %v, expected π/2", got)
	}
	if got := V(-1, 0).Angle(); math.Abs(got-math.Pi) > eps {
		t.Errorf("Angle() = %v, expected π", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge exclusive", 30, 15, false},
		{"bottom edge exclusive", 15, 30, false},
		{"last inside", 29, 29, true},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(30, 8, 25); got != 25 {
		t.Errorf("ClampF above max = %v, expected 25", got)
	}
	if got := ClampF(3, 8, 25); got != 8 {
		t.Errorf("ClampF below min = %v, expected 8", got)
	}
	if got := ClampF(12.5, 8, 25); got != 12.5 {
		t.Errorf("ClampF inside = %v, expected 12.5", got)
	}
}
