package domain

import (
	"math"
	"testing"
)

func TestNormalizeDegreesRange(t *testing.T) {
	inputs := []float64{
		0, 359.9999, 360, 360.0001, 720, 1080.5,
		-0.0001, -12, -360, -719.25, -1e-30,
		12.5, 180, 299.999999,
	}

	for _, in := range inputs {
		got := NormalizeDegrees(in)
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v, want value in [0,360)", in, got)
		}
	}
}

func TestNormalizeDegreesIdempotent(t *testing.T) {
	inputs := []float64{-1234.5, -360, -0.5, 0, 15.25, 360, 725.1}

	for _, in := range inputs {
		once := NormalizeDegrees(in)
		twice := NormalizeDegrees(once)
		if once != twice {
			t.Errorf("NormalizeDegrees not idempotent for %v: first %v, second %v", in, once, twice)
		}
	}
}

func TestNormalizeDegreesValues(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{-360, 0},
		{-10, 350},
		{370, 10},
		{725, 5},
	}

	for _, c := range cases {
		if got := NormalizeDegrees(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDegreesBetweenWrapsForward(t *testing.T) {
	if got := DegreesBetween(350, 10); math.Abs(got-20) > 1e-9 {
		t.Errorf("DegreesBetween(350, 10) = %v, want 20", got)
	}
	if got := DegreesBetween(10, 350); math.Abs(got-340) > 1e-9 {
		t.Errorf("DegreesBetween(10, 350) = %v, want 340", got)
	}
	if got := DegreesBetween(42, 42); got != 0 {
		t.Errorf("DegreesBetween(42, 42) = %v, want 0", got)
	}
}
