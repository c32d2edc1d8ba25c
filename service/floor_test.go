package service

import "testing"

func TestDynamicFloor_AtOrBelowBase(t *testing.T) {
	params := DefaultParams()

	for _, rate := range []float64{0.5, 5, 11.9, 12.0} {
		if got := params.DynamicFloor(rate); got != 12.0 {
			t.Errorf("DynamicFloor(%v) = %v, want 12.0", rate, got)
		}
	}
}

func TestDynamicFloor_Buckets(t *testing.T) {
	params := DefaultParams()

	cases := []struct {
		rate float64
		want float64
	}{
		{12.5, 12.0},
		{13.0, 12.0},
		{14.9, 12.0},
		{15.0, 12.0}, // boundary resolves to the lower bucket
		{15.1, 15.0},
		{16.0, 15.0},
		{17.99, 15.0},
		{18.0, 15.0}, // boundary
		{18.5, 18.0},
		{21.0, 18.0}, // boundary
		{22.0, 21.0},
		{30.0, 27.0}, // boundary, generalizes beyond the first buckets
		{31.4, 30.0},
	}

	for _, c := range cases {
		if got := params.DynamicFloor(c.rate); got != c.want {
			t.Errorf("DynamicFloor(%v) = %v, want %v", c.rate, got, c.want)
		}
	}
}

func TestDynamicFloor_NonDecreasing(t *testing.T) {
	params := DefaultParams()

	prev := params.DynamicFloor(1)
	for r := 1.0; r <= 40.0; r += 0.05 {
		cur := params.DynamicFloor(r)
		if cur < prev {
			t.Fatalf("DynamicFloor decreased at rate %v: %v -> %v", r, prev, cur)
		}
		prev = cur
	}
}
