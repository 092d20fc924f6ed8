package grid

import "testing"

func TestWorldRoundTrip(t *testing.T) {
	sizes := []float64{32, 30, 1, 16.5}
	for _, ts := range sizes {
		for x := int32(-50); x <= 50; x += 7 {
			for y := int32(-50); y <= 50; y += 5 {
				p := Pos{X: x, Y: y}
				if got := FromWorld(p.ToWorld(ts), ts); got != p {
					t.Fatalf("tile %v: FromWorld(ToWorld(%v)) = %v", ts, p, got)
				}
			}
		}
	}
}

func TestFromWorldFloorsNegatives(t *testing.T) {
	cases := []struct {
		v    Vec2
		want Pos
	}{
		{Vec2{0, 0}, Pos{0, 0}},
		{Vec2{31.9, 31.9}, Pos{0, 0}},
		{Vec2{32, 0}, Pos{1, 0}},
		{Vec2{-0.1, -0.1}, Pos{-1, -1}},
		{Vec2{-32, -32.5}, Pos{-1, -2}},
	}
	for _, c := range cases {
		if got := FromWorld(c.v, 32); got != c.want {
			t.Errorf("FromWorld(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	origin := Pos{}
	cases := []struct {
		d    Direction
		want Pos
	}{
		{DirUp, Pos{0, 1}},
		{DirRight, Pos{1, 0}},
		{DirDown, Pos{0, -1}},
		{DirLeft, Pos{-1, 0}},
		{DirNone, Pos{0, 0}},
	}
	for _, c := range cases {
		if got := origin.Add(c.d); got != c.want {
			t.Errorf("%s: got %v, want %v", c.d, got, c.want)
		}
	}
}

func TestDistances(t *testing.T) {
	a, b := Pos{0, 0}, Pos{3, -4}
	if got := a.Manhattan(b); got != 7 {
		t.Errorf("Manhattan = %d, want 7", got)
	}
	if got := a.Chebyshev(b); got != 4 {
		t.Errorf("Chebyshev = %d, want 4", got)
	}
}

func TestLerpClamps(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 20}
	if got := Lerp(a, b, 0.5); got != (Vec2{5, 10}) {
		t.Errorf("Lerp half = %v", got)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp past end = %v, want %v", got, b)
	}
}
