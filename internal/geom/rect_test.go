package geom

import "testing"

func TestIntersect(t *testing.T) {
	a := RectD{X1: 0, Y1: 0, X2: 10, Y2: 10}
	b := RectD{X1: 5, Y1: 5, X2: 15, Y2: 15}
	got, ok := Intersect(a, b)
	if !ok {
		t.Fatal("expected overlap")
	}
	want := RectD{X1: 5, Y1: 5, X2: 10, Y2: 10}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	c := RectD{X1: 20, Y1: 20, X2: 30, Y2: 30}
	if _, ok := Intersect(a, c); ok {
		t.Error("disjoint rects should not intersect")
	}
}

func TestUnion(t *testing.T) {
	a := RectD{X1: 0, Y1: 0, X2: 10, Y2: 10}
	b := RectD{X1: 5, Y1: -5, X2: 20, Y2: 8}
	got := Union(a, b)
	want := RectD{X1: 0, Y1: -5, X2: 20, Y2: 10}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestOutwardInt(t *testing.T) {
	tests := []struct {
		name string
		in   RectD
		want RectI
	}{
		{"exact", RectD{X1: 1, Y1: 2, X2: 3, Y2: 4}, RectI{X1: 1, Y1: 2, X2: 3, Y2: 4}},
		{"fractional", RectD{X1: 1.2, Y1: 2.8, X2: 3.1, Y2: 4.9}, RectI{X1: 1, Y1: 2, X2: 4, Y2: 5}},
		{"negative", RectD{X1: -1.2, Y1: -0.1, X2: 0.5, Y2: 0.5}, RectI{X1: -2, Y1: -1, X2: 1, Y2: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutwardInt(tt.in)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAndIsEmpty(t *testing.T) {
	r := RectD{X1: 10, Y1: 10, X2: 0, Y2: 0}
	r.Normalize()
	if r.X1 != 0 || r.X2 != 10 {
		t.Errorf("normalize did not sort x: %+v", r)
	}
	if (RectD{}).IsEmpty() != true {
		t.Error("zero rect should be empty")
	}
	if r.IsEmpty() {
		t.Error("normalized 10x10 rect should not be empty")
	}
}

func TestClamp01AndClampInt(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 out of range")
	}
	if ClampInt(-5, 0, 10) != 0 || ClampInt(15, 0, 10) != 10 || ClampInt(5, 0, 10) != 5 {
		t.Error("ClampInt out of range")
	}
}

func TestIRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.4, 0}, {0.5, 1}, {-0.5, -1}, {-0.4, 0}, {2.9, 3},
	}
	for _, tt := range tests {
		if got := IRound(tt.in); got != tt.want {
			t.Errorf("IRound(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
