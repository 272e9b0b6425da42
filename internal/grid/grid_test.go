package grid

import (
	"math"
	"testing"
)

func TestAxisPoints(t *testing.T) {
	a := Axis{N: 4, Min: -2, Max: 2}
	pts := a.Points()

	expected := []float64{-1, 0, 1, 2}
	if len(pts) != len(expected) {
		t.Fatalf("expected %d points, got %d", len(expected), len(pts))
	}
	for i := range expected {
		if math.Abs(pts[i]-expected[i]) > 1e-12 {
			t.Errorf("point %d: expected %f, got %f", i, expected[i], pts[i])
		}
	}

	if math.Abs(a.Step()-1) > 1e-12 {
		t.Errorf("expected step 1, got %f", a.Step())
	}
	if math.Abs(a.Spacing()-math.Pi/2) > 1e-12 {
		t.Errorf("expected spacing pi/2, got %f", a.Spacing())
	}
}

func TestMeshOrdering(t *testing.T) {
	m := NewMesh([]Axis{
		{N: 2, Min: 0, Max: 2},
		{N: 3, Min: 0, Max: 3},
	})

	if m.Size() != 6 {
		t.Fatalf("expected size 6, got %d", m.Size())
	}

	// last dimension fastest
	expected := [][]float64{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
	}
	for p, want := range expected {
		got := m.Point(p, nil)
		if got[0] != want[0] || got[1] != want[1] {
			t.Errorf("point %d: expected %v, got %v", p, want, got)
		}
	}

	idx := m.Index(4, nil)
	if idx[0] != 1 || idx[1] != 1 {
		t.Errorf("expected index [1 1], got %v", idx)
	}
}

func TestMeshSample(t *testing.T) {
	m := NewMesh([]Axis{
		{N: 2, Min: 0, Max: 2},
		{N: 2, Min: 0, Max: 4},
		{N: 2, Min: 0, Max: 6},
	})

	u := m.Sample(func(x []float64) float64 { return 100*x[0] + 10*x[1] + x[2] })

	if len(u) != 8 {
		t.Fatalf("expected 8 samples, got %d", len(u))
	}
	if u[0] != 100+20+3 {
		t.Errorf("expected first sample 123, got %f", u[0])
	}
	if u[1] != 100+20+6 {
		t.Errorf("expected second sample 126, got %f", u[1])
	}
	if u[7] != 200+40+6 {
		t.Errorf("expected last sample 246, got %f", u[7])
	}
}

func TestCellVolume(t *testing.T) {
	m := NewMesh([]Axis{{N: 4, Min: 0, Max: 2}, {N: 5, Min: -1, Max: 4}})
	if math.Abs(m.CellVolume()-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", m.CellVolume())
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		n        int
		expected []Pair
	}{
		{1, nil},
		{2, []Pair{{0, 1}}},
		{3, []Pair{{0, 1}, {0, 2}, {1, 2}}},
	}

	for _, tt := range tests {
		got := Pairs(tt.n)
		if len(got) != len(tt.expected) || len(got) != NumPairs(tt.n) {
			t.Fatalf("n=%d: expected %d pairs, got %d", tt.n, len(tt.expected), len(got))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("n=%d pair %d: expected %v, got %v", tt.n, i, tt.expected[i], got[i])
			}
		}
	}
}

func TestScaleCoefficients(t *testing.T) {
	axes := []Axis{
		{N: 8, Min: 0, Max: 2 * math.Pi},
		{N: 8, Min: -math.Pi, Max: 3 * math.Pi},
		{N: 8, Min: 0, Max: math.Pi},
	}

	kd := ScaleDiag([]float64{-1, -1, 2}, axes)
	expected := []float64{-1, -0.25, 8}
	for i := range expected {
		if math.Abs(kd[i]-expected[i]) > 1e-12 {
			t.Errorf("kd[%d]: expected %f, got %f", i, expected[i], kd[i])
		}
	}

	in := []float64{1, 0, -1}
	kc := ScaleCross(in, axes)
	if math.Abs(kc[0]-0.5) > 1e-12 {
		t.Errorf("kc[0]: expected 0.5, got %f", kc[0])
	}
	if kc[1] != 0 {
		t.Errorf("kc[1]: expected 0, got %f", kc[1])
	}
	if math.Abs(kc[2]+1) > 1e-12 {
		t.Errorf("kc[2]: expected -1, got %f", kc[2])
	}
	if in[0] != 1 {
		t.Error("input coefficients were modified")
	}
}
