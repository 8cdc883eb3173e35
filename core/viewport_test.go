package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(800, 600, 100, 31, 1)

	if vp.Rows != 30 || vp.Cols != 100 {
		t.Fatalf("Expected 100x30 play area, got %dx%d", vp.Cols, vp.Rows)
	}

	for _, cell := range [][2]int{{0, 1}, {50, 15}, {99, 30}} {
		x, y := vp.ToWorld(cell[0], cell[1])
		cx, cy := vp.ToCell(x, y)
		if cx != cell[0] || cy != cell[1] {
			t.Errorf("Cell %v mapped to world (%.1f, %.1f) and back to (%d, %d)", cell, x, y, cx, cy)
		}
	}
}

func TestViewportOrientation(t *testing.T) {
	vp := NewViewport(800, 600, 80, 25, 1)

	// World origin is bottom-left, so y=0 lands on the last play row
	_, cy := vp.ToCell(0, 0)
	if cy != vp.OffsetY+vp.Rows-1 {
		t.Errorf("Expected floor on row %d, got %d", vp.OffsetY+vp.Rows-1, cy)
	}

	_, cy = vp.ToCell(0, 600)
	if cy != vp.OffsetY {
		t.Errorf("Expected ceiling on row %d, got %d", vp.OffsetY, cy)
	}
}

func TestViewportEdges(t *testing.T) {
	vp := NewViewport(800, 600, 80, 25, 1)

	tests := []struct {
		cx, cy int
		edge   bool
	}{
		{0, 10, true},
		{79, 10, true},
		{40, 1, true},
		{40, 24, true},
		{40, 10, false},
		{1, 2, false},
	}

	for _, tc := range tests {
		if got := vp.AtEdge(tc.cx, tc.cy); got != tc.edge {
			t.Errorf("AtEdge(%d, %d) = %v, want %v", tc.cx, tc.cy, got, tc.edge)
		}
	}
}

func TestEntityPacking(t *testing.T) {
	e := MakeEntity(7, 42)
	if e.Generation() != 7 || e.Index() != 42 {
		t.Errorf("Expected 7:42, got %s", e)
	}
	if MakeEntity(0, 0) != NoEntity {
		t.Error("Zero parts should produce NoEntity")
	}
}
