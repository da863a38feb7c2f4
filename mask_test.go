package qrencode

import "testing"

func TestMaskPredicatesMatchTable(t *testing.T) {
	cases := []struct {
		k    int
		x, y int
		want bool
	}{
		{0, 2, 4, true}, {0, 1, 2, false},
		{1, 4, 0, true}, {1, 4, 1, false},
		{2, 6, 0, true}, {2, 1, 0, false},
		{3, 1, 2, true}, {3, 1, 1, false},
		{4, 3, 2, true}, {4, 3, 0, false},
		{5, 2, 3, true}, {5, 1, 1, false},
	}
	for _, c := range cases {
		if got := maskPredicate(c.k, c.x, c.y); got != c.want {
			t.Errorf("maskPredicate(%d, %d, %d) = %v, want %v", c.k, c.x, c.y, got, c.want)
		}
	}
}

func TestApplyMaskIsInvolution(t *testing.T) {
	g := newGrid(2)
	g.drawFunctionPatterns()
	data := make([]byte, RawDataModules(2)/8)
	for i := range data {
		if i%2 == 0 {
			data[i] = 0xAA
		}
	}
	g.drawCodewords(data)

	before := make([][]bool, g.size)
	for y := range before {
		before[y] = append([]bool{}, g.modules[y]...)
	}

	for k := 0; k < 8; k++ {
		g.applyMask(k)
		g.applyMask(k)
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				if g.modules[y][x] != before[y][x] {
					t.Fatalf("mask %d: applying twice changed (%d,%d)", k, x, y)
				}
			}
		}
	}
}

func TestApplyMaskNeverTouchesFunctionModules(t *testing.T) {
	g := newGrid(3)
	g.drawFunctionPatterns()
	before := make([][]bool, g.size)
	for y := range before {
		before[y] = append([]bool{}, g.modules[y]...)
	}
	g.applyMask(0)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.isFunction[y][x] && g.modules[y][x] != before[y][x] {
				t.Errorf("mask touched function module (%d,%d)", x, y)
			}
		}
	}
}

func TestPenaltyRunsPenalizesLongRuns(t *testing.T) {
	g := newGrid(1)
	for x := 0; x < g.size; x++ {
		g.modules[0][x] = true
	}
	got := g.penaltyRuns()
	if got == 0 {
		t.Error("penaltyRuns() = 0 for an all-dark row, want > 0")
	}
}

func TestPenaltyBoxesDetects2x2Block(t *testing.T) {
	g := newGrid(1)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.modules[y][x] = (x+y)%2 == 0 // checkerboard: no uniform 2x2 block anywhere
		}
	}
	if got := g.penaltyBoxes(); got != 0 {
		t.Fatalf("penaltyBoxes() on a checkerboard = %d, want 0", got)
	}
	// Force one uniform 2x2 block.
	g.modules[0][0], g.modules[0][1] = true, true
	g.modules[1][0], g.modules[1][1] = true, true
	if got := g.penaltyBoxes(); got != 3 {
		t.Errorf("penaltyBoxes() with one uniform 2x2 block = %d, want 3", got)
	}
}

func TestPenaltyBalanceZeroAtExactHalf(t *testing.T) {
	g := newGrid(1) // size 21, 441 modules: not evenly splittable, use a synthetic even grid
	g.size = 10
	g.modules = make([][]bool, 10)
	for y := range g.modules {
		g.modules[y] = make([]bool, 10)
		for x := 0; x < 10; x++ {
			g.modules[y][x] = (x+y)%2 == 0 // exactly half dark
		}
	}
	if got := g.penaltyBalance(); got != 0 {
		t.Errorf("penaltyBalance() = %d, want 0 at exactly 50%% dark", got)
	}
}
