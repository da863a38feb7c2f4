package qrencode

// penalty computes the total penalty score for the grid's current
// module colors (after masking), per §4.6: the sum of the four
// components (adjacent runs, 2x2 blocks, finder-like patterns, and
// dark/light balance). Lower is better.
func (g *grid) penalty() int {
	total := 0
	total += g.penaltyRuns()
	total += g.penaltyBoxes()
	total += g.penaltyFinderLike()
	total += g.penaltyBalance()
	return total
}

// penaltyRuns is component A: 3 points for every run of 5 same-color
// modules in a row or column, plus 1 for every module beyond 5.
func (g *grid) penaltyRuns() int {
	total := 0
	size := g.size
	for y := 0; y < size; y++ {
		total += runPenalty(func(x int) bool { return g.modules[y][x] }, size)
	}
	for x := 0; x < size; x++ {
		total += runPenalty(func(y int) bool { return g.modules[y][x] }, size)
	}
	return total
}

func runPenalty(at func(int) bool, size int) int {
	total := 0
	runLen := 1
	prev := at(0)
	for i := 1; i < size; i++ {
		cur := at(i)
		if cur == prev {
			runLen++
			continue
		}
		if runLen >= 5 {
			total += 3 + (runLen - 5)
		}
		runLen = 1
		prev = cur
	}
	if runLen >= 5 {
		total += 3 + (runLen - 5)
	}
	return total
}

// penaltyBoxes is component B: 3 points for every 2x2 block of
// same-colored modules (overlapping blocks all count).
func (g *grid) penaltyBoxes() int {
	total := 0
	size := g.size
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			c := g.modules[y][x]
			if g.modules[y][x+1] == c && g.modules[y+1][x] == c && g.modules[y+1][x+1] == c {
				total += 3
			}
		}
	}
	return total
}

// finderLikePattern is the 1:1:3:1:1 run dark-light-dark-light-dark
// pattern (scaled by module), padded with 4 light modules on either
// side, that component C searches for.
var finderLikePattern = []bool{
	false, false, false, false, true, false, true, true, true, false, true, false, false, false, false,
}

// penaltyFinderLike is component C: 40 points for every occurrence,
// in any row or column, of finderLikePattern: the dark-light run
// pattern 1:1:3:1:1 at one module per unit, with 4 light modules both
// before and after it. A pattern with 4 light modules on only one
// side, or with runs wider than one module per unit, is not counted.
func (g *grid) penaltyFinderLike() int {
	total := 0
	size := g.size
	for y := 0; y < size; y++ {
		total += finderLikeLinePenalty(func(x int) bool { return g.modules[y][x] }, size)
	}
	for x := 0; x < size; x++ {
		total += finderLikeLinePenalty(func(y int) bool { return g.modules[y][x] }, size)
	}
	return total
}

func finderLikeLinePenalty(at func(int) bool, size int) int {
	total := 0
	n := len(finderLikePattern)
	for start := -n + 1; start < size; start++ {
		if matchesFinderLike(at, size, start) {
			total += 40
		}
	}
	return total
}

func matchesFinderLike(at func(int) bool, size, start int) bool {
	for i, want := range finderLikePattern {
		pos := start + i
		var got bool
		if pos < 0 || pos >= size {
			got = false // off the edge reads as light
		} else {
			got = at(pos)
		}
		if got != want {
			return false
		}
	}
	return true
}

// penaltyBalance is component D: the smallest nonnegative k with
// |dark/total - 0.5| <= 0.05*(k+1), contributing k*10.
func (g *grid) penaltyBalance() int {
	size := g.size
	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.modules[y][x] {
				dark++
			}
		}
	}
	total := size * size
	a := 20*dark - 10*total
	if a < 0 {
		a = -a
	}
	k := (a+total-1)/total - 1
	if k < 0 {
		k = 0
	}
	return k * 10
}
