package qrencode

// grid is the mutable construction-time state for a QR symbol: the
// module colors, their type tags, and a shadow flag protecting
// function modules from masking and data placement. It is discarded
// once a QrCode is built; none of it is part of QrCode's public
// surface or equality semantics.
type grid struct {
	version    int
	size       int
	modules    [][]bool
	types      [][]ModuleType
	isFunction [][]bool
}

func newGrid(version int) *grid {
	size := 4*version + 17
	g := &grid{version: version, size: size}
	g.modules = make([][]bool, size)
	g.types = make([][]ModuleType, size)
	g.isFunction = make([][]bool, size)
	for y := range g.modules {
		g.modules[y] = make([]bool, size)
		g.types[y] = make([]ModuleType, size)
		g.isFunction[y] = make([]bool, size)
	}
	return g
}

func (g *grid) set(x, y int, dark bool, kind ModuleType) {
	g.modules[y][x] = dark
	g.types[y][x] = kind
	g.isFunction[y][x] = kind.isFunction()
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// drawFunctionPatterns draws every function module: timing, finders,
// alignment patterns, a dummy (mask 0) format placeholder, and, for
// v>=7, the version information blocks.
func (g *grid) drawFunctionPatterns() {
	size := g.size
	for i := 0; i < size; i++ {
		dark := i%2 == 0
		g.set(i, 6, dark, HorizontalTiming)
		g.set(6, i, dark, VerticalTiming)
	}

	g.drawFinder(3, 3)
	g.drawFinder(size-4, 3)
	g.drawFinder(3, size-4)

	positions := alignmentPatternPositions(g.version)
	last := len(positions) - 1
	for i, x := range positions {
		for j, y := range positions {
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue // coincides with a finder pattern
			}
			g.drawAlignment(x, y)
		}
	}

	g.drawFormatBits(Low, 0) // placeholder, overwritten once the mask is known

	if g.version >= 7 {
		g.drawVersionBits()
	}
}

// drawFinder draws the 9x9 finder region (7x7 finder ring plus its
// one-module separator) centered at (cx,cy).
func (g *grid) drawFinder(cx, cy int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= g.size || y < 0 || y >= g.size {
				continue
			}
			c := chebyshev(dx, dy)
			g.set(x, y, c != 2 && c != 4, FinderPattern)
		}
	}
}

// drawAlignment draws a 5x5 alignment pattern centered at (cx,cy).
func (g *grid) drawAlignment(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			g.set(cx+dx, cy+dy, chebyshev(dx, dy) != 1, AlignmentPattern)
		}
	}
}

// computeBCH implements the shift-and-xor BCH remainder used for both
// format (degree 10, generator 0x537) and version (degree 12,
// generator 0x1F25) information, per §4.6.
func computeBCH(data uint32, degree int, generator uint32) uint32 {
	rem := data
	for i := 0; i < degree; i++ {
		rem = (rem << 1) ^ ((rem >> uint(degree-1)) * generator)
	}
	return rem & (1<<uint(degree) - 1)
}

// drawFormatBits computes and draws the 15-bit BCH(15,5) format
// information for (ecl, mask) in both copies, per §4.6, and sets the
// permanent dark module.
func (g *grid) drawFormatBits(ecl Ecl, mask int) {
	data := (ecl.formatBits() << 3) | uint32(mask)
	rem := computeBCH(data, 10, 0x537)
	bits := ((data << 10) | rem) ^ 0x5412

	size := g.size
	for i := 0; i <= 5; i++ {
		g.set(8, i, bit(bits, i) != 0, Format)
	}
	g.set(8, 7, bit(bits, 6) != 0, Format)
	g.set(8, 8, bit(bits, 7) != 0, Format)
	g.set(7, 8, bit(bits, 8) != 0, Format)
	for i := 9; i < 15; i++ {
		g.set(14-i, 8, bit(bits, i) != 0, Format)
	}

	for i := 0; i < 8; i++ {
		g.set(size-1-i, 8, bit(bits, i) != 0, Format)
	}
	for i := 8; i < 15; i++ {
		g.set(8, size-15+i, bit(bits, i) != 0, Format)
	}
	g.set(8, size-8, true, Format)
}

// drawVersionBits computes and draws the 18-bit BCH(18,6) version
// information in both 6x3 blocks, for v>=7.
func (g *grid) drawVersionBits() {
	rem := computeBCH(uint32(g.version), 12, 0x1F25)
	bits := (uint32(g.version) << 12) | rem
	size := g.size
	for i := 0; i < 18; i++ {
		b := bit(bits, i) != 0
		a, c := i/3, i%3
		g.set(size-11+c, a, b, Version)
		g.set(a, size-11+c, b, Version)
	}
}

func bit(v uint32, i int) uint32 {
	return (v >> uint(i)) & 1
}

// drawCodewords draws the interleaved, error-corrected codeword
// stream into the grid's non-function modules in the zig-zag scan
// order of §4.6.
func (g *grid) drawCodewords(data []byte) {
	bitIndex := 0
	totalBits := len(data) * 8
	nextBit := func() bool {
		if bitIndex >= totalBits {
			return false
		}
		b := data[bitIndex>>3]&(1<<uint(7-(bitIndex&7))) != 0
		bitIndex++
		return b
	}

	size := g.size
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				y := vert
				if upward {
					y = size - 1 - vert
				}
				if !g.isFunction[y][x] {
					g.modules[y][x] = nextBit()
				}
			}
		}
	}
}

// applyMask toggles every non-function module for which mask
// predicate k holds. Applying the same mask twice is an involution:
// it restores the original modules.
func (g *grid) applyMask(k int) {
	size := g.size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.isFunction[y][x] {
				continue
			}
			if maskPredicate(k, x, y) {
				g.modules[y][x] = !g.modules[y][x]
			}
		}
	}
}

func maskPredicate(k, x, y int) bool {
	switch k {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return (x*y)%2+(x*y)%3 == 0
	case 6:
		return ((x*y)%2+(x*y)%3)%2 == 0
	case 7:
		return ((x+y)%2+(x*y)%3)%2 == 0
	default:
		panic("qrencode: invalid mask index")
	}
}
