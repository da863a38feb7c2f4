package qrencode

// Version bounds for the Model 2 encoder.
const (
	MinVersion = 1
	MaxVersion = 40

	// AutoMask requests automatic penalty-based mask selection.
	AutoMask = -1
)

// An Ecl is a QR error correction level, from least to most tolerant
// of errors.
type Ecl int

const (
	Low Ecl = iota
	Medium
	Quartile
	High
)

// formatBits returns the 2-bit value used in format information for
// ecl, per ISO/IEC 18004 Table 12 (note the counterintuitive order).
func (e Ecl) formatBits() uint32 {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrencode: invalid error correction level")
	}
}

// eccCodewordsPerBlock is ISO/IEC 18004 Annex D, error correction
// codewords per block, indexed [ecl][version]; index 0 is unused.
var eccCodewordsPerBlock = [4][41]int{
	Low:      {0, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	Medium:   {0, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	Quartile: {0, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	High:     {0, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numErrorCorrectionBlocks is ISO/IEC 18004 Annex D, number of error
// correction blocks, indexed [ecl][version]; index 0 is unused.
var numErrorCorrectionBlocks = [4][41]int{
	Low:      {0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	Medium:   {0, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	Quartile: {0, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	High:     {0, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// RawDataModules returns the number of bits of raw, non-function data
// (data + error correction) a version-v symbol has room for, i.e.
// size(v)^2 minus finders, separators, timing, alignment, format
// info, and (for v>=7) version info. Range [208, 29648].
func RawDataModules(v int) int {
	result := (16*v+128)*v + 64
	if v >= 2 {
		numAlign := v/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// DataCodewords returns the number of 8-bit data codewords (excluding
// error correction) a symbol of the given version and level can hold.
func DataCodewords(v int, e Ecl) int {
	return RawDataModules(v)/8 - eccCodewordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
}

// alignmentPatternPositions returns the row/column coordinates at
// which alignment pattern centers should be placed for version v, per
// §4.6. It returns nil for v==1, which has no alignment patterns.
func alignmentPatternPositions(v int) []int {
	if v == 1 {
		return nil
	}
	numAlign := v/7 + 2
	var step int
	if v == 32 {
		step = 26
	} else {
		step = ((4*v+2*numAlign+1)/(2*numAlign-2)) * 2
	}
	size := 4*v + 17
	result := make([]int, numAlign)
	result[0] = 6
	for i := numAlign - 1; i >= 1; i-- {
		result[i] = size - 7 - (numAlign-1-i)*step
	}
	return result
}
