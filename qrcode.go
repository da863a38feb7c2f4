package qrencode

// A ModuleType classifies one module of a QR symbol by how it was
// drawn. External renderers use it to style function modules
// (finders, timing, and so on) differently from data modules; masking
// never changes a module's type.
type ModuleType int

const (
	Data ModuleType = iota
	FinderPattern
	AlignmentPattern
	HorizontalTiming
	VerticalTiming
	Format
	Version
)

// isFunction reports whether kind marks a module that is off limits
// to masking and to zig-zag data placement.
func (kind ModuleType) isFunction() bool { return kind != Data }

// A QrCode is an immutable QR Code Model 2 symbol: a square grid of
// light/dark modules together with per-module type metadata. Values
// are only ever produced by the constructors in this package and are
// safe for concurrent use by multiple readers once built.
type QrCode struct {
	version int
	size    int
	ecl     Ecl
	mask    int
	modules [][]bool
	types   [][]ModuleType
}

// Version returns the QR version, in [1,40].
func (q *QrCode) Version() int { return q.version }

// Size returns the side length of the symbol in modules:
// 4*Version()+17.
func (q *QrCode) Size() int { return q.size }

// Ecl returns the error correction level actually used. It may be
// higher than requested if ECC boosting raised it.
func (q *QrCode) Ecl() Ecl { return q.ecl }

// Mask returns the mask pattern applied, in [0,7].
func (q *QrCode) Mask() int { return q.mask }

// Module reports whether the module at (x,y) is dark. (0,0) is the
// top-left corner.
func (q *QrCode) Module(x, y int) (bool, error) {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false, wrapErr(ErrIndexOutOfRange, "qrencode: module (%d,%d) out of range for size %d", x, y, q.size)
	}
	return q.modules[y][x], nil
}

// ModuleType reports how the module at (x,y) was drawn.
func (q *QrCode) ModuleType(x, y int) (ModuleType, error) {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return 0, wrapErr(ErrIndexOutOfRange, "qrencode: module (%d,%d) out of range for size %d", x, y, q.size)
	}
	return q.types[y][x], nil
}

// buildGrid is the shared constructor body: it lays out function
// patterns, draws the interleaved codewords, and chooses or applies
// the requested mask. dataCodewords must have length
// DataCodewords(version, ecl).
func buildGrid(version int, ecl Ecl, dataCodewords []byte, mask int) (*QrCode, error) {
	if version < MinVersion || version > MaxVersion {
		return nil, wrapErr(ErrInvalidValue, "qrencode: version %d out of range [%d,%d]", version, MinVersion, MaxVersion)
	}
	if ecl < Low || ecl > High {
		return nil, wrapErr(ErrInvalidValue, "qrencode: invalid error correction level %d", ecl)
	}
	if mask < AutoMask || mask > 7 {
		return nil, wrapErr(ErrInvalidValue, "qrencode: invalid mask %d", mask)
	}
	if want := DataCodewords(version, ecl); len(dataCodewords) != want {
		return nil, wrapErr(ErrInvalidValue, "qrencode: got %d data codewords, version %d level %v needs %d", len(dataCodewords), version, ecl, want)
	}

	g := newGrid(version)
	g.drawFunctionPatterns()
	allCodewords := interleaveCodewords(version, ecl, dataCodewords)
	g.drawCodewords(allCodewords)

	chosen := mask
	if mask == AutoMask {
		best, bestPenalty := 0, -1
		for m := 0; m < 8; m++ {
			g.applyMask(m)
			g.drawFormatBits(ecl, m)
			if p := g.penalty(); bestPenalty < 0 || p < bestPenalty {
				bestPenalty, best = p, m
			}
			g.applyMask(m) // undo
		}
		chosen = best
	}
	if chosen < 0 || chosen > 7 {
		panic("qrencode: mask not resolved to [0,7]")
	}
	g.applyMask(chosen)
	g.drawFormatBits(ecl, chosen)

	return &QrCode{
		version: version,
		size:    g.size,
		ecl:     ecl,
		mask:    chosen,
		modules: g.modules,
		types:   g.types,
	}, nil
}

// NewQrCode is the low-level constructor: it renders a QR symbol
// directly from already-assembled data codewords, without running the
// segment/version-fitting pipeline. len(dataCodewords) must equal
// DataCodewords(version, ecl).
func NewQrCode(version int, ecl Ecl, dataCodewords []byte, mask int) (*QrCode, error) {
	return buildGrid(version, ecl, dataCodewords, mask)
}

// EncodeText encodes s, choosing the smallest version in [MinVersion,
// MaxVersion] that fits, boosting the error correction level when it
// can be raised for free, and selecting the mask with the lowest
// penalty score.
func EncodeText(s string, ecl Ecl) (*QrCode, error) {
	segs, err := MakeSegments(s)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(segs, ecl, MinVersion, MaxVersion, AutoMask, true)
}

// EncodeBinary encodes data as a single Byte-mode segment.
func EncodeBinary(data []byte, ecl Ecl, minVersion, maxVersion, mask int, boostEcl bool) (*QrCode, error) {
	seg, err := ByteSegment(data)
	if err != nil {
		return nil, err
	}
	return EncodeSegments([]Segment{seg}, ecl, minVersion, maxVersion, mask, boostEcl)
}

// EncodeSegments runs the full encoder pipeline of §4.3: it fits the
// smallest version in [minVersion,maxVersion] that holds segments at
// ecl, optionally boosts ecl, assembles and pads the bit stream,
// splits and interleaves it into error-corrected blocks, and renders
// the resulting grid with the requested mask (or AutoMask for
// automatic selection).
func EncodeSegments(segments []Segment, ecl Ecl, minVersion, maxVersion, mask int, boostEcl bool) (*QrCode, error) {
	if minVersion < MinVersion || minVersion > maxVersion || maxVersion > MaxVersion {
		return nil, wrapErr(ErrInvalidValue, "qrencode: invalid version range [%d,%d]", minVersion, maxVersion)
	}
	if mask < AutoMask || mask > 7 {
		return nil, wrapErr(ErrInvalidValue, "qrencode: invalid mask %d", mask)
	}

	version := 0
	used := 0
	for v := minVersion; v <= maxVersion; v++ {
		capBits := DataCodewords(v, ecl) * 8
		u := TotalBits(segments, v)
		if u >= 0 && u <= capBits {
			version, used = v, u
			break
		}
	}
	if version == 0 {
		maxCapBits := DataCodewords(maxVersion, ecl) * 8
		return nil, wrapErr(ErrDataTooLong, "qrencode: segments need more than %d bits, but max capacity in [%d,%d] at level %v is %d bits", TotalBits(segments, maxVersion), minVersion, maxVersion, ecl, maxCapBits)
	}

	if boostEcl {
		for _, e := range []Ecl{Low, Medium, Quartile, High} {
			if used <= DataCodewords(version, e)*8 {
				ecl = e
			}
		}
	}

	bb := NewBitBuffer()
	for _, seg := range segments {
		if err := bb.AppendBits(seg.mode.indicator(), 4); err != nil {
			return nil, err
		}
		ccBits := seg.mode.numCharCountBits(version)
		if err := bb.AppendBits(uint32(seg.numChars), ccBits); err != nil {
			return nil, err
		}
		if err := bb.AppendBitBuffer(seg.bits); err != nil {
			return nil, err
		}
	}
	if bb.Len() != used {
		panic("qrencode: assembled bit length does not match fitted length")
	}

	capBits := DataCodewords(version, ecl) * 8

	// Terminator, up to 4 bits.
	if err := bb.AppendBits(0, min(4, capBits-bb.Len())); err != nil {
		return nil, err
	}
	// Byte-align.
	if err := bb.AppendBits(0, (8-bb.Len()%8)%8); err != nil {
		return nil, err
	}
	if bb.Len()%8 != 0 {
		panic("qrencode: bit buffer not byte aligned after padding")
	}

	// Alternating padding bytes 0xEC, 0x11, ...
	for padByte := uint32(0xEC); bb.Len() < capBits; padByte ^= 0xEC ^ 0x11 {
		if err := bb.AppendBits(padByte, 8); err != nil {
			return nil, err
		}
	}

	return buildGrid(version, ecl, bb.bytes(), mask)
}
