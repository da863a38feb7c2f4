package qrencode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// A Mode identifies how a Segment's payload bits were packed.
type Mode int

// The five segment modes this encoder can emit. Kanji segments are
// representable (see KanjiSegment) but MakeSegments never selects
// Kanji automatically.
const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
	Eci
)

// indicator is the 4 bit mode indicator written ahead of a segment's
// character count field.
func (m Mode) indicator() uint32 {
	switch m {
	case Numeric:
		return 1
	case Alphanumeric:
		return 2
	case Byte:
		return 4
	case Kanji:
		return 8
	case Eci:
		return 7
	default:
		panic("qrencode: invalid mode")
	}
}

// countBitsTable lists the character-count field width for each mode,
// indexed by version band (0: v1-9, 1: v10-26, 2: v27-40). See §4.2.
var countBitsTable = [5][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
	Eci:          {0, 0, 0},
}

// versionBand returns the character-count field band for version v,
// per §4.2: band = (v+7)/17, giving 0 for v in [1,9], 1 for [10,26]
// and 2 for [27,40].
func versionBand(v int) int {
	return (v + 7) / 17
}

// numCharCountBits returns the width in bits of m's character count
// field at version v.
func (m Mode) numCharCountBits(v int) int {
	return countBitsTable[m][versionBand(v)]
}

// A Segment is an immutable (mode, character count, payload bits)
// triple, ready to be assembled into a QR bit stream. The mode
// indicator and character count field are not part of bits; they are
// computed and emitted only during final assembly, once the target
// version is known.
type Segment struct {
	mode     Mode
	numChars int
	bits     *BitBuffer
}

// Mode returns the segment's encoding mode.
func (s Segment) Mode() Mode { return s.mode }

// NumChars returns the segment's pre-encoding length: digits for
// Numeric, characters for Alphanumeric/Kanji, bytes for Byte, 0 for
// Eci.
func (s Segment) NumChars() int { return s.numChars }

// newSegment defensively copies bits so the caller's builder can keep
// mutating it afterward without affecting the segment.
func newSegment(mode Mode, numChars int, bits *BitBuffer) Segment {
	return Segment{mode: mode, numChars: numChars, bits: cloneBitBuffer(bits)}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alphanumericIndex maps an alphanumeric character to its 0-44 value,
// or -1 if the character is not in the 45-character set.
func alphanumericIndex(c byte) int {
	return strings.IndexByte(alphanumericCharset, c)
}

// NumericSegment builds a Segment encoding digits in Numeric mode.
// digits must match ^[0-9]*$.
func NumericSegment(digits string) (Segment, error) {
	bb := NewBitBuffer()
	for i := 0; i < len(digits); i += 3 {
		chunk := digits[i:min(i+3, len(digits))]
		for j := 0; j < len(chunk); j++ {
			if chunk[j] < '0' || chunk[j] > '9' {
				return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: non-digit character %q in numeric segment", chunk[j])
			}
		}
		n, _ := parseDigits(chunk)
		bits := 3*len(chunk) + 1
		if err := bb.AppendBits(uint32(n), bits); err != nil {
			return Segment{}, err
		}
	}
	return newSegment(Numeric, len(digits), bb), nil
}

// parseDigits parses up to 3 ASCII digits into an integer.
func parseDigits(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n, nil
}

// AlphanumericSegment builds a Segment encoding text in Alphanumeric
// mode. text must match ^[A-Z0-9 $%*+./:-]*$.
func AlphanumericSegment(text string) (Segment, error) {
	bb := NewBitBuffer()
	for i := 0; i < len(text); i += 2 {
		a := alphanumericIndex(text[i])
		if a < 0 {
			return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: character %q not in alphanumeric set", text[i])
		}
		if i+1 < len(text) {
			b := alphanumericIndex(text[i+1])
			if b < 0 {
				return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: character %q not in alphanumeric set", text[i+1])
			}
			if err := bb.AppendBits(uint32(a*45+b), 11); err != nil {
				return Segment{}, err
			}
		} else {
			if err := bb.AppendBits(uint32(a), 6); err != nil {
				return Segment{}, err
			}
		}
	}
	return newSegment(Alphanumeric, len(text), bb), nil
}

// ByteSegment builds a Segment encoding raw bytes in Byte mode, one
// 8-bit group per input byte.
func ByteSegment(data []byte) (Segment, error) {
	bb := NewBitBuffer()
	for _, b := range data {
		if err := bb.AppendBits(uint32(b), 8); err != nil {
			return Segment{}, err
		}
	}
	return newSegment(Byte, len(data), bb), nil
}

// KanjiSegment builds a Segment encoding text in Kanji mode. Every
// rune in text must belong to the JIS X 0208 subset reachable via
// Shift JIS, transcoded one rune at a time so that single-byte runs
// (ASCII, half-width kana) can never be misread as a Kanji doublet.
// Kanji segments are never produced by MakeSegments; a caller wanting
// Kanji mode must build one explicitly and pass it to EncodeSegments.
func KanjiSegment(text string) (Segment, error) {
	enc := japanese.ShiftJIS.NewEncoder()
	bb := NewBitBuffer()
	n := 0
	for _, r := range text {
		sjis, err := enc.String(string(r))
		if err != nil || len(sjis) != 2 {
			return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: %q is not representable in the QR kanji subset", r)
		}
		hi, lo := uint32(sjis[0]), uint32(sjis[1])
		var val uint32
		switch {
		case hi >= 0x81 && hi <= 0x9f:
			val = hi - 0x81
		case hi >= 0xe0 && hi <= 0xeb:
			val = hi - 0xc1
		default:
			return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: %q lead byte %#x is outside the QR kanji bands", r, hi)
		}
		val *= 0xc0
		switch {
		case lo >= 0x40 && lo < 0x7f:
			val += lo - 0x40
		case lo >= 0x80 && lo <= 0xfc:
			val += lo - 0x40
		default:
			return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: %q trail byte %#x is outside the QR kanji bands", r, lo)
		}
		if val > 0x1fff {
			return Segment{}, wrapErr(ErrInvalidCharacter, "qrencode: %q reduces to an out-of-range kanji code %#x", r, val)
		}
		if err := bb.AppendBits(val, 13); err != nil {
			return Segment{}, err
		}
		n++
	}
	return newSegment(Kanji, n, bb), nil
}

// EciSegment builds a Segment designating the ECI assignment value
// assignVal for subsequent segments.
func EciSegment(assignVal int) (Segment, error) {
	bb := NewBitBuffer()
	switch {
	case assignVal < 0:
		return Segment{}, wrapErr(ErrValueOutOfRange, "qrencode: negative ECI assignment value %d", assignVal)
	case assignVal < 1<<7:
		if err := bb.AppendBits(uint32(assignVal), 8); err != nil {
			return Segment{}, err
		}
	case assignVal < 1<<14:
		if err := bb.AppendBits(2, 2); err != nil {
			return Segment{}, err
		}
		if err := bb.AppendBits(uint32(assignVal), 14); err != nil {
			return Segment{}, err
		}
	case assignVal < 1_000_000:
		if err := bb.AppendBits(6, 3); err != nil {
			return Segment{}, err
		}
		if err := bb.AppendBits(uint32(assignVal), 21); err != nil {
			return Segment{}, err
		}
	default:
		return Segment{}, wrapErr(ErrValueOutOfRange, "qrencode: ECI assignment value %d out of range", assignVal)
	}
	return newSegment(Eci, 0, bb), nil
}

// isNumeric reports whether text consists only of ASCII digits.
func isNumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// isAlphanumeric reports whether text consists only of characters in
// the QR alphanumeric set.
func isAlphanumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if alphanumericIndex(text[i]) < 0 {
			return false
		}
	}
	return true
}

// MakeSegments chooses a single encoding mode for the whole of text
// and returns the resulting one-element segment list: the first
// applicable of Numeric, Alphanumeric, Byte, in that order. text must
// be valid UTF-8; it is encoded as its raw UTF-8 bytes in Byte mode.
// MakeSegments never performs optimal mode-switching: that is a
// possible future extension, not a defect in this one. An empty text
// returns an empty slice.
func MakeSegments(text string) ([]Segment, error) {
	if text == "" {
		return nil, nil
	}
	if !utf8.ValidString(text) {
		return nil, wrapErr(ErrInvalidCharacter, "qrencode: text is not valid UTF-8")
	}
	var seg Segment
	var err error
	switch {
	case isNumeric(text):
		seg, err = NumericSegment(text)
	case isAlphanumeric(text):
		seg, err = AlphanumericSegment(text)
	default:
		seg, err = ByteSegment([]byte(text))
	}
	if err != nil {
		return nil, err
	}
	return []Segment{seg}, nil
}

// TotalBits returns the total number of bits the given segments would
// occupy when assembled for version v, including each segment's mode
// indicator and character count field, or -1 if any segment's
// character count does not fit its count field at v, or if the total
// would overflow a 31-bit counter.
func TotalBits(segments []Segment, v int) int {
	total := 0
	for _, s := range segments {
		ccBits := s.mode.numCharCountBits(v)
		if ccBits < 31 && s.numChars >= 1<<uint(ccBits) {
			return -1
		}
		segBits := 4 + ccBits + s.bits.Len()
		if segBits > maxBitBufferLen-total {
			return -1
		}
		total += segBits
	}
	return total
}
