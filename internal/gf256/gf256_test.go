package gf256

import "testing"

func TestMultiplyIdentity(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := Multiply(uint8(x), 1); got != uint8(x) {
			t.Errorf("Multiply(%d, 1) = %d, want %d", x, got, x)
		}
		if got := Multiply(uint8(x), 0); got != 0 {
			t.Errorf("Multiply(%d, 0) = %d, want 0", x, got)
		}
	}
}

func TestMultiplyCommutative(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 11 {
			a := Multiply(uint8(x), uint8(y))
			b := Multiply(uint8(y), uint8(x))
			if a != b {
				t.Errorf("Multiply(%d,%d)=%d != Multiply(%d,%d)=%d", x, y, a, y, x, b)
			}
		}
	}
}

func TestComputeDivisorDegree(t *testing.T) {
	for _, degree := range []int{1, 2, 7, 10, 30, 68, 255} {
		div := ComputeDivisor(degree)
		if len(div) != degree {
			t.Fatalf("ComputeDivisor(%d) has length %d", degree, len(div))
		}
	}
}

// TestRemainderOfRemainderIsZero exercises property 4 from the
// specification: for any data and any generator degree, appending the
// remainder to the data and dividing again yields an all-zero
// remainder.
func TestRemainderOfRemainderIsZero(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	for _, degree := range []int{1, 7, 16, 30, 68} {
		divisor := ComputeDivisor(degree)
		rem := ComputeRemainder(data, divisor)
		combined := append(append([]byte{}, data...), rem...)
		rem2 := ComputeRemainder(combined, divisor)
		for i, b := range rem2 {
			if b != 0 {
				t.Errorf("degree %d: remainder of (data||remainder) not zero at %d: %v", degree, i, rem2)
			}
		}
	}
}
