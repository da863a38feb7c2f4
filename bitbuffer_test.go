package qrencode

import (
	"errors"
	"testing"
)

func TestBitBufferAppendAndRead(t *testing.T) {
	b := NewBitBuffer()
	if err := b.AppendBits(0b101, 3); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendBits(0b11, 2); err != nil {
		t.Fatal(err)
	}
	if got, want := b.Len(), 5; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	want := []int{1, 0, 1, 1, 1}
	for i, w := range want {
		got, err := b.GetBit(i)
		if err != nil {
			t.Fatalf("GetBit(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("GetBit(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestBitBufferAppendBitsRejectsOverflowValue(t *testing.T) {
	b := NewBitBuffer()
	if err := b.AppendBits(8, 3); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("AppendBits(8, 3) = %v, want ErrValueOutOfRange", err)
	}
}

func TestBitBufferAppendBitsRejectsLengthOutOfRange(t *testing.T) {
	b := NewBitBuffer()
	if err := b.AppendBits(0, 32); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("AppendBits(0, 32) = %v, want ErrValueOutOfRange", err)
	}
	if err := b.AppendBits(0, -1); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("AppendBits(0, -1) = %v, want ErrValueOutOfRange", err)
	}
}

func TestBitBufferGetBitOutOfRange(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(1, 1)
	if _, err := b.GetBit(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("GetBit(-1) = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := b.GetBit(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("GetBit(1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestCloneBitBufferIsIndependent(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0b10, 2)
	clone := cloneBitBuffer(b)
	b.AppendBits(0b1, 1)
	if clone.Len() != 2 {
		t.Fatalf("clone.Len() = %d, want 2 (mutation of original leaked)", clone.Len())
	}
}

func TestBitBufferBytesPacksBigEndianMSBFirst(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0xAB, 8)
	b.AppendBits(0x3, 4) // top nibble of a second byte
	got := b.bytes()
	want := []byte{0xAB, 0x30}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("bytes() = %#v, want %#v", got, want)
	}
}
