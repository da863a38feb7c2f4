package qrencode

import (
	"bufio"
	"fmt"
	"io"
)

// WritePBM renders q as a binary portable bitmap (P4), with a quiet
// zone of quiet light modules on every side. quiet must be >= 0.
func WritePBM(q *QrCode, w io.Writer, quiet int) error {
	if quiet < 0 {
		return wrapErr(ErrInvalidValue, "qrencode: negative quiet zone %d", quiet)
	}
	side := q.size + 2*quiet
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", side, side); err != nil {
		return err
	}
	rowBytes := (side + 7) / 8
	row := make([]byte, rowBytes)
	for y := 0; y < side; y++ {
		for i := range row {
			row[i] = 0
		}
		qy := y - quiet
		if qy >= 0 && qy < q.size {
			for x := 0; x < q.size; x++ {
				if q.modules[qy][x] {
					col := x + quiet
					row[col/8] |= 1 << uint(7-col%8)
				}
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
