package qrencode

import "github.com/kasanami/qrencode/internal/gf256"

// interleaveCodewords implements §4.5: it splits dataCodewords into
// the blocks prescribed for (version, ecl), appends each block's
// Reed-Solomon remainder, and interleaves the data and EC codewords
// column-wise into the final raw codeword stream.
func interleaveCodewords(version int, ecl Ecl, dataCodewords []byte) []byte {
	numBlocks := numErrorCorrectionBlocks[ecl][version]
	eccLen := eccCodewordsPerBlock[ecl][version]
	raw := RawDataModules(version) / 8
	numShort := numBlocks - raw%numBlocks
	shortLen := raw / numBlocks

	divisor := gf256.ComputeDivisor(eccLen)

	dataBlocks := make([][]byte, numBlocks)
	eccBlocks := make([][]byte, numBlocks)
	off := 0
	for i := 0; i < numBlocks; i++ {
		blockLen := shortLen - eccLen
		if i >= numShort {
			blockLen++
		}
		block := dataCodewords[off : off+blockLen]
		off += blockLen
		dataBlocks[i] = block
		eccBlocks[i] = gf256.ComputeRemainder(block, divisor)
	}
	if off != len(dataCodewords) {
		panic("qrencode: block split did not consume all data codewords")
	}

	result := make([]byte, 0, raw)
	for i := 0; i <= shortLen-eccLen; i++ {
		for j := 0; j < numBlocks; j++ {
			if i < len(dataBlocks[j]) {
				result = append(result, dataBlocks[j][i])
			}
		}
	}
	for i := 0; i < eccLen; i++ {
		for j := 0; j < numBlocks; j++ {
			result = append(result, eccBlocks[j][i])
		}
	}
	if len(result) != raw {
		panic("qrencode: interleaved codeword count does not match raw module count")
	}
	return result
}
