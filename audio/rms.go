package audio

import "math"

// RMS returns sqrt(mean(x²)) over a block, 0 for an empty block
func RMS(block []float32) float64 {
	if len(block) == 0 {
		return 0
	}
	var sumSquares float64
	for _, v := range block {
		f := float64(v)
		sumSquares += f * f
	}
	return math.Sqrt(sumSquares / float64(len(block)))
}
