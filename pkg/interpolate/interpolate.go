// Package interpolate provides plain linear interpolation.
// Positions outside [0, 1] extrapolate; nothing is clamped.
package interpolate

// F32 returns start + (end - start) * position.
func F32(start, end, position float32) float32 {
	length := end - start
	offset := length * position
	return start + offset
}

// U8 interpolates between two byte values, truncating toward zero.
// The caller must keep position such that the result stays within 0-255;
// narrowing an out-of-range result is not checked.
func U8(start, end uint8, position float32) uint8 {
	return uint8(F32(float32(start), float32(end), position))
}
