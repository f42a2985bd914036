// internal/utils/math.go
package utils

import "math"

// Sign возвращает -1, 0 или 1.
func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Abs32 — модуль для float32.
func Abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Clamp ограничивает v снизу значением lo, а сверху hi. hi <= 0 — без верхней границы.
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}
