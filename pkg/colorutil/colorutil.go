// Package colorutil provides shared color predicates for the black pixel tool.
package colorutil

// IsBlack reports whether an RGB triple is pure black.
func IsBlack(r, g, b uint8) bool {
	return r == 0 && g == 0 && b == 0
}

// AllAtMost reports whether every channel is at or below t.
// A single bright channel keeps the pixel out.
func AllAtMost(r, g, b, t uint8) bool {
	return r <= t && g <= t && b <= t
}

