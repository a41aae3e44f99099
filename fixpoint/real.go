package fixpoint

import "math"

// Real is the numeric domain the engine is generic over.
type Real interface {
	~float32 | ~float64
}

func ceilOf[T Real](v T) T { return T(math.Ceil(float64(v))) }

func floorOf[T Real](v T) T { return T(math.Floor(float64(v))) }

func absOf[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
