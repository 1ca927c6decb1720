package affine

import "math"

// Rotation returns a pure rotation matrix, angle in radians.
func Rotation(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return New(c, s, -s, c, 0, 0)
}

// Scaling returns a uniform scale matrix.
func Scaling(scale float64) Matrix {
	return New(scale, 0, 0, scale, 0, 0)
}

// ScalingXY returns a non-uniform scale matrix.
func ScalingXY(sx, sy float64) Matrix {
	return New(sx, 0, 0, sy, 0, 0)
}

// Translation returns a pure translation matrix.
func Translation(tx, ty float64) Matrix {
	return New(1, 0, 0, 1, tx, ty)
}

// Skewing returns a shear matrix, angles in radians.
func Skewing(ax, ay float64) Matrix {
	return New(1, math.Tan(ay), math.Tan(ax), 1, 0, 0)
}
