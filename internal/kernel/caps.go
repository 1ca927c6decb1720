// Package kernel builds the numeric coefficients (Gaussian weights, box-blur
// diameters) used by the pixel kernels, and enforces the size caps that
// bound worst-case allocation for adversarial filter input.
package kernel

const (
	// MaxGaussianDiameter bounds a single box-blur pass width.
	MaxGaussianDiameter = 500
	// MaxConvolveAxis bounds a single feConvolveMatrix order dimension.
	MaxConvolveAxis = 20
	// MaxConvolveTaps bounds a feConvolveMatrix kernel (20x20).
	MaxConvolveTaps = MaxConvolveAxis * MaxConvolveAxis
	// MaxComponentTransferTable bounds a feFunc* tableValues list.
	MaxComponentTransferTable = 256
)
