// Package affine implements the 2D affine transform math backing
// primitiveUnits/filterUnits resolution and the feDisplacementMap
// and feImage coordinate mappings.
package affine

import (
	"math"

	"github.com/svgraster/filterengine/internal/geom"
)

// DefaultEpsilon is the tolerance used when a caller does not supply one.
const DefaultEpsilon = geom.Epsilon

// Matrix is a 2x3 affine transformation:
//
//	sx  shx tx
//	shy sy  ty
//	0   0   1
type Matrix struct {
	SX, SHY, SHX, SY, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{SX: 1, SY: 1}
}

// New builds a matrix from its six components in row-major matrix order
// (sx, shy, shx, sy, tx, ty), matching the SVG matrix() function order.
func New(sx, shy, shx, sy, tx, ty float64) Matrix {
	return Matrix{SX: sx, SHY: shy, SHX: shx, SY: sy, TX: tx, TY: ty}
}

// Translate returns t with an added translation.
func (m Matrix) Translate(x, y float64) Matrix {
	m.TX += x
	m.TY += y
	return m
}

// Rotate returns t with an added rotation, angle in radians.
func (m Matrix) Rotate(angle float64) Matrix {
	ca := math.Cos(angle)
	sa := math.Sin(angle)

	t0 := m.SX*ca - m.SHY*sa
	t2 := m.SHX*ca - m.SY*sa
	t4 := m.TX*ca - m.TY*sa

	m.SHY = m.SX*sa + m.SHY*ca
	m.SY = m.SHX*sa + m.SY*ca
	m.TY = m.TX*sa + m.TY*ca

	m.SX, m.SHX, m.TX = t0, t2, t4
	return m
}

// Scale returns m with an added non-uniform scale.
func (m Matrix) Scale(sx, sy float64) Matrix {
	m.SX *= sx
	m.SHX *= sx
	m.TX *= sx
	m.SHY *= sy
	m.SY *= sy
	m.TY *= sy
	return m
}

// Multiply returns m composed with n, i.e. apply m then n.
func (m Matrix) Multiply(n Matrix) Matrix {
	t0 := m.SX*n.SX + m.SHY*n.SHX
	t2 := m.SHX*n.SX + m.SY*n.SHX
	t4 := m.TX*n.SX + m.TY*n.SHX + n.TX

	shy := m.SX*n.SHY + m.SHY*n.SY
	sy := m.SHX*n.SHY + m.SY*n.SY
	ty := m.TX*n.SHY + m.TY*n.SY + n.TY

	return Matrix{SX: t0, SHX: t2, TX: t4, SHY: shy, SY: sy, TY: ty}
}

// Determinant returns the matrix's determinant; zero means non-invertible.
func (m Matrix) Determinant() float64 {
	return m.SX*m.SY - m.SHY*m.SHX
}

// IsInvertible reports whether the matrix can be inverted within epsilon.
func (m Matrix) IsInvertible(epsilon float64) bool {
	return math.Abs(m.Determinant()) > epsilon
}

// Invert returns the inverse of m and true, or the zero Matrix and false if
// m is degenerate within DefaultEpsilon.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) <= DefaultEpsilon {
		return Matrix{}, false
	}
	d := 1.0 / det

	sx := m.SY * d
	sy := m.SX * d
	shy := -m.SHY * d
	shx := -m.SHX * d
	tx := -m.TX*sx - m.TY*shx
	ty := -m.TX*shy - m.TY*sy

	return Matrix{SX: sx, SHY: shy, SHX: shx, SY: sy, TX: tx, TY: ty}, true
}

// Apply transforms a point through the full matrix.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX + m.TX, x*m.SHY + y*m.SY + m.TY
}

// Apply2x2 applies only the linear part of the matrix, ignoring translation;
// used for transforming vectors and extents rather than points.
func (m Matrix) Apply2x2(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX, x*m.SHY + y*m.SY
}

// IsIdentity reports whether m is the identity transform within epsilon.
func (m Matrix) IsIdentity(epsilon float64) bool {
	return geom.IsEqualEps(m.SX, 1.0, epsilon) &&
		geom.IsEqualEps(m.SHY, 0.0, epsilon) &&
		geom.IsEqualEps(m.SHX, 0.0, epsilon) &&
		geom.IsEqualEps(m.SY, 1.0, epsilon) &&
		geom.IsEqualEps(m.TX, 0.0, epsilon) &&
		geom.IsEqualEps(m.TY, 0.0, epsilon)
}

// ScalingAbs returns the absolute per-axis scale factors, used to size
// resampling kernels under kernelUnitLength and filter-region transforms.
func (m Matrix) ScalingAbs() (float64, float64) {
	return math.Sqrt(m.SX*m.SX + m.SHX*m.SHX), math.Sqrt(m.SHY*m.SHY + m.SY*m.SY)
}

// TransformRect maps an axis-aligned rectangle through m, returning the
// axis-aligned bounding box of the four transformed corners.
func TransformRect(m Matrix, r geom.RectD) geom.RectD {
	xs := make([]float64, 0, 4)
	ys := make([]float64, 0, 4)
	for _, c := range [4][2]float64{{r.X1, r.Y1}, {r.X2, r.Y1}, {r.X2, r.Y2}, {r.X1, r.Y2}} {
		x, y := m.Apply(c[0], c[1])
		xs = append(xs, x)
		ys = append(ys, y)
	}
	out := geom.RectD{X1: xs[0], Y1: ys[0], X2: xs[0], Y2: ys[0]}
	for i := 1; i < 4; i++ {
		out.X1 = min(out.X1, xs[i])
		out.Y1 = min(out.Y1, ys[i])
		out.X2 = max(out.X2, xs[i])
		out.Y2 = max(out.Y2, ys[i])
	}
	return out
}
