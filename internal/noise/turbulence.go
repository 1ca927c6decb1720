// Package noise implements the deterministic Perlin-style noise generator
// behind feTurbulence, following the reference algorithm described in the
// SVG 1.1 Filter Effects appendix: a seeded linear-congruential generator
// builds per-channel gradient and permutation tables once, and turbulence
// values are a sum of octaves of 2-D gradient noise at doubling frequency.
package noise

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	latticeSize = 256
	latticeMask = latticeSize - 1
	perlinN     = 4096
)

const (
	randM = 2147483647
	randA = 16807
	randQ = 127773
	randR = 2836
)

// Generator holds the seeded lattice and gradient tables for one turbulence
// invocation; building it is deterministic given the seed, so repeated
// renders with the same seed produce byte-identical output.
type Generator struct {
	lattice  [latticeSize*2 + 2]int
	gradient [4][latticeSize*2 + 2][2]float64
}

// NewGenerator builds the lattice and gradient tables for a given seed.
func NewGenerator(seed int64) *Generator {
	s := setupSeed(seed)
	g := &Generator{}

	for k := 0; k < 4; k++ {
		for i := 0; i < latticeSize; i++ {
			g.lattice[i] = i
			s = randomNext(s)
			gx := float64(s%(latticeSize+latticeSize)-latticeSize) / latticeSize
			s = randomNext(s)
			gy := float64(s%(latticeSize+latticeSize)-latticeSize) / latticeSize
			length := float64(math32.Sqrt(float32(gx*gx + gy*gy)))
			if length != 0 {
				gx /= length
				gy /= length
			}
			g.gradient[k][i] = [2]float64{gx, gy}
		}
	}

	for i := latticeSize - 1; i > 0; i-- {
		s = randomNext(s)
		j := int(s % latticeSize)
		g.lattice[i], g.lattice[j] = g.lattice[j], g.lattice[i]
	}

	for i := 0; i < latticeSize+2; i++ {
		g.lattice[latticeSize+i] = g.lattice[i]
		for k := 0; k < 4; k++ {
			g.gradient[k][latticeSize+i] = g.gradient[k][i]
		}
	}

	return g
}

func setupSeed(seed int64) int64 {
	if seed <= 0 {
		seed = -(seed % (randM - 1)) + 1
	}
	if seed > randM-1 {
		seed = randM - 1
	}
	return seed
}

func randomNext(seed int64) int64 {
	result := randA*(seed%randQ) - randR*(seed/randQ)
	if result <= 0 {
		result += randM
	}
	return result
}

func scurve(t float64) float64 { return t * t * (3 - 2*t) }
func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func (g *Generator) noise2(channel int, vx, vy float64) float64 {
	tx := vx + perlinN
	bx0 := int(tx) & latticeMask
	bx1 := (bx0 + 1) & latticeMask
	rx0 := tx - math.Floor(tx)
	rx1 := rx0 - 1

	ty := vy + perlinN
	by0 := int(ty) & latticeMask
	by1 := (by0 + 1) & latticeMask
	ry0 := ty - math.Floor(ty)
	ry1 := ry0 - 1

	i := g.lattice[bx0]
	j := g.lattice[bx1]

	b00 := g.lattice[i+by0]
	b10 := g.lattice[j+by0]
	b01 := g.lattice[i+by1]
	b11 := g.lattice[j+by1]

	sx := scurve(rx0)
	sy := scurve(ry0)

	q := g.gradient[channel][b00]
	u := rx0*q[0] + ry0*q[1]
	q = g.gradient[channel][b10]
	v := rx1*q[0] + ry0*q[1]
	a := lerp(sx, u, v)

	q = g.gradient[channel][b01]
	u = rx0*q[0] + ry1*q[1]
	q = g.gradient[channel][b11]
	v = rx1*q[0] + ry1*q[1]
	b := lerp(sx, u, v)

	return lerp(sy, a, b)
}

// Fractal evaluates channel (0=R,1=G,2=B,3=A) at point (x,y) with the given
// per-axis base frequency, summing numOctaves at doubling frequency.
// fractalSum selects feTurbulence type="fractalNoise" (signed sum) versus
// type="turbulence" (sum of absolute values).
func (g *Generator) Fractal(channel int, x, y, baseFreqX, baseFreqY float64, numOctaves int, fractalSum bool) float64 {
	vx := x * baseFreqX
	vy := y * baseFreqY
	sum := 0.0
	ratio := 1.0
	for o := 0; o < numOctaves; o++ {
		n := g.noise2(channel, vx, vy)
		if fractalSum {
			sum += n / ratio
		} else {
			sum += math.Abs(n) / ratio
		}
		vx *= 2
		vy *= 2
		ratio *= 2
	}
	return sum
}
