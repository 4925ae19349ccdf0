/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package noise

/*****************************************************************************************************************/

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

/*****************************************************************************************************************/

// Source is the injectable pseudo-random generator the accumulation pipeline draws from.
// A fixed Source makes Clear -> Accumulate -> Readout bitwise reproducible.
type Source = rand.Source

/*****************************************************************************************************************/

// NewSource returns a deterministic Source seeded with the given value.
func NewSource(seed uint64) Source {
	return rand.NewSource(int64(seed))
}

/*****************************************************************************************************************/

// PoissonSample draws a single sample from a Poisson distribution with the given mean.
//
// A non-positive mean degenerates to a point mass at zero, which matches the pipeline's
// convention that a zero mean dose contributes no electrons.
func PoissonSample(mean float64, src Source) float64 {
	if mean <= 0 {
		return 0
	}

	d := distuv.Poisson{
		Lambda: mean,
		Src:    src,
	}

	return d.Rand()
}

/*****************************************************************************************************************/

// PoissonField draws one independent Poisson sample per element of mean, adding each sample onto
// the matching element of out. mean and out must be the same length; PoissonField panics
// otherwise rather than returning an error for a programmer mistake.
func PoissonField(mean []float64, out []float64, src Source) {
	if len(mean) != len(out) {
		panic("noise: mean and out must have the same length")
	}

	for i, m := range mean {
		out[i] += PoissonSample(m, src)
	}
}

/*****************************************************************************************************************/
