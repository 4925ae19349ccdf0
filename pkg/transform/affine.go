/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import (
	"errors"

	"github.com/observerly/sensorcore/pkg/matrix"
)

/*****************************************************************************************************************/

// Affine2DParameters represents the parameters of a 2D affine transformation.
type Affine2DParameters struct {
	A, B, C float64 // Transformation for X: x' = A*x + B*y + C
	D, E, F float64 // Transformation for Y: y' = D*x + E*y + F
}

/*****************************************************************************************************************/

// NewIdentityAffine2D returns the affine transformation that leaves every point unchanged,
// the default geometric distortion operator for a lens with no measurable distortion.
func NewIdentityAffine2D() Affine2DParameters {
	return Affine2DParameters{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

/*****************************************************************************************************************/

// Apply maps a pixel-plane offset (x, y) through the affine transform, satisfying the
// lens model's geometric distortion operator contract.
func (p Affine2DParameters) Apply(x, y float64) (float64, float64) {
	return p.A*x + p.B*y + p.C, p.D*x + p.E*y + p.F
}

/*****************************************************************************************************************/

// Invert returns the affine transform that undoes p, solving the 2x2 linear part with
// pkg/matrix's Gauss-Jordan inverter and back-substituting the translation term.
func (p Affine2DParameters) Invert() (Affine2DParameters, error) {
	linear, err := matrix.NewFromSlice([]float64{p.A, p.B, p.D, p.E}, 2, 2)
	if err != nil {
		return Affine2DParameters{}, err
	}

	inv, err := linear.Invert()
	if err != nil {
		return Affine2DParameters{}, errors.New("transform: affine linear part is singular and cannot be inverted")
	}

	a, _ := inv.At(0, 0)
	b, _ := inv.At(0, 1)
	d, _ := inv.At(1, 0)
	e, _ := inv.At(1, 1)

	translation, err := matrix.NewFromSlice([]float64{p.C, p.F}, 2, 1)
	if err != nil {
		return Affine2DParameters{}, err
	}

	negated, err := inv.Multiply(translation)
	if err != nil {
		return Affine2DParameters{}, err
	}

	c0, _ := negated.At(0, 0)
	f0, _ := negated.At(1, 0)

	return Affine2DParameters{A: a, B: b, C: -c0, D: d, E: e, F: -f0}, nil
}

/*****************************************************************************************************************/
