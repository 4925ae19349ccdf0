/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
)

/*****************************************************************************************************************/

// SIP (Simple Imaging Polynomial) is a convention used in FITS (Flexible Image Transport System)
// headers to describe complex distortions in astronomical images. Here it doubles as the lens
// model's geometric distortion operator: a polynomial correction layered on top of the linear
// pixel-plane coordinates, accounting for non-linear optical distortions that a pure affine
// transform cannot capture.
// @see https://fits.gsfc.nasa.gov/registry/sip/SIP_distortion_v1_0.pdf

/*****************************************************************************************************************/

// The forward parameters are polynomial coefficients used to map from pixel coordinates to world coordinates.
type SIP2DForwardParameters struct {
	AOrder int
	APower map[string]float64
	BOrder int
	BPower map[string]float64
}

/*****************************************************************************************************************/

// The inverse paramaters are polynomial coefficients used to map from world coordinates to pixel coordinates.
type SIP2DInverseParameters struct {
	APOrder int
	APPower map[string]float64
	BPOrder int
	BPPower map[string]float64
}

/*****************************************************************************************************************/

// evaluatePolynomial sums power[i-j, j] * x^(i-j) * y^j over every term up to the given order,
// skipping terms that are absent from power rather than treating a missing key as an error -
// a SIP table is sparse by convention.
func evaluatePolynomial(x, y float64, order int, power map[string]float64) float64 {
	sum := 0.0

	for i := 0; i <= order; i++ {
		for j := 0; j <= i; j++ {
			exponentX := i - j
			exponentY := j

			coefficient, ok := power[fmt.Sprintf("%d_%d", exponentX, exponentY)]
			if !ok {
				continue
			}

			sum += coefficient * math.Pow(x, float64(exponentX)) * math.Pow(y, float64(exponentY))
		}
	}

	return sum
}

/*****************************************************************************************************************/

// Apply maps a pixel-plane offset (x, y) to its distorted counterpart by adding the polynomial
// correction to the identity mapping, satisfying the lens model's geometric distortion operator
// contract.
func (p SIP2DForwardParameters) Apply(x, y float64) (float64, float64) {
	return x + evaluatePolynomial(x, y, p.AOrder, p.APower), y + evaluatePolynomial(x, y, p.BOrder, p.BPower)
}

/*****************************************************************************************************************/

// Apply maps a distorted pixel-plane offset (x, y) back toward its undistorted counterpart.
func (p SIP2DInverseParameters) Apply(x, y float64) (float64, float64) {
	return x + evaluatePolynomial(x, y, p.APOrder, p.APPower), y + evaluatePolynomial(x, y, p.BPOrder, p.BPPower)
}

/*****************************************************************************************************************/
