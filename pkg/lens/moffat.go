/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package lens

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/sensorcore/pkg/transform"
)

/*****************************************************************************************************************/

// Moffat is a reference Lens whose point-spread function follows a Moffat profile, a better
// match than a Gaussian for the extended wings of a real seeing-limited stellar image. beta
// controls how heavy those wings are; beta=3 to 5 is typical for ground-based seeing.
type Moffat struct {
	area       float64
	alphaX     float64 // micrometres, the profile's core width on the x axis
	alphaY     float64 // micrometres, the profile's core width on the y axis
	beta       float64
	resolution float64 // micrometres
	boundsX    float64 // micrometres
	boundsY    float64 // micrometres
	distortion Distortion
}

/*****************************************************************************************************************/

// NewMoffat constructs a Moffat lens. boundsX/boundsY set the PSF support half-width in
// micrometres; callers typically pick a few multiples of alphaX/alphaY. A nil distortion
// defaults to the identity affine transform.
func NewMoffat(area, alphaX, alphaY, beta, resolution, boundsX, boundsY float64, distortion Distortion) *Moffat {
	if distortion == nil {
		distortion = transform.NewIdentityAffine2D()
	}

	return &Moffat{
		area:       area,
		alphaX:     alphaX,
		alphaY:     alphaY,
		beta:       beta,
		resolution: resolution,
		boundsX:    boundsX,
		boundsY:    boundsY,
		distortion: distortion,
	}
}

/*****************************************************************************************************************/

func (m *Moffat) Area() float64 {
	return m.area
}

/*****************************************************************************************************************/

// PSF evaluates the (normalized-by-construction) Moffat density
//
//	psi(x,y) = (beta-1) / (pi*alphaX*alphaY) * (1 + (x/alphaX)^2 + (y/alphaY)^2)^-beta
//
// The leading (beta-1)/(pi*alphaX*alphaY) term is the closed-form normalization that makes the
// profile integrate to 1 over the whole plane, replacing the discrete re-normalization
// generateMoffatProfile in the teacher's field-image generator performed over a finite grid.
func (m *Moffat) PSF(x, y []float64, out []float64) {
	normalisation := (m.beta - 1) / (math.Pi * m.alphaX * m.alphaY)

	for i := range out {
		rx := x[i] / m.alphaX
		ry := y[i] / m.alphaY
		out[i] = normalisation * math.Pow(1+rx*rx+ry*ry, -m.beta)
	}
}

/*****************************************************************************************************************/

func (m *Moffat) PSFBoundsX() float64 {
	return m.boundsX
}

/*****************************************************************************************************************/

func (m *Moffat) PSFBoundsY() float64 {
	return m.boundsY
}

/*****************************************************************************************************************/

func (m *Moffat) PSFResolution() float64 {
	return m.resolution
}

/*****************************************************************************************************************/

func (m *Moffat) Distortion() Distortion {
	return m.distortion
}

/*****************************************************************************************************************/
