/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package lens

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/sensorcore/pkg/geometry"
	"github.com/observerly/sensorcore/pkg/transform"
)

/*****************************************************************************************************************/

// Gaussian is a reference Lens whose point-spread function is an isotropic 2-D Gaussian,
// normalized so that its integral over the whole plane is exactly 1.
type Gaussian struct {
	area        float64
	sigma       float64 // micrometres
	resolution  float64 // micrometres
	boundsRadii float64 // multiples of sigma beyond which the PSF is considered negligible
	distortion  Distortion
}

/*****************************************************************************************************************/

// NewGaussian constructs a Gaussian lens with the given collecting area (m^2) and PSF standard
// deviation sigma (micrometres). boundsRadii sets the support half-width as a multiple of sigma
// (6 is a reasonable default: beyond 6 sigma a Gaussian carries a negligible fraction of flux).
// A nil distortion defaults to the identity affine transform.
func NewGaussian(area, sigma, resolution float64, boundsRadii float64, distortion Distortion) *Gaussian {
	if distortion == nil {
		distortion = transform.NewIdentityAffine2D()
	}

	return &Gaussian{
		area:        area,
		sigma:       sigma,
		resolution:  resolution,
		boundsRadii: boundsRadii,
		distortion:  distortion,
	}
}

/*****************************************************************************************************************/

func (g *Gaussian) Area() float64 {
	return g.area
}

/*****************************************************************************************************************/

// PSF evaluates the isotropic Gaussian density psi(x,y) = exp(-r^2/(2*sigma^2)) / (2*pi*sigma^2),
// where r is the Euclidian distance from the source centre.
func (g *Gaussian) PSF(x, y []float64, out []float64) {
	normalisation := 1.0 / (2 * math.Pi * g.sigma * g.sigma)

	for i := range out {
		r := geometry.DistanceBetweenTwoCartesianPoints(0, 0, x[i], y[i])
		out[i] = normalisation * math.Exp(-(r*r)/(2*g.sigma*g.sigma))
	}
}

/*****************************************************************************************************************/

func (g *Gaussian) PSFBoundsX() float64 {
	return g.boundsRadii * g.sigma
}

/*****************************************************************************************************************/

func (g *Gaussian) PSFBoundsY() float64 {
	return g.boundsRadii * g.sigma
}

/*****************************************************************************************************************/

func (g *Gaussian) PSFResolution() float64 {
	return g.resolution
}

/*****************************************************************************************************************/

func (g *Gaussian) Distortion() Distortion {
	return g.distortion
}

/*****************************************************************************************************************/
