/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package lens describes the telescope collaborator the sensor core treats as opaque: aperture
// area, a point-spread function, its spatial support and integration resolution, and a geometric
// distortion operator. None of this is computed by the core - it is supplied, per §9's
// "Polymorphism replacement" note, as a capability interface rather than a concrete type.
package lens

/*****************************************************************************************************************/

// Distortion maps an undistorted pixel-plane offset to its distorted counterpart. Both
// transform.Affine2DParameters and transform.SIP2DForwardParameters satisfy this interface.
type Distortion interface {
	Apply(x, y float64) (float64, float64)
}

/*****************************************************************************************************************/

// Lens is the telescope collaborator consumed by the PSF integrator. Implementations must be
// safe to evaluate on the broadcast grids the integrator builds per pixel footprint.
type Lens interface {
	// Area is the collecting area, in square metres.
	Area() float64

	// PSF evaluates the point-spread function density at paired (x,y) micrometre offsets from a
	// source's centre, writing the dimensionless-per-square-micrometre result into out. x, y, and
	// out must have equal length.
	PSF(x, y []float64, out []float64)

	// PSFBoundsX and PSFBoundsY are the half-width, in micrometres, of the square support outside
	// which the PSF is considered negligible.
	PSFBoundsX() float64
	PSFBoundsY() float64

	// PSFResolution is an upper bound, in micrometres, on the quadrature step used to integrate
	// the PSF over a pixel's active area.
	PSFResolution() float64

	// Distortion is the geometric distortion operator for this lens. The core treats it as an
	// opaque collaborator value - it is never invoked by the accumulation pipeline itself.
	Distortion() Distortion
}

/*****************************************************************************************************************/
