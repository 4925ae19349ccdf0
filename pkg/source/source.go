/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package source

/*****************************************************************************************************************/

import "github.com/observerly/sensorcore/pkg/geometry"

/*****************************************************************************************************************/

// Source is a single point source projected onto the focal plane, positioned relative to the
// top-left corner of the sensor's bounding rectangle.
type Source struct {
	X     float64 // X position, in micrometres, from the sensor's top-left corner
	Y     float64 // Y position, in micrometres, from the sensor's top-left corner
	Flux  float64 // photon flux density, photons.s^-1.m^-2 (matching the lens collecting area)
	Label string  // optional human-readable designation, e.g. a catalog ID; not interpreted by the core
}

/*****************************************************************************************************************/

// EuclidianDistanceTo returns the distance, in the same unit as X and Y, between two sources.
func (s Source) EuclidianDistanceTo(other Source) float64 {
	return geometry.DistanceBetweenTwoCartesianPoints(s.X, s.Y, other.X, other.Y)
}

/*****************************************************************************************************************/
