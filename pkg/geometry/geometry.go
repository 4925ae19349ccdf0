/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package geometry

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// DistanceBetweenTwoCartesianPoints returns the Euclidian distance between (x1,y1) and (x2,y2),
// in whatever linear unit the coordinates are expressed in (this package has no unit opinion).
func DistanceBetweenTwoCartesianPoints(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

/*****************************************************************************************************************/
