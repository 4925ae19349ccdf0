/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import "fmt"

/*****************************************************************************************************************/

// ShapeError reports that an array-valued input (hot pixels, bias, or background flux) does not
// broadcast to the shape the sensor requires.
type ShapeError struct {
	Field string
	Want  string
	Got   string
}

/*****************************************************************************************************************/

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sensor: %s has incompatible shape: want %s, got %s", e.Field, e.Want, e.Got)
}

/*****************************************************************************************************************/

// ValueError reports an out-of-range or otherwise invalid scalar input: an unrecognized bloom
// direction, non-positive geometry, a non-positive exposure time, or a dark current that yields a
// negative or non-finite mean. A non-finite PSF density is reported as a ContractError, not a
// ValueError.
type ValueError struct {
	Field string
	Msg   string
}

/*****************************************************************************************************************/

func (e *ValueError) Error() string {
	return fmt.Sprintf("sensor: %s: %s", e.Field, e.Msg)
}

/*****************************************************************************************************************/

// ContractError reports a negative or non-finite PSF density, a PSF support larger than the
// sensor itself, or a negative or non-finite source dose (flux x exposure time x quantum
// efficiency x lens area). It is surfaced, never recovered.
type ContractError struct {
	Msg string
}

/*****************************************************************************************************************/

func (e *ContractError) Error() string {
	return fmt.Sprintf("sensor: lens contract violated: %s", e.Msg)
}

/*****************************************************************************************************************/
