/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package units defines newtypes for the physical dimensions the sensor core works in, standing
// in for the dynamic units library the original implementation leant on to catch mismatched
// quantities at call time, together with the fixed dark-current equivalence. The sensor
// package's Config and ExposureParams fields are plain float64, with their units stated in doc
// comments; within this repository only the dark-current conversion goes through these types.
package units

/*****************************************************************************************************************/

// Micrometres is a length in micrometres (um), the native unit of sensor geometry.
type Micrometres float64

/*****************************************************************************************************************/

// Seconds is a duration in seconds.
type Seconds float64

/*****************************************************************************************************************/

// Electrons is an electron count (e-).
type Electrons float64

/*****************************************************************************************************************/

// ADU is a digital count after gain and bias (Analog-to-Digital Unit).
type ADU float64

/*****************************************************************************************************************/

// SquareMetres is an area in square metres (m^2), the unit a lens's collecting area is given in.
type SquareMetres float64

/*****************************************************************************************************************/

// PicoampsPerSquareCentimetre is a dark-current density, as returned by a DarkCurrent function.
type PicoampsPerSquareCentimetre float64

/*****************************************************************************************************************/

// ElectronsPerSecondPerSquareMicrometre is a dark-current density expressed per pixel area,
// the unit the accumulation pipeline actually multiplies against.
type ElectronsPerSecondPerSquareMicrometre float64

/*****************************************************************************************************************/

// PicoampPerSquareMetreToElectronPerSecondPerSquareMetre is the fixed physical equivalence
// 1 pA/m^2 = 6.28e6 e-/s/m^2 (one electron per 1.602e-19 coulomb, rounded as the source gives it).
const PicoampPerSquareMetreToElectronPerSecondPerSquareMetre = 6.28e6

/*****************************************************************************************************************/

// picoampsPerSquareCentimetreToElectronsPerSecondPerSquareMicrometre folds three unit changes
// into a single constant: 1 pA/cm^2 = 1e4 pA/m^2 (area), which the fixed equivalence above turns
// into e-/s/m^2, which in turn is 1e-12 e-/s/um^2 (area again). Net: 1e4 * 6.28e6 * 1e-12.
const picoampsPerSquareCentimetreToElectronsPerSecondPerSquareMicrometre = 1e4 * PicoampPerSquareMetreToElectronPerSecondPerSquareMetre * 1e-12

/*****************************************************************************************************************/

// ToElectronsPerSecondPerSquareMicrometre converts a dark-current density from pA/cm^2 to
// e-/s/um^2 using the fixed physical equivalence the source relies on an astropy unit
// equivalency for.
func (p PicoampsPerSquareCentimetre) ToElectronsPerSecondPerSquareMicrometre() ElectronsPerSecondPerSquareMicrometre {
	return ElectronsPerSecondPerSquareMicrometre(float64(p) * picoampsPerSquareCentimetreToElectronsPerSecondPerSquareMicrometre)
}

/*****************************************************************************************************************/
