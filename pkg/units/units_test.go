/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package units

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func TestToElectronsPerSecondPerSquareMicrometre(t *testing.T) {
	got := PicoampsPerSquareCentimetre(1).ToElectronsPerSecondPerSquareMicrometre()

	want := 0.0628

	if math.Abs(float64(got)-want) > 1e-9 {
		t.Errorf("1 pA/cm^2 = %v e-/s/um^2; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestToElectronsPerSecondPerSquareMicrometreZero(t *testing.T) {
	if got := PicoampsPerSquareCentimetre(0).ToElectronsPerSecondPerSquareMicrometre(); got != 0 {
		t.Errorf("0 pA/cm^2 = %v; want 0", got)
	}
}

/*****************************************************************************************************************/

func TestToElectronsPerSecondPerSquareMicrometreIsLinear(t *testing.T) {
	one := PicoampsPerSquareCentimetre(1).ToElectronsPerSecondPerSquareMicrometre()
	ten := PicoampsPerSquareCentimetre(10).ToElectronsPerSecondPerSquareMicrometre()

	if math.Abs(float64(ten)-10*float64(one)) > 1e-9 {
		t.Errorf("conversion should be linear: 10x input = %v, 10*one = %v", ten, 10*float64(one))
	}
}

/*****************************************************************************************************************/
