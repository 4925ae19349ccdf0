/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestSIP2DForwardParameters(t *testing.T) {
	sip := SIP2DForwardParameters{
		AOrder: 1,
		BOrder: 1,
		APower: map[string]float64{
			"0_0": 1,
			"1_0": 0,
			"0_1": 0,
		},
		BPower: map[string]float64{
			"0_0": 1,
			"1_0": 0,
			"0_1": 0,
		},
	}

	if sip.AOrder != 1 {
		t.Errorf("AOrder not set correctly")
	}

	if sip.BOrder != 1 {
		t.Errorf("BOrder not set correctly")
	}

	if sip.APower["0_0"] != 1 {
		t.Errorf("APower[0_0] not set correctly")
	}

	if sip.APower["1_0"] != 0 {
		t.Errorf("APower[1_0] not set correctly")
	}

	if sip.APower["0_1"] != 0 {
		t.Errorf("APower[0_1] not set correctly")
	}

	if sip.BPower["0_0"] != 1 {
		t.Errorf("BPower[0_0] not set correctly")
	}

	if sip.BPower["1_0"] != 0 {
		t.Errorf("BPower[1_0] not set correctly")
	}

	if sip.BPower["0_1"] != 0 {
		t.Errorf("BPower[0_1] not set correctly")
	}
}

/*****************************************************************************************************************/

func TestSIP2DForwardParametersApplyWithNoCorrectionIsIdentity(t *testing.T) {
	sip := SIP2DForwardParameters{
		AOrder: 1,
		APower: map[string]float64{"0_0": 0},
		BOrder: 1,
		BPower: map[string]float64{"0_0": 0},
	}

	x, y := sip.Apply(12.5, -4.0)

	if x != 12.5 || y != -4.0 {
		t.Errorf("Apply(12.5,-4.0) = (%v, %v); want (12.5, -4.0)", x, y)
	}
}

/*****************************************************************************************************************/

func TestSIP2DForwardParametersApplyAddsQuadraticCorrection(t *testing.T) {
	sip := SIP2DForwardParameters{
		AOrder: 2,
		APower: map[string]float64{"2_0": 0.01},
		BOrder: 2,
		BPower: map[string]float64{"0_2": 0.02},
	}

	x, y := sip.Apply(10, 10)

	wantX := 10 + 0.01*10*10
	wantY := 10 + 0.02*10*10

	if x != wantX || y != wantY {
		t.Errorf("Apply(10,10) = (%v, %v); want (%v, %v)", x, y, wantX, wantY)
	}
}

/*****************************************************************************************************************/
