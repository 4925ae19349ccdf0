/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func newTestConfig() Config {
	return Config{
		Geometry: Geometry{
			WidthPx: 8, HeightPx: 8,
			PixelLengthX: 9, PixelLengthY: 9,
			PixelPitchX: 10, PixelPitchY: 10,
		},
		QuantumEfficiency: 1,
		Gain:              1,
		FullWell:          50000,
		ADCLimit:          65535,
	}
}

/*****************************************************************************************************************/

func TestNewRejectsNonPositiveGeometry(t *testing.T) {
	cfg := newTestConfig()
	cfg.WidthPx = 0

	if _, err := New(cfg); err == nil {
		t.Error("New() with width_px = 0 should return an error")
	}
}

/*****************************************************************************************************************/

func TestNewRejectsPitchSmallerThanLength(t *testing.T) {
	cfg := newTestConfig()
	cfg.PixelPitchX = 1

	if _, err := New(cfg); err == nil {
		t.Error("New() with px_pitch_x < px_len_x should return an error")
	}
}

/*****************************************************************************************************************/

func TestNewRejectsQuantumEfficiencyOutOfRange(t *testing.T) {
	cfg := newTestConfig()
	cfg.QuantumEfficiency = 1.5

	if _, err := New(cfg); err == nil {
		t.Error("New() with quantum_efficiency > 1 should return an error")
	}
}

/*****************************************************************************************************************/

func TestNewRejectsUnknownBloomDirection(t *testing.T) {
	cfg := newTestConfig()
	cfg.BloomDirs = []string{"+q"}

	if _, err := New(cfg); err == nil {
		t.Error("New() with an unknown bloom direction should return an error")
	}
}

/*****************************************************************************************************************/

func TestNewRejectsMismatchedHotPixelShape(t *testing.T) {
	cfg := newTestConfig()
	cfg.HotPixels = make([]float64, 3)

	if _, err := New(cfg); err == nil {
		t.Error("New() with a mis-shaped hot_pixels array should return an error")
	}
}

/*****************************************************************************************************************/

func TestClearZeroesThePixelBuffer(t *testing.T) {
	s, err := New(newTestConfig())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	for i := range s.pixels.Value {
		s.pixels.Value[i] = 42
	}

	s.Clear()

	for i, v := range s.pixels.Value {
		if v != 0 {
			t.Errorf("pixels[%d] = %v after Clear(); want 0", i, v)
		}
	}
}

/*****************************************************************************************************************/
