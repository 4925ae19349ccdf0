/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package sensor is the image-formation core of a synthetic CCD/CMOS simulator: a single
// stateful Sensor, holding a row-major electron-count buffer, orchestrating per-source PSF
// integration, background and dark-current shot noise, well saturation with directional
// blooming, and analog-to-digital conversion.
package sensor

/*****************************************************************************************************************/

import (
	"github.com/observerly/sensorcore/pkg/bloom"
	"github.com/observerly/sensorcore/pkg/matrix"
)

/*****************************************************************************************************************/

// Sensor holds the mutable electron-count buffer and the immutable geometry and electronics it
// was constructed with. Construct once, reuse across exposures; a Sensor is not safe for
// concurrent mutation.
type Sensor struct {
	config    Config
	dirs      bloom.Directions
	hotPixels []float64
	bias      []float64
	pixels    *matrix.Matrix
}

/*****************************************************************************************************************/

// New validates config and constructs a Sensor with its pixel buffer zeroed. All validation
// happens here, up front, per §7's no-partial-state-on-failure policy.
func New(config Config) (*Sensor, error) {
	if config.WidthPx <= 0 || config.HeightPx <= 0 {
		return nil, &ValueError{Field: "geometry", Msg: "width_px and height_px must be positive"}
	}

	if config.PixelLengthX <= 0 || config.PixelLengthY <= 0 {
		return nil, &ValueError{Field: "geometry", Msg: "px_len_x and px_len_y must be positive"}
	}

	if config.PixelPitchX < config.PixelLengthX || config.PixelPitchY < config.PixelLengthY {
		return nil, &ValueError{Field: "geometry", Msg: "px_pitch must be at least as large as px_len on each axis"}
	}

	if config.QuantumEfficiency < 0 || config.QuantumEfficiency > 1 {
		return nil, &ValueError{Field: "quantum_efficiency", Msg: "must lie within [0, 1]"}
	}

	if config.FullWell <= 0 {
		return nil, &ValueError{Field: "full_well", Msg: "must be positive"}
	}

	if config.ADCLimit <= 0 {
		return nil, &ValueError{Field: "adc_limit", Msg: "must be positive"}
	}

	if config.DarkCurrent == nil {
		config.DarkCurrent = func(float64) float64 { return 0 }
	}

	flags := make([]bloom.Direction, 0, len(config.BloomDirs))

	for _, raw := range config.BloomDirs {
		d, err := bloom.ParseDirection(raw)
		if err != nil {
			return nil, &ValueError{Field: "bloom_dirs", Msg: err.Error()}
		}

		flags = append(flags, d)
	}

	hotPixels, err := resolveBroadcast("hot_pixels", config.HotPixels, config.WidthPx, config.HeightPx, 1)
	if err != nil {
		return nil, err
	}

	bias, err := resolveBroadcast("bias", config.Bias, config.WidthPx, config.HeightPx, 0)
	if err != nil {
		return nil, err
	}

	pixels, err := matrix.New(config.HeightPx, config.WidthPx)
	if err != nil {
		return nil, err
	}

	return &Sensor{
		config:    config,
		dirs:      bloom.NewDirections(flags...),
		hotPixels: hotPixels,
		bias:      bias,
		pixels:    pixels,
	}, nil
}

/*****************************************************************************************************************/

// Clear resets every pixel to zero electrons. No other state is touched.
func (s *Sensor) Clear() {
	for i := range s.pixels.Value {
		s.pixels.Value[i] = 0
	}
}

/*****************************************************************************************************************/

// Geom returns the sensor's immutable physical layout.
func (s *Sensor) Geom() Geometry {
	return s.config.Geometry
}

/*****************************************************************************************************************/
