/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/sensorcore/pkg/noise"
)

/*****************************************************************************************************************/

// Image is the digital readout of a Sensor: a row-major, integer-valued grid of counts, at most
// Config.ADCLimit and at least zero.
type Image struct {
	WidthPx, HeightPx int
	Counts            []float64
}

/*****************************************************************************************************************/

// At returns the digital count at (row, column).
func (img *Image) At(row, column int) float64 {
	return img.Counts[row*img.WidthPx+column]
}

/*****************************************************************************************************************/

// Readout adds read noise directly into the pixel buffer, then converts it to digital counts:
// gain multiplication, bias offset, and a clip to [0, adc_limit].
//
// This call is non-destructive to the pixel buffer in the sense that it never resets it - but it
// is not idempotent, because the read-noise addition is itself a mutation. Calling Readout twice
// in a row accumulates read noise twice; callers must Clear between exposures. This mirrors the
// source's behaviour exactly rather than the more intuitive "readout doesn't change state" reading of the word.
func (s *Sensor) Readout(src noise.Source) (*Image, error) {
	for i := range s.pixels.Value {
		s.pixels.Value[i] += noise.PoissonSample(s.config.ReadNoise, src)
	}

	counts := make([]float64, len(s.pixels.Value))

	for i, electrons := range s.pixels.Value {
		raw := math.Floor(electrons*s.config.Gain) + s.bias[i]

		if raw > s.config.ADCLimit {
			raw = s.config.ADCLimit
		}

		if raw < 0 {
			raw = 0
		}

		counts[i] = raw
	}

	return &Image{
		WidthPx:  s.config.WidthPx,
		HeightPx: s.config.HeightPx,
		Counts:   counts,
	}, nil
}

/*****************************************************************************************************************/
