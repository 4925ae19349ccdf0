/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/observerly/sensorcore/pkg/source"
)

/*****************************************************************************************************************/

// Config is the sensor's immutable construction-time parameterisation: the geometry from §3
// plus every photometric and electronic parameter the accumulation and readout stages consume.
type Config struct {
	Geometry

	// QuantumEfficiency converts incident photons to electrons, in [0, 1].
	QuantumEfficiency float64

	// DarkCurrent returns the dark current, in pA/cm^2, for a given temperature. A nil func is
	// treated as a constant zero.
	DarkCurrent func(temperature float64) float64

	// HotPixels is a row-major height_px*width_px multiplier on dark current, or a shorter slice
	// broadcast per resolveBroadcast. Nil or empty defaults to all-ones.
	HotPixels []float64

	// ReadNoise is the mean electrons per pixel per readout, drawn from a Poisson distribution
	// with this mean (not from a zero-mean Gaussian).
	ReadNoise float64

	// Gain converts electrons to digital counts (ADU/e-).
	Gain float64

	// Bias is a row-major height_px*width_px, width_px-length row, or single-value digital-count
	// offset, broadcast per resolveBroadcast. Nil or empty defaults to all-zero.
	Bias []float64

	// FullWell is the maximum electrons a pixel can hold before bloom activates.
	FullWell float64

	// ADCLimit is the upper clip, in digital counts, readout enforces.
	ADCLimit float64

	// BloomDirs names which orthogonal neighbors receive overflow, using the {"+x","-x","+y",
	// "-y"} notation. An empty slice disables redistribution: saturation is a plain clip.
	BloomDirs []string

	// ReadoutTime is carried for downstream use (e.g. provenance) but never consumed by the
	// pipeline itself.
	ReadoutTime float64
}

/*****************************************************************************************************************/

// ExposureParams is the per-call input to Accumulate: the source list, the background flux, and
// the exposure conditions they're integrated under.
type ExposureParams struct {
	// ExposureTime is the integration time, in seconds. Must be positive.
	ExposureTime float64

	// Temperature is passed through, uninterpreted, to Config.DarkCurrent.
	Temperature float64

	// Sources is the point-source list projected onto the focal plane, positioned in micrometres
	// from the sensor's top-left corner, each with its own photon flux density.
	Sources []source.Source

	// BackgroundFlux is the per-pixel sky photon flux: a single value broadcast to every pixel,
	// or a row-major height_px*width_px array.
	BackgroundFlux []float64
}

/*****************************************************************************************************************/

// resolveBroadcast expands values to a row-major height*width grid, per the broadcast rules §3
// describes for hot_pixels and bias: a single value fills the whole grid, a width-length slice is
// repeated for every row, and a height*width slice is used as-is. An empty slice fills the grid
// with fill.
func resolveBroadcast(field string, values []float64, width, height int, fill float64) ([]float64, error) {
	total := width * height
	out := make([]float64, total)

	switch len(values) {
	case 0:
		for i := range out {
			out[i] = fill
		}
	case 1:
		for i := range out {
			out[i] = values[0]
		}
	case width:
		for r := 0; r < height; r++ {
			copy(out[r*width:(r+1)*width], values)
		}
	case total:
		copy(out, values)
	default:
		return nil, &ShapeError{
			Field: field,
			Want:  fmt.Sprintf("1, %d (a row), or %d (the full grid)", width, total),
			Got:   fmt.Sprintf("%d", len(values)),
		}
	}

	return out, nil
}

/*****************************************************************************************************************/
