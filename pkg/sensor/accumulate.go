/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/sensorcore/pkg/bloom"
	"github.com/observerly/sensorcore/pkg/lens"
	"github.com/observerly/sensorcore/pkg/noise"
	"github.com/observerly/sensorcore/pkg/psf"
	"github.com/observerly/sensorcore/pkg/units"
)

/*****************************************************************************************************************/

// Accumulate adds one exposure's worth of source flux, sky background, and dark current to the
// pixel buffer, then settles any resulting saturation through the bloom engine. It may be called
// more than once before Readout to compose a multi-phase exposure. Every stage is additive and
// nothing is rolled back. The exposure time, background shape, PSF support, every source dose and
// the dark-current mean are checked before the first write; a lens PSF that yields a negative or
// non-finite density is only detected while that source is being deposited, so the deposits made
// before that point stay in place.
//
// Draw order against src is fixed: source flux (per source, per pixel in its footprint window,
// in source-input order), then background (row-major), then dark current (row-major).
func (s *Sensor) Accumulate(l lens.Lens, params ExposureParams, src noise.Source) error {
	background, err := s.validateExposure(l, params)
	if err != nil {
		return err
	}

	if err := s.accumulateSources(l, params, src); err != nil {
		return err
	}

	s.accumulateBackground(l, params, background, src)

	if err := s.accumulateDarkCurrent(params, src); err != nil {
		return err
	}

	geom := s.config.Geometry
	bloom.Apply(s.pixels.Value, geom.WidthPx, geom.HeightPx, s.config.FullWell, s.dirs)

	return nil
}

/*****************************************************************************************************************/

// validateExposure runs the checks made before accumulate touches the pixel buffer (exposure
// time, background shape, PSF support, source doses, dark-current mean), and resolves
// background_flux to its broadcast row-major grid.
func (s *Sensor) validateExposure(l lens.Lens, params ExposureParams) ([]float64, error) {
	if params.ExposureTime <= 0 {
		return nil, &ValueError{Field: "exposure_time", Msg: "must be positive"}
	}

	background, err := resolveBroadcast("background_flux", params.BackgroundFlux, s.config.WidthPx, s.config.HeightPx, 0)
	if err != nil {
		return nil, err
	}

	geom := s.config.Geometry

	if l.PSFBoundsX()*2 > geom.Width() || l.PSFBoundsY()*2 > geom.Height() {
		return nil, &ContractError{Msg: "PSF support is larger than the sensor"}
	}

	for _, point := range params.Sources {
		mean := point.Flux * params.ExposureTime * s.config.QuantumEfficiency * l.Area()

		if mean < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			return nil, &ContractError{Msg: "source dose is negative or non-finite"}
		}
	}

	rate := float64(units.PicoampsPerSquareCentimetre(s.config.DarkCurrent(params.Temperature)).ToElectronsPerSecondPerSquareMicrometre())

	for _, h := range s.hotPixels {
		if mean := h * rate * params.ExposureTime * geom.PixelArea(); mean < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			return nil, &ValueError{Field: "dark_current", Msg: "produced a negative or non-finite mean"}
		}
	}

	return background, nil
}

/*****************************************************************************************************************/

// accumulateSources integrates each source's PSF over its footprint window and deposits a
// Poisson-sampled electron count per pixel, per §4.3.
func (s *Sensor) accumulateSources(l lens.Lens, params ExposureParams, src noise.Source) error {
	geom := s.config.Geometry

	nx, ny := psf.QuadratureCounts(geom.PixelLengthX, geom.PixelLengthY, l.PSFResolution())
	boundsX, boundsY := psf.PixelBounds(l.PSFBoundsX(), l.PSFBoundsY(), geom.PixelLengthX, geom.PixelLengthY)

	spanX := geom.effectiveSpanX()
	spanY := geom.effectiveSpanY()

	for _, point := range params.Sources {
		x, y, flux := point.X, point.Y, point.Flux

		mean := flux * params.ExposureTime * s.config.QuantumEfficiency * l.Area()

		if mean < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			return &ContractError{Msg: "source dose is negative or non-finite"}
		}

		xi := psf.CenterPixel(x, spanX, geom.WidthPx)
		yi := psf.CenterPixel(y, spanY, geom.HeightPx)

		window := psf.Footprint(xi, yi, boundsX, boundsY, geom.WidthPx, geom.HeightPx)

		for r := window.RowMin; r < window.RowMax; r++ {
			for c := window.ColumnMin; c < window.ColumnMax; c++ {
				f := psf.PixelFraction(l, x, y, c, r, geom.PixelPitchX, geom.PixelPitchY, geom.PixelLengthX, geom.PixelLengthY, nx, ny)

				if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
					return &ContractError{Msg: "lens PSF returned a negative or non-finite density"}
				}

				s.pixels.Value[r*geom.WidthPx+c] += noise.PoissonSample(mean*f, src)
			}
		}
	}

	return nil
}

/*****************************************************************************************************************/

// accumulateBackground adds Poisson-sampled sky background electrons to every pixel, row-major.
func (s *Sensor) accumulateBackground(l lens.Lens, params ExposureParams, background []float64, src noise.Source) {
	for i, flux := range background {
		mean := flux * params.ExposureTime * l.Area()
		s.pixels.Value[i] += noise.PoissonSample(mean, src)
	}
}

/*****************************************************************************************************************/

// accumulateDarkCurrent adds Poisson-sampled thermal electrons to every pixel, row-major,
// converting the dark-current density from pA/cm^2 via the fixed physical equivalence in
// pkg/units.
func (s *Sensor) accumulateDarkCurrent(params ExposureParams, src noise.Source) error {
	density := units.PicoampsPerSquareCentimetre(s.config.DarkCurrent(params.Temperature))
	rate := density.ToElectronsPerSecondPerSquareMicrometre()

	pixelArea := s.config.Geometry.PixelArea()

	for i, h := range s.hotPixels {
		mean := h * float64(rate) * params.ExposureTime * pixelArea

		if mean < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			return &ValueError{Field: "dark_current", Msg: "produced a negative or non-finite mean"}
		}

		s.pixels.Value[i] += noise.PoissonSample(mean, src)
	}

	return nil
}

/*****************************************************************************************************************/
