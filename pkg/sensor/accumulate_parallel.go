/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import (
	"context"
	"math"
	"sync"

	"github.com/observerly/sensorcore/pkg/bloom"
	"github.com/observerly/sensorcore/pkg/lens"
	"github.com/observerly/sensorcore/pkg/noise"
	"github.com/observerly/sensorcore/pkg/pipeline"
	"github.com/observerly/sensorcore/pkg/psf"
)

/*****************************************************************************************************************/

// AccumulateParallel is Accumulate, with the per-source PSF integration of §4.3 fanned out across
// a worker pool of at most concurrency goroutines - the data-parallel implementation choice §5
// permits but does not require. The PSF quadrature for each source (the expensive part) runs
// concurrently; the Poisson draw and pixel write for every pixel it touches is serialized behind
// a single mutex, so src is never accessed from two goroutines at once and determinism under a
// fixed seed is preserved only in the sense that the same set of draws happens - not in the same
// order as the sequential Accumulate, since goroutine scheduling decides which source's draws
// land first.
func (s *Sensor) AccumulateParallel(
	ctx context.Context,
	concurrency int,
	l lens.Lens,
	params ExposureParams,
	src noise.Source,
) error {
	background, err := s.validateExposure(l, params)
	if err != nil {
		return err
	}

	if err := s.accumulateSourcesParallel(ctx, concurrency, l, params, src); err != nil {
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

type pixelDose struct {
	index int
	dose  float64
}

/*****************************************************************************************************************/

func (s *Sensor) accumulateSourcesParallel(
	ctx context.Context,
	concurrency int,
	l lens.Lens,
	params ExposureParams,
	src noise.Source,
) error {
	geom := s.config.Geometry

	nx, ny := psf.QuadratureCounts(geom.PixelLengthX, geom.PixelLengthY, l.PSFResolution())
	boundsX, boundsY := psf.PixelBounds(l.PSFBoundsX(), l.PSFBoundsY(), geom.PixelLengthX, geom.PixelLengthY)

	spanX := geom.effectiveSpanX()
	spanY := geom.effectiveSpanY()

	var mu sync.Mutex

	return pipeline.Run(ctx, concurrency, len(params.Sources), func(ctx context.Context, i int) error {
		point := params.Sources[i]
		x, y, flux := point.X, point.Y, point.Flux

		mean := flux * params.ExposureTime * s.config.QuantumEfficiency * l.Area()

		if mean < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			return &ContractError{Msg: "source dose is negative or non-finite"}
		}

		xi := psf.CenterPixel(x, spanX, geom.WidthPx)
		yi := psf.CenterPixel(y, spanY, geom.HeightPx)

		window := psf.Footprint(xi, yi, boundsX, boundsY, geom.WidthPx, geom.HeightPx)

		doses := make([]pixelDose, 0, (window.ColumnMax-window.ColumnMin)*(window.RowMax-window.RowMin))

		for r := window.RowMin; r < window.RowMax; r++ {
			for c := window.ColumnMin; c < window.ColumnMax; c++ {
				f := psf.PixelFraction(l, x, y, c, r, geom.PixelPitchX, geom.PixelPitchY, geom.PixelLengthX, geom.PixelLengthY, nx, ny)

				if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
					return &ContractError{Msg: "lens PSF returned a negative or non-finite density"}
				}

				doses = append(doses, pixelDose{index: r*geom.WidthPx + c, dose: mean * f})
			}
		}

		mu.Lock()
		defer mu.Unlock()

		for _, d := range doses {
			s.pixels.Value[d.index] += noise.PoissonSample(d.dose, src)
		}

		return nil
	})
}

/*****************************************************************************************************************/
