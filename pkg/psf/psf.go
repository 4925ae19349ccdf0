/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package psf integrates a lens's point-spread function over a discrete pixel grid. It knows
// nothing about electrons, noise, or sensor state - it only turns a source position and a lens
// into the dimensionless fraction of the source's dose landing in each pixel of a footprint
// window, leaving everything stochastic to the caller.
package psf

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/sensorcore/pkg/lens"
	"gonum.org/v1/gonum/integrate"
)

/*****************************************************************************************************************/

// QuadratureCounts returns the number of quadrature samples per pixel side, on each axis, such
// that the sample spacing never exceeds psfResolution, floored at 2 (a pixel's two edges).
func QuadratureCounts(pixelLengthX, pixelLengthY, psfResolution float64) (nx, ny int) {
	nx = int(math.Ceil(pixelLengthX/psfResolution)) + 1
	ny = int(math.Ceil(pixelLengthY/psfResolution)) + 1

	if nx < 2 {
		nx = 2
	}

	if ny < 2 {
		ny = 2
	}

	return nx, ny
}

/*****************************************************************************************************************/

// PixelBounds returns the half-extent, in whole pixels, of the PSF support around a source's
// centre pixel.
func PixelBounds(psfBoundsX, psfBoundsY, pixelLengthX, pixelLengthY float64) (boundsX, boundsY int) {
	return int(math.Ceil(psfBoundsX / pixelLengthX)), int(math.Ceil(psfBoundsY / pixelLengthY))
}

/*****************************************************************************************************************/

// CenterPixel resolves a physical offset into the pixel index whose active area contains it,
// given the sensor's effective addressable span on that axis (W - 2*pitch + length, preserving
// the half-pitch margin convention the geometry derives its extent with). Ties round to even.
func CenterPixel(position, effectiveSpan float64, pixelsOnAxis int) int {
	return int(math.RoundToEven(position * float64(pixelsOnAxis) / effectiveSpan))
}

/*****************************************************************************************************************/

// Window is the axis-aligned, sensor-clipped rectangle of pixels a source's PSF is integrated
// over. The bounds are half-open: [ColumnMin, ColumnMax) x [RowMin, RowMax).
type Window struct {
	ColumnMin, ColumnMax int
	RowMin, RowMax       int
}

/*****************************************************************************************************************/

// Footprint clips the (2*boundsX+1) x (2*boundsY+1) square centred on (centreColumn,
// centreRow) to the sensor's pixel grid.
func Footprint(centreColumn, centreRow, boundsX, boundsY, widthPx, heightPx int) Window {
	w := Window{
		ColumnMin: max(centreColumn-boundsX, 0),
		ColumnMax: min(centreColumn+boundsX+1, widthPx),
		RowMin:    max(centreRow-boundsY, 0),
		RowMax:    min(centreRow+boundsY+1, heightPx),
	}

	return w
}

/*****************************************************************************************************************/

// PixelFraction integrates l's PSF over the active-area rectangle of pixel (column, row) using
// composite trapezoidal quadrature on an ny x nx grid, and returns the dimensionless fraction of
// the source's total dose landing in that pixel. sourceX/sourceY are the source's offset, in
// micrometres, from the sensor's top-left corner; column/row address the pixel the same way the
// sensor's geometry does (active area spans [col*pitch-length, col*pitch) on each axis).
func PixelFraction(
	l lens.Lens,
	sourceX, sourceY float64,
	column, row int,
	pitchX, pitchY, lengthX, lengthY float64,
	nx, ny int,
) float64 {
	xHi := float64(column)*pitchX - sourceX
	xLo := xHi - lengthX
	yHi := float64(row)*pitchY - sourceY
	yLo := yHi - lengthY

	xs := linspace(xLo, xHi, nx)
	ys := linspace(yLo, yHi, ny)

	x := make([]float64, nx*ny)
	y := make([]float64, nx*ny)

	i := 0
	for _, yy := range ys {
		for _, xx := range xs {
			x[i] = xx
			y[i] = yy
			i++
		}
	}

	density := make([]float64, nx*ny)
	l.PSF(x, y, density)

	rowIntegrals := make([]float64, ny)
	for j := 0; j < ny; j++ {
		rowIntegrals[j] = integrate.Trapezoidal(xs, density[j*nx:(j+1)*nx])
	}

	return integrate.Trapezoidal(ys, rowIntegrals)
}

/*****************************************************************************************************************/

// linspace returns n evenly spaced samples from lo to hi, inclusive, matching numpy's
// np.linspace semantics for n >= 2.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)

	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)

	for i := 0; i < n; i++ {
		out[i] = lo + step*float64(i)
	}

	return out
}

/*****************************************************************************************************************/
