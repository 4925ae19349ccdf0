/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

// Geometry is the sensor's immutable physical layout: a width_px x height_px grid of pixels,
// each px_len_x x px_len_y (micrometres) of active area on a px_pitch_x x px_pitch_y centre
// spacing.
type Geometry struct {
	WidthPx, HeightPx          int
	PixelLengthX, PixelLengthY float64
	PixelPitchX, PixelPitchY   float64
}

/*****************************************************************************************************************/

// Width returns the sensor's total addressable extent on the x axis, in micrometres.
//
// W = (width_px+1)*px_pitch_x - px_len_x
//
// This treats the outermost pitch as a half-pitch margin beyond the last pixel's edge - not the
// W = width_px*px_pitch_x one might expect, but the convention this sensor's addressing and PSF
// centring both rely on.
func (g Geometry) Width() float64 {
	return float64(g.WidthPx+1)*g.PixelPitchX - g.PixelLengthX
}

/*****************************************************************************************************************/

// Height is Width's counterpart on the y axis.
func (g Geometry) Height() float64 {
	return float64(g.HeightPx+1)*g.PixelPitchY - g.PixelLengthY
}

/*****************************************************************************************************************/

// effectiveSpanX is the span a physical x offset is divided against to recover a pixel index:
// W - 2*px_pitch_x + px_len_x. Folded into the PSF centre-pixel inversion in accumulate.go.
func (g Geometry) effectiveSpanX() float64 {
	return g.Width() - 2*g.PixelPitchX + g.PixelLengthX
}

/*****************************************************************************************************************/

func (g Geometry) effectiveSpanY() float64 {
	return g.Height() - 2*g.PixelPitchY + g.PixelLengthY
}

/*****************************************************************************************************************/

// PixelArea is the active area of a single pixel, in square micrometres.
func (g Geometry) PixelArea() float64 {
	return g.PixelLengthX * g.PixelLengthY
}

/*****************************************************************************************************************/
