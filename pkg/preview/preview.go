/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package preview renders a sensor's digital readout as a normalized grayscale PNG, for a quick
// look at an exposure without opening it in a FITS viewer.
package preview

/*****************************************************************************************************************/

import (
	"errors"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
)

/*****************************************************************************************************************/

// WritePNG renders a width x height, row-major grid of digital counts as a min/max-stretched
// grayscale PNG and writes it to w.
func WritePNG(w io.Writer, counts []float64, width, height int) error {
	if len(counts) != width*height {
		return errors.New("preview: counts does not match width*height")
	}

	if len(counts) == 0 {
		return errors.New("preview: counts is empty")
	}

	minVal, maxVal := counts[0], counts[0]

	for _, v := range counts {
		if v < minVal {
			minVal = v
		}

		if v > maxVal {
			maxVal = v
		}
	}

	if maxVal == minVal {
		maxVal = minVal + 1 // avoid dividing by zero for a perfectly flat frame
	}

	dc := gg.NewContext(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			normalized := (counts[y*width+x] - minVal) / (maxVal - minVal)

			if math.IsNaN(normalized) || math.IsInf(normalized, 0) {
				normalized = 0
			}

			dc.SetRGB(normalized, normalized, normalized)
			dc.SetPixel(x, y)
		}
	}

	return png.Encode(w, dc.Image())
}

/*****************************************************************************************************************/
