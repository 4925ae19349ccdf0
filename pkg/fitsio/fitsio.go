/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package fitsio reads calibration frames (hot-pixel maps, bias maps) and writes exposure
// readouts as FITS images, the only file format the core's surrounding tooling touches.
package fitsio

/*****************************************************************************************************************/

import (
	"io"

	"github.com/observerly/iris/pkg/fits"
)

/*****************************************************************************************************************/

// ReadCalibrationFrame reads a FITS primary HDU from r - a hot-pixel multiplier map or a bias
// map - and returns its pixel data as row-major float64, alongside the width and height the FITS
// header reports.
func ReadCalibrationFrame(r io.Reader, bitpix int, offset, max float32) (data []float64, width, height int, err error) {
	image := fits.NewFITSImage(2, bitpix, offset, max)

	if err := image.Read(r); err != nil {
		return nil, 0, 0, err
	}

	width = int(image.Header.Naxis1)
	height = int(image.Header.Naxis2)

	data = make([]float64, len(image.Data))

	for i, v := range image.Data {
		data[i] = float64(v)
	}

	return data, width, height, nil
}

/*****************************************************************************************************************/

// WriteReadout encodes a sensor's digital readout as a FITS primary HDU and writes it to w.
// bitpix is chosen from adcLimit: 16-bit is used unless the ADC's range exceeds it.
func WriteReadout(w io.Writer, counts []float64, width, height int, adcLimit, gain, exposureTime float64) error {
	bitpix := 16

	if adcLimit > 65535 {
		bitpix = 32
	}

	image := fits.NewFITSImage(2, bitpix, 0, float32(adcLimit))

	image.Header.Naxis1 = float32(width)
	image.Header.Naxis2 = float32(height)

	image.Data = make([]float32, len(counts))

	for i, v := range counts {
		image.Data[i] = float32(v)
	}

	image.Header.Set("GAIN", gain, "Detector gain, in ADU per electron")
	image.Header.Set("EXPTIME", exposureTime, "Exposure time, in seconds")

	buf, err := image.WriteToBuffer()
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)

	return err
}

/*****************************************************************************************************************/
