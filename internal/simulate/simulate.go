/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package simulate wires the sensor core up to a cobra command: it assembles a Sensor, a
// reference Lens, a synthetic source field, and runs one exposure end to end, writing the result
// as a FITS frame and a PNG quicklook.
package simulate

/*****************************************************************************************************************/

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/observerly/sensorcore/pkg/fitsio"
	"github.com/observerly/sensorcore/pkg/frame"
	"github.com/observerly/sensorcore/pkg/lens"
	"github.com/observerly/sensorcore/pkg/noise"
	"github.com/observerly/sensorcore/pkg/preview"
	"github.com/observerly/sensorcore/pkg/sensor"
	"github.com/observerly/sensorcore/pkg/source"
	"github.com/observerly/sensorcore/pkg/store"
	"github.com/observerly/sidera/pkg/humanize"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	WidthPx      int
	HeightPx     int
	PixelLength  float64
	PixelPitch   float64
	ExposureTime float64
	Temperature  float64
	Seed         uint64
	OutputStem   string
	RA           float64
	Dec          float64
	StorePath    string
)

/*****************************************************************************************************************/

// Command is the "simulate" cobra command: run one synthetic exposure and write its output.
var Command = &cobra.Command{
	Use:   "simulate",
	Short: "simulate",
	Long:  "simulate a single synthetic exposure and write the resulting frame to disk",
	Run: func(cmd *cobra.Command, args []string) {
		params := RunParams{
			WidthPx:      WidthPx,
			HeightPx:     HeightPx,
			PixelLength:  PixelLength,
			PixelPitch:   PixelPitch,
			ExposureTime: ExposureTime,
			Temperature:  Temperature,
			Seed:         Seed,
			OutputStem:   OutputStem,
			RA:           RA,
			Dec:          Dec,
			StorePath:    StorePath,
		}

		if err := Run(params); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	},
}

/*****************************************************************************************************************/

func init() {
	// Add the width flag to the simulate command for setting the sensor's pixel width:
	// example usage: --width 512
	Command.Flags().IntVarP(
		&WidthPx,
		"width",
		"w",
		512,
		"The sensor width, in pixels",
	)

	// Add the height flag to the simulate command for setting the sensor's pixel height:
	// example usage: --height 512
	Command.Flags().IntVarP(
		&HeightPx,
		"height",
		"h",
		512,
		"The sensor height, in pixels",
	)

	// Add the pixel length flag to the simulate command for setting the pixel active side length:
	// example usage: --pixel-length 9.0
	Command.Flags().Float64VarP(
		&PixelLength,
		"pixel-length",
		"",
		9.0,
		"The pixel's active side length, in micrometres",
	)

	// Add the pixel pitch flag to the simulate command for setting the pixel centre spacing:
	// example usage: --pixel-pitch 10.0
	Command.Flags().Float64VarP(
		&PixelPitch,
		"pixel-pitch",
		"",
		10.0,
		"The pixel's centre-to-centre spacing, in micrometres",
	)

	// Add the exposure time flag to the simulate command for setting the integration time:
	// example usage: --exposure-time 30
	Command.Flags().Float64VarP(
		&ExposureTime,
		"exposure-time",
		"e",
		30.0,
		"The exposure time, in seconds",
	)

	// Add the temperature flag to the simulate command for setting the sensor temperature:
	// example usage: --temperature -10
	Command.Flags().Float64VarP(
		&Temperature,
		"temperature",
		"t",
		-10.0,
		"The sensor temperature, in degrees Celsius, passed through to the dark current model",
	)

	// Add the seed flag to the simulate command for reproducible noise draws:
	// example usage: --seed 42
	Command.Flags().Uint64VarP(
		&Seed,
		"seed",
		"s",
		1,
		"The RNG seed driving every Poisson draw in the exposure",
	)

	// Add the output flag to the simulate command for setting the output filepath stem:
	// example usage: --output ./samples/exposure
	Command.Flags().StringVarP(
		&OutputStem,
		"output",
		"o",
		"./exposure",
		"The output filepath stem; writes <stem>.fits and <stem>.png",
	)

	// Add the pointing flags to the simulate command, recorded alongside the frame but not
	// otherwise fed into the optics: example usage: --ra 83.822083 --dec -5.391111
	Command.Flags().Float64Var(
		&RA,
		"ra",
		0,
		"The field's right ascension, in decimal degrees, recorded in the frame log",
	)

	Command.Flags().Float64Var(
		&Dec,
		"dec",
		0,
		"The field's declination, in decimal degrees, recorded in the frame log",
	)

	// Add the store flag to the simulate command for setting the provenance database path:
	// example usage: --store ./exposures.sqlite
	Command.Flags().StringVar(
		&StorePath,
		"store",
		"./sensorcore.sqlite",
		"The SQLite database path recording exposure provenance",
	)
}

/*****************************************************************************************************************/

// RunParams is the input to Run: everything the simulate command needs to assemble a Sensor and
// run one exposure.
type RunParams struct {
	WidthPx, HeightPx       int
	PixelLength, PixelPitch float64
	ExposureTime            float64
	Temperature             float64
	Seed                    uint64
	OutputStem              string
	RA, Dec                 float64
	StorePath               string
}

/*****************************************************************************************************************/

// Run assembles a Sensor, a Gaussian reference Lens, and a small synthetic star field; runs one
// exposure; and writes the digital readout as a FITS frame and a PNG quicklook.
func Run(params RunParams) error {
	config := sensor.Config{
		Geometry: sensor.Geometry{
			WidthPx:      params.WidthPx,
			HeightPx:     params.HeightPx,
			PixelLengthX: params.PixelLength,
			PixelLengthY: params.PixelLength,
			PixelPitchX:  params.PixelPitch,
			PixelPitchY:  params.PixelPitch,
		},
		QuantumEfficiency: 0.8,
		DarkCurrent:       func(t float64) float64 { return 0.01 * math.Max(1, t+30) },
		ReadNoise:         3.0,
		Gain:              1.2,
		FullWell:          100_000,
		ADCLimit:          65535,
		BloomDirs:         []string{"+x", "-x", "+y", "-y"},
		ReadoutTime:       0.5,
	}

	s, err := sensor.New(config)
	if err != nil {
		return fmt.Errorf("failed to construct sensor: %w", err)
	}

	geom := s.Geom()

	l := lens.NewGaussian(0.25, 3.0, 1.0, 6, nil)

	src := noise.NewSource(params.Seed)

	exposure := sensor.ExposureParams{
		ExposureTime: params.ExposureTime,
		Temperature:  params.Temperature,
		Sources: []source.Source{
			{X: geom.Width() / 2, Y: geom.Height() / 2, Flux: 5e4, Label: "primary"},
			{X: geom.Width() / 3, Y: geom.Height() / 4, Flux: 1.2e4, Label: "secondary"},
		},
	}

	if err := s.Accumulate(l, exposure, src); err != nil {
		return fmt.Errorf("failed to accumulate exposure: %w", err)
	}

	image, err := s.Readout(src)
	if err != nil {
		return fmt.Errorf("failed to read out sensor: %w", err)
	}

	id, err := frame.New(time.Now(), frame.NewEntropySource(params.Seed))
	if err != nil {
		return fmt.Errorf("failed to mint frame id: %w", err)
	}

	pointing := fmt.Sprintf(
		"%s %s",
		humanize.FormatDecimalToDMS(params.RA, "%s%d°%d'%.2f\""),
		humanize.FormatDecimalToDMS(params.Dec, "%s%d°%d'%.2f\""),
	)

	fmt.Printf("Frame ID: %v, Pointing: %s\n", id, pointing)

	capturedAt := time.Now()

	db, err := store.Open(params.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open provenance store: %w", err)
	}
	defer db.Close()

	if err := db.RecordExposure(store.FrameLog{
		FrameID:      id.String(),
		ExposureTime: params.ExposureTime,
		Temperature:  params.Temperature,
		WidthPx:      params.WidthPx,
		HeightPx:     params.HeightPx,
		GeometryHash: geometryFingerprint(geom),
		CapturedAt:   capturedAt,
	}); err != nil {
		return fmt.Errorf("failed to record exposure provenance: %w", err)
	}

	fitsFile, err := os.Create(params.OutputStem + ".fits")
	if err != nil {
		return fmt.Errorf("failed to create fits output: %w", err)
	}
	defer fitsFile.Close()

	if err := fitsio.WriteReadout(
		fitsFile,
		image.Counts,
		image.WidthPx,
		image.HeightPx,
		config.ADCLimit,
		config.Gain,
		params.ExposureTime,
	); err != nil {
		return fmt.Errorf("failed to write fits output: %w", err)
	}

	pngFile, err := os.Create(params.OutputStem + ".png")
	if err != nil {
		return fmt.Errorf("failed to create png output: %w", err)
	}
	defer pngFile.Close()

	if err := preview.WritePNG(pngFile, image.Counts, image.WidthPx, image.HeightPx); err != nil {
		return fmt.Errorf("failed to write png preview: %w", err)
	}

	fmt.Printf("Wrote %s.fits and %s.png\n", params.OutputStem, params.OutputStem)

	return nil
}

/*****************************************************************************************************************/

// geometryFingerprint hashes the sensor's physical layout, so two exposures in the provenance
// store can be compared for an identical geometry without comparing every field by hand.
func geometryFingerprint(geom sensor.Geometry) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf(
		"%d,%d,%f,%f,%f,%f",
		geom.WidthPx, geom.HeightPx,
		geom.PixelLengthX, geom.PixelLengthY,
		geom.PixelPitchX, geom.PixelPitchY,
	)))

	return hex.EncodeToString(sum[:])
}

/*****************************************************************************************************************/
