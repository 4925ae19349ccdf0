/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package bloom

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestApplyWithNoDirectionsClipsInPlace(t *testing.T) {
	fullWell := 100.0
	pixels := []float64{250, 10, 0, 99}

	Apply(pixels, 2, 2, fullWell, Directions(0))

	want := []float64{100, 10, 0, 99}

	for i, v := range pixels {
		if v != want[i] {
			t.Errorf("pixels[%d] = %v; want %v", i, v, want[i])
		}
	}
}

/*****************************************************************************************************************/

func TestApplySaturationWithoutBloomLeavesOthersAtZero(t *testing.T) {
	fullWell := 1000.0
	pixels := make([]float64, 9)
	pixels[4] = 2 * fullWell // centre of a 3x3 grid

	Apply(pixels, 3, 3, fullWell, Directions(0))

	for i, v := range pixels {
		if i == 4 {
			if v != fullWell {
				t.Errorf("pixels[4] = %v; want %v", v, fullWell)
			}
			continue
		}

		if v != 0 {
			t.Errorf("pixels[%d] = %v; want 0", i, v)
		}
	}
}

/*****************************************************************************************************************/

func TestApplySymmetricBloomSharesEquallyToFourNeighbors(t *testing.T) {
	fullWell := 1000.0
	k := 40.0

	width, height := 5, 5
	pixels := make([]float64, width*height)

	centre := 2*width + 2
	pixels[centre] = fullWell + 4*k

	dirs := NewDirections(East, West, North, South)

	Apply(pixels, width, height, fullWell, dirs)

	if pixels[centre] != fullWell {
		t.Errorf("centre pixel = %v; want %v", pixels[centre], fullWell)
	}

	neighbors := []int{centre - 1, centre + 1, centre - width, centre + width}

	for _, idx := range neighbors {
		if pixels[idx] != k {
			t.Errorf("neighbor pixel[%d] = %v; want %v", idx, pixels[idx], k)
		}
	}

	for i, v := range pixels {
		if v > fullWell {
			t.Errorf("pixels[%d] = %v; exceeds full well %v after settling", i, v, fullWell)
		}
	}
}

/*****************************************************************************************************************/

func TestApplyDirectionalBloomLossesChargeOffEdge(t *testing.T) {
	fullWell := 1000.0
	width, height := 3, 3

	pixels := make([]float64, width*height)

	// right-edge, middle row
	edge := 1*width + (width - 1)
	pixels[edge] = fullWell + 120

	dirs := NewDirections(East)

	Apply(pixels, width, height, fullWell, dirs)

	if pixels[edge] != fullWell {
		t.Errorf("edge pixel = %v; want %v", pixels[edge], fullWell)
	}

	for i, v := range pixels {
		if i == edge {
			continue
		}

		if v != 0 {
			t.Errorf("pixels[%d] = %v; want 0 (charge should be lost off the sensor edge)", i, v)
		}
	}
}

/*****************************************************************************************************************/

func TestApplyTerminatesForLargeExcess(t *testing.T) {
	fullWell := 10.0
	width, height := 4, 4

	pixels := make([]float64, width*height)
	pixels[5] = 10000

	dirs := NewDirections(East, West, North, South)

	Apply(pixels, width, height, fullWell, dirs)

	for i, v := range pixels {
		if v > fullWell {
			t.Errorf("pixels[%d] = %v; should not exceed full well %v after Apply returns", i, v, fullWell)
		}
	}
}

/*****************************************************************************************************************/

func TestParseDirectionRecognizesAllFour(t *testing.T) {
	cases := map[string]Direction{"+x": East, "-x": West, "+y": South, "-y": North}

	for s, want := range cases {
		got, err := ParseDirection(s)

		if err != nil {
			t.Fatalf("ParseDirection(%q) returned error: %v", s, err)
		}

		if got != want {
			t.Errorf("ParseDirection(%q) = %v; want %v", s, got, want)
		}
	}
}

/*****************************************************************************************************************/

func TestParseDirectionRejectsUnknown(t *testing.T) {
	if _, err := ParseDirection("+z"); err == nil {
		t.Error("ParseDirection(\"+z\") should return an error")
	}
}

/*****************************************************************************************************************/
