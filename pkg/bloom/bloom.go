/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package bloom redistributes super-full-well charge to a saturated pixel's orthogonal
// neighbors. It operates directly on a flat, row-major pixel grid so it can be driven either by
// the sensor's accumulation pipeline or exercised standalone against a hand-built grid.
package bloom

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
)

/*****************************************************************************************************************/

// Direction names one of the four orthogonal neighbors a pixel may overflow into.
type Direction uint8

/*****************************************************************************************************************/

const (
	East  Direction = 1 << iota // +x
	West                        // -x
	South                       // +y
	North                       // -y
)

/*****************************************************************************************************************/

// ParseDirection maps the source's {+x,-x,+y,-y} notation onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "+x":
		return East, nil
	case "-x":
		return West, nil
	case "+y":
		return South, nil
	case "-y":
		return North, nil
	default:
		return 0, fmt.Errorf("bloom: unknown direction %q", s)
	}
}

/*****************************************************************************************************************/

// Directions is a set of Direction values, the bloom_dirs of §3.
type Directions uint8

/*****************************************************************************************************************/

// NewDirections builds a Directions set from individual Direction flags.
func NewDirections(ds ...Direction) Directions {
	var out Directions

	for _, d := range ds {
		out |= Directions(d)
	}

	return out
}

/*****************************************************************************************************************/

// Has reports whether dir is a member of d.
func (d Directions) Has(dir Direction) bool {
	return d&Directions(dir) != 0
}

/*****************************************************************************************************************/

// Empty reports whether the set has no members, the bloom_dirs = ∅ case that disables
// redistribution entirely.
func (d Directions) Empty() bool {
	return d == 0
}

/*****************************************************************************************************************/

// offsets returns the (row, column) deltas the set's members correspond to, in a stable order.
func (d Directions) offsets() [][2]int {
	var offsets [][2]int

	if d.Has(North) {
		offsets = append(offsets, [2]int{-1, 0})
	}

	if d.Has(South) {
		offsets = append(offsets, [2]int{1, 0})
	}

	if d.Has(West) {
		offsets = append(offsets, [2]int{0, -1})
	}

	if d.Has(East) {
		offsets = append(offsets, [2]int{0, 1})
	}

	return offsets
}

/*****************************************************************************************************************/

// residualGuard is the §9 termination guard for non-integer excess: once the largest excess in
// the grid falls below one electron, further iterations would only ever floor to zero, so Apply
// stops rather than looping indefinitely.
const residualGuard = 1.0

/*****************************************************************************************************************/

// Apply redistributes charge above fullWell in a height x width, row-major pixel grid to the
// neighbors named by dirs, iterating until no pixel exceeds fullWell by one electron or more (see
// residualGuard); with integer-valued charge every pixel ends at or below fullWell. If dirs is empty, it clips
// every pixel to fullWell in place and returns immediately - the no-bloom path of §4.4.
func Apply(pixels []float64, width, height int, fullWell float64, dirs Directions) {
	if dirs.Empty() {
		for i, v := range pixels {
			if v > fullWell {
				pixels[i] = fullWell
			}
		}

		return
	}

	offsets := dirs.offsets()
	share := 1.0 / float64(len(offsets))

	excess := make([]float64, len(pixels))
	spread := make([]float64, len(pixels))

	for {
		maxExcess := 0.0
		anyExcess := false

		for i, v := range pixels {
			e := v - fullWell

			if e < 0 {
				e = 0
			}

			excess[i] = e

			if e > 0 {
				anyExcess = true
			}

			if e > maxExcess {
				maxExcess = e
			}
		}

		if !anyExcess || maxExcess < residualGuard {
			return
		}

		for i := range spread {
			spread[i] = 0
		}

		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				e := excess[r*width+c]

				if e == 0 {
					continue
				}

				pixels[r*width+c] -= e

				for _, off := range offsets {
					nr, nc := r+off[0], c+off[1]

					if nr < 0 || nr >= height || nc < 0 || nc >= width {
						continue
					}

					spread[nr*width+nc] += e * share
				}
			}
		}

		for i := range pixels {
			pixels[i] += math.Floor(spread[i])
		}
	}
}

/*****************************************************************************************************************/
