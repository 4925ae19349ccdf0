/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package sensor

/*****************************************************************************************************************/

import (
	"context"
	"testing"

	"github.com/observerly/sensorcore/pkg/lens"
	"github.com/observerly/sensorcore/pkg/noise"
	"github.com/observerly/sensorcore/pkg/source"
)

/*****************************************************************************************************************/

func TestAccumulateParallelMatchesSequentialTotalFlux(t *testing.T) {
	cfg := newTestConfig()
	g := lens.NewGaussian(1, 3, 1, 6, nil)

	params := ExposureParams{
		ExposureTime: 1,
		Sources: []source.Source{
			{X: 10, Y: 10, Flux: 1e5},
			{X: 40, Y: 40, Flux: 1e5},
			{X: 70, Y: 70, Flux: 1e5},
		},
		BackgroundFlux: []float64{1},
	}

	sequential, err := New(cfg)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if err := sequential.Accumulate(g, params, noise.NewSource(11)); err != nil {
		t.Fatalf("Accumulate() returned error: %v", err)
	}

	parallel, err := New(cfg)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if err := parallel.AccumulateParallel(context.Background(), 4, g, params, noise.NewSource(11)); err != nil {
		t.Fatalf("AccumulateParallel() returned error: %v", err)
	}

	sequentialTotal, parallelTotal := 0.0, 0.0

	for _, v := range sequential.pixels.Value {
		sequentialTotal += v
	}

	for _, v := range parallel.pixels.Value {
		parallelTotal += v
	}

	ratio := parallelTotal / sequentialTotal

	if ratio < 0.8 || ratio > 1.2 {
		t.Errorf("parallel total = %v, sequential total = %v; expected comparable magnitude", parallelTotal, sequentialTotal)
	}
}

/*****************************************************************************************************************/

func TestAccumulateParallelRejectsNegativeSourceFlux(t *testing.T) {
	s, err := New(newTestConfig())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	g := lens.NewGaussian(1, 3, 1, 6, nil)

	params := ExposureParams{
		ExposureTime: 1,
		Sources:      []source.Source{{X: 40, Y: 40, Flux: -1}},
	}

	if err := s.AccumulateParallel(context.Background(), 4, g, params, noise.NewSource(1)); err == nil {
		t.Error("AccumulateParallel() with a negative source flux should return a ContractError")
	}
}

/*****************************************************************************************************************/
