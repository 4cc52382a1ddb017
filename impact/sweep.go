// sweep.go - Schwellwert-Sweep ueber einen festen Attention-Tensor
// Hauptfunktionen: Sweep, MeanOpsReduction
package impact

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/ollama/spatten/attention"
)

// SweepPoint ist das Ergebnis eines Pruning-Laufs fuer eine Schwelle
type SweepPoint struct {
	Threshold float64 `json:"threshold"`
	Sparsity  float64 `json:"sparsity"`
	Metrics   Metrics `json:"metrics"`
}

// Sweep fuehrt Prune fuer jede Schwelle nacheinander auf demselben
// Original-Tensor aus. Die Reihenfolge der Ergebnisse entspricht thresholds.
func Sweep(t *attention.Tensor, thresholds []float64) []SweepPoint {
	points := make([]SweepPoint, 0, len(thresholds))
	for _, threshold := range thresholds {
		pruned, mask := attention.Prune(t, threshold)
		points = append(points, SweepPoint{
			Threshold: threshold,
			Sparsity:  attention.Sparsity(pruned),
			Metrics:   Estimate(mask),
		})
	}

	slog.Debug("threshold sweep finished", "points", len(points))
	return points
}

// MeanOpsReduction gibt die mittlere Compute-Reduktion (%) eines Sweeps zurueck
func MeanOpsReduction(points []SweepPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Metrics.OpsReductionPct
	}
	return stat.Mean(values, nil)
}
