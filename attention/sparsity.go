package attention

import "gonum.org/v1/gonum/floats"

// Sparsity gibt den Anteil exakter Nullen in Prozent (0-100) zurueck
func Sparsity(t *Tensor) float64 {
	if len(t.data) == 0 {
		return 0
	}

	zeros := floats.Count(func(v float64) bool { return v == 0 }, t.data)
	return 100 * float64(zeros) / float64(len(t.data))
}
