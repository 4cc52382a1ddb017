// MODUL: prune
// ZWECK: Dynamisches Token-Pruning anhand eines Importance-Proxys
// INPUT: Attention-Tensor, Importance-Schwelle
// OUTPUT: Gepruenter Tensor (Kopie) und Prune-Maske
// NEBENEFFEKTE: keine (Eingabe-Tensor bleibt unveraendert)
// ABHAENGIGKEITEN: gonum/floats, gonum/stat
// HINWEISE: Importance = Maximum der Attention-Zeile, keine Renormalisierung

package attention

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mask markiert gepruente Tokens pro (batch, head, query).
// true bedeutet: die Zeile des Tokens ist komplett auf 0 gesetzt.
type Mask struct {
	shape  Shape
	pruned []bool
}

// Shape gibt die Shape des zugehoerigen Tensors zurueck
func (m Mask) Shape() Shape {
	return m.shape
}

// Len gibt die Anzahl Token-Slots zurueck
func (m Mask) Len() int {
	return len(m.pruned)
}

// At meldet, ob Token q in (b, h) gepruent wurde
func (m Mask) At(b, h, q int) bool {
	return m.pruned[(b*m.shape.Heads+h)*m.shape.SeqLen+q]
}

// Count gibt die Anzahl gepruenter Tokens zurueck
func (m Mask) Count() int {
	n := 0
	for _, p := range m.pruned {
		if p {
			n++
		}
	}
	return n
}

// PerHead zaehlt gepruente Tokens je Head ueber alle Batches.
// Exakte Werte, im Gegensatz zum gemittelten Schaetzwert in impact.
func (m Mask) PerHead() []int {
	counts := make([]int, m.shape.Heads)
	for i, p := range m.pruned {
		if p {
			counts[(i/m.shape.SeqLen)%m.shape.Heads]++
		}
	}
	return counts
}

// Bools gibt eine Kopie der Maske im Row-Major Layout zurueck
func (m Mask) Bools() []bool {
	return slices.Clone(m.pruned)
}

// Importance gibt pro (batch, head, query) das Zeilenmaximum zurueck.
// Reduziert wird ueber die Key-Achse (3) der Dense-Ansicht.
func Importance(t *Tensor) []float64 {
	maxes, err := t.Dense().Max(3)
	if err != nil {
		slog.Debug("dense max failed, using row scan", "error", err)
		return rowMaxes(t)
	}

	switch v := maxes.Data().(type) {
	case []float64:
		return v
	case float64:
		return []float64{v}
	default:
		return rowMaxes(t)
	}
}

// rowMaxes berechnet die Zeilenmaxima direkt auf dem Backing-Slice
func rowMaxes(t *Tensor) []float64 {
	importance := make([]float64, t.shape.Rows())
	for i := range importance {
		importance[i] = floats.Max(t.row(i))
	}
	return importance
}

// MedianImportance gibt den empirischen Median der Importance-Werte zurueck
func MedianImportance(t *Tensor) float64 {
	importance := Importance(t)
	slices.Sort(importance)
	return stat.Quantile(0.5, stat.Empirical, importance, nil)
}

// Prune setzt alle Zeilen auf 0, deren Importance strikt unter threshold liegt.
//
// Die Importance wird immer aus dem unveraenderten Eingabe-Tensor berechnet.
// Das Ergebnis ist eine Kopie; t selbst wird nicht veraendert. Nicht
// gepruente Zeilen bleiben bitgleich, es findet keine Renormalisierung statt.
func Prune(t *Tensor, threshold float64) (*Tensor, Mask) {
	importance := Importance(t)

	pruned := t.Clone()
	mask := Mask{shape: t.shape, pruned: make([]bool, len(importance))}

	for i, v := range importance {
		if v < threshold {
			mask.pruned[i] = true
			clear(pruned.row(i))
		}
	}

	slog.Debug("tokens pruned", "threshold", threshold, "pruned", mask.Count(), "total", mask.Len())
	return pruned, mask
}
