// synthesize.go - Erzeugung synthetischer Attention-Tensoren
// Hauptfunktionen: Synthesize, Softmax
package attention

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/ollama/spatten/logutil"
)

// ErrNoRandSource wird zurueckgegeben, wenn kein Zufallsgenerator uebergeben wurde
var ErrNoRandSource = errors.New("attention: nil random source")

// Synthesize erzeugt einen dichten, zeilenweise normalisierten Attention-Tensor
// der Form (batchSize, numHeads, seqLen, seqLen).
//
// Rohwerte sind standardnormalverteilt und stammen ausschliesslich aus rng;
// gleicher Seed ergibt denselben Tensor. Jede Zeile wird per Softmax
// normalisiert, alle Werte sind damit strikt positiv.
func Synthesize(rng *rand.Rand, seqLen, numHeads, batchSize int) (*Tensor, error) {
	if rng == nil {
		return nil, ErrNoRandSource
	}

	t, err := NewTensor(Shape{Batch: batchSize, Heads: numHeads, SeqLen: seqLen})
	if err != nil {
		return nil, err
	}

	for i := range t.data {
		t.data[i] = rng.NormFloat64()
	}

	for i := range t.shape.Rows() {
		Softmax(t.row(i))
	}

	logutil.Trace("attention tensor synthesized", "shape", t.shape.Dims())
	return t, nil
}

// Softmax normalisiert row in-place, sodass die Summe 1 ergibt.
// Das Maximum wird vorher abgezogen (numerische Stabilitaet).
func Softmax(row []float64) {
	if len(row) == 0 {
		return
	}

	maxVal := floats.Max(row)
	for i, v := range row {
		row[i] = math.Exp(v - maxVal)
	}
	floats.Scale(1/floats.Sum(row), row)
}
