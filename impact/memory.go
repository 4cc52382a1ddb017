// memory.go - Speicherbedarf der Attention-Zeilen vor und nach dem Pruning
// Hauptfunktionen: MemoryFootprint
package impact

import (
	"fmt"

	"github.com/ollama/spatten/attention"
	"github.com/ollama/spatten/ml"
)

// Footprint beschreibt den Speicherbedarf der Attention-Gewichte in Bytes
type Footprint struct {
	DType       string `json:"dtype"`
	DenseBytes  int64  `json:"dense_bytes"`
	PrunedBytes int64  `json:"pruned_bytes"`
}

// SavedBytes gibt die eingesparten Bytes zurueck
func (f Footprint) SavedBytes() int64 {
	return f.DenseBytes - f.PrunedBytes
}

// MemoryFootprint berechnet den Speicherbedarf aller Zeilen bzw. nur der
// nicht gepruenten Zeilen fuer den Speichertyp dtype.
func MemoryFootprint(mask attention.Mask, dtype ml.DType) (Footprint, error) {
	size := int64(dtype.Size())
	if size == 0 {
		return Footprint{}, fmt.Errorf("memory footprint: %w: %v", ml.ErrUnknownDType, dtype)
	}

	s := mask.Shape()
	rowBytes := int64(s.SeqLen) * size
	return Footprint{
		DType:       dtype.String(),
		DenseBytes:  int64(mask.Len()) * rowBytes,
		PrunedBytes: int64(mask.Len()-mask.Count()) * rowBytes,
	}, nil
}
