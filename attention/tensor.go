// MODUL: tensor
// ZWECK: Dichter 4D-Attention-Tensor (batch, head, query, key)
// INPUT: Shape, optional vorhandene Werte
// OUTPUT: Tensor mit zeilenweisem Zugriff
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: gonum/floats, pdevine/tensor
// HINWEISE: Row-Major Layout, eine Zeile = alle Keys eines Query-Tokens

package attention

import (
	"errors"
	"fmt"

	"github.com/pdevine/tensor"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidShape wird bei nicht-positiven Dimensionen zurueckgegeben
var ErrInvalidShape = errors.New("invalid attention shape")

// Shape beschreibt die Dimensionen eines Attention-Tensors.
// Die letzten beiden Achsen haben beide die Laenge SeqLen.
type Shape struct {
	Batch  int `json:"batch_size"`
	Heads  int `json:"num_heads"`
	SeqLen int `json:"seq_len"`
}

// Validate prueft, dass alle Dimensionen >= 1 sind
func (s Shape) Validate() error {
	if s.Batch < 1 || s.Heads < 1 || s.SeqLen < 1 {
		return fmt.Errorf("%w: batch=%d heads=%d seq_len=%d", ErrInvalidShape, s.Batch, s.Heads, s.SeqLen)
	}
	return nil
}

// Rows gibt die Anzahl Token-Slots (batch*heads*seq_len) zurueck
func (s Shape) Rows() int {
	return s.Batch * s.Heads * s.SeqLen
}

// Elements gibt die Gesamtzahl der Eintraege zurueck
func (s Shape) Elements() int {
	return s.Rows() * s.SeqLen
}

// Dims gibt die Shape als Slice zurueck
func (s Shape) Dims() []int {
	return []int{s.Batch, s.Heads, s.SeqLen, s.SeqLen}
}

// Tensor ist ein dichter Attention-Tensor.
// Werte werden nach der Erzeugung nicht mehr veraendert; Operationen
// wie Prune arbeiten auf einer Kopie.
type Tensor struct {
	shape Shape
	data  []float64
}

// NewTensor erstellt einen mit Nullen gefuellten Tensor
func NewTensor(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor{shape: shape, data: make([]float64, shape.Elements())}, nil
}

// FromData erstellt einen Tensor aus vorhandenen Werten im Row-Major Layout.
// Die Werte werden kopiert.
func FromData(shape Shape, data []float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Elements() {
		return nil, fmt.Errorf("%w: %d values for %v", ErrInvalidShape, len(data), shape.Dims())
	}
	return &Tensor{shape: shape, data: append([]float64(nil), data...)}, nil
}

// Shape gibt die Dimensionen zurueck
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Len gibt die Anzahl Eintraege zurueck
func (t *Tensor) Len() int {
	return len(t.data)
}

// At gibt den Wert an Position (b, h, q, k) zurueck
func (t *Tensor) At(b, h, q, k int) float64 {
	return t.data[t.rowIndex(b, h, q)*t.shape.SeqLen+k]
}

// Row gibt eine Kopie der Attention-Zeile von Query-Token q zurueck
func (t *Tensor) Row(b, h, q int) []float64 {
	return append([]float64(nil), t.row(t.rowIndex(b, h, q))...)
}

// Data gibt eine Kopie aller Werte im Row-Major Layout zurueck
func (t *Tensor) Data() []float64 {
	return append([]float64(nil), t.data...)
}

// Clone erstellt eine unabhaengige Kopie
func (t *Tensor) Clone() *Tensor {
	return &Tensor{shape: t.shape, data: append([]float64(nil), t.data...)}
}

// RowSums gibt die Summe jeder Zeile entlang der Key-Achse zurueck
func (t *Tensor) RowSums() []float64 {
	sums := make([]float64, t.shape.Rows())
	for i := range sums {
		sums[i] = floats.Sum(t.row(i))
	}
	return sums
}

// Dense konvertiert in einen gorgonia-kompatiblen Dense-Tensor
func (t *Tensor) Dense() *tensor.Dense {
	return tensor.New(tensor.WithShape(t.shape.Dims()...), tensor.WithBacking(t.Data()))
}

// rowIndex berechnet den flachen Zeilenindex fuer (b, h, q)
func (t *Tensor) rowIndex(b, h, q int) int {
	return (b*t.shape.Heads+h)*t.shape.SeqLen + q
}

// row gibt die Zeile i ohne Kopie zurueck
func (t *Tensor) row(i int) []float64 {
	n := t.shape.SeqLen
	return t.data[i*n : (i+1)*n : (i+1)*n]
}
