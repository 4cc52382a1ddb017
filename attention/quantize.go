// quantize.go - Rundung von Attention-Gewichten auf Speicher-Datentypen
// Hauptfunktionen: Quantize
package attention

import (
	"fmt"

	bfloat16 "github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/ollama/spatten/ml"
)

// Quantize gibt eine Kopie von t zurueck, deren Werte auf dtype gerundet sind.
// Sehr kleine Gewichte koennen dabei exakt 0 werden und erhoehen die Sparsity.
func Quantize(t *Tensor, dtype ml.DType) (*Tensor, error) {
	f32s := make([]float32, len(t.data))
	for i, v := range t.data {
		f32s[i] = float32(v)
	}

	switch dtype {
	case ml.DTypeF32:
	case ml.DTypeF16:
		for i, v := range f32s {
			f32s[i] = float16.Fromfloat32(v).Float32()
		}
	case ml.DTypeBF16:
		f32s = bfloat16.DecodeFloat32(bfloat16.EncodeFloat32(f32s))
	default:
		return nil, fmt.Errorf("quantize: %w: %v", ml.ErrUnknownDType, dtype)
	}

	out := &Tensor{shape: t.shape, data: make([]float64, len(f32s))}
	for i, v := range f32s {
		out.data[i] = float64(v)
	}
	return out, nil
}
