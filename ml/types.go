// types.go - Datentypen fuer Attention-Tensoren
// Dieses Modul definiert DType inklusive Byte-Groesse und Parsing.
package ml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDType wird bei unbekannten Datentyp-Namen zurueckgegeben
var ErrUnknownDType = errors.New("unknown dtype")

// DType represents the storage type of attention weights.
type DType int

const (
	DTypeOther DType = iota
	DTypeF32
	DTypeF16
	DTypeBF16
)

// Size gibt die Anzahl Bytes pro Element zurueck
func (t DType) Size() int {
	switch t {
	case DTypeF32:
		return 4
	case DTypeF16, DTypeBF16:
		return 2
	default:
		return 0
	}
}

func (t DType) String() string {
	switch t {
	case DTypeF32:
		return "f32"
	case DTypeF16:
		return "f16"
	case DTypeBF16:
		return "bf16"
	default:
		return "other"
	}
}

// ParseDType wandelt einen Namen (f32, f16, bf16) in einen DType um
// Leerer String ergibt f32
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "f32", "float32":
		return DTypeF32, nil
	case "f16", "float16", "fp16":
		return DTypeF16, nil
	case "bf16", "bfloat16":
		return DTypeBF16, nil
	default:
		return DTypeOther, fmt.Errorf("%w: %q", ErrUnknownDType, s)
	}
}
