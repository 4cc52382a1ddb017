package ml

import (
	"errors"
	"testing"
)

func TestParseDType(t *testing.T) {
	cases := []struct {
		in   string
		want DType
		size int
	}{
		{"", DTypeF32, 4},
		{"f32", DTypeF32, 4},
		{"FP16", DTypeF16, 2},
		{" bf16 ", DTypeBF16, 2},
	}

	for _, tt := range cases {
		got, err := ParseDType(tt.in)
		if err != nil {
			t.Fatalf("ParseDType(%q) Fehler: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDType(%q) = %v, erwartet %v", tt.in, got, tt.want)
		}
		if got.Size() != tt.size {
			t.Errorf("%v.Size() = %d, erwartet %d", got, got.Size(), tt.size)
		}
	}
}

func TestParseDTypeUnknown(t *testing.T) {
	_, err := ParseDType("q4_0")
	if !errors.Is(err, ErrUnknownDType) {
		t.Errorf("erwartet ErrUnknownDType, bekommen %v", err)
	}
	if DTypeOther.Size() != 0 {
		t.Errorf("DTypeOther.Size() = %d, erwartet 0", DTypeOther.Size())
	}
}
