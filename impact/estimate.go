// MODUL: estimate
// ZWECK: Abschaetzung von Compute- und Speicherzugriffs-Einsparungen durch Pruning
// INPUT: Prune-Maske bzw. Token-Zaehler und Shape
// OUTPUT: Metrics-Record
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: attention
// HINWEISE: Aktive Tokens pro Head sind ein Mittelwert ueber alle Heads

package impact

import (
	"encoding/json"
	"math"

	"github.com/ollama/spatten/attention"
)

// Metrics fasst die abgeleiteten Kennzahlen eines Pruning-Laufs zusammen.
// MACs (Multiply-Accumulate) dienen als Proxy fuer Compute-Kosten.
type Metrics struct {
	TotalTokenSlots int `json:"total_token_slots"`
	PrunedCount     int `json:"pruned_count"`

	PrunedPercentage      float64 `json:"pruned_percentage"`
	ActiveTokensPerHead   float64 `json:"active_tokens_per_head"`
	BaselineOpsPerHead    int     `json:"baseline_ops_per_head"`
	PrunedOpsPerHead      int     `json:"pruned_ops_per_head"`
	OpsReductionPct       float64 `json:"ops_reduction_pct"`
	MemoryAccessReduction float64 `json:"memory_access_reduction_factor"`

	// PrunedPerHead sind die exakten Zaehler je Head; nur informativ,
	// die Schaetzwerte oben verwenden den Mittelwert.
	PrunedPerHead []int `json:"pruned_per_head,omitempty"`
}

// Estimate berechnet die Kennzahlen aus einer Prune-Maske
func Estimate(mask attention.Mask) Metrics {
	s := mask.Shape()
	m := Compute(mask.Len(), mask.Count(), s.Heads, s.SeqLen)
	m.PrunedPerHead = mask.PerHead()
	return m
}

// Compute berechnet die Kennzahlen aus reinen Zaehlern.
//
// Die Anzahl aktiver Tokens pro Head wird ueber alle Heads gemittelt.
// Ist nach dem Pruning keine Operation mehr uebrig, ist der
// Speicherzugriffs-Faktor +Inf.
func Compute(totalTokenSlots, prunedCount, numHeads, seqLen int) Metrics {
	m := Metrics{
		TotalTokenSlots:    totalTokenSlots,
		PrunedCount:        prunedCount,
		BaselineOpsPerHead: seqLen * seqLen,
	}

	if totalTokenSlots > 0 {
		m.PrunedPercentage = 100 * float64(prunedCount) / float64(totalTokenSlots)
	}
	if numHeads > 0 {
		m.ActiveTokensPerHead = float64(totalTokenSlots-prunedCount) / float64(numHeads)
	}

	m.PrunedOpsPerHead = int(math.Floor(m.ActiveTokensPerHead * float64(seqLen)))

	if m.BaselineOpsPerHead > 0 {
		m.OpsReductionPct = 100 * float64(m.BaselineOpsPerHead-m.PrunedOpsPerHead) / float64(m.BaselineOpsPerHead)
	}

	if m.PrunedOpsPerHead == 0 {
		m.MemoryAccessReduction = math.Inf(1)
	} else {
		m.MemoryAccessReduction = float64(m.BaselineOpsPerHead) / float64(m.PrunedOpsPerHead)
	}

	return m
}

// MarshalJSON kodiert einen unendlichen Speicherzugriffs-Faktor als "+Inf",
// da JSON keine Unendlich-Werte kennt.
func (m Metrics) MarshalJSON() ([]byte, error) {
	type alias Metrics
	var factor any = m.MemoryAccessReduction
	if math.IsInf(m.MemoryAccessReduction, 1) {
		factor = "+Inf"
	}

	return json.Marshal(struct {
		alias
		MemoryAccessReduction any `json:"memory_access_reduction_factor"`
	}{alias(m), factor})
}

// UnmarshalJSON liest die von MarshalJSON erzeugte Form wieder ein,
// inklusive "+Inf" als Speicherzugriffs-Faktor.
func (m *Metrics) UnmarshalJSON(b []byte) error {
	type alias Metrics
	aux := struct {
		*alias
		MemoryAccessReduction json.RawMessage `json:"memory_access_reduction_factor"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	switch string(aux.MemoryAccessReduction) {
	case "", "null":
		m.MemoryAccessReduction = 0
	case `"+Inf"`:
		m.MemoryAccessReduction = math.Inf(1)
	default:
		return json.Unmarshal(aux.MemoryAccessReduction, &m.MemoryAccessReduction)
	}
	return nil
}
