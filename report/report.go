// MODUL: report
// ZWECK: Aufbereitung von Pruning-Ergebnissen fuer die Ausgabe
// INPUT: Shape, Schwelle, Sparsity, impact.Metrics, impact.Footprint
// OUTPUT: Report-Struktur, JSON
// NEBENEFFEKTE: keine (schreibt nur auf den uebergebenen Writer)
// ABHAENGIGKEITEN: google/uuid, encoding/json
// HINWEISE: Text- und Tabellen-Ausgabe siehe text.go und table.go

package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ollama/spatten/attention"
	"github.com/ollama/spatten/impact"
)

// Report enthaelt alle Ergebnisse eines Pruning-Laufs
type Report struct {
	RunID         string           `json:"run_id"`
	Timestamp     time.Time        `json:"timestamp"`
	Seed          int64            `json:"seed"`
	Shape         attention.Shape  `json:"shape"`
	Threshold     float64          `json:"threshold"`
	DenseSparsity float64          `json:"dense_sparsity"`
	FinalSparsity float64          `json:"final_sparsity"`
	Metrics       impact.Metrics   `json:"metrics"`
	Footprint     impact.Footprint `json:"footprint"`
}

// New erstellt einen Report mit neuer Run-ID
func New(shape attention.Shape, threshold float64, seed int64) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
		Seed:      seed,
		Shape:     shape,
		Threshold: threshold,
	}
}

// WriteJSON schreibt v eingerueckt als JSON
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
