// config_features.go - Simulations-Parameter
//
// Dieses Modul enthaelt:
// - Tensor-Shape (Sequenzlaenge, Heads, Batch)
// - Speicher-Datentyp fuer die Footprint-Abschaetzung
package envconfig

// =============================================================================
// Tensor-Shape
// =============================================================================

// Defaults entsprechen BERT-Base
var (
	// SeqLen setzt die Anzahl Tokens pro Sequenz
	// Konfigurierbar via SPATTEN_SEQ_LEN
	SeqLen = Uint("SPATTEN_SEQ_LEN", 256)

	// NumHeads setzt die Anzahl paralleler Attention-Heads
	// Konfigurierbar via SPATTEN_NUM_HEADS
	NumHeads = Uint("SPATTEN_NUM_HEADS", 12)

	// BatchSize setzt die Anzahl gleichzeitig simulierter Sequenzen
	// Konfigurierbar via SPATTEN_BATCH_SIZE
	BatchSize = Uint("SPATTEN_BATCH_SIZE", 1)
)

// =============================================================================
// Speicher
// =============================================================================

var (
	// DType ist der Speichertyp der Attention-Gewichte (f32, f16, bf16)
	DType = String("SPATTEN_DTYPE")

	// NoBanner unterdrueckt die Kopfzeile im Text-Report
	NoBanner = Bool("SPATTEN_NO_BANNER")
)
