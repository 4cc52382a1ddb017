// text.go - Fliesstext-Report im Stil einer Konsolen-Analyse
// Hauptfunktionen: WriteText
package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// labelWidth ist die Spaltenbreite der Speicher-Labels
const labelWidth = 24

// printer formatiert Zahlen mit Tausender-Trennzeichen
var printer = message.NewPrinter(language.English)

// WriteText schreibt den Report als lesbaren Text.
// Mit banner=false entfallen Titel und Parameterzeile.
func WriteText(w io.Writer, r *Report, banner bool) {
	m := r.Metrics

	if banner {
		fmt.Fprintln(w, "--- SpAtten: Proof-of-Concept for Dynamic Token Pruning ---")
		fmt.Fprintf(w, "Parameters: Batch Size=%d, Sequence Length=%d, Heads=%d\n\n", r.Shape.Batch, r.Shape.SeqLen, r.Shape.Heads)
	}

	fmt.Fprintf(w, "Dynamic token pruning with importance threshold = %g (seed %d)\n", r.Threshold, r.Seed)
	fmt.Fprintf(w, " -> Dense Matrix Sparsity: %.2f%%\n", r.DenseSparsity)
	printer.Fprintf(w, " -> Tokens pruned: %d out of %d total tokens across all heads (%.2f%%)\n",
		m.PrunedCount, m.TotalTokenSlots, m.PrunedPercentage)
	fmt.Fprintf(w, " -> Final Matrix Sparsity: %.2f%%\n", r.FinalSparsity)

	fmt.Fprintln(w, "\n--- Hardware Impact Analysis ---")
	fmt.Fprintln(w, "For a single attention head:")
	printer.Fprintf(w, " -> Baseline (Dense) Operations: ~%d MACs\n", m.BaselineOpsPerHead)
	printer.Fprintf(w, " -> Pruned (Sparse) Operations: ~%d MACs\n", m.PrunedOpsPerHead)
	fmt.Fprintf(w, " -> Reduction in Compute Operations: %.2f%%\n", m.OpsReductionPct)

	if r.Footprint.DType != "" {
		fmt.Fprintf(w, "\nAttention weights (%s):\n", r.Footprint.DType)
		printer.Fprintf(w, " -> %s%d bytes\n", runewidth.FillRight("Dense rows:", labelWidth), r.Footprint.DenseBytes)
		printer.Fprintf(w, " -> %s%d bytes\n", runewidth.FillRight("Rows after pruning:", labelWidth), r.Footprint.PrunedBytes)
		printer.Fprintf(w, " -> %s%d bytes\n", runewidth.FillRight("Saved:", labelWidth), r.Footprint.SavedBytes())
	}

	fmt.Fprintf(w, "\nThis compute reduction directly correlates to a ~%s reduction in off-chip DRAM access.\n", factor(m.MemoryAccessReduction))
	fmt.Fprintln(w, "Pruned rows of the Key and Value matrices no longer need to be fetched.")
}
