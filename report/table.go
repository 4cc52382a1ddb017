// table.go - Tabellen-Ausgabe fuer Metriken und Schwellwert-Sweeps
// Hauptfunktionen: WriteMetricsTable, WriteSweepTable
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ollama/spatten/impact"
)

// newTable erstellt einen Writer im Stil von "ollama list"
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// WriteMetricsTable schreibt die Kennzahlen eines Reports als Tabelle
func WriteMetricsTable(w io.Writer, r *Report) {
	m := r.Metrics

	table := newTable(w, []string{"METRIC", "VALUE"})
	table.AppendBulk([][]string{
		{"threshold", strconv.FormatFloat(r.Threshold, 'g', -1, 64)},
		{"token slots", strconv.Itoa(m.TotalTokenSlots)},
		{"pruned tokens", strconv.Itoa(m.PrunedCount)},
		{"pruned", percent(m.PrunedPercentage)},
		{"final sparsity", percent(r.FinalSparsity)},
		{"active tokens/head", fmt.Sprintf("%.2f", m.ActiveTokensPerHead)},
		{"baseline MACs/head", strconv.Itoa(m.BaselineOpsPerHead)},
		{"pruned MACs/head", strconv.Itoa(m.PrunedOpsPerHead)},
		{"compute reduction", percent(m.OpsReductionPct)},
		{"DRAM access reduction", factor(m.MemoryAccessReduction)},
	})
	table.Render()
}

// WriteSweepTable schreibt einen Schwellwert-Sweep als Tabelle
func WriteSweepTable(w io.Writer, points []impact.SweepPoint) {
	table := newTable(w, []string{"THRESHOLD", "PRUNED", "SPARSITY", "MACS/HEAD", "REDUCTION", "DRAM"})
	for _, p := range points {
		table.Append([]string{
			strconv.FormatFloat(p.Threshold, 'g', -1, 64),
			fmt.Sprintf("%d/%d", p.Metrics.PrunedCount, p.Metrics.TotalTokenSlots),
			percent(p.Sparsity),
			strconv.Itoa(p.Metrics.PrunedOpsPerHead),
			percent(p.Metrics.OpsReductionPct),
			factor(p.Metrics.MemoryAccessReduction),
		})
	}
	table.Render()

	fmt.Fprintf(w, "\nmean compute reduction: %s\n", percent(impact.MeanOpsReduction(points)))
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// factor formatiert den Reduktionsfaktor, unendlich als "inf" ohne Suffix
func factor(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1fx", v)
}
