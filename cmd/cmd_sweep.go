// cmd_sweep.go - Sweep Command: mehrere Schwellen auf einem Tensor
// Hauptfunktionen: SweepHandler, parseThresholds
package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ollama/spatten/impact"
	"github.com/ollama/spatten/report"
)

// parseThresholds parst eine komma-separierte Liste und sortiert sie aufsteigend
func parseThresholds(s string) ([]float64, error) {
	var thresholds []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold %q", part)
		}
		thresholds = append(thresholds, v)
	}

	if len(thresholds) == 0 {
		return nil, errors.New("no thresholds given")
	}

	slices.Sort(thresholds)
	return thresholds, nil
}

// SweepHandler - Prunt einen Tensor fuer jede Schwelle und gibt eine Tabelle aus
func SweepHandler(cmd *cobra.Command, args []string) error {
	opts, err := simOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	list, errList := cmd.Flags().GetString("thresholds")
	format, errFormat := cmd.Flags().GetString("format")
	if err := errors.Join(errList, errFormat); err != nil {
		return errors.New("error retrieving flags")
	}

	thresholds, err := parseThresholds(list)
	if err != nil {
		return err
	}

	dense, err := synthesize(opts)
	if err != nil {
		return err
	}

	points := impact.Sweep(dense, thresholds)

	w := cmd.OutOrStdout()
	switch format {
	case "table":
		fmt.Fprintf(w, "seed %d, shape %v\n\n", opts.seed, opts.shape.Dims())
		report.WriteSweepTable(w, points)
	case "json":
		return report.WriteJSON(w, points)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
