// cmd_run.go - Run Command: Synthese, Pruning und Report
// Hauptfunktionen: RunHandler, runSimulation
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ollama/spatten/attention"
	"github.com/ollama/spatten/impact"
	"github.com/ollama/spatten/ml"
	"github.com/ollama/spatten/report"
)

// simOptions enthaelt die Parameter eines Simulationslaufs
type simOptions struct {
	shape    attention.Shape
	seed     int64
	dtype    ml.DType
	quantize bool
}

// simOptionsFromFlags liest Shape, Seed und Datentyp aus den Flags
func simOptionsFromFlags(cmd *cobra.Command) (simOptions, error) {
	var opts simOptions
	var errs []error

	var err error
	opts.shape.SeqLen, err = cmd.Flags().GetInt("seq-len")
	errs = append(errs, err)
	opts.shape.Heads, err = cmd.Flags().GetInt("heads")
	errs = append(errs, err)
	opts.shape.Batch, err = cmd.Flags().GetInt("batch")
	errs = append(errs, err)
	opts.seed, err = cmd.Flags().GetInt64("seed")
	errs = append(errs, err)
	opts.quantize, err = cmd.Flags().GetBool("quantize")
	errs = append(errs, err)

	dtype, err := cmd.Flags().GetString("dtype")
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return opts, errors.New("error retrieving flags")
	}

	if opts.dtype, err = ml.ParseDType(dtype); err != nil {
		return opts, err
	}
	if err := opts.shape.Validate(); err != nil {
		return opts, err
	}

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	return opts, nil
}

// synthesize erzeugt den dichten Tensor und rundet ihn optional auf dtype
func synthesize(opts simOptions) (*attention.Tensor, error) {
	rng := rand.New(rand.NewSource(opts.seed))
	dense, err := attention.Synthesize(rng, opts.shape.SeqLen, opts.shape.Heads, opts.shape.Batch)
	if err != nil {
		return nil, fmt.Errorf("synthesize attention: %w", err)
	}

	if opts.quantize {
		if dense, err = attention.Quantize(dense, opts.dtype); err != nil {
			return nil, err
		}
	}

	slog.Debug("attention tensor ready", "shape", opts.shape.Dims(), "seed", opts.seed, "dtype", opts.dtype, "quantized", opts.quantize)
	return dense, nil
}

// parseThreshold akzeptiert eine Zahl oder "median"
func parseThreshold(s string) (value float64, median bool, err error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "median") {
		return 0, true, nil
	}

	value, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid threshold %q", s)
	}
	return value, false, nil
}

// runSimulation fuehrt Synthese, Pruning und Abschaetzung aus
func runSimulation(opts simOptions, threshold float64, median bool) (*report.Report, error) {
	dense, err := synthesize(opts)
	if err != nil {
		return nil, err
	}

	if median {
		threshold = attention.MedianImportance(dense)
	}

	pruned, mask := attention.Prune(dense, threshold)

	r := report.New(opts.shape, threshold, opts.seed)
	r.DenseSparsity = attention.Sparsity(dense)
	r.FinalSparsity = attention.Sparsity(pruned)
	r.Metrics = impact.Estimate(mask)
	if r.Footprint, err = impact.MemoryFootprint(mask, opts.dtype); err != nil {
		return nil, err
	}

	slog.Debug("simulation finished", "run", r.RunID, "pruned", r.Metrics.PrunedCount, "sparsity", r.FinalSparsity)
	return r, nil
}

// RunHandler - Fuehrt einen Simulationslauf aus und gibt den Report aus
func RunHandler(cmd *cobra.Command, args []string) error {
	opts, err := simOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	thresholdFlag, errThreshold := cmd.Flags().GetString("threshold")
	format, errFormat := cmd.Flags().GetString("format")
	noBanner, errBanner := cmd.Flags().GetBool("no-banner")
	if err := errors.Join(errThreshold, errFormat, errBanner); err != nil {
		return errors.New("error retrieving flags")
	}

	threshold, median, err := parseThreshold(thresholdFlag)
	if err != nil {
		return err
	}

	r, err := runSimulation(opts, threshold, median)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "text":
		report.WriteText(w, r, !noBanner)
	case "table":
		report.WriteMetricsTable(w, r)
	case "json":
		return report.WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
