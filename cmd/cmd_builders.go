// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newRunCmd, newSweepCmd, newEnvCmd
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ollama/spatten/envconfig"
)

// defaultThresholds ist die Schwellwert-Liste fuer sweep ohne --thresholds
const defaultThresholds = "0,0.01,0.02,0.03,0.05,0.075,0.1,0.2"

// registerSimFlags - Flags fuer Tensor-Shape, Seed und Datentyp.
// Defaults kommen aus der Umgebung.
func registerSimFlags(cmd *cobra.Command) {
	cmd.Flags().Int("seq-len", int(envconfig.SeqLen()), "Number of tokens per sequence")
	cmd.Flags().Int("heads", int(envconfig.NumHeads()), "Number of attention heads")
	cmd.Flags().Int("batch", int(envconfig.BatchSize()), "Number of sequences per batch")
	cmd.Flags().Int64("seed", envconfig.Seed(), "Seed for the synthetic attention tensor (0 = time based)")
	cmd.Flags().String("dtype", envconfig.DType(), "Storage type for memory estimates: f32, f16, bf16")
	cmd.Flags().Bool("quantize", false, "Round attention weights to --dtype before pruning")
}

// newRunCmd - Erstellt den run Command
func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Synthesize, prune and report on one attention tensor",
		Args:  cobra.NoArgs,
		RunE:  RunHandler,
	}

	registerSimFlags(runCmd)
	runCmd.Flags().String("threshold", strconv.FormatFloat(envconfig.Threshold(), 'g', -1, 64), "Importance threshold, or \"median\"")
	runCmd.Flags().String("format", "text", "Output format: text, table, json")
	runCmd.Flags().Bool("no-banner", envconfig.NoBanner(), "Don't print the report banner")

	return runCmd
}

// newSweepCmd - Erstellt den sweep Command
func newSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Prune one attention tensor at several thresholds",
		Args:  cobra.NoArgs,
		RunE:  SweepHandler,
	}

	registerSimFlags(sweepCmd)
	sweepCmd.Flags().String("thresholds", defaultThresholds, "Comma separated importance thresholds")
	sweepCmd.Flags().String("format", "table", "Output format: table, json")

	return sweepCmd
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show configuration from environment variables",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}

	envCmd.Flags().String("format", "table", "Output format: table, json")

	return envCmd
}
