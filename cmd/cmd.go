// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ollama/spatten/envconfig"
	"github.com/ollama/spatten/logutil"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "spatten",
		Short:         "Simulate dynamic token pruning for attention",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	runCmd := newRunCmd()
	sweepCmd := newSweepCmd()
	envCmd := newEnvCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	simEnvs := []envconfig.EnvVar{
		envVars["SPATTEN_DEBUG"],
		envVars["SPATTEN_SEQ_LEN"],
		envVars["SPATTEN_NUM_HEADS"],
		envVars["SPATTEN_BATCH_SIZE"],
		envVars["SPATTEN_SEED"],
		envVars["SPATTEN_DTYPE"],
	}

	appendEnvDocs(runCmd, append(simEnvs, envVars["SPATTEN_THRESHOLD"], envVars["SPATTEN_NO_BANNER"]))
	appendEnvDocs(sweepCmd, simEnvs)

	rootCmd.AddCommand(
		runCmd,
		sweepCmd,
		envCmd,
	)

	return rootCmd
}
