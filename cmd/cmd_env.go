// cmd_env.go - Env Command
// Hauptfunktionen: EnvHandler
package cmd

import (
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ollama/spatten/envconfig"
	"github.com/ollama/spatten/report"
)

// EnvHandler - Listet alle Environment-Variablen mit aktuellem Wert auf
func EnvHandler(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return errors.New("error retrieving flags")
	}

	w := cmd.OutOrStdout()
	switch format {
	case "table":
	case "json":
		return report.WriteJSON(w, envconfig.Values())
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	var data [][]string
	for pair := envconfig.Ordered().Oldest(); pair != nil; pair = pair.Next() {
		v := pair.Value
		data = append(data, []string{v.Name, fmt.Sprintf("%v", v.Value), v.Description})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
