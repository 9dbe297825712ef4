package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/csrd-engine/internal/engine"
)

var (
	reportInput  string
	reportFormat string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Calculate the full disclosure report",
	Long:  "Runs every module against a JSON input document and prints all results in canonical report order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadModuleInput(reportInput)
		if err != nil {
			return err
		}

		results := engine.AggregateResults(in)

		warnings := 0
		for _, r := range results {
			warnings += len(r.Result.Warnings)
		}
		zap.L().Info("report calculated",
			zap.Int("modules", len(results)),
			zap.Int("warnings", warnings),
		)

		out := os.Stdout
		if reportOutput != "" {
			f, err := os.Create(reportOutput)
			if err != nil {
				return eris.Wrapf(err, "create output %s", reportOutput)
			}
			defer f.Close()
			out = f
		}

		switch reportFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(results)
		default:
			return eris.Errorf("unknown format %q (expected json or yaml)", reportFormat)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "-", "path to JSON input document (- for stdin)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "json", "output format: json or yaml")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "output file (default stdout)")
	rootCmd.AddCommand(reportCmd)
}
