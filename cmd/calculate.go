package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/csrd-engine/internal/engine"
)

var calculateInput string

var calculateCmd = &cobra.Command{
	Use:   "calculate <module-id>",
	Short: "Calculate a single disclosure module",
	Long:  "Runs one module calculator (e.g. A1, B7, D2) against a JSON input document and prints the result with value, trace and warnings.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := engine.ModuleID(args[0])

		in, err := loadModuleInput(calculateInput)
		if err != nil {
			return err
		}

		res, ok := engine.RunModule(id, in)
		if !ok {
			return eris.Errorf("unknown module id %q", args[0])
		}

		zap.L().Info("module calculated",
			zap.String("module", string(id)),
			zap.Float64("value", res.Value),
			zap.Int("warnings", len(res.Warnings)),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(engine.AggregatedResult{
			ModuleID: id,
			Title:    engine.Title(id),
			Result:   res,
		})
	},
}

func init() {
	calculateCmd.Flags().StringVar(&calculateInput, "input", "-", "path to JSON input document (- for stdin)")
	rootCmd.AddCommand(calculateCmd)
}
