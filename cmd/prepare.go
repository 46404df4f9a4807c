package cmd

import (
	"fmt"

	"github.com/kozaktomas/facemesh-prep/internal/config"
	"github.com/spf13/cobra"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Run the filter and then the converter with configured paths",
	Long: `Runs "filter" followed by "convert" using the paths from the environment
(or .env). Both steps use their own configured input and output, so
MESH_CONVERT_INPUT must point at the filtered mesh for the JSON to reflect
the filter result.`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	excluded, err := cfg.Landmarks.ExcludedIndices(cfg.Filter.Groups)
	if err != nil {
		return err
	}

	if _, err := filterMesh(cfg.Filter.InputPath, cfg.Filter.OutputPath, excluded); err != nil {
		return fmt.Errorf("filter step failed: %w", err)
	}
	fmt.Println()

	if err := convertMesh(cfg.Convert.InputPath, cfg.Convert.OutputPath, false); err != nil {
		return fmt.Errorf("convert step failed: %w", err)
	}
	return nil
}
