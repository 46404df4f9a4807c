package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/kozaktomas/facemesh-prep/internal/config"
	"github.com/spf13/cobra"
)

var landmarksCmd = &cobra.Command{
	Use:   "landmarks",
	Short: "List the landmark groups available for face filtering",
	Long: `Lists the named MediaPipe landmark groups. Landmark ids are 0-based; the
filter excludes the 1-based mesh vertices id+1.`,
	Args: cobra.NoArgs,
	RunE: runLandmarks,
}

func init() {
	rootCmd.AddCommand(landmarksCmd)

	landmarksCmd.Flags().Bool("json", false, "Output as JSON")
}

func runLandmarks(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if mustGetBool(cmd, "json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg.Landmarks.Groups)
	}

	for _, name := range cfg.Landmarks.GroupNames() {
		marker := " "
		if slices.Contains(cfg.Filter.Groups, name) {
			marker = "*"
		}
		ids := cfg.Landmarks.Groups[name]
		fmt.Printf("%s %-10s %2d landmarks: %v\n", marker, name, len(ids), ids)
	}
	fmt.Println()
	fmt.Println("* excluded by default (MESH_EXCLUDE_GROUPS)")
	return nil
}
