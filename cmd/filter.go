package cmd

import (
	"fmt"
	"strings"

	"github.com/kozaktomas/facemesh-prep/internal/config"
	"github.com/kozaktomas/facemesh-prep/internal/objmesh"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Remove faces whose vertices are all excluded landmarks",
	Long: `Removes every face whose corners all reference excluded vertices. By default
the mouth and both eye landmark groups are excluded, which opens the mouth
and eyes of the mediapipe478 mesh. Vertex lines are kept unchanged, and
retained face lines are copied verbatim after the vertices.

Examples:
  # Filter the default mesh from the data directory
  facemesh-prep filter

  # Only open the mouth, overwriting the input file
  facemesh-prep filter --input face.obj --in-place --groups mouth

  # Exclude explicit 1-based vertex indices instead of groups
  facemesh-prep filter --groups "" --exclude 1,2,3`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().String("input", "", "Input mesh file (default from MESH_FILTER_INPUT)")
	filterCmd.Flags().String("output", "", "Output mesh file (default from MESH_FILTER_OUTPUT)")
	filterCmd.Flags().Bool("in-place", false, "Overwrite the input file")
	filterCmd.Flags().StringSlice("groups", nil, "Landmark groups to exclude (default from MESH_EXCLUDE_GROUPS)")
	filterCmd.Flags().IntSlice("exclude", nil, "Additional 1-based vertex indices to exclude")
	filterCmd.MarkFlagsMutuallyExclusive("in-place", "output")
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	input := stringFlagOr(cmd, "input", cfg.Filter.InputPath)
	output := stringFlagOr(cmd, "output", cfg.Filter.OutputPath)
	if mustGetBool(cmd, "in-place") {
		output = ""
	}

	groups := cfg.Filter.Groups
	if cmd.Flags().Changed("groups") {
		groups = mustGetStringSlice(cmd, "groups")
	}

	excluded, err := cfg.Landmarks.ExcludedIndices(groups)
	if err != nil {
		return err
	}
	excluded = append(excluded, mustGetIntSlice(cmd, "exclude")...)

	_, err = filterMesh(input, output, excluded)
	return err
}

// filterMesh runs the face filter and prints a report. An empty output
// overwrites the input.
func filterMesh(input, output string, excluded []int) (objmesh.FilterResult, error) {
	if output == "" {
		output = input
	}

	fmt.Println("Mesh face filter")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Input file: %s\n", input)
	fmt.Printf("Output file: %s\n", output)
	fmt.Printf("Vertex indices to check: %v\n", excluded)
	fmt.Println()
	fmt.Println("Processing mesh file...")

	in, err := openInput(input, "Filtering faces")
	if err != nil {
		return objmesh.FilterResult{}, inputError(input, err)
	}
	fm, err := objmesh.FilterReader(in, objmesh.NewExclusionSet(excluded))
	// Input must be closed before the output is written, output may be the same file.
	closeErr := in.Close()
	if err != nil {
		return objmesh.FilterResult{}, fmt.Errorf("error processing file: %w", err)
	}
	if closeErr != nil {
		return objmesh.FilterResult{}, fmt.Errorf("failed to close %s: %w", input, closeErr)
	}

	if err := fm.Save(output); err != nil {
		return objmesh.FilterResult{}, err
	}

	res := fm.Result()
	fmt.Println()
	fmt.Println("Results:")
	fmt.Printf("Vertices in file: %d\n", res.VerticesKept)
	fmt.Printf("Faces kept: %d\n", res.FacesKept)
	fmt.Printf("Faces removed: %d\n", res.FacesRemoved)
	fmt.Printf("Output saved to: %s\n", output)
	fmt.Println()
	if res.FacesRemoved > 0 {
		fmt.Printf("Removed %d faces whose vertices are all excluded.\n", res.FacesRemoved)
	} else {
		fmt.Println("No faces were removed. No face has all of its vertices excluded.")
	}

	return res, nil
}
