package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kozaktomas/facemesh-prep/internal/config"
	"github.com/kozaktomas/facemesh-prep/internal/objmesh"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a mesh description into flat JSON arrays",
	Long: `Reads vertex ("v x y z") and triangle ("f a b c") lines and writes a JSON
object with two arrays: "vertices" (x,y,z triples) and "indices" (0-based
triangle corners). Faces with more than three corners and vertex lines
without exactly three coordinates are skipped.

Examples:
  # Convert the default mesh from the data directory
  facemesh-prep convert

  # Convert a specific file and print the JSON
  facemesh-prep convert --input face.obj --output -`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("input", "", "Input mesh file (default from MESH_CONVERT_INPUT)")
	convertCmd.Flags().String("output", "", "Output JSON file, '-' for stdout (default from MESH_CONVERT_OUTPUT)")
	convertCmd.Flags().Bool("stats", false, "Print per-line parse statistics")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	input := stringFlagOr(cmd, "input", cfg.Convert.InputPath)
	output := stringFlagOr(cmd, "output", cfg.Convert.OutputPath)

	return convertMesh(input, output, mustGetBool(cmd, "stats"))
}

func convertMesh(input, output string, showStats bool) error {
	in, err := openInput(input, "Parsing mesh")
	if err != nil {
		return inputError(input, err)
	}
	mesh, stats, err := objmesh.ParseReader(in)
	// Input must be closed before the output is written.
	closeErr := in.Close()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", input, err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", input, closeErr)
	}

	var summary io.Writer = os.Stdout
	if output == "-" {
		summary = os.Stderr
		if err := objmesh.EncodeJSON(os.Stdout, mesh); err != nil {
			return err
		}
		fmt.Println()
	} else if err := objmesh.WriteJSON(mesh, output); err != nil {
		return err
	}

	fmt.Fprintf(summary, "Converted %d vertices and %d indices\n", mesh.VertexCount(), len(mesh.Indices))
	if showStats {
		printParseStats(summary, stats)
	}
	return nil
}

func printParseStats(w io.Writer, s *objmesh.ParseStats) {
	fmt.Fprintf(w, "  Lines:                %d\n", s.Lines)
	fmt.Fprintf(w, "  Vertices kept:        %d\n", s.VerticesKept)
	fmt.Fprintf(w, "  Triangles kept:       %d\n", s.FacesKept)
	fmt.Fprintf(w, "  Non-triangle faces:   %d\n", s.SkippedNonTriangle)
	fmt.Fprintf(w, "  Malformed vertices:   %d\n", s.SkippedMalformed)
	fmt.Fprintf(w, "  Ignored lines:        %d\n", s.Ignored)
}

// inputError adds a hint to missing input files.
func inputError(path string, err error) error {
	if errors.Is(err, objmesh.ErrInputNotFound) {
		return fmt.Errorf("could not find input file '%s', make sure the file exists in the data directory: %w", path, err)
	}
	return err
}
