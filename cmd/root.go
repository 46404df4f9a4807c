package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var noProgress bool

var rootCmd = &cobra.Command{
	Use:   "facemesh-prep",
	Short: "Prepare the mediapipe478 face mesh for the web client",
	Long: `facemesh-prep converts the mediapipe478 face mesh from its text
vertex/face description into flat JSON arrays, and strips the faces that
cover the mouth and eye openings before conversion.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
