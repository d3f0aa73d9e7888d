package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sitarlab/stemsep/logging"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stemsep",
	Short: "Harmonic/percussive stem separation for mono recordings",
	Long: `stemsep splits a mono music recording into a harmonic stem (sustained,
tonal content such as plucked strings) and a percussive stem (transient,
broadband content such as drums) using median-filter based
harmonic-percussive source separation, with optional band-stop EQ cleanup
of the harmonic stem.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logging.GetGlobalLogger().SetLevel(logging.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Environment variable support: STEMSEP_WINDOW_SIZE etc.
	viper.SetEnvPrefix("STEMSEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}
