package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sitarlab/stemsep/algorithms/common"
	"github.com/sitarlab/stemsep/separation"
	"github.com/sitarlab/stemsep/wavio"
)

var separateCmd = &cobra.Command{
	Use:   "separate <input.wav>",
	Short: "Separate a mono WAV into harmonic and percussive stems",
	Long: `Separate reads a WAV file (downmixed to mono if needed), runs
harmonic/percussive separation and writes two stem WAV files next to the
input, or to the paths given with --harmonic-out / --percussive-out.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeparate,
}

func init() {
	rootCmd.AddCommand(separateCmd)

	defaults := separation.DefaultConfig()

	separateCmd.Flags().Int("window-size", defaults.WindowSize, "analysis window size in samples")
	separateCmd.Flags().Int("hop-size", defaults.HopSize, "hop between frames in samples")
	separateCmd.Flags().Int("filter-time", defaults.FilterLengthTime, "median filter length along time (odd)")
	separateCmd.Flags().Int("filter-freq", defaults.FilterLengthFreq, "median filter length along frequency (odd)")
	separateCmd.Flags().Float64("power", defaults.Power, "mask sharpness exponent")
	separateCmd.Flags().String("mode", string(defaults.Mode), "mask mode (soft, binary)")
	separateCmd.Flags().String("window", defaults.WindowType, "analysis window (hann, hamming)")

	separateCmd.Flags().Bool("eq", false, "apply band-stop EQ cleanup to the harmonic stem")
	separateCmd.Flags().Float64("eq-low", 80, "EQ notch lower edge in Hz")
	separateCmd.Flags().Float64("eq-high", 4000, "EQ notch upper edge in Hz")

	separateCmd.Flags().String("harmonic-out", "", "harmonic stem output path")
	separateCmd.Flags().String("percussive-out", "", "percussive stem output path")

	viper.BindPFlag("window_size", separateCmd.Flags().Lookup("window-size"))
	viper.BindPFlag("hop_size", separateCmd.Flags().Lookup("hop-size"))
	viper.BindPFlag("filter_time", separateCmd.Flags().Lookup("filter-time"))
	viper.BindPFlag("filter_freq", separateCmd.Flags().Lookup("filter-freq"))
	viper.BindPFlag("power", separateCmd.Flags().Lookup("power"))
	viper.BindPFlag("mode", separateCmd.Flags().Lookup("mode"))
	viper.BindPFlag("window", separateCmd.Flags().Lookup("window"))
}

func runSeparate(cmd *cobra.Command, args []string) error {
	input := args[0]

	config := separation.Config{
		WindowSize:       viper.GetInt("window_size"),
		HopSize:          viper.GetInt("hop_size"),
		FilterLengthTime: viper.GetInt("filter_time"),
		FilterLengthFreq: viper.GetInt("filter_freq"),
		Power:            viper.GetFloat64("power"),
		Mode:             separation.Mode(viper.GetString("mode")),
		WindowType:       viper.GetString("window"),
	}

	separator, err := separation.NewHPSS(config)
	if err != nil {
		return err
	}

	samples, sampleRate, err := wavio.ReadMono(input)
	if err != nil {
		return err
	}

	fmt.Printf("Separating %s (%d samples @ %d Hz)...\n", input, len(samples), sampleRate)

	result, err := separator.Separate(context.Background(), samples, sampleRate)
	if err != nil {
		return err
	}

	harmonic := result.Harmonic
	if applyEQ, _ := cmd.Flags().GetBool("eq"); applyEQ {
		low, _ := cmd.Flags().GetFloat64("eq-low")
		high, _ := cmd.Flags().GetFloat64("eq-high")

		harmonic, err = separation.CleanHarmonic(harmonic, sampleRate, low, high)
		if err != nil {
			return fmt.Errorf("EQ cleanup: %w", err)
		}
		harmonic = common.PeakNormalize(harmonic)
	}

	harmonicPath, _ := cmd.Flags().GetString("harmonic-out")
	if harmonicPath == "" {
		harmonicPath = stemPath(input, "harmonic")
	}
	percussivePath, _ := cmd.Flags().GetString("percussive-out")
	if percussivePath == "" {
		percussivePath = stemPath(input, "percussive")
	}

	if err := wavio.WriteMono(harmonicPath, harmonic, sampleRate); err != nil {
		return err
	}
	if err := wavio.WriteMono(percussivePath, result.Percussive, sampleRate); err != nil {
		return err
	}

	printStats("mixture", samples, sampleRate)
	printStats("harmonic", harmonic, sampleRate)
	printStats("percussive", result.Percussive, sampleRate)

	fmt.Printf("Wrote %s and %s\n", harmonicPath, percussivePath)
	return nil
}

// stemPath derives an output path like input_harmonic.wav from input.wav
func stemPath(input, stem string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return fmt.Sprintf("%s_%s.wav", base, stem)
}

func printStats(label string, samples []float64, sampleRate int) {
	stats := common.ComputeSignalStats(samples, sampleRate)
	fmt.Printf("  %-10s %6.2fs  rms %.4f (%6.1f dBFS)  peak %.4f\n",
		label, stats.Duration, stats.RMS, common.AmplitudeToDB(stats.RMS, 1.0), stats.Peak)
}
