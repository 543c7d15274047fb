package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nestegg/projector/internal/calculation"
	"github.com/nestegg/projector/internal/config"
	"github.com/nestegg/projector/internal/domain"
	"github.com/nestegg/projector/internal/output"
	"github.com/spf13/cobra"
)

var (
	configPath string
	runCount   int
	seed       int64
	format     string
	outPath    string
	metric     string
)

// stderrLogger adapts the standard library logger to the engine's interface.
type stderrLogger struct {
	l *log.Logger
}

func newStderrLogger() stderrLogger {
	return stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s stderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }

func main() {
	rootCmd := &cobra.Command{
		Use:          "nestegg",
		Short:        "Monte Carlo nest egg projector",
		Long:         "Projects a two-asset retirement portfolio year by year under stochastic market returns, inflation, and tail-risk shocks.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML assumptions file (built-in defaults when omitted)")
	rootCmd.PersistentFlags().IntVarP(&runCount, "runs", "n", 0, "Number of simulation runs (overrides the configured run count)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (overrides the configured seed)")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the full simulation batch and emit a report",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("Report format (%s)", strings.Join(output.FormatterNames(), ", ")))
	simulateCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (stdout when omitted)")

	tabulateCmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Tabulate one metric across all runs as CSV, one row per year",
		RunE:  runTabulate,
	}
	tabulateCmd.Flags().StringVarP(&metric, "metric", "m", domain.MetricNestEgg, fmt.Sprintf("Metric to tabulate (%s)", strings.Join(domain.MetricNames(), ", ")))
	tabulateCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (stdout when omitted)")

	exampleCmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write the built-in assumptions as a YAML file",
		RunE:  runExampleConfig,
	}
	exampleCmd.Flags().StringVarP(&outPath, "output", "o", "nestegg.yaml", "Destination file")

	rootCmd.AddCommand(simulateCmd, tabulateCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadAssumptions resolves the assumptions from file or defaults and applies
// flag overrides. Validation runs before anything else: a bad configuration
// aborts before the first random draw.
func loadAssumptions(cmd *cobra.Command) (*domain.Assumptions, error) {
	parser := config.NewInputParser()

	var assumptions *domain.Assumptions
	if configPath == "" {
		assumptions = config.DefaultAssumptions()
	} else {
		loaded, err := parser.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		assumptions = loaded
	}

	if runCount > 0 {
		assumptions.RunCount = runCount
	}
	if cmd.Flags().Changed("seed") {
		assumptions.Seed = seed
	}

	if err := parser.ValidateAssumptions(assumptions); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return assumptions, nil
}

func runBatch(cmd *cobra.Command) (*domain.Batch, error) {
	assumptions, err := loadAssumptions(cmd)
	if err != nil {
		return nil, err
	}
	simulator := calculation.NewSimulator(assumptions, newStderrLogger())
	return simulator.RunBatch(0)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	batch, err := runBatch(cmd)
	if err != nil {
		return err
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (valid: %s)", format, strings.Join(output.FormatterNames(), ", "))
	}
	return output.WriteFormatted(formatter, batch, outPath)
}

func runTabulate(cmd *cobra.Command, args []string) error {
	batch, err := runBatch(cmd)
	if err != nil {
		return err
	}
	table, err := calculation.Tabulate(batch, metric)
	if err != nil {
		return err
	}
	return output.WriteFieldTableCSV(table, outPath)
}

func runExampleConfig(cmd *cobra.Command, args []string) error {
	if err := config.NewInputParser().WriteExampleFile(outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote example assumptions to %s\n", outPath)
	return nil
}
