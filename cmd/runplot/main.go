// Package main provides the CLI entry point for runplot-go.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/runplot-go/pkg/runplot"
	"github.com/ukaji3/runplot-go/pkg/runplot/parser"
	"github.com/ukaji3/runplot-go/pkg/runplot/workbook"
)

var (
	configPath   string
	strict       bool
	workbookPath string
	reportPath   string
	dpi          int
	verbose      bool

	xColumn string
	yColumn string
	sheet   string
	pretty  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runplot",
		Short: "Plot benchmark runtimes of two implementations",
		Long: `runplot reads the runtime tables of two benchmark runs and renders
a log-log chart (runtimes.png) and a linear chart (runtimes_lin.png)
comparing them.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Parse CSV sources with quoting support")
	rootCmd.Flags().StringVar(&workbookPath, "workbook", "", "Also export the series to this .xlsx file")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON report of both renders to this file")
	rootCmd.Flags().IntVar(&dpi, "dpi", 0, "Override the raster resolution")

	extractCmd := &cobra.Command{
		Use:   "extract [table]",
		Short: "Print two columns of a result table as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  extract,
	}
	extractCmd.Flags().StringVar(&xColumn, "x", "nb_atoms", "Column holding x-values")
	extractCmd.Flags().StringVar(&yColumn, "y", "runtime_micros", "Column holding y-values")
	extractCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet of an .xlsx table")
	extractCmd.Flags().BoolVar(&strict, "strict", false, "Parse CSV with quoting support")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(extractCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Print the charts of an exported workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(inspectCmd)

	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	opts := runplot.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = runplot.LoadOptions(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = strict
	}
	if workbookPath != "" {
		opts.Outputs.Workbook = workbookPath
	}
	if reportPath != "" {
		opts.Outputs.Report = reportPath
	}
	if dpi != 0 {
		opts.Figure.DPI = dpi
	}

	logger.Info("plotting the results of both benchmarks", "sources", len(opts.Sources))
	if _, err := runplot.Run(opts, logger); err != nil {
		logger.Error("run failed", "err", err)
		return err
	}
	return nil
}

type columns struct {
	XColumn string    `json:"x_column"`
	YColumn string    `json:"y_column"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
}

func extract(cmd *cobra.Command, args []string) error {
	path := args[0]

	xs, ys, err := parser.ExtractFile(path, xColumn, yColumn, parser.FileOptions{Strict: strict, Sheet: sheet})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	return printJSON(cmd, columns{XColumn: xColumn, YColumn: yColumn, X: xs, Y: ys})
}

func inspect(cmd *cobra.Command, args []string) error {
	charts, err := workbook.Inspect(args[0])
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}
	return printJSON(cmd, charts)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
