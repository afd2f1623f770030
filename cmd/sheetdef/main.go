// Package main provides the CLI entry point for sheetdef.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ukaji3/sheetdef-go/internal/config"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/parser"
)

var (
	configPath string
	worksheet  string

	v       = config.New()
	cfg     config.Config
	logger  *slog.Logger
	printer = message.NewPrinter(language.English)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetdef",
		Short: "Generate sheet definitions from exported game data tables",
		Long: `sheetdef infers JSON sheet definitions (default column, links, icons)
from the header rows of exported CSV and xlsx tables, merges optional
overlays, and combines everything into one versioned document.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./sheetdef.yaml if present)")
	pf.String("input-dir", "CSV", "Directory of tables to read")
	pf.String("output-dir", "Definitions", "Directory for per-sheet definitions")
	pf.String("overlay-dir", "YAML", "Directory of per-sheet overlays")
	pf.String("combined-output", "Combined_definitions/ex.json", "Combined definitions file")
	pf.String("version-file", "", "File whose first line is the game version")
	pf.String("mode", "generic", "Inference mode: generic, annotated")
	pf.String("links", "combined", "Link detection in generic mode: combined, existence, allowlist")
	pf.String("comment-prefix", "#", "Comment row marker for annotated tables")
	pf.Bool("workbooks", true, "Read worksheets of .xlsx workbooks as tables")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate one definition per table",
			Args:  cobra.NoArgs,
			RunE:  runGenerate,
		},
		&cobra.Command{
			Use:   "overlay",
			Short: "Merge overlays into generated definitions",
			Args:  cobra.NoArgs,
			RunE:  runOverlay,
		},
		&cobra.Command{
			Use:   "combine",
			Short: "Combine all definitions into one versioned file",
			Args:  cobra.NoArgs,
			RunE:  runCombine,
		},
		&cobra.Command{
			Use:   "build",
			Short: "Run generate, overlay and combine",
			Args:  cobra.NoArgs,
			RunE:  runBuild,
		},
		newInferCmd(),
	)
	return rootCmd
}

func newInferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer [table.csv|book.xlsx]",
		Short: "Print the inferred definition of a single table",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfer,
	}
	cmd.Flags().StringVar(&worksheet, "sheet", "", "Worksheet to read from an .xlsx workbook")
	return cmd
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(v, configPath); err != nil {
		return err
	}
	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return err
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	report, err := sheetdef.Generate(cfg.InputDir, cfg.OutputDir, cfg.Options(logger))
	if err != nil {
		return err
	}
	printer.Fprintf(cmd.OutOrStdout(), "Generated %d sheet definitions (%d skipped)\n",
		len(report.Written), len(report.Skipped))
	return nil
}

func runOverlay(cmd *cobra.Command, args []string) error {
	report, err := sheetdef.ApplyOverlays(cfg.OutputDir, cfg.OverlayDir, cfg.Options(logger))
	if err != nil {
		return err
	}
	printer.Fprintf(cmd.OutOrStdout(), "Applied %d overlays (%d without overlay, %d skipped)\n",
		len(report.Written), len(report.Warnings), len(report.Skipped))
	return nil
}

func runCombine(cmd *cobra.Command, args []string) error {
	combined, _, err := sheetdef.CombineTo(cfg.OutputDir, cfg.CombinedOutput,
		sheetdef.FileVersion(cfg.VersionFile), cfg.Options(logger))
	if err != nil {
		return err
	}
	printer.Fprintf(cmd.OutOrStdout(), "Combined %d sheet definitions into %s (version %s)\n",
		len(combined.Sheets), cfg.CombinedOutput, combined.Version)
	return nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := runGenerate(cmd, args); err != nil {
		return err
	}
	if info, err := os.Stat(cfg.OverlayDir); err == nil && info.IsDir() {
		if err := runOverlay(cmd, args); err != nil {
			return err
		}
	} else {
		logger.Info("no overlay directory, skipping overlays", "dir", cfg.OverlayDir)
	}
	return runCombine(cmd, args)
}

func runInfer(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	src := parser.Source{Path: path}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if worksheet == "" {
			return fmt.Errorf("--sheet is required for workbooks")
		}
		src.Name = worksheet
		src.Worksheet = worksheet
	} else {
		src.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	opts := cfg.Options(logger)
	cat, err := parser.Discover(filepath.Dir(path), opts.ShouldIncludeWorkbooks())
	if err != nil {
		return err
	}
	schema, err := sheetdef.InferSource(src, cat.Known, opts)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	data, err := output.SheetToJSON(&schema)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
