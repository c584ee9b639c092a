package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inventory-checker/core/config"
	"inventory-checker/core/ledger"
	"inventory-checker/core/logger"
	"inventory-checker/core/reconcile"
	"inventory-checker/core/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileFile   string
	reconcileOutput string
)

// reconcileCmd compares an expected-quantity workbook against the persisted ledger.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare an expected-quantity xlsx against the counted ledger",
	Long: `Reconcile the persisted ledger against an imported spreadsheet.

The spreadsheet needs a header row with Barcode and Quantity columns; header
matching is case-insensitive. The report classifies every barcode as match,
mismatch, missing (imported but never counted) or extra (counted but not in
the import).

Examples:
  # Report only
  reconcile --file expected.xlsx

  # Also write the deficit workbook
  reconcile --file expected.xlsx --output ./reports`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "Expected-quantity xlsx to compare against (required)")
	reconcileCmd.Flags().StringVar(&reconcileOutput, "output", "", "Write the deficit workbook to this file or directory")
	_ = reconcileCmd.MarkFlagRequired("file")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	led := ledger.New(store, l)

	src, err := os.Open(reconcileFile)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer src.Close()

	imported, err := sheet.ParseExpected(src)
	if err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	rows := reconcile.Compare(imported, led.Snapshot())
	summary := reconcile.Summarize(rows)
	printComparisonReport(l, rows, summary)

	if reconcileOutput == "" {
		return nil
	}

	f, err := sheet.BuildDeficits(rows)
	if err != nil {
		if errors.Is(err, sheet.ErrEmptyExport) {
			l.Info("No deficits to export, everything was counted in full")
			return nil
		}
		return err
	}
	defer f.Close()

	path := workbookPath(reconcileOutput, sheet.DeficitFilename(time.Now()))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write deficit workbook: %w", err)
	}
	l.Info("Deficit workbook written", zap.String("path", path))
	return nil
}

// printComparisonReport logs the summary and a sample of the problem rows.
func printComparisonReport(l *zap.Logger, rows []reconcile.Row, s reconcile.Summary) {
	l.Info("Comparison report",
		zap.Int("total", s.Total),
		zap.Int("matches", s.Matches),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("missing", s.Missing),
		zap.Int("extra", s.Extra),
		zap.Int("deficits", s.Deficits),
	)

	shown := 0
	const maxShow = 10
	for _, row := range rows {
		if row.Status == reconcile.StatusMatch {
			continue
		}
		if shown == maxShow {
			break
		}
		fields := []zap.Field{
			zap.String("barcode", row.Barcode),
			zap.String("status", string(row.Status)),
		}
		if row.Imported != nil {
			fields = append(fields, zap.Float64("imported", *row.Imported))
		}
		if row.Checked != nil {
			fields = append(fields, zap.Int("checked", *row.Checked))
		}
		l.Info("Discrepancy", fields...)
		shown++
	}
	remaining := s.Mismatches + s.Missing + s.Extra - shown
	if remaining > 0 {
		l.Info("Additional discrepancies not shown", zap.Int("count", remaining))
	}
}

// workbookPath resolves an --output value: an .xlsx path is used as is,
// anything else is treated as a directory for the default filename.
func workbookPath(output, defaultName string) string {
	if strings.HasSuffix(strings.ToLower(output), ".xlsx") {
		return output
	}
	return filepath.Join(output, defaultName)
}
