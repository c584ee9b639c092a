package cmd

import (
	"errors"
	"fmt"
	"time"

	"inventory-checker/core/config"
	"inventory-checker/core/ledger"
	"inventory-checker/core/logger"
	"inventory-checker/core/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOutput string

// exportCmd writes the counted ledger to an xlsx workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the counted ledger to an xlsx workbook",
	Long: `Write every counted entry to a date-stamped workbook with Barcode and
Quantity columns, in the order the barcodes were first scanned.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", ".", "Write the workbook to this file or directory")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	f, err := sheet.BuildLedger(led.Snapshot())
	if err != nil {
		if errors.Is(err, sheet.ErrEmptyExport) {
			l.Info("Nothing to export, the ledger is empty")
			return nil
		}
		return err
	}
	defer f.Close()

	path := workbookPath(exportOutput, sheet.LedgerFilename(time.Now()))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	l.Info("Ledger workbook written",
		zap.String("path", path),
		zap.Int("items", led.Len()))
	return nil
}
