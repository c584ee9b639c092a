package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"inventory-checker/core/config"
	"inventory-checker/core/intake"
	"inventory-checker/core/ledger"
	"inventory-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var countMode string

// countCmd runs an interactive terminal counting session.
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Run an interactive counting session",
	Long: `Count stock interactively: scan or type a barcode, enter the quantity,
and the entry is committed to the persisted ledger.

In manual mode every pair is committed as soon as the quantity is entered.
In auto mode the commit happens after the debounce window, so a scanner that
types into the prompt does not produce partial commits.

An empty barcode ends the session and prints the counted list.`,
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVar(&countMode, "mode", "manual", "Entry mode: manual or auto")
	RootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mode, err := intake.ParseMode(countMode)
	if err != nil {
		return err
	}

	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	led := ledger.New(store, l)

	intakeCfg := cfg.Intake
	intakeCfg.Mode = string(mode)
	coordinator := intake.New(led, intakeCfg, l)

	// The focus-return signal: after a commit the session goes back to the
	// barcode prompt.
	commits := make(chan ledger.Entry, 1)
	coordinator.SetOnCommit(func(e ledger.Entry) {
		commits <- e
	})

	fmt.Printf("Counting session started (%s mode, %d items on the ledger). Empty barcode ends the session.\n",
		mode, led.Len())

	reader := bufio.NewReader(os.Stdin)
	for {
		// Drain a commit that landed after a previous wait timed out.
		select {
		case <-commits:
		default:
		}

		fmt.Print("Barcode: ")
		barcode, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		barcode = strings.TrimSpace(barcode)
		if barcode == "" {
			break
		}
		coordinator.SetBarcode(barcode)

		fmt.Print("Quantity: ")
		quantity, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		coordinator.SetQuantity(strings.TrimSpace(quantity))

		var entry ledger.Entry
		if mode == intake.ModeAuto {
			// The debounce timer commits; wait for it with a little slack.
			select {
			case entry = <-commits:
			case <-time.After(intakeCfg.Debounce() + 250*time.Millisecond):
				fmt.Println("  not committed: barcode must be non-empty and quantity a positive integer")
				continue
			}
		} else {
			entry, err = coordinator.Submit()
			if err != nil {
				fmt.Printf("  not committed: %v\n", err)
				continue
			}
			<-commits
		}

		fmt.Printf("  ✓ %s = %d (%d items)\n", entry.Barcode, entry.Quantity, led.Len())
	}

	printLedger(led.Snapshot())
	l.Info("Counting session finished", zap.Int("items", led.Len()))
	return nil
}

// printLedger renders the counted list the way the export sheet lays it out.
func printLedger(entries []ledger.Entry) {
	fmt.Printf("\nProduct List (%d items)\n", len(entries))
	if len(entries) == 0 {
		return
	}
	fmt.Printf("%-24s %s\n", "Barcode", "Quantity")
	for _, e := range entries {
		fmt.Printf("%-24s %d\n", e.Barcode, e.Quantity)
	}
}
