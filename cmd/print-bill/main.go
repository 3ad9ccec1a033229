package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/config"
	"github.com/spiceterra/webapi/internal/handoff"
	"github.com/spiceterra/webapi/internal/storage"
)

func main() {
	// Optional output directory; with no argument the bill prints to stdout
	var outDir string
	if len(os.Args) > 1 {
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			fmt.Println("Usage: go run cmd/print-bill/main.go [output-dir]")
			fmt.Println("Prints the bill for the saved cart snapshot, or writes it as a receipt file.")
			os.Exit(0)
		}
		outDir = os.Args[1]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	snapshots := storage.NewFileStore(cfg.Storage.DataDir, logger)
	lines := snapshots.Load()
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "Cart snapshot is empty, nothing to bill.")
		os.Exit(1)
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}

	bill := handoff.FormatBill(cfg.Restaurant.Name, lines, total, nil)

	if outDir == "" {
		fmt.Println(bill)
		return
	}

	receipt := handoff.BillReceipt(cfg.Restaurant.Name, bill, time.Now())
	path := filepath.Join(outDir, receipt.Filename)
	if err := os.WriteFile(path, []byte(receipt.Body), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write receipt: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Receipt written to %s\n", path)
}
