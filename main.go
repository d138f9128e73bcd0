package main

import (
	"fmt"
	"log/slog"
	"os"

	"lending-tracker/lending"

	"github.com/spf13/cobra"
)

func main() {
	var (
		demo    bool
		verbose bool
	)

	root := &cobra.Command{
		Use:   "lending-tracker",
		Short: "Track members, lendable items and loan contracts on a logical day clock",
		Long: `lending-tracker keeps an in-memory register of members and the items
they lend to each other. Bookings are time-bounded contracts on a logical
day counter that only advances when you tell it to.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			store := lending.NewStore(log)
			if demo {
				if err := store.InitDemo(); err != nil {
					return fmt.Errorf("seed demo data: %w", err)
				}
			}
			return runSession(store, log)
		},
	}
	root.Flags().BoolVar(&demo, "demo", false, "seed demonstration data before starting")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
