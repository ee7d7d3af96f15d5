package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Madmartigan1/zeldachat/internal/config"
	"github.com/Madmartigan1/zeldachat/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show exchange statistics",
	Long:  `Display statistics about logged chat exchanges and their tones.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	st, err := store.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer st.Close()

	// Ensure migrations are run
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	total, err := st.CountExchanges(ctx)
	if err != nil {
		return fmt.Errorf("count exchanges: %w", err)
	}

	byTone, err := st.CountByTone(ctx)
	if err != nil {
		return fmt.Errorf("count by tone: %w", err)
	}

	fmt.Println("=== ZeldaChat Statistics ===")
	fmt.Println()
	fmt.Printf("Database: %s\n", cfg.DatabasePath)
	fmt.Println()
	fmt.Printf("Exchanges: %d\n", total)

	if len(byTone) > 0 {
		fmt.Println()
		fmt.Println("By tone:")
		for _, tc := range byTone {
			fmt.Printf("  %s: %d\n", tc.Tone, tc.Count)
		}
	}
	fmt.Println()

	return nil
}
