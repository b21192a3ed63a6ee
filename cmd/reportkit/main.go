package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"reportkit/internal/config"
	"reportkit/internal/container"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "reportkit",
		Short:        "Record experiment reports, render figures and compare runs",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newBasicCmd(),
		newDemoCmd(),
		newCompareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newContainer loads configuration and wires the backends
func newContainer() (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return container.New(cfg)
}
