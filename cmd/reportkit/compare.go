package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportkit/adapters/excel"
	"reportkit/internal/comparison"
)

type compareOptions struct {
	root         string
	file         string
	fromWorkbook string
	workbook     bool
}

func newCompareCmd() *cobra.Command {
	opts := compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Plot mean ± std of per-episode rewards across models and repeats",
		Long: `Collect <root>/<model>/<repeat>/<file>.<ext> dumps into one
(repeats × episodes) matrix per model and write comparison.png and
"cumulative comparison.png" to the root.

Example: reportkit compare --root Results --file episode_reward`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Results root (default: REPORTKIT_RESULTS_DIR)")
	cmd.Flags().StringVar(&opts.file, "file", episodeReward, "Dump name to collect, without extension")
	cmd.Flags().StringVar(&opts.fromWorkbook, "from-workbook", "", "Read datasets from a comparison workbook instead of dumps")
	cmd.Flags().BoolVar(&opts.workbook, "workbook", false, "Also export the datasets to comparison.xlsx")
	return cmd
}

func runCompare(opts compareOptions) error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	defer c.Shutdown()

	if opts.root == "" {
		opts.root = c.Config.Results.Dir
	}

	var datasets comparison.Datasets
	if opts.fromWorkbook != "" {
		order, values, err := excel.NewMatrixReader(opts.fromWorkbook).ReadMatrices()
		if err != nil {
			return err
		}
		datasets = comparison.Datasets{Order: order, Values: values}
	} else {
		datasets, err = c.ComparisonLoader(opts.root, opts.file).Load()
		if err != nil {
			return err
		}
	}
	if datasets.Len() == 0 {
		return fmt.Errorf("no %s dumps found under %s", opts.file, opts.root)
	}

	cumulative, err := comparison.Cumulative(datasets)
	if err != nil {
		return err
	}

	registry, composer := c.NewRun()
	if _, err := registry.SetOutputDirectory(opts.root); err != nil {
		return err
	}

	if err := composer.CompareStatistics("comparison.png", datasets.Values, "rewards", "episodes", "rewards", datasets.Order...); err != nil {
		return err
	}
	if err := composer.CompareStatistics("cumulative comparison.png", cumulative.Values, "cumulative rewards", "episodes", "rewards", cumulative.Order...); err != nil {
		return err
	}
	if opts.workbook {
		if err := composer.ExportComparisonWorkbook("comparison.xlsx", datasets.Values, datasets.Order...); err != nil {
			return err
		}
	}

	fmt.Printf("compared %d models under %s\n", datasets.Len(), opts.root)
	return nil
}
