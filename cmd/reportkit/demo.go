package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"reportkit/domain/report"
	"reportkit/internal/testkit"
	"reportkit/reporter"
)

const (
	intReward       = "int_reward"
	extReward       = "ext_reward"
	activationCount = "activation_count"
	episodeReward   = "episode_reward"
)

type demoOptions struct {
	root        string
	models      []string
	repeats     int
	episodes    int
	steps       int
	seed        int64
	dumpReports bool
	workbook    bool
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Record rewards and unit activations of a synthetic agent",
		Long: `Simulate an agent per model and repeat, render one figure per episode and
dump the per-episode total reward of every repeat for later comparison.

Output layout: <root>/<model>/repeat_<n>/

Example: reportkit demo --models "model A,model B" --repeats 3 --episodes 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Results root (default: REPORTKIT_RESULTS_DIR)")
	cmd.Flags().StringSliceVar(&opts.models, "models", []string{"model A", "model B", "model C"}, "Model names")
	cmd.Flags().IntVar(&opts.repeats, "repeats", 3, "Repeats per model")
	cmd.Flags().IntVar(&opts.episodes, "episodes", 10, "Episodes per repeat")
	cmd.Flags().IntVar(&opts.steps, "steps", 100, "Time steps per episode")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "Random seed")
	cmd.Flags().BoolVar(&opts.dumpReports, "dump-reports", false, "Dump the reports of the last episode of every repeat")
	cmd.Flags().BoolVar(&opts.workbook, "workbook", false, "Export the last episode of every repeat to reports.xlsx")
	return cmd
}

func runDemo(opts demoOptions) error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	defer c.Shutdown()

	if opts.root == "" {
		opts.root = c.Config.Results.Dir
	}
	registry, composer := c.NewRun()

	if err := registry.Setup(intReward, "time step", report.Series, reporter.WithCapacity(opts.steps)); err != nil {
		return err
	}
	if err := registry.Setup(extReward, "time step", report.Series, reporter.WithCapacity(opts.steps)); err != nil {
		return err
	}
	if err := registry.Setup(activationCount, "unit", report.Counter); err != nil {
		return err
	}

	targets := []report.Target{
		report.Single(intReward),
		report.Single(extReward),
		report.Group([]string{intReward, extReward}, "time step", "rewards"),
		report.Single(activationCount),
	}

	seed := opts.seed
	for _, model := range opts.models {
		for repeat := 0; repeat < opts.repeats; repeat++ {
			dir := filepath.Join(opts.root, model, fmt.Sprintf("repeat_%d", repeat))
			if _, err := registry.SetOutputDirectory(dir); err != nil {
				return err
			}

			gen := testkit.NewEpisodeGenerator(testkit.EpisodeGeneratorConfig{
				StepsPerEpisode: opts.steps,
				Units:           11,
				ExtRewardShift:  -0.3,
				Seed:            seed,
			})
			seed++

			rewards := make([]float64, 0, opts.episodes)
			for episode := 0; episode < opts.episodes; episode++ {
				total := 0.0
				for _, s := range gen.Episode() {
					if err := registry.Append(intReward, s.IntReward); err != nil {
						return err
					}
					if err := registry.Append(extReward, s.ExtReward); err != nil {
						return err
					}
					if err := registry.Append(activationCount, s.ActivatedUnit); err != nil {
						return err
					}
					total += s.ExtReward
				}

				if err := composer.RenderFigure(fmt.Sprintf("episode %d", episode), targets...); err != nil {
					return err
				}
				rewards = append(rewards, total)

				if episode == opts.episodes-1 {
					if opts.dumpReports {
						if err := composer.DumpReports(); err != nil {
							return err
						}
					}
					if opts.workbook {
						if err := composer.ExportWorkbook("reports.xlsx"); err != nil {
							return err
						}
					}
				}

				registry.Clear(intReward, extReward, activationCount)
			}

			if err := composer.DumpVariable(episodeReward, rewards); err != nil {
				return err
			}
		}
	}

	fmt.Printf("results written under %s\n", opts.root)
	return nil
}
