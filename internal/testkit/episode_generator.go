package testkit

import (
	"math/rand"
)

// EpisodeGeneratorConfig configures the synthetic agent used by demos and tests
type EpisodeGeneratorConfig struct {
	StepsPerEpisode int     `json:"steps_per_episode"`
	Units           int     `json:"units"`
	ExtRewardShift  float64 `json:"ext_reward_shift"`
	Seed            int64   `json:"seed"`
}

// DefaultEpisodeConfig mirrors the classic demo: 100 steps, 11 units, rewards shifted by -0.3
func DefaultEpisodeConfig() EpisodeGeneratorConfig {
	return EpisodeGeneratorConfig{
		StepsPerEpisode: 100,
		Units:           11,
		ExtRewardShift:  -0.3,
		Seed:            42,
	}
}

// Step is one time step of a synthetic agent
type Step struct {
	IntReward     float64
	ExtReward     float64
	ActivatedUnit int
}

// EpisodeGenerator produces deterministic random agent activity
type EpisodeGenerator struct {
	config EpisodeGeneratorConfig
	rng    *rand.Rand
}

// NewEpisodeGenerator creates a generator seeded from config
func NewEpisodeGenerator(config EpisodeGeneratorConfig) *EpisodeGenerator {
	if config.StepsPerEpisode <= 0 {
		config.StepsPerEpisode = DefaultEpisodeConfig().StepsPerEpisode
	}
	if config.Units <= 0 {
		config.Units = DefaultEpisodeConfig().Units
	}
	return &EpisodeGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Next draws one step: intrinsic reward in [0,1), shifted extrinsic reward, and an activated unit
func (g *EpisodeGenerator) Next() Step {
	return Step{
		IntReward:     g.rng.Float64(),
		ExtReward:     g.rng.Float64() + g.config.ExtRewardShift,
		ActivatedUnit: g.rng.Intn(g.config.Units),
	}
}

// Episode draws a full episode
func (g *EpisodeGenerator) Episode() []Step {
	steps := make([]Step, g.config.StepsPerEpisode)
	for i := range steps {
		steps[i] = g.Next()
	}
	return steps
}

// Matrix draws a (rows × cols) matrix of uniform values in [0,1) plus shift
func (g *EpisodeGenerator) Matrix(rows, cols int, shift float64) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = g.rng.Float64() + shift
		}
	}
	return m
}
