package circuitgen

import "math/rand"

// generatorConfig is the resolved, immutable configuration every
// topology constructor reads from. It is never mutated after
// newGeneratorConfig returns, matching the teacher's builderConfig
// pattern (builder/config.go).
type generatorConfig struct {
	delayMin, delayMax   int64
	weightMin, weightMax int64
	controlSteps         int64
	rng                  *rand.Rand
}

const (
	defaultDelayMin  = 1
	defaultDelayMax  = 5
	defaultWeightMin = 0
	defaultWeightMax = 2
	defaultSeed      = 1
)

// Option configures a generatorConfig; see WithDelayRange, WithWeightRange,
// WithControlSteps and WithSeed.
type Option func(*generatorConfig)

// WithDelayRange bounds the per-vertex delay drawn for generated
// internal vertices (inclusive). SOURCE's own delay is always 0.
func WithDelayRange(min, max int64) Option {
	return func(c *generatorConfig) { c.delayMin, c.delayMax = min, max }
}

// WithWeightRange bounds the register count (edge weight) drawn for
// generated internal edges (inclusive).
func WithWeightRange(min, max int64) Option {
	return func(c *generatorConfig) { c.weightMin, c.weightMax = min, max }
}

// WithControlSteps sets the weight SOURCE's outgoing edges carry; it
// is forwarded verbatim to core.NewGraph.
func WithControlSteps(steps int64) Option {
	return func(c *generatorConfig) { c.controlSteps = steps }
}

// WithSeed freezes the RNG stream used for delays and weights, making
// generated circuits reproducible.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		delayMin:      defaultDelayMin,
		delayMax:      defaultDelayMax,
		weightMin:     defaultWeightMin,
		weightMax:     defaultWeightMax,
		controlSteps:  1,
		rng:           rand.New(rand.NewSource(defaultSeed)),
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// randDelay draws a delay in [delayMin, delayMax].
func (c generatorConfig) randDelay() int64 {
	if c.delayMax <= c.delayMin {
		return c.delayMin
	}
	return c.delayMin + c.rng.Int63n(c.delayMax-c.delayMin+1)
}

// randWeight draws an edge weight (register count) in [weightMin, weightMax].
func (c generatorConfig) randWeight() int64 {
	if c.weightMax <= c.weightMin {
		return c.weightMin
	}
	return c.weightMin + c.rng.Int63n(c.weightMax-c.weightMin+1)
}
