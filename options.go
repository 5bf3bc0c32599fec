package bezier

import "fmt"

// DefaultInterpolation is the number of samples per segment used when no
// [WithInterpolation] option is given.
const DefaultInterpolation = 10

// Option configures a [Curve] during creation. The configuration is frozen
// for the curve's lifetime.
//
// Example:
//
//	c := bezier.New(bezier.WithInterpolation(16), bezier.WithScale(5000))
type Option func(*config)

type config struct {
	interpolation int
	fitTolerance  float64
}

func defaultConfig() config {
	return config{
		interpolation: DefaultInterpolation,
		fitTolerance:  ScaleTolerance(2000),
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.interpolation < 1 {
		panic(fmt.Sprintf("bezier: interpolation must be at least 1, got %d", cfg.interpolation))
	}
	return cfg
}

// WithInterpolation sets the number of samples per segment.
//
// Polylines sampled under one interpolation are not recognized by
// [IsLikelyBezierSample] under another, so the value should stay fixed for a
// given dataset.
func WithInterpolation(n int) Option {
	return func(c *config) {
		c.interpolation = n
	}
}

// WithFitTolerance sets the absolute tolerance used when fitting polylines
// and freehand strokes. See [FitPolyline] for how it is applied.
func WithFitTolerance(tol float64) Option {
	return func(c *config) {
		c.fitTolerance = tol
	}
}

// WithScale sets the fitting tolerance from a view scale, as
// [ScaleTolerance] does.
func WithScale(scale float64) Option {
	return func(c *config) {
		c.fitTolerance = ScaleTolerance(scale)
	}
}
