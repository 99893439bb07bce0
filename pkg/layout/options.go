// Package layout reconstructs a plain-text rendering of a document from
// positioned text fragments, preserving row alignment and column spacing
// with whitespace only.
package layout

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Default tuning values for the reconstruction.
const (
	// DefaultYTolerance is the vertical distance (in page units) within
	// which two fragments are considered part of the same row.
	DefaultYTolerance = 2.0

	// DefaultCharWidthDivisor is the assumed average character width used
	// to convert x-coordinates into text columns.
	DefaultCharWidthDivisor = 4.0
)

// Option modifies reconstruction behavior.
type Option func(*config)

type config struct {
	yTolerance       float64
	charWidthDivisor float64
	includeLayout    bool
	debugLog         *logrus.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		yTolerance:       DefaultYTolerance,
		charWidthDivisor: DefaultCharWidthDivisor,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) validate() error {
	if c.yTolerance <= 0 {
		return fmt.Errorf("y tolerance must be positive, got %v", c.yTolerance)
	}
	if c.charWidthDivisor <= 0 {
		return fmt.Errorf("character width divisor must be positive, got %v", c.charWidthDivisor)
	}
	return nil
}

// WithYTolerance sets the vertical tolerance for row clustering.
func WithYTolerance(tolerance float64) Option {
	return func(c *config) {
		c.yTolerance = tolerance
	}
}

// WithCharWidthDivisor sets the assumed character width in page units.
// Larger values compress the output horizontally.
func WithCharWidthDivisor(divisor float64) Option {
	return func(c *config) {
		c.charWidthDivisor = divisor
	}
}

// WithLayout selects whether Extract returns the full structured result or
// only the flat text.
func WithLayout(enabled bool) Option {
	return func(c *config) {
		c.includeLayout = enabled
	}
}

// WithDebugLogger enables per-fragment clustering diagnostics on the given
// logger. Diagnostics are purely observational and never alter the rendered
// output. A nil logger disables them.
func WithDebugLogger(log *logrus.Logger) Option {
	return func(c *config) {
		c.debugLog = log
	}
}
