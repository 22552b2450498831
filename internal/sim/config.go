package sim

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("sim")

// Backends.
const (
	BackendFloat = "float"
	BackendFixed = "fixed"
	BackendBoth  = "both"
)

// Config configures a simulation run.
type Config struct {
	// Iterations is the number of samples per channel and backend.
	Iterations int `yaml:"iterations"`

	// Step is the electrical angle advance per iteration in radians.
	Step float64 `yaml:"step"`

	// Amplitude is the peak phase current.
	Amplitude float64 `yaml:"amplitude"`

	// Channels is the number of motor channels run concurrently. Channel c
	// starts at the angle 2πc/Channels.
	Channels int `yaml:"channels"`

	// Backend is one of BackendFloat, BackendFixed or BackendBoth.
	Backend string `yaml:"backend"`

	// Scale is the number of fractional bits of the fixed backend's int32
	// values.
	Scale int `yaml:"scale"`
}

// DefaultConfig returns one electrical revolution on three channels with both
// backends.
func DefaultConfig() Config {
	return Config{
		Iterations: 64,
		Step:       2 * math.Pi / 64,
		Amplitude:  10,
		Channels:   3,
		Backend:    BackendBoth,
		Scale:      16,
	}
}

// Scales lists the supported values of Config.Scale.
var Scales = []int{8, 12, 16, 20, 24}

// MaxAmplitude returns the largest amplitude the fixed backend carries at
// the given scale. The intermediate beta term reaches twice the amplitude.
func MaxAmplitude(scale int) float64 {
	return math.Ldexp(1, 31-scale-2)
}

// Validate returns an error describing the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Iterations < 0:
		return Error.New("negative iterations: %d", c.Iterations)
	case c.Channels < 1:
		return Error.New("need at least one channel: %d", c.Channels)
	case math.IsNaN(c.Step) || math.IsInf(c.Step, 0):
		return Error.New("step is not finite: %v", c.Step)
	case math.IsNaN(c.Amplitude) || c.Amplitude <= 0:
		return Error.New("amplitude must be positive: %v", c.Amplitude)
	}

	switch c.Backend {
	case BackendFloat:
		return nil
	case BackendFixed, BackendBoth:
	default:
		return Error.New("unknown backend: %q", c.Backend)
	}

	supported := false
	for _, s := range Scales {
		if s == c.Scale {
			supported = true
		}
	}

	if !supported {
		return Error.New("unsupported scale: %d (want one of %v)", c.Scale, Scales)
	}

	if c.Amplitude > MaxAmplitude(c.Scale) {
		return Error.New(
			"amplitude too large for scale: amplitude=%v scale=%d max=%v",
			c.Amplitude,
			c.Scale,
			MaxAmplitude(c.Scale),
		)
	}

	return nil
}

// LoadConfig reads a YAML config from path. Fields missing from the file keep
// their DefaultConfig values and unknown fields are an error.
func LoadConfig(path string) (c Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return c, Error.Wrap(err)
	}

	c = DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty file decodes to io.EOF and leaves the defaults.
	err = dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return c, Error.Wrap(err)
	}

	return c, c.Validate()
}
