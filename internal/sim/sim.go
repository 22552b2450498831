package sim

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/foc/fixed"
	"github.com/calebcase/foc/frame"
	"github.com/calebcase/foc/trig"
)

// Sample is one iteration of one channel, converted to float64.
type Sample struct {
	Iteration int
	Theta     float64
	Alpha     float64
	Beta      float64
	D         float64
	Q         float64
}

// Stats summarizes one channel on one backend.
type Stats struct {
	Channel int
	Backend string

	// Last is the final sample. It is the zero Sample when Iterations is 0.
	Last Sample

	// MaxDError is the largest |d - amplitude|.
	MaxDError float64

	// MaxQ is the largest |q|.
	MaxQ float64
}

// Report is the result of Run, ordered by channel and then backend (float
// before fixed).
type Report struct {
	Stats []Stats
}

// runner drives one backend.
type runner interface {
	name() string
	run(ctx context.Context, log *zap.Logger, cfg Config, channel int, out io.Writer) (Stats, error)
}

// backend binds the transform chain to one number type.
type backend[N frame.Scalar[N]] struct {
	label  string
	abc    frame.AlphaBetaGamma[N]
	sc     frame.SinCoser[N]
	from   func(float64) N
	to     func(N) float64
	render func(N) string
}

func (b *backend[N]) name() string {
	return b.label
}

func (b *backend[N]) run(ctx context.Context, log *zap.Logger, cfg Config, channel int, out io.Writer) (s Stats, err error) {
	s = Stats{
		Channel: channel,
		Backend: b.label,
	}

	phase := 2 * math.Pi * float64(channel) / float64(cfg.Channels)

	for i := 0; i < cfg.Iterations; i++ {
		err = ctx.Err()
		if err != nil {
			return s, err
		}

		theta := math.Remainder(phase+float64(i)*cfg.Step, 2*math.Pi)

		ia := cfg.Amplitude * math.Cos(theta)
		ib := cfg.Amplitude * math.Cos(theta-2*math.Pi/3)

		ab := b.abc.Apply(frame.Vec2[N]{b.from(ia), b.from(ib)})
		dq := frame.Rotate(b.sc, ab, b.from(-theta))

		_, err = fmt.Fprintf(out,
			"ch=%d backend=%s i=%d theta=%s alpha=%s beta=%s d=%s q=%s\n",
			channel, b.label, i,
			formatFloat(theta),
			b.render(ab[0]), b.render(ab[1]),
			b.render(dq[0]), b.render(dq[1]),
		)
		if err != nil {
			return s, Error.Wrap(err)
		}

		s.Last = Sample{
			Iteration: i,
			Theta:     theta,
			Alpha:     b.to(ab[0]),
			Beta:      b.to(ab[1]),
			D:         b.to(dq[0]),
			Q:         b.to(dq[1]),
		}

		s.MaxDError = math.Max(s.MaxDError, math.Abs(s.Last.D-cfg.Amplitude))
		s.MaxQ = math.Max(s.MaxQ, math.Abs(s.Last.Q))

		log.Debug("sample",
			zap.Int("channel", channel),
			zap.String("backend", b.label),
			zap.Int("iteration", i),
			zap.Float64("d", s.Last.D),
			zap.Float64("q", s.Last.Q),
		)
	}

	return s, nil
}

// formatFloat writes x with six decimals. Rounding residue below the last
// decimal is written without a sign, so a value that prints as zero always
// prints as 0.000000.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', 6, 64)
	if s == "-0.000000" {
		return s[1:]
	}

	return s
}

func floatBackend() *backend[trig.Float] {
	p := trig.Native{}

	return &backend[trig.Float]{
		label: BackendFloat,
		abc:   frame.Precompute[trig.Float](p),
		sc:    p,
		from:  func(x float64) trig.Float { return trig.Float(x) },
		to:    func(x trig.Float) float64 { return float64(x) },
		render: func(x trig.Float) string {
			return formatFloat(float64(x))
		},
	}
}

func fixedBackend[S fixed.Scale]() (b *backend[fixed.Value[int32, S]], err error) {
	defer Error.WrapP(&err)

	f, err := fixed.NewFormat[int32, S]()
	if err != nil {
		return nil, err
	}

	tbl, err := trig.NewTable(f)
	if err != nil {
		return nil, err
	}

	return &backend[fixed.Value[int32, S]]{
		label:  BackendFixed,
		abc:    frame.Precompute[fixed.Value[int32, S]](tbl),
		sc:     tbl,
		from:   f.FromFloat,
		to:     func(v fixed.Value[int32, S]) float64 { return v.Float64() },
		render: func(v fixed.Value[int32, S]) string { return v.String() },
	}, nil
}

// fixedRunner picks the scale type for a runtime scale.
func fixedRunner(scale int) (runner, error) {
	switch scale {
	case 8:
		return fixedBackend[fixed.Q8]()
	case 12:
		return fixedBackend[fixed.Q12]()
	case 16:
		return fixedBackend[fixed.Q16]()
	case 20:
		return fixedBackend[fixed.Q20]()
	case 24:
		return fixedBackend[fixed.Q24]()
	}

	return nil, Error.New("unsupported scale: %d", scale)
}

func (c Config) runners() (rs []runner, err error) {
	if c.Backend == BackendFloat || c.Backend == BackendBoth {
		rs = append(rs, floatBackend())
	}

	if c.Backend == BackendFixed || c.Backend == BackendBoth {
		r, err := fixedRunner(c.Scale)
		if err != nil {
			return nil, err
		}

		rs = append(rs, r)
	}

	return rs, nil
}

// Run simulates cfg.Channels channels concurrently and writes one line per
// iteration to w. Lines are grouped by channel and backend in report order.
// Cancelling ctx stops every channel between iterations; the context's error
// is returned unwrapped.
func Run(ctx context.Context, cfg Config, log *zap.Logger, w io.Writer) (r Report, err error) {
	err = cfg.Validate()
	if err != nil {
		return r, err
	}

	rs, err := cfg.runners()
	if err != nil {
		return r, err
	}

	log.Info("starting",
		zap.Int("channels", cfg.Channels),
		zap.Int("iterations", cfg.Iterations),
		zap.String("backend", cfg.Backend),
		zap.Int("scale", cfg.Scale),
	)

	outs := make([]bytes.Buffer, cfg.Channels)
	stats := make([][]Stats, cfg.Channels)

	g, gctx := errgroup.WithContext(ctx)

	for ch := 0; ch < cfg.Channels; ch++ {
		g.Go(func() error {
			for _, rn := range rs {
				s, err := rn.run(gctx, log, cfg, ch, &outs[ch])
				if err != nil {
					return err
				}

				log.Info("channel done",
					zap.Int("channel", ch),
					zap.String("backend", rn.name()),
					zap.Float64("max_d_error", s.MaxDError),
					zap.Float64("max_q", s.MaxQ),
				)

				stats[ch] = append(stats[ch], s)
			}

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return r, err
	}

	for ch := range outs {
		_, err = w.Write(outs[ch].Bytes())
		if err != nil {
			return r, Error.Wrap(err)
		}

		r.Stats = append(r.Stats, stats[ch]...)
	}

	return r, nil
}
