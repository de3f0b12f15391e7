package kernel

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// DefaultPadding is the image padding factor assumed by EstimateBeta when a
// kernel is generated with a negative beta.
const DefaultPadding = 1.25

// Option configures kernel generation.
type Option func(*config)

type config struct {
	normalise bool
	padding   float64
}

func defaultConfig() config {
	return config{padding: DefaultPadding}
}

// WithNormalise scales the taps so they sum to the oversampling factor,
// giving each oversampled phase roughly unit gain.
func WithNormalise() Option {
	return func(c *config) {
		c.normalise = true
	}
}

// WithPadding sets the padding factor used to estimate beta.
func WithPadding(alpha float64) Option {
	return func(c *config) {
		if alpha > 0.5 {
			c.padding = alpha
		}
	}
}

// EstimateBeta returns the Kaiser-Bessel shape parameter for a kernel of
// the given support on an image padded by alpha (Beatty et al. 2005).
// Returns 0 when the support is too small for the estimate.
func EstimateBeta(support int, alpha float64) float64 {
	w := float64(support)
	r := w*w/(alpha*alpha)*(alpha-0.5)*(alpha-0.5) - 0.8
	if r <= 0 {
		return 0
	}

	return math.Pi * math.Sqrt(r)
}

// KaiserBesselWithSinc returns a Kaiser-Bessel kernel multiplied by a sinc,
// sampled at support*oversampling points. Tap i sits at
//
//	u = (i - support*oversampling/2) / oversampling
//
// cells from the kernel centre. A negative beta is replaced by
// EstimateBeta(support, padding).
func KaiserBesselWithSinc(support, oversampling int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateShape(support, oversampling); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if beta < 0 {
		beta = EstimateBeta(support, cfg.padding)
	}

	n := support * oversampling
	half := n / 2

	taps := make([]float64, n)
	sincs := make([]float64, n)

	for i := range taps {
		u := float64(i-half) / float64(oversampling)
		taps[i] = KaiserBessel(u, support, beta)
		sincs[i] = sinc(u)
	}

	vecmath.MulBlockInPlace(taps, sincs)

	if cfg.normalise {
		if sum := floats.Sum(taps); sum != 0 {
			floats.Scale(float64(oversampling)/sum, taps)
		}
	}

	return taps, nil
}

// KaiserBessel evaluates the Kaiser-Bessel function of width support at u
// cells from its centre. It is 1 at u=0 and 0 beyond support/2.
func KaiserBessel(u float64, support int, beta float64) float64 {
	r := 2 * u / float64(support)
	if r < -1 || r > 1 {
		return 0
	}

	if beta <= 0 {
		return 1
	}

	return besselI0(beta*math.Sqrt(1-r*r)) / besselI0(beta)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
