package kernel

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Taper returns the image-plane response of an oversampled kernel at npix
// pixel positions, normalised to 1 at the centre pixel (index npix/2).
// Dividing an image by the taper corrects for the gridding kernel.
func Taper(taps []float64, oversampling, npix int) ([]float64, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyTaps
	}

	if oversampling <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOversampling, oversampling)
	}

	if npix <= 0 {
		return nil, fmt.Errorf("taper pixel count must be > 0: %d", npix)
	}

	fftSize := nextPowerOf2(max(npix*oversampling, len(taps)))

	// Centre the kernel on sample 0 so its transform is real for symmetric taps.
	in := make([]complex128, fftSize)
	centre := len(taps) / 2
	for i, v := range taps {
		in[(i-centre+fftSize)%fftSize] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("taper fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("taper fft: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, fftSize)
	vecmath.Magnitude(mag, re, im)

	// Pixel l of npix spans l/npix cycles per cell, i.e. bin l*fftSize/(npix*oversampling).
	binsPerPixel := float64(fftSize) / float64(npix*oversampling)

	res := make([]float64, npix)
	for p := range res {
		b := float64(p-npix/2) * binsPerPixel
		if b < 0 {
			b += float64(fftSize)
		}

		i0 := int(math.Floor(b))
		frac := b - float64(i0)
		v0 := mag[i0%fftSize]
		v1 := mag[(i0+1)%fftSize]
		res[p] = v0 + frac*(v1-v0)
	}

	norm := res[npix/2]
	if norm == 0 {
		return nil, ErrZeroTaper
	}

	for i := range res {
		res[i] /= norm
	}

	return res, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
