// Package kernel generates oversampled gridding kernels and snaps
// continuous uv coordinates onto their oversampled phases.
//
// A kernel spans support grid cells and is sampled oversampling times per
// cell, so it holds support*oversampling taps:
//
//	taps, err := kernel.KaiserBesselWithSinc(7, 7, 2.4)
//
// A coordinate is split into the nearest grid cell and an oversampling
// phase that selects which interleaved tap set to use:
//
//	   0            1             2             3
//	   0   1 2 3    0    1 2 3    0    1 2 3    0    1 2 3
//	   +   | | |    +    | | |    +    | | |    +    | | |
//
// '+' marks a cell centre and '|' the oversampled phases between centres
// (support 4, oversampling 4 above). [Snap] and [SnapInGrid] compute the
// cell and phase, and [Taper] returns the image-plane correction that
// undoes the kernel's response.
package kernel
