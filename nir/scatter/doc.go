// Package scatter provides row-wise scatter correction of spectra.
//
// Light scattering between samples shows up as a per-spectrum gain and
// baseline offset. Multiplicative scatter correction (MSC) estimates both
// by regressing each spectrum against a reference and divides them out;
// standard normal variate (SNV) standardizes each spectrum to zero mean and
// unit variance without a reference. Degenerate rows (zero variance, zero
// regression slope) produce IEEE non-finite values that are passed through
// for the caller to detect, never clamped.
package scatter
