// Package savgol provides Savitzky-Golay smoothing and differentiation of
// spectra.
//
// A [Filter] fits a polynomial of order p to each window of K consecutive
// channels by linear least squares and evaluates the fit (or its d-th
// derivative) at the window center. Because the abscissa is fixed, the fit
// collapses into a single convolution kernel that is computed once and
// applied per row; see [Coeffs] for the kernel alone.
//
// With derivative order 0 the filter is a smoother that preserves
// polynomial features up to degree p. Derivative orders 1 and 2 estimate
// slope and curvature per channel, scaled by the channel spacing delta.
package savgol
