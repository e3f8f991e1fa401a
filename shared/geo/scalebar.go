package geo

import (
	"fmt"
	stdmath "math"
)

// ScaleBar picks the longest round distance (1, 2 or 5 times a power of
// ten meters) whose bar fits in maxPx. It returns the distance and the bar
// length in pixels, or zeros when nothing fits.
func ScaleBar(metersPerPixel, maxPx float64) (meters, px float64) {
	if !(metersPerPixel > 0) || !(maxPx > 0) || stdmath.IsInf(metersPerPixel, 0) {
		return 0, 0
	}
	limit := metersPerPixel * maxPx
	// Log10 may land just below an exact power of ten
	pow := stdmath.Pow(10, stdmath.Floor(stdmath.Log10(limit)+1e-9))
	for meters == 0 && pow > 0 {
		for _, m := range []float64{5, 2, 1} {
			if m*pow <= limit {
				meters = m * pow
				break
			}
		}
		pow /= 10
	}
	return meters, meters / metersPerPixel
}

// FormatDistance renders meters the way a map scale bar labels them.
func FormatDistance(meters float64) string {
	switch {
	case meters >= 1000:
		return fmt.Sprintf("%g km", meters/1000)
	case meters >= 1:
		return fmt.Sprintf("%g m", meters)
	}
	return fmt.Sprintf("%g cm", stdmath.Round(meters*100))
}
