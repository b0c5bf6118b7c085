package calculator

import "errors"

// ErrInsufficientData is returned when a series is too short for the
// requested indicator.
var ErrInsufficientData = errors.New("not enough data")

// SMA computes the simple moving average of the trailing window samples.
func SMA(prices []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(prices) < window {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(prices) - window; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(window), nil
}
