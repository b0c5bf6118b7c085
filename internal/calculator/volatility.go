package calculator

import "math"

// tradingDaysPerYear annualizes daily return volatility.
const tradingDaysPerYear = 252

// AnnualizedVolatility computes the sample standard deviation of
// day-over-day percentage returns, scaled by √252. Requires at least
// three closes (two returns).
func AnnualizedVolatility(closes []float64) (float64, error) {
	if len(closes) < 3 {
		return 0, ErrInsufficientData
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var ss float64
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	stddev := math.Sqrt(ss / float64(len(returns)-1))

	return stddev * math.Sqrt(tradingDaysPerYear), nil
}
