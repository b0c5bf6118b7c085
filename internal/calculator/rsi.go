package calculator

// RSIPeriod is the lookback window for the relative strength index.
const RSIPeriod = 14

// RSI computes the 14-period relative strength index from the mean gain
// and mean loss of the trailing window of day-over-day deltas. Requires
// RSIPeriod+1 closes. A window with zero average loss yields 100.
func RSI(closes []float64) (float64, error) {
	if len(closes) < RSIPeriod+1 {
		return 0, ErrInsufficientData
	}

	var gain, loss float64
	for i := len(closes) - RSIPeriod; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	avgGain := gain / RSIPeriod
	avgLoss := loss / RSIPeriod

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
