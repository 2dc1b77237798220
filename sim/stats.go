package sim

// ResultMedian returns the median of the last batch's final balances.
// The second return is false when no batch has completed.
func (e *Engine) ResultMedian() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return median(e.results)
}

// ResultPercentile returns the p-th percentile of the last batch's final
// balances, for p in [0, 100]. The second return is false when the result
// set is empty or p is out of range.
func (e *Engine) ResultPercentile(p float64) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return percentile(e.results, p)
}

func median(sorted []float64) (float64, bool) {
	n := len(sorted)
	if n == 0 {
		return 0, false
	}

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, true
	}
	return sorted[mid], true
}

// percentile uses nearest rank with boundary averaging: when n*p/100 lands
// exactly on a rank boundary the two adjacent samples are averaged, otherwise
// the sample at the truncated index is returned. This is a compatibility
// contract with existing consumers, not linear interpolation.
func percentile(sorted []float64, p float64) (float64, bool) {
	n := len(sorted)
	if n == 0 || p < 0 || p > 100 {
		return 0, false
	}

	exact := float64(n) * (p / 100)
	idx := int(exact)

	switch {
	case idx == n:
		return sorted[n-1], true
	case float64(idx) == exact:
		if idx == 0 {
			return sorted[0], true
		}
		return (sorted[idx] + sorted[idx-1]) / 2, true
	default:
		return sorted[idx], true
	}
}
