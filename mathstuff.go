package rngbench

import (
	"math"
	"sort"
)

// Median returns the median of data without modifying it. For an even number of elements it returns the
// mean of the two middle ones. The median of an empty slice is 0.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	sort.Float64s(dataCopy)

	l := len(dataCopy)
	if l%2 == 0 {
		return (dataCopy[l/2-1] + dataCopy[l/2]) / 2
	}
	return dataCopy[l/2]
}

// Statistics returns the mean and the population variance and standard deviation of data.
// For empty data variance and stddev are -1.
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))

	for _, value := range data {
		sum += value
	}
	mean = sum / n

	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// MedianAbsolutePercentError returns the median of |x - median(data)| / |x| over all x in data, i.e. the
// typical relative deviation of a single measurement. It is 0 for empty data or data containing zeros only.
func MedianAbsolutePercentError(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	med := Median(data)
	errs := make([]float64, 0, len(data))
	for _, x := range data {
		if x == 0 {
			continue
		}
		errs = append(errs, math.Abs((x-med)/x))
	}
	return Median(errs)
}

// partition moves everything below xs[high] to the front of xs[low:high+1] and returns the final
// index of the pivot.
func partition(xs []float64, low, high uint64) uint64 {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect returns the k-th smallest value of xs (0-based) in expected linear time, using
// random pivots. It reorders xs.
func quickselect(xs []float64, k uint64) float64 {
	rng := NewDPRNG()

	low, high := uint64(0), uint64(len(xs)-1)
	for low <= high {
		pivotIndex := rng.Uint64()%(high-low+1) + low
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex] // move pivot to end
		p := partition(xs, low, high)
		if p == k {
			return xs[p]
		} else if p < k {
			low = p + 1
		} else {
			high = p - 1
		}
	}
	return xs[k] // fallback
}

// QuickMedian returns xs[len(xs)/2] of the sorted xs in expected linear time, i.e. the upper of
// the two middle values for an even length. It is NaN for an empty slice. QuickMedian reorders xs.
func QuickMedian(xs []float64) float64 {
	n := uint64(len(xs))
	if n == 0 {
		return math.NaN()
	}
	return quickselect(xs, n/2)
}
