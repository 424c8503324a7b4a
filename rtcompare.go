package rngbench

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrNotEnoughData is returned by CompareSamples if a sample has fewer than MinimumDataPoints values.
var ErrNotEnoughData = errors.New("not enough data points")

// RTcomparisonResult is the confidence that sample A is faster than sample B by at least
// RelativeSpeedupSampleAvsSampleB, e.g. 0.1 for "A takes at most 90% of the time of B".
type RTcomparisonResult struct {
	RelativeSpeedupSampleAvsSampleB float64
	Confidence                      float64
}

// MinimumDataPoints is the smallest sample size CompareSamples accepts.
const MinimumDataPoints uint64 = 11

// CompareSamples computes, for every threshold in relativeSpeedupsToTest, the bootstrap confidence
// that the runtimes in sampleA are at least that much faster than those in sampleB. An empty list
// of thresholds means {0}. precisionLevel is the number of bootstrap repetitions.
// The results are sorted by threshold; relativeSpeedupsToTest itself is left untouched.
// An error wrapping ErrNotEnoughData is returned if either sample is too small.
func CompareSamples(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, precisionLevel uint64) (result []RTcomparisonResult, err error) {
	if uint64(len(sampleA)) < MinimumDataPoints || uint64(len(sampleB)) < MinimumDataPoints {
		return []RTcomparisonResult{}, fmt.Errorf("%w: need at least %d runtimes for each of A and B, got %d and %d",
			ErrNotEnoughData, MinimumDataPoints, len(sampleA), len(sampleB))
	}
	thresholds := slices.Clone(relativeSpeedupsToTest)
	if len(thresholds) == 0 {
		thresholds = []float64{0.0}
	}
	slices.Sort(thresholds)

	conf := BootstrapConfidence(sampleA, sampleB, thresholds, precisionLevel, 0)

	for _, t := range thresholds {
		r := RTcomparisonResult{
			RelativeSpeedupSampleAvsSampleB: t,
			Confidence:                      conf[t],
		}
		result = append(result, r)
	}
	return result, nil
}

// F2T turns a "times faster" factor into a relative speedup threshold, 1 - 1/timesFaster.
// 2 becomes 0.5, 1 becomes 0 and a slowdown (factor below 1) becomes negative.
// Non-positive and NaN factors yield NaN.
func F2T(timesFaster float64) float64 {
	if math.IsNaN(timesFaster) || timesFaster <= 0 {
		return math.NaN()
	}
	return 1.0 - 1.0/timesFaster
}

// bootstrapSample draws len(xs) values from xs with replacement.
func bootstrapSample(xs []float64, rng *DPRNG) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	if n == 0 {
		return sample
	}
	for i := range n {
		sample[i] = xs[rng.UInt32N(uint32(n))]
	}
	return sample
}

// BootstrapConfidence runs reps bootstrap replicates of A and B. Each replicate computes
//
//	delta = 1 - median(A')/median(B')
//
// and counts towards every threshold t with delta >= t. The result maps each threshold to the
// fraction of replicates that reached it, or to NaN if reps is 0.
//
// A replicate with a NaN median reaches no threshold. Equal medians give delta 0. A median(B')
// too close to zero is replaced by max(|median(B')|*1e-12, SmallestNonzeroFloat64).
// prngSeed seeds the DPRNG that draws the replicates; 0 picks a random seed.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, prngSeed uint64) (confidenceForThreshold map[float64]float64) {
	confidenceForThreshold = make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	counts := make(map[float64]uint32, len(thresholds))
	rng := NewDPRNG(prngSeed)

	for range reps {
		sampleA := bootstrapSample(A, &rng)
		sampleB := bootstrapSample(B, &rng)
		medA := QuickMedian(sampleA)
		medB := QuickMedian(sampleB)

		var delta float64

		if math.IsNaN(medA) || math.IsNaN(medB) {
			delta = math.NaN()
		} else if (medA == 0 && medB == 0) || medA == medB || (math.IsInf(medA, -1) && math.IsInf(medB, -1)) || (math.IsInf(medA, 1) && math.IsInf(medB, 1)) {
			delta = 0.0
		} else {
			rel := 1e-12
			eps := math.Max(math.Abs(medB)*rel, math.SmallestNonzeroFloat64)
			denom := medB
			if math.Abs(medB) < eps {
				denom = eps
			}
			delta = 1.0 - medA/denom
		}

		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}
