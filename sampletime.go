package rngbench

import (
	"math"
	"sync"
)

// calibrationRounds is the number of back to back SampleTime pairs measured by calcMinTimeSample.
const calibrationRounds = 10_000_000

var (
	// precision caches the result of calcMinTimeSample in nanoseconds, -1 means not yet measured.
	precision     = int64(-1)
	precisionLock sync.Mutex
)

// GetSampleTimePrecision returns the smallest positive difference between two SampleTime calls
// in nanoseconds. This is about 100ns on Windows and a few dozen ns elsewhere. The first call
// measures it, which takes a fraction of a second, later calls return the cached value.
func GetSampleTimePrecision() int64 {
	precisionLock.Lock()
	defer precisionLock.Unlock()
	if precision == -1 {
		precision = calcMinTimeSample()
	}
	return precision
}

func calcMinTimeSample() int64 {
	minDiff := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := SampleTime()
		t2 := SampleTime()
		if diff := DiffTimeStamps(t1, t2); diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
