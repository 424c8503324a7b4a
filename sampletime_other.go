//go:build !windows

package rngbench

import "time"

// TimeStamp is a reading of the most precise clock available. Only readings taken by the same
// process can be compared, and only through DiffTimeStamps.
type TimeStamp = time.Time

// SampleTime reads the clock.
// time.Now carries a monotonic clock reading, which DiffTimeStamps uses.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns later - earlier in nanoseconds, negative if the arguments are swapped.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}
