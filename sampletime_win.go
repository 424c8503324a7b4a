//go:build windows

package rngbench

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a reading of the most precise clock available. Only readings taken by the same
// process can be compared, and only through DiffTimeStamps.
type TimeStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	// qpcFrequency is the frequency of the performance counter in ticks per second.
	qpcFrequency = sync.OnceValue(func() int64 {
		var freq int64
		r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
		if r1 == 0 {
			panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
		}
		return freq
	})
)

// SampleTime reads the performance counter.
func SampleTime() TimeStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// DiffTimeStamps returns later - earlier in nanoseconds, negative if the arguments are swapped.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	result := later - earlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency()
	return result
}
