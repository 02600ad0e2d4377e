// Package util holds small standalone helpers shared across packages.
package util

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps computes nodes per second from a node count and elapsed duration,
// tolerating a zero duration by treating it as one nanosecond.
func Nps(nodes uint64, elapsed time.Duration) uint64 {
	ns := elapsed.Nanoseconds()
	if ns <= 0 {
		ns = 1
	}
	return uint64(int64(nodes) * time.Second.Nanoseconds() / ns)
}

// TimeTrack returns a message saying how many milliseconds have passed since
// start, labelled with name. It does not log the message itself.
func TimeTrack(start time.Time, name string) string {
	return out.Sprintf("%s took %d ms", name, time.Since(start).Milliseconds())
}

// MemStat reports the process's current allocation and GC stats, useful
// when diagnosing transposition-table or move-list allocation pressure.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("alloc=%d totalAlloc=%d heapAlloc=%d heapObjects=%d numGC=%d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage collection and reports before/after memory
// stats plus how long the collection took.
func GcWithStats() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("before: %s ", MemStat()))
	start := time.Now()
	runtime.GC()
	sb.WriteString(fmt.Sprintf("gc took %d ms ", time.Since(start).Milliseconds()))
	sb.WriteString(fmt.Sprintf("after: %s", MemStat()))
	return sb.String()
}
