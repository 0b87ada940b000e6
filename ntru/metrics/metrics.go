// Package metrics is a process-global byte-accounting counter, used to
// record the size of encoded keys and ciphertexts at their call sites
// without threading a collector argument through every function.
package metrics

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// Enabled gates every call site's Add; it is read from the
// NTRUGO_MEASURE environment variable so that production callers pay no
// cost unless they opt in.
var Enabled = os.Getenv("NTRUGO_MEASURE") != ""

// Counters accumulates named byte counts under a mutex.
type Counters struct {
	mu     sync.Mutex
	totals map[string]uint64
}

// Global is the process-wide counter instance call sites report to.
var Global = &Counters{totals: make(map[string]uint64)}

// Add accumulates n bytes under name. No-op if n is negative.
func (c *Counters) Add(name string, n int64) {
	if n < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totals[name] += uint64(n)
}

// SnapshotAndReset returns the current totals and clears them.
func (c *Counters) SnapshotAndReset() map[string]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]uint64, len(c.totals))
	for k, v := range c.totals {
		out[k] = v
	}
	c.totals = make(map[string]uint64)
	return out
}

// Dump prints the current totals to stderr in sorted key order, for use
// from CLI tools after a run.
func (c *Counters) Dump() {
	c.mu.Lock()
	names := make([]string, 0, len(c.totals))
	for k := range c.totals {
		names = append(names, k)
	}
	sort.Strings(names)
	totals := c.totals
	c.mu.Unlock()

	for _, name := range names {
		fmt.Fprintf(os.Stderr, "measure: %-40s %12d bytes\n", name, totals[name])
	}
}

// BytesRing estimates the packed size of a degree-n ring element with
// qBits-bit coefficients, rounded up to a whole byte.
func BytesRing(n, qBits int) int64 {
	return int64((n*qBits + 7) / 8)
}
