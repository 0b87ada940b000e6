// Package measureutil is a thin convenience wrapper around ntru/metrics for
// callers that only need a point-in-time snapshot (the CLI's summary
// output, benchmark harnesses).
package measureutil

import "ntrugo/ntru/metrics"

// SnapshotAndReset returns the global measurement map and clears it.
func SnapshotAndReset() map[string]uint64 {
	return metrics.Global.SnapshotAndReset()
}
