package velocity

import "fmt"

// Stats is a point-in-time snapshot of the cache counters. The counters
// are monotonic for the lifetime of the instance; Clear empties content
// but never resets them.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
	// HitRate is Hits/(Hits+Misses) as a percentage with two decimals,
	// e.g. "66.67%". "0.00%" before any Get has been recorded.
	HitRate string
	Size    int
	MaxSize int
}

func formatHitRate(hits, misses uint64) string {
	total := hits + misses
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(hits)/float64(total)*100)
}
