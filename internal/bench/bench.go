/*
Package bench measures search latency against a running engine.

The engine promises non-blocking, single-tick query evaluation for catalogs
of the expected size; this package makes that claim checkable by replaying a
query workload and reporting latency percentiles.
*/
package bench

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/utilsearch/utilsearch/internal/search"
)

// DefaultQueries is a workload mixing exact names, keywords, partial words,
// and typos.
var DefaultQueries = []string{
	"json",
	"JSON Formatter",
	"jsno",
	"base64",
	"convert units",
	"password",
	"timestmap",
	"color hex",
	"regex",
	"qr",
}

// Result holds latency statistics for one benchmark run.
type Result struct {
	Queries    int           `json:"queries"`
	Iterations int           `json:"iterations"`
	Total      time.Duration `json:"total"`
	P50        time.Duration `json:"p50"`
	P95        time.Duration `json:"p95"`
	Max        time.Duration `json:"max"`
}

// Run replays each query against the engine for the given number of
// iterations and reports latency percentiles.
func Run(engine *search.Engine, queries []string, iterations int) Result {
	if len(queries) == 0 {
		queries = DefaultQueries
	}
	if iterations <= 0 {
		iterations = 100
	}

	samples := make([]time.Duration, 0, len(queries)*iterations)
	start := time.Now()

	for i := 0; i < iterations; i++ {
		for _, q := range queries {
			t0 := time.Now()
			engine.Search(q)
			samples = append(samples, time.Since(t0))
		}
	}

	total := time.Since(start)
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	return Result{
		Queries:    len(queries),
		Iterations: iterations,
		Total:      total,
		P50:        percentile(samples, 50),
		P95:        percentile(samples, 95),
		Max:        samples[len(samples)-1],
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Format renders a result as a human-readable report.
func Format(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ran %d queries x %d iterations in %s\n", r.Queries, r.Iterations, r.Total.Round(time.Millisecond))
	fmt.Fprintf(&b, "  p50: %s\n", r.P50)
	fmt.Fprintf(&b, "  p95: %s\n", r.P95)
	fmt.Fprintf(&b, "  max: %s\n", r.Max)
	return b.String()
}
