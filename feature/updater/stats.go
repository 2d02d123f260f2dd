package updater

import "math"

// Statistics summarizes a batch of update results.
type Statistics struct {
	Total             int     `json:"total"`
	Successful        int     `json:"successful"`
	Failed            int     `json:"failed"`
	SuccessRate       float64 `json:"success_rate"`
	DurationSeconds   float64 `json:"duration_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

// ComputeStatistics derives batch metrics from results. Duration is the
// span between the earliest and latest result timestamps; throughput is
// zero when the span is zero.
func ComputeStatistics(results []UpdateResult) Statistics {
	stats := Statistics{Total: len(results)}
	if stats.Total == 0 {
		return stats
	}

	earliest := results[0].Timestamp
	latest := results[0].Timestamp
	for _, r := range results {
		if r.Success {
			stats.Successful++
		} else {
			stats.Failed++
		}
		if r.Timestamp.Before(earliest) {
			earliest = r.Timestamp
		}
		if r.Timestamp.After(latest) {
			latest = r.Timestamp
		}
	}

	stats.SuccessRate = math.Round(float64(stats.Successful)/float64(stats.Total)*10000) / 100
	stats.DurationSeconds = latest.Sub(earliest).Seconds()
	if stats.DurationSeconds > 0 {
		stats.RequestsPerSecond = math.Round(float64(stats.Total)/stats.DurationSeconds*100) / 100
	}
	return stats
}
