package domain

// Statistics summarizes a game's non-deleted tasks.
type Statistics struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
}

// ComputeStatistics counts tasks across all four categories. Anything not
// completed counts as open, so future statuses stay on the open side.
func ComputeStatistics(g *Game) Statistics {
	var stats Statistics
	for _, t := range g.Issues.All() {
		stats.Total++
		if t.IsCompleted() {
			stats.Completed++
		} else {
			stats.Open++
		}
	}
	return stats
}
