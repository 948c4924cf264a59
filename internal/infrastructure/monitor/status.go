package monitor

import "time"

// Status is the last observed persistence health, served by the health
// endpoint. Backlog is the number of collections whose flush is pending.
type Status struct {
	Storage   bool      `json:"storage"`
	Journal   bool      `json:"journal"`
	Backlog   int       `json:"backlog"`
	LastCheck time.Time `json:"last_check"`
}
