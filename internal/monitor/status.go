package monitor

import "time"

type Status struct {
	API           bool      `json:"api"`
	Authenticated bool      `json:"authenticated"`
	LastCheck     time.Time `json:"last_check"`
}
