package serviceimpl

import "time"

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func intPtr(n int) *int { return &n }
