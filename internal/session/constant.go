package session

import "time"

const (
	DefaultCapacity = 1024
	DefaultTTL      = 10 * time.Minute
)
