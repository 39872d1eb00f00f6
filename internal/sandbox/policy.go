package sandbox

import "time"

// Policy defines resource limits for query execution.
type Policy struct {
	QueryTimeout time.Duration // Wall-clock bound on running the query
	MaxRows      int           // Maximum result rows captured per query
}

// DefaultPolicy returns safe defaults for query validation.
func DefaultPolicy() Policy {
	return Policy{
		QueryTimeout: time.Second,
		MaxRows:      200,
	}
}
