// Package health implements liveness and readiness reporting for the
// Kubernetes-style /health and /ready probes.
package health

import (
	"context"
	"time"
)

// Status is the reported state of one dependency.
type Status string

const (
	// StatusHealthy means the dependency answered a ping.
	StatusHealthy Status = "healthy"

	// StatusUnhealthy means the dependency failed its ping.
	StatusUnhealthy Status = "unhealthy"

	// StatusSkipped means the probe does not check the dependency.
	StatusSkipped Status = "skipped"
)

// Report is the response body of both probes.
type Report struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  Status    `json:"database"`
	Redis     Status    `json:"redis"`
}

// Pinger checks one dependency's reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the Pinger interface.
type PingFunc func(ctx context.Context) error

// Ping calls the function.
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Checker runs the probes against the registered dependencies.
type Checker struct {
	version string
	db      Pinger
	redis   Pinger
}

// NewChecker creates a checker for the given dependencies.
func NewChecker(version string, db, redis Pinger) *Checker {
	return &Checker{
		version: version,
		db:      db,
		redis:   redis,
	}
}

// Liveness reports the process as alive without touching any dependency.
// A liveness failure should only ever mean the process itself is wedged.
func (c *Checker) Liveness() Report {
	return Report{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   c.version,
		Database:  StatusSkipped,
		Redis:     StatusSkipped,
	}
}

// Readiness pings the store and the cache and reports each. The overall
// status stays "ok" even when Redis is down: the cache is advisory and the
// API still serves, only slower.
func (c *Checker) Readiness(ctx context.Context) Report {
	report := Report{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   c.version,
		Database:  StatusHealthy,
		Redis:     StatusHealthy,
	}

	if err := c.db.Ping(ctx); err != nil {
		report.Database = StatusUnhealthy
		report.Status = "degraded"
	}
	if err := c.redis.Ping(ctx); err != nil {
		report.Redis = StatusUnhealthy
	}

	return report
}
