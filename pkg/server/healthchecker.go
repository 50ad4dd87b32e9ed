// Package server holds the health contract the API exposes on /health.
package server

import "context"

// HealthChecker reports whether the resource behind a storage backend can
// serve requests right now.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker is always healthy. The in-memory backend uses it since it
// has nothing to ping.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (*OkHealthChecker) Healthy(context.Context) bool {
	return true
}
