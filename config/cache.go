package config

import (
	"time"

	"github.com/shubhamnexus/samparkmain-dashboard/drilldown"
)

const (
	// Drill-down sessions expire after this long without a request.
	sessionCacheDuration = 30 * time.Minute

	// Cleanup interval for expired sessions
	sessionCleanupInterval = 10 * time.Minute
)

// NewSessionStore builds the drill-down session cache from cfg.
func NewSessionStore(cfg Config) *drilldown.SessionStore {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = sessionCacheDuration
	}
	cleanup := cfg.SessionCleanup
	if cleanup <= 0 {
		cleanup = sessionCleanupInterval
	}
	return drilldown.NewSessionStore(ttl, cleanup)
}
