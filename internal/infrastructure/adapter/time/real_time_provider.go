package time

import (
	"time"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider port using the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}
