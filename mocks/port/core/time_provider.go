package core

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock implementation of the core.TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

// Now returns the mocked current time
func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// Since returns the mocked elapsed duration
func (m *MockTimeProvider) Since(t time.Time) time.Duration {
	args := m.Called(t)
	return args.Get(0).(time.Duration)
}
