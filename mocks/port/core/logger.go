package core

import "github.com/stretchr/testify/mock"

// MockLogger is a mock implementation of the core.Logger port
type MockLogger struct {
	mock.Mock
}

// Debug logs debug messages
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info logs informational messages
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn logs warning messages
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error logs error messages
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush ensures all buffered logs are written
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}

// NoopLogger discards everything; use it when log output is irrelevant
// to the test
type NoopLogger struct{}

// Debug discards the message
func (NoopLogger) Debug(string, map[string]any) {}

// Info discards the message
func (NoopLogger) Info(string, map[string]any) {}

// Warn discards the message
func (NoopLogger) Warn(string, map[string]any) {}

// Error discards the message
func (NoopLogger) Error(string, map[string]any) {}

// Flush does nothing
func (NoopLogger) Flush() error { return nil }
