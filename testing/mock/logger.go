package mock

import "github.com/tendermint/tendermint/libs/log"

var _ log.Logger = (*MockLogger)(nil)

// MockLogger implements the Logger interface and records every entry
type MockLogger struct {
	DebugLogs  []LogEntry
	InfoLogs   []LogEntry
	ErrorLogs  []LogEntry
	WithRecord []interface{}
}

// LogEntry is a struct that contains the message and keyvals passed to the logger
type LogEntry struct {
	Message string
	Params  []interface{}
}

// NewMockLogger returns a new MockLogger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug records a debug entry
func (l *MockLogger) Debug(msg string, keyvals ...interface{}) {
	l.DebugLogs = append(l.DebugLogs, LogEntry{Message: msg, Params: keyvals})
}

// Info records an info entry
func (l *MockLogger) Info(msg string, keyvals ...interface{}) {
	l.InfoLogs = append(l.InfoLogs, LogEntry{Message: msg, Params: keyvals})
}

// Error records an error entry
func (l *MockLogger) Error(msg string, keyvals ...interface{}) {
	l.ErrorLogs = append(l.ErrorLogs, LogEntry{Message: msg, Params: keyvals})
}

// With records the keyvals and returns the same logger so entries of scoped
// loggers are collected in one place
func (l *MockLogger) With(keyvals ...interface{}) log.Logger {
	l.WithRecord = keyvals
	return l
}

// HasEntry reports whether an entry with the given message was recorded at any level
func (l *MockLogger) HasEntry(msg string) bool {
	for _, entries := range [][]LogEntry{l.DebugLogs, l.InfoLogs, l.ErrorLogs} {
		for _, entry := range entries {
			if entry.Message == msg {
				return true
			}
		}
	}

	return false
}
