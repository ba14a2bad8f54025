package logging

import "context"

// NullLogger discards all records. Handy as a logger stand-in for tests.
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (n *NullLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (n *NullLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (n *NullLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (n *NullLogger) Error(ctx context.Context, msg string, args ...any) {}

func (n *NullLogger) With(args ...any) Logger { return n }
