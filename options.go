package grib

import (
	"context"
	"runtime"
)

// ReadOption configures the behavior of ReadAll/ReadAllWithOptions.
type ReadOption func(*readConfig)

// readConfig holds configuration for batch read operations.
type readConfig struct {
	workers    int
	sequential bool
	skipErrors bool
	ctx        context.Context
	filter     func(Message) bool
}

// defaultReadConfig returns the default configuration.
func defaultReadConfig() readConfig {
	return readConfig{
		workers:    runtime.NumCPU(),
		sequential: false,
		skipErrors: false,
		ctx:        nil,
		filter:     func(Message) bool { return true },
	}
}

// WithWorkers sets the number of concurrent workers used to warm each
// message's lazily-decoded section chain. If workers <= 0, defaults to
// runtime.NumCPU().
func WithWorkers(workers int) ReadOption {
	return func(c *readConfig) {
		c.workers = workers
	}
}

// WithSequential disables the worker pool and decodes messages one at
// a time, in stream order. Useful for debugging or deterministic
// single-threaded runs.
func WithSequential() ReadOption {
	return func(c *readConfig) {
		c.sequential = true
	}
}

// WithContext sets a context for cancellation of a batch read.
func WithContext(ctx context.Context) ReadOption {
	return func(c *readConfig) {
		c.ctx = ctx
	}
}

// WithSkipErrors continues reading even if some messages fail to
// decode; by default the first error aborts the whole batch. A framing
// error found while scanning for message boundaries (bad magic, unknown
// edition, missing trailer, truncated message) still aborts the batch.
func WithSkipErrors() ReadOption {
	return func(c *readConfig) {
		c.skipErrors = true
	}
}

// WithFilter applies a custom predicate to select which messages are
// kept. The predicate runs against the edition-agnostic Message
// interface, so it can inspect Name, Edition, GetTime, or type-switch
// on Section(n) for edition-specific fields.
func WithFilter(filter func(Message) bool) ReadOption {
	return func(c *readConfig) {
		c.filter = filter
	}
}
