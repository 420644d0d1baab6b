package grib

import (
	"context"
	"runtime"

	"github.com/pkg/errors"

	"github.com/mmp/wxgrib/internal/pool"
)

// ReadAll reads and decodes every message in data with the default
// configuration (parallel, runtime.NumCPU() workers, stop on first
// error). Decoding a message means warming its lazy section chain so
// later accessor calls on the returned Message never fail because of
// something this call could have caught.
func ReadAll(data []byte) ([]Message, error) {
	return ReadAllWithOptions(data)
}

// ReadAllWithOptions reads and decodes every message in data according
// to opts. See WithWorkers, WithSequential, WithContext, WithSkipErrors
// and WithFilter.
func ReadAllWithOptions(data []byte, opts ...ReadOption) ([]Message, error) {
	config := defaultReadConfig()
	for _, opt := range opts {
		opt(&config)
	}

	boundaries, err := FindMessages(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find message boundaries")
	}
	if len(boundaries) == 0 {
		return nil, nil
	}

	if config.sequential {
		return readSequential(data, boundaries, config)
	}
	return readParallel(data, boundaries, config)
}

func readSequential(data []byte, boundaries []MessageBoundary, config readConfig) ([]Message, error) {
	messages := make([]Message, 0, len(boundaries))
	for _, b := range boundaries {
		if config.ctx != nil {
			if err := config.ctx.Err(); err != nil {
				return nil, err
			}
		}
		msg, err := decodeBoundary(data, b)
		if err != nil {
			if config.skipErrors {
				continue
			}
			return nil, err
		}
		if !config.filter(msg) {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func readParallel(data []byte, boundaries []MessageBoundary, config readConfig) ([]Message, error) {
	workers := config.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx := config.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	p := pool.New(ctx, workers)
	results := make([]Message, len(boundaries))

	for i, b := range boundaries {
		idx, boundary := i, b
		if err := p.Submit(func() error {
			msg, err := decodeBoundary(data, boundary)
			if err != nil {
				if config.skipErrors {
					return nil
				}
				return err
			}
			results[idx] = msg
			return nil
		}); err != nil {
			p.Close()
			return nil, err
		}
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(boundaries))
	for _, msg := range results {
		if msg == nil {
			continue // skipped under WithSkipErrors
		}
		if !config.filter(msg) {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// decodeBoundary builds the edition-appropriate Message for one
// boundary and forces its full section chain, so decode errors surface
// here rather than on first accessor use by the caller.
func decodeBoundary(data []byte, b MessageBoundary) (Message, error) {
	buf := data[b.Start : b.Start+b.Length]
	msg, err := newMessage(b.Edition, buf, "")
	if err != nil {
		return nil, err
	}

	lastSection := 5
	if b.Edition == 2 {
		lastSection = 8
	}
	for i := 0; i <= lastSection; i++ {
		if _, err := msg.Section(i); err != nil {
			return nil, errors.Wrapf(err, "message at offset %d, section %d", b.Start, i)
		}
	}
	if _, err := msg.GetTime(); err != nil {
		return nil, errors.Wrapf(err, "message at offset %d", b.Start)
	}
	return msg, nil
}
