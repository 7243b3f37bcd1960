// Package flusher retries writing posts to storage after a failed write-through.
package flusher

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=./mock/flusher.go -package=mock -source=flusher.go

var log = logrus.WithField("package", "flusher")

var errNotDurable = errors.New("posts live in memory only")

// Flushable is a collection which may lag behind its storage.
type Flushable interface {
	Flush(ctx context.Context) error
	Durable() bool
}

// Flusher calls Flush every interval until ctx is done.
type Flusher struct {
	f        Flushable
	interval time.Duration
}

// New creates new instance of Flusher.
func New(f Flushable, interval time.Duration) *Flusher {
	return &Flusher{
		f:        f,
		interval: interval,
	}
}

// Name ...
func (*Flusher) Name() string {
	return "feed"
}

// Ping returns error while posts live in memory only.
func (fl *Flusher) Ping(_ context.Context) error {
	if !fl.f.Durable() {
		return errNotDurable
	}

	return nil
}

// Run blocks until ctx is done.
func (fl *Flusher) Run(ctx context.Context) error {
	t := time.NewTicker(fl.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if fl.f.Durable() {
				continue
			}

			if err := fl.f.Flush(ctx); err != nil {
				log.WithError(err).Debug("failed to flush posts")
				continue
			}

			log.Info("posts flushed")
		}
	}
}
