// Package feed subscribes to the node's raw transaction notifications.
package feed

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/rbf-sniper/internal/clock"
	"github.com/goodnatureofminers/rbf-sniper/internal/metrics"
	"go.uber.org/zap"
)

// ErrReceiveTimeout is returned by a Subscriber when no message arrived
// within its receive timeout.
var ErrReceiveTimeout = errors.New("feed receive timeout")

// Handler processes one raw transaction. It runs on the listener goroutine,
// so the next message is not received until it returns.
type Handler func(ctx context.Context, raw []byte)

// Listener reads [topic, body, sequence] messages and hands bodies to a Handler.
type Listener struct {
	sub     Subscriber
	topic   string
	logger  *zap.Logger
	metrics Metrics
	backoff backoff.BackOff

	lastSeq uint32
	seenSeq bool
}

// NewListener constructs a Listener over an established subscription.
func NewListener(sub Subscriber, topic string, logger *zap.Logger, m Metrics) *Listener {
	return &Listener{
		sub:     sub,
		topic:   topic,
		logger:  logger,
		metrics: m,
		backoff: newReceiveBackoff(),
	}
}

// newReceiveBackoff paces retries after receive errors: 1s growing to 30s,
// retried for as long as the listener runs.
func newReceiveBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Run receives messages until ctx is done.
func (l *Listener) Run(ctx context.Context, handle Handler) error {
	l.logger.Info("feed listener started", zap.String("topic", l.topic))
	defer l.logger.Info("feed listener stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		parts, err := l.sub.Receive()
		if err != nil {
			if errors.Is(err, ErrReceiveTimeout) {
				continue
			}
			l.metrics.ObserveMessage(l.topic, metrics.FeedError)
			l.logger.Warn("feed receive failed", zap.Error(err))
			if err := clock.SleepWithContext(ctx, l.backoff.NextBackOff()); err != nil {
				return nil
			}
			continue
		}
		l.backoff.Reset()

		if len(parts) < 2 {
			l.metrics.ObserveMessage(l.topic, metrics.FeedMalformed)
			l.logger.Warn("skip malformed feed message", zap.Int("parts", len(parts)))
			continue
		}
		if string(parts[0]) != l.topic {
			l.logger.Debug("skip feed message for other topic", zap.ByteString("topic", parts[0]))
			continue
		}
		if len(parts) > 2 {
			l.checkSequence(parts[2])
		}

		l.metrics.ObserveMessage(l.topic, metrics.FeedReceived)
		handle(ctx, parts[1])
	}
}

// checkSequence logs notifications the publisher sent but we never received.
func (l *Listener) checkSequence(raw []byte) {
	if len(raw) != 4 {
		return
	}
	seq := binary.LittleEndian.Uint32(raw)
	if l.seenSeq && seq != l.lastSeq+1 {
		l.metrics.ObserveMessage(l.topic, metrics.FeedGap)
		l.logger.Warn("feed messages lost",
			zap.Uint32("expected", l.lastSeq+1),
			zap.Uint32("got", seq),
		)
	}
	l.lastSeq = seq
	l.seenSeq = true
}
