// Package redisqueue provides the Redis-backed work queue for the audioscribe system.
package redisqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/domain/model"
)

const (
	defaultReceiveTimeout = 5 * time.Second
	probeTTL              = 10 * time.Minute
)

// Queue is a Redis list queue with at-least-once delivery. Publish pushes to
// the pending list; Receive atomically moves a message to this consumer's
// processing list, where it stays until Ack removes it. Messages left in a
// processing list after a crash can be requeued by outer infrastructure; this
// package only records and acknowledges.
type Queue struct {
	client         redis.UniversalClient
	key            string
	consumerID     string
	receiveTimeout time.Duration
}

// Options configures a Queue.
type Options struct {
	// Key is the Redis list holding pending messages.
	Key string
	// ConsumerID namespaces this consumer's processing list. Only consumers
	// that Receive need one.
	ConsumerID string
	// ReceiveTimeout bounds each blocking receive. Defaults to 5s.
	ReceiveTimeout time.Duration
}

// New creates a Queue on the given Redis client.
func New(client redis.UniversalClient, opts Options) *Queue {
	timeout := opts.ReceiveTimeout
	if timeout <= 0 {
		timeout = defaultReceiveTimeout
	}
	consumerID := opts.ConsumerID
	if consumerID == "" {
		consumerID = "default"
	}
	return &Queue{
		client:         client,
		key:            opts.Key,
		consumerID:     consumerID,
		receiveTimeout: timeout,
	}
}

// WithConsumerID returns a copy of the queue bound to a different consumer id,
// so each worker goroutine gets its own processing list.
func (q *Queue) WithConsumerID(id string) *Queue {
	cp := *q
	cp.consumerID = id
	return &cp
}

func (q *Queue) processingKey() string {
	return q.key + ":processing:" + q.consumerID
}

// Publish enqueues a work message.
func (q *Queue) Publish(ctx context.Context, msg *model.WorkMessage) error {
	if msg == nil {
		return errors.New("work message is required")
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal work message: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("redis lpush: %w", err)
	}
	return nil
}

// Receive blocks up to the receive timeout for the next message, moving it to
// this consumer's processing list. It returns (nil, nil) when the timeout
// elapses with nothing pending, so callers can re-check their context.
func (q *Queue) Receive(ctx context.Context) (*core.Delivery, error) {
	raw, err := q.client.BLMove(ctx, q.key, q.processingKey(), "RIGHT", "LEFT", q.receiveTimeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis blmove: %w", err)
	}

	var msg model.WorkMessage
	if unmarshalErr := json.Unmarshal([]byte(raw), &msg); unmarshalErr != nil {
		// Drop the poison message from the processing list so it cannot wedge the consumer.
		err := fmt.Errorf("unmarshal work message: %w", unmarshalErr)
		if remErr := q.client.LRem(ctx, q.processingKey(), 1, raw).Err(); remErr != nil {
			err = errors.Join(err, fmt.Errorf("drop poison message: %w", remErr))
		}
		return nil, err
	}

	return &core.Delivery{Message: msg, Receipt: raw}, nil
}

// Ack removes a delivered message from the processing list.
func (q *Queue) Ack(ctx context.Context, d *core.Delivery) error {
	if d == nil {
		return nil
	}
	if err := q.client.LRem(ctx, q.processingKey(), 1, d.Receipt).Err(); err != nil {
		return fmt.Errorf("redis lrem: %w", err)
	}
	return nil
}

func (q *Queue) probeKey(probeID string) string {
	return q.key + ":probe:" + probeID
}

// MarkProbe records that a health probe completed the queue round trip.
func (q *Queue) MarkProbe(ctx context.Context, probeID string) error {
	if probeID == "" {
		return errors.New("probe id is required")
	}
	if err := q.client.Set(ctx, q.probeKey(probeID), "ok", probeTTL).Err(); err != nil {
		return fmt.Errorf("redis set probe: %w", err)
	}
	return nil
}

// ProbeSeen reports whether a health probe has completed the round trip.
func (q *Queue) ProbeSeen(ctx context.Context, probeID string) (bool, error) {
	_, err := q.client.Get(ctx, q.probeKey(probeID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get probe: %w", err)
	}
	return true, nil
}

// Compile-time conformance to the queue ports.
var (
	_ core.Publisher  = (*Queue)(nil)
	_ core.Source     = (*Queue)(nil)
	_ core.ProbeStore = (*Queue)(nil)
)
