package redisqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audioscribe/audioscribe/internal/domain/model"
	"github.com/audioscribe/audioscribe/internal/testutil"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	t.Cleanup(func() { _ = client.Close() })

	// Per-test key so parallel packages cannot interfere
	key := "audioscribe:test:" + uuid.NewString()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		iter := client.Scan(ctx, 0, key+"*", 0).Iterator()
		for iter.Next(ctx) {
			client.Del(ctx, iter.Val())
		}
	})

	return New(client, Options{Key: key, ConsumerID: "test-consumer", ReceiveTimeout: time.Second})
}

func TestQueue_PublishReceiveAck(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	msg := &model.WorkMessage{
		Kind:            model.MessageKindTranscribe,
		JobID:           "job-1",
		LanguageHint:    "en",
		PayloadLocation: "uploads/job-1_clip.wav",
	}
	require.NoError(t, q.Publish(ctx, msg))

	delivery, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, delivery)
	assert.Equal(t, *msg, delivery.Message)

	// Held in the processing list until acked
	n, err := q.client.LLen(ctx, q.processingKey()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, q.Ack(ctx, delivery))

	n, err = q.client.LLen(ctx, q.processingKey()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestQueue_Receive_TimeoutReturnsNil(t *testing.T) {
	q := newTestQueue(t)

	delivery, err := q.Receive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, delivery)
}

func TestQueue_Receive_FIFOAcrossConsumers(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	for _, id := range []string{"job-1", "job-2"} {
		require.NoError(t, q.Publish(ctx, &model.WorkMessage{Kind: model.MessageKindTranscribe, JobID: id}))
	}

	other := q.WithConsumerID("other-consumer")

	first, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "job-1", first.Message.JobID)

	second, err := other.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "job-2", second.Message.JobID)

	// Each consumer holds its own processing list
	n, err := q.client.LLen(ctx, q.processingKey()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = other.client.LLen(ctx, other.processingKey()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestQueue_Receive_PoisonMessageDropped(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.client.LPush(ctx, q.key, "{not json").Err())

	_, err := q.Receive(ctx)
	require.Error(t, err)

	// The poison message is not left wedging the processing list
	n, lenErr := q.client.LLen(ctx, q.processingKey()).Result()
	require.NoError(t, lenErr)
	assert.Equal(t, int64(0), n)
}

// lremRefusingClient delegates to a real client but fails every LRem, so the
// poison-drop failure branch can be forced deterministically.
type lremRefusingClient struct {
	redis.UniversalClient
}

func (c lremRefusingClient) LRem(ctx context.Context, key string, count int64, value interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "lrem", key, count, value)
	cmd.SetErr(errors.New("lrem refused"))
	return cmd
}

func TestQueue_Receive_PoisonDropFailureSurfaced(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.client.LPush(ctx, q.key, "{not json").Err())

	wrapped := New(lremRefusingClient{q.client}, Options{
		Key:            q.key,
		ConsumerID:     "test-consumer",
		ReceiveTimeout: time.Second,
	})

	_, err := wrapped.Receive(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal work message")
	assert.Contains(t, err.Error(), "drop poison message")
	assert.Contains(t, err.Error(), "lrem refused")
}

func TestQueue_ProbeRoundTrip(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	seen, err := q.ProbeSeen(ctx, "probe-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, q.MarkProbe(ctx, "probe-1"))

	seen, err = q.ProbeSeen(ctx, "probe-1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestQueue_Publish_NilMessage(t *testing.T) {
	q := newTestQueue(t)
	require.Error(t, q.Publish(context.Background(), nil))
}

func TestQueue_Ack_NilDelivery(t *testing.T) {
	q := newTestQueue(t)
	require.NoError(t, q.Ack(context.Background(), nil))
}
