package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RedisEventBus implements eventbus.Bus on Redis Streams. Each event type
// has its own stream and consumer group; handlers that fail or panic send
// the message to a per-type DLQ stream.
type RedisEventBus struct {
	client        *redis.Client
	prefix        string
	typeFactories map[string]func() eventbus.Event
	logger        *slog.Logger
	block         time.Duration

	mu       sync.RWMutex
	handlers map[string][]eventbus.HandlerFunc
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWithRedis creates a Redis-backed event bus. types maps each event type
// to a constructor used to decode payloads; prefix namespaces every stream.
func NewWithRedis(
	client *redis.Client,
	prefix string,
	types map[string]func() eventbus.Event,
	logger *slog.Logger,
) (*RedisEventBus, error) {
	if client == nil {
		return nil, errors.New("redis event bus: client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:        client,
		prefix:        prefix,
		typeFactories: types,
		logger:        logger.With("component", "redis-event-bus"),
		block:         2 * time.Second,
		handlers:      make(map[string][]eventbus.HandlerFunc),
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

// Emit publishes an event to the stream of its type.
func (b *RedisEventBus) Emit(ctx context.Context, event eventbus.Event) error {
	b.logger.Debug("emitting event", "type", event.Type())

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redis event bus: marshal failed: %w", err)
	}
	envBytes, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return fmt.Errorf("redis event bus: envelope marshal failed: %w", err)
	}

	stream := streamNameFor(b.prefix, event.Type())
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"event": string(envBytes)},
	}).Err(); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	return nil
}

// Register adds handler for eventType. The first registration for a type
// starts its consumer.
func (b *RedisEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	first := len(b.handlers[eventType]) == 0
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
	if !first {
		return
	}

	stream := streamNameFor(b.prefix, eventType)
	group := groupNameFor(eventType)
	err := b.client.XGroupCreateMkStream(b.ctx, stream, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		b.logger.Error("failed to create consumer group", "error", err, "stream", stream)
	}

	consumer := fmt.Sprintf("consumer-%s-%d", eventType, time.Now().UnixNano())
	b.logger.Info("registering handler", "event_type", eventType, "consumer", consumer)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(eventType, stream, group, consumer)
	}()
}

func (b *RedisEventBus) consume(eventType, stream, group, consumer string) {
	ctx := b.ctx
	for ctx.Err() == nil {
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    b.block,
		}).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if !errors.Is(err, redis.Nil) {
				b.logger.Error("error reading from stream", "error", err, "consumer", consumer)
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
			}
			continue
		}

		for _, s := range res {
			for _, msg := range s.Messages {
				b.handleMessage(ctx, eventType, msg)
				if err := b.client.XAck(ctx, stream, group, msg.ID).Err(); err != nil {
					b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
				}
			}
		}
	}
}

func (b *RedisEventBus) handleMessage(ctx context.Context, eventType string, msg redis.XMessage) {
	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.pushToDLQ(ctx, eventType, msg.Values)
		return
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		b.logger.Error("failed to unmarshal envelope", "error", err)
		b.pushToDLQ(ctx, eventType, msg.Values)
		return
	}
	constructor, ok := b.typeFactories[env.Type]
	if !ok {
		b.logger.Error("unknown event type", "event_type", env.Type)
		b.pushToDLQ(ctx, eventType, msg.Values)
		return
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		b.logger.Error("failed to unmarshal payload", "error", err, "event_type", env.Type)
		b.pushToDLQ(ctx, eventType, msg.Values)
		return
	}

	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("handler panic recovered", "panic", r, "event_type", env.Type)
					b.pushToDLQ(ctx, eventType, msg.Values)
				}
			}()
			if err := handler(ctx, evt); err != nil {
				b.logger.Error("handler error", "error", err, "event_type", env.Type)
				b.pushToDLQ(ctx, eventType, msg.Values)
			}
		}()
	}
}

// pushToDLQ pushes the raw message to the DLQ stream of eventType for
// inspection or replay.
func (b *RedisEventBus) pushToDLQ(ctx context.Context, eventType string, values map[string]any) {
	dlqStream := dlqStreamName(b.prefix, eventType)
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: dlqStream,
		Values: values,
	}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlqStream)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlqStream)
}

// ReplayDLQ moves every message in the DLQ of eventType back onto its
// stream and returns how many were moved.
func (b *RedisEventBus) ReplayDLQ(ctx context.Context, eventType string) (int, error) {
	dlqStream := dlqStreamName(b.prefix, eventType)
	stream := streamNameFor(b.prefix, eventType)

	msgs, err := b.client.XRange(ctx, dlqStream, "-", "+").Result()
	if err != nil {
		return 0, fmt.Errorf("redis event bus: read DLQ: %w", err)
	}
	moved := 0
	for _, msg := range msgs {
		if err := b.client.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: msg.Values}).Err(); err != nil {
			return moved, fmt.Errorf("redis event bus: republish: %w", err)
		}
		if err := b.client.XDel(ctx, dlqStream, msg.ID).Err(); err != nil {
			return moved, fmt.Errorf("redis event bus: trim DLQ: %w", err)
		}
		moved++
	}
	return moved, nil
}

// Close stops every consumer and waits for in-flight messages.
func (b *RedisEventBus) Close() error {
	b.cancel()
	b.wg.Wait()
	return nil
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
