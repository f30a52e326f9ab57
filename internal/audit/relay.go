package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	defaultRelayInterval = 2 * time.Second
	defaultRelayBatch    = 100
)

// OutboxSource supplies unpublished outbox rows and records publication.
type OutboxSource interface {
	UnpublishedBatch(ctx context.Context, limit int) ([]OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}

// EventProducer is the slice of the Kafka client the relay needs.
// *kgo.Client satisfies it.
type EventProducer interface {
	ProduceSync(ctx context.Context, records ...*kgo.Record) kgo.ProduceResults
}

// Relay polls the outbox and produces pending events to a Kafka topic.
// Kafka is the downstream source of truth for audit consumers; the outbox
// row guarantees an event is relayed at least once even across restarts.
type Relay struct {
	source   OutboxSource
	client   EventProducer
	topic    string
	logger   *slog.Logger
	interval time.Duration
	batch    int
}

// RelayOption configures the relay.
type RelayOption func(*Relay)

// WithInterval overrides the polling interval.
func WithInterval(interval time.Duration) RelayOption {
	return func(r *Relay) {
		r.interval = interval
	}
}

// WithBatchSize overrides how many rows are relayed per poll.
func WithBatchSize(batch int) RelayOption {
	return func(r *Relay) {
		r.batch = batch
	}
}

// NewRelay constructs a relay producing to the given topic.
func NewRelay(source OutboxSource, client EventProducer, topic string, logger *slog.Logger, opts ...RelayOption) *Relay {
	r := &Relay{
		source:   source,
		client:   client,
		topic:    topic,
		logger:   logger,
		interval: defaultRelayInterval,
		batch:    defaultRelayBatch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls until ctx is cancelled. Produce failures leave rows unpublished
// so the next tick retries them; consumers must tolerate duplicates.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.relayOnce(ctx); err != nil {
				r.logger.Error("audit relay tick failed", "error", err)
			}
		}
	}
}

func (r *Relay) relayOnce(ctx context.Context) error {
	entries, err := r.source.UnpublishedBatch(ctx, r.batch)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	records := make([]*kgo.Record, len(entries))
	for i, entry := range entries {
		records[i] = &kgo.Record{
			Topic: r.topic,
			Key:   []byte(entry.Action),
			Value: entry.Payload,
		}
	}
	if err := r.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return err
	}

	ids := make([]uuid.UUID, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	if err := r.source.MarkPublished(ctx, ids); err != nil {
		return err
	}
	r.logger.Debug("relayed audit events", "count", len(entries), "topic", r.topic)
	return nil
}
