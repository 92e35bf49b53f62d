// Package kafka connects the service to the message bus: it consumes
// project messages and publishes resync requests and user notifications.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/service"
	projectsync "github.com/projeli/wiki-service/internal/sync"
)

// Client is the subset of *kgo.Client used here.
type Client interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitUncommittedOffsets(ctx context.Context) error
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// NewClient dials brokers. When topic is set the client joins group and
// consumes it with manual commits.
func NewClient(brokers []string, group, topic string) (*kgo.Client, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.ClientID("wiki-service"),
	}
	if topic != "" {
		opts = append(opts,
			kgo.ConsumerGroup(group),
			kgo.ConsumeTopics(topic),
			kgo.DisableAutoCommit(),
		)
	}
	cl, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return cl, nil
}

// Handler processes one record value.
type Handler func(ctx context.Context, value []byte) error

// Consumer polls project messages and hands them to a handler in order.
type Consumer struct {
	client Client
	handle Handler
	log    *zap.Logger
}

func NewConsumer(client Client, handle Handler, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{client: client, handle: handle, log: log}
}

// Run polls until ctx ends or the client is closed. Offsets are committed
// after each processed batch; a message whose handling failed is logged and
// skipped, so one bad project never blocks a partition.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}
		for _, fe := range fetches.Errors() {
			if errors.Is(fe.Err, context.Canceled) {
				return nil
			}
			c.log.Error("fetch", zap.String("topic", fe.Topic), zap.Int32("partition", fe.Partition), zap.Error(fe.Err))
		}

		var stopped bool
		fetches.EachRecord(func(r *kgo.Record) {
			if stopped {
				return
			}
			if err := c.handle(ctx, r.Value); err != nil {
				if ctx.Err() != nil {
					stopped = true
					return
				}
				c.log.Error("handle record",
					zap.String("topic", r.Topic),
					zap.Int32("partition", r.Partition),
					zap.Int64("offset", r.Offset),
					zap.Error(err))
			}
		})
		if stopped {
			return nil
		}
		if err := c.client.CommitUncommittedOffsets(ctx); err != nil {
			c.log.Warn("commit offsets", zap.Error(err))
		}
	}
}

// Publisher produces resync requests and notifications.
type Publisher struct {
	client            Client
	resyncTopic       string
	notificationTopic string
}

func NewPublisher(client Client, resyncTopic, notificationTopic string) *Publisher {
	return &Publisher{client: client, resyncTopic: resyncTopic, notificationTopic: notificationTopic}
}

var (
	_ projectsync.Publisher = (*Publisher)(nil)
	_ service.Notifier      = (*Publisher)(nil)
)

// RequestResync publishes req keyed by project.
func (p *Publisher) RequestResync(ctx context.Context, req projectsync.ResyncRequest) error {
	value, err := json.Marshal(req)
	if err != nil {
		return err
	}
	rec := &kgo.Record{Topic: p.resyncTopic, Key: []byte(req.ProjectID.String()), Value: value}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce resync request: %w", err)
	}
	return nil
}

// Notify publishes one record per notification, keyed by recipient.
func (p *Publisher) Notify(ctx context.Context, ns []service.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	recs := make([]*kgo.Record, 0, len(ns))
	for _, n := range ns {
		value, err := json.Marshal(n)
		if err != nil {
			return err
		}
		recs = append(recs, &kgo.Record{Topic: p.notificationTopic, Key: []byte(n.UserID), Value: value})
	}
	if err := p.client.ProduceSync(ctx, recs...).FirstErr(); err != nil {
		return fmt.Errorf("produce notifications: %w", err)
	}
	return nil
}
