package main

import (
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/projeli/wiki-service/internal/bus/kafka"
	"github.com/projeli/wiki-service/internal/config"
)

// kafkaClient is one franz-go client shared by the project consumer and
// the resync/notification publisher.
type kafkaClient struct {
	*kgo.Client
	pub *kafka.Publisher
}

func newKafkaClient(cfg config.KafkaConfig) (*kafkaClient, error) {
	cl, err := kafka.NewClient(cfg.Brokers, cfg.Group, cfg.ProjectTopic)
	if err != nil {
		return nil, err
	}
	return &kafkaClient{
		Client: cl,
		pub:    kafka.NewPublisher(cl, cfg.ResyncTopic, cfg.NotificationTopic),
	}, nil
}
