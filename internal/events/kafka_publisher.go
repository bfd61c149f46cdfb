package events

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// publishBatchTimeout limita a espera do writer por mais mensagens antes de enviar o lote;
// Publish roda no caminho da requisição.
const publishBatchTimeout = 10 * time.Millisecond

type KafkaPublisher struct {
	writer       *kafka.Writer
	defaultTopic string
	topicByEvent map[string]string
}

// NewKafkaPublisher envia todos os eventos para defaultTopic, salvo quando
// topicByEvent define um tópico específico para o tipo.
func NewKafkaPublisher(brokers []string, defaultTopic string, topicByEvent map[string]string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           publishBatchTimeout,
		},
		defaultTopic: defaultTopic,
		topicByEvent: topicByEvent,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topicFor(eventType),
		Key:   []byte(partitionKey),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
		Time: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) topicFor(eventType string) string {
	if mapped, ok := p.topicByEvent[eventType]; ok && mapped != "" {
		return mapped
	}
	if p.defaultTopic != "" {
		return p.defaultTopic
	}
	return eventType
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
