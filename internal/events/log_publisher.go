package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher apenas registra os eventos; usado quando KAFKA_BROKERS não está configurado
type LogPublisher struct {
	logger logrus.FieldLogger
}

func NewLogPublisher(logger logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.WithFields(logrus.Fields{
		"event_type":    eventType,
		"partition_key": partitionKey,
		"payload_bytes": len(payload),
	}).Info("Evento publicado")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
