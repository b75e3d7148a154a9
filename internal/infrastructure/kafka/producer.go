package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/cfg"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/jitter"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	publishBackoffBase = 200 * time.Millisecond
	publishBackoffMax  = 5 * time.Second
)

// Producer пишет сообщения в основной топик с повторами. Сообщение,
// не доставленное после всех попыток, отправляется в топик ошибок.
type Producer struct {
	writer      *kafka.Writer
	errorWriter *kafka.Writer
	logger      logger.Logger
	cfg         *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	errorWriter := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.ErrorTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		WriteTimeout: 10 * time.Second,
	}

	return &Producer{
		writer:      writer,
		errorWriter: errorWriter,
		logger:      logger,
		cfg:         cfg,
	}, nil
}

// WriteMessage доставляет сообщение в основной топик, повторяя отправку
// с экспоненциальным отступлением. После исчерпания попыток сообщение
// уходит в топик ошибок, исходная ошибка возвращается вызывающему.
func (p *Producer) WriteMessage(ctx context.Context, key, value []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
	}

	var lastErr error
	for attempt := 0; attempt <= p.cfg.PublishRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(publishBackoffBase, publishBackoffMax, attempt-1, jitter.DefaultJitter)
			select {
			case <-ctx.Done():
				return e.Wrap(whereami.WhereAmI(), ctx.Err())
			case <-time.After(backoff):
			}
		}

		lastErr = p.writer.WriteMessages(ctx, msg)
		if lastErr == nil {
			return nil
		}

		p.logger.Warnf("Kafka write attempt %d failed: %v", attempt+1, lastErr)
	}

	if err := p.errorWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Warnf("Kafka error-topic write failed: %v", err)
	}

	return e.Wrap(whereami.WhereAmI(), lastErr)
}

// EnsureTopics создаёт основной топик и топик ошибок, если их ещё нет.
func (p *Producer) EnsureTopics(timeout time.Duration) error {
	for _, topic := range []string{p.cfg.Topic, p.cfg.ErrorTopic} {
		if err := p.ensureTopic(topic, timeout); err != nil {
			return err
		}
	}

	return nil
}

func (p *Producer) ensureTopic(topic string, timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, topic))
	}
}

func (p *Producer) Close() error {
	if err := p.writer.Close(); err != nil {
		return err
	}

	return p.errorWriter.Close()
}
