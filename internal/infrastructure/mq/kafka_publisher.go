package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"cadastro_api/internal/config"
	"cadastro_api/pkg/errorx"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to the cadastro topic, keyed by usuario id
// so every event of one user lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates the topic writer from config.
func NewKafkaPublisher(conf config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.HostPort),
			Topic:                  conf.CadastroTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           conf.Timeout * time.Second,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// CreateTopic creates the cadastro topic.
func CreateTopic(conf config.KafkaConfig) error {
	conn, err := kafka.Dial("tcp", conf.HostPort)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeMQError, "dial kafka")
	}
	defer conn.Close()

	partitions := conf.Partition
	if partitions <= 0 {
		partitions = 1
	}
	if err := conn.CreateTopics(kafka.TopicConfig{
		Topic:             conf.CadastroTopic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	}); err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "create topic %s", conf.CadastroTopic)
	}
	return nil
}

// Publish writes one event
func (k *KafkaPublisher) Publish(ctx context.Context, ev UsuarioEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeMQError, "encode usuario event")
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.ID), 10)),
		Value: value,
	}); err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "publish %s", ev.Type)
	}
	return nil
}

// Close flushes and closes the writer
func (k *KafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		zap.L().Error("close kafka writer", zap.Error(err))
		return err
	}
	return nil
}
