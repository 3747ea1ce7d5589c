package mq

import (
	"cadastro_api/internal/config"
	"cadastro_api/pkg/constants"

	"go.uber.org/zap"
)

// NewPublisher picks the publisher for conf.MessageMode, "channel" unless "kafka".
func NewPublisher(conf config.KafkaConfig) Publisher {
	if conf.MessageMode == "kafka" {
		if err := CreateTopic(conf); err != nil {
			zap.L().Warn("create kafka topic", zap.Error(err))
		}
		return NewKafkaPublisher(conf)
	}
	return NewChannelPublisher(constants.EVENT_BUFFER_SIZE)
}
