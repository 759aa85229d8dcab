package kafka_test

import (
	"context"
	"hoteldash/config"
	"hoteldash/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "1:101",
		Value: map[string]any{"booking_id": 7, "status": "confirmed"},
	}

	kafkaMsg, err := msg.ToKafkaMessage("hotel.booking")

	require.NoError(t, err)
	assert.Equal(t, "hotel.booking", kafkaMsg.Topic)
	assert.Equal(t, []byte("1:101"), kafkaMsg.Key)
	assert.JSONEq(t, `{"booking_id":7,"status":"confirmed"}`, string(kafkaMsg.Value))
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("hotel.booking")

	assert.Error(t, err)
}

func TestNew_DisabledClientDropsMessages(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg)

	err := client.SendMessages(context.Background(), "hotel.booking", kafka.Message{Key: "k", Value: "v"})

	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}
