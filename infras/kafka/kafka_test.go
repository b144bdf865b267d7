package kafka_test

import (
	"math"
	"resto/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "A1",
		Value: map[string]any{"tableName": "A1", "guestCount": 3},
	}

	kafkaMsg, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("A1"), kafkaMsg.Key)
	assert.JSONEq(t, `{"tableName":"A1","guestCount":3}`, string(kafkaMsg.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "A1", Value: math.Inf(1)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}
