package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueName(t *testing.T) {
	assert.Equal(t, "card_account_created_queue", QueueName("card", AccountCreated))
	assert.Equal(t, "fraud_account_deleted_queue", QueueName("fraud", AccountDeleted))
}

func TestAccountMessageWireFormat(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := AccountMessage{
		ID:         "7b0d3ee5-2f4a-4c5f-9d35-1f0a0c9be111",
		CreatedAt:  created,
		UpdatedAt:  created,
		Name:       "John Doe",
		NationalID: "36070315502",
		Status:     "ACTIVE",
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(body, &wire))
	for _, field := range []string{"id", "createdAt", "updatedAt", "name", "nationalId", "status"} {
		assert.Contains(t, wire, field)
	}
}

func TestAccountMessageDecodesLeniently(t *testing.T) {
	// A newer producer may add fields and omit ones the consumer defaults.
	body := []byte(`{"id":"abc","name":"John Doe","status":"ACTIVE","tier":"gold","region":"br"}`)

	var msg AccountMessage
	require.NoError(t, json.Unmarshal(body, &msg))

	assert.Equal(t, "abc", msg.ID)
	assert.Equal(t, "John Doe", msg.Name)
	assert.Equal(t, "ACTIVE", msg.Status)
	assert.Empty(t, msg.NationalID)
	assert.True(t, msg.CreatedAt.IsZero())
}

func TestDispatchInvokesHandler(t *testing.T) {
	var got AccountMessage
	svc := NewConsumerService("amqp://localhost", "card", AccountCreated, func(ctx context.Context, msg AccountMessage) error {
		got = msg
		return nil
	})

	body, _ := json.Marshal(AccountMessage{ID: "acc-1", Name: "John Doe", Status: "ACTIVE"})
	svc.dispatch(context.Background(), amqp.Delivery{RoutingKey: AccountCreated, Body: body})

	assert.Equal(t, "acc-1", got.ID)
	assert.Equal(t, "John Doe", got.Name)
}

func TestDispatchSkipsUndecodableBody(t *testing.T) {
	called := false
	svc := NewConsumerService("amqp://localhost", "card", AccountCreated, func(ctx context.Context, msg AccountMessage) error {
		called = true
		return nil
	})

	svc.dispatch(context.Background(), amqp.Delivery{Body: []byte("not-json")})

	assert.False(t, called)
}
