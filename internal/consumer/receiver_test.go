package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReceiver_ForwardsMessages(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	mockConsumer.On("QueueURL").Return("http://localhost:9324/queue/scoring")
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).Return(&awssqs.ReceiveMessageOutput{
		Messages: []types.Message{
			{
				MessageId: aws.String("msg-1"),
				Body:      aws.String(`{"customer_id":"C042"}`),
			},
		},
	}, nil)

	receiver := NewReceiver(mockConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 1,
		BufferSize:      10,
	}, log)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan types.Message, 10)

	go receiver.Start(ctx, out)

	select {
	case msg := <-out:
		assert.Equal(t, "msg-1", aws.ToString(msg.MessageId))
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}

	cancel()
}

func TestReceiver_KeepsGoingAfterReceiveError(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	mockConsumer.On("QueueURL").Return("http://localhost:9324/queue/scoring")
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).Return(&awssqs.ReceiveMessageOutput{
		Messages: []types.Message{
			{MessageId: aws.String("msg-2"), Body: aws.String(`{}`)},
		},
	}, nil)

	receiver := NewReceiver(mockConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 1,
		BufferSize:      10,
	}, log)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan types.Message, 10)

	go receiver.Start(ctx, out)

	select {
	case msg := <-out:
		assert.Equal(t, "msg-2", aws.ToString(msg.MessageId))
	case <-time.After(5 * time.Second):
		t.Fatal("receiver did not recover from the receive error")
	}

	cancel()
}
