package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/dto"
)

// QueuePublisher defines the interface for publishing customers to the
// batch-scoring queue
type QueuePublisher interface {
	PublishCustomer(ctx context.Context, customer *dto.BatchCustomer) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}
