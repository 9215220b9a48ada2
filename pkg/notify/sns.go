package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// RecipientAttribute is the SNS message attribute subscribers filter on.
const RecipientAttribute = "recipient"

// Publisher is the part of the SNS client used for delivery.
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNS publishes every message to one topic, tagged with the recipient.
type SNS struct {
	client   Publisher
	topicARN string
}

// NewSNS creates an SNS notifier around an existing client.
func NewSNS(client Publisher, topicARN string) *SNS {
	return &SNS{client: client, topicARN: topicARN}
}

// NewSNSFromEnv loads the default AWS configuration chain and builds an SNS notifier.
func NewSNSFromEnv(ctx context.Context, topicARN string) (*SNS, error) {
	if topicARN == "" {
		return nil, errors.New("sns topic ARN is required")
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewSNS(sns.NewFromConfig(cfg), topicARN), nil
}

func (s *SNS) Notify(ctx context.Context, msg Message) error {
	input := &sns.PublishInput{
		Message:  aws.String(msg.Text),
		TopicArn: aws.String(s.topicARN),
		MessageAttributes: map[string]types.MessageAttributeValue{
			RecipientAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(msg.Recipient),
			},
		},
	}
	if msg.Subject != "" {
		input.Subject = aws.String(msg.Subject)
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("error publishing to AWS SNS topic %s: %w", s.topicARN, err)
	}
	return nil
}
