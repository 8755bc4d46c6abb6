package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/dmitrijs2005/taskhub/internal/logging"
)

// seams for tests
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newSESClientFromConfig = func(cfg aws.Config, optFns ...func(*sesv2.Options)) sesAPI {
		return sesv2.NewFromConfig(cfg, optFns...)
	}
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESConfig selects the SES account. Empty credentials fall back to the
// default AWS provider chain; an empty endpoint uses the regional one.
type SESConfig struct {
	Region          string
	BaseEndpoint    string
	AccessKeyID     string
	SecretAccessKey string
	From            string
}

// SESNotifier renders messages and sends them through Amazon SES v2.
type SESNotifier struct {
	client   sesAPI
	from     string
	renderer *Renderer
	logger   logging.Logger
}

func NewSESNotifier(ctx context.Context, c SESConfig, r *Renderer, l logging.Logger) (*SESNotifier, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newSESClientFromConfig(cfg, func(o *sesv2.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
	})

	return &SESNotifier{
		client:   client,
		from:     c.From,
		renderer: r,
		logger:   l.With("module", "ses_notifier"),
	}, nil
}

func (n *SESNotifier) Send(ctx context.Context, tpl Template, recipient string, data map[string]any) Result {
	msg, err := n.renderer.Render(tpl, data)
	if err != nil {
		return Failed(err)
	}

	out, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{recipient}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")},
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return Failed(fmt.Errorf("ses send: %w", err))
	}

	var messageID string
	if out != nil {
		messageID = aws.ToString(out.MessageId)
	}
	n.logger.Debug(ctx, "email sent", "template", string(tpl), "recipient", recipient, "message_id", messageID)
	return Ok()
}
