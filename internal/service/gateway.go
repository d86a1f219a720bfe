package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"linesink/internal/constants"
	apperrors "linesink/internal/errors"
	"linesink/internal/models"
	"linesink/pkg/line/types"

	"github.com/sirupsen/logrus"
)

// Gateway is the synchronous facade over the platform's reply and push
// calls. It enforces the text budget on every outgoing text message and
// converts transport failures into fatal errors; it does not retry,
// rate-limit, or batch beyond what the caller grouped.
type Gateway interface {
	Reply(ctx context.Context, replyToken string, messages ...models.Message) error
	ReplyText(ctx context.Context, replyToken, text string) error
	Push(ctx context.Context, to string, messages ...models.Message) error
	PushText(ctx context.Context, to, text string) error
}

// DeliveryLog records successfully delivered batches. Recording is
// best-effort: a log failure never fails the delivery.
type DeliveryLog interface {
	RecordDelivery(ctx context.Context, direction, target string, messageCount int) error
}

type gateway struct {
	client types.Client
	log    DeliveryLog
	logger *logrus.Logger
}

func NewGateway(client types.Client, log DeliveryLog, logger *logrus.Logger) Gateway {
	return &gateway{
		client: client,
		log:    log,
		logger: logger,
	}
}

func (g *gateway) Reply(ctx context.Context, replyToken string, messages ...models.Message) error {
	if replyToken == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "reply token must not be empty")
	}
	if err := validateBatch(messages); err != nil {
		return err
	}

	if err := g.client.ReplyMessage(ctx, replyToken, truncateTexts(messages)); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "reply failed")
	}

	g.logger.WithFields(logrus.Fields{
		"replyToken": replyToken,
		"count":      len(messages),
	}).Info("Sent reply messages")

	g.record(ctx, "reply", replyToken, len(messages))
	return nil
}

func (g *gateway) ReplyText(ctx context.Context, replyToken, text string) error {
	return g.Reply(ctx, replyToken, models.NewTextMessage(text))
}

func (g *gateway) Push(ctx context.Context, to string, messages ...models.Message) error {
	if to == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "push target must not be empty")
	}
	if err := validateBatch(messages); err != nil {
		return err
	}

	if err := g.client.PushMessage(ctx, to, truncateTexts(messages)); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "push failed")
	}

	g.logger.WithFields(logrus.Fields{
		"to":    to,
		"count": len(messages),
	}).Info("Sent push messages")

	g.record(ctx, "push", to, len(messages))
	return nil
}

func (g *gateway) PushText(ctx context.Context, to, text string) error {
	return g.Push(ctx, to, models.NewTextMessage(text))
}

func (g *gateway) record(ctx context.Context, direction, target string, count int) {
	if g.log == nil {
		return
	}
	if err := g.log.RecordDelivery(ctx, direction, target, count); err != nil {
		g.logger.WithError(err).Warn("Failed to record delivery")
	}
}

func validateBatch(messages []models.Message) error {
	if len(messages) == 0 || len(messages) > constants.MaxMessagesPerBatch {
		return apperrors.New(apperrors.ErrCodeValidation,
			fmt.Sprintf("batch must contain 1..%d messages, got %d", constants.MaxMessagesPerBatch, len(messages)))
	}
	return nil
}

// truncateTexts applies the text budget to every text message in the
// batch regardless of origin. Non-text messages pass through untouched.
func truncateTexts(messages []models.Message) []models.Message {
	out := make([]models.Message, len(messages))
	for i, m := range messages {
		if tm, ok := m.(models.TextMessage); ok {
			tm.Text = TruncateText(tm.Text)
			out[i] = tm
			continue
		}
		out[i] = m
	}
	return out
}

// TruncateText enforces the platform character budget: texts longer
// than the budget are cut so that the kept prefix plus the ellipsis
// marker is exactly the budget.
func TruncateText(text string) string {
	if utf8.RuneCountInString(text) <= constants.MaxTextLength {
		return text
	}
	keep := constants.MaxTextLength - utf8.RuneCountInString(constants.TextEllipsis)
	runes := []rune(text)
	return string(runes[:keep]) + constants.TextEllipsis
}
