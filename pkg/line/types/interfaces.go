package types

import (
	"context"
	"io"

	"linesink/internal/models"
)

// Client is the platform messaging API surface this system depends on.
// All calls block until the platform acknowledges or fails.
type Client interface {
	ReplyMessage(ctx context.Context, replyToken string, messages []models.Message) error
	PushMessage(ctx context.Context, to string, messages []models.Message) error
	GetMessageContent(ctx context.Context, messageID string) (io.ReadCloser, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}
