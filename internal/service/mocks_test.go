package service

import (
	"context"
	"io"

	"linesink/internal/models"
	linetypes "linesink/pkg/line/types"

	"github.com/sirupsen/logrus"
)

// sentBatch records one delivery the mock gateway accepted.
type sentBatch struct {
	replyToken string
	to         string
	messages   []models.Message
}

// mockGateway records every delivery and fails on demand.
type mockGateway struct {
	replies  []sentBatch
	pushes   []sentBatch
	replyErr error
	pushErr  error
	// failAfter fails the Nth push (1-based) when > 0.
	failAfter int
}

func (m *mockGateway) Reply(ctx context.Context, replyToken string, messages ...models.Message) error {
	if m.replyErr != nil {
		return m.replyErr
	}
	m.replies = append(m.replies, sentBatch{replyToken: replyToken, messages: messages})
	return nil
}

func (m *mockGateway) ReplyText(ctx context.Context, replyToken, text string) error {
	return m.Reply(ctx, replyToken, models.NewTextMessage(text))
}

func (m *mockGateway) Push(ctx context.Context, to string, messages ...models.Message) error {
	if m.pushErr != nil {
		if m.failAfter <= 0 || len(m.pushes)+1 >= m.failAfter {
			return m.pushErr
		}
	}
	m.pushes = append(m.pushes, sentBatch{to: to, messages: messages})
	return nil
}

func (m *mockGateway) PushText(ctx context.Context, to, text string) error {
	return m.Push(ctx, to, models.NewTextMessage(text))
}

type mockProfileProvider struct {
	profile *linetypes.Profile
	err     error
	lastID  string
}

func (m *mockProfileProvider) GetProfile(ctx context.Context, userID string) (*linetypes.Profile, error) {
	m.lastID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

type mockDeliveryLog struct {
	records []sentBatch
	err     error
}

func (m *mockDeliveryLog) RecordDelivery(ctx context.Context, direction, target string, messageCount int) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, sentBatch{replyToken: direction, to: target})
	return nil
}

type mockContentHandler struct {
	imageCalls []string
	audioCalls []string
	videoCalls []string
	err        error
}

func (m *mockContentHandler) HandleImage(ctx context.Context, replyToken, contentID string) error {
	m.imageCalls = append(m.imageCalls, contentID)
	return m.err
}

func (m *mockContentHandler) HandleAudio(ctx context.Context, replyToken, contentID string) error {
	m.audioCalls = append(m.audioCalls, contentID)
	return m.err
}

func (m *mockContentHandler) HandleVideo(ctx context.Context, replyToken, contentID string) error {
	m.videoCalls = append(m.videoCalls, contentID)
	return m.err
}

type mockClient struct {
	replyErr   error
	pushErr    error
	replies    []sentBatch
	pushes     []sentBatch
	profile    *linetypes.Profile
	profileErr error
}

func (m *mockClient) ReplyMessage(ctx context.Context, replyToken string, messages []models.Message) error {
	if m.replyErr != nil {
		return m.replyErr
	}
	m.replies = append(m.replies, sentBatch{replyToken: replyToken, messages: messages})
	return nil
}

func (m *mockClient) PushMessage(ctx context.Context, to string, messages []models.Message) error {
	if m.pushErr != nil {
		return m.pushErr
	}
	m.pushes = append(m.pushes, sentBatch{to: to, messages: messages})
	return nil
}

func (m *mockClient) GetMessageContent(ctx context.Context, messageID string) (io.ReadCloser, error) {
	return nil, nil
}

func (m *mockClient) GetProfile(ctx context.Context, userID string) (*linetypes.Profile, error) {
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	return m.profile, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
