package service

import (
	"context"
	"testing"

	"linesink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(gw *mockGateway, content *mockContentHandler) *Dispatcher {
	if content == nil {
		content = &mockContentHandler{}
	}
	engine := newTestScriptEngine(gw, nil)
	return NewDispatcher(engine, content, gw, testLogger())
}

func messageEvent(content models.MessageContent) models.Event {
	return models.Event{
		Type:       models.EventTypeMessage,
		ReplyToken: "token",
		Source:     models.Source{Type: models.SourceTypeUser, UserID: "U1"},
		Message:    &content,
	}
}

func TestDispatcherTextGoesToScript(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), messageEvent(models.MessageContent{
		Type: models.MessageTypeText,
		Text: "unmatched text",
	}))
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	assert.Equal(t, models.Message(models.NewTextMessage("unmatched text")), gw.replies[0].messages[0])
}

func TestDispatcherMirrorsSticker(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), messageEvent(models.MessageContent{
		Type:      models.MessageTypeSticker,
		PackageID: "11537",
		StickerID: "52002734",
	}))
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	assert.Equal(t, models.Message(models.NewStickerMessage("11537", "52002734")), gw.replies[0].messages[0])
}

func TestDispatcherEchoesLocation(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), messageEvent(models.MessageContent{
		Type:      models.MessageTypeLocation,
		Title:     "my office",
		Address:   "Tokyo",
		Latitude:  35.687574,
		Longitude: 139.72922,
	}))
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	loc := gw.replies[0].messages[0].(models.LocationMessage)
	assert.Equal(t, "my office", loc.Title)
	assert.Equal(t, "Tokyo", loc.Address)
	assert.Equal(t, 35.687574, loc.Latitude)
	assert.Equal(t, 139.72922, loc.Longitude)
}

func TestDispatcherRoutesMediaToContentPipeline(t *testing.T) {
	gw := &mockGateway{}
	handler := &mockContentHandler{}
	d := newTestDispatcher(gw, handler)
	ctx := context.Background()

	require.NoError(t, d.HandleEvent(ctx, messageEvent(models.MessageContent{
		Type: models.MessageTypeImage, ID: "img-1",
	})))
	require.NoError(t, d.HandleEvent(ctx, messageEvent(models.MessageContent{
		Type: models.MessageTypeAudio, ID: "aud-1",
	})))
	require.NoError(t, d.HandleEvent(ctx, messageEvent(models.MessageContent{
		Type: models.MessageTypeVideo, ID: "vid-1",
	})))

	assert.Equal(t, []string{"img-1"}, handler.imageCalls)
	assert.Equal(t, []string{"aud-1"}, handler.audioCalls)
	assert.Equal(t, []string{"vid-1"}, handler.videoCalls)
	assert.Empty(t, gw.replies)
}

func TestDispatcherFollowStartsSurvey(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), models.Event{
		Type:       models.EventTypeFollow,
		ReplyToken: "token",
		Source:     models.Source{Type: models.SourceTypeUser, UserID: "U1"},
	})
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	tmpl := gw.replies[0].messages[0].(models.TemplateMessage)
	confirm := tmpl.Template.(models.ConfirmTemplate)
	assert.Contains(t, confirm.Text, "アンケートをはじめてもよろしいですか?")
	require.Len(t, confirm.Actions, 2)
}

func TestDispatcherJoinGreetsSource(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), models.Event{
		Type:       models.EventTypeJoin,
		ReplyToken: "token",
		Source:     models.Source{Type: models.SourceTypeGroup, GroupID: "G99"},
	})
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	text := gw.replies[0].messages[0].(models.TextMessage)
	assert.Equal(t, "Joined group G99", text.Text)
}

func TestDispatcherPostbackEchoesDataAndParams(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), models.Event{
		Type:       models.EventTypePostback,
		ReplyToken: "token",
		Source:     models.Source{Type: models.SourceTypeUser, UserID: "U1"},
		Postback: &models.PostbackContent{
			Data:   "action=sel",
			Params: map[string]string{"datetime": "2017-06-18T06:15"},
		},
	})
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	text := gw.replies[0].messages[0].(models.TextMessage)
	assert.Equal(t, "Got postback data action=sel, param {datetime=2017-06-18T06:15}", text.Text)
}

func TestDispatcherBeaconEchoesHwid(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), models.Event{
		Type:       models.EventTypeBeacon,
		ReplyToken: "token",
		Source:     models.Source{Type: models.SourceTypeUser, UserID: "U1"},
		Beacon:     &models.BeaconContent{Hwid: "d41d8cd98f", Type: "enter"},
	})
	require.NoError(t, err)

	require.Len(t, gw.replies, 1)
	text := gw.replies[0].messages[0].(models.TextMessage)
	assert.Equal(t, "Got beacon message d41d8cd98f", text.Text)
}

func TestDispatcherUnfollowIsSilent(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), models.Event{
		Type:   models.EventTypeUnfollow,
		Source: models.Source{Type: models.SourceTypeUser, UserID: "U1"},
	})
	require.NoError(t, err)
	assert.Empty(t, gw.replies)
	assert.Empty(t, gw.pushes)
}

func TestDispatcherIgnoresUnknownEventType(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), models.Event{
		Type:   models.EventType("memberJoined"),
		Source: models.Source{Type: models.SourceTypeGroup, GroupID: "G1"},
	})
	require.NoError(t, err)
	assert.Empty(t, gw.replies)
}

func TestDispatcherIgnoresUnknownMessageType(t *testing.T) {
	gw := &mockGateway{}
	d := newTestDispatcher(gw, nil)

	err := d.HandleEvent(context.Background(), messageEvent(models.MessageContent{
		Type: models.MessageType("file"),
		ID:   "f-1",
	}))
	require.NoError(t, err)
	assert.Empty(t, gw.replies)
}
