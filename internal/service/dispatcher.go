package service

import (
	"context"
	"fmt"

	"linesink/internal/models"

	"github.com/sirupsen/logrus"
)

// HeavyContentHandler is the content pipeline surface the dispatcher
// delegates media events to.
type HeavyContentHandler interface {
	HandleImage(ctx context.Context, replyToken, contentID string) error
	HandleAudio(ctx context.Context, replyToken, contentID string) error
	HandleVideo(ctx context.Context, replyToken, contentID string) error
}

// Dispatcher routes one inbound event to its handler. Text goes to the
// script engine, media to the content pipeline; the remaining kinds get
// a fixed one-shot reply or are logged and ignored. Only fatal link
// failures propagate outward.
type Dispatcher struct {
	script  *ScriptEngine
	content HeavyContentHandler
	gateway Gateway
	logger  *logrus.Logger
}

func NewDispatcher(script *ScriptEngine, content HeavyContentHandler, gateway Gateway, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		script:  script,
		content: content,
		gateway: gateway,
		logger:  logger,
	}
}

func (d *Dispatcher) HandleEvent(ctx context.Context, event models.Event) error {
	d.logger.WithFields(logrus.Fields{
		"type":   event.Type,
		"source": event.Source.String(),
	}).Info("Received event")

	switch event.Type {
	case models.EventTypeMessage:
		return d.handleMessageEvent(ctx, event)

	case models.EventTypeFollow:
		return d.gateway.Reply(ctx, event.ReplyToken, models.NewTemplateMessage("Confirm alt text",
			models.NewConfirmTemplate(
				"アンケートをはじめてもよろしいですか?\n",
				models.NewMessageAction("OK", "OK"),
				models.NewMessageAction("NO", "NO"),
			)))

	case models.EventTypeJoin:
		return d.gateway.ReplyText(ctx, event.ReplyToken, "Joined "+event.Source.String())

	case models.EventTypePostback:
		return d.gateway.ReplyText(ctx, event.ReplyToken,
			fmt.Sprintf("Got postback data %s, param %s", event.Postback.Data, event.Postback.ParamsString()))

	case models.EventTypeBeacon:
		return d.gateway.ReplyText(ctx, event.ReplyToken, "Got beacon message "+event.Beacon.Hwid)

	case models.EventTypeUnfollow:
		d.logger.WithField("source", event.Source.String()).Info("Unfollowed")
		return nil

	default:
		d.logger.WithField("type", event.Type).Info("Received event (ignored)")
		return nil
	}
}

func (d *Dispatcher) handleMessageEvent(ctx context.Context, event models.Event) error {
	msg := event.Message

	switch msg.Type {
	case models.MessageTypeText:
		return d.script.HandleText(ctx, event.ReplyToken, event, msg.Text)

	case models.MessageTypeSticker:
		return d.gateway.Reply(ctx, event.ReplyToken, models.NewStickerMessage(msg.PackageID, msg.StickerID))

	case models.MessageTypeLocation:
		return d.gateway.Reply(ctx, event.ReplyToken,
			models.NewLocationMessage(msg.Title, msg.Address, msg.Latitude, msg.Longitude))

	case models.MessageTypeImage:
		return d.content.HandleImage(ctx, event.ReplyToken, msg.ID)

	case models.MessageTypeAudio:
		return d.content.HandleAudio(ctx, event.ReplyToken, msg.ID)

	case models.MessageTypeVideo:
		return d.content.HandleVideo(ctx, event.ReplyToken, msg.ID)

	default:
		d.logger.WithField("messageType", msg.Type).Info("Received message (ignored)")
		return nil
	}
}
