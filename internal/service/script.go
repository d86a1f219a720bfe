package service

import (
	"context"

	"linesink/internal/models"
	"linesink/pkg/content"
	linetypes "linesink/pkg/line/types"

	"github.com/sirupsen/logrus"
)

// ProfileProvider exposes the profile lookup the "profile" keyword needs.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (*linetypes.Profile, error)
}

// ScriptEngine maps the literal text of an inbound message to a
// response. It is memoryless: there is no per-user session state, the
// dialogue's "current position" is entirely encoded in the text the
// user just sent, so the same input always produces the same output.
// Matching is exact and case-sensitive; unknown text is echoed back.
type ScriptEngine struct {
	gateway    Gateway
	sequencer  *Sequencer
	profiles   ProfileProvider
	uris       *content.URIBuilder
	pushTarget string
	logger     *logrus.Logger
}

func NewScriptEngine(gateway Gateway, sequencer *Sequencer, profiles ProfileProvider, uris *content.URIBuilder, pushTarget string, logger *logrus.Logger) *ScriptEngine {
	return &ScriptEngine{
		gateway:    gateway,
		sequencer:  sequencer,
		profiles:   profiles,
		uris:       uris,
		pushTarget: pushTarget,
		logger:     logger,
	}
}

func (e *ScriptEngine) HandleText(ctx context.Context, replyToken string, event models.Event, text string) error {
	e.logger.WithFields(logrus.Fields{
		"replyToken": replyToken,
		"text":       text,
	}).Info("Got text message")

	switch text {
	// Survey question 1. "OK" continues from the follow greeting,
	// "いいえ" re-enters from the final confirmation, "質問1" restarts.
	case "OK", "いいえ", "質問1":
		return e.replyTemplate(ctx, replyToken, "Confirm alt text", models.NewConfirmTemplate(
			"質問1:\n最近の肌の悩みは何ですか?\n",
			models.NewMessageAction("肌の悩み", "肌の悩み"),
			models.NewMessageAction("肌の老化", "肌の老化"),
		))

	case "NO":
		return e.gateway.ReplyText(ctx, replyToken, "アンケートを開始されたい場合は「アンケート」と入力してください")

	case "肌の悩み":
		return e.replyTemplate(ctx, replyToken, "Carousel alt text", models.NewCarouselTemplate(
			models.NewCarouselColumn(e.uris.Build("/static/buttons/ionsoap.png"), "ニキビ", "質問1",
				models.NewMessageAction("ニキビ", "ニキビ")),
			models.NewCarouselColumn(e.uris.Build("/static/buttons/takai.png"), "年齢肌", "質問1",
				models.NewMessageAction("年齢肌", "年齢肌")),
			models.NewCarouselColumn(e.uris.Build("/static/buttons/imagetop.png"), "脂性肌", "質問1",
				models.NewMessageAction("脂性肌", "脂性肌")),
		))

	case "肌の老化":
		return e.replyTemplate(ctx, replyToken, "Carousel alt text", models.NewCarouselTemplate(
			models.NewCarouselColumn(e.uris.Build("/static/buttons/item1.png"), "ハリ", "質問1",
				models.NewMessageAction("ハリ", "ハリ")),
			models.NewCarouselColumn(e.uris.Build("/static/buttons/takai.png"), "乾燥肌", "質問1",
				models.NewMessageAction("乾燥肌", "乾燥肌")),
			models.NewCarouselColumn(e.uris.Build("/static/buttons/highlotion.png"), "毛穴", "質問1",
				models.NewMessageAction("毛穴", "毛穴")),
		))

	// Every answer to question 1 routes to question 2; "質問2" also
	// enters here directly when the user asked to change an answer.
	case "ニキビ", "乾燥肌", "脂性肌", "年齢肌", "ハリ", "毛穴", "質問2":
		return e.replyTemplate(ctx, replyToken, "Button alt text", models.NewButtonsTemplate(
			e.uris.Build("/static/buttons/LINEsuteppu2.png"),
			"質問2:",
			"化粧品は商品購入したときから約何日後に使い切りますか?",
			models.NewMessageAction("約10日後", "約10日後"),
			models.NewMessageAction("約20日後", "約20日後"),
			models.NewMessageAction("約1ヵ月後", "約1ヶ月後"),
			models.NewMessageAction("1ヶ月以上", "1ヶ月以上"),
		))

	case "約10日後", "1ヶ月以上", "約20日後", "約1ヶ月後":
		return e.replyTemplate(ctx, replyToken, "Confirm alt text", models.NewConfirmTemplate(
			"質問3:\nニュースを配信してもよろしいですか??",
			models.NewMessageAction("ハイ", "ここで時間を入力します"),
			models.NewMessageAction("イイエ", "イイエ"),
		))

	case "ここで時間を入力します", "イイエ":
		return e.replyTemplate(ctx, replyToken, "Confirm alt text", models.NewConfirmTemplate(
			"回答はよろしいでしょうか?",
			models.NewMessageAction("はい", "はい"),
			models.NewMessageAction("変更する", "変更する"),
		))

	case "はい":
		return e.gateway.ReplyText(ctx, replyToken, "ご回答して頂きありがとうございました!\n"+
			"今回ご回答頂いた情報を元にお客様へ情報を発信していきますのでよろしくおねがいします!")

	case "変更する":
		return e.replyTemplate(ctx, replyToken, "Confirm alt text", models.NewConfirmTemplate(
			"どちらから変更しますか?\n",
			models.NewMessageAction("質問1", "質問1"),
			models.NewMessageAction("質問2", "質問2"),
		))

	case "profile":
		return e.handleProfile(ctx, replyToken, event)

	case "image":
		url := e.uris.Build("/static/buttons/21jO3NZSEZL.jpg")
		return e.gateway.Push(ctx, e.pushTarget, models.NewImageMessage(url, url))

	case "video":
		return e.gateway.Push(ctx, e.pushTarget, models.NewVideoMessage(
			e.uris.Build("/static/buttons/ionkesho_cm.mp4"),
			e.uris.Build("/static/buttons/video.JPG"),
		))

	case "audio":
		return e.gateway.Push(ctx, e.pushTarget, models.NewAudioMessage(
			e.uris.Build("/static/buttons/ionkesho_cm.mp4"), 100))

	case "location":
		return e.gateway.Push(ctx, e.pushTarget, contestLocation())

	case "sticker":
		return e.sequencer.Run(ctx, campaignStickers())

	case "messages":
		return e.sequencer.Run(ctx, campaignMessages(e.uris))

	case "1":
		return e.sequencer.Run(ctx, campaignPurchase())

	case "良い":
		return e.sequencer.Run(ctx, campaignGoodFeedback(e.uris))

	case "悪い":
		return e.sequencer.Run(ctx, campaignBadFeedback(e.uris))

	case "confirm":
		return e.gateway.Push(ctx, e.pushTarget, models.NewTemplateMessage("Confirm alt text",
			models.NewConfirmTemplate(
				"Do it?",
				models.NewMessageAction("Yes", "Yes!"),
				models.NewMessageAction("No", "No!"),
			)))

	case "buttons":
		return e.gateway.Push(ctx, e.pushTarget, models.NewTemplateMessage("Button alt text",
			models.NewButtonsTemplate(
				e.uris.Build("/static/buttons/1040.jpg"),
				"My button sample",
				"Hello, my button",
				models.NewURIAction("Go to line.me", "https://line.me"),
				models.NewPostbackAction("Say hello1", "hello こんにちは", ""),
				models.NewPostbackAction("言 hello2", "hello こんにちは", "hello こんにちは"),
				models.NewMessageAction("Say message", "Rice=米"),
			)))

	case "carousel":
		imageURL := e.uris.Build("/static/buttons/1040.jpg")
		return e.gateway.Push(ctx, e.pushTarget, models.NewTemplateMessage("Carousel alt text",
			models.NewCarouselTemplate(
				models.NewCarouselColumn(imageURL, "hoge", "fuga",
					models.NewURIAction("Go to line.me", "https://line.me"),
					models.NewURIAction("Go to line.me", "https://line.me"),
					models.NewPostbackAction("Say hello1", "hello こんにちは", ""),
				),
				models.NewCarouselColumn(imageURL, "hoge", "fuga",
					models.NewPostbackAction("言 hello2", "hello こんにちは", "hello こんにちは"),
					models.NewPostbackAction("言 hello2", "hello こんにちは", "hello こんにちは"),
					models.NewMessageAction("Say message", "Rice=米"),
				),
				models.NewCarouselColumn(imageURL, "Datetime Picker", "Please select a date, time or datetime",
					models.NewDatetimePickerAction("Datetime", "action=sel", "datetime", "2017-06-18T06:15", "2100-12-31T23:59", "1900-01-01T00:00"),
					models.NewDatetimePickerAction("Date", "action=sel&only=date", "date", "2017-06-18", "2100-12-31", "1900-01-01"),
					models.NewDatetimePickerAction("Time", "action=sel&only=time", "time", "06:15", "23:59", "00:00"),
				),
			)))

	case "image_carousel":
		imageURL := e.uris.Build("/static/buttons/1040.jpg")
		return e.gateway.Push(ctx, e.pushTarget, models.NewTemplateMessage("ImageCarousel alt text",
			models.NewImageCarouselTemplate(
				models.NewImageCarouselColumn(imageURL, models.NewURIAction("Goto line.me", "https://line.me")),
				models.NewImageCarouselColumn(imageURL, models.NewMessageAction("Say message", "Rice=米")),
				models.NewImageCarouselColumn(imageURL, models.NewPostbackAction("言 hello2", "hello こんにちは", "hello こんにちは")),
			)))

	case "imagemap":
		return e.gateway.Reply(ctx, replyToken, models.NewImagemapMessage(
			e.uris.Build("/static/rich"),
			"This is alt text",
			models.ImagemapBaseSize{Width: 1040, Height: 1040},
			models.NewURIImagemapAction("https://store.line.me/family/manga/en", models.ImagemapArea{X: 0, Y: 0, Width: 520, Height: 520}),
			models.NewURIImagemapAction("https://store.line.me/family/music/en", models.ImagemapArea{X: 520, Y: 0, Width: 520, Height: 520}),
			models.NewURIImagemapAction("https://store.line.me/family/play/en", models.ImagemapArea{X: 0, Y: 520, Width: 520, Height: 520}),
			models.NewMessageImagemapAction("URANAI!", models.ImagemapArea{X: 520, Y: 520, Width: 520, Height: 520}),
		))

	case "all":
		return e.sequencer.Run(ctx, campaignSeasonal(e.uris))

	default:
		e.logger.WithFields(logrus.Fields{
			"replyToken": replyToken,
			"text":       text,
		}).Info("Returning echo message")
		return e.gateway.ReplyText(ctx, replyToken, text)
	}
}

func (e *ScriptEngine) handleProfile(ctx context.Context, replyToken string, event models.Event) error {
	userID := event.Source.UserID
	if userID == "" {
		return e.gateway.ReplyText(ctx, replyToken, "Bot can't use profile API without user ID")
	}

	profile, err := e.profiles.GetProfile(ctx, userID)
	if err != nil {
		return e.gateway.ReplyText(ctx, replyToken, err.Error())
	}

	// The display-name line echoes the user ID; only the status
	// message comes from the profile.
	return e.gateway.Reply(ctx, replyToken,
		models.NewTextMessage("Display name: "+userID),
		models.NewTextMessage("Status message: "+profile.StatusMessage),
	)
}

func (e *ScriptEngine) replyTemplate(ctx context.Context, replyToken, altText string, template models.Template) error {
	return e.gateway.Reply(ctx, replyToken, models.NewTemplateMessage(altText, template))
}
