package service

import (
	"time"

	"linesink/internal/models"
	"linesink/pkg/content"
)

// Scripted drip campaigns, fully materialized before execution. Each is
// a plain step list for the Sequencer; the keyword table in script.go
// decides which campaign runs.

const (
	contestTitle   = "コンテスト会場"
	contestAddress = "〒150-0002 東京都渋谷区渋谷２丁目２１−１"
	contestLat     = 35.65910807942215
	contestLong    = 139.70372892916203
	contestNotice  = "コンテストのお知らせ\n9月に行われるコンテストの場所が決定いたしました。\n奮ってご参加ください。"

	phoneURI   = "tel:090XXXX6238"
	creamPage  = "http://www.ionkesho.jp/products/list/cream01.html"
	cream5Page = "http://www.ionkesho.jp/products/list/cream05.html"
	lotionPage = "http://www.ionkesho.jp/products/list/lotion02.html"
	whitePage  = "http://www.ionkesho.jp/products/list/white01.html"
)

func contestLocation() models.LocationMessage {
	return models.NewLocationMessage(contestTitle, contestAddress, contestLat, contestLong)
}

func feedbackConfirm() models.TemplateMessage {
	return models.NewTemplateMessage("Confirm alt text", models.NewConfirmTemplate(
		"ご購入いただきました商品の使い心地はいかがでしょうか?",
		models.NewMessageAction("良い", "良い"),
		models.NewMessageAction("悪い", "悪い"),
	))
}

func productCarousel(uris *content.URIBuilder) models.TemplateMessage {
	newRoyalURL := uris.Build("/static/buttons/21jO3NZSEZL.jpg")
	peeressURL := uris.Build("/static/buttons/21ij1JnxCGL.jpg")
	softURL := uris.Build("/static/buttons/11jKc29jgaL.jpg")

	return models.NewTemplateMessage("Carousel alt text", models.NewCarouselTemplate(
		models.NewCarouselColumn(newRoyalURL, "ニューロイヤル", "イオン化粧品独自の温泉蒸しタオル美容に欠かせないアイテム。蒸しタオルによって、成分がなじみ、きめの整った素肌へ導きます。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", creamPage),
		),
		models.NewCarouselColumn(peeressURL, "薬用ピアレス　スプリーム", "つやつやと潤い豊かな素肌をもたらします。特に温泉蒸しタオル美容におすすめの弱酸性クリームです。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", cream5Page),
		),
		models.NewCarouselColumn(softURL, "ソフトローション", "お肌に潤いを与え女性特有のデリケートなお肌にも優しくなじみ、しっとり感も長く保つ保湿力のある化粧水です。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", lotionPage),
		),
	))
}

// campaignMessages is the showcase script behind the "messages" keyword:
// one of every message kind, paced three seconds apart.
func campaignMessages(uris *content.URIBuilder) []Step {
	videoURL := uris.Build("/static/buttons/ionkesho_cm.mp4")
	videoImageURL := uris.Build("/static/buttons/video.JPG")
	newRoyalURL := uris.Build("/static/buttons/21jO3NZSEZL.jpg")
	peeressURL := uris.Build("/static/buttons/21ij1JnxCGL.jpg")
	softURL := uris.Build("/static/buttons/11jKc29jgaL.jpg")

	pace := 3 * time.Second

	buttons := models.NewTemplateMessage("Button alt text", models.NewButtonsTemplate(
		peeressURL, "My button sample", "Hello, my button",
		models.NewURIAction("電話をかける", phoneURI),
		models.NewURIAction("商品ページ", cream5Page),
	))

	imageCarousel := models.NewTemplateMessage("ImageCarousel alt text", models.NewImageCarouselTemplate(
		models.NewImageCarouselColumn(newRoyalURL, models.NewURIAction("商品ページへ", creamPage)),
		models.NewImageCarouselColumn(peeressURL, models.NewURIAction("商品ページへ", cream5Page)),
		models.NewImageCarouselColumn(softURL, models.NewURIAction("商品ページへ", lotionPage)),
	))

	return []Step{
		{Message: models.NewImageMessage(newRoyalURL, newRoyalURL), Delay: pace},
		{Message: models.NewVideoMessage(videoURL, videoImageURL), Delay: pace},
		{Message: models.NewAudioMessage(videoURL, 100), Delay: pace},
		{Message: models.NewStickerMessage("1", "1"), Delay: pace},
		{Message: models.NewTextMessage(contestNotice)},
		{Message: contestLocation(), Delay: pace},
		{Message: feedbackConfirm(), Delay: pace},
		{Message: buttons, Delay: pace},
		{Message: productCarousel(uris), Delay: pace},
		{Message: imageCarousel},
	}
}

// campaignSeasonal is the long-running drip behind the "all" keyword,
// paced ten seconds apart.
func campaignSeasonal(uris *content.URIBuilder) []Step {
	videoURL := uris.Build("/static/buttons/ionkesho_cm.mp4")
	videoImageURL := uris.Build("/static/buttons/video.JPG")
	newRoyalURL := uris.Build("/static/buttons/21jO3NZSEZL.jpg")
	peeressURL := uris.Build("/static/buttons/21ij1JnxCGL.jpg")
	softURL := uris.Build("/static/buttons/11jKc29jgaL.jpg")
	successURL := uris.Build("/static/buttons/11VjyV6RZDL.jpg")

	pace := 10 * time.Second

	rainyCarousel := models.NewTemplateMessage("Carousel alt text", models.NewCarouselTemplate(
		models.NewCarouselColumn(peeressURL, "薬用ピアレス　スプリーム", "つやつやと潤い豊かな素肌をもたらします。特に温泉蒸しタオル美容におすすめの弱酸性クリームです。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", cream5Page),
		),
		models.NewCarouselColumn(softURL, "ソフトローション", "お肌に潤いを与え女性特有のデリケートなお肌にも優しくなじみ、しっとり感も長く保つ保湿力のある化粧水です。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", lotionPage),
		),
		models.NewCarouselColumn(successURL, "薬用サクセスストーリー", "ダイズエキス・ローヤルゼリーエキス・ヒアルロン酸をベースに、天然保湿成分を加えた弱酸性の薬用化粧品。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", whitePage),
		),
	))

	summerCarousel := models.NewTemplateMessage("Carousel alt text", models.NewCarouselTemplate(
		models.NewCarouselColumn(peeressURL, "薬用ピアレス　スプリーム", "つやつやと潤い豊かな素肌をもたらします。特に温泉蒸しタオル美容におすすめの弱酸性クリームです。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", cream5Page),
		),
		models.NewCarouselColumn(softURL, "ソフトローション", "お肌に潤いを与え女性特有のデリケートなお肌にも優しくなじみ、しっとり感も長く保つ保湿力のある化粧水です。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", lotionPage),
		),
		models.NewCarouselColumn(newRoyalURL, "ニューロイヤル", "イオン化粧品独自の温泉蒸しタオル美容に欠かせないアイテム。蒸しタオルによって、成分がなじみ、きめの整った素肌へ導きます。",
			models.NewURIAction("電話をかける", phoneURI),
			models.NewURIAction("商品ページ", creamPage),
		),
	))

	return []Step{
		{Message: models.NewTextMessage("じめじめとした日が続いていますがいかがお過ごしですか？"), Delay: pace},
		{Message: models.NewTextMessage("梅雨の時期にぴったりな商品を紹介します！")},
		{Message: rainyCarousel, Delay: pace},
		{Message: models.NewTextMessage("新しいCMが公開されました！")},
		{Message: models.NewVideoMessage(videoURL, videoImageURL), Delay: pace},
		{Message: models.NewTextMessage("梅雨もあけ、いよいよ夏本番となってまいりましたが、日焼け対策はちゃんと行っていますか？"), Delay: pace},
		{Message: models.NewTextMessage("夏の暑い時期にぴったりな商品を紹介します！")},
		{Message: summerCarousel, Delay: pace},
		{Message: models.NewTextMessage(contestNotice)},
		{Message: contestLocation()},
	}
}

// campaignPurchase follows up on a purchase notification ("1").
func campaignPurchase() []Step {
	return []Step{
		{Message: models.NewTextMessage("購入ありがとうございます"), Delay: 5 * time.Second},
		{Message: feedbackConfirm()},
	}
}

// campaignGoodFeedback thanks the user and offers a coupon ("良い").
func campaignGoodFeedback(uris *content.URIBuilder) []Step {
	couponURL := uris.Build("/static/buttons/coupon.jpg")
	return []Step{
		{Message: models.NewTextMessage("ご回答ありがとうございます"), Delay: 5 * time.Second},
		{Message: models.NewTextMessage("そろそろ商品が少なくなっていませんか？\n限定クーポンを配布しますので、この機会にぜひお買い求めください。")},
		{Message: productCarousel(uris)},
		{Message: models.NewImageMessage(couponURL, couponURL)},
	}
}

// campaignBadFeedback thanks the user and pitches new products ("悪い").
func campaignBadFeedback(uris *content.URIBuilder) []Step {
	return []Step{
		{Message: models.NewTextMessage("ご回答ありがとうございます"), Delay: 5 * time.Second},
		{Message: models.NewTextMessage("新しい商品をご紹介させていただきます。")},
		{Message: productCarousel(uris)},
	}
}

// campaignStickers pushes a burst of demo stickers ("sticker").
func campaignStickers() []Step {
	steps := make([]Step, 0, 5)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		steps = append(steps, Step{Message: models.NewStickerMessage("1", id)})
	}
	return steps
}
