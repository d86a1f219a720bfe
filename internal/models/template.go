package models

// Template is the payload of a template message: one of confirm, buttons,
// carousel, or image carousel.
type Template interface {
	template()
}

// ConfirmTemplate renders a question with exactly two action buttons.
type ConfirmTemplate struct {
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Actions []Action `json:"actions"`
}

func NewConfirmTemplate(text string, left, right Action) ConfirmTemplate {
	return ConfirmTemplate{Type: "confirm", Text: text, Actions: []Action{left, right}}
}

// ButtonsTemplate renders an image with a title, body text, and 1..4 actions.
type ButtonsTemplate struct {
	Type              string   `json:"type"`
	ThumbnailImageURL string   `json:"thumbnailImageUrl,omitempty"`
	Title             string   `json:"title,omitempty"`
	Text              string   `json:"text"`
	Actions           []Action `json:"actions"`
}

func NewButtonsTemplate(thumbnailImageURL, title, text string, actions ...Action) ButtonsTemplate {
	return ButtonsTemplate{Type: "buttons", ThumbnailImageURL: thumbnailImageURL, Title: title, Text: text, Actions: actions}
}

// CarouselTemplate renders 1..10 columns, each with 1..3 actions.
type CarouselTemplate struct {
	Type    string           `json:"type"`
	Columns []CarouselColumn `json:"columns"`
}

func NewCarouselTemplate(columns ...CarouselColumn) CarouselTemplate {
	return CarouselTemplate{Type: "carousel", Columns: columns}
}

type CarouselColumn struct {
	ThumbnailImageURL string   `json:"thumbnailImageUrl,omitempty"`
	Title             string   `json:"title,omitempty"`
	Text              string   `json:"text"`
	Actions           []Action `json:"actions"`
}

func NewCarouselColumn(thumbnailImageURL, title, text string, actions ...Action) CarouselColumn {
	return CarouselColumn{ThumbnailImageURL: thumbnailImageURL, Title: title, Text: text, Actions: actions}
}

// ImageCarouselTemplate renders 1..10 image columns with one action each.
type ImageCarouselTemplate struct {
	Type    string                `json:"type"`
	Columns []ImageCarouselColumn `json:"columns"`
}

func NewImageCarouselTemplate(columns ...ImageCarouselColumn) ImageCarouselTemplate {
	return ImageCarouselTemplate{Type: "image_carousel", Columns: columns}
}

type ImageCarouselColumn struct {
	ImageURL string `json:"imageUrl"`
	Action   Action `json:"action"`
}

func NewImageCarouselColumn(imageURL string, action Action) ImageCarouselColumn {
	return ImageCarouselColumn{ImageURL: imageURL, Action: action}
}

func (ConfirmTemplate) template()       {}
func (ButtonsTemplate) template()       {}
func (CarouselTemplate) template()      {}
func (ImageCarouselTemplate) template() {}
