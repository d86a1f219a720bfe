package models

// Message is an outbound message of any kind. The concrete types below
// form a closed set; each carries its wire-format type tag so a slice of
// Message values marshals directly into a reply or push request body.
type Message interface {
	message()
}

type TextMessage struct {
	Type MessageType `json:"type"`
	Text string      `json:"text"`
}

func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: MessageTypeText, Text: text}
}

type StickerMessage struct {
	Type      MessageType `json:"type"`
	PackageID string      `json:"packageId"`
	StickerID string      `json:"stickerId"`
}

func NewStickerMessage(packageID, stickerID string) StickerMessage {
	return StickerMessage{Type: MessageTypeSticker, PackageID: packageID, StickerID: stickerID}
}

type ImageMessage struct {
	Type               MessageType `json:"type"`
	OriginalContentURL string      `json:"originalContentUrl"`
	PreviewImageURL    string      `json:"previewImageUrl"`
}

func NewImageMessage(originalContentURL, previewImageURL string) ImageMessage {
	return ImageMessage{Type: MessageTypeImage, OriginalContentURL: originalContentURL, PreviewImageURL: previewImageURL}
}

type VideoMessage struct {
	Type               MessageType `json:"type"`
	OriginalContentURL string      `json:"originalContentUrl"`
	PreviewImageURL    string      `json:"previewImageUrl"`
}

func NewVideoMessage(originalContentURL, previewImageURL string) VideoMessage {
	return VideoMessage{Type: MessageTypeVideo, OriginalContentURL: originalContentURL, PreviewImageURL: previewImageURL}
}

type AudioMessage struct {
	Type               MessageType `json:"type"`
	OriginalContentURL string      `json:"originalContentUrl"`
	Duration           int         `json:"duration"`
}

func NewAudioMessage(originalContentURL string, durationMs int) AudioMessage {
	return AudioMessage{Type: MessageTypeAudio, OriginalContentURL: originalContentURL, Duration: durationMs}
}

type LocationMessage struct {
	Type      MessageType `json:"type"`
	Title     string      `json:"title"`
	Address   string      `json:"address"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}

func NewLocationMessage(title, address string, latitude, longitude float64) LocationMessage {
	return LocationMessage{Type: MessageTypeLocation, Title: title, Address: address, Latitude: latitude, Longitude: longitude}
}

// TemplateMessage pairs a platform-rendered template with a fallback alt
// text for clients that cannot display rich UI.
type TemplateMessage struct {
	Type     string   `json:"type"`
	AltText  string   `json:"altText"`
	Template Template `json:"template"`
}

func NewTemplateMessage(altText string, template Template) TemplateMessage {
	return TemplateMessage{Type: "template", AltText: altText, Template: template}
}

type ImagemapMessage struct {
	Type     string           `json:"type"`
	BaseURL  string           `json:"baseUrl"`
	AltText  string           `json:"altText"`
	BaseSize ImagemapBaseSize `json:"baseSize"`
	Actions  []ImagemapAction `json:"actions"`
}

func NewImagemapMessage(baseURL, altText string, baseSize ImagemapBaseSize, actions ...ImagemapAction) ImagemapMessage {
	return ImagemapMessage{Type: "imagemap", BaseURL: baseURL, AltText: altText, BaseSize: baseSize, Actions: actions}
}

func (TextMessage) message()     {}
func (StickerMessage) message()  {}
func (ImageMessage) message()    {}
func (VideoMessage) message()    {}
func (AudioMessage) message()    {}
func (LocationMessage) message() {}
func (TemplateMessage) message() {}
func (ImagemapMessage) message() {}
