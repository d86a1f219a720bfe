package models

// Action is a tappable element inside a template: one of message,
// postback, uri, or datetimepicker.
type Action interface {
	action()
}

// MessageAction sends Text into the chat as if the user typed it.
type MessageAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

func NewMessageAction(label, text string) MessageAction {
	return MessageAction{Type: "message", Label: label, Text: text}
}

// PostbackAction delivers Data back through a postback event. DisplayText,
// when set, is additionally shown in the chat.
type PostbackAction struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Data        string `json:"data"`
	DisplayText string `json:"displayText,omitempty"`
}

func NewPostbackAction(label, data, displayText string) PostbackAction {
	return PostbackAction{Type: "postback", Label: label, Data: data, DisplayText: displayText}
}

type URIAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

func NewURIAction(label, uri string) URIAction {
	return URIAction{Type: "uri", Label: label, URI: uri}
}

// DatetimePickerAction opens a picker in the given mode (date, time, or
// datetime) bounded by Max/Min and preset to Initial.
type DatetimePickerAction struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Data    string `json:"data"`
	Mode    string `json:"mode"`
	Initial string `json:"initial,omitempty"`
	Max     string `json:"max,omitempty"`
	Min     string `json:"min,omitempty"`
}

func NewDatetimePickerAction(label, data, mode, initial, max, min string) DatetimePickerAction {
	return DatetimePickerAction{Type: "datetimepicker", Label: label, Data: data, Mode: mode, Initial: initial, Max: max, Min: min}
}

func (MessageAction) action()        {}
func (PostbackAction) action()       {}
func (URIAction) action()            {}
func (DatetimePickerAction) action() {}

// ImagemapAction maps a rectangular area of an imagemap to a URI or text.
type ImagemapAction interface {
	imagemapAction()
}

type ImagemapArea struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type URIImagemapAction struct {
	Type    string       `json:"type"`
	LinkURI string       `json:"linkUri"`
	Area    ImagemapArea `json:"area"`
}

func NewURIImagemapAction(linkURI string, area ImagemapArea) URIImagemapAction {
	return URIImagemapAction{Type: "uri", LinkURI: linkURI, Area: area}
}

type MessageImagemapAction struct {
	Type string       `json:"type"`
	Text string       `json:"text"`
	Area ImagemapArea `json:"area"`
}

func NewMessageImagemapAction(text string, area ImagemapArea) MessageImagemapAction {
	return MessageImagemapAction{Type: "message", Text: text, Area: area}
}

type ImagemapBaseSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (URIImagemapAction) imagemapAction()     {}
func (MessageImagemapAction) imagemapAction() {}
