package models

import (
	"fmt"
	"sort"
	"strings"
)

// EventType identifies the kind of an inbound webhook event
type EventType string

const (
	EventTypeMessage  EventType = "message"
	EventTypeFollow   EventType = "follow"
	EventTypeUnfollow EventType = "unfollow"
	EventTypeJoin     EventType = "join"
	EventTypeLeave    EventType = "leave"
	EventTypePostback EventType = "postback"
	EventTypeBeacon   EventType = "beacon"
)

// MessageType identifies the payload kind of a message event
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeSticker  MessageType = "sticker"
	MessageTypeLocation MessageType = "location"
	MessageTypeImage    MessageType = "image"
	MessageTypeAudio    MessageType = "audio"
	MessageTypeVideo    MessageType = "video"
)

// SourceType identifies where an event originated
type SourceType string

const (
	SourceTypeUser  SourceType = "user"
	SourceTypeGroup SourceType = "group"
	SourceTypeRoom  SourceType = "room"
)

// Source identifies the user, group, or room an event came from.
// UserID may be empty for group and room sources.
type Source struct {
	Type    SourceType `json:"type"`
	UserID  string     `json:"userId,omitempty"`
	GroupID string     `json:"groupId,omitempty"`
	RoomID  string     `json:"roomId,omitempty"`
}

// String renders the source for human-readable replies and logs.
func (s Source) String() string {
	switch s.Type {
	case SourceTypeGroup:
		return fmt.Sprintf("group %s", s.GroupID)
	case SourceTypeRoom:
		return fmt.Sprintf("room %s", s.RoomID)
	default:
		return fmt.Sprintf("user %s", s.UserID)
	}
}

// WebhookPayload is the envelope delivered to the webhook endpoint.
type WebhookPayload struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is one inbound platform event. Exactly one of Message, Postback,
// or Beacon is set depending on Type; ReplyToken is empty for kinds that
// cannot be replied to (e.g. unfollow).
type Event struct {
	Type       EventType        `json:"type"`
	ReplyToken string           `json:"replyToken,omitempty"`
	Source     Source           `json:"source"`
	Timestamp  int64            `json:"timestamp"`
	Message    *MessageContent  `json:"message,omitempty"`
	Postback   *PostbackContent `json:"postback,omitempty"`
	Beacon     *BeaconContent   `json:"beacon,omitempty"`
}

// MessageContent carries the kind-specific payload of a message event.
// Text is set for text messages; PackageID/StickerID for stickers;
// Title/Address/Latitude/Longitude for locations. For media kinds the
// bytes are not inline: ID is the content identifier used to fetch them.
type MessageContent struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Text      string      `json:"text,omitempty"`
	PackageID string      `json:"packageId,omitempty"`
	StickerID string      `json:"stickerId,omitempty"`
	Title     string      `json:"title,omitempty"`
	Address   string      `json:"address,omitempty"`
	Latitude  float64     `json:"latitude,omitempty"`
	Longitude float64     `json:"longitude,omitempty"`
}

// PostbackContent carries the data string of a postback action plus the
// optional parameters a datetime picker filled in.
type PostbackContent struct {
	Data   string            `json:"data"`
	Params map[string]string `json:"params,omitempty"`
}

// ParamsString renders the parameter set deterministically for replies.
func (p *PostbackContent) ParamsString() string {
	if len(p.Params) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, p.Params[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// BeaconContent carries the hardware identifier of a beacon event.
type BeaconContent struct {
	Hwid string `json:"hwid"`
	Type string `json:"type"`
}
