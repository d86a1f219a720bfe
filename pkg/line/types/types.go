package types

import (
	"linesink/internal/models"
)

// ReplyRequest answers one inbound event using its single-use reply token.
type ReplyRequest struct {
	ReplyToken string           `json:"replyToken"`
	Messages   []models.Message `json:"messages"`
}

// PushRequest delivers messages to a stable recipient identifier outside
// the reply-token window.
type PushRequest struct {
	To       string           `json:"to"`
	Messages []models.Message `json:"messages"`
}

// APIResponse is the platform's response body; Message is only set on
// errors.
type APIResponse struct {
	Message string `json:"message,omitempty"`
	Details []struct {
		Message  string `json:"message"`
		Property string `json:"property"`
	} `json:"details,omitempty"`
}

// Profile is a user's public profile.
type Profile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
}
