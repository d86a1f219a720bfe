package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"linesink/internal/models"
	"linesink/pkg/line/types"
)

// ClientConfig configures the REST client.
type ClientConfig struct {
	// APIBaseURL serves the messaging endpoints (reply, push, profile).
	APIBaseURL string
	// DataAPIBaseURL serves binary message content.
	DataAPIBaseURL string
	ChannelToken   string
	Timeout        time.Duration
}

type client struct {
	apiBaseURL     string
	dataAPIBaseURL string
	channelToken   string
	httpClient     *http.Client
}

func NewClient(cfg ClientConfig) types.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	dataBase := cfg.DataAPIBaseURL
	if dataBase == "" {
		dataBase = cfg.APIBaseURL
	}
	return &client{
		apiBaseURL:     cfg.APIBaseURL,
		dataAPIBaseURL: dataBase,
		channelToken:   cfg.ChannelToken,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

func (c *client) ReplyMessage(ctx context.Context, replyToken string, messages []models.Message) error {
	return c.post(ctx, "/v2/bot/message/reply", types.ReplyRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
}

func (c *client) PushMessage(ctx context.Context, to string, messages []models.Message) error {
	return c.post(ctx, "/v2/bot/message/push", types.PushRequest{
		To:       to,
		Messages: messages,
	})
}

// GetMessageContent streams the binary content of a media message. The
// caller owns the returned body and must close it.
func (c *client) GetMessageContent(ctx context.Context, messageID string) (io.ReadCloser, error) {
	url := fmt.Sprintf("%s/v2/bot/message/%s/content", c.dataAPIBaseURL, messageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}

	return resp.Body, nil
}

func (c *client) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	url := fmt.Sprintf("%s/v2/bot/profile/%s", c.apiBaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var profile types.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return &profile, nil
}

func (c *client) post(ctx context.Context, endpoint string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	var result types.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, result.Message)
}
