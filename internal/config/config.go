package config

import (
	"encoding/json"
	"os"
	"strconv"

	"linesink/internal/constants"
	"linesink/internal/models"
)

var (
	ErrMissingChannelSecret = models.ConfigError{Message: "missing channel secret"}
	ErrMissingChannelToken  = models.ConfigError{Message: "missing channel access token"}
	ErrMissingPublicBaseURL = models.ConfigError{Message: "missing public base URL"}
	ErrMissingDownloadDir   = models.ConfigError{Message: "missing content download directory"}
	ErrMissingPushTarget    = models.ConfigError{Message: "missing push target ID"}
)

func LoadConfig(path string) (*models.Config, error) {
	file, err := os.ReadFile(path) // #nosec G304 - path comes from the operator's CLI flag
	if err != nil {
		return nil, err
	}

	var config models.Config
	if err := json.Unmarshal(file, &config); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(c *models.Config) error {
	if c.Line.ChannelSecret == "" {
		return ErrMissingChannelSecret
	}
	if c.Line.ChannelToken == "" {
		return ErrMissingChannelToken
	}
	if c.Server.PublicBaseURL == "" {
		return ErrMissingPublicBaseURL
	}
	if c.Content.DownloadDir == "" {
		return ErrMissingDownloadDir
	}
	if c.Push.TargetID == "" {
		return ErrMissingPushTarget
	}

	if c.Server.Port <= 0 {
		c.Server.Port = constants.DefaultServerPort
	}
	if c.Line.APIBaseURL == "" {
		c.Line.APIBaseURL = constants.DefaultAPIBaseURL
	}
	if c.Line.DataAPIBaseURL == "" {
		c.Line.DataAPIBaseURL = constants.DefaultDataAPIBaseURL
	}
	if c.Line.TimeoutSec <= 0 {
		c.Line.TimeoutSec = constants.DefaultHTTPTimeoutSec
	}
	if c.Content.ConvertTool == "" {
		c.Content.ConvertTool = constants.DefaultConvertTool
	}
	return nil
}

func applyEnvironmentOverrides(c *models.Config) {
	if secret := os.Getenv("LINE_CHANNEL_SECRET"); secret != "" {
		c.Line.ChannelSecret = secret
	}
	if token := os.Getenv("LINE_CHANNEL_TOKEN"); token != "" {
		c.Line.ChannelToken = token
	}
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		c.Server.PublicBaseURL = base
	}
	if target := os.Getenv("PUSH_TARGET_ID"); target != "" {
		c.Push.TargetID = target
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if dir := os.Getenv("DOWNLOAD_DIR"); dir != "" {
		c.Content.DownloadDir = dir
	}
}
