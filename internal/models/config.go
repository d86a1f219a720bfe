package models

// Config holds the application configuration
type Config struct {
	Server   ServerConfig  `json:"server"`
	Line     LineConfig    `json:"line"`
	Content  ContentConfig `json:"content"`
	Push     PushConfig    `json:"push"`
	Store    StoreConfig   `json:"store"`
	Tracing  TracingConfig `json:"tracing"`
	LogLevel string        `json:"log_level"`
}

// ServerConfig holds webhook server related configuration
type ServerConfig struct {
	Port          int    `json:"port"`
	PublicBaseURL string `json:"public_base_url"`
	StaticDir     string `json:"static_dir"`
}

// LineConfig holds platform API related configuration
type LineConfig struct {
	ChannelSecret  string `json:"channel_secret"`
	ChannelToken   string `json:"channel_token"`
	APIBaseURL     string `json:"api_base_url"`
	DataAPIBaseURL string `json:"data_api_base_url"`
	TimeoutSec     int    `json:"timeout_sec"`
}

// ContentConfig holds heavy-content pipeline configuration
type ContentConfig struct {
	DownloadDir string `json:"download_dir"`
	ConvertTool string `json:"convert_tool"`
}

// PushConfig holds the fixed push target for scripted campaigns
type PushConfig struct {
	TargetID string `json:"target_id"`
}

// StoreConfig holds the delivery log configuration. An empty path
// disables the log.
type StoreConfig struct {
	Path string `json:"path"`
}

// TracingConfig holds OpenTelemetry configuration
type TracingConfig struct {
	ServiceName    string  `json:"service_name"`
	ServiceVersion string  `json:"service_version"`
	Environment    string  `json:"environment"`
	OTLPEndpoint   string  `json:"otlp_endpoint"`
	SampleRate     float64 `json:"sample_rate"`
	Enabled        bool    `json:"enabled"`
	UseStdout      bool    `json:"use_stdout"`
}

type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string {
	return e.Message
}
