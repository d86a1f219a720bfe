package constants

// Outbound message limits imposed by the platform
const (
	// MaxTextLength is the character budget for a single text message.
	// Longer texts are truncated and terminated with TextEllipsis.
	MaxTextLength = 1000
	// TextEllipsis terminates truncated text; counts toward MaxTextLength.
	TextEllipsis = "……"
	// MaxMessagesPerBatch is the platform batch limit for reply and push calls.
	MaxMessagesPerBatch = 5
)

// Content pipeline defaults
const (
	// PreviewImageWidth is the target width for image previews in pixels.
	PreviewImageWidth = 240
	// NominalAudioDurationMs is used when the true audio duration is not probed.
	NominalAudioDurationMs = 100
)

// Default server configuration values
const (
	DefaultServerPort            = 8080
	DefaultServerReadTimeoutSec  = 15
	DefaultServerWriteTimeoutSec = 15
	DefaultServerIdleTimeoutSec  = 60
	DefaultGracefulShutdownSec   = 30
	ServerErrorChannelSize       = 1
)

// Default platform API configuration values
const (
	DefaultAPIBaseURL     = "https://api.line.me"
	DefaultDataAPIBaseURL = "https://api-data.line.me"
	DefaultHTTPTimeoutSec = 30
)

// Default external tool names
const (
	DefaultConvertTool = "convert"
)
