package content

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"linesink/internal/constants"
	apperrors "linesink/internal/errors"
	"linesink/internal/models"

	"github.com/sirupsen/logrus"
)

// Fetcher retrieves the binary content of a media message by its
// content identifier.
type Fetcher interface {
	GetMessageContent(ctx context.Context, messageID string) (io.ReadCloser, error)
}

// Replier delivers the pipeline's outbound messages.
type Replier interface {
	Reply(ctx context.Context, replyToken string, messages ...models.Message) error
	ReplyText(ctx context.Context, replyToken, text string) error
}

// Pipeline downloads heavy content, derives previews with an external
// transcoder, and replies with the republished media message. All work
// for one event is sequential and blocking.
type Pipeline struct {
	fetcher     Fetcher
	replier     Replier
	storage     *Storage
	convertTool string
	logger      *logrus.Logger
}

func NewPipeline(fetcher Fetcher, replier Replier, storage *Storage, convertTool string, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		fetcher:     fetcher,
		replier:     replier,
		storage:     storage,
		convertTool: convertTool,
		logger:      logger,
	}
}

// HandleImage republishes an inbound image with a resized preview.
func (p *Pipeline) HandleImage(ctx context.Context, replyToken, contentID string) error {
	return p.handleHeavyContent(ctx, replyToken, contentID, func(body io.Reader) error {
		original, err := p.storage.SaveContent("jpg", body)
		if err != nil {
			return err
		}
		preview := p.storage.CreateTempFile("jpg")
		if err := p.system(ctx, p.convertTool, "-resize", fmt.Sprintf("%dx", constants.PreviewImageWidth), original.Path, preview.Path); err != nil {
			return err
		}
		return p.replier.Reply(ctx, replyToken, models.NewImageMessage(original.URI, preview.URI))
	})
}

// HandleAudio republishes inbound audio. The true duration is not
// probed; a fixed nominal duration is reported.
func (p *Pipeline) HandleAudio(ctx context.Context, replyToken, contentID string) error {
	return p.handleHeavyContent(ctx, replyToken, contentID, func(body io.Reader) error {
		original, err := p.storage.SaveContent("mp4", body)
		if err != nil {
			return err
		}
		return p.replier.Reply(ctx, replyToken, models.NewAudioMessage(original.URI, constants.NominalAudioDurationMs))
	})
}

// HandleVideo republishes an inbound video with a first-frame still as
// its preview image.
func (p *Pipeline) HandleVideo(ctx context.Context, replyToken, contentID string) error {
	return p.handleHeavyContent(ctx, replyToken, contentID, func(body io.Reader) error {
		original, err := p.storage.SaveContent("mp4", body)
		if err != nil {
			return err
		}
		preview := p.storage.CreateTempFile("jpg")
		if err := p.system(ctx, p.convertTool, original.Path+"[0]", preview.Path); err != nil {
			return err
		}
		return p.replier.Reply(ctx, replyToken, models.NewVideoMessage(original.URI, preview.URI))
	})
}

// handleHeavyContent fetches the content stream and hands it to the
// kind-specific consumer. A fetch failure triggers a best-effort
// explanatory reply before the fatal error propagates; that reply is
// not guaranteed delivered.
func (p *Pipeline) handleHeavyContent(ctx context.Context, replyToken, contentID string, consume func(io.Reader) error) error {
	body, err := p.fetcher.GetMessageContent(ctx, contentID)
	if err != nil {
		if replyErr := p.replier.ReplyText(ctx, replyToken, "Cannot get content: "+err.Error()); replyErr != nil {
			p.logger.WithError(replyErr).Warn("Failed to send content fetch failure reply")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeContentFetch, "failed to fetch message content")
	}
	defer body.Close()

	return consume(body)
}

// system invokes an external tool and waits for it. The exit status is
// observed and logged; a non-zero exit does not abort the pipeline, so
// the derived artifact may be corrupt or missing. Only a failure to
// start the tool at all is returned.
func (p *Pipeline) system(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	err := cmd.Run()

	if _, ok := err.(*exec.ExitError); ok || err == nil {
		p.logger.WithFields(logrus.Fields{
			"tool": name,
			"args": args,
			"exit": cmd.ProcessState.ExitCode(),
		}).Info("External tool finished")
		return nil
	}

	return apperrors.Wrap(err, apperrors.ErrCodeExternalTool, fmt.Sprintf("failed to run %s", name))
}
