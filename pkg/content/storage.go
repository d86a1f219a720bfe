package content

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DownloadedContent is one transient artifact: a local file plus the
// public URI it is served under. Each transcoding stage gets its own
// instance; none survive the process.
type DownloadedContent struct {
	Path string
	URI  string
}

// Storage owns the download directory. File names combine a timestamp
// with a random identifier so concurrent events never collide; created
// files are removed best-effort at process exit via Cleanup.
type Storage struct {
	dir     string
	uris    *URIBuilder
	logger  *logrus.Logger
	mu      sync.Mutex
	created []string
}

func NewStorage(dir string, uris *URIBuilder, logger *logrus.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}
	return &Storage{
		dir:    dir,
		uris:   uris,
		logger: logger,
	}, nil
}

// CreateTempFile reserves a uniquely named file slot and returns it
// without creating the file. The slot is registered for exit cleanup.
func (s *Storage) CreateTempFile(ext string) DownloadedContent {
	name := fmt.Sprintf("%s-%s.%s", time.Now().UTC().Format("2006-01-02T15-04-05.000000000"), uuid.NewString(), ext)
	path := filepath.Join(s.dir, name)

	s.mu.Lock()
	s.created = append(s.created, path)
	s.mu.Unlock()

	return DownloadedContent{
		Path: path,
		URI:  s.uris.Build("/downloaded/" + name),
	}
}

// SaveContent persists a fetched stream to a uniquely named file.
func (s *Storage) SaveContent(ext string, r io.Reader) (DownloadedContent, error) {
	dc := s.CreateTempFile(ext)

	f, err := os.Create(dc.Path)
	if err != nil {
		return DownloadedContent{}, fmt.Errorf("failed to create content file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return DownloadedContent{}, fmt.Errorf("failed to save content: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"path": dc.Path,
		"ext":  ext,
	}).Info("Saved downloaded content")

	return dc, nil
}

// Cleanup removes every file this storage created. Missing files are
// fine: previews the transcoder never produced, or an earlier partial
// cleanup.
func (s *Storage) Cleanup() {
	s.mu.Lock()
	created := s.created
	s.created = nil
	s.mu.Unlock()

	for _, path := range created {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.WithFields(logrus.Fields{
				"path":  path,
				"error": err,
			}).Warn("Failed to remove downloaded content")
		}
	}
}
