package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/logger"
	"github.com/google/uuid"
)

// MaxUploadSize is the ceiling for a single uploaded image.
const MaxUploadSize = 5 << 20 // 5 MiB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// Store persists uploaded images on the local filesystem under Dir.
type Store struct {
	Dir     string
	MaxSize int64
}

// NewStore creates a file store rooted at dir. A maxSize of 0 falls
// back to MaxUploadSize.
func NewStore(dir string, maxSize int64) *Store {
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	return &Store{Dir: dir, MaxSize: maxSize}
}

// Save validates and persists one uploaded image. Both the original
// filename's extension and the declared MIME type must be on the image
// allow-list, and the stream must not exceed MaxSize. The stored file
// gets a unique name so concurrent uploads never collide.
//
// Save can leave a file behind with no record pointing at it; the
// caller is expected to Delete the returned Path if any later step of
// its request fails.
func (s *Store) Save(file io.Reader, originalName, mimeType string) (*models.ScheduleImage, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] || !allowedMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: only jpeg, jpg and png images are allowed", models.ErrUnsupportedMediaType)
	}

	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
	path := filepath.Join(s.Dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %v", err)
	}
	defer out.Close()

	// Copy at most one byte over the limit so oversize streams are
	// detected without buffering the whole upload in memory.
	written, err := io.Copy(out, io.LimitReader(file, s.MaxSize+1))
	if err != nil {
		s.Delete(path)
		return nil, fmt.Errorf("failed to write file: %v", err)
	}
	if written > s.MaxSize {
		s.Delete(path)
		return nil, fmt.Errorf("%w: image exceeds the %d byte limit", models.ErrFileTooLarge, s.MaxSize)
	}

	logger.Log.WithFields(map[string]interface{}{
		"filename": filename,
		"size":     written,
	}).Info("Image stored")

	return &models.ScheduleImage{
		Filename:     filename,
		OriginalName: originalName,
		MimeType:     mimeType,
		Path:         path,
	}, nil
}

// Delete removes a stored file. Removal is best-effort: a failure is
// logged and swallowed, since a missing file during cleanup is not an
// error the caller should fail on.
func (s *Store) Delete(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).WithField("path", path).Warn("Failed to delete stored file")
	}
}
