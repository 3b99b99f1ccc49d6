package service

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
	"github.com/bnema/vidqa/internal/validation"
)

type MediaService struct {
	store    port.MediaStore
	maxBytes int64
}

// NewMediaService accepts uploads up to maxBytes; zero means unlimited.
func NewMediaService(store port.MediaStore, maxBytes int64) *MediaService {
	return &MediaService{store: store, maxBytes: maxBytes}
}

// SubmitMedia validates an uploaded video and stores it in the upload area.
// Stored uploads are sources, not job artifacts, and outlive the jobs that
// analyze them.
func (s *MediaService) SubmitMedia(filename string, file io.ReadSeeker, size int64) (*domain.Upload, error) {
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, fmt.Errorf("%s is %s, limit is %s: %w", validation.SanitizeFilename(filename),
			humanize.Bytes(uint64(size)), humanize.Bytes(uint64(s.maxBytes)), domain.ErrUploadTooLarge)
	}

	if err := validation.ValidateUpload(filename, file); err != nil {
		logger.Warn.Printf("rejected upload %s: %v", logger.SanitizeForLog(filename), err)
		return nil, err
	}

	upload, err := s.store.SaveUpload(filename, file)
	if err != nil {
		logger.Error.Printf("failed to save upload %s: %v", logger.SanitizeForLog(filename), err)
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	logger.Info.Printf("media uploaded: id=%s, filename=%s, size=%s", upload.FileID, upload.Filename, humanize.Bytes(uint64(upload.Size)))
	return upload, nil
}
