package service

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port/mocks"
	"github.com/bnema/vidqa/internal/validation"
)

// mp4Bytes is the start of an ISO BMFF file followed by padding.
func mp4Bytes() []byte {
	head := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}
	return append(head, make([]byte, 64)...)
}

func TestMediaService_SubmitMedia_Success(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	data := mp4Bytes()

	store.EXPECT().SaveUpload("clip.mp4", mock.Anything).
		RunAndReturn(func(name string, r io.Reader) (*domain.Upload, error) {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, data, got, "validation must rewind the reader")
			return &domain.Upload{FileID: "f1", Filename: name, Path: "/data/uploads/f1.mp4", Size: int64(len(got))}, nil
		}).Once()

	upload, err := NewMediaService(store, 1<<20).SubmitMedia("clip.mp4", bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	assert.Equal(t, "f1", upload.FileID)
	assert.Equal(t, int64(len(data)), upload.Size)
}

func TestMediaService_SubmitMedia_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		size     int64
		wantErr  error
	}{
		{"too large", "clip.mp4", mp4Bytes(), 2 << 20, domain.ErrUploadTooLarge},
		{"bad extension", "clip.txt", mp4Bytes(), 76, validation.ErrUnsupportedExt},
		{"bad magic", "clip.mp4", bytes.Repeat([]byte("a"), 76), 76, validation.ErrDisallowedFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMediaStoreMock(t)

			_, err := NewMediaService(store, 1<<20).SubmitMedia(tt.filename, bytes.NewReader(tt.data), tt.size)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMediaService_SubmitMedia_StoreError(t *testing.T) {
	store := mocks.NewMediaStoreMock(t)
	store.EXPECT().SaveUpload(mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()

	_, err := NewMediaService(store, 0).SubmitMedia("clip.mp4", bytes.NewReader(mp4Bytes()), 1<<40)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
