package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
	"campuskart/pkg/errors"
)

type fakeFileService struct {
	stored  map[string]string
	deleted []string
	fail    error
}

func (s *fakeFileService) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	if s.fail != nil {
		return "", s.fail
	}
	url := "https://storage.googleapis.com/kart/public/" + folder + "/obj"
	s.stored[url] = fileType
	return url, nil
}

func (s *fakeFileService) DeleteFile(ctx context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	delete(s.stored, fileURL)
	return nil
}

func (s *fakeFileService) Close() error { return nil }

type fakeUploadRepo struct {
	uploads map[string]*entity.Upload
}

func (r *fakeUploadRepo) Create(ctx context.Context, upload *entity.Upload) error {
	r.uploads[upload.ID] = upload
	return nil
}

func (r *fakeUploadRepo) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	u, ok := r.uploads[id]
	if !ok {
		return nil, errors.NotFound("Upload", nil)
	}
	return u, nil
}

func (r *fakeUploadRepo) ListByUploader(ctx context.Context, uid string) ([]*entity.Upload, error) {
	var out []*entity.Upload
	for _, u := range r.uploads {
		if u.UploadedBy == uid {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUploadRepo) Delete(ctx context.Context, id string) error {
	delete(r.uploads, id)
	return nil
}

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

func newFileFixture() (*FileUseCase, *fakeFileService, *fakeUploadRepo) {
	files := &fakeFileService{stored: make(map[string]string)}
	uploads := &fakeUploadRepo{uploads: make(map[string]*entity.Upload)}
	uc := NewFileUseCase(uploads, files)
	uc.now = func() time.Time { return time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC) }
	return uc, files, uploads
}

func TestUploadSniffsAndRecords(t *testing.T) {
	// Setup
	uc, files, _ := newFileFixture()
	ctx := context.Background()

	// Execute
	upload, err := uc.Upload(ctx, "A", UploadInput{Filename: "calc.gif", Content: gifBytes})

	// Assert
	if assert.NoError(t, err) {
		assert.Equal(t, DefaultUploadFolder, upload.Folder)
		assert.Equal(t, "image/gif", upload.ContentType)
		assert.Equal(t, "A", upload.UploadedBy)
		assert.Equal(t, int64(len(gifBytes)), upload.Size)
		assert.Equal(t, "image/gif", files.stored[upload.URL])
	}

	mine, err := uc.ListMine(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestUploadRejects(t *testing.T) {
	uc, files, uploads := newFileFixture()
	ctx := context.Background()

	_, err := uc.Upload(ctx, "A", UploadInput{Content: []byte("%PDF-1.4 not an image")})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Upload(ctx, "A", UploadInput{Folder: "secrets", Content: gifBytes})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	files.fail = assert.AnError
	_, err = uc.Upload(ctx, "A", UploadInput{Content: gifBytes})
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))

	assert.Empty(t, uploads.uploads)
}

func TestDeleteUploadOwnerOnly(t *testing.T) {
	uc, files, uploads := newFileFixture()
	ctx := context.Background()

	upload, err := uc.Upload(ctx, "A", UploadInput{Folder: "profiles", Content: gifBytes})
	require.NoError(t, err)

	err = uc.Delete(ctx, "B", upload.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Contains(t, uploads.uploads, upload.ID)

	require.NoError(t, uc.Delete(ctx, "A", upload.ID))
	assert.Equal(t, []string{upload.URL}, files.deleted)
	assert.Empty(t, uploads.uploads)

	assert.True(t, errors.IsNotFound(uc.Delete(ctx, "A", upload.ID)))
}
