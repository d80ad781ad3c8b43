package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
	"campuskart/internal/usecase"
	"campuskart/pkg/errors"
)

type fakeStorage struct {
	uploads []string
}

func (s *fakeStorage) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	s.uploads = append(s.uploads, folder+"|"+fileType)
	return "https://storage.googleapis.com/kart/public/" + folder + "/x.png", nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error { return nil }

func (s *fakeStorage) Close() error { return nil }

type memoryUploads struct {
	records map[string]*entity.Upload
}

func (m *memoryUploads) Create(ctx context.Context, upload *entity.Upload) error {
	m.records[upload.ID] = upload
	return nil
}

func (m *memoryUploads) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	u, ok := m.records[id]
	if !ok {
		return nil, errors.NotFound("Upload", nil)
	}
	return u, nil
}

func (m *memoryUploads) ListByUploader(ctx context.Context, uid string) ([]*entity.Upload, error) {
	var out []*entity.Upload
	for _, u := range m.records {
		if u.UploadedBy == uid {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryUploads) Delete(ctx context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func newTestFileHandler(storage *fakeStorage, maxFileSize int64) (*FileHandler, *memoryUploads) {
	records := &memoryUploads{records: make(map[string]*entity.Upload)}
	return NewFileHandler(usecase.NewFileUseCase(records, storage), maxFileSize), records
}

// A PNG signature followed by an IHDR chunk header is enough to be sniffed as image/png.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func multipartUpload(t *testing.T, folder string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	// Setup
	storage := &fakeStorage{}
	h, records := newTestFileHandler(storage, 1024)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(multipartUpload(t, "profiles", pngBytes), rec)
	c.Set("uid", "asha")

	// Assertions
	if assert.NoError(t, h.UploadFile(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://storage.googleapis.com/kart/public/profiles/x.png")
		assert.Equal(t, []string{"profiles|image/png"}, storage.uploads)
		require.Len(t, records.records, 1)
		for _, u := range records.records {
			assert.Equal(t, "asha", u.UploadedBy)
			assert.Equal(t, "photo.png", u.Filename)
		}
	}
}

func TestUploadFileRejects(t *testing.T) {
	cases := map[string]*http.Request{
		"not an image":   multipartUpload(t, "", []byte("just some text, definitely not an image")),
		"too large":      multipartUpload(t, "", append(pngBytes, make([]byte, 2048)...)),
		"unknown folder": multipartUpload(t, "../secrets", pngBytes),
		"no file":        httptest.NewRequest(http.MethodPost, "/v1/files", nil),
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			storage := &fakeStorage{}
			h, records := newTestFileHandler(storage, 1024)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)
			c.Set("uid", "asha")

			if assert.NoError(t, h.UploadFile(c)) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Empty(t, storage.uploads)
				assert.Empty(t, records.records)
			}
		})
	}
}
