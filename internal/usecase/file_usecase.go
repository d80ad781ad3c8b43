package usecase

import (
	"bytes"
	"context"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
)

const DefaultUploadFolder = "items"

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var uploadFolders = map[string]bool{
	"items":    true,
	"profiles": true,
	"events":   true,
}

type FileUseCase struct {
	uploadRepo  repository.UploadRepository
	fileService service.FileUploadService
	now         func() time.Time
}

func NewFileUseCase(uploadRepo repository.UploadRepository, fileService service.FileUploadService) *FileUseCase {
	return &FileUseCase{
		uploadRepo:  uploadRepo,
		fileService: fileService,
		now:         time.Now,
	}
}

type UploadInput struct {
	Folder   string
	Filename string
	Content  []byte
}

// Upload stores an image and records who uploaded it. The declared content
// type is ignored; the type is sniffed from the bytes.
func (uc *FileUseCase) Upload(ctx context.Context, uid string, input UploadInput) (*entity.Upload, error) {
	folder := input.Folder
	if folder == "" {
		folder = DefaultUploadFolder
	}
	if !uploadFolders[folder] {
		return nil, errors.BadRequest("Unknown upload folder", nil)
	}

	detected := mimetype.Detect(input.Content)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		logger.Warn("Rejected upload of type %s from %s", detected.String(), uid)
		return nil, errors.BadRequest("Only JPEG, PNG, GIF or WebP images are allowed", nil)
	}

	url, err := uc.fileService.UploadFile(ctx, bytes.NewReader(input.Content), detected.String(), folder)
	if err != nil {
		logger.Error("Error from storage client: %v", err)
		return nil, errors.Internal("Failed to upload file", err)
	}

	upload := &entity.Upload{
		ID:          uuid.New().String(),
		URL:         url,
		Folder:      folder,
		UploadedBy:  uid,
		Filename:    input.Filename,
		ContentType: detected.String(),
		Size:        int64(len(input.Content)),
		CreatedAt:   uc.now(),
	}
	if err := uc.uploadRepo.Create(ctx, upload); err != nil {
		logger.LogStepFailure("upload_file", "record_upload", uid, err)
		return nil, err
	}

	return upload, nil
}

func (uc *FileUseCase) ListMine(ctx context.Context, uid string) ([]*entity.Upload, error) {
	return uc.uploadRepo.ListByUploader(ctx, uid)
}

// Delete removes the stored object and its record. Only the uploader may delete.
func (uc *FileUseCase) Delete(ctx context.Context, uid, id string) error {
	upload, err := uc.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if upload.UploadedBy != uid {
		return errors.Forbidden("You can only delete your own uploads", nil)
	}

	if err := uc.fileService.DeleteFile(ctx, upload.URL); err != nil {
		return errors.Internal("Failed to delete file", err)
	}
	return uc.uploadRepo.Delete(ctx, id)
}
