package handler

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/usecase"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
	"campuskart/pkg/response"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
	maxFileSize int64
}

func NewFileHandler(fileUseCase *usecase.FileUseCase, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
		maxFileSize: maxFileSize,
	}
}

var (
	fileHandler *FileHandler
)

func SetupFileHandler(fileUseCase *usecase.FileUseCase, maxFileSize int64) {
	fileHandler = NewFileHandler(fileUseCase, maxFileSize)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// UploadFile stores one image from the multipart "file" field and returns its public URL.
func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, h.maxFileSize+1))
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	if int64(len(content)) > h.maxFileSize {
		return response.Error(c, errors.BadRequest("File size exceeds maximum allowed", nil))
	}

	upload, err := h.fileUseCase.Upload(c.Request().Context(), middleware.UIDFrom(c), usecase.UploadInput{
		Folder:   c.FormValue("folder"),
		Filename: file.Filename,
		Content:  content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, upload)
}

func (h *FileHandler) ListMyUploads(c echo.Context) error {
	uploads, err := h.fileUseCase.ListMine(c.Request().Context(), middleware.UIDFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, uploads)
}

func (h *FileHandler) DeleteUpload(c echo.Context) error {
	if err := h.fileUseCase.Delete(c.Request().Context(), middleware.UIDFrom(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Upload deleted"})
}
