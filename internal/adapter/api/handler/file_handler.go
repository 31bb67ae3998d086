package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"listed/internal/infrastructure/storage"
	"listed/pkg/errors"
	"listed/pkg/logger"
	"listed/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	maxFileSize   int64
}

var fileHandler *FileHandler

func NewFileHandler(storageClient *storage.CloudStorageClient, maxFileSize int64) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
		maxFileSize:   maxFileSize,
	}
}

func SetupFileHandler(storageClient *storage.CloudStorageClient, maxFileSize int64) {
	fileHandler = NewFileHandler(storageClient, maxFileSize)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func isAllowedFileType(fileType string) bool {
	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/webp",
		"application/pdf",
	}

	for _, allowedType := range allowedTypes {
		if fileType == allowedType {
			return true
		}
	}

	return false
}

func (h *FileHandler) uploadTo(c echo.Context, folder string) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedFileType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadFile(c.Request().Context(), src, fileType, folder)
	if err != nil {
		logger.Error("Upload to %s failed: %v", folder, err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Success(c, map[string]interface{}{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

// UploadPitchImage stores a pitch hero image and returns its public URL. The
// client puts the URL on the pitch document itself.
func (h *FileHandler) UploadPitchImage(c echo.Context) error {
	return h.uploadTo(c, "pitch-images")
}

// UploadPaymentProof stores a feature payment proof screenshot.
func (h *FileHandler) UploadPaymentProof(c echo.Context) error {
	return h.uploadTo(c, "payment-proofs")
}

// UploadOfferMedia stores promotional media for platform and sales offers.
func (h *FileHandler) UploadOfferMedia(c echo.Context) error {
	return h.uploadTo(c, "offer-media")
}
