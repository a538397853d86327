package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/response"
)

var (
	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
		"image/heic": true, // iPhone
	}

	allowedImageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
		".heic": true,
	}
)

// validateImageFile checks the size, extension and declared content type of
// an uploaded image. Writes the error response and returns false on failure.
func validateImageFile(c *gin.Context, header *multipart.FileHeader, maxBytes int64) bool {
	if header.Size > maxBytes {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation,
			fmt.Sprintf("File exceeds the maximum size of %d bytes", maxBytes))
		return false
	}

	ext := client.FileExt(header.Filename)
	if !allowedImageExtensions[ext] {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation,
			"Unsupported image extension")
		return false
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation,
			"Unsupported image content type")
		return false
	}

	return true
}
