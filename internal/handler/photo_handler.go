package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/response"
	"campaign-space-api/internal/service"
	"campaign-space-api/internal/util"
)

// PhotoHandler handles photo, like, tag and photo comment requests
type PhotoHandler struct {
	photoService  service.PhotoService
	maxPhotoBytes int64
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoService service.PhotoService, maxPhotoBytes int64) *PhotoHandler {
	return &PhotoHandler{
		photoService:  photoService,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// UploadPhotos godoc
// @Summary      Upload photos
// @Description  Uploads a batch of photos to an album (owner only)
// @Description  captions and taggedCharacters are JSON arrays matched to files by position
// @Description  Photos are appended after the album's current display order
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        albumId formData string true "Album ID (UUID)"
// @Param        photos formData file true "Image files"
// @Param        captions formData string false "JSON array of captions"
// @Param        taggedCharacters formData string false "JSON array of character ID arrays"
// @Success      201 {object} response.SuccessResponse{data=[]dto.PhotoResponse} "Photos uploaded"
// @Failure      400 {object} response.ErrorResponse "Invalid request or too many files"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Album not found"
// @Router       /photos/upload [post]
func (h *PhotoHandler) UploadPhotos(c *gin.Context) {
	var req dto.UploadPhotosRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid multipart form")
		return
	}
	headers := form.File["photos"]
	if len(headers) == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "No files provided")
		return
	}

	var captions []string
	if req.Captions != "" {
		if err := json.Unmarshal([]byte(req.Captions), &captions); err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "captions must be a JSON array of strings")
			return
		}
	}
	var tagSets [][]uuid.UUID
	if req.TaggedCharacters != "" {
		if err := json.Unmarshal([]byte(req.TaggedCharacters), &tagSets); err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "taggedCharacters must be a JSON array of ID arrays")
			return
		}
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	uploads := make([]service.PhotoUpload, 0, len(headers))
	for i, header := range headers {
		if !validateImageFile(c, header, h.maxPhotoBytes) {
			return
		}
		file, err := header.Open()
		if err != nil {
			response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to read file")
			return
		}
		defer file.Close()

		upload := service.PhotoUpload{
			File:        file,
			FileExt:     client.FileExt(header.Filename),
			ContentType: header.Header.Get("Content-Type"),
		}
		if i < len(captions) {
			upload.Caption = captions[i]
		}
		if i < len(tagSets) {
			upload.Tags = tagSets[i]
		}
		uploads = append(uploads, upload)
	}

	photos, err := h.photoService.UploadPhotos(c.Request.Context(), auth.UserID, req.AlbumID, uploads)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, photos)
}

// GetPhoto godoc
// @Summary      Get a photo
// @Description  Returns a photo with its tagged characters and comments
// @Tags         photos
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PhotoResponse} "Photo"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId} [get]
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	photo, err := h.photoService.GetPhoto(c.Request.Context(), photoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, photo)
}

// UpdateCaption godoc
// @Summary      Update a photo caption
// @Description  Changes a photo's caption (owner only)
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Param        request body dto.UpdateCaptionRequest true "Caption update request"
// @Success      200 {object} response.SuccessResponse{data=dto.PhotoResponse} "Caption updated"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId}/caption [patch]
func (h *PhotoHandler) UpdateCaption(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	var req dto.UpdateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	photo, err := h.photoService.UpdateCaption(c.Request.Context(), auth.UserID, photoID, req.Caption)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, photo)
}

// UpdateTags godoc
// @Summary      Update photo tags
// @Description  Replaces the set of characters tagged in a photo (owner only)
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Param        request body dto.UpdatePhotoTagsRequest true "Tag update request"
// @Success      200 {object} response.SuccessResponse{data=dto.PhotoResponse} "Tags updated"
// @Failure      400 {object} response.ErrorResponse "Unknown tagged character"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId}/tags [put]
func (h *PhotoHandler) UpdateTags(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	var req dto.UpdatePhotoTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	photo, err := h.photoService.UpdateTags(c.Request.Context(), auth.UserID, photoID, req.TaggedCharacters)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, photo)
}

// ReorderPhotos godoc
// @Summary      Reorder an album's photos
// @Description  Rewrites display order from the position of each photo ID in the list (owner only)
// @Description  The list must contain every photo in the album exactly once
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        request body dto.ReorderPhotosRequest true "Reorder request"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Photos reordered"
// @Failure      400 {object} response.ErrorResponse "Invalid photo list"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Album not found"
// @Router       /photos/reorder [put]
func (h *PhotoHandler) ReorderPhotos(c *gin.Context) {
	var req dto.ReorderPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.photoService.ReorderPhotos(c.Request.Context(), auth.UserID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Photos reordered"})
}

// ToggleLike godoc
// @Summary      Toggle a photo like
// @Description  Likes the photo as one of the caller's characters, or removes an existing like
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Param        request body dto.ToggleLikeRequest true "Acting character"
// @Success      200 {object} response.SuccessResponse{data=dto.ToggleLikeResponse} "Like toggled"
// @Failure      403 {object} response.ErrorResponse "Character not owned"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId}/like [post]
func (h *PhotoHandler) ToggleLike(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := h.photoService.ToggleLike(c.Request.Context(), auth.UserID, photoID, req.CharacterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetLikes godoc
// @Summary      List a photo's likes
// @Description  Returns the characters who liked a photo
// @Tags         photos
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PhotoLikesResponse} "Likes"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId}/likes [get]
func (h *PhotoHandler) GetLikes(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	likes, err := h.photoService.GetLikes(c.Request.Context(), photoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, likes)
}

// AddComment godoc
// @Summary      Comment on a photo
// @Description  Posts a comment on a photo as one of the caller's characters
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Param        request body dto.CreatePhotoCommentRequest true "Comment request"
// @Success      201 {object} response.SuccessResponse{data=dto.PhotoCommentResponse} "Comment created"
// @Failure      403 {object} response.ErrorResponse "Character not owned"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId}/comments [post]
func (h *PhotoHandler) AddComment(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	var req dto.CreatePhotoCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	comment, err := h.photoService.AddComment(c.Request.Context(), auth.UserID, photoID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a photo comment
// @Description  Deletes a photo comment; allowed for the author's owner and the photo owner
// @Tags         photos
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Comment deleted"
// @Failure      403 {object} response.ErrorResponse "Not allowed"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Router       /photos/comments/{commentId} [delete]
func (h *PhotoHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.photoService.DeleteComment(c.Request.Context(), auth.UserID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Comment deleted"})
}

// DeletePhoto godoc
// @Summary      Delete a photo
// @Description  Deletes a photo with its likes, tags and comments (owner only)
// @Description  The album count is decremented and the cover reassigned when needed
// @Tags         photos
// @Produce      json
// @Param        photoId path string true "Photo ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Photo deleted"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Photo not found"
// @Router       /photos/{photoId} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid photo ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.photoService.DeletePhoto(c.Request.Context(), auth.UserID, photoID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Photo deleted"})
}

// GetTaggedPhotos godoc
// @Summary      List photos a character is tagged in
// @Description  Returns every photo a character is tagged in, newest first
// @Tags         photos
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.PhotoResponse} "Photos"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /photos/tagged/{characterId} [get]
func (h *PhotoHandler) GetTaggedPhotos(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	photos, err := h.photoService.GetTaggedPhotos(c.Request.Context(), characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, photos)
}
