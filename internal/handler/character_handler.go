// Package handler provides HTTP request handlers for the API.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/response"
	"campaign-space-api/internal/service"
	"campaign-space-api/internal/util"
)

// CharacterHandler handles character-related requests
type CharacterHandler struct {
	characterService service.CharacterService
	maxImageBytes    int64
}

// NewCharacterHandler creates a new CharacterHandler
func NewCharacterHandler(characterService service.CharacterService, maxImageBytes int64) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		maxImageBytes:    maxImageBytes,
	}
}

// CreateCharacter godoc
// @Summary      Create a character
// @Description  Creates a character profile owned by the authenticated account
// @Description  A URL slug is generated from the name and a default photo album is created
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCharacterRequest true "Character create request"
// @Success      201 {object} response.SuccessResponse{data=dto.CharacterResponse} "Character created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /characters [post]
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	character, err := h.characterService.CreateCharacter(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, character)
}

// GetCharacter godoc
// @Summary      Get a character
// @Description  Returns a character profile by ID, including top friends
// @Tags         characters
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CharacterResponse} "Character"
// @Failure      400 {object} response.ErrorResponse "Invalid character ID"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /characters/{characterId} [get]
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	character, err := h.characterService.GetCharacter(c.Request.Context(), characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, character)
}

// GetCharacterBySlug godoc
// @Summary      Get a character by slug
// @Description  Returns a character profile by its URL slug
// @Tags         characters
// @Produce      json
// @Param        slug path string true "Character URL slug"
// @Success      200 {object} response.SuccessResponse{data=dto.CharacterResponse} "Character"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /characters/url/{slug} [get]
func (h *CharacterHandler) GetCharacterBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid slug")
		return
	}

	character, err := h.characterService.GetCharacterBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, character)
}

// GetMyCharacters godoc
// @Summary      List my characters
// @Description  Returns every character owned by the authenticated account, newest first
// @Tags         characters
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.CharacterResponse} "Characters"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Router       /characters/my/all [get]
func (h *CharacterHandler) GetMyCharacters(c *gin.Context) {
	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	characters, err := h.characterService.GetMyCharacters(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, characters)
}

// ListCharacters godoc
// @Summary      Browse characters
// @Description  Returns a page of character profiles, newest first
// @Tags         characters
// @Produce      json
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CharacterResponse} "Characters"
// @Router       /characters [get]
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	characters, err := h.characterService.ListCharacters(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, characters)
}

// UpdateCharacter godoc
// @Summary      Update a character
// @Description  Updates a character's profile fields (owner only)
// @Description  The URL slug never changes, even when the name does
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Param        request body dto.UpdateCharacterRequest true "Character update request"
// @Success      200 {object} response.SuccessResponse{data=dto.CharacterResponse} "Character updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /characters/{characterId} [put]
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	character, err := h.characterService.UpdateCharacter(c.Request.Context(), auth.UserID, characterID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, character)
}

// UploadImage godoc
// @Summary      Upload a profile or banner image
// @Description  Replaces the character's profile or banner image (owner only)
// @Description  The previous image is removed from storage after the swap
// @Tags         characters
// @Accept       multipart/form-data
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Param        imageType formData string true "Image type" Enums(profile, banner)
// @Param        image formData file true "Image file"
// @Success      200 {object} response.SuccessResponse{data=dto.UploadImageResponse} "Image uploaded"
// @Failure      400 {object} response.ErrorResponse "Invalid file or image type"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /characters/{characterId}/image [put]
func (h *CharacterHandler) UploadImage(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	imageType := c.PostForm("imageType")
	if imageType != service.ImageTypeProfile && imageType != service.ImageTypeBanner {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation,
			"imageType must be profile or banner")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Image file is required")
		return
	}
	if !validateImageFile(c, header, h.maxImageBytes) {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	file, err := header.Open()
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to read file")
		return
	}
	defer file.Close()

	result, err := h.characterService.UploadImage(
		c.Request.Context(),
		auth.UserID,
		characterID,
		imageType,
		file,
		client.FileExt(header.Filename),
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// RecordProfileView godoc
// @Summary      Record a profile view
// @Description  Increments the character's profile view counter and returns the new total
// @Tags         characters
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ViewCountResponse} "View recorded"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /characters/{characterId}/view [post]
func (h *CharacterHandler) RecordProfileView(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	result, err := h.characterService.RecordProfileView(c.Request.Context(), characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteCharacter godoc
// @Summary      Delete a character
// @Description  Deletes a character with its albums, photos, comments and playlist (owner only)
// @Tags         characters
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Character deleted"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /characters/{characterId} [delete]
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.characterService.DeleteCharacter(c.Request.Context(), auth.UserID, characterID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Character deleted"})
}
