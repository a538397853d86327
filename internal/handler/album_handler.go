package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/response"
	"campaign-space-api/internal/service"
	"campaign-space-api/internal/util"
)

// AlbumHandler handles photo album requests
type AlbumHandler struct {
	albumService service.AlbumService
}

// NewAlbumHandler creates a new AlbumHandler
func NewAlbumHandler(albumService service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// CreateAlbum godoc
// @Summary      Create an album
// @Description  Creates a photo album on a character (owner only)
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAlbumRequest true "Album create request"
// @Success      201 {object} response.SuccessResponse{data=dto.AlbumResponse} "Album created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /albums [post]
func (h *AlbumHandler) CreateAlbum(c *gin.Context) {
	var req dto.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	album, err := h.albumService.CreateAlbum(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, album)
}

// GetAlbum godoc
// @Summary      Get an album
// @Description  Returns an album with its photos in display order
// @Tags         albums
// @Produce      json
// @Param        albumId path string true "Album ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.AlbumDetailResponse} "Album"
// @Failure      404 {object} response.ErrorResponse "Album not found"
// @Router       /albums/{albumId} [get]
func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	albumID, err := uuid.Parse(c.Param("albumId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid album ID")
		return
	}

	album, err := h.albumService.GetAlbum(c.Request.Context(), albumID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, album)
}

// GetCharacterAlbums godoc
// @Summary      List a character's albums
// @Description  Returns a character's albums, newest first
// @Tags         albums
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.AlbumResponse} "Albums"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /albums/character/{characterId} [get]
func (h *AlbumHandler) GetCharacterAlbums(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	albums, err := h.albumService.GetAlbumsByCharacter(c.Request.Context(), characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, albums)
}

// UpdateAlbum godoc
// @Summary      Update an album
// @Description  Edits an album's title, description or cover photo (owner only)
// @Description  The cover photo must belong to the album; clearCover removes it
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        albumId path string true "Album ID (UUID)"
// @Param        request body dto.UpdateAlbumRequest true "Album update request"
// @Success      200 {object} response.SuccessResponse{data=dto.AlbumResponse} "Album updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request or cover photo"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Album not found"
// @Router       /albums/{albumId} [put]
func (h *AlbumHandler) UpdateAlbum(c *gin.Context) {
	albumID, err := uuid.Parse(c.Param("albumId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid album ID")
		return
	}

	var req dto.UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	album, err := h.albumService.UpdateAlbum(c.Request.Context(), auth.UserID, albumID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, album)
}

// DeleteAlbum godoc
// @Summary      Delete an album
// @Description  Deletes an album with its photos, likes, tags and photo comments (owner only)
// @Tags         albums
// @Produce      json
// @Param        albumId path string true "Album ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Album deleted"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Album not found"
// @Router       /albums/{albumId} [delete]
func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	albumID, err := uuid.Parse(c.Param("albumId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid album ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.albumService.DeleteAlbum(c.Request.Context(), auth.UserID, albumID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Album deleted"})
}
