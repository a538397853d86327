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

// PlaylistHandler handles playlist and song requests
type PlaylistHandler struct {
	playlistService service.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler
func NewPlaylistHandler(playlistService service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// UpsertPlaylist godoc
// @Summary      Create or update a playlist
// @Description  Creates the character's playlist or updates it if one exists (owner only)
// @Description  A character has exactly one playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        request body dto.UpsertPlaylistRequest true "Playlist upsert request"
// @Success      200 {object} response.SuccessResponse{data=dto.PlaylistResponse} "Playlist"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /playlists [put]
func (h *PlaylistHandler) UpsertPlaylist(c *gin.Context) {
	var req dto.UpsertPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	playlist, err := h.playlistService.UpsertPlaylist(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, playlist)
}

// GetCharacterPlaylist godoc
// @Summary      Get a character's playlist
// @Description  Returns the character's playlist with songs in position order
// @Tags         playlists
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PlaylistResponse} "Playlist"
// @Failure      404 {object} response.ErrorResponse "Character or playlist not found"
// @Router       /playlists/character/{characterId} [get]
func (h *PlaylistHandler) GetCharacterPlaylist(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	playlist, err := h.playlistService.GetPlaylistByCharacter(c.Request.Context(), characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, playlist)
}

// DeletePlaylist godoc
// @Summary      Delete a character's playlist
// @Description  Deletes the character's playlist and all of its songs (owner only)
// @Tags         playlists
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Playlist deleted"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Playlist not found"
// @Router       /playlists/character/{characterId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.playlistService.DeletePlaylist(c.Request.Context(), auth.UserID, characterID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Playlist deleted"})
}

// AddSong godoc
// @Summary      Add a song
// @Description  Normalizes the supplied link to an embed URL and appends the song (owner only)
// @Description  Supported platforms: spotify, youtube, soundcloud, amazon-music
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        playlistId path string true "Playlist ID (UUID)"
// @Param        request body dto.AddSongRequest true "Song request"
// @Success      201 {object} response.SuccessResponse{data=dto.SongResponse} "Song added"
// @Failure      400 {object} response.ErrorResponse "Unrecognized link for the platform"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Playlist not found"
// @Router       /playlists/{playlistId}/songs [post]
func (h *PlaylistHandler) AddSong(c *gin.Context) {
	playlistID, err := uuid.Parse(c.Param("playlistId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid playlist ID")
		return
	}

	var req dto.AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	song, err := h.playlistService.AddSong(c.Request.Context(), auth.UserID, playlistID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, song)
}

// UpdateSong godoc
// @Summary      Update a song
// @Description  Edits a song's title or artist (owner only); the embed URL is immutable
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        songId path string true "Song ID (UUID)"
// @Param        request body dto.UpdateSongRequest true "Song update request"
// @Success      200 {object} response.SuccessResponse{data=dto.SongResponse} "Song updated"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Song not found"
// @Router       /playlists/songs/{songId} [patch]
func (h *PlaylistHandler) UpdateSong(c *gin.Context) {
	songID, err := uuid.Parse(c.Param("songId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid song ID")
		return
	}

	var req dto.UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	song, err := h.playlistService.UpdateSong(c.Request.Context(), auth.UserID, songID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, song)
}

// DeleteSong godoc
// @Summary      Delete a song
// @Description  Removes a song from its playlist (owner only)
// @Tags         playlists
// @Produce      json
// @Param        songId path string true "Song ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Song deleted"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Song not found"
// @Router       /playlists/songs/{songId} [delete]
func (h *PlaylistHandler) DeleteSong(c *gin.Context) {
	songID, err := uuid.Parse(c.Param("songId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid song ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.playlistService.DeleteSong(c.Request.Context(), auth.UserID, songID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Song deleted"})
}

// ReorderSongs godoc
// @Summary      Reorder a playlist's songs
// @Description  Rewrites song positions from the position of each song ID in the list (owner only)
// @Description  The list must contain every song in the playlist exactly once
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        playlistId path string true "Playlist ID (UUID)"
// @Param        request body dto.ReorderSongsRequest true "Reorder request"
// @Success      200 {object} response.SuccessResponse{data=dto.PlaylistResponse} "Playlist"
// @Failure      400 {object} response.ErrorResponse "Invalid song list"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Playlist not found"
// @Router       /playlists/{playlistId}/songs/reorder [put]
func (h *PlaylistHandler) ReorderSongs(c *gin.Context) {
	playlistID, err := uuid.Parse(c.Param("playlistId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid playlist ID")
		return
	}

	var req dto.ReorderSongsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	playlist, err := h.playlistService.ReorderSongs(c.Request.Context(), auth.UserID, playlistID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, playlist)
}
