package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertPlaylistRequest creates the character's playlist or updates it if it
// already exists (one playlist per character)
type UpsertPlaylistRequest struct {
	CharacterID uuid.UUID `json:"characterId" binding:"required"`
	Title       string    `json:"title" binding:"omitempty,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=500"`
	AutoPlay    *bool     `json:"autoPlay"`
	IsPublic    *bool     `json:"isPublic"`
}

// AddSongRequest represents the request to add a song.
// URL is the user-supplied link; the service normalizes it to an embed URL.
type AddSongRequest struct {
	Platform string `json:"platform" binding:"required,oneof=spotify youtube soundcloud amazon-music"`
	URL      string `json:"url" binding:"required,url"`
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Artist   string `json:"artist" binding:"omitempty,max=200"`
}

// UpdateSongRequest represents the request to update a song's details
type UpdateSongRequest struct {
	Title  *string `json:"title" binding:"omitempty,min=1,max=200"`
	Artist *string `json:"artist" binding:"omitempty,max=200"`
}

// ReorderSongsRequest assigns song positions from the position of each
// song ID in the list
type ReorderSongsRequest struct {
	SongIDs []uuid.UUID `json:"songIds" binding:"required,min=1,dive,uuid"`
}

// SongResponse represents one song in a playlist
type SongResponse struct {
	SongID   uuid.UUID `json:"songId"`
	Platform string    `json:"platform"`
	EmbedURL string    `json:"embedUrl"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Position int       `json:"position"`
}

// PlaylistResponse represents a playlist with its ordered songs
type PlaylistResponse struct {
	PlaylistID  uuid.UUID      `json:"playlistId"`
	CharacterID uuid.UUID      `json:"characterId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	AutoPlay    bool           `json:"autoPlay"`
	IsPublic    bool           `json:"isPublic"`
	Songs       []SongResponse `json:"songs"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
