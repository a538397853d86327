package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateAlbumRequest represents the request to create a new album
type CreateAlbumRequest struct {
	CharacterID uuid.UUID `json:"characterId" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1,max=100" example:"Tavern Nights"`
	Description string    `json:"description" binding:"max=500"`
}

// UpdateAlbumRequest represents the request to update an album.
// CoverPhotoID must reference a photo inside the album; an explicit null
// clears the cover.
type UpdateAlbumRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1,max=100"`
	Description  *string    `json:"description" binding:"omitempty,max=500"`
	CoverPhotoID *uuid.UUID `json:"coverPhotoId"`
	ClearCover   bool       `json:"clearCover"`
}

// AlbumResponse represents an album
type AlbumResponse struct {
	AlbumID      uuid.UUID  `json:"albumId"`
	CharacterID  uuid.UUID  `json:"characterId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CoverPhotoID *uuid.UUID `json:"coverPhotoId"`
	PhotoCount   int        `json:"photoCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AlbumDetailResponse is an album with its ordered photos
type AlbumDetailResponse struct {
	AlbumResponse
	Photos []PhotoResponse `json:"photos"`
}
