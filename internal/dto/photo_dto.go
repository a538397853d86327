package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadPhotosRequest represents the multipart form for a batch photo upload.
// Captions and tag lists are positional, matching the file order.
type UploadPhotosRequest struct {
	AlbumID          uuid.UUID `form:"albumId" binding:"required"`
	Captions         string    `form:"captions"`         // JSON array of strings
	TaggedCharacters string    `form:"taggedCharacters"` // JSON array of uuid arrays
}

// UpdatePhotoTagsRequest replaces the full set of characters tagged in a
// photo. An empty list clears the tags.
type UpdatePhotoTagsRequest struct {
	TaggedCharacters []uuid.UUID `json:"taggedCharacters" binding:"omitempty,dive,uuid"`
}

// UpdateCaptionRequest represents the request to update only the caption
type UpdateCaptionRequest struct {
	Caption string `json:"caption" binding:"max=500"`
}

// ReorderPhotosRequest assigns display order from the position of each
// photo ID in the list
type ReorderPhotosRequest struct {
	AlbumID  uuid.UUID   `json:"albumId" binding:"required"`
	PhotoIDs []uuid.UUID `json:"photoIds" binding:"required,min=1,dive,uuid"`
}

// ToggleLikeRequest identifies the character acting on the like
type ToggleLikeRequest struct {
	CharacterID uuid.UUID `json:"characterId" binding:"required"`
}

// CreatePhotoCommentRequest represents the request to comment on a photo
type CreatePhotoCommentRequest struct {
	CharacterID uuid.UUID `json:"characterId" binding:"required"`
	Content     string    `json:"content" binding:"required,min=1,max=1000"`
}

// PhotoResponse represents a photo
type PhotoResponse struct {
	PhotoID          uuid.UUID              `json:"photoId"`
	AlbumID          uuid.UUID              `json:"albumId"`
	CharacterID      uuid.UUID              `json:"characterId"`
	ImageURL         string                 `json:"imageUrl"`
	Caption          string                 `json:"caption"`
	TaggedCharacters []CharacterPreview     `json:"taggedCharacters"`
	LikeCount        int                    `json:"likeCount"`
	DisplayOrder     int                    `json:"displayOrder"`
	Comments         []PhotoCommentResponse `json:"comments"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// PhotoCommentResponse represents a comment on a photo
type PhotoCommentResponse struct {
	CommentID uuid.UUID        `json:"commentId"`
	PhotoID   uuid.UUID        `json:"photoId"`
	Author    CharacterPreview `json:"author"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToggleLikeResponse is returned after a like toggle
type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// PhotoLikesResponse lists the characters who liked a photo
type PhotoLikesResponse struct {
	Likes     []CharacterPreview `json:"likes"`
	LikeCount int                `json:"likeCount"`
}
