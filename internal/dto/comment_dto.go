package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the multipart form for posting a wall
// comment or a reply. A comment must carry text content, a photo, or both.
// @Description parentCommentId may only reference a top-level comment;
// @Description replies to replies are rejected
type CreateCommentRequest struct {
	CharacterID       uuid.UUID  `form:"characterId" binding:"required"`
	AuthorCharacterID uuid.UUID  `form:"authorCharacterId" binding:"required"`
	Content           string     `form:"content" binding:"max=1000"`
	ParentCommentID   *uuid.UUID `form:"parentCommentId"`
}

// UpdateCommentRequest represents the request to edit a comment's text
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentResponse represents a single wall comment
type CommentResponse struct {
	CommentID       uuid.UUID        `json:"commentId"`
	CharacterID     uuid.UUID        `json:"characterId"`
	Author          CharacterPreview `json:"author"`
	Content         string           `json:"content"`
	PhotoURL        string           `json:"photoUrl,omitempty"`
	ParentCommentID *uuid.UUID       `json:"parentCommentId"`
	IsEdited        bool             `json:"isEdited"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// WallCommentResponse is a top-level comment with its ordered replies.
// Replies never appear at the top level and never nest further.
type WallCommentResponse struct {
	CommentResponse
	Replies []CommentResponse `json:"replies"`
}
