package dto

import (
	"time"

	"github.com/google/uuid"
)

// StatsPayload carries the six ability scores
type StatsPayload struct {
	Strength     int `json:"strength" binding:"required,min=1,max=30" example:"16"`
	Dexterity    int `json:"dexterity" binding:"required,min=1,max=30" example:"12"`
	Constitution int `json:"constitution" binding:"required,min=1,max=30" example:"14"`
	Intelligence int `json:"intelligence" binding:"required,min=1,max=30" example:"10"`
	Wisdom       int `json:"wisdom" binding:"required,min=1,max=30" example:"13"`
	Charisma     int `json:"charisma" binding:"required,min=1,max=30" example:"8"`
}

// CreateCharacterRequest represents the request to create a new character
// @Description Request body for creating a character profile
// @Description All six ability scores are required and must be within 1-30
type CreateCharacterRequest struct {
	Name       string       `json:"name" binding:"required,min=1,max=100" example:"Grog Strongjaw"`
	Race       string       `json:"race" binding:"required,min=1,max=50" example:"Goliath"`
	Class      string       `json:"class" binding:"required,min=1,max=50" example:"Barbarian"`
	Level      int          `json:"level" binding:"required,min=1,max=20" example:"9"`
	Stats      StatsPayload `json:"stats" binding:"required"`
	Background string       `json:"background" example:"Soldier"`
	Alignment  string       `json:"alignment" binding:"omitempty" example:"Chaotic Neutral"`
	Bio        string       `json:"bio" binding:"max=2000" example:"I would like to rage."`
}

// UpdateCharacterRequest represents the request to update a character.
// All fields are optional; the slug is never regenerated.
type UpdateCharacterRequest struct {
	Name       *string       `json:"name" binding:"omitempty,min=1,max=100"`
	Race       *string       `json:"race" binding:"omitempty,min=1,max=50"`
	Class      *string       `json:"class" binding:"omitempty,min=1,max=50"`
	Level      *int          `json:"level" binding:"omitempty,min=1,max=20"`
	Stats      *StatsPayload `json:"stats"`
	Background *string       `json:"background"`
	Alignment  *string       `json:"alignment"`
	Bio        *string       `json:"bio" binding:"omitempty,max=2000"`
	TopFriends []uuid.UUID   `json:"topFriends" binding:"omitempty,dive,uuid"`
}

// CharacterPreview is the compact character representation embedded in
// comments, likes and tag lists
type CharacterPreview struct {
	CharacterID     uuid.UUID `json:"characterId"`
	Name            string    `json:"name"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Slug            string    `json:"slug"`
}

// CharacterResponse represents the full character profile
type CharacterResponse struct {
	CharacterID     uuid.UUID          `json:"characterId"`
	OwnerID         uuid.UUID          `json:"ownerId"`
	Name            string             `json:"name"`
	Race            string             `json:"race"`
	Class           string             `json:"class"`
	Level           int                `json:"level"`
	Stats           StatsPayload       `json:"stats"`
	Background      string             `json:"background"`
	Alignment       string             `json:"alignment"`
	Bio             string             `json:"bio"`
	ProfileImageURL string             `json:"profileImageUrl"`
	BannerImageURL  string             `json:"bannerImageUrl"`
	ProfileViews    int64              `json:"profileViews"`
	Slug            string             `json:"slug"`
	TopFriends      []CharacterPreview `json:"topFriends"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// UploadImageResponse is returned after a profile or banner image upload
type UploadImageResponse struct {
	ImageType string `json:"imageType"`
	ImageURL  string `json:"imageUrl"`
}

// ViewCountResponse is returned after a profile view increment
type ViewCountResponse struct {
	Views int64 `json:"views"`
}
