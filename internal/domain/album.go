package domain

import "github.com/google/uuid"

const (
	AlbumTitleMaxLen       = 100
	AlbumDescriptionMaxLen = 500
)

// Album represents a photo album owned by a character.
// PhotoCount is a derived cache maintained with atomic column updates on
// every photo add/remove. CoverPhotoID, if set, must belong to the album.
type Album struct {
	BaseModel
	CharacterID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_albums_character_id" json:"characterId"`
	Title        string     `gorm:"type:varchar(100);not null" json:"title"`
	Description  string     `gorm:"type:varchar(500)" json:"description"`
	CoverPhotoID *uuid.UUID `gorm:"type:uuid" json:"coverPhotoId"`
	PhotoCount   int        `gorm:"not null;default:0" json:"photoCount"`
	Character    Character  `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Album
func (Album) TableName() string {
	return "albums"
}
