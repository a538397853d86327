package domain

import "github.com/google/uuid"

const (
	PhotoCaptionMaxLen = 500
)

// Photo represents an externally hosted image inside an album.
// StorageKey is the deletion handle returned by the media host.
type Photo struct {
	BaseModel
	AlbumID      uuid.UUID `gorm:"type:uuid;not null;index:idx_photos_album_id" json:"albumId"`
	CharacterID  uuid.UUID `gorm:"type:uuid;not null;index:idx_photos_character_id" json:"characterId"`
	ImageURL     string    `gorm:"type:text;not null" json:"imageUrl"`
	StorageKey   string    `gorm:"type:text;not null" json:"-"`
	Caption      string    `gorm:"type:varchar(500)" json:"caption"`
	LikeCount    int       `gorm:"not null;default:0" json:"likeCount"`
	DisplayOrder int       `gorm:"not null;default:0;index:idx_photos_album_order,priority:2" json:"displayOrder"`
	Album        Album     `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
	// Loaded by the repository, not a gorm association
	TaggedCharacters []Character    `gorm:"-" json:"taggedCharacters,omitempty"`
	Likes            []PhotoLike    `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE" json:"-"`
	Comments         []PhotoComment `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Photo
func (Photo) TableName() string {
	return "photos"
}

// PhotoLike records that a character liked a photo.
// The (photo_id, character_id) pair is unique; LikeCount on Photo mirrors
// the number of rows here.
type PhotoLike struct {
	BaseModel
	PhotoID     uuid.UUID `gorm:"type:uuid;not null;index:idx_photo_likes_photo_id;uniqueIndex:uq_photo_likes_photo_character" json:"photoId"`
	CharacterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_photo_likes_photo_character" json:"characterId"`
	Character   Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"character,omitempty"`
}

// TableName specifies the table name for PhotoLike
func (PhotoLike) TableName() string {
	return "photo_likes"
}

// PhotoTag marks a character as appearing in a photo
type PhotoTag struct {
	BaseModel
	PhotoID     uuid.UUID `gorm:"type:uuid;not null;index:idx_photo_tags_photo_id;uniqueIndex:uq_photo_tags_photo_character" json:"photoId"`
	CharacterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_photo_tags_photo_character" json:"characterId"`
}

// TableName specifies the table name for PhotoTag
func (PhotoTag) TableName() string {
	return "photo_tags"
}

// PhotoComment is a flat comment on a photo (no replies)
type PhotoComment struct {
	BaseModel
	PhotoID  uuid.UUID `gorm:"type:uuid;not null;index:idx_photo_comments_photo_id" json:"photoId"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null" json:"authorId"`
	Content  string    `gorm:"type:varchar(1000);not null" json:"content"`
	Author   Character `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName specifies the table name for PhotoComment
func (PhotoComment) TableName() string {
	return "photo_comments"
}
