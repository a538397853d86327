package domain

import "github.com/google/uuid"

const CommentMaxLen = 1000

// Comment represents a wall comment on a character profile.
// ParentCommentID is nil for top-level comments; replies always point at a
// top-level comment, never at another reply (nesting is capped at one level).
type Comment struct {
	BaseModel
	CharacterID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_character_id" json:"characterId"`
	AuthorID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"authorId"`
	Content         string     `gorm:"type:varchar(1000)" json:"content"`
	PhotoURL        string     `gorm:"type:text" json:"photoUrl,omitempty"`
	PhotoKey        string     `gorm:"type:text" json:"-"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index:idx_comments_parent_id" json:"parentCommentId"`
	IsEdited        bool       `gorm:"not null;default:false" json:"isEdited"`
	Character       Character  `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
	Author          Character  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment is a reply to another comment
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}
