package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Alignment is the two-axis moral alignment of a character
type Alignment string

const (
	AlignmentLawfulGood     Alignment = "Lawful Good"
	AlignmentNeutralGood    Alignment = "Neutral Good"
	AlignmentChaoticGood    Alignment = "Chaotic Good"
	AlignmentLawfulNeutral  Alignment = "Lawful Neutral"
	AlignmentTrueNeutral    Alignment = "True Neutral"
	AlignmentChaoticNeutral Alignment = "Chaotic Neutral"
	AlignmentLawfulEvil     Alignment = "Lawful Evil"
	AlignmentNeutralEvil    Alignment = "Neutral Evil"
	AlignmentChaoticEvil    Alignment = "Chaotic Evil"
)

// ValidAlignment reports whether s is one of the nine alignments
func ValidAlignment(s string) bool {
	switch Alignment(s) {
	case AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
		AlignmentLawfulNeutral, AlignmentTrueNeutral, AlignmentChaoticNeutral,
		AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil:
		return true
	}
	return false
}

// Stats holds the six ability scores. Stored as a JSONB document on the
// character row; bounds (1-30) are enforced by the service before saving.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

const (
	StatMin       = 1
	StatMax       = 30
	LevelMin      = 1
	LevelMax      = 20
	BioMaxLen     = 2000
	TopFriendsMax = 8
)

// Valid reports whether every ability score is within [StatMin, StatMax]
func (s Stats) Valid() bool {
	for _, v := range []int{s.Strength, s.Dexterity, s.Constitution, s.Intelligence, s.Wisdom, s.Charisma} {
		if v < StatMin || v > StatMax {
			return false
		}
	}
	return true
}

// Character represents a campaign character profile.
// OwnerID is the account identity from the auth token; it is not a Character.
type Character struct {
	BaseModel
	OwnerID         uuid.UUID      `gorm:"type:uuid;not null;index:idx_characters_owner_id" json:"ownerId"`
	Name            string         `gorm:"type:varchar(100);not null" json:"name"`
	Race            string         `gorm:"type:varchar(50);not null" json:"race"`
	Class           string         `gorm:"type:varchar(50);not null" json:"class"`
	Level           int            `gorm:"not null;default:1" json:"level"`
	Stats           datatypes.JSON `gorm:"type:jsonb;not null" json:"stats"`
	Background      string         `gorm:"type:text" json:"background"`
	Alignment       Alignment      `gorm:"type:varchar(20);not null;default:'True Neutral'" json:"alignment"`
	Bio             string         `gorm:"type:varchar(2000)" json:"bio"`
	ProfileImageURL string         `gorm:"type:text" json:"profileImageUrl"`
	ProfileImageKey string         `gorm:"type:text" json:"-"`
	BannerImageURL  string         `gorm:"type:text" json:"bannerImageUrl"`
	BannerImageKey  string         `gorm:"type:text" json:"-"`
	ProfileViews    int64          `gorm:"not null;default:0" json:"profileViews"`
	// Slug is generated once at creation and never regenerated
	Slug       string      `gorm:"type:varchar(120);uniqueIndex:uq_characters_slug" json:"slug"`
	TopFriends []Character `gorm:"many2many:character_top_friends;joinForeignKey:CharacterID;joinReferences:FriendID" json:"topFriends,omitempty"`
}

// TableName specifies the table name for Character
func (Character) TableName() string {
	return "characters"
}
