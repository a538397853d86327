package domain

import "github.com/google/uuid"

// Platform identifies the music service a song is embedded from
type Platform string

const (
	PlatformSpotify     Platform = "spotify"
	PlatformYouTube     Platform = "youtube"
	PlatformSoundCloud  Platform = "soundcloud"
	PlatformAmazonMusic Platform = "amazon-music"
)

// ValidPlatform reports whether s is a supported music platform
func ValidPlatform(s string) bool {
	switch Platform(s) {
	case PlatformSpotify, PlatformYouTube, PlatformSoundCloud, PlatformAmazonMusic:
		return true
	}
	return false
}

const (
	SongTitleMaxLen  = 200
	SongArtistMaxLen = 200
)

// Playlist is a character's profile playlist. Exactly one per character.
type Playlist struct {
	BaseModel
	CharacterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_playlists_character_id" json:"characterId"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	AutoPlay    bool      `gorm:"not null;default:false" json:"autoPlay"`
	IsPublic    bool      `gorm:"not null;default:true" json:"isPublic"`
	Songs       []Song    `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"songs"`
	Character   Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Playlist
func (Playlist) TableName() string {
	return "playlists"
}

// Song is one embeddable track in a playlist.
// Position is assigned monotonically within the playlist and defines sort order.
type Song struct {
	BaseModel
	PlaylistID uuid.UUID `gorm:"type:uuid;not null;index:idx_songs_playlist_id" json:"playlistId"`
	Platform   Platform  `gorm:"type:varchar(20);not null" json:"platform"`
	EmbedURL   string    `gorm:"type:text;not null" json:"embedUrl"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	Artist     string    `gorm:"type:varchar(200)" json:"artist"`
	Position   int       `gorm:"not null;default:0" json:"position"`
}

// TableName specifies the table name for Song
func (Song) TableName() string {
	return "songs"
}
