package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// PlaylistRepository defines the interface for playlist and song data access
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	FindByCharacterID(ctx context.Context, characterID uuid.UUID) (*domain.Playlist, error)
	Update(ctx context.Context, playlist *domain.Playlist) error
	DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error

	CreateSong(ctx context.Context, song *domain.Song) error
	FindSongByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
	MaxPosition(ctx context.Context, playlistID uuid.UUID) (int, error)
	UpdateSong(ctx context.Context, song *domain.Song) error
	DeleteSong(ctx context.Context, id uuid.UUID) error
	DeleteSongsByPlaylistID(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) error
	SetSongPosition(ctx context.Context, tx *gorm.DB, songID uuid.UUID, position int) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// playlistRepositoryImpl is the GORM implementation of PlaylistRepository
type playlistRepositoryImpl struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a new instance of PlaylistRepository
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepositoryImpl{db: db}
}

func (r *playlistRepositoryImpl) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Create creates a new playlist
func (r *playlistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a playlist by ID with its songs in position order
func (r *playlistRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := r.db.WithContext(ctx).
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&playlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// FindByCharacterID finds a character's playlist with its songs in position order
func (r *playlistRepositoryImpl) FindByCharacterID(ctx context.Context, characterID uuid.UUID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := r.db.WithContext(ctx).
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&playlist, "character_id = ?", characterID).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Update saves changes to an existing playlist
func (r *playlistRepositoryImpl) Update(ctx context.Context, playlist *domain.Playlist) error {
	if err := r.db.WithContext(ctx).Save(playlist).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByCharacterID deletes a character's playlist
func (r *playlistRepositoryImpl) DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("character_id = ?", characterID).
		Delete(&domain.Playlist{}).Error; err != nil {
		return err
	}
	return nil
}

// CreateSong creates a new song
func (r *playlistRepositoryImpl) CreateSong(ctx context.Context, song *domain.Song) error {
	if err := r.db.WithContext(ctx).Create(song).Error; err != nil {
		return err
	}
	return nil
}

// FindSongByID finds a song by its ID
func (r *playlistRepositoryImpl) FindSongByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	var song domain.Song
	if err := r.db.WithContext(ctx).First(&song, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

// MaxPosition returns the highest song position in a playlist, 0 when empty
func (r *playlistRepositoryImpl) MaxPosition(ctx context.Context, playlistID uuid.UUID) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&domain.Song{}).
		Where("playlist_id = ?", playlistID).
		Select("MAX(position)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// UpdateSong saves changes to an existing song
func (r *playlistRepositoryImpl) UpdateSong(ctx context.Context, song *domain.Song) error {
	if err := r.db.WithContext(ctx).Save(song).Error; err != nil {
		return err
	}
	return nil
}

// DeleteSong deletes a song by ID
func (r *playlistRepositoryImpl) DeleteSong(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Song{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteSongsByPlaylistID deletes all songs of a playlist
func (r *playlistRepositoryImpl) DeleteSongsByPlaylistID(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Delete(&domain.Song{}).Error; err != nil {
		return err
	}
	return nil
}

// SetSongPosition updates a single song's position
func (r *playlistRepositoryImpl) SetSongPosition(ctx context.Context, tx *gorm.DB, songID uuid.UUID, position int) error {
	if err := r.conn(tx).WithContext(ctx).
		Model(&domain.Song{}).
		Where("id = ?", songID).
		UpdateColumn("position", position).Error; err != nil {
		return err
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *playlistRepositoryImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
