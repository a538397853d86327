package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// AlbumRepository defines the interface for album data access
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Album, error)
	Update(ctx context.Context, album *domain.Album) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	AddPhotoCount(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int) error
	SetCoverPhoto(ctx context.Context, tx *gorm.DB, id uuid.UUID, coverPhotoID *uuid.UUID) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// albumRepositoryImpl is the GORM implementation of AlbumRepository
type albumRepositoryImpl struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new instance of AlbumRepository
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepositoryImpl{db: db}
}

// Create creates a new album
func (r *albumRepositoryImpl) Create(ctx context.Context, album *domain.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an album by its ID
func (r *albumRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	var album domain.Album
	if err := r.db.WithContext(ctx).First(&album, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// FindByCharacterID lists a character's albums, newest first
func (r *albumRepositoryImpl) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Album, error) {
	var albums []*domain.Album
	if err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("created_at DESC").
		Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

// Update saves changes to an existing album
func (r *albumRepositoryImpl) Update(ctx context.Context, album *domain.Album) error {
	if err := r.db.WithContext(ctx).Save(album).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes an album by ID
func (r *albumRepositoryImpl) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).Delete(&domain.Album{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByCharacterID deletes all albums of a character
func (r *albumRepositoryImpl) DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Delete(&domain.Album{}).Error; err != nil {
		return err
	}
	return nil
}

// AddPhotoCount adjusts the cached photo count atomically.
// Decrements are floored at zero so a drifted cache can never go negative.
func (r *albumRepositoryImpl) AddPhotoCount(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int) error {
	db := tx
	if db == nil {
		db = r.db
	}

	var expr interface{}
	if delta >= 0 {
		expr = gorm.Expr("photo_count + ?", delta)
	} else {
		expr = gorm.Expr("CASE WHEN photo_count + ? < 0 THEN 0 ELSE photo_count + ? END", delta, delta)
	}

	if err := db.WithContext(ctx).
		Model(&domain.Album{}).
		Where("id = ?", id).
		UpdateColumn("photo_count", expr).Error; err != nil {
		return err
	}
	return nil
}

// SetCoverPhoto updates the album's cover photo reference (nil clears it)
func (r *albumRepositoryImpl) SetCoverPhoto(ctx context.Context, tx *gorm.DB, id uuid.UUID, coverPhotoID *uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).
		Model(&domain.Album{}).
		Where("id = ?", id).
		UpdateColumn("cover_photo_id", coverPhotoID).Error; err != nil {
		return err
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *albumRepositoryImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
