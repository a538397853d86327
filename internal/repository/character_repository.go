package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// CharacterRepository defines the interface for character data access
type CharacterRepository interface {
	Create(ctx context.Context, character *domain.Character) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	FindByIDWithFriends(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Character, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Character, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Character, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.Character, error)
	Update(ctx context.Context, character *domain.Character) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementProfileViews(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	ReplaceTopFriends(ctx context.Context, character *domain.Character, friends []*domain.Character) error
	DeleteTopFriendRefs(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// characterRepositoryImpl is the GORM implementation of CharacterRepository
type characterRepositoryImpl struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new instance of CharacterRepository
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepositoryImpl{db: db}
}

// Create creates a new character
func (r *characterRepositoryImpl) Create(ctx context.Context, character *domain.Character) error {
	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a character by its ID
func (r *characterRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	var character domain.Character
	if err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

// FindByIDWithFriends finds a character with its top friends preloaded
func (r *characterRepositoryImpl) FindByIDWithFriends(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	var character domain.Character
	if err := r.db.WithContext(ctx).
		Preload("TopFriends").
		First(&character, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

// FindBySlug finds a character by its URL slug
func (r *characterRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Character, error) {
	var character domain.Character
	if err := r.db.WithContext(ctx).
		Preload("TopFriends").
		First(&character, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

// FindByIDs finds characters by their IDs
func (r *characterRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Character, error) {
	if len(ids) == 0 {
		return []*domain.Character{}, nil
	}

	var characters []*domain.Character
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// FindByOwnerID finds all characters belonging to an account
func (r *characterRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Character, error) {
	var characters []*domain.Character
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// FindAll lists characters, newest first
func (r *characterRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]*domain.Character, error) {
	var characters []*domain.Character
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// Update saves changes to an existing character
func (r *characterRepositoryImpl) Update(ctx context.Context, character *domain.Character) error {
	if err := r.db.WithContext(ctx).Save(character).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a character row inside the given transaction
func (r *characterRepositoryImpl) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).Delete(&domain.Character{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// SlugExists reports whether a slug is already taken
func (r *characterRepositoryImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Character{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementProfileViews adds delta to the view counter and returns the new value
func (r *characterRepositoryImpl) IncrementProfileViews(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Character{}).
		Where("id = ?", id).
		UpdateColumn("profile_views", gorm.Expr("profile_views + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var views int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Character{}).
		Where("id = ?", id).
		Pluck("profile_views", &views).Error; err != nil {
		return 0, err
	}
	return views, nil
}

// ReplaceTopFriends replaces the character's top friends association
func (r *characterRepositoryImpl) ReplaceTopFriends(ctx context.Context, character *domain.Character, friends []*domain.Character) error {
	return r.db.WithContext(ctx).Model(character).Association("TopFriends").Replace(friends)
}

// DeleteTopFriendRefs removes every top friend link involving the character,
// on either side of the relation
func (r *characterRepositoryImpl) DeleteTopFriendRefs(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).
		Exec("DELETE FROM character_top_friends WHERE character_id = ? OR friend_id = ?", id, id).Error; err != nil {
		return err
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *characterRepositoryImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
