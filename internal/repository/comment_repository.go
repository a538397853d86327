package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// CommentRepository defines the interface for wall comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindTopLevelByCharacter(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error)
	FindRepliesByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error)
	FindRepliesByParentID(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error)
	FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error)
	FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByParentID(ctx context.Context, tx *gorm.DB, parentID uuid.UUID) error
	DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	DeleteByAuthorID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a comment by its ID, with author preloaded
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindTopLevelByCharacter lists a wall's top-level comments, newest first
func (r *commentRepositoryImpl) FindTopLevelByCharacter(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("character_id = ? AND parent_comment_id IS NULL", characterID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindRepliesByParentIDs lists replies for a set of top-level comments, oldest first
func (r *commentRepositoryImpl) FindRepliesByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []*domain.Comment{}, nil
	}

	var replies []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_comment_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// FindRepliesByParentID lists the replies of one comment, oldest first
func (r *commentRepositoryImpl) FindRepliesByParentID(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error) {
	var replies []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_comment_id = ?", parentID).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// FindByCharacterID lists every comment on a wall, replies included
func (r *commentRepositoryImpl) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByAuthorID lists every comment a character has written, on any wall
func (r *commentRepositoryImpl) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update saves changes to an existing comment
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a comment by ID
func (r *commentRepositoryImpl) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByParentID deletes all replies of a top-level comment
func (r *commentRepositoryImpl) DeleteByParentID(ctx context.Context, tx *gorm.DB, parentID uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).
		Where("parent_comment_id = ?", parentID).
		Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByCharacterID deletes every comment on a character's wall
func (r *commentRepositoryImpl) DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByAuthorID deletes every comment a character has written
func (r *commentRepositoryImpl) DeleteByAuthorID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *commentRepositoryImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
