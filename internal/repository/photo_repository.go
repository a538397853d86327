package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// PhotoRepository defines the interface for photo, like, tag and
// photo comment data access
type PhotoRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, photos []*domain.Photo) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	FindByAlbumID(ctx context.Context, albumID uuid.UUID) ([]*domain.Photo, error)
	FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error)
	MaxDisplayOrder(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (int, error)
	FirstByDisplayOrder(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (*domain.Photo, error)
	Update(ctx context.Context, photo *domain.Photo) error
	SetDisplayOrder(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, order int) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByAlbumID(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) error

	FindLike(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) (*domain.PhotoLike, error)
	CreateLike(ctx context.Context, tx *gorm.DB, like *domain.PhotoLike) error
	DeleteLike(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) error
	AddLikeCount(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, delta int) error
	ListLikes(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoLike, error)
	DeleteLikesByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error
	DeleteLikesByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error

	ReplaceTags(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, characterIDs []uuid.UUID) error
	FindTagsByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.PhotoTag, error)
	FindPhotosTaggedWith(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error)
	DeleteTagsByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error
	DeleteTagsByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error

	CreateComment(ctx context.Context, comment *domain.PhotoComment) error
	FindCommentByID(ctx context.Context, id uuid.UUID) (*domain.PhotoComment, error)
	ListComments(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoComment, error)
	DeleteComment(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteCommentsByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error
	DeleteCommentsByAuthorID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error

	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// photoRepositoryImpl is the GORM implementation of PhotoRepository
type photoRepositoryImpl struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new instance of PhotoRepository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepositoryImpl{db: db}
}

func (r *photoRepositoryImpl) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// CreateBatch inserts a batch of photos
func (r *photoRepositoryImpl) CreateBatch(ctx context.Context, tx *gorm.DB, photos []*domain.Photo) error {
	if len(photos) == 0 {
		return nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(photos).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a photo by its ID
func (r *photoRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	if err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindByAlbumID lists an album's photos in display order
func (r *photoRepositoryImpl) FindByAlbumID(ctx context.Context, albumID uuid.UUID) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	if err := r.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("display_order ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// FindByCharacterID lists all photos belonging to a character
func (r *photoRepositoryImpl) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	if err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// MaxDisplayOrder returns the highest display order in an album, 0 when empty
func (r *photoRepositoryImpl) MaxDisplayOrder(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (int, error) {
	var max *int
	if err := r.conn(tx).WithContext(ctx).
		Model(&domain.Photo{}).
		Where("album_id = ?", albumID).
		Select("MAX(display_order)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// FirstByDisplayOrder returns the album photo with the lowest display order
func (r *photoRepositoryImpl) FirstByDisplayOrder(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	err := r.conn(tx).WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("display_order ASC").
		First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// Update saves changes to an existing photo
func (r *photoRepositoryImpl) Update(ctx context.Context, photo *domain.Photo) error {
	if err := r.db.WithContext(ctx).Save(photo).Error; err != nil {
		return err
	}
	return nil
}

// SetDisplayOrder updates a single photo's display order
func (r *photoRepositoryImpl) SetDisplayOrder(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, order int) error {
	if err := r.conn(tx).WithContext(ctx).
		Model(&domain.Photo{}).
		Where("id = ?", photoID).
		UpdateColumn("display_order", order).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a photo by ID
func (r *photoRepositoryImpl) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).Delete(&domain.Photo{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByAlbumID deletes every photo in an album
func (r *photoRepositoryImpl) DeleteByAlbumID(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("album_id = ?", albumID).
		Delete(&domain.Photo{}).Error; err != nil {
		return err
	}
	return nil
}

// FindLike returns the like row for a (photo, character) pair
func (r *photoRepositoryImpl) FindLike(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) (*domain.PhotoLike, error) {
	var like domain.PhotoLike
	err := r.conn(tx).WithContext(ctx).
		Where("photo_id = ? AND character_id = ?", photoID, characterID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a like row
func (r *photoRepositoryImpl) CreateLike(ctx context.Context, tx *gorm.DB, like *domain.PhotoLike) error {
	if err := r.conn(tx).WithContext(ctx).Create(like).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLike removes the like row for a (photo, character) pair
func (r *photoRepositoryImpl) DeleteLike(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("photo_id = ? AND character_id = ?", photoID, characterID).
		Delete(&domain.PhotoLike{}).Error; err != nil {
		return err
	}
	return nil
}

// AddLikeCount adjusts the cached like count atomically, floored at zero
func (r *photoRepositoryImpl) AddLikeCount(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, delta int) error {
	var expr interface{}
	if delta >= 0 {
		expr = gorm.Expr("like_count + ?", delta)
	} else {
		expr = gorm.Expr("CASE WHEN like_count + ? < 0 THEN 0 ELSE like_count + ? END", delta, delta)
	}

	if err := r.conn(tx).WithContext(ctx).
		Model(&domain.Photo{}).
		Where("id = ?", photoID).
		UpdateColumn("like_count", expr).Error; err != nil {
		return err
	}
	return nil
}

// ListLikes lists a photo's likes with the liking characters preloaded
func (r *photoRepositoryImpl) ListLikes(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoLike, error) {
	var likes []*domain.PhotoLike
	if err := r.db.WithContext(ctx).
		Preload("Character").
		Where("photo_id = ?", photoID).
		Order("created_at ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// DeleteLikesByPhotoIDs deletes the like rows of a set of photos
func (r *photoRepositoryImpl) DeleteLikesByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error {
	if len(photoIDs) == 0 {
		return nil
	}
	if err := r.conn(tx).WithContext(ctx).
		Where("photo_id IN ?", photoIDs).
		Delete(&domain.PhotoLike{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLikesByCharacterID deletes every like placed by a character
func (r *photoRepositoryImpl) DeleteLikesByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("character_id = ?", characterID).
		Delete(&domain.PhotoLike{}).Error; err != nil {
		return err
	}
	return nil
}

// ReplaceTags replaces a photo's character tags with the given set
func (r *photoRepositoryImpl) ReplaceTags(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, characterIDs []uuid.UUID) error {
	db := r.conn(tx).WithContext(ctx)

	if err := db.Where("photo_id = ?", photoID).Delete(&domain.PhotoTag{}).Error; err != nil {
		return err
	}

	if len(characterIDs) == 0 {
		return nil
	}

	tags := make([]*domain.PhotoTag, 0, len(characterIDs))
	for _, characterID := range characterIDs {
		tags = append(tags, &domain.PhotoTag{
			PhotoID:     photoID,
			CharacterID: characterID,
		})
	}
	if err := db.Create(tags).Error; err != nil {
		return err
	}
	return nil
}

// FindTagsByPhotoIDs lists the tags of a set of photos
func (r *photoRepositoryImpl) FindTagsByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.PhotoTag, error) {
	if len(photoIDs) == 0 {
		return []*domain.PhotoTag{}, nil
	}

	var tags []*domain.PhotoTag
	if err := r.db.WithContext(ctx).
		Where("photo_id IN ?", photoIDs).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindPhotosTaggedWith lists all photos a character is tagged in
func (r *photoRepositoryImpl) FindPhotosTaggedWith(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	if err := r.db.WithContext(ctx).
		Joins("JOIN photo_tags ON photo_tags.photo_id = photos.id").
		Where("photo_tags.character_id = ?", characterID).
		Order("photos.created_at DESC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// DeleteTagsByPhotoIDs deletes the tag rows of a set of photos
func (r *photoRepositoryImpl) DeleteTagsByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error {
	if len(photoIDs) == 0 {
		return nil
	}
	if err := r.conn(tx).WithContext(ctx).
		Where("photo_id IN ?", photoIDs).
		Delete(&domain.PhotoTag{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteTagsByCharacterID deletes every tag referencing a character
func (r *photoRepositoryImpl) DeleteTagsByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("character_id = ?", characterID).
		Delete(&domain.PhotoTag{}).Error; err != nil {
		return err
	}
	return nil
}

// CreateComment creates a new photo comment
func (r *photoRepositoryImpl) CreateComment(ctx context.Context, comment *domain.PhotoComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindCommentByID finds a photo comment by its ID
func (r *photoRepositoryImpl) FindCommentByID(ctx context.Context, id uuid.UUID) (*domain.PhotoComment, error) {
	var comment domain.PhotoComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments lists a photo's comments, oldest first
func (r *photoRepositoryImpl) ListComments(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoComment, error) {
	var comments []*domain.PhotoComment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("photo_id = ?", photoID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment deletes a photo comment by ID
func (r *photoRepositoryImpl) DeleteComment(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).Delete(&domain.PhotoComment{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteCommentsByPhotoIDs deletes the comments of a set of photos
func (r *photoRepositoryImpl) DeleteCommentsByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error {
	if len(photoIDs) == 0 {
		return nil
	}
	if err := r.conn(tx).WithContext(ctx).
		Where("photo_id IN ?", photoIDs).
		Delete(&domain.PhotoComment{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteCommentsByAuthorID deletes every photo comment written by a character
func (r *photoRepositoryImpl) DeleteCommentsByAuthorID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error {
	if err := r.conn(tx).WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&domain.PhotoComment{}).Error; err != nil {
		return err
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *photoRepositoryImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
