package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/metrics"
	"campaign-space-api/internal/repository"
	"campaign-space-api/internal/response"
)

// PhotoUpload is one file in a batch upload. Caption and Tags are
// positional, matching the order of the files in the form.
type PhotoUpload struct {
	File        io.Reader
	FileExt     string
	ContentType string
	Caption     string
	Tags        []uuid.UUID
}

// PhotoService defines the interface for photo business logic
type PhotoService interface {
	UploadPhotos(ctx context.Context, userID, albumID uuid.UUID, uploads []PhotoUpload) ([]*dto.PhotoResponse, error)
	GetPhoto(ctx context.Context, photoID uuid.UUID) (*dto.PhotoResponse, error)
	UpdateCaption(ctx context.Context, userID, photoID uuid.UUID, caption string) (*dto.PhotoResponse, error)
	UpdateTags(ctx context.Context, userID, photoID uuid.UUID, characterIDs []uuid.UUID) (*dto.PhotoResponse, error)
	ReorderPhotos(ctx context.Context, userID uuid.UUID, req *dto.ReorderPhotosRequest) error
	ToggleLike(ctx context.Context, userID, photoID, characterID uuid.UUID) (*dto.ToggleLikeResponse, error)
	GetLikes(ctx context.Context, photoID uuid.UUID) (*dto.PhotoLikesResponse, error)
	AddComment(ctx context.Context, userID, photoID uuid.UUID, req *dto.CreatePhotoCommentRequest) (*dto.PhotoCommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error
	GetTaggedPhotos(ctx context.Context, characterID uuid.UUID) ([]*dto.PhotoResponse, error)
}

// photoServiceImpl is the implementation of PhotoService
type photoServiceImpl struct {
	photoRepo     repository.PhotoRepository
	albumRepo     repository.AlbumRepository
	characterRepo repository.CharacterRepository
	s3Client      S3Client
	cleaner       *MediaCleaner
	maxPerUpload  int
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewPhotoService creates a new instance of PhotoService
func NewPhotoService(
	photoRepo repository.PhotoRepository,
	albumRepo repository.AlbumRepository,
	characterRepo repository.CharacterRepository,
	s3Client S3Client,
	cleaner *MediaCleaner,
	maxPerUpload int,
	m *metrics.Metrics,
	logger *zap.Logger,
) PhotoService {
	return &photoServiceImpl{
		photoRepo:     photoRepo,
		albumRepo:     albumRepo,
		characterRepo: characterRepo,
		s3Client:      s3Client,
		cleaner:       cleaner,
		maxPerUpload:  maxPerUpload,
		metrics:       m,
		logger:        logger,
	}
}

// UploadPhotos stores a batch of images and appends them to an album.
// Display order continues from the current maximum, and the first photo
// ever added becomes the album cover.
func (s *photoServiceImpl) UploadPhotos(ctx context.Context, userID, albumID uuid.UUID, uploads []PhotoUpload) ([]*dto.PhotoResponse, error) {
	if len(uploads) == 0 {
		return nil, response.NewAppError(response.ErrCodeValidation, "No files provided", "")
	}
	if len(uploads) > s.maxPerUpload {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("At most %d photos can be uploaded at once", s.maxPerUpload), "")
	}

	album, err := s.albumRepo.FindByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Album not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load album", err.Error())
	}

	if _, err := ownedCharacter(ctx, s.characterRepo, userID, album.CharacterID); err != nil {
		return nil, err
	}

	tagSets := make([][]uuid.UUID, len(uploads))
	for i, upload := range uploads {
		if len(upload.Caption) > domain.PhotoCaptionMaxLen {
			return nil, response.NewAppError(response.ErrCodeValidation,
				fmt.Sprintf("Caption must be at most %d characters", domain.PhotoCaptionMaxLen), "")
		}
		tags, err := s.validTagTargets(ctx, upload.Tags)
		if err != nil {
			return nil, err
		}
		tagSets[i] = tags
	}

	uploaded := make([]string, 0, len(uploads))
	photos := make([]*domain.Photo, 0, len(uploads))
	for i, upload := range uploads {
		key, err := s.s3Client.GenerateFileKey(client.FolderPhotos, album.CharacterID.String(), upload.FileExt)
		if err != nil {
			s.cleaner.DeleteKeys(ctx, uploaded)
			return nil, response.NewAppError(response.ErrCodeValidation, "Unsupported file name", err.Error())
		}

		start := time.Now()
		url, err := s.s3Client.UploadFile(ctx, key, upload.File, upload.ContentType)
		if s.metrics != nil {
			s.metrics.RecordStorageOperation("upload", time.Since(start), err)
		}
		if err != nil {
			s.cleaner.DeleteKeys(ctx, uploaded)
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload photo", err.Error())
		}
		uploaded = append(uploaded, key)

		photos = append(photos, &domain.Photo{
			AlbumID:     albumID,
			CharacterID: album.CharacterID,
			ImageURL:    url,
			StorageKey:  key,
			Caption:     uploads[i].Caption,
		})
	}

	err = s.photoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		maxOrder, err := s.photoRepo.MaxDisplayOrder(ctx, tx, albumID)
		if err != nil {
			return err
		}
		for i := range photos {
			photos[i].DisplayOrder = maxOrder + i + 1
		}
		if err := s.photoRepo.CreateBatch(ctx, tx, photos); err != nil {
			return err
		}
		for i, photo := range photos {
			if err := s.photoRepo.ReplaceTags(ctx, tx, photo.ID, tagSets[i]); err != nil {
				return err
			}
		}
		if err := s.albumRepo.AddPhotoCount(ctx, tx, albumID, len(photos)); err != nil {
			return err
		}
		if album.CoverPhotoID == nil {
			return s.albumRepo.SetCoverPhoto(ctx, tx, albumID, &photos[0].ID)
		}
		return nil
	})
	if err != nil {
		s.cleaner.DeleteKeys(ctx, uploaded)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save photos", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPhotoUploaded(len(photos))
	}
	s.logger.Info("Photos uploaded",
		zap.String("album_id", albumID.String()),
		zap.Int("count", len(photos)),
	)

	tagsByPhoto, err := loadTagPreviews(ctx, s.photoRepo, s.characterRepo, photos)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, toPhotoResponse(photo, tagsByPhoto[photo.ID], nil))
	}
	return responses, nil
}

// GetPhoto returns a photo with its tagged characters and comments
func (s *photoServiceImpl) GetPhoto(ctx context.Context, photoID uuid.UUID) (*dto.PhotoResponse, error) {
	photo, err := s.findPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}

	tagsByPhoto, err := loadTagPreviews(ctx, s.photoRepo, s.characterRepo, []*domain.Photo{photo})
	if err != nil {
		return nil, err
	}

	comments, err := s.photoRepo.ListComments(ctx, photoID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}
	commentResponses := make([]dto.PhotoCommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, *toPhotoCommentResponse(comment))
	}

	return toPhotoResponse(photo, tagsByPhoto[photo.ID], commentResponses), nil
}

// UpdateCaption changes a photo's caption
func (s *photoServiceImpl) UpdateCaption(ctx context.Context, userID, photoID uuid.UUID, caption string) (*dto.PhotoResponse, error) {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}

	photo.Caption = strings.TrimSpace(caption)
	if len(photo.Caption) > domain.PhotoCaptionMaxLen {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Caption must be at most %d characters", domain.PhotoCaptionMaxLen), "")
	}

	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update photo", err.Error())
	}

	return s.GetPhoto(ctx, photoID)
}

// UpdateTags replaces the set of characters tagged in a photo
func (s *photoServiceImpl) UpdateTags(ctx context.Context, userID, photoID uuid.UUID, characterIDs []uuid.UUID) (*dto.PhotoResponse, error) {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}

	tags, err := s.validTagTargets(ctx, characterIDs)
	if err != nil {
		return nil, err
	}

	if err := s.photoRepo.ReplaceTags(ctx, nil, photo.ID, tags); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tags", err.Error())
	}

	return s.GetPhoto(ctx, photoID)
}

// ReorderPhotos rewrites display order from the position of each photo ID
// in the request. Every photo in the album must appear exactly once.
func (s *photoServiceImpl) ReorderPhotos(ctx context.Context, userID uuid.UUID, req *dto.ReorderPhotosRequest) error {
	album, err := s.albumRepo.FindByID(ctx, req.AlbumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Album not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load album", err.Error())
	}

	if _, err := ownedCharacter(ctx, s.characterRepo, userID, album.CharacterID); err != nil {
		return err
	}

	photos, err := s.photoRepo.FindByAlbumID(ctx, req.AlbumID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load photos", err.Error())
	}

	inAlbum := make(map[uuid.UUID]bool, len(photos))
	for _, photo := range photos {
		inAlbum[photo.ID] = true
	}
	if len(req.PhotoIDs) != len(photos) {
		return response.NewAppError(response.ErrCodeValidation,
			"Photo list must contain every photo in the album exactly once", "")
	}
	seen := make(map[uuid.UUID]bool, len(req.PhotoIDs))
	for _, id := range req.PhotoIDs {
		if !inAlbum[id] {
			return response.NewAppError(response.ErrCodeValidation,
				"Photo does not belong to the album", id.String())
		}
		if seen[id] {
			return response.NewAppError(response.ErrCodeValidation,
				"Duplicate photo in reorder list", id.String())
		}
		seen[id] = true
	}

	err = s.photoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		for i, id := range req.PhotoIDs {
			if err := s.photoRepo.SetDisplayOrder(ctx, tx, id, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to reorder photos", err.Error())
	}
	return nil
}

// ToggleLike flips the like state of a photo for one of the caller's
// characters and returns the resulting state
func (s *photoServiceImpl) ToggleLike(ctx context.Context, userID, photoID, characterID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	if _, err := ownedCharacter(ctx, s.characterRepo, userID, characterID); err != nil {
		return nil, err
	}
	if _, err := s.findPhoto(ctx, photoID); err != nil {
		return nil, err
	}

	var liked bool
	err := s.photoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		_, err := s.photoRepo.FindLike(ctx, tx, photoID, characterID)
		switch {
		case err == nil:
			if err := s.photoRepo.DeleteLike(ctx, tx, photoID, characterID); err != nil {
				return err
			}
			liked = false
			return s.photoRepo.AddLikeCount(ctx, tx, photoID, -1)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.photoRepo.CreateLike(ctx, tx, &domain.PhotoLike{
				PhotoID:     photoID,
				CharacterID: characterID,
			}); err != nil {
				return err
			}
			liked = true
			return s.photoRepo.AddLikeCount(ctx, tx, photoID, 1)
		default:
			return err
		}
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to toggle like", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPhotoLikeToggled()
	}

	photo, err := s.findPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleLikeResponse{Liked: liked, LikeCount: photo.LikeCount}, nil
}

// GetLikes lists the characters who liked a photo
func (s *photoServiceImpl) GetLikes(ctx context.Context, photoID uuid.UUID) (*dto.PhotoLikesResponse, error) {
	if _, err := s.findPhoto(ctx, photoID); err != nil {
		return nil, err
	}

	likes, err := s.photoRepo.ListLikes(ctx, photoID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load likes", err.Error())
	}

	previews := make([]dto.CharacterPreview, 0, len(likes))
	for _, like := range likes {
		previews = append(previews, toCharacterPreview(&like.Character))
	}
	return &dto.PhotoLikesResponse{Likes: previews, LikeCount: len(previews)}, nil
}

// AddComment posts a comment on a photo as one of the caller's characters
func (s *photoServiceImpl) AddComment(ctx context.Context, userID, photoID uuid.UUID, req *dto.CreatePhotoCommentRequest) (*dto.PhotoCommentResponse, error) {
	author, err := ownedCharacter(ctx, s.characterRepo, userID, req.CharacterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findPhoto(ctx, photoID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment cannot be empty", "")
	}

	comment := &domain.PhotoComment{
		PhotoID:  photoID,
		AuthorID: author.ID,
		Content:  content,
	}
	if err := s.photoRepo.CreateComment(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	comment.Author = *author
	return toPhotoCommentResponse(comment), nil
}

// DeleteComment removes a photo comment. Allowed for the owner of the
// comment's author character and for the owner of the photo's character.
func (s *photoServiceImpl) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.photoRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	photo, err := s.findPhoto(ctx, comment.PhotoID)
	if err != nil {
		return err
	}

	allowed := characterOwnedBy(ctx, s.characterRepo, userID, comment.AuthorID) ||
		characterOwnedBy(ctx, s.characterRepo, userID, photo.CharacterID)
	if !allowed {
		return response.NewAppError(response.ErrCodeForbidden,
			"Only the author or the photo owner can delete a comment", "")
	}

	if err := s.photoRepo.DeleteComment(ctx, nil, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

// DeletePhoto removes a photo with its likes, tags and comments. The
// album count is decremented and the cover reassigned to the lowest
// remaining display order when the deleted photo was the cover.
func (s *photoServiceImpl) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	album, err := s.albumRepo.FindByID(ctx, photo.AlbumID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load album", err.Error())
	}
	wasCover := album.CoverPhotoID != nil && *album.CoverPhotoID == photoID

	err = s.photoRepo.Transaction(ctx, func(tx *gorm.DB) error {
		photoIDs := []uuid.UUID{photoID}
		if err := s.photoRepo.DeleteLikesByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteTagsByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteCommentsByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.Delete(ctx, tx, photoID); err != nil {
			return err
		}
		if err := s.albumRepo.AddPhotoCount(ctx, tx, photo.AlbumID, -1); err != nil {
			return err
		}
		if wasCover {
			next, err := s.photoRepo.FirstByDisplayOrder(ctx, tx, photo.AlbumID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return s.albumRepo.SetCoverPhoto(ctx, tx, photo.AlbumID, nil)
				}
				return err
			}
			return s.albumRepo.SetCoverPhoto(ctx, tx, photo.AlbumID, &next.ID)
		}
		return nil
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete photo", err.Error())
	}

	s.cleaner.DeleteKeys(ctx, []string{photo.StorageKey})
	return nil
}

// GetTaggedPhotos lists every photo a character is tagged in, newest first
func (s *photoServiceImpl) GetTaggedPhotos(ctx context.Context, characterID uuid.UUID) ([]*dto.PhotoResponse, error) {
	if _, err := s.characterRepo.FindByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}

	photos, err := s.photoRepo.FindPhotosTaggedWith(ctx, characterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load photos", err.Error())
	}

	tagsByPhoto, err := loadTagPreviews(ctx, s.photoRepo, s.characterRepo, photos)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, toPhotoResponse(photo, tagsByPhoto[photo.ID], nil))
	}
	return responses, nil
}

// findPhoto loads a photo, mapping a missing row to a not found error
func (s *photoServiceImpl) findPhoto(ctx context.Context, photoID uuid.UUID) (*domain.Photo, error) {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Photo not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load photo", err.Error())
	}
	return photo, nil
}

// ownedPhoto loads a photo and verifies the requester owns its character
func (s *photoServiceImpl) ownedPhoto(ctx context.Context, userID, photoID uuid.UUID) (*domain.Photo, error) {
	photo, err := s.findPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedCharacter(ctx, s.characterRepo, userID, photo.CharacterID); err != nil {
		return nil, err
	}
	return photo, nil
}

// validTagTargets dedupes a tag list and checks every character exists
func (s *photoServiceImpl) validTagTargets(ctx context.Context, characterIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids := removeDuplicateUUIDs(characterIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.characterRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up characters", err.Error())
	}
	if len(found) != len(ids) {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"One or more tagged characters do not exist", "")
	}
	return ids, nil
}

// loadTagPreviews batch loads the tagged characters for a set of photos
func loadTagPreviews(
	ctx context.Context,
	photoRepo repository.PhotoRepository,
	characterRepo repository.CharacterRepository,
	photos []*domain.Photo,
) (map[uuid.UUID][]dto.CharacterPreview, error) {
	result := make(map[uuid.UUID][]dto.CharacterPreview, len(photos))
	if len(photos) == 0 {
		return result, nil
	}

	photoIDs := make([]uuid.UUID, 0, len(photos))
	for _, photo := range photos {
		photoIDs = append(photoIDs, photo.ID)
	}

	tags, err := photoRepo.FindTagsByPhotoIDs(ctx, photoIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load tags", err.Error())
	}
	if len(tags) == 0 {
		return result, nil
	}

	characterIDs := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		characterIDs = append(characterIDs, tag.CharacterID)
	}
	characters, err := characterRepo.FindByIDs(ctx, removeDuplicateUUIDs(characterIDs))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up characters", err.Error())
	}
	previewByID := make(map[uuid.UUID]dto.CharacterPreview, len(characters))
	for _, character := range characters {
		previewByID[character.ID] = toCharacterPreview(character)
	}

	for _, tag := range tags {
		if preview, ok := previewByID[tag.CharacterID]; ok {
			result[tag.PhotoID] = append(result[tag.PhotoID], preview)
		}
	}
	return result, nil
}

// toPhotoResponse converts a photo to its response form
func toPhotoResponse(photo *domain.Photo, tags []dto.CharacterPreview, comments []dto.PhotoCommentResponse) *dto.PhotoResponse {
	if tags == nil {
		tags = []dto.CharacterPreview{}
	}
	if comments == nil {
		comments = []dto.PhotoCommentResponse{}
	}
	return &dto.PhotoResponse{
		PhotoID:          photo.ID,
		AlbumID:          photo.AlbumID,
		CharacterID:      photo.CharacterID,
		ImageURL:         photo.ImageURL,
		Caption:          photo.Caption,
		TaggedCharacters: tags,
		LikeCount:        photo.LikeCount,
		DisplayOrder:     photo.DisplayOrder,
		Comments:         comments,
		CreatedAt:        photo.CreatedAt,
		UpdatedAt:        photo.UpdatedAt,
	}
}

// toPhotoCommentResponse converts a photo comment to its response form
func toPhotoCommentResponse(comment *domain.PhotoComment) *dto.PhotoCommentResponse {
	return &dto.PhotoCommentResponse{
		CommentID: comment.ID,
		PhotoID:   comment.PhotoID,
		Author:    toCharacterPreview(&comment.Author),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
