package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/repository"
	"campaign-space-api/internal/response"
)

// AlbumService defines the interface for album business logic
type AlbumService interface {
	CreateAlbum(ctx context.Context, userID uuid.UUID, req *dto.CreateAlbumRequest) (*dto.AlbumResponse, error)
	GetAlbum(ctx context.Context, albumID uuid.UUID) (*dto.AlbumDetailResponse, error)
	GetAlbumsByCharacter(ctx context.Context, characterID uuid.UUID) ([]*dto.AlbumResponse, error)
	UpdateAlbum(ctx context.Context, userID, albumID uuid.UUID, req *dto.UpdateAlbumRequest) (*dto.AlbumResponse, error)
	DeleteAlbum(ctx context.Context, userID, albumID uuid.UUID) error
}

// albumServiceImpl is the implementation of AlbumService
type albumServiceImpl struct {
	albumRepo     repository.AlbumRepository
	photoRepo     repository.PhotoRepository
	characterRepo repository.CharacterRepository
	cleaner       *MediaCleaner
	logger        *zap.Logger
}

// NewAlbumService creates a new instance of AlbumService
func NewAlbumService(
	albumRepo repository.AlbumRepository,
	photoRepo repository.PhotoRepository,
	characterRepo repository.CharacterRepository,
	cleaner *MediaCleaner,
	logger *zap.Logger,
) AlbumService {
	return &albumServiceImpl{
		albumRepo:     albumRepo,
		photoRepo:     photoRepo,
		characterRepo: characterRepo,
		cleaner:       cleaner,
		logger:        logger,
	}
}

// CreateAlbum creates an album on an owned character
func (s *albumServiceImpl) CreateAlbum(ctx context.Context, userID uuid.UUID, req *dto.CreateAlbumRequest) (*dto.AlbumResponse, error) {
	if _, err := ownedCharacter(ctx, s.characterRepo, userID, req.CharacterID); err != nil {
		return nil, err
	}

	album := &domain.Album{
		CharacterID: req.CharacterID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create album", err.Error())
	}

	return toAlbumResponse(album), nil
}

// GetAlbum returns an album with its photos in display order
func (s *albumServiceImpl) GetAlbum(ctx context.Context, albumID uuid.UUID) (*dto.AlbumDetailResponse, error) {
	album, err := s.albumRepo.FindByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Album not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load album", err.Error())
	}

	photos, err := s.photoRepo.FindByAlbumID(ctx, albumID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load photos", err.Error())
	}

	tagsByPhoto, err := loadTagPreviews(ctx, s.photoRepo, s.characterRepo, photos)
	if err != nil {
		return nil, err
	}

	photoResponses := make([]dto.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		photoResponses = append(photoResponses, *toPhotoResponse(photo, tagsByPhoto[photo.ID], nil))
	}

	return &dto.AlbumDetailResponse{
		AlbumResponse: *toAlbumResponse(album),
		Photos:        photoResponses,
	}, nil
}

// GetAlbumsByCharacter lists a character's albums
func (s *albumServiceImpl) GetAlbumsByCharacter(ctx context.Context, characterID uuid.UUID) ([]*dto.AlbumResponse, error) {
	if _, err := s.characterRepo.FindByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}

	albums, err := s.albumRepo.FindByCharacterID(ctx, characterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list albums", err.Error())
	}

	responses := make([]*dto.AlbumResponse, 0, len(albums))
	for _, album := range albums {
		responses = append(responses, toAlbumResponse(album))
	}
	return responses, nil
}

// UpdateAlbum edits an owned album's title, description or cover photo
func (s *albumServiceImpl) UpdateAlbum(ctx context.Context, userID, albumID uuid.UUID, req *dto.UpdateAlbumRequest) (*dto.AlbumResponse, error) {
	album, err := s.ownedAlbum(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.Description != nil {
		album.Description = *req.Description
	}
	if req.ClearCover {
		album.CoverPhotoID = nil
	} else if req.CoverPhotoID != nil {
		photo, err := s.photoRepo.FindByID(ctx, *req.CoverPhotoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Cover photo not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load cover photo", err.Error())
		}
		if photo.AlbumID != albumID {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Cover photo must belong to the album", "")
		}
		album.CoverPhotoID = req.CoverPhotoID
	}

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update album", err.Error())
	}

	return toAlbumResponse(album), nil
}

// DeleteAlbum removes an album with its photos, likes, tags and photo
// comments. Stored images are deleted after the commit.
func (s *albumServiceImpl) DeleteAlbum(ctx context.Context, userID, albumID uuid.UUID) error {
	album, err := s.ownedAlbum(ctx, userID, albumID)
	if err != nil {
		return err
	}

	photos, err := s.photoRepo.FindByAlbumID(ctx, albumID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load photos", err.Error())
	}

	photoIDs := make([]uuid.UUID, 0, len(photos))
	storageKeys := make([]string, 0, len(photos))
	for _, photo := range photos {
		photoIDs = append(photoIDs, photo.ID)
		storageKeys = append(storageKeys, photo.StorageKey)
	}

	err = s.albumRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.photoRepo.DeleteLikesByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteTagsByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteCommentsByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteByAlbumID(ctx, tx, albumID); err != nil {
			return err
		}
		return s.albumRepo.Delete(ctx, tx, albumID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete album", err.Error())
	}

	s.cleaner.DeleteKeys(ctx, storageKeys)

	s.logger.Info("Album deleted",
		zap.String("album_id", albumID.String()),
		zap.String("character_id", album.CharacterID.String()),
		zap.Int("photos", len(photos)),
	)

	return nil
}

// ownedAlbum loads an album and verifies the requester owns its character
func (s *albumServiceImpl) ownedAlbum(ctx context.Context, userID, albumID uuid.UUID) (*domain.Album, error) {
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
	return album, nil
}

// toAlbumResponse converts an album to its response form
func toAlbumResponse(album *domain.Album) *dto.AlbumResponse {
	return &dto.AlbumResponse{
		AlbumID:      album.ID,
		CharacterID:  album.CharacterID,
		Title:        album.Title,
		Description:  album.Description,
		CoverPhotoID: album.CoverPhotoID,
		PhotoCount:   album.PhotoCount,
		CreatedAt:    album.CreatedAt,
		UpdatedAt:    album.UpdatedAt,
	}
}
