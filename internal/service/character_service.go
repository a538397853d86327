package service

import (
	"context"
	"errors"
	"fmt"
	"io"
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

// ImageType selects which character image an upload replaces
const (
	ImageTypeProfile = "profile"
	ImageTypeBanner  = "banner"
)

// CharacterService defines the interface for character business logic
type CharacterService interface {
	CreateCharacter(ctx context.Context, userID uuid.UUID, req *dto.CreateCharacterRequest) (*dto.CharacterResponse, error)
	GetCharacter(ctx context.Context, characterID uuid.UUID) (*dto.CharacterResponse, error)
	GetCharacterBySlug(ctx context.Context, slug string) (*dto.CharacterResponse, error)
	GetMyCharacters(ctx context.Context, userID uuid.UUID) ([]*dto.CharacterResponse, error)
	ListCharacters(ctx context.Context, limit, offset int) ([]*dto.CharacterResponse, error)
	UpdateCharacter(ctx context.Context, userID, characterID uuid.UUID, req *dto.UpdateCharacterRequest) (*dto.CharacterResponse, error)
	UploadImage(ctx context.Context, userID, characterID uuid.UUID, imageType string, file io.Reader, fileExt, contentType string) (*dto.UploadImageResponse, error)
	RecordProfileView(ctx context.Context, characterID uuid.UUID) (*dto.ViewCountResponse, error)
	DeleteCharacter(ctx context.Context, userID, characterID uuid.UUID) error
}

// characterServiceImpl is the implementation of CharacterService
type characterServiceImpl struct {
	characterRepo repository.CharacterRepository
	albumRepo     repository.AlbumRepository
	photoRepo     repository.PhotoRepository
	commentRepo   repository.CommentRepository
	playlistRepo  repository.PlaylistRepository
	s3Client      S3Client
	cleaner       *MediaCleaner
	viewCounter   *ViewCounter
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewCharacterService creates a new instance of CharacterService
func NewCharacterService(
	characterRepo repository.CharacterRepository,
	albumRepo repository.AlbumRepository,
	photoRepo repository.PhotoRepository,
	commentRepo repository.CommentRepository,
	playlistRepo repository.PlaylistRepository,
	s3Client S3Client,
	cleaner *MediaCleaner,
	viewCounter *ViewCounter,
	m *metrics.Metrics,
	logger *zap.Logger,
) CharacterService {
	return &characterServiceImpl{
		characterRepo: characterRepo,
		albumRepo:     albumRepo,
		photoRepo:     photoRepo,
		commentRepo:   commentRepo,
		playlistRepo:  playlistRepo,
		s3Client:      s3Client,
		cleaner:       cleaner,
		viewCounter:   viewCounter,
		metrics:       m,
		logger:        logger,
	}
}

// CreateCharacter creates a character profile with its default photo album
func (s *characterServiceImpl) CreateCharacter(ctx context.Context, userID uuid.UUID, req *dto.CreateCharacterRequest) (*dto.CharacterResponse, error) {
	alignment := domain.AlignmentTrueNeutral
	if req.Alignment != "" {
		if !domain.ValidAlignment(req.Alignment) {
			return nil, response.NewAppError(response.ErrCodeValidation,
				fmt.Sprintf("Invalid alignment: %s", req.Alignment), "")
		}
		alignment = domain.Alignment(req.Alignment)
	}

	if req.Level < domain.LevelMin || req.Level > domain.LevelMax {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Level must be between %d and %d", domain.LevelMin, domain.LevelMax), "")
	}

	statsJSON, err := marshalStats(req.Stats)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	character := &domain.Character{
		OwnerID:    userID,
		Name:       req.Name,
		Race:       req.Race,
		Class:      req.Class,
		Level:      req.Level,
		Stats:      statsJSON,
		Background: req.Background,
		Alignment:  alignment,
		Bio:        req.Bio,
		Slug:       slug,
	}

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create character", err.Error())
	}

	// Every character starts with a default album for wall and profile shots
	defaultAlbum := &domain.Album{
		CharacterID: character.ID,
		Title:       fmt.Sprintf("%s's Photos", character.Name),
		Description: "Character photo album",
	}
	if err := s.albumRepo.Create(ctx, defaultAlbum); err != nil {
		s.logger.Error("Failed to create default album",
			zap.String("character_id", character.ID.String()),
			zap.Error(err),
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementCharacterCreated()
	}

	s.logger.Info("Character created",
		zap.String("character_id", character.ID.String()),
		zap.String("slug", character.Slug),
	)

	return toCharacterResponse(character), nil
}

// uniqueSlug generates a slug and retries on the rare suffix collision
func (s *characterServiceImpl) uniqueSlug(ctx context.Context, name string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		slug := generateSlug(name)
		exists, err := s.characterRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", response.NewAppError(response.ErrCodeInternal, "Failed to check slug", err.Error())
		}
		if !exists {
			return slug, nil
		}
	}
	return "", response.NewAppError(response.ErrCodeInternal, "Failed to generate unique slug", "")
}

// GetCharacter returns a character by ID
func (s *characterServiceImpl) GetCharacter(ctx context.Context, characterID uuid.UUID) (*dto.CharacterResponse, error) {
	character, err := s.characterRepo.FindByIDWithFriends(ctx, characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}
	return toCharacterResponse(character), nil
}

// GetCharacterBySlug returns a character by its URL slug
func (s *characterServiceImpl) GetCharacterBySlug(ctx context.Context, slug string) (*dto.CharacterResponse, error) {
	character, err := s.characterRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}
	return toCharacterResponse(character), nil
}

// GetMyCharacters lists the characters owned by the requesting account
func (s *characterServiceImpl) GetMyCharacters(ctx context.Context, userID uuid.UUID) ([]*dto.CharacterResponse, error) {
	characters, err := s.characterRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list characters", err.Error())
	}

	responses := make([]*dto.CharacterResponse, 0, len(characters))
	for _, character := range characters {
		responses = append(responses, toCharacterResponse(character))
	}
	return responses, nil
}

// ListCharacters lists character profiles, newest first
func (s *characterServiceImpl) ListCharacters(ctx context.Context, limit, offset int) ([]*dto.CharacterResponse, error) {
	characters, err := s.characterRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list characters", err.Error())
	}

	responses := make([]*dto.CharacterResponse, 0, len(characters))
	for _, character := range characters {
		responses = append(responses, toCharacterResponse(character))
	}
	return responses, nil
}

// UpdateCharacter applies a partial update to an owned character.
// The slug is never touched, whatever else changes.
func (s *characterServiceImpl) UpdateCharacter(ctx context.Context, userID, characterID uuid.UUID, req *dto.UpdateCharacterRequest) (*dto.CharacterResponse, error) {
	character, err := ownedCharacter(ctx, s.characterRepo, userID, characterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		character.Name = *req.Name
	}
	if req.Race != nil {
		character.Race = *req.Race
	}
	if req.Class != nil {
		character.Class = *req.Class
	}
	if req.Level != nil {
		if *req.Level < domain.LevelMin || *req.Level > domain.LevelMax {
			return nil, response.NewAppError(response.ErrCodeValidation,
				fmt.Sprintf("Level must be between %d and %d", domain.LevelMin, domain.LevelMax), "")
		}
		character.Level = *req.Level
	}
	if req.Stats != nil {
		statsJSON, err := marshalStats(*req.Stats)
		if err != nil {
			return nil, err
		}
		character.Stats = statsJSON
	}
	if req.Background != nil {
		character.Background = *req.Background
	}
	if req.Alignment != nil {
		if !domain.ValidAlignment(*req.Alignment) {
			return nil, response.NewAppError(response.ErrCodeValidation,
				fmt.Sprintf("Invalid alignment: %s", *req.Alignment), "")
		}
		character.Alignment = domain.Alignment(*req.Alignment)
	}
	if req.Bio != nil {
		if len(*req.Bio) > domain.BioMaxLen {
			return nil, response.NewAppError(response.ErrCodeValidation,
				fmt.Sprintf("Bio cannot exceed %d characters", domain.BioMaxLen), "")
		}
		character.Bio = *req.Bio
	}

	if err := s.characterRepo.Update(ctx, character); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update character", err.Error())
	}

	if req.TopFriends != nil {
		friends, err := s.resolveTopFriends(ctx, characterID, req.TopFriends)
		if err != nil {
			return nil, err
		}
		if err := s.characterRepo.ReplaceTopFriends(ctx, character, friends); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update top friends", err.Error())
		}
	}

	updated, err := s.characterRepo.FindByIDWithFriends(ctx, characterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reload character", err.Error())
	}
	return toCharacterResponse(updated), nil
}

// resolveTopFriends validates and loads the requested top friends list
func (s *characterServiceImpl) resolveTopFriends(ctx context.Context, characterID uuid.UUID, friendIDs []uuid.UUID) ([]*domain.Character, error) {
	unique := removeDuplicateUUIDs(friendIDs)

	filtered := make([]uuid.UUID, 0, len(unique))
	for _, id := range unique {
		if id != characterID {
			filtered = append(filtered, id)
		}
	}

	if len(filtered) > domain.TopFriendsMax {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Top friends list cannot exceed %d characters", domain.TopFriendsMax), "")
	}

	friends, err := s.characterRepo.FindByIDs(ctx, filtered)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load top friends", err.Error())
	}
	if len(friends) != len(filtered) {
		return nil, response.NewAppError(response.ErrCodeValidation, "One or more top friends do not exist", "")
	}
	return friends, nil
}

// UploadImage replaces the character's profile or banner image
func (s *characterServiceImpl) UploadImage(ctx context.Context, userID, characterID uuid.UUID, imageType string, file io.Reader, fileExt, contentType string) (*dto.UploadImageResponse, error) {
	if imageType != ImageTypeProfile && imageType != ImageTypeBanner {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Invalid image type: %s (must be 'profile' or 'banner')", imageType), "")
	}

	character, err := ownedCharacter(ctx, s.characterRepo, userID, characterID)
	if err != nil {
		return nil, err
	}

	key, err := s.s3Client.GenerateFileKey(client.FolderCharacters, characterID.String(), fileExt)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Failed to generate file key", err.Error())
	}

	start := time.Now()
	url, err := s.s3Client.UploadFile(ctx, key, file, contentType)
	if s.metrics != nil {
		s.metrics.RecordStorageOperation("upload", time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload image", err.Error())
	}

	var oldKey string
	switch imageType {
	case ImageTypeProfile:
		oldKey = character.ProfileImageKey
		character.ProfileImageURL = url
		character.ProfileImageKey = key
	case ImageTypeBanner:
		oldKey = character.BannerImageKey
		character.BannerImageURL = url
		character.BannerImageKey = key
	}

	if err := s.characterRepo.Update(ctx, character); err != nil {
		// Roll back the freshly stored object rather than leaking it
		s.cleaner.DeleteKeys(ctx, []string{key})
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save image reference", err.Error())
	}

	if oldKey != "" {
		s.cleaner.DeleteKeys(ctx, []string{oldKey})
	}

	return &dto.UploadImageResponse{
		ImageType: imageType,
		ImageURL:  url,
	}, nil
}

// RecordProfileView counts one view of the profile and returns the total
func (s *characterServiceImpl) RecordProfileView(ctx context.Context, characterID uuid.UUID) (*dto.ViewCountResponse, error) {
	character, err := s.characterRepo.FindByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}

	views, err := s.viewCounter.Record(ctx, characterID, character.ProfileViews)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record view", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProfileViews(1)
	}

	return &dto.ViewCountResponse{Views: views}, nil
}

// DeleteCharacter removes a character and everything hanging off it: albums,
// photos, likes, tags, comments on both sides, the playlist, and the
// character's top friend links. Stored media is deleted after the commit.
func (s *characterServiceImpl) DeleteCharacter(ctx context.Context, userID, characterID uuid.UUID) error {
	character, err := ownedCharacter(ctx, s.characterRepo, userID, characterID)
	if err != nil {
		return err
	}

	storageKeys := []string{character.ProfileImageKey, character.BannerImageKey}

	photos, err := s.photoRepo.FindByCharacterID(ctx, characterID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load photos", err.Error())
	}
	photoIDs := make([]uuid.UUID, 0, len(photos))
	for _, photo := range photos {
		photoIDs = append(photoIDs, photo.ID)
		storageKeys = append(storageKeys, photo.StorageKey)
	}

	wallComments, err := s.commentRepo.FindByCharacterID(ctx, characterID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}
	authoredComments, err := s.commentRepo.FindByAuthorID(ctx, characterID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}
	for _, comment := range append(wallComments, authoredComments...) {
		if comment.PhotoKey != "" {
			storageKeys = append(storageKeys, comment.PhotoKey)
		}
	}

	playlist, err := s.playlistRepo.FindByCharacterID(ctx, characterID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load playlist", err.Error())
	}

	err = s.characterRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.photoRepo.DeleteLikesByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteLikesByCharacterID(ctx, tx, characterID); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteTagsByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteTagsByCharacterID(ctx, tx, characterID); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteCommentsByPhotoIDs(ctx, tx, photoIDs); err != nil {
			return err
		}
		if err := s.photoRepo.DeleteCommentsByAuthorID(ctx, tx, characterID); err != nil {
			return err
		}
		for _, photo := range photos {
			if err := s.photoRepo.Delete(ctx, tx, photo.ID); err != nil {
				return err
			}
		}
		if err := s.albumRepo.DeleteByCharacterID(ctx, tx, characterID); err != nil {
			return err
		}
		if err := s.commentRepo.DeleteByCharacterID(ctx, tx, characterID); err != nil {
			return err
		}
		if err := s.commentRepo.DeleteByAuthorID(ctx, tx, characterID); err != nil {
			return err
		}
		if playlist != nil {
			if err := s.playlistRepo.DeleteSongsByPlaylistID(ctx, tx, playlist.ID); err != nil {
				return err
			}
		}
		if err := s.playlistRepo.DeleteByCharacterID(ctx, tx, characterID); err != nil {
			return err
		}
		if err := s.characterRepo.DeleteTopFriendRefs(ctx, tx, characterID); err != nil {
			return err
		}
		return s.characterRepo.Delete(ctx, tx, characterID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete character", err.Error())
	}

	// Remote objects go last; a failure here must not resurrect the rows
	s.cleaner.DeleteKeys(ctx, storageKeys)

	s.logger.Info("Character deleted",
		zap.String("character_id", characterID.String()),
		zap.Int("photos", len(photos)),
	)

	return nil
}
