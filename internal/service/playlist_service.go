package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/repository"
	"campaign-space-api/internal/response"
)

// PlaylistService defines the interface for playlist business logic
type PlaylistService interface {
	UpsertPlaylist(ctx context.Context, userID uuid.UUID, req *dto.UpsertPlaylistRequest) (*dto.PlaylistResponse, error)
	GetPlaylistByCharacter(ctx context.Context, characterID uuid.UUID) (*dto.PlaylistResponse, error)
	DeletePlaylist(ctx context.Context, userID, characterID uuid.UUID) error
	AddSong(ctx context.Context, userID, playlistID uuid.UUID, req *dto.AddSongRequest) (*dto.SongResponse, error)
	UpdateSong(ctx context.Context, userID, songID uuid.UUID, req *dto.UpdateSongRequest) (*dto.SongResponse, error)
	DeleteSong(ctx context.Context, userID, songID uuid.UUID) error
	ReorderSongs(ctx context.Context, userID, playlistID uuid.UUID, req *dto.ReorderSongsRequest) (*dto.PlaylistResponse, error)
}

// playlistServiceImpl is the implementation of PlaylistService
type playlistServiceImpl struct {
	playlistRepo  repository.PlaylistRepository
	characterRepo repository.CharacterRepository
	logger        *zap.Logger
}

// NewPlaylistService creates a new instance of PlaylistService
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	characterRepo repository.CharacterRepository,
	logger *zap.Logger,
) PlaylistService {
	return &playlistServiceImpl{
		playlistRepo:  playlistRepo,
		characterRepo: characterRepo,
		logger:        logger,
	}
}

// UpsertPlaylist creates the character's playlist or updates the existing
// one. A character has exactly one playlist.
func (s *playlistServiceImpl) UpsertPlaylist(ctx context.Context, userID uuid.UUID, req *dto.UpsertPlaylistRequest) (*dto.PlaylistResponse, error) {
	character, err := ownedCharacter(ctx, s.characterRepo, userID, req.CharacterID)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.FindByCharacterID(ctx, req.CharacterID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load playlist", err.Error())
		}
		playlist = &domain.Playlist{
			CharacterID: req.CharacterID,
			Title:       fmt.Sprintf("%s's Playlist", character.Name),
			IsPublic:    true,
		}
		applyPlaylistFields(playlist, req)
		if err := s.playlistRepo.Create(ctx, playlist); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create playlist", err.Error())
		}
		return toPlaylistResponse(playlist), nil
	}

	applyPlaylistFields(playlist, req)
	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update playlist", err.Error())
	}
	return toPlaylistResponse(playlist), nil
}

// GetPlaylistByCharacter returns a character's playlist with songs in
// position order
func (s *playlistServiceImpl) GetPlaylistByCharacter(ctx context.Context, characterID uuid.UUID) (*dto.PlaylistResponse, error) {
	if _, err := s.characterRepo.FindByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}

	playlist, err := s.playlistRepo.FindByCharacterID(ctx, characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Playlist not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load playlist", err.Error())
	}
	return toPlaylistResponse(playlist), nil
}

// DeletePlaylist removes a character's playlist and all of its songs
func (s *playlistServiceImpl) DeletePlaylist(ctx context.Context, userID, characterID uuid.UUID) error {
	if _, err := ownedCharacter(ctx, s.characterRepo, userID, characterID); err != nil {
		return err
	}

	playlist, err := s.playlistRepo.FindByCharacterID(ctx, characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Playlist not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load playlist", err.Error())
	}

	err = s.playlistRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.playlistRepo.DeleteSongsByPlaylistID(ctx, tx, playlist.ID); err != nil {
			return err
		}
		return s.playlistRepo.DeleteByCharacterID(ctx, tx, characterID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete playlist", err.Error())
	}
	return nil
}

// AddSong normalizes the supplied link to an embed URL and appends the
// song at the end of the playlist
func (s *playlistServiceImpl) AddSong(ctx context.Context, userID, playlistID uuid.UUID, req *dto.AddSongRequest) (*dto.SongResponse, error) {
	playlist, err := s.ownedPlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	platform := domain.Platform(req.Platform)
	if !domain.ValidPlatform(req.Platform) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unsupported platform", req.Platform)
	}

	embedURL, err := NormalizeEmbedURL(platform, req.URL)
	if err != nil {
		return nil, err
	}

	maxPos, err := s.playlistRepo.MaxPosition(ctx, playlist.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to determine song position", err.Error())
	}

	song := &domain.Song{
		PlaylistID: playlist.ID,
		Platform:   platform,
		EmbedURL:   embedURL,
		Title:      req.Title,
		Artist:     req.Artist,
		Position:   maxPos + 1,
	}
	if err := s.playlistRepo.CreateSong(ctx, song); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add song", err.Error())
	}

	return toSongResponse(song), nil
}

// UpdateSong edits a song's title or artist. The embed URL is immutable;
// replacing a track means removing it and adding a new one.
func (s *playlistServiceImpl) UpdateSong(ctx context.Context, userID, songID uuid.UUID, req *dto.UpdateSongRequest) (*dto.SongResponse, error) {
	song, _, err := s.ownedSong(ctx, userID, songID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		song.Title = *req.Title
	}
	if req.Artist != nil {
		song.Artist = *req.Artist
	}

	if err := s.playlistRepo.UpdateSong(ctx, song); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update song", err.Error())
	}
	return toSongResponse(song), nil
}

// DeleteSong removes a song from its playlist
func (s *playlistServiceImpl) DeleteSong(ctx context.Context, userID, songID uuid.UUID) error {
	song, _, err := s.ownedSong(ctx, userID, songID)
	if err != nil {
		return err
	}

	if err := s.playlistRepo.DeleteSong(ctx, song.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete song", err.Error())
	}
	return nil
}

// ReorderSongs rewrites song positions from the position of each song ID
// in the request. Every song in the playlist must appear exactly once.
func (s *playlistServiceImpl) ReorderSongs(ctx context.Context, userID, playlistID uuid.UUID, req *dto.ReorderSongsRequest) (*dto.PlaylistResponse, error) {
	playlist, err := s.ownedPlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	inPlaylist := make(map[uuid.UUID]bool, len(playlist.Songs))
	for _, song := range playlist.Songs {
		inPlaylist[song.ID] = true
	}
	if len(req.SongIDs) != len(playlist.Songs) {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"Song list must contain every song in the playlist exactly once", "")
	}
	seen := make(map[uuid.UUID]bool, len(req.SongIDs))
	for _, id := range req.SongIDs {
		if !inPlaylist[id] {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Song does not belong to the playlist", id.String())
		}
		if seen[id] {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Duplicate song in reorder list", id.String())
		}
		seen[id] = true
	}

	err = s.playlistRepo.Transaction(ctx, func(tx *gorm.DB) error {
		for i, id := range req.SongIDs {
			if err := s.playlistRepo.SetSongPosition(ctx, tx, id, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reorder songs", err.Error())
	}

	reloaded, err := s.playlistRepo.FindByID(ctx, playlist.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load playlist", err.Error())
	}
	return toPlaylistResponse(reloaded), nil
}

// ownedPlaylist loads a playlist and verifies the requester owns its
// character
func (s *playlistServiceImpl) ownedPlaylist(ctx context.Context, userID, playlistID uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Playlist not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load playlist", err.Error())
	}
	if _, err := ownedCharacter(ctx, s.characterRepo, userID, playlist.CharacterID); err != nil {
		return nil, err
	}
	return playlist, nil
}

// ownedSong loads a song and its playlist, verifying ownership
func (s *playlistServiceImpl) ownedSong(ctx context.Context, userID, songID uuid.UUID) (*domain.Song, *domain.Playlist, error) {
	song, err := s.playlistRepo.FindSongByID(ctx, songID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "Song not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to load song", err.Error())
	}
	playlist, err := s.ownedPlaylist(ctx, userID, song.PlaylistID)
	if err != nil {
		return nil, nil, err
	}
	return song, playlist, nil
}

// applyPlaylistFields copies the optional request fields onto the playlist
func applyPlaylistFields(playlist *domain.Playlist, req *dto.UpsertPlaylistRequest) {
	if req.Title != "" {
		playlist.Title = req.Title
	}
	if req.Description != nil {
		playlist.Description = *req.Description
	}
	if req.AutoPlay != nil {
		playlist.AutoPlay = *req.AutoPlay
	}
	if req.IsPublic != nil {
		playlist.IsPublic = *req.IsPublic
	}
}

// toSongResponse converts a song to its response form
func toSongResponse(song *domain.Song) *dto.SongResponse {
	return &dto.SongResponse{
		SongID:   song.ID,
		Platform: string(song.Platform),
		EmbedURL: song.EmbedURL,
		Title:    song.Title,
		Artist:   song.Artist,
		Position: song.Position,
	}
}

// toPlaylistResponse converts a playlist to its response form
func toPlaylistResponse(playlist *domain.Playlist) *dto.PlaylistResponse {
	songs := make([]dto.SongResponse, 0, len(playlist.Songs))
	for i := range playlist.Songs {
		songs = append(songs, *toSongResponse(&playlist.Songs[i]))
	}
	return &dto.PlaylistResponse{
		PlaylistID:  playlist.ID,
		CharacterID: playlist.CharacterID,
		Title:       playlist.Title,
		Description: playlist.Description,
		AutoPlay:    playlist.AutoPlay,
		IsPublic:    playlist.IsPublic,
		Songs:       songs,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}
