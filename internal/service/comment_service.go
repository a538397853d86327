package service

import (
	"context"
	"errors"
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

// CommentPhoto is an optional image attached to a wall comment
type CommentPhoto struct {
	File        io.Reader
	FileExt     string
	ContentType string
}

// CommentService defines the interface for wall comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest, photo *CommentPhoto) (*dto.CommentResponse, error)
	GetWallComments(ctx context.Context, characterID uuid.UUID) ([]*dto.WallCommentResponse, error)
	GetReplies(ctx context.Context, commentID uuid.UUID) ([]dto.CommentResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo   repository.CommentRepository
	characterRepo repository.CharacterRepository
	s3Client      S3Client
	cleaner       *MediaCleaner
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	characterRepo repository.CharacterRepository,
	s3Client S3Client,
	cleaner *MediaCleaner,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:   commentRepo,
		characterRepo: characterRepo,
		s3Client:      s3Client,
		cleaner:       cleaner,
		metrics:       m,
		logger:        logger,
	}
}

// CreateComment posts a comment or a reply on a character's wall
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest, photo *CommentPhoto) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" && photo == nil {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"Comment must have text content, a photo, or both", "")
	}

	// The author identity is a character, and acting as one requires owning it
	author, err := ownedCharacter(ctx, s.characterRepo, userID, req.AuthorCharacterID)
	if err != nil {
		return nil, err
	}

	if _, err := s.characterRepo.FindByID(ctx, req.CharacterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load parent comment", err.Error())
		}
		if parent.IsReply() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Replies cannot be nested", "")
		}
		if parent.CharacterID != req.CharacterID {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Parent comment belongs to a different wall", "")
		}
	}

	comment := &domain.Comment{
		CharacterID:     req.CharacterID,
		AuthorID:        req.AuthorCharacterID,
		Content:         content,
		ParentCommentID: req.ParentCommentID,
	}

	if photo != nil {
		key, err := s.s3Client.GenerateFileKey(client.FolderComments, req.CharacterID.String(), photo.FileExt)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Failed to generate file key", err.Error())
		}

		start := time.Now()
		url, err := s.s3Client.UploadFile(ctx, key, photo.File, photo.ContentType)
		if s.metrics != nil {
			s.metrics.RecordStorageOperation("upload", time.Since(start), err)
		}
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload comment photo", err.Error())
		}
		comment.PhotoURL = url
		comment.PhotoKey = key
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if comment.PhotoKey != "" {
			s.cleaner.DeleteKeys(ctx, []string{comment.PhotoKey})
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	comment.Author = *author
	return toCommentResponse(comment), nil
}

// GetWallComments returns a character's wall: top-level comments newest
// first, each with its replies oldest first
func (s *commentServiceImpl) GetWallComments(ctx context.Context, characterID uuid.UUID) ([]*dto.WallCommentResponse, error) {
	if _, err := s.characterRepo.FindByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}

	topLevel, err := s.commentRepo.FindTopLevelByCharacter(ctx, characterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	parentIDs := make([]uuid.UUID, 0, len(topLevel))
	for _, comment := range topLevel {
		parentIDs = append(parentIDs, comment.ID)
	}

	replies, err := s.commentRepo.FindRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load replies", err.Error())
	}

	repliesByParent := make(map[uuid.UUID][]dto.CommentResponse, len(topLevel))
	for _, reply := range replies {
		parentID := *reply.ParentCommentID
		repliesByParent[parentID] = append(repliesByParent[parentID], *toCommentResponse(reply))
	}

	wall := make([]*dto.WallCommentResponse, 0, len(topLevel))
	for _, comment := range topLevel {
		entry := &dto.WallCommentResponse{
			CommentResponse: *toCommentResponse(comment),
			Replies:         repliesByParent[comment.ID],
		}
		if entry.Replies == nil {
			entry.Replies = []dto.CommentResponse{}
		}
		wall = append(wall, entry)
	}

	return wall, nil
}

// GetReplies returns the replies of a top-level comment, oldest first
func (s *commentServiceImpl) GetReplies(ctx context.Context, commentID uuid.UUID) ([]dto.CommentResponse, error) {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	replies, err := s.commentRepo.FindRepliesByParentID(ctx, commentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load replies", err.Error())
	}

	responses := make([]dto.CommentResponse, 0, len(replies))
	for _, reply := range replies {
		responses = append(responses, *toCommentResponse(reply))
	}
	return responses, nil
}

// UpdateComment edits a comment's text. Only the author may edit, and the
// edit is flagged on the comment.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	if !characterOwnedBy(ctx, s.characterRepo, userID, comment.AuthorID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the author can edit a comment", "")
	}

	comment.Content = strings.TrimSpace(req.Content)
	comment.IsEdited = true

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	return toCommentResponse(comment), nil
}

// DeleteComment removes a comment. Allowed for whoever owns the author
// character or the wall it was posted on. Deleting a top-level comment also
// removes its replies.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	authorOwned := characterOwnedBy(ctx, s.characterRepo, userID, comment.AuthorID)
	wallOwned := characterOwnedBy(ctx, s.characterRepo, userID, comment.CharacterID)
	if !authorOwned && !wallOwned {
		return response.NewAppError(response.ErrCodeForbidden,
			"Only the author or the wall owner can delete a comment", "")
	}

	storageKeys := []string{comment.PhotoKey}

	if !comment.IsReply() {
		replies, err := s.commentRepo.FindRepliesByParentID(ctx, commentID)
		if err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to load replies", err.Error())
		}
		for _, reply := range replies {
			if reply.PhotoKey != "" {
				storageKeys = append(storageKeys, reply.PhotoKey)
			}
		}
	}

	err = s.commentRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if !comment.IsReply() {
			if err := s.commentRepo.DeleteByParentID(ctx, tx, commentID); err != nil {
				return err
			}
		}
		return s.commentRepo.Delete(ctx, tx, commentID)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.cleaner.DeleteKeys(ctx, storageKeys)
	return nil
}

// toCommentResponse converts a comment to its response form
func toCommentResponse(comment *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		CommentID:       comment.ID,
		CharacterID:     comment.CharacterID,
		Author:          toCharacterPreview(&comment.Author),
		Content:         comment.Content,
		PhotoURL:        comment.PhotoURL,
		ParentCommentID: comment.ParentCommentID,
		IsEdited:        comment.IsEdited,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}
}
