package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/response"
)

const testMaxPhotosPerUpload = 20

type photoServiceMocks struct {
	photoRepo     *MockPhotoRepository
	albumRepo     *MockAlbumRepository
	characterRepo *MockCharacterRepository
	s3            *client.MockS3Client
}

func newPhotoService(m *photoServiceMocks) PhotoService {
	logger, _ := zap.NewDevelopment()
	cleaner := newTestCleaner(m.s3, &MockOrphanedMediaRepository{})
	return NewPhotoService(m.photoRepo, m.albumRepo, m.characterRepo,
		m.s3, cleaner, testMaxPhotosPerUpload, nil, logger)
}

func uploadOf(caption string) PhotoUpload {
	return PhotoUpload{
		File:        strings.NewReader("img"),
		FileExt:     ".png",
		ContentType: "image/png",
		Caption:     caption,
	}
}

func TestPhotoService_UploadPhotos(t *testing.T) {
	userID := uuid.New()
	characterID := uuid.New()
	albumID := uuid.New()

	overLimit := make([]PhotoUpload, testMaxPhotosPerUpload+1)
	for i := range overLimit {
		overLimit[i] = uploadOf("")
	}

	tests := []struct {
		name        string
		uploads     []PhotoUpload
		coverSet    bool
		maxOrder    int
		wantErr     bool
		wantErrCode string
	}{
		{
			name:    "first upload sets the cover and starts ordering at 1",
			uploads: []PhotoUpload{uploadOf("one"), uploadOf("two")},
		},
		{
			name:     "later upload continues the display order",
			uploads:  []PhotoUpload{uploadOf("three")},
			coverSet: true,
			maxOrder: 5,
		},
		{
			name:        "empty upload is rejected",
			uploads:     nil,
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "too many files in one request",
			uploads:     overLimit,
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "caption above maximum length",
			uploads:     []PhotoUpload{uploadOf(strings.Repeat("a", domain.PhotoCaptionMaxLen+1))},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var batch []*domain.Photo
			var coverAssigned *uuid.UUID
			coverCalled := false
			countDelta := 0

			album := &domain.Album{
				BaseModel:   domain.BaseModel{ID: albumID},
				CharacterID: characterID,
			}
			if tt.coverSet {
				existing := uuid.New()
				album.CoverPhotoID = &existing
			}

			mocks := &photoServiceMocks{
				photoRepo: &MockPhotoRepository{
					MaxDisplayOrderFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int, error) {
						return tt.maxOrder, nil
					},
					CreateBatchFunc: func(ctx context.Context, tx *gorm.DB, photos []*domain.Photo) error {
						for _, photo := range photos {
							photo.ID = uuid.New()
						}
						batch = photos
						return nil
					},
				},
				albumRepo: &MockAlbumRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
						return album, nil
					},
					AddPhotoCountFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int) error {
						countDelta = delta
						return nil
					},
					SetCoverPhotoFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID, coverPhotoID *uuid.UUID) error {
						coverCalled = true
						coverAssigned = coverPhotoID
						return nil
					},
				},
				characterRepo: &MockCharacterRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
						return ownedCharacterOf(userID, id), nil
					},
				},
				s3: client.NewMockS3Client(),
			}
			service := newPhotoService(mocks)

			got, err := service.UploadPhotos(context.Background(), userID, albumID, tt.uploads)

			if tt.wantErr {
				if err == nil {
					t.Fatal("UploadPhotos() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok && appErr.Code != tt.wantErrCode {
					t.Errorf("UploadPhotos() error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				if batch != nil {
					t.Error("UploadPhotos() persisted photos despite the validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("UploadPhotos() unexpected error = %v", err)
			}
			if len(got) != len(tt.uploads) {
				t.Fatalf("UploadPhotos() returned %d photos, want %d", len(got), len(tt.uploads))
			}
			for i, photo := range batch {
				want := tt.maxOrder + i + 1
				if photo.DisplayOrder != want {
					t.Errorf("UploadPhotos() photo %d display order = %d, want %d", i, photo.DisplayOrder, want)
				}
			}
			if countDelta != len(tt.uploads) {
				t.Errorf("UploadPhotos() photo count delta = %d, want %d", countDelta, len(tt.uploads))
			}
			if tt.coverSet {
				if coverCalled {
					t.Error("UploadPhotos() reassigned an already set cover")
				}
			} else {
				if coverAssigned == nil || *coverAssigned != batch[0].ID {
					t.Error("UploadPhotos() did not make the first photo the album cover")
				}
			}
		})
	}
}

func TestPhotoService_UploadPhotos_CleansUpOnSaveFailure(t *testing.T) {
	userID := uuid.New()
	albumID := uuid.New()

	mocks := &photoServiceMocks{
		photoRepo: &MockPhotoRepository{
			CreateBatchFunc: func(ctx context.Context, tx *gorm.DB, photos []*domain.Photo) error {
				return errors.New("database error")
			},
		},
		albumRepo: &MockAlbumRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
				return &domain.Album{BaseModel: domain.BaseModel{ID: albumID}, CharacterID: uuid.New()}, nil
			},
		},
		characterRepo: &MockCharacterRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
				return ownedCharacterOf(userID, id), nil
			},
		},
		s3: client.NewMockS3Client(),
	}
	service := newPhotoService(mocks)

	_, err := service.UploadPhotos(context.Background(), userID, albumID,
		[]PhotoUpload{uploadOf("one"), uploadOf("two")})
	if err == nil {
		t.Fatal("UploadPhotos() error = nil, want error")
	}
	if len(mocks.s3.DeletedKeys) != 2 {
		t.Errorf("UploadPhotos() cleaned up %d stored objects, want 2", len(mocks.s3.DeletedKeys))
	}
}

func TestPhotoService_UploadPhotos_UnknownTagTarget(t *testing.T) {
	userID := uuid.New()
	albumID := uuid.New()

	mocks := &photoServiceMocks{
		photoRepo: &MockPhotoRepository{},
		albumRepo: &MockAlbumRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
				return &domain.Album{BaseModel: domain.BaseModel{ID: albumID}, CharacterID: uuid.New()}, nil
			},
		},
		characterRepo: &MockCharacterRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
				return ownedCharacterOf(userID, id), nil
			},
			FindByIDsFunc: func(ctx context.Context, ids []uuid.UUID) ([]*domain.Character, error) {
				return nil, nil
			},
		},
		s3: client.NewMockS3Client(),
	}
	service := newPhotoService(mocks)

	upload := uploadOf("tagged")
	upload.Tags = []uuid.UUID{uuid.New()}
	_, err := service.UploadPhotos(context.Background(), userID, albumID, []PhotoUpload{upload})
	if err == nil {
		t.Fatal("UploadPhotos() error = nil, want error")
	}
	appErr, ok := err.(*response.AppError)
	if !ok || appErr.Code != response.ErrCodeValidation {
		t.Errorf("UploadPhotos() error = %v, want code %v", err, response.ErrCodeValidation)
	}
	if len(mocks.s3.UploadedKeys) != 0 {
		t.Error("UploadPhotos() stored objects before the tag validation ran")
	}
}

func TestPhotoService_ToggleLike(t *testing.T) {
	userID := uuid.New()
	characterID := uuid.New()
	photoID := uuid.New()

	tests := []struct {
		name          string
		alreadyLiked  bool
		wantLiked     bool
		wantLikeDelta int
	}{
		{name: "first toggle likes the photo", wantLiked: true, wantLikeDelta: 1},
		{name: "second toggle removes the like", alreadyLiked: true, wantLiked: false, wantLikeDelta: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			likeCount := 3
			mocks := &photoServiceMocks{
				photoRepo: &MockPhotoRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
						return &domain.Photo{
							BaseModel:   domain.BaseModel{ID: photoID},
							CharacterID: uuid.New(),
							LikeCount:   likeCount,
						}, nil
					},
					FindLikeFunc: func(ctx context.Context, tx *gorm.DB, pID, cID uuid.UUID) (*domain.PhotoLike, error) {
						if tt.alreadyLiked {
							return &domain.PhotoLike{PhotoID: pID, CharacterID: cID}, nil
						}
						return nil, gorm.ErrRecordNotFound
					},
					AddLikeCountFunc: func(ctx context.Context, tx *gorm.DB, pID uuid.UUID, delta int) error {
						likeCount += delta
						if delta != tt.wantLikeDelta {
							t.Errorf("ToggleLike() like delta = %d, want %d", delta, tt.wantLikeDelta)
						}
						return nil
					},
				},
				albumRepo: &MockAlbumRepository{},
				characterRepo: &MockCharacterRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
						return ownedCharacterOf(userID, characterID), nil
					},
				},
				s3: client.NewMockS3Client(),
			}
			service := newPhotoService(mocks)

			got, err := service.ToggleLike(context.Background(), userID, photoID, characterID)
			if err != nil {
				t.Fatalf("ToggleLike() unexpected error = %v", err)
			}
			if got.Liked != tt.wantLiked {
				t.Errorf("ToggleLike() liked = %v, want %v", got.Liked, tt.wantLiked)
			}
			if got.LikeCount != likeCount {
				t.Errorf("ToggleLike() like count = %d, want %d", got.LikeCount, likeCount)
			}
		})
	}
}

func TestPhotoService_ReorderPhotos(t *testing.T) {
	userID := uuid.New()
	characterID := uuid.New()
	albumID := uuid.New()
	photoA := uuid.New()
	photoB := uuid.New()
	foreign := uuid.New()

	tests := []struct {
		name        string
		photoIDs    []uuid.UUID
		wantErr     bool
		wantErrCode string
		wantOrder   map[uuid.UUID]int
	}{
		{
			name:      "full permutation is applied",
			photoIDs:  []uuid.UUID{photoB, photoA},
			wantOrder: map[uuid.UUID]int{photoB: 1, photoA: 2},
		},
		{
			name:        "missing photo is rejected",
			photoIDs:    []uuid.UUID{photoA},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "photo from another album is rejected",
			photoIDs:    []uuid.UUID{photoA, foreign},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "duplicate photo is rejected",
			photoIDs:    []uuid.UUID{photoA, photoA},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied := make(map[uuid.UUID]int)
			mocks := &photoServiceMocks{
				photoRepo: &MockPhotoRepository{
					FindByAlbumIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
						return []*domain.Photo{
							{BaseModel: domain.BaseModel{ID: photoA}, AlbumID: albumID, DisplayOrder: 1},
							{BaseModel: domain.BaseModel{ID: photoB}, AlbumID: albumID, DisplayOrder: 2},
						}, nil
					},
					SetDisplayOrderFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID, order int) error {
						applied[id] = order
						return nil
					},
				},
				albumRepo: &MockAlbumRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
						return &domain.Album{BaseModel: domain.BaseModel{ID: albumID}, CharacterID: characterID}, nil
					},
				},
				characterRepo: &MockCharacterRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
						return ownedCharacterOf(userID, characterID), nil
					},
				},
				s3: client.NewMockS3Client(),
			}
			service := newPhotoService(mocks)

			err := service.ReorderPhotos(context.Background(), userID, &dto.ReorderPhotosRequest{
				AlbumID:  albumID,
				PhotoIDs: tt.photoIDs,
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("ReorderPhotos() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok && appErr.Code != tt.wantErrCode {
					t.Errorf("ReorderPhotos() error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				if len(applied) != 0 {
					t.Error("ReorderPhotos() applied updates despite the validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReorderPhotos() unexpected error = %v", err)
			}
			for id, want := range tt.wantOrder {
				if applied[id] != want {
					t.Errorf("ReorderPhotos() photo %v order = %d, want %d", id, applied[id], want)
				}
			}
		})
	}
}

func TestPhotoService_DeletePhoto_CoverReassignment(t *testing.T) {
	userID := uuid.New()
	characterID := uuid.New()
	albumID := uuid.New()
	photoID := uuid.New()
	nextPhotoID := uuid.New()

	tests := []struct {
		name         string
		wasCover     bool
		photosRemain bool
		wantCover    *uuid.UUID
		wantCoverSet bool
	}{
		{name: "cover moves to the lowest display order", wasCover: true, photosRemain: true, wantCover: &nextPhotoID, wantCoverSet: true},
		{name: "cover cleared when the album empties", wasCover: true, wantCover: nil, wantCoverSet: true},
		{name: "non-cover photo leaves the cover alone", wantCoverSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coverSet := false
			var coverValue *uuid.UUID
			countDelta := 0

			album := &domain.Album{BaseModel: domain.BaseModel{ID: albumID}, CharacterID: characterID}
			if tt.wasCover {
				album.CoverPhotoID = &photoID
			} else {
				other := uuid.New()
				album.CoverPhotoID = &other
			}

			mocks := &photoServiceMocks{
				photoRepo: &MockPhotoRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
						return &domain.Photo{
							BaseModel:   domain.BaseModel{ID: photoID},
							AlbumID:     albumID,
							CharacterID: characterID,
							StorageKey:  "campaign/photos/doomed.png",
						}, nil
					},
					FirstByDisplayOrderFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Photo, error) {
						if tt.photosRemain {
							return &domain.Photo{BaseModel: domain.BaseModel{ID: nextPhotoID}, DisplayOrder: 1}, nil
						}
						return nil, gorm.ErrRecordNotFound
					},
				},
				albumRepo: &MockAlbumRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
						return album, nil
					},
					AddPhotoCountFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int) error {
						countDelta = delta
						return nil
					},
					SetCoverPhotoFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID, coverPhotoID *uuid.UUID) error {
						coverSet = true
						coverValue = coverPhotoID
						return nil
					},
				},
				characterRepo: &MockCharacterRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
						return ownedCharacterOf(userID, characterID), nil
					},
				},
				s3: client.NewMockS3Client(),
			}
			service := newPhotoService(mocks)

			if err := service.DeletePhoto(context.Background(), userID, photoID); err != nil {
				t.Fatalf("DeletePhoto() unexpected error = %v", err)
			}
			if countDelta != -1 {
				t.Errorf("DeletePhoto() photo count delta = %d, want -1", countDelta)
			}
			if coverSet != tt.wantCoverSet {
				t.Errorf("DeletePhoto() cover reassigned = %v, want %v", coverSet, tt.wantCoverSet)
			}
			if tt.wantCoverSet {
				switch {
				case tt.wantCover == nil:
					if coverValue != nil {
						t.Errorf("DeletePhoto() cover = %v, want nil", coverValue)
					}
				case coverValue == nil || *coverValue != *tt.wantCover:
					t.Errorf("DeletePhoto() cover = %v, want %v", coverValue, tt.wantCover)
				}
			}
			if len(mocks.s3.DeletedKeys) != 1 {
				t.Errorf("DeletePhoto() removed %d stored objects, want 1", len(mocks.s3.DeletedKeys))
			}
		})
	}
}

func TestPhotoService_DeleteComment_Authorization(t *testing.T) {
	userID := uuid.New()
	authorCharacterID := uuid.New()
	photoOwnerID := uuid.New()
	commentID := uuid.New()
	photoID := uuid.New()

	tests := []struct {
		name       string
		ownsAuthor bool
		ownsPhoto  bool
		wantErr    bool
	}{
		{name: "comment author owner can delete", ownsAuthor: true},
		{name: "photo owner can delete", ownsPhoto: true},
		{name: "stranger cannot delete", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			mocks := &photoServiceMocks{
				photoRepo: &MockPhotoRepository{
					FindCommentByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.PhotoComment, error) {
						return &domain.PhotoComment{
							BaseModel: domain.BaseModel{ID: commentID},
							PhotoID:   photoID,
							AuthorID:  authorCharacterID,
						}, nil
					},
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
						return &domain.Photo{
							BaseModel:   domain.BaseModel{ID: photoID},
							CharacterID: photoOwnerID,
						}, nil
					},
					DeleteCommentFunc: func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
						deleted = true
						return nil
					},
				},
				albumRepo: &MockAlbumRepository{},
				characterRepo: &MockCharacterRepository{
					FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
						owner := uuid.New()
						if (id == authorCharacterID && tt.ownsAuthor) || (id == photoOwnerID && tt.ownsPhoto) {
							owner = userID
						}
						return ownedCharacterOf(owner, id), nil
					},
				},
				s3: client.NewMockS3Client(),
			}
			service := newPhotoService(mocks)

			err := service.DeleteComment(context.Background(), userID, commentID)
			if tt.wantErr {
				if err == nil {
					t.Fatal("DeleteComment() error = nil, want error")
				}
				appErr, ok := err.(*response.AppError)
				if !ok || appErr.Code != response.ErrCodeForbidden {
					t.Errorf("DeleteComment() error = %v, want code %v", err, response.ErrCodeForbidden)
				}
				if deleted {
					t.Error("DeleteComment() deleted the comment despite the authorization failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("DeleteComment() unexpected error = %v", err)
			}
			if !deleted {
				t.Error("DeleteComment() did not delete the comment")
			}
		})
	}
}
