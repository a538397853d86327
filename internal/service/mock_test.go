package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

// MockCharacterRepository is a mock implementation of CharacterRepository
type MockCharacterRepository struct {
	CreateFunc                func(ctx context.Context, character *domain.Character) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	FindByIDWithFriendsFunc   func(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	FindBySlugFunc            func(ctx context.Context, slug string) (*domain.Character, error)
	FindByIDsFunc             func(ctx context.Context, ids []uuid.UUID) ([]*domain.Character, error)
	FindByOwnerIDFunc         func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Character, error)
	FindAllFunc               func(ctx context.Context, limit, offset int) ([]*domain.Character, error)
	UpdateFunc                func(ctx context.Context, character *domain.Character) error
	DeleteFunc                func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	SlugExistsFunc            func(ctx context.Context, slug string) (bool, error)
	IncrementProfileViewsFunc func(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	ReplaceTopFriendsFunc     func(ctx context.Context, character *domain.Character, friends []*domain.Character) error
	DeleteTopFriendRefsFunc   func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	TransactionFunc           func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *MockCharacterRepository) Create(ctx context.Context, character *domain.Character) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, character)
	}
	return nil
}

func (m *MockCharacterRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCharacterRepository) FindByIDWithFriends(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	if m.FindByIDWithFriendsFunc != nil {
		return m.FindByIDWithFriendsFunc(ctx, id)
	}
	return m.FindByID(ctx, id)
}

func (m *MockCharacterRepository) FindBySlug(ctx context.Context, slug string) (*domain.Character, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCharacterRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Character, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockCharacterRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Character, error) {
	if m.FindByOwnerIDFunc != nil {
		return m.FindByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockCharacterRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.Character, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockCharacterRepository) Update(ctx context.Context, character *domain.Character) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, character)
	}
	return nil
}

func (m *MockCharacterRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockCharacterRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
}

func (m *MockCharacterRepository) IncrementProfileViews(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	if m.IncrementProfileViewsFunc != nil {
		return m.IncrementProfileViewsFunc(ctx, id, delta)
	}
	return delta, nil
}

func (m *MockCharacterRepository) ReplaceTopFriends(ctx context.Context, character *domain.Character, friends []*domain.Character) error {
	if m.ReplaceTopFriendsFunc != nil {
		return m.ReplaceTopFriendsFunc(ctx, character, friends)
	}
	return nil
}

func (m *MockCharacterRepository) DeleteTopFriendRefs(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if m.DeleteTopFriendRefsFunc != nil {
		return m.DeleteTopFriendRefsFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockCharacterRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(nil)
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc                  func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindTopLevelByCharacterFunc func(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error)
	FindRepliesByParentIDsFunc  func(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error)
	FindRepliesByParentIDFunc   func(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error)
	FindByCharacterIDFunc       func(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error)
	FindByAuthorIDFunc          func(ctx context.Context, authorID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc                  func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc                  func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByParentIDFunc        func(ctx context.Context, tx *gorm.DB, parentID uuid.UUID) error
	DeleteByCharacterIDFunc     func(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	DeleteByAuthorIDFunc        func(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error
	TransactionFunc             func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCommentRepository) FindTopLevelByCharacter(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindTopLevelByCharacterFunc != nil {
		return m.FindTopLevelByCharacterFunc(ctx, characterID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindRepliesByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Comment, error) {
	if m.FindRepliesByParentIDsFunc != nil {
		return m.FindRepliesByParentIDsFunc(ctx, parentIDs)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindRepliesByParentID(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindRepliesByParentIDFunc != nil {
		return m.FindRepliesByParentIDFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByCharacterIDFunc != nil {
		return m.FindByCharacterIDFunc(ctx, characterID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByAuthorIDFunc != nil {
		return m.FindByAuthorIDFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockCommentRepository) DeleteByParentID(ctx context.Context, tx *gorm.DB, parentID uuid.UUID) error {
	if m.DeleteByParentIDFunc != nil {
		return m.DeleteByParentIDFunc(ctx, tx, parentID)
	}
	return nil
}

func (m *MockCommentRepository) DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if m.DeleteByCharacterIDFunc != nil {
		return m.DeleteByCharacterIDFunc(ctx, tx, characterID)
	}
	return nil
}

func (m *MockCommentRepository) DeleteByAuthorID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error {
	if m.DeleteByAuthorIDFunc != nil {
		return m.DeleteByAuthorIDFunc(ctx, tx, authorID)
	}
	return nil
}

func (m *MockCommentRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(nil)
}

// MockAlbumRepository is a mock implementation of AlbumRepository
type MockAlbumRepository struct {
	CreateFunc              func(ctx context.Context, album *domain.Album) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	FindByCharacterIDFunc   func(ctx context.Context, characterID uuid.UUID) ([]*domain.Album, error)
	UpdateFunc              func(ctx context.Context, album *domain.Album) error
	DeleteFunc              func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByCharacterIDFunc func(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	AddPhotoCountFunc       func(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int) error
	SetCoverPhotoFunc       func(ctx context.Context, tx *gorm.DB, id uuid.UUID, coverPhotoID *uuid.UUID) error
	TransactionFunc         func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *MockAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, album)
	}
	return nil
}

func (m *MockAlbumRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAlbumRepository) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Album, error) {
	if m.FindByCharacterIDFunc != nil {
		return m.FindByCharacterIDFunc(ctx, characterID)
	}
	return nil, nil
}

func (m *MockAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, album)
	}
	return nil
}

func (m *MockAlbumRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockAlbumRepository) DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if m.DeleteByCharacterIDFunc != nil {
		return m.DeleteByCharacterIDFunc(ctx, tx, characterID)
	}
	return nil
}

func (m *MockAlbumRepository) AddPhotoCount(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int) error {
	if m.AddPhotoCountFunc != nil {
		return m.AddPhotoCountFunc(ctx, tx, id, delta)
	}
	return nil
}

func (m *MockAlbumRepository) SetCoverPhoto(ctx context.Context, tx *gorm.DB, id uuid.UUID, coverPhotoID *uuid.UUID) error {
	if m.SetCoverPhotoFunc != nil {
		return m.SetCoverPhotoFunc(ctx, tx, id, coverPhotoID)
	}
	return nil
}

func (m *MockAlbumRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(nil)
}

// MockPhotoRepository is a mock implementation of PhotoRepository
type MockPhotoRepository struct {
	CreateBatchFunc              func(ctx context.Context, tx *gorm.DB, photos []*domain.Photo) error
	FindByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	FindByAlbumIDFunc            func(ctx context.Context, albumID uuid.UUID) ([]*domain.Photo, error)
	FindByCharacterIDFunc        func(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error)
	MaxDisplayOrderFunc          func(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (int, error)
	FirstByDisplayOrderFunc      func(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (*domain.Photo, error)
	UpdateFunc                   func(ctx context.Context, photo *domain.Photo) error
	SetDisplayOrderFunc          func(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, order int) error
	DeleteFunc                   func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByAlbumIDFunc          func(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) error
	FindLikeFunc                 func(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) (*domain.PhotoLike, error)
	CreateLikeFunc               func(ctx context.Context, tx *gorm.DB, like *domain.PhotoLike) error
	DeleteLikeFunc               func(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) error
	AddLikeCountFunc             func(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, delta int) error
	ListLikesFunc                func(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoLike, error)
	DeleteLikesByPhotoIDsFunc    func(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error
	DeleteLikesByCharacterIDFunc func(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	ReplaceTagsFunc              func(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, characterIDs []uuid.UUID) error
	FindTagsByPhotoIDsFunc       func(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.PhotoTag, error)
	FindPhotosTaggedWithFunc     func(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error)
	DeleteTagsByPhotoIDsFunc     func(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error
	DeleteTagsByCharacterIDFunc  func(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	CreateCommentFunc            func(ctx context.Context, comment *domain.PhotoComment) error
	FindCommentByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.PhotoComment, error)
	ListCommentsFunc             func(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoComment, error)
	DeleteCommentFunc            func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteCommentsByPhotoIDsFunc func(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error
	DeleteCommentsByAuthorIDFunc func(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error
	TransactionFunc              func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *MockPhotoRepository) CreateBatch(ctx context.Context, tx *gorm.DB, photos []*domain.Photo) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, photos)
	}
	return nil
}

func (m *MockPhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPhotoRepository) FindByAlbumID(ctx context.Context, albumID uuid.UUID) ([]*domain.Photo, error) {
	if m.FindByAlbumIDFunc != nil {
		return m.FindByAlbumIDFunc(ctx, albumID)
	}
	return nil, nil
}

func (m *MockPhotoRepository) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error) {
	if m.FindByCharacterIDFunc != nil {
		return m.FindByCharacterIDFunc(ctx, characterID)
	}
	return nil, nil
}

func (m *MockPhotoRepository) MaxDisplayOrder(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (int, error) {
	if m.MaxDisplayOrderFunc != nil {
		return m.MaxDisplayOrderFunc(ctx, tx, albumID)
	}
	return 0, nil
}

func (m *MockPhotoRepository) FirstByDisplayOrder(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) (*domain.Photo, error) {
	if m.FirstByDisplayOrderFunc != nil {
		return m.FirstByDisplayOrderFunc(ctx, tx, albumID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPhotoRepository) Update(ctx context.Context, photo *domain.Photo) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, photo)
	}
	return nil
}

func (m *MockPhotoRepository) SetDisplayOrder(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, order int) error {
	if m.SetDisplayOrderFunc != nil {
		return m.SetDisplayOrderFunc(ctx, tx, photoID, order)
	}
	return nil
}

func (m *MockPhotoRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockPhotoRepository) DeleteByAlbumID(ctx context.Context, tx *gorm.DB, albumID uuid.UUID) error {
	if m.DeleteByAlbumIDFunc != nil {
		return m.DeleteByAlbumIDFunc(ctx, tx, albumID)
	}
	return nil
}

func (m *MockPhotoRepository) FindLike(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) (*domain.PhotoLike, error) {
	if m.FindLikeFunc != nil {
		return m.FindLikeFunc(ctx, tx, photoID, characterID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPhotoRepository) CreateLike(ctx context.Context, tx *gorm.DB, like *domain.PhotoLike) error {
	if m.CreateLikeFunc != nil {
		return m.CreateLikeFunc(ctx, tx, like)
	}
	return nil
}

func (m *MockPhotoRepository) DeleteLike(ctx context.Context, tx *gorm.DB, photoID, characterID uuid.UUID) error {
	if m.DeleteLikeFunc != nil {
		return m.DeleteLikeFunc(ctx, tx, photoID, characterID)
	}
	return nil
}

func (m *MockPhotoRepository) AddLikeCount(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, delta int) error {
	if m.AddLikeCountFunc != nil {
		return m.AddLikeCountFunc(ctx, tx, photoID, delta)
	}
	return nil
}

func (m *MockPhotoRepository) ListLikes(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoLike, error) {
	if m.ListLikesFunc != nil {
		return m.ListLikesFunc(ctx, photoID)
	}
	return nil, nil
}

func (m *MockPhotoRepository) DeleteLikesByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error {
	if m.DeleteLikesByPhotoIDsFunc != nil {
		return m.DeleteLikesByPhotoIDsFunc(ctx, tx, photoIDs)
	}
	return nil
}

func (m *MockPhotoRepository) DeleteLikesByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if m.DeleteLikesByCharacterIDFunc != nil {
		return m.DeleteLikesByCharacterIDFunc(ctx, tx, characterID)
	}
	return nil
}

func (m *MockPhotoRepository) ReplaceTags(ctx context.Context, tx *gorm.DB, photoID uuid.UUID, characterIDs []uuid.UUID) error {
	if m.ReplaceTagsFunc != nil {
		return m.ReplaceTagsFunc(ctx, tx, photoID, characterIDs)
	}
	return nil
}

func (m *MockPhotoRepository) FindTagsByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.PhotoTag, error) {
	if m.FindTagsByPhotoIDsFunc != nil {
		return m.FindTagsByPhotoIDsFunc(ctx, photoIDs)
	}
	return nil, nil
}

func (m *MockPhotoRepository) FindPhotosTaggedWith(ctx context.Context, characterID uuid.UUID) ([]*domain.Photo, error) {
	if m.FindPhotosTaggedWithFunc != nil {
		return m.FindPhotosTaggedWithFunc(ctx, characterID)
	}
	return nil, nil
}

func (m *MockPhotoRepository) DeleteTagsByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error {
	if m.DeleteTagsByPhotoIDsFunc != nil {
		return m.DeleteTagsByPhotoIDsFunc(ctx, tx, photoIDs)
	}
	return nil
}

func (m *MockPhotoRepository) DeleteTagsByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if m.DeleteTagsByCharacterIDFunc != nil {
		return m.DeleteTagsByCharacterIDFunc(ctx, tx, characterID)
	}
	return nil
}

func (m *MockPhotoRepository) CreateComment(ctx context.Context, comment *domain.PhotoComment) error {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, comment)
	}
	return nil
}

func (m *MockPhotoRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*domain.PhotoComment, error) {
	if m.FindCommentByIDFunc != nil {
		return m.FindCommentByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPhotoRepository) ListComments(ctx context.Context, photoID uuid.UUID) ([]*domain.PhotoComment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, photoID)
	}
	return nil, nil
}

func (m *MockPhotoRepository) DeleteComment(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, tx, id)
	}
	return nil
}

func (m *MockPhotoRepository) DeleteCommentsByPhotoIDs(ctx context.Context, tx *gorm.DB, photoIDs []uuid.UUID) error {
	if m.DeleteCommentsByPhotoIDsFunc != nil {
		return m.DeleteCommentsByPhotoIDsFunc(ctx, tx, photoIDs)
	}
	return nil
}

func (m *MockPhotoRepository) DeleteCommentsByAuthorID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) error {
	if m.DeleteCommentsByAuthorIDFunc != nil {
		return m.DeleteCommentsByAuthorIDFunc(ctx, tx, authorID)
	}
	return nil
}

func (m *MockPhotoRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(nil)
}

// MockPlaylistRepository is a mock implementation of PlaylistRepository
type MockPlaylistRepository struct {
	CreateFunc                  func(ctx context.Context, playlist *domain.Playlist) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	FindByCharacterIDFunc       func(ctx context.Context, characterID uuid.UUID) (*domain.Playlist, error)
	UpdateFunc                  func(ctx context.Context, playlist *domain.Playlist) error
	DeleteByCharacterIDFunc     func(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error
	CreateSongFunc              func(ctx context.Context, song *domain.Song) error
	FindSongByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Song, error)
	MaxPositionFunc             func(ctx context.Context, playlistID uuid.UUID) (int, error)
	UpdateSongFunc              func(ctx context.Context, song *domain.Song) error
	DeleteSongFunc              func(ctx context.Context, id uuid.UUID) error
	DeleteSongsByPlaylistIDFunc func(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) error
	SetSongPositionFunc         func(ctx context.Context, tx *gorm.DB, songID uuid.UUID, position int) error
	TransactionFunc             func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, playlist)
	}
	return nil
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPlaylistRepository) FindByCharacterID(ctx context.Context, characterID uuid.UUID) (*domain.Playlist, error) {
	if m.FindByCharacterIDFunc != nil {
		return m.FindByCharacterIDFunc(ctx, characterID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, playlist)
	}
	return nil
}

func (m *MockPlaylistRepository) DeleteByCharacterID(ctx context.Context, tx *gorm.DB, characterID uuid.UUID) error {
	if m.DeleteByCharacterIDFunc != nil {
		return m.DeleteByCharacterIDFunc(ctx, tx, characterID)
	}
	return nil
}

func (m *MockPlaylistRepository) CreateSong(ctx context.Context, song *domain.Song) error {
	if m.CreateSongFunc != nil {
		return m.CreateSongFunc(ctx, song)
	}
	return nil
}

func (m *MockPlaylistRepository) FindSongByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	if m.FindSongByIDFunc != nil {
		return m.FindSongByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPlaylistRepository) MaxPosition(ctx context.Context, playlistID uuid.UUID) (int, error) {
	if m.MaxPositionFunc != nil {
		return m.MaxPositionFunc(ctx, playlistID)
	}
	return 0, nil
}

func (m *MockPlaylistRepository) UpdateSong(ctx context.Context, song *domain.Song) error {
	if m.UpdateSongFunc != nil {
		return m.UpdateSongFunc(ctx, song)
	}
	return nil
}

func (m *MockPlaylistRepository) DeleteSong(ctx context.Context, id uuid.UUID) error {
	if m.DeleteSongFunc != nil {
		return m.DeleteSongFunc(ctx, id)
	}
	return nil
}

func (m *MockPlaylistRepository) DeleteSongsByPlaylistID(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) error {
	if m.DeleteSongsByPlaylistIDFunc != nil {
		return m.DeleteSongsByPlaylistIDFunc(ctx, tx, playlistID)
	}
	return nil
}

func (m *MockPlaylistRepository) SetSongPosition(ctx context.Context, tx *gorm.DB, songID uuid.UUID, position int) error {
	if m.SetSongPositionFunc != nil {
		return m.SetSongPositionFunc(ctx, tx, songID, position)
	}
	return nil
}

func (m *MockPlaylistRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(nil)
}

// MockOrphanedMediaRepository is a mock implementation of OrphanedMediaRepository
type MockOrphanedMediaRepository struct {
	RecordFunc            func(ctx context.Context, storageKey string) error
	FindBatchFunc         func(ctx context.Context, limit int) ([]*domain.OrphanedMedia, error)
	IncrementAttemptsFunc func(ctx context.Context, id uuid.UUID) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	RecordedKeys []string
}

func (m *MockOrphanedMediaRepository) Record(ctx context.Context, storageKey string) error {
	m.RecordedKeys = append(m.RecordedKeys, storageKey)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, storageKey)
	}
	return nil
}

func (m *MockOrphanedMediaRepository) FindBatch(ctx context.Context, limit int) ([]*domain.OrphanedMedia, error) {
	if m.FindBatchFunc != nil {
		return m.FindBatchFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockOrphanedMediaRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	if m.IncrementAttemptsFunc != nil {
		return m.IncrementAttemptsFunc(ctx, id)
	}
	return nil
}

func (m *MockOrphanedMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
