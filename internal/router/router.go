// Package router wires repositories, services and handlers into the HTTP API.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/config"
	"campaign-space-api/internal/handler"
	"campaign-space-api/internal/metrics"
	"campaign-space-api/internal/middleware"
	"campaign-space-api/internal/repository"
	"campaign-space-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	CORSOrigins []string
	Upload      config.UploadConfig
	Metrics     *metrics.Metrics
	S3Client    client.S3ClientInterface
	ViewCounter *service.ViewCounter
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "campaign-space-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "campaign-space-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "campaign-space-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "campaign-space-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "campaign-space-api"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	characterRepo := repository.NewCharacterRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	albumRepo := repository.NewAlbumRepository(cfg.DB)
	photoRepo := repository.NewPhotoRepository(cfg.DB)
	playlistRepo := repository.NewPlaylistRepository(cfg.DB)
	orphanRepo := repository.NewOrphanedMediaRepository(cfg.DB)

	// Initialize services
	cleaner := service.NewMediaCleaner(cfg.S3Client, orphanRepo, cfg.Metrics, cfg.Logger)
	characterService := service.NewCharacterService(
		characterRepo,
		albumRepo,
		photoRepo,
		commentRepo,
		playlistRepo,
		cfg.S3Client,
		cleaner,
		cfg.ViewCounter,
		cfg.Metrics,
		cfg.Logger,
	)
	commentService := service.NewCommentService(
		commentRepo,
		characterRepo,
		cfg.S3Client,
		cleaner,
		cfg.Metrics,
		cfg.Logger,
	)
	albumService := service.NewAlbumService(albumRepo, photoRepo, characterRepo, cleaner, cfg.Logger)
	photoService := service.NewPhotoService(
		photoRepo,
		albumRepo,
		characterRepo,
		cfg.S3Client,
		cleaner,
		cfg.Upload.MaxPhotosPerUpload,
		cfg.Metrics,
		cfg.Logger,
	)
	playlistService := service.NewPlaylistService(playlistRepo, characterRepo, cfg.Logger)

	// Initialize handlers
	characterHandler := handler.NewCharacterHandler(characterService, cfg.Upload.MaxCharacterImageBytes)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Upload.MaxPhotoBytes)
	albumHandler := handler.NewAlbumHandler(albumService)
	photoHandler := handler.NewPhotoHandler(photoService, cfg.Upload.MaxPhotoBytes)
	playlistHandler := handler.NewPlaylistHandler(playlistService)

	// API routes group
	api := r.Group(cfg.BasePath)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// ============================================================
	// Character routes
	// ============================================================
	characters := api.Group("/characters")
	{
		characters.GET("", characterHandler.ListCharacters)
		characters.POST("", authMiddleware, characterHandler.CreateCharacter)
		characters.GET("/my/all", authMiddleware, characterHandler.GetMyCharacters)
		characters.GET("/url/:slug", characterHandler.GetCharacterBySlug)
		characters.GET("/:characterId", characterHandler.GetCharacter)
		characters.PUT("/:characterId", authMiddleware, characterHandler.UpdateCharacter)
		characters.DELETE("/:characterId", authMiddleware, characterHandler.DeleteCharacter)
		characters.PUT("/:characterId/image", authMiddleware, characterHandler.UploadImage)
		characters.POST("/:characterId/view", characterHandler.RecordProfileView)
	}

	// ============================================================
	// Wall comment routes
	// ============================================================
	comments := api.Group("/comments")
	{
		comments.POST("", authMiddleware, commentHandler.CreateComment)
		comments.GET("/character/:characterId", commentHandler.GetWallComments)
		comments.GET("/:commentId/replies", commentHandler.GetReplies)
		comments.PUT("/:commentId", authMiddleware, commentHandler.UpdateComment)
		comments.DELETE("/:commentId", authMiddleware, commentHandler.DeleteComment)
	}

	// ============================================================
	// Album routes
	// ============================================================
	albums := api.Group("/albums")
	{
		albums.POST("", authMiddleware, albumHandler.CreateAlbum)
		albums.GET("/character/:characterId", albumHandler.GetCharacterAlbums)
		albums.GET("/:albumId", albumHandler.GetAlbum)
		albums.PUT("/:albumId", authMiddleware, albumHandler.UpdateAlbum)
		albums.DELETE("/:albumId", authMiddleware, albumHandler.DeleteAlbum)
	}

	// ============================================================
	// Photo routes
	// ============================================================
	photos := api.Group("/photos")
	{
		photos.POST("/upload", authMiddleware, photoHandler.UploadPhotos)
		photos.PUT("/reorder", authMiddleware, photoHandler.ReorderPhotos)
		photos.GET("/tagged/:characterId", photoHandler.GetTaggedPhotos)
		photos.GET("/:photoId", photoHandler.GetPhoto)
		photos.DELETE("/:photoId", authMiddleware, photoHandler.DeletePhoto)
		photos.PATCH("/:photoId/caption", authMiddleware, photoHandler.UpdateCaption)
		photos.PUT("/:photoId/tags", authMiddleware, photoHandler.UpdateTags)
		photos.POST("/:photoId/like", authMiddleware, photoHandler.ToggleLike)
		photos.GET("/:photoId/likes", photoHandler.GetLikes)
		photos.POST("/:photoId/comments", authMiddleware, photoHandler.AddComment)
		photos.DELETE("/comments/:commentId", authMiddleware, photoHandler.DeleteComment)
	}

	// ============================================================
	// Playlist routes
	// ============================================================
	playlists := api.Group("/playlists")
	{
		playlists.PUT("", authMiddleware, playlistHandler.UpsertPlaylist)
		playlists.GET("/character/:characterId", playlistHandler.GetCharacterPlaylist)
		playlists.DELETE("/character/:characterId", authMiddleware, playlistHandler.DeletePlaylist)
		playlists.POST("/:playlistId/songs", authMiddleware, playlistHandler.AddSong)
		playlists.PUT("/:playlistId/songs/reorder", authMiddleware, playlistHandler.ReorderSongs)
		playlists.PATCH("/songs/:songId", authMiddleware, playlistHandler.UpdateSong)
		playlists.DELETE("/songs/:songId", authMiddleware, playlistHandler.DeleteSong)
	}

	return r
}
