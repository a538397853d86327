package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/response"
	"campaign-space-api/internal/service"
	"campaign-space-api/internal/util"
)

// CommentHandler handles wall comment requests
type CommentHandler struct {
	commentService service.CommentService
	maxPhotoBytes  int64
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService, maxPhotoBytes int64) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		maxPhotoBytes:  maxPhotoBytes,
	}
}

// CreateComment godoc
// @Summary      Post a wall comment
// @Description  Posts a comment on a character's wall, or a reply when parentCommentId is set
// @Description  A comment must carry text content, a photo, or both; replies cannot be nested
// @Tags         comments
// @Accept       multipart/form-data
// @Produce      json
// @Param        characterId formData string true "Wall character ID (UUID)"
// @Param        authorCharacterId formData string true "Author character ID (UUID)"
// @Param        content formData string false "Comment text"
// @Param        parentCommentId formData string false "Parent comment ID for a reply"
// @Param        photo formData file false "Optional image"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment created"
// @Failure      400 {object} response.ErrorResponse "Invalid request or nested reply"
// @Failure      403 {object} response.ErrorResponse "Author character not owned"
// @Failure      404 {object} response.ErrorResponse "Character or parent comment not found"
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	var photo *service.CommentPhoto
	if header, err := c.FormFile("photo"); err == nil {
		if !validateImageFile(c, header, h.maxPhotoBytes) {
			return
		}
		file, err := header.Open()
		if err != nil {
			response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to read file")
			return
		}
		defer file.Close()
		photo = &service.CommentPhoto{
			File:        file,
			FileExt:     client.FileExt(header.Filename),
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), auth.UserID, &req, photo)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// GetWallComments godoc
// @Summary      Get a character's wall
// @Description  Returns top-level comments newest first, each with its replies oldest first
// @Tags         comments
// @Produce      json
// @Param        characterId path string true "Character ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.WallCommentResponse} "Wall comments"
// @Failure      404 {object} response.ErrorResponse "Character not found"
// @Router       /comments/character/{characterId} [get]
func (h *CommentHandler) GetWallComments(c *gin.Context) {
	characterID, err := uuid.Parse(c.Param("characterId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid character ID")
		return
	}

	comments, err := h.commentService.GetWallComments(c.Request.Context(), characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// GetReplies godoc
// @Summary      Get replies to a comment
// @Description  Returns the replies of a top-level comment, oldest first
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "Replies"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Router       /comments/{commentId}/replies [get]
func (h *CommentHandler) GetReplies(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	replies, err := h.commentService.GetReplies(c.Request.Context(), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, replies)
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Edits a comment's text (author's owner only) and marks it edited
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "Comment update request"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Comment updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Not the author"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), auth.UserID, commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes a comment; allowed for the author's owner and the wall owner
// @Description  Deleting a top-level comment also deletes its replies
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "Comment deleted"
// @Failure      403 {object} response.ErrorResponse "Not allowed"
// @Failure      404 {object} response.ErrorResponse "Comment not found"
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), auth.UserID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Comment deleted"})
}
