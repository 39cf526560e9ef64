package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/service"
	apperrors "github.com/ikkim/cosmos-backend/internal/errors"
	"github.com/ikkim/cosmos-backend/internal/middleware"
)

// CommentController 댓글 컨트롤러
// 은하/행성 공용 댓글 API를 담당한다
type CommentController struct {
	service service.CommentService
}

// NewCommentController 댓글 컨트롤러 생성자
func NewCommentController(service service.CommentService) *CommentController {
	return &CommentController{service: service}
}

// CreateComment godoc
// @Summary 댓글 작성
// @Description 은하 또는 행성에 댓글/답글을 작성합니다. 3단계 깊이를 초과하는 답글은 같은 2단계 부모 아래로 평탄화됩니다
// @Tags comment
// @Accept json
// @Produce json
// @Param request body model.CreateCommentRequest true "댓글 작성 요청"
// @Success 201 {object} model.CommentView
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create comment request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	comment, err := ctrl.service.Publish(&req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentEmpty):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "댓글 내용을 입력해주세요")
		case errors.Is(err, service.ErrContentTooLong):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "댓글은 1000자를 초과할 수 없습니다")
		case errors.Is(err, service.ErrTargetNotFound):
			apperrors.NotFound(c, apperrors.CommentTargetInvalid, "댓글을 달 대상을 찾을 수 없습니다")
		case errors.Is(err, service.ErrCommentNotFound):
			apperrors.NotFound(c, apperrors.CommentNotFound, "부모 댓글을 찾을 수 없습니다")
		case errors.Is(err, service.ErrParentDeleted):
			apperrors.BadRequest(c, apperrors.CommentParentDeleted, "삭제된 댓글에는 답글을 달 수 없습니다")
		case errors.Is(err, service.ErrParentMismatch):
			apperrors.BadRequest(c, apperrors.CommentTargetInvalid, "부모 댓글이 다른 대상에 속해 있습니다")
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
		case errors.Is(err, service.ErrAuthorBanned):
			apperrors.Forbidden(c, "댓글 작성이 제한된 계정입니다")
		default:
			log.Error("Failed to create comment", err, map[string]interface{}{
				"user_id":     userID,
				"target_kind": req.TargetKind,
				"target_id":   req.TargetID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create comment")
		}
		return
	}

	log.Info("Comment created", map[string]interface{}{
		"comment_id":  comment.ID,
		"user_id":     userID,
		"target_kind": req.TargetKind,
		"target_id":   req.TargetID,
		"level":       comment.Level,
	})

	c.JSON(http.StatusCreated, comment)
}

// GetComments godoc
// @Summary 댓글 목록 조회
// @Description 대상(은하/행성)의 댓글 트리를 조회합니다. 최상위 댓글은 최신순, 답글은 작성순으로 정렬됩니다
// @Tags comment
// @Accept json
// @Produce json
// @Param target_kind query string true "대상 종류" Enums(galaxy, planet)
// @Param target_id query int true "대상 ID"
// @Param page query int false "페이지 번호" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Success 200 {object} gin.H{data=[]model.CommentView,total=int,page=int,page_size=int}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/comments [get]
func (ctrl *CommentController) GetComments(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var query model.CommentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Warn("Invalid comment list query", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "조회 조건이 올바르지 않습니다")
		return
	}

	// 로그인한 사용자라면 is_liked 표시를 위해 사용자 ID 전달
	viewerID := middleware.GetViewerID(c)

	comments, total, err := ctrl.service.List(&query, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPage):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "페이지 범위가 올바르지 않습니다")
		case errors.Is(err, service.ErrTargetNotFound):
			apperrors.NotFound(c, apperrors.CommentTargetInvalid, "댓글 대상을 찾을 수 없습니다")
		default:
			log.Error("Failed to list comments", err, map[string]interface{}{
				"target_kind": query.TargetKind,
				"target_id":   query.TargetID,
			})
			apperrors.InternalError(c, "댓글 목록 조회에 실패했습니다")
		}
		return
	}

	page := query.Page
	if page == 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      comments,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetComment godoc
// @Summary 댓글 단건 조회
// @Description 댓글 하나를 답글 트리와 함께 조회합니다
// @Tags comment
// @Accept json
// @Produce json
// @Param id path int true "댓글 ID"
// @Success 200 {object} model.CommentView
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/comments/{id} [get]
func (ctrl *CommentController) GetComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "댓글 ID가 올바르지 않습니다")
		return
	}

	viewerID := middleware.GetViewerID(c)

	comment, err := ctrl.service.GetDetail(uint(id), viewerID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			apperrors.NotFound(c, apperrors.CommentNotFound, "댓글을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}

// ToggleCommentLike godoc
// @Summary 댓글 좋아요 토글
// @Description 댓글 좋아요를 추가하거나 취소합니다
// @Tags comment
// @Accept json
// @Produce json
// @Param id path int true "댓글 ID"
// @Success 200 {object} gin.H{is_liked=bool}
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/comments/{id}/like [post]
func (ctrl *CommentController) ToggleCommentLike(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "댓글 ID가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	isLiked, err := ctrl.service.ToggleLike(uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			apperrors.NotFound(c, apperrors.CommentNotFound, "댓글을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to toggle comment like", err, map[string]interface{}{
			"comment_id": id,
			"user_id":    userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "toggle comment like")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_liked": isLiked})
}

// DeleteComment godoc
// @Summary 댓글 삭제
// @Description 댓글을 삭제합니다. 하위 답글도 함께 삭제됩니다 (작성자, 대상 소유자 또는 관리자)
// @Tags comment
// @Accept json
// @Produce json
// @Param id path int true "댓글 ID"
// @Success 204
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/comments/{id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "댓글 ID가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	if err := ctrl.service.Delete(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			apperrors.NotFound(c, apperrors.CommentNotFound, "댓글을 찾을 수 없습니다")
		case errors.Is(err, service.ErrPermissionDenied):
			apperrors.Forbidden(c, "댓글을 삭제할 권한이 없습니다")
		default:
			log.Error("Failed to delete comment", err, map[string]interface{}{
				"comment_id": id,
				"user_id":    userID,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.CommentDeleteFailed, "댓글 삭제에 실패했습니다")
		}
		return
	}

	log.Info("Comment deleted", map[string]interface{}{
		"comment_id": id,
		"user_id":    userID,
	})

	c.Status(http.StatusNoContent)
}
