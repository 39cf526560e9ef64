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

// GalaxyController 은하 컨트롤러
type GalaxyController struct {
	service service.GalaxyService
}

// NewGalaxyController 은하 컨트롤러 생성자
func NewGalaxyController(service service.GalaxyService) *GalaxyController {
	return &GalaxyController{service: service}
}

// CreateGalaxy godoc
// @Summary 은하 생성
// @Description 새로운 은하(커뮤니티)를 만듭니다
// @Tags galaxy
// @Accept json
// @Produce json
// @Param request body model.CreateGalaxyRequest true "은하 생성 요청"
// @Success 201 {object} model.Galaxy
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/galaxies [post]
func (ctrl *GalaxyController) CreateGalaxy(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.CreateGalaxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	galaxy, err := ctrl.service.Create(&req, userID)
	if err != nil {
		log.Error("Failed to create galaxy", err, map[string]interface{}{
			"owner_id": userID,
			"name":     req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusConflict, err, "create galaxy")
		return
	}

	log.Info("Galaxy created", map[string]interface{}{
		"galaxy_id": galaxy.ID,
		"owner_id":  userID,
	})

	c.JSON(http.StatusCreated, galaxy)
}

// GetGalaxy godoc
// @Summary 은하 조회
// @Description ID로 특정 은하를 조회합니다
// @Tags galaxy
// @Accept json
// @Produce json
// @Param id path int true "은하 ID"
// @Success 200 {object} model.Galaxy
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/galaxies/{id} [get]
func (ctrl *GalaxyController) GetGalaxy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "은하 ID가 올바르지 않습니다")
		return
	}

	galaxy, err := ctrl.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrGalaxyNotFound) {
			apperrors.NotFound(c, apperrors.GalaxyNotFound, "은하를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get galaxy")
		return
	}

	c.JSON(http.StatusOK, galaxy)
}

// GetGalaxies godoc
// @Summary 은하 목록 조회
// @Description 필터와 페이지네이션으로 은하 목록을 조회합니다
// @Tags galaxy
// @Accept json
// @Produce json
// @Param owner_id query int false "소유자 ID"
// @Param search query string false "검색어 (이름+설명)"
// @Param page query int false "페이지 번호" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Param sort_by query string false "정렬 기준" Enums(created_at, planet_count, comment_count)
// @Param sort_order query string false "정렬 순서" Enums(asc, desc)
// @Success 200 {object} gin.H{data=[]model.Galaxy,total=int,page=int,page_size=int}
// @Router /api/v1/galaxies [get]
func (ctrl *GalaxyController) GetGalaxies(c *gin.Context) {
	var query model.GalaxyListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "조회 조건이 올바르지 않습니다")
		return
	}

	galaxies, total, err := ctrl.service.GetList(&query)
	if err != nil {
		apperrors.InternalError(c, "은하 목록 조회에 실패했습니다")
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
		"data":      galaxies,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateGalaxy godoc
// @Summary 은하 수정
// @Description 은하 정보를 수정합니다 (소유자 또는 관리자)
// @Tags galaxy
// @Accept json
// @Produce json
// @Param id path int true "은하 ID"
// @Param request body model.UpdateGalaxyRequest true "은하 수정 요청"
// @Success 200 {object} model.Galaxy
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/galaxies/{id} [put]
func (ctrl *GalaxyController) UpdateGalaxy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "은하 ID가 올바르지 않습니다")
		return
	}

	var req model.UpdateGalaxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	galaxy, err := ctrl.service.Update(uint(id), &req, userID, userRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalaxyNotFound):
			apperrors.NotFound(c, apperrors.GalaxyNotFound, "은하를 찾을 수 없습니다")
		case errors.Is(err, service.ErrPermissionDenied):
			apperrors.Forbidden(c, "은하를 수정할 권한이 없습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update galaxy")
		}
		return
	}

	c.JSON(http.StatusOK, galaxy)
}

// DeleteGalaxy godoc
// @Summary 은하 삭제
// @Description 은하를 삭제합니다 (소유자 또는 관리자)
// @Tags galaxy
// @Accept json
// @Produce json
// @Param id path int true "은하 ID"
// @Success 204
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/galaxies/{id} [delete]
func (ctrl *GalaxyController) DeleteGalaxy(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "은하 ID가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	if err := ctrl.service.Delete(uint(id), userID, userRole); err != nil {
		switch {
		case errors.Is(err, service.ErrGalaxyNotFound):
			apperrors.NotFound(c, apperrors.GalaxyNotFound, "은하를 찾을 수 없습니다")
		case errors.Is(err, service.ErrPermissionDenied):
			apperrors.Forbidden(c, "은하를 삭제할 권한이 없습니다")
		default:
			log.Error("Failed to delete galaxy", err, map[string]interface{}{
				"galaxy_id": id,
				"user_id":   userID,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.GalaxyDeleteFailed, "은하 삭제에 실패했습니다")
		}
		return
	}

	log.Info("Galaxy deleted", map[string]interface{}{
		"galaxy_id": id,
		"user_id":   userID,
	})

	c.Status(http.StatusNoContent)
}
