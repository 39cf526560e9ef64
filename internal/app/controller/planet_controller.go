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

// PlanetController 행성 컨트롤러
type PlanetController struct {
	service service.PlanetService
}

// NewPlanetController 행성 컨트롤러 생성자
func NewPlanetController(service service.PlanetService) *PlanetController {
	return &PlanetController{service: service}
}

// CreatePlanet godoc
// @Summary 행성 생성
// @Description 은하에 새로운 행성(게시글)을 작성합니다
// @Tags planet
// @Accept json
// @Produce json
// @Param request body model.CreatePlanetRequest true "행성 생성 요청"
// @Success 201 {object} model.Planet
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/planets [post]
func (ctrl *PlanetController) CreatePlanet(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.CreatePlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	planet, err := ctrl.service.Create(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrGalaxyNotFound) {
			apperrors.NotFound(c, apperrors.GalaxyNotFound, "은하를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to create planet", err, map[string]interface{}{
			"user_id":   userID,
			"galaxy_id": req.GalaxyID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create planet")
		return
	}

	log.Info("Planet created", map[string]interface{}{
		"planet_id": planet.ID,
		"galaxy_id": planet.GalaxyID,
		"user_id":   userID,
	})

	c.JSON(http.StatusCreated, planet)
}

// GetPlanet godoc
// @Summary 행성 조회
// @Description ID로 특정 행성을 조회합니다 (조회수가 증가합니다)
// @Tags planet
// @Accept json
// @Produce json
// @Param id path int true "행성 ID"
// @Success 200 {object} model.Planet
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/planets/{id} [get]
func (ctrl *PlanetController) GetPlanet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "행성 ID가 올바르지 않습니다")
		return
	}

	planet, err := ctrl.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPlanetNotFound) {
			apperrors.NotFound(c, apperrors.PlanetNotFound, "행성을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get planet")
		return
	}

	c.JSON(http.StatusOK, planet)
}

// GetPlanets godoc
// @Summary 행성 목록 조회
// @Description 필터와 페이지네이션으로 행성 목록을 조회합니다
// @Tags planet
// @Accept json
// @Produce json
// @Param galaxy_id query int false "은하 ID"
// @Param user_id query int false "작성자 ID"
// @Param search query string false "검색어 (제목+내용)"
// @Param page query int false "페이지 번호" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Param sort_by query string false "정렬 기준" Enums(created_at, view_count, comment_count)
// @Param sort_order query string false "정렬 순서" Enums(asc, desc)
// @Success 200 {object} gin.H{data=[]model.Planet,total=int,page=int,page_size=int}
// @Router /api/v1/planets [get]
func (ctrl *PlanetController) GetPlanets(c *gin.Context) {
	var query model.PlanetListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "조회 조건이 올바르지 않습니다")
		return
	}

	planets, total, err := ctrl.service.GetList(&query)
	if err != nil {
		apperrors.InternalError(c, "행성 목록 조회에 실패했습니다")
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
		"data":      planets,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdatePlanet godoc
// @Summary 행성 수정
// @Description 행성을 수정합니다 (작성자 또는 관리자)
// @Tags planet
// @Accept json
// @Produce json
// @Param id path int true "행성 ID"
// @Param request body model.UpdatePlanetRequest true "행성 수정 요청"
// @Success 200 {object} model.Planet
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/planets/{id} [put]
func (ctrl *PlanetController) UpdatePlanet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "행성 ID가 올바르지 않습니다")
		return
	}

	var req model.UpdatePlanetRequest
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

	planet, err := ctrl.service.Update(uint(id), &req, userID, userRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanetNotFound):
			apperrors.NotFound(c, apperrors.PlanetNotFound, "행성을 찾을 수 없습니다")
		case errors.Is(err, service.ErrPermissionDenied):
			apperrors.Forbidden(c, "행성을 수정할 권한이 없습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update planet")
		}
		return
	}

	c.JSON(http.StatusOK, planet)
}

// DeletePlanet godoc
// @Summary 행성 삭제
// @Description 행성을 삭제합니다 (작성자, 은하 소유자 또는 관리자)
// @Tags planet
// @Accept json
// @Produce json
// @Param id path int true "행성 ID"
// @Success 204
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/planets/{id} [delete]
func (ctrl *PlanetController) DeletePlanet(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "행성 ID가 올바르지 않습니다")
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
		case errors.Is(err, service.ErrPlanetNotFound):
			apperrors.NotFound(c, apperrors.PlanetNotFound, "행성을 찾을 수 없습니다")
		case errors.Is(err, service.ErrPermissionDenied):
			apperrors.Forbidden(c, "행성을 삭제할 권한이 없습니다")
		default:
			log.Error("Failed to delete planet", err, map[string]interface{}{
				"planet_id": id,
				"user_id":   userID,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.PlanetDeleteFailed, "행성 삭제에 실패했습니다")
		}
		return
	}

	log.Info("Planet deleted", map[string]interface{}{
		"planet_id": id,
		"user_id":   userID,
	})

	c.Status(http.StatusNoContent)
}
