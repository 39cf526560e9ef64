package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ikkim/cosmos-backend/internal/app/service"
	apperrors "github.com/ikkim/cosmos-backend/internal/errors"
	"github.com/ikkim/cosmos-backend/internal/middleware"
	ws "github.com/ikkim/cosmos-backend/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS는 라우터 레벨에서 제어하므로 여기서는 허용
		return true
	},
}

// NotificationController 알림 컨트롤러
type NotificationController struct {
	service service.NotificationService
	hub     *ws.Hub
}

// NewNotificationController 알림 컨트롤러 생성자
func NewNotificationController(service service.NotificationService, hub *ws.Hub) *NotificationController {
	return &NotificationController{
		service: service,
		hub:     hub,
	}
}

// GetNotifications godoc
// @Summary 알림 목록 조회
// @Description 사용자의 알림 목록을 조회합니다
// @Tags notifications
// @Accept json
// @Produce json
// @Param page query int false "페이지 번호" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Param is_read query bool false "읽음 상태"
// @Success 200 {object} gin.H{data=[]model.Notification,total=int,page=int,page_size=int,unread_count=int}
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications [get]
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		apperrors.Unauthorized(ctx, "로그인이 필요합니다")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	var isRead *bool
	if isReadStr := ctx.Query("is_read"); isReadStr != "" {
		if isReadStr == "true" {
			t := true
			isRead = &t
		} else if isReadStr == "false" {
			f := false
			isRead = &f
		}
	}

	notifications, total, unreadCount, err := c.service.GetNotifications(userID, isRead, page, pageSize)
	if err != nil {
		apperrors.InternalError(ctx, "알림 목록을 조회하는 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":         notifications,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
		"unread_count": unreadCount,
	})
}

// GetUnreadCount godoc
// @Summary 안읽은 알림 개수 조회
// @Description 사용자의 안읽은 알림 개수를 조회합니다
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} gin.H{unread_count=int}
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/unread-count [get]
func (c *NotificationController) GetUnreadCount(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		apperrors.Unauthorized(ctx, "로그인이 필요합니다")
		return
	}

	count, err := c.service.GetUnreadCount(userID)
	if err != nil {
		apperrors.InternalError(ctx, "안읽은 알림 개수를 조회하는 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"unread_count": count,
	})
}

// MarkAsRead godoc
// @Summary 알림 읽음 처리
// @Description 특정 알림을 읽음 처리합니다
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path int true "알림 ID"
// @Success 200 {object} gin.H{notification=model.Notification}
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/{id}/read [patch]
func (c *NotificationController) MarkAsRead(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		apperrors.Unauthorized(ctx, "로그인이 필요합니다")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 알림 ID입니다")
		return
	}

	notification, err := c.service.MarkAsRead(uint(id), userID)
	if err != nil {
		if err == service.ErrPermissionDenied {
			apperrors.Forbidden(ctx, "해당 알림에 대한 권한이 없습니다")
			return
		}
		apperrors.NotFound(ctx, apperrors.NotificationNotFound, "알림을 찾을 수 없습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"notification": notification,
	})
}

// MarkAllAsRead godoc
// @Summary 모든 알림 읽음 처리
// @Description 사용자의 모든 알림을 읽음 처리합니다
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} gin.H{message=string}
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/read-all [patch]
func (c *NotificationController) MarkAllAsRead(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		apperrors.Unauthorized(ctx, "로그인이 필요합니다")
		return
	}

	if err := c.service.MarkAllAsRead(userID); err != nil {
		apperrors.InternalError(ctx, "알림을 읽음 처리하는 중 오류가 발생했습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "모든 알림을 읽음 처리했습니다",
	})
}

// DeleteNotification godoc
// @Summary 알림 삭제
// @Description 특정 알림을 삭제합니다
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path int true "알림 ID"
// @Success 200 {object} gin.H{message=string}
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/{id} [delete]
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	userID, exists := middleware.GetUserID(ctx)
	if !exists {
		apperrors.Unauthorized(ctx, "로그인이 필요합니다")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "잘못된 알림 ID입니다")
		return
	}

	if err := c.service.DeleteNotification(uint(id), userID); err != nil {
		if err == service.ErrPermissionDenied {
			apperrors.Forbidden(ctx, "해당 알림에 대한 권한이 없습니다")
			return
		}
		apperrors.NotFound(ctx, apperrors.NotificationNotFound, "알림을 찾을 수 없습니다")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "알림이 삭제되었습니다",
	})
}

// WebSocketHandler godoc
// @Summary 실시간 알림 WebSocket 연결
// @Description 실시간 알림 수신을 위한 WebSocket 연결을 맺습니다 (token 쿼리 파라미터로 인증)
// @Tags notifications
// @Param token query string false "액세스 토큰 (Authorization 헤더 대신 사용 가능)"
// @Security BearerAuth
// @Router /api/v1/ws/notifications [get]
func (c *NotificationController) WebSocketHandler(ctx *gin.Context) {
	log := middleware.GetLoggerFromContext(ctx)

	// 미들웨어에서 이미 인증 완료
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "로그인이 필요합니다")
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err, map[string]interface{}{
			"user_id": userID,
		})
		return
	}

	client := &ws.Client{
		Hub:    c.hub,
		Conn:   &ws.Conn{Conn: conn},
		UserID: userID,
		Send:   make(chan []byte, 256),
	}

	c.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
