package service

import (
	"errors"
	"fmt"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/internal/websocket"
	"github.com/ikkim/cosmos-backend/pkg/logger"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationService 알림 서비스 인터페이스
// CommentNotifier 협력자 역할도 겸한다. Notify 계열 호출은 댓글 작업
// 커밋 이후에 비동기로 불리며, 실패는 로그만 남긴다.
type NotificationService interface {
	CommentNotifier

	GetNotifications(userID uint, isRead *bool, page, pageSize int) ([]model.Notification, int64, int64, error)
	GetUnreadCount(userID uint) (int64, error)
	MarkAsRead(notificationID, userID uint) (*model.Notification, error)
	MarkAllAsRead(userID uint) error
	DeleteNotification(notificationID, userID uint) error
}

type notificationService struct {
	repo repository.NotificationRepository
	hub  *websocket.Hub
}

// NewNotificationService 알림 서비스 생성자
func NewNotificationService(repo repository.NotificationRepository, hub *websocket.Hub) NotificationService {
	return &notificationService{
		repo: repo,
		hub:  hub,
	}
}

// GetNotifications 알림 목록 조회
func (s *notificationService) GetNotifications(userID uint, isRead *bool, page, pageSize int) ([]model.Notification, int64, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize

	notifications, total, err := s.repo.GetNotifications(userID, isRead, pageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	unreadCount, err := s.repo.GetUnreadCount(userID)
	if err != nil {
		return nil, 0, 0, err
	}

	return notifications, total, unreadCount, nil
}

// GetUnreadCount 안읽은 알림 개수 조회
func (s *notificationService) GetUnreadCount(userID uint) (int64, error) {
	return s.repo.GetUnreadCount(userID)
}

// MarkAsRead 알림 읽음 처리
func (s *notificationService) MarkAsRead(notificationID, userID uint) (*model.Notification, error) {
	notification, err := s.repo.GetNotificationByID(notificationID)
	if err != nil {
		return nil, ErrNotificationNotFound
	}

	if notification.UserID != userID {
		return nil, ErrPermissionDenied
	}

	if notification.IsRead {
		return notification, nil
	}

	if err := s.repo.MarkAsRead(notificationID); err != nil {
		return nil, err
	}

	notification.IsRead = true
	return notification, nil
}

// MarkAllAsRead 모든 알림 읽음 처리
func (s *notificationService) MarkAllAsRead(userID uint) error {
	return s.repo.MarkAllAsRead(userID)
}

// DeleteNotification 알림 삭제
func (s *notificationService) DeleteNotification(notificationID, userID uint) error {
	notification, err := s.repo.GetNotificationByID(notificationID)
	if err != nil {
		return ErrNotificationNotFound
	}

	if notification.UserID != userID {
		return ErrPermissionDenied
	}

	return s.repo.DeleteNotification(notificationID)
}

// NotifyReply 답글 알림
func (s *notificationService) NotifyReply(receiverID, senderID, commentID uint) {
	s.deliver(&model.Notification{
		UserID:           receiverID,
		Type:             model.NotificationTypeCommentReply,
		Title:            "내 댓글에 답글이 달렸어요",
		Content:          "",
		Link:             fmt.Sprintf("/comments/%d", commentID),
		RelatedCommentID: &commentID,
		RelatedUserID:    &senderID,
	})
}

// NotifyLike 좋아요 알림
func (s *notificationService) NotifyLike(receiverID, senderID, commentID uint) {
	s.deliver(&model.Notification{
		UserID:           receiverID,
		Type:             model.NotificationTypeCommentLike,
		Title:            "내 댓글에 좋아요가 눌렸어요",
		Content:          "",
		Link:             fmt.Sprintf("/comments/%d", commentID),
		RelatedCommentID: &commentID,
		RelatedUserID:    &senderID,
	})
}

// NotifyNewComment 내 은하/행성에 새 댓글 알림
func (s *notificationService) NotifyNewComment(receiverID, senderID uint, kind model.TargetKind, targetID, commentID uint) {
	var title, link string
	switch kind {
	case model.TargetGalaxy:
		title = "내 은하에 새 댓글이 달렸어요"
		link = fmt.Sprintf("/galaxies/%d", targetID)
	case model.TargetPlanet:
		title = "내 행성에 새 댓글이 달렸어요"
		link = fmt.Sprintf("/planets/%d", targetID)
	default:
		return
	}

	s.deliver(&model.Notification{
		UserID:           receiverID,
		Type:             model.NotificationTypeNewComment,
		Title:            title,
		Content:          "",
		Link:             link,
		RelatedCommentID: &commentID,
		RelatedUserID:    &senderID,
	})
}

// deliver 알림 저장 후 WebSocket으로 실시간 전송
// 실패해도 호출자에게 전파하지 않는다
func (s *notificationService) deliver(notification *model.Notification) {
	if err := s.repo.CreateNotification(notification); err != nil {
		logger.Error("Failed to create notification", err, map[string]interface{}{
			"user_id": notification.UserID,
			"type":    notification.Type,
		})
		return
	}

	if s.hub == nil {
		return
	}

	unreadCount, _ := s.repo.GetUnreadCount(notification.UserID)
	wsMessage := map[string]interface{}{
		"type":         "new_notification",
		"unread_count": unreadCount,
		"notification": notification,
	}
	if err := s.hub.SendNotificationToUser(notification.UserID, wsMessage); err != nil {
		logger.Warn("Failed to push notification over websocket", map[string]interface{}{
			"user_id": notification.UserID,
		})
	}
}
