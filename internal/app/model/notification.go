package model

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeCommentReply NotificationType = "comment_reply" // 내 댓글에 답글
	NotificationTypeCommentLike  NotificationType = "comment_like"  // 내 댓글에 좋아요
	NotificationTypeNewComment   NotificationType = "new_comment"   // 내 은하/행성에 새 댓글
)

// Notification 알림 모델
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 알림 받을 사용자
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// 알림 타입
	Type NotificationType `gorm:"type:varchar(50);not null;index" json:"type"`

	// 알림 내용
	Title   string `gorm:"type:text;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Link    string `gorm:"type:text;not null" json:"link"`

	// 상태
	IsRead bool `gorm:"default:false;index" json:"is_read"`

	// 관련 데이터 (nullable)
	RelatedCommentID *uint `gorm:"index" json:"related_comment_id,omitempty"`
	RelatedUserID    *uint `gorm:"index" json:"related_user_id,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationListQuery 알림 목록 조회 쿼리
type NotificationListQuery struct {
	IsRead   *bool `form:"is_read"`
	Page     int   `form:"page" binding:"min=1"`
	PageSize int   `form:"page_size" binding:"min=1,max=100"`
}
