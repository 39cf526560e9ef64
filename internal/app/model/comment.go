package model

import (
	"time"

	"gorm.io/gorm"
)

// TargetKind 댓글이 달리는 대상 종류
type TargetKind string

const (
	TargetGalaxy TargetKind = "galaxy" // 은하에 직접 달린 댓글
	TargetPlanet TargetKind = "planet" // 행성에 달린 댓글
)

// Valid 대상 종류 유효성 확인
func (k TargetKind) Valid() bool {
	return k == TargetGalaxy || k == TargetPlanet
}

// CommentStatus 댓글 상태
type CommentStatus string

const (
	CommentStatusActive  CommentStatus = "active"  // 활성
	CommentStatusPending CommentStatus = "pending" // 검토 대기 (목록에서 숨김)
	CommentStatusDeleted CommentStatus = "deleted" // 삭제됨 (하위 댓글까지 전파)
)

// 댓글 깊이/내용 제한
const (
	CommentMaxLevel      = 3    // 최대 표시 깊이 (이후는 평탄화)
	CommentMaxContentLen = 1000 // 내용 최대 길이 (rune 기준)
)

// Comment 댓글 모델 (은하/행성 공용)
//
// Level은 생성 시 min(부모.Level+1, 3)으로 계산되며 이후 변경되지 않는다.
// Level 3 밑으로는 더 내려가지 않고, 같은 2단계 조상을 공유하는 댓글들이
// 동일한 ParentID를 가진다. 누구에게 단 답글인지는 ReplyToUserID가 보존한다.
type Comment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 댓글 대상
	TargetKind TargetKind `gorm:"type:varchar(20);not null;index:idx_comments_target" json:"target_kind"` // 대상 종류
	TargetID   uint       `gorm:"not null;index:idx_comments_target" json:"target_id"`                    // 대상 ID

	// 댓글 기본 정보
	Content string        `gorm:"type:text;not null" json:"content"`                      // 댓글 내용
	Status  CommentStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`  // 상태

	// 작성자 정보
	UserID uint `gorm:"not null;index" json:"user_id"` // 작성자 ID
	User   User `gorm:"foreignKey:UserID" json:"user"` // 작성자 정보

	// 계층 구조
	Level    int  `gorm:"not null;default:1" json:"level"`             // 깊이 (1~3)
	ParentID uint `gorm:"not null;default:0;index" json:"parent_id"`   // 구조적 부모 ID (0 = 최상위)

	// 답글 대상 사용자 (평탄화 시 실제 대상 보존)
	ReplyToUserID *uint `gorm:"index" json:"reply_to_user_id,omitempty"`
	ReplyToUser   *User `gorm:"foreignKey:ReplyToUserID" json:"reply_to_user,omitempty"`

	// 통계 (음수 불가)
	LikeCount  int `gorm:"default:0" json:"like_count"`  // 좋아요 수
	ReplyCount int `gorm:"default:0" json:"reply_count"` // 활성 하위 댓글 수

	// 관계
	Likes []CommentLike `gorm:"foreignKey:CommentID" json:"-"` // 좋아요 목록
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike 댓글 좋아요 모델 (사용자당 댓글 하나에 1회)
type CommentLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CommentID uint `gorm:"not null;index:idx_comment_user_like,unique" json:"comment_id"` // 댓글 ID
	UserID    uint `gorm:"not null;index:idx_comment_user_like,unique" json:"user_id"`    // 사용자 ID

	Comment Comment `gorm:"foreignKey:CommentID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// CreateCommentRequest 댓글 생성 요청
type CreateCommentRequest struct {
	TargetKind    TargetKind `json:"target_kind" binding:"required,oneof=galaxy planet"`
	TargetID      uint       `json:"target_id" binding:"required"`
	Content       string     `json:"content" binding:"required"`
	ParentID      uint       `json:"parent_id,omitempty"`         // 0이면 최상위 댓글
	ReplyToUserID *uint      `json:"reply_to_user_id,omitempty"`  // 3단계 답글에서 대상 지정
}

// CommentListQuery 댓글 목록 조회 쿼리
type CommentListQuery struct {
	TargetKind TargetKind `form:"target_kind" binding:"required,oneof=galaxy planet"`
	TargetID   uint       `form:"target_id" binding:"required"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

// CommentView 댓글 응답 뷰 (중첩 답글 포함)
type CommentView struct {
	ID            uint           `json:"id"`
	TargetKind    TargetKind     `json:"target_kind"`
	TargetID      uint           `json:"target_id"`
	Content       string         `json:"content"`
	Level         int            `json:"level"`
	ParentID      uint           `json:"parent_id"`
	User          User           `json:"user"`
	ReplyToUserID *uint          `json:"reply_to_user_id,omitempty"`
	ReplyToUser   *User          `json:"reply_to_user,omitempty"`
	LikeCount     int            `json:"like_count"`
	ReplyCount    int            `json:"reply_count"`
	IsLiked       bool           `json:"is_liked"`
	CreatedAt     time.Time      `json:"created_at"`
	Replies       []*CommentView `json:"replies"` // 없으면 빈 배열
}
