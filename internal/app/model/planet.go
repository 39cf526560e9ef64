package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PlanetStatus 행성 상태
type PlanetStatus string

const (
	PlanetStatusActive  PlanetStatus = "active"  // 활성
	PlanetStatusDeleted PlanetStatus = "deleted" // 삭제됨
)

// Planet 행성 모델 (은하에 속한 지식 게시물)
type Planet struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 기본 정보
	Title   string       `gorm:"type:varchar(200);not null" json:"title"`         // 제목
	Content string       `gorm:"type:text;not null" json:"content"`               // 내용
	Status  PlanetStatus `gorm:"type:varchar(20);default:'active'" json:"status"` // 상태

	// 소속 은하
	GalaxyID uint   `gorm:"not null;index" json:"galaxy_id"` // 은하 ID
	Galaxy   Galaxy `gorm:"foreignKey:GalaxyID" json:"-"`

	// 작성자 정보
	UserID uint `gorm:"not null;index" json:"user_id"` // 작성자 ID
	User   User `gorm:"foreignKey:UserID" json:"user"`

	// 이미지
	ImageURLs pq.StringArray `gorm:"type:text[]" json:"image_urls,omitempty"` // 이미지 URL 배열

	// 통계
	ViewCount    int `gorm:"default:0" json:"view_count"`    // 조회수
	CommentCount int `gorm:"default:0" json:"comment_count"` // 댓글 수
}

func (Planet) TableName() string {
	return "planets"
}

// CreatePlanetRequest 행성 생성 요청
type CreatePlanetRequest struct {
	GalaxyID  uint     `json:"galaxy_id" binding:"required"`
	Title     string   `json:"title" binding:"required,min=2,max=200"`
	Content   string   `json:"content" binding:"required,min=1"`
	ImageURLs []string `json:"image_urls,omitempty"`
}

// UpdatePlanetRequest 행성 수정 요청
type UpdatePlanetRequest struct {
	Title     *string  `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Content   *string  `json:"content,omitempty" binding:"omitempty,min=1"`
	ImageURLs []string `json:"image_urls,omitempty"`
}

// PlanetListQuery 행성 목록 조회 쿼리
type PlanetListQuery struct {
	GalaxyID  *uint   `form:"galaxy_id"`
	UserID    *uint   `form:"user_id"`
	Search    *string `form:"search"` // 제목+내용 검색
	Page      int     `form:"page" binding:"min=1"`
	PageSize  int     `form:"page_size" binding:"min=1,max=100"`
	SortBy    string  `form:"sort_by" binding:"omitempty,oneof=created_at view_count comment_count"`
	SortOrder string  `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
