package model

import (
	"time"

	"gorm.io/gorm"
)

// GalaxyStatus 은하 상태
type GalaxyStatus string

const (
	GalaxyStatusActive  GalaxyStatus = "active"  // 활성
	GalaxyStatusDeleted GalaxyStatus = "deleted" // 삭제됨
)

// Galaxy 은하 모델 (주제별 커뮤니티 단위)
type Galaxy struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 기본 정보
	Name        string       `gorm:"type:varchar(100);uniqueIndex:idx_galaxies_name;not null" json:"name"` // 은하 이름
	Description string       `gorm:"type:text" json:"description"`                                         // 소개
	CoverImage  string       `json:"cover_image"`                                                          // 커버 이미지 URL
	Status      GalaxyStatus `gorm:"type:varchar(20);default:'active'" json:"status"`                      // 상태

	// 소유자 정보
	OwnerID uint `gorm:"not null;index" json:"owner_id"` // 소유자 ID
	Owner   User `gorm:"foreignKey:OwnerID" json:"owner"`

	// 통계
	PlanetCount  int `gorm:"default:0" json:"planet_count"`  // 행성 수
	CommentCount int `gorm:"default:0" json:"comment_count"` // 댓글 수 (은하에 직접 달린 댓글)
}

func (Galaxy) TableName() string {
	return "galaxies"
}

// CreateGalaxyRequest 은하 생성 요청
type CreateGalaxyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=2000"`
	CoverImage  string `json:"cover_image,omitempty"`
}

// UpdateGalaxyRequest 은하 수정 요청
type UpdateGalaxyRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	CoverImage  *string `json:"cover_image,omitempty"`
}

// GalaxyListQuery 은하 목록 조회 쿼리
type GalaxyListQuery struct {
	OwnerID   *uint   `form:"owner_id"`
	Search    *string `form:"search"` // 이름+소개 검색
	Page      int     `form:"page" binding:"min=1"`
	PageSize  int     `form:"page_size" binding:"min=1,max=100"`
	SortBy    string  `form:"sort_by" binding:"omitempty,oneof=created_at planet_count comment_count"`
	SortOrder string  `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
