package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string // 사용자 권한 타입

const (
	RoleUser  UserRole = "user"  // 일반 사용자 권한
	RoleAdmin UserRole = "admin" // 관리자 권한
)

type UserStatus string // 사용자 상태 타입

const (
	UserStatusActive UserStatus = "active" // 정상
	UserStatusBanned UserStatus = "banned" // 정지 (댓글 작성 불가)
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                            // 사용자 ID
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`               // 이메일
	PasswordHash string         `gorm:"not null" json:"-"`                               // 비밀번호 해시
	Nickname     string         `gorm:"uniqueIndex;not null" json:"nickname"`            // 닉네임 (자동 생성, 수정 가능)
	ProfileImage string         `json:"profile_image"`                                   // 프로필 이미지 URL
	Bio          string         `gorm:"type:text" json:"bio"`                            // 소개글
	Role         UserRole       `gorm:"type:varchar(20);default:'user'" json:"role"`     // 권한
	Status       UserStatus     `gorm:"type:varchar(20);default:'active'" json:"status"` // 상태
	CreatedAt    time.Time      `json:"created_at"`                                      // 생성 시각
	UpdatedAt    time.Time      `json:"updated_at"`                                      // 수정 시각
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                  // 삭제 시각(소프트 삭제)
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname" binding:"omitempty,min=2,max=20"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest 프로필 수정 요청
type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname,omitempty" binding:"omitempty,min=2,max=20"`
	ProfileImage *string `json:"profile_image,omitempty"`
	Bio          *string `json:"bio,omitempty" binding:"omitempty,max=500"`
}
