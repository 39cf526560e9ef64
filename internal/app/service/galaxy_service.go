package service

import (
	"errors"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrGalaxyNotFound = errors.New("galaxy not found")
)

// GalaxyService 은하 서비스 인터페이스
type GalaxyService interface {
	Create(req *model.CreateGalaxyRequest, ownerID uint) (*model.Galaxy, error)
	GetByID(id uint) (*model.Galaxy, error)
	GetList(query *model.GalaxyListQuery) ([]model.Galaxy, int64, error)
	Update(id uint, req *model.UpdateGalaxyRequest, userID uint, userRole model.UserRole) (*model.Galaxy, error)
	Delete(id uint, userID uint, userRole model.UserRole) error
}

type galaxyService struct {
	repo repository.GalaxyRepository
}

// NewGalaxyService 은하 서비스 생성자
func NewGalaxyService(repo repository.GalaxyRepository) GalaxyService {
	return &galaxyService{repo: repo}
}

// Create 은하 생성
func (s *galaxyService) Create(req *model.CreateGalaxyRequest, ownerID uint) (*model.Galaxy, error) {
	galaxy := &model.Galaxy{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		OwnerID:     ownerID,
		Status:      model.GalaxyStatusActive,
	}

	if err := s.repo.Create(galaxy); err != nil {
		return nil, err
	}
	return galaxy, nil
}

// GetByID 은하 조회
func (s *galaxyService) GetByID(id uint) (*model.Galaxy, error) {
	galaxy, err := s.repo.GetByID(id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalaxyNotFound
		}
		return nil, err
	}
	if galaxy.Status == model.GalaxyStatusDeleted {
		return nil, ErrGalaxyNotFound
	}
	return galaxy, nil
}

// GetList 은하 목록 조회
func (s *galaxyService) GetList(query *model.GalaxyListQuery) ([]model.Galaxy, int64, error) {
	return s.repo.GetList(query)
}

// Update 은하 수정 (소유자 또는 관리자)
func (s *galaxyService) Update(id uint, req *model.UpdateGalaxyRequest, userID uint, userRole model.UserRole) (*model.Galaxy, error) {
	galaxy, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if galaxy.OwnerID != userID && userRole != model.RoleAdmin {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		galaxy.Name = *req.Name
	}
	if req.Description != nil {
		galaxy.Description = *req.Description
	}
	if req.CoverImage != nil {
		galaxy.CoverImage = *req.CoverImage
	}

	if err := s.repo.Update(galaxy); err != nil {
		return nil, err
	}
	return galaxy, nil
}

// Delete 은하 삭제 (소유자 또는 관리자)
func (s *galaxyService) Delete(id uint, userID uint, userRole model.UserRole) error {
	galaxy, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if galaxy.OwnerID != userID && userRole != model.RoleAdmin {
		return ErrPermissionDenied
	}

	return s.repo.Delete(id)
}
