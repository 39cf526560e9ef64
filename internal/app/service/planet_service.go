package service

import (
	"errors"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPlanetNotFound = errors.New("planet not found")
)

// PlanetService 행성 서비스 인터페이스
type PlanetService interface {
	Create(req *model.CreatePlanetRequest, userID uint) (*model.Planet, error)
	GetByID(id uint) (*model.Planet, error)
	GetList(query *model.PlanetListQuery) ([]model.Planet, int64, error)
	Update(id uint, req *model.UpdatePlanetRequest, userID uint, userRole model.UserRole) (*model.Planet, error)
	Delete(id uint, userID uint, userRole model.UserRole) error
}

type planetService struct {
	repo       repository.PlanetRepository
	galaxyRepo repository.GalaxyRepository
}

// NewPlanetService 행성 서비스 생성자
func NewPlanetService(repo repository.PlanetRepository, galaxyRepo repository.GalaxyRepository) PlanetService {
	return &planetService{
		repo:       repo,
		galaxyRepo: galaxyRepo,
	}
}

// Create 행성 생성 (소속 은하가 활성 상태여야 함)
func (s *planetService) Create(req *model.CreatePlanetRequest, userID uint) (*model.Planet, error) {
	exists, err := s.galaxyRepo.Exists(req.GalaxyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGalaxyNotFound
	}

	planet := &model.Planet{
		GalaxyID:  req.GalaxyID,
		Title:     req.Title,
		Content:   req.Content,
		UserID:    userID,
		ImageURLs: req.ImageURLs,
		Status:    model.PlanetStatusActive,
	}

	if err := s.repo.Create(planet); err != nil {
		return nil, err
	}
	return planet, nil
}

// GetByID 행성 조회 (조회수 증가 포함)
func (s *planetService) GetByID(id uint) (*model.Planet, error) {
	planet, err := s.repo.GetByID(id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}
	if planet.Status == model.PlanetStatusDeleted {
		return nil, ErrPlanetNotFound
	}

	// 조회수 증가 실패는 무시
	if err := s.repo.IncrementViewCount(id); err != nil {
		logger.Warn("Failed to increment view count", map[string]interface{}{
			"planet_id": id,
		})
	}

	return planet, nil
}

// GetList 행성 목록 조회
func (s *planetService) GetList(query *model.PlanetListQuery) ([]model.Planet, int64, error) {
	return s.repo.GetList(query)
}

// Update 행성 수정 (작성자 또는 관리자)
func (s *planetService) Update(id uint, req *model.UpdatePlanetRequest, userID uint, userRole model.UserRole) (*model.Planet, error) {
	planet, err := s.repo.GetByID(id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}
	if planet.Status == model.PlanetStatusDeleted {
		return nil, ErrPlanetNotFound
	}

	if planet.UserID != userID && userRole != model.RoleAdmin {
		return nil, ErrPermissionDenied
	}

	if req.Title != nil {
		planet.Title = *req.Title
	}
	if req.Content != nil {
		planet.Content = *req.Content
	}
	if req.ImageURLs != nil {
		planet.ImageURLs = req.ImageURLs
	}

	if err := s.repo.Update(planet); err != nil {
		return nil, err
	}
	return planet, nil
}

// Delete 행성 삭제 (작성자, 은하 소유자 또는 관리자)
func (s *planetService) Delete(id uint, userID uint, userRole model.UserRole) error {
	planet, err := s.repo.GetByID(id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlanetNotFound
		}
		return err
	}
	if planet.Status == model.PlanetStatusDeleted {
		return ErrPlanetNotFound
	}

	if planet.UserID != userID && userRole != model.RoleAdmin {
		galaxyOwnerID, err := s.galaxyRepo.GetOwnerID(planet.GalaxyID)
		if err != nil || galaxyOwnerID != userID {
			return ErrPermissionDenied
		}
	}

	return s.repo.Delete(id)
}
