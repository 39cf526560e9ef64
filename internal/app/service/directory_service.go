package service

import (
	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/pkg/logger"
)

// directoryService 댓글 엔진이 쓰는 UserDirectory/ContainerDirectory 구현.
// 사용자/은하/행성 저장소를 묶어 존재 여부와 권한만 답한다.
type directoryService struct {
	userRepo   repository.UserRepository
	galaxyRepo repository.GalaxyRepository
	planetRepo repository.PlanetRepository
}

// NewDirectoryService 디렉터리 서비스 생성자
func NewDirectoryService(
	userRepo repository.UserRepository,
	galaxyRepo repository.GalaxyRepository,
	planetRepo repository.PlanetRepository,
) *directoryService {
	return &directoryService{
		userRepo:   userRepo,
		galaxyRepo: galaxyRepo,
		planetRepo: planetRepo,
	}
}

// UserExists 사용자 존재 여부 확인
func (s *directoryService) UserExists(id uint) bool {
	_, err := s.userRepo.FindByID(id)
	return err == nil
}

// IsBanned 사용자 정지 여부 확인
func (s *directoryService) IsBanned(id uint) bool {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return false
	}
	return user.Status == model.UserStatusBanned
}

// ContainerExists 활성 컨테이너 존재 여부 확인
func (s *directoryService) ContainerExists(kind model.TargetKind, id uint) bool {
	var exists bool
	var err error

	switch kind {
	case model.TargetGalaxy:
		exists, err = s.galaxyRepo.Exists(id)
	case model.TargetPlanet:
		exists, err = s.planetRepo.Exists(id)
	default:
		return false
	}

	if err != nil {
		logger.Error("Failed to check container existence", err, map[string]interface{}{
			"target_kind": kind,
			"target_id":   id,
		})
		return false
	}
	return exists
}

// ContainerOwner 컨테이너 소유자 조회
// 행성은 작성자를 소유자로 본다
func (s *directoryService) ContainerOwner(kind model.TargetKind, id uint) (uint, bool) {
	switch kind {
	case model.TargetGalaxy:
		ownerID, err := s.galaxyRepo.GetOwnerID(id)
		if err != nil {
			return 0, false
		}
		return ownerID, true
	case model.TargetPlanet:
		authorID, _, err := s.planetRepo.GetOwnerIDs(id)
		if err != nil {
			return 0, false
		}
		return authorID, true
	}
	return 0, false
}

// CanModerate 컨테이너 관리 권한 확인
// 관리자, 은하 소유자, (행성이면) 행성 작성자가 관리할 수 있다
func (s *directoryService) CanModerate(userID uint, kind model.TargetKind, id uint) bool {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}

	switch kind {
	case model.TargetGalaxy:
		ownerID, err := s.galaxyRepo.GetOwnerID(id)
		if err != nil {
			return false
		}
		return ownerID == userID
	case model.TargetPlanet:
		authorID, galaxyOwnerID, err := s.planetRepo.GetOwnerIDs(id)
		if err != nil {
			return false
		}
		return authorID == userID || galaxyOwnerID == userID
	}
	return false
}
