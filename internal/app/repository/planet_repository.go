package repository

import (
	"fmt"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"gorm.io/gorm"
)

// PlanetRepository 행성 저장소 인터페이스
type PlanetRepository interface {
	Create(planet *model.Planet) error
	GetByID(id uint, preload bool) (*model.Planet, error)
	GetList(query *model.PlanetListQuery) ([]model.Planet, int64, error)
	Update(planet *model.Planet) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	GetOwnerIDs(id uint) (authorID uint, galaxyOwnerID uint, err error)
	IncrementViewCount(id uint) error
}

type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository 행성 저장소 생성자
func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &planetRepository{db: db}
}

// Create 행성 생성 (은하의 planet_count 증가 포함)
func (r *planetRepository) Create(planet *model.Planet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(planet).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Galaxy{}).
			Where("id = ?", planet.GalaxyID).
			UpdateColumn("planet_count", gorm.Expr("planet_count + ?", 1)).
			Error; err != nil {
			return err
		}

		// User 정보를 Preload하여 다시 조회
		return tx.Preload("User").First(planet, planet.ID).Error
	})
}

// GetByID 행성 ID로 조회
func (r *planetRepository) GetByID(id uint, preload bool) (*model.Planet, error) {
	var planet model.Planet
	query := r.db.Where("id = ?", id)

	if preload {
		query = query.Preload("User").Preload("Galaxy")
	}

	if err := query.First(&planet).Error; err != nil {
		return nil, err
	}

	return &planet, nil
}

// GetList 행성 목록 조회
func (r *planetRepository) GetList(query *model.PlanetListQuery) ([]model.Planet, int64, error) {
	var planets []model.Planet
	var total int64

	db := r.db.Model(&model.Planet{}).
		Preload("User").
		Where("status = ?", model.PlanetStatusActive)

	if query.GalaxyID != nil {
		db = db.Where("galaxy_id = ?", *query.GalaxyID)
	}
	if query.UserID != nil {
		db = db.Where("user_id = ?", *query.UserID)
	}
	if query.Search != nil && *query.Search != "" {
		searchTerm := "%" + *query.Search + "%"
		db = db.Where("title ILIKE ? OR content ILIKE ?", searchTerm, searchTerm)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	if query.SortBy != "" {
		sortBy = query.SortBy
	}
	sortOrder := "DESC"
	if query.SortOrder != "" {
		sortOrder = query.SortOrder
	}
	db = db.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	page := 1
	if query.Page > 0 {
		page = query.Page
	}
	pageSize := 20
	if query.PageSize > 0 {
		pageSize = query.PageSize
	}
	db = db.Offset((page - 1) * pageSize).Limit(pageSize)

	if err := db.Find(&planets).Error; err != nil {
		return nil, 0, err
	}

	return planets, total, nil
}

// Update 행성 수정
func (r *planetRepository) Update(planet *model.Planet) error {
	return r.db.Save(planet).Error
}

// Delete 행성 삭제 (상태 변경, 은하의 planet_count 감소 포함)
func (r *planetRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var planet model.Planet
		if err := tx.First(&planet, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Planet{}).
			Where("id = ?", id).
			Update("status", model.PlanetStatusDeleted).
			Error; err != nil {
			return err
		}

		return tx.Model(&model.Galaxy{}).
			Where("id = ? AND planet_count > 0", planet.GalaxyID).
			UpdateColumn("planet_count", gorm.Expr("planet_count - ?", 1)).
			Error
	})
}

// Exists 활성 행성 존재 여부 확인
func (r *planetRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Planet{}).
		Where("id = ? AND status = ?", id, model.PlanetStatusActive).
		Count(&count).Error
	return count > 0, err
}

// GetOwnerIDs 행성 작성자와 소속 은하 소유자 ID 조회
func (r *planetRepository) GetOwnerIDs(id uint) (uint, uint, error) {
	var planet model.Planet
	if err := r.db.Select("user_id", "galaxy_id").First(&planet, id).Error; err != nil {
		return 0, 0, err
	}

	var galaxy model.Galaxy
	if err := r.db.Select("owner_id").First(&galaxy, planet.GalaxyID).Error; err != nil {
		return 0, 0, err
	}

	return planet.UserID, galaxy.OwnerID, nil
}

// IncrementViewCount 조회수 증가
func (r *planetRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&model.Planet{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).
		Error
}
