package repository

import (
	"fmt"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"gorm.io/gorm"
)

// GalaxyRepository 은하 저장소 인터페이스
type GalaxyRepository interface {
	Create(galaxy *model.Galaxy) error
	GetByID(id uint, preload bool) (*model.Galaxy, error)
	GetList(query *model.GalaxyListQuery) ([]model.Galaxy, int64, error)
	Update(galaxy *model.Galaxy) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	GetOwnerID(id uint) (uint, error)
	BulkCreate(galaxies []model.Galaxy, batchSize int) error
}

type galaxyRepository struct {
	db *gorm.DB
}

// NewGalaxyRepository 은하 저장소 생성자
func NewGalaxyRepository(db *gorm.DB) GalaxyRepository {
	return &galaxyRepository{db: db}
}

// Create 은하 생성
func (r *galaxyRepository) Create(galaxy *model.Galaxy) error {
	if err := r.db.Create(galaxy).Error; err != nil {
		return err
	}

	// Owner 정보를 Preload하여 다시 조회
	return r.db.Preload("Owner").First(galaxy, galaxy.ID).Error
}

// GetByID 은하 ID로 조회
func (r *galaxyRepository) GetByID(id uint, preload bool) (*model.Galaxy, error) {
	var galaxy model.Galaxy
	query := r.db.Where("id = ?", id)

	if preload {
		query = query.Preload("Owner")
	}

	if err := query.First(&galaxy).Error; err != nil {
		return nil, err
	}

	return &galaxy, nil
}

// GetList 은하 목록 조회
func (r *galaxyRepository) GetList(query *model.GalaxyListQuery) ([]model.Galaxy, int64, error) {
	var galaxies []model.Galaxy
	var total int64

	db := r.db.Model(&model.Galaxy{}).
		Preload("Owner").
		Where("status = ?", model.GalaxyStatusActive)

	if query.OwnerID != nil {
		db = db.Where("owner_id = ?", *query.OwnerID)
	}
	if query.Search != nil && *query.Search != "" {
		searchTerm := "%" + *query.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
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

	if err := db.Find(&galaxies).Error; err != nil {
		return nil, 0, err
	}

	return galaxies, total, nil
}

// Update 은하 수정
func (r *galaxyRepository) Update(galaxy *model.Galaxy) error {
	return r.db.Save(galaxy).Error
}

// Delete 은하 삭제 (상태 변경)
func (r *galaxyRepository) Delete(id uint) error {
	return r.db.Model(&model.Galaxy{}).
		Where("id = ?", id).
		Update("status", model.GalaxyStatusDeleted).Error
}

// Exists 활성 은하 존재 여부 확인
func (r *galaxyRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Galaxy{}).
		Where("id = ? AND status = ?", id, model.GalaxyStatusActive).
		Count(&count).Error
	return count > 0, err
}

// BulkCreate 은하 일괄 생성 (시드 데이터 가져오기용)
func (r *galaxyRepository) BulkCreate(galaxies []model.Galaxy, batchSize int) error {
	return r.db.CreateInBatches(galaxies, batchSize).Error
}

// GetOwnerID 은하 소유자 ID 조회
func (r *galaxyRepository) GetOwnerID(id uint) (uint, error) {
	var galaxy model.Galaxy
	if err := r.db.Select("owner_id").First(&galaxy, id).Error; err != nil {
		return 0, err
	}
	return galaxy.OwnerID, nil
}
