package repository

import (
	"testing"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupGalaxyTest(t *testing.T) (*gorm.DB, GalaxyRepository, *model.User) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	owner := &model.User{
		Email:        "owner@example.com",
		PasswordHash: "hashedpassword",
		Nickname:     "은하지기",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	require.NoError(t, testDB.Create(owner).Error)

	return testDB, NewGalaxyRepository(testDB), owner
}

func TestGalaxyRepository_Create(t *testing.T) {
	_, repo, owner := setupGalaxyTest(t)

	galaxy := &model.Galaxy{
		Name:        "안드로메다",
		Description: "가장 가까운 이웃 은하",
		OwnerID:     owner.ID,
		Status:      model.GalaxyStatusActive,
	}

	err := repo.Create(galaxy)
	require.NoError(t, err)
	assert.NotZero(t, galaxy.ID)
	// Owner가 Preload되어야 함
	assert.Equal(t, owner.Nickname, galaxy.Owner.Nickname)

	// 이름 중복은 실패
	dup := &model.Galaxy{
		Name:    "안드로메다",
		OwnerID: owner.ID,
		Status:  model.GalaxyStatusActive,
	}
	assert.Error(t, repo.Create(dup))
}

func TestGalaxyRepository_GetByID(t *testing.T) {
	_, repo, owner := setupGalaxyTest(t)

	galaxy := &model.Galaxy{Name: "안드로메다", OwnerID: owner.ID, Status: model.GalaxyStatusActive}
	require.NoError(t, repo.Create(galaxy))

	found, err := repo.GetByID(galaxy.ID, true)
	require.NoError(t, err)
	assert.Equal(t, galaxy.Name, found.Name)
	assert.Equal(t, owner.Nickname, found.Owner.Nickname)

	_, err = repo.GetByID(9999, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGalaxyRepository_GetList(t *testing.T) {
	_, repo, owner := setupGalaxyTest(t)

	for _, name := range []string{"안드로메다", "소용돌이", "솜브레로"} {
		require.NoError(t, repo.Create(&model.Galaxy{
			Name:    name,
			OwnerID: owner.ID,
			Status:  model.GalaxyStatusActive,
		}))
	}
	// 삭제된 은하는 목록에서 제외
	deleted := &model.Galaxy{Name: "삭제된은하", OwnerID: owner.ID, Status: model.GalaxyStatusActive}
	require.NoError(t, repo.Create(deleted))
	require.NoError(t, repo.Delete(deleted.ID))

	galaxies, total, err := repo.GetList(&model.GalaxyListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, galaxies, 3)

	t.Run("Filter by owner", func(t *testing.T) {
		other := uint(9999)
		galaxies, total, err := repo.GetList(&model.GalaxyListQuery{OwnerID: &other})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, galaxies)
	})
}

func TestGalaxyRepository_Delete(t *testing.T) {
	_, repo, owner := setupGalaxyTest(t)

	galaxy := &model.Galaxy{Name: "안드로메다", OwnerID: owner.ID, Status: model.GalaxyStatusActive}
	require.NoError(t, repo.Create(galaxy))

	require.NoError(t, repo.Delete(galaxy.ID))

	// 상태 변경이므로 직접 조회는 가능하지만 Exists는 false
	found, err := repo.GetByID(galaxy.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.GalaxyStatusDeleted, found.Status)

	exists, err := repo.Exists(galaxy.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGalaxyRepository_GetOwnerID(t *testing.T) {
	_, repo, owner := setupGalaxyTest(t)

	galaxy := &model.Galaxy{Name: "안드로메다", OwnerID: owner.ID, Status: model.GalaxyStatusActive}
	require.NoError(t, repo.Create(galaxy))

	ownerID, err := repo.GetOwnerID(galaxy.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, ownerID)
}

func TestGalaxyRepository_BulkCreate(t *testing.T) {
	_, repo, owner := setupGalaxyTest(t)

	galaxies := make([]model.Galaxy, 10)
	for i := range galaxies {
		galaxies[i] = model.Galaxy{
			Name:    "은하" + string(rune('A'+i)),
			OwnerID: owner.ID,
			Status:  model.GalaxyStatusActive,
		}
	}

	require.NoError(t, repo.BulkCreate(galaxies, 3))

	_, total, err := repo.GetList(&model.GalaxyListQuery{Page: 1, PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}
