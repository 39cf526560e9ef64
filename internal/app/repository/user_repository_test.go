package repository

import (
	"testing"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewUserRepository(testDB)
	return testDB, repo
}

func TestUserRepository_Create(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name: "Valid user",
			user: &model.User{
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Nickname:     "별보는사람",
				Role:         model.RoleUser,
				Status:       model.UserStatusActive,
			},
			wantErr: false,
		},
		{
			name: "Duplicate email",
			user: &model.User{
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Nickname:     "다른닉네임",
				Role:         model.RoleUser,
				Status:       model.UserStatusActive,
			},
			wantErr: true,
		},
		{
			name: "Duplicate nickname",
			user: &model.User{
				Email:        "other@example.com",
				PasswordHash: "hashedpassword",
				Nickname:     "별보는사람",
				Role:         model.RoleUser,
				Status:       model.UserStatusActive,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Nickname:     "별보는사람",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      uint
		wantErr bool
	}{
		{
			name:    "Existing user",
			id:      user.ID,
			wantErr: false,
		},
		{
			name:    "Non-existing user",
			id:      9999,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, user.Email, found.Email)
				assert.Equal(t, user.Nickname, found.Nickname)
			}
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Nickname:     "별보는사람",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "Existing email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "Non-existing email",
			email:   "notfound@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByEmail(tt.email)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, user.Email, found.Email)
			}
		})
	}
}

func TestUserRepository_FindByNickname(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Nickname:     "별보는사람",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByNickname("별보는사람")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByNickname("없는닉네임")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Nickname:     "별보는사람",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	user.Nickname = "은하여행자"
	user.Bio = "안드로메다에서 왔습니다"

	err = repo.Update(user)
	assert.NoError(t, err)

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "은하여행자", updated.Nickname)
	assert.Equal(t, "안드로메다에서 왔습니다", updated.Bio)
}

func TestUserRepository_Delete(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Nickname:     "별보는사람",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	err = repo.Delete(user.ID)
	assert.NoError(t, err)

	// soft delete이므로 조회되지 않아야 함
	_, err = repo.FindByID(user.ID)
	assert.Error(t, err)
}
