package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupCommentTest 댓글 테스트 공통 픽스처 (사용자 2명, 은하 1개, 행성 1개)
func setupCommentTest(t *testing.T) (*gorm.DB, CommentRepository, *model.User, *model.User, *model.Galaxy, *model.Planet) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	author := &model.User{
		Email:        "author@example.com",
		PasswordHash: "hashed",
		Nickname:     "작성자",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	require.NoError(t, testDB.Create(author).Error)

	other := &model.User{
		Email:        "other@example.com",
		PasswordHash: "hashed",
		Nickname:     "다른사람",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	}
	require.NoError(t, testDB.Create(other).Error)

	galaxy := &model.Galaxy{
		Name:    "안드로메다",
		OwnerID: author.ID,
		Status:  model.GalaxyStatusActive,
	}
	require.NoError(t, testDB.Create(galaxy).Error)

	planet := &model.Planet{
		GalaxyID: galaxy.ID,
		Title:    "첫 행성",
		Content:  "본문",
		UserID:   author.ID,
		Status:   model.PlanetStatusActive,
	}
	require.NoError(t, testDB.Create(planet).Error)

	repo := NewCommentRepository(testDB)
	return testDB, repo, author, other, galaxy, planet
}

// newComment 테스트용 댓글 생성 헬퍼
// created_at을 명시해 정렬이 결정적이 되도록 한다
func newComment(userID uint, kind model.TargetKind, targetID uint, level int, parentID uint, at time.Time) *model.Comment {
	return &model.Comment{
		TargetKind: kind,
		TargetID:   targetID,
		Content:    "댓글 내용",
		Status:     model.CommentStatusActive,
		UserID:     userID,
		Level:      level,
		ParentID:   parentID,
		CreatedAt:  at,
	}
}

func TestCommentRepository_Create(t *testing.T) {
	testDB, repo, author, _, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now()

	root := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(root))
	assert.NotZero(t, root.ID)
	assert.Equal(t, author.Nickname, root.User.Nickname)

	// 컨테이너 댓글 수 증가 확인
	var updatedPlanet model.Planet
	require.NoError(t, testDB.First(&updatedPlanet, planet.ID).Error)
	assert.Equal(t, 1, updatedPlanet.CommentCount)

	// 답글 생성 시 부모 reply_count 증가
	reply := newComment(author.ID, model.TargetPlanet, planet.ID, 2, root.ID, base.Add(time.Second))
	require.NoError(t, repo.Create(reply))

	var updatedRoot model.Comment
	require.NoError(t, testDB.First(&updatedRoot, root.ID).Error)
	assert.Equal(t, 1, updatedRoot.ReplyCount)

	require.NoError(t, testDB.First(&updatedPlanet, planet.ID).Error)
	assert.Equal(t, 2, updatedPlanet.CommentCount)
}

func TestCommentRepository_Create_GalaxyTarget(t *testing.T) {
	testDB, repo, author, _, galaxy, _ := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	root := newComment(author.ID, model.TargetGalaxy, galaxy.ID, 1, 0, time.Now())
	require.NoError(t, repo.Create(root))

	var updatedGalaxy model.Galaxy
	require.NoError(t, testDB.First(&updatedGalaxy, galaxy.ID).Error)
	assert.Equal(t, 1, updatedGalaxy.CommentCount)
}

func TestCommentRepository_GetRootPage(t *testing.T) {
	testDB, repo, author, _, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now().Add(-time.Hour)

	// 최상위 5개 + 답글 1개 + 삭제 1개
	var roots []*model.Comment
	for i := 0; i < 5; i++ {
		c := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(c))
		roots = append(roots, c)
	}

	reply := newComment(author.ID, model.TargetPlanet, planet.ID, 2, roots[0].ID, base.Add(10*time.Minute))
	require.NoError(t, repo.Create(reply))

	deleted := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base.Add(20*time.Minute))
	require.NoError(t, repo.Create(deleted))
	require.NoError(t, testDB.Model(deleted).Update("status", model.CommentStatusDeleted).Error)

	// 1페이지 (최신순)
	page1, total, err := repo.GetRootPage(model.TargetPlanet, planet.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 3)
	assert.Equal(t, roots[4].ID, page1[0].ID)
	assert.Equal(t, roots[3].ID, page1[1].ID)
	assert.Equal(t, roots[2].ID, page1[2].ID)

	// 2페이지 - 중복 없이 이어짐
	page2, _, err := repo.GetRootPage(model.TargetPlanet, planet.ID, 2, 3)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, roots[1].ID, page2[0].ID)
	assert.Equal(t, roots[0].ID, page2[1].ID)

	seen := make(map[uint]bool)
	for _, c := range append(page1, page2...) {
		assert.False(t, seen[c.ID], "comment %d appeared twice", c.ID)
		seen[c.ID] = true
	}
}

func TestCommentRepository_GetChildren(t *testing.T) {
	testDB, repo, author, _, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now().Add(-time.Hour)

	root := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(root))

	// 답글은 작성순으로 반환된다
	var replies []*model.Comment
	for i := 0; i < 3; i++ {
		c := newComment(author.ID, model.TargetPlanet, planet.ID, 2, root.ID, base.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, repo.Create(c))
		replies = append(replies, c)
	}

	// 삭제된 답글은 제외
	require.NoError(t, testDB.Model(replies[1]).Update("status", model.CommentStatusDeleted).Error)

	children, err := repo.GetChildren([]uint{root.ID})
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, replies[0].ID, children[0].ID)
	assert.Equal(t, replies[2].ID, children[1].ID)

	// 빈 입력은 빈 결과
	empty, err := repo.GetChildren(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentRepository_ToggleLike(t *testing.T) {
	testDB, repo, author, other, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	comment := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, time.Now())
	require.NoError(t, repo.Create(comment))

	// 홀수 번째 토글은 좋아요, 짝수 번째는 취소
	for i := 0; i < 4; i++ {
		liked, err := repo.ToggleLike(comment.ID, other.ID)
		require.NoError(t, err)

		var c model.Comment
		require.NoError(t, testDB.First(&c, comment.ID).Error)

		if i%2 == 0 {
			assert.True(t, liked)
			assert.Equal(t, 1, c.LikeCount)
		} else {
			assert.False(t, liked)
			assert.Equal(t, 0, c.LikeCount)
		}
	}

	// 서로 다른 사용자의 좋아요는 독립적
	liked, err := repo.ToggleLike(comment.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.ToggleLike(comment.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	var c model.Comment
	require.NoError(t, testDB.First(&c, comment.ID).Error)
	assert.Equal(t, 2, c.LikeCount)
}

func TestCommentRepository_GetLikedSet(t *testing.T) {
	testDB, repo, author, other, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now()
	var ids []uint
	for i := 0; i < 3; i++ {
		c := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Create(c))
		ids = append(ids, c.ID)
	}

	_, err := repo.ToggleLike(ids[0], other.ID)
	require.NoError(t, err)
	_, err = repo.ToggleLike(ids[2], other.ID)
	require.NoError(t, err)

	liked, err := repo.GetLikedSet(other.ID, ids)
	require.NoError(t, err)
	assert.True(t, liked[ids[0]])
	assert.False(t, liked[ids[1]])
	assert.True(t, liked[ids[2]])

	// 빈 입력은 빈 집합
	empty, err := repo.GetLikedSet(other.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentRepository_DeleteCascade(t *testing.T) {
	testDB, repo, author, _, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now().Add(-time.Hour)

	// 3단계 트리 구성: root > mid > leaf1, leaf2
	root := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(root))

	mid := newComment(author.ID, model.TargetPlanet, planet.ID, 2, root.ID, base.Add(time.Minute))
	require.NoError(t, repo.Create(mid))

	leaf1 := newComment(author.ID, model.TargetPlanet, planet.ID, 3, mid.ID, base.Add(2*time.Minute))
	require.NoError(t, repo.Create(leaf1))

	leaf2 := newComment(author.ID, model.TargetPlanet, planet.ID, 3, mid.ID, base.Add(3*time.Minute))
	require.NoError(t, repo.Create(leaf2))

	// mid 삭제 → leaf까지 전부 삭제, root.reply_count는 1만 감소
	deleted, err := repo.DeleteCascade(mid.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	for _, id := range []uint{mid.ID, leaf1.ID, leaf2.ID} {
		var c model.Comment
		require.NoError(t, testDB.First(&c, id).Error)
		assert.Equal(t, model.CommentStatusDeleted, c.Status, "comment %d should be deleted", id)
	}

	var updatedRoot model.Comment
	require.NoError(t, testDB.First(&updatedRoot, root.ID).Error)
	assert.Equal(t, model.CommentStatusActive, updatedRoot.Status)
	assert.Equal(t, 0, updatedRoot.ReplyCount)

	// 컨테이너 댓글 수는 삭제된 만큼 감소 (4 - 3 = 1)
	var updatedPlanet model.Planet
	require.NoError(t, testDB.First(&updatedPlanet, planet.ID).Error)
	assert.Equal(t, 1, updatedPlanet.CommentCount)

	// reply_count와 실제 활성 하위 댓글 수가 일치해야 함
	activeChildren, err := repo.CountActiveChildren(root.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(updatedRoot.ReplyCount), activeChildren)

	// 두 번째 삭제는 NotFound
	_, err = repo.DeleteCascade(mid.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentRepository_DeleteCascade_Root(t *testing.T) {
	testDB, repo, author, _, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now().Add(-time.Hour)

	root := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(root))

	// 같은 부모를 공유하는 평탄화된 3단계 답글들
	mid := newComment(author.ID, model.TargetPlanet, planet.ID, 2, root.ID, base.Add(time.Minute))
	require.NoError(t, repo.Create(mid))
	for i := 0; i < 3; i++ {
		leaf := newComment(author.ID, model.TargetPlanet, planet.ID, 3, mid.ID, base.Add(time.Duration(i+2)*time.Minute))
		require.NoError(t, repo.Create(leaf))
	}

	deleted, err := repo.DeleteCascade(root.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)

	var remaining int64
	require.NoError(t, testDB.Model(&model.Comment{}).
		Where("status = ?", model.CommentStatusActive).
		Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)

	var updatedPlanet model.Planet
	require.NoError(t, testDB.First(&updatedPlanet, planet.ID).Error)
	assert.Equal(t, 0, updatedPlanet.CommentCount)
}

func TestCommentRepository_PurgeDeletedBefore(t *testing.T) {
	testDB, repo, author, other, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now()

	// 오래 전 삭제된 댓글 (좋아요 포함)
	old := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base.Add(-48*time.Hour))
	require.NoError(t, repo.Create(old))
	_, err := repo.ToggleLike(old.ID, other.ID)
	require.NoError(t, err)

	_, err = repo.DeleteCascade(old.ID)
	require.NoError(t, err)
	require.NoError(t, testDB.Model(&model.Comment{}).
		Where("id = ?", old.ID).
		UpdateColumn("updated_at", base.Add(-48*time.Hour)).Error)

	// 방금 삭제된 댓글은 보존 기간 내
	recent := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(recent))
	_, err = repo.DeleteCascade(recent.ID)
	require.NoError(t, err)

	// 활성 댓글은 건드리지 않음
	active := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(active))

	purged, err := repo.PurgeDeletedBefore(base.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var count int64
	require.NoError(t, testDB.Unscoped().Model(&model.Comment{}).
		Where("id = ?", old.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "purged comment should be physically removed")

	require.NoError(t, testDB.Model(&model.CommentLike{}).
		Where("comment_id = ?", old.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "likes of purged comment should be removed")

	require.NoError(t, testDB.Unscoped().Model(&model.Comment{}).
		Where("id IN ?", []uint{recent.ID, active.ID}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCommentRepository_GetRootPage_SeparateTargets(t *testing.T) {
	testDB, repo, author, _, galaxy, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now()

	// 같은 ID 공간을 쓰더라도 대상 종류가 다르면 분리되어야 함
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(newComment(author.ID, model.TargetGalaxy, galaxy.ID, 1, 0, base.Add(time.Duration(i)*time.Second))))
	}
	require.NoError(t, repo.Create(newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base.Add(10*time.Second))))

	galaxyComments, galaxyTotal, err := repo.GetRootPage(model.TargetGalaxy, galaxy.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), galaxyTotal)
	for _, c := range galaxyComments {
		assert.Equal(t, model.TargetGalaxy, c.TargetKind)
	}

	_, planetTotal, err := repo.GetRootPage(model.TargetPlanet, planet.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), planetTotal)
}

// 대량 트리에서도 두 번의 탐색으로 전부 삭제되는지 확인
func TestCommentRepository_DeleteCascade_WideTree(t *testing.T) {
	testDB, repo, author, _, _, planet := setupCommentTest(t)
	defer db.CleanupTestDB(testDB)

	base := time.Now().Add(-time.Hour)

	root := newComment(author.ID, model.TargetPlanet, planet.ID, 1, 0, base)
	require.NoError(t, repo.Create(root))

	total := int64(1)
	for i := 0; i < 5; i++ {
		mid := newComment(author.ID, model.TargetPlanet, planet.ID, 2, root.ID, base.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, repo.Create(mid))
		total++
		for j := 0; j < 4; j++ {
			leaf := newComment(author.ID, model.TargetPlanet, planet.ID, 3, mid.ID,
				base.Add(time.Duration(i+1)*time.Minute+time.Duration(j+1)*time.Second))
			require.NoError(t, repo.Create(leaf))
			total++
		}
	}

	deleted, err := repo.DeleteCascade(root.ID)
	require.NoError(t, err)
	assert.Equal(t, total, deleted, fmt.Sprintf("expected %d comments deleted", total))

	var remaining int64
	require.NoError(t, testDB.Model(&model.Comment{}).
		Where("status = ?", model.CommentStatusActive).
		Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)
}
