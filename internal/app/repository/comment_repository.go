package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"gorm.io/gorm"
)

// errLikeRaceLost 좋아요 생성 중 unique constraint 충돌 (동시 요청)
// 트랜잭션을 롤백시키되 호출자에게는 "이미 좋아요 상태"로 처리됨
var errLikeRaceLost = errors.New("comment like race lost")

// CommentRepository 댓글 저장소 인터페이스 (은하/행성 공용)
type CommentRepository interface {
	Create(comment *model.Comment) error
	GetByID(id uint) (*model.Comment, error)
	GetRootPage(kind model.TargetKind, targetID uint, page, pageSize int) ([]model.Comment, int64, error)
	GetChildren(parentIDs []uint) ([]model.Comment, error)
	GetLikedSet(userID uint, commentIDs []uint) (map[uint]bool, error)
	ToggleLike(commentID, userID uint) (bool, error)
	DeleteCascade(id uint) (int64, error)
	CountActiveChildren(parentID uint) (int64, error)
	PurgeDeletedBefore(cutoff time.Time) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 댓글 저장소 생성자
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// containerTable 대상 종류에 따른 컨테이너 테이블 이름
func containerTable(kind model.TargetKind) string {
	if kind == model.TargetGalaxy {
		return model.Galaxy{}.TableName()
	}
	return model.Planet{}.TableName()
}

// Create 댓글 생성
// 댓글 삽입, 구조적 부모의 reply_count 증가, 컨테이너의 comment_count 증가를
// 하나의 트랜잭션으로 처리한다
func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		// 부모 댓글의 활성 하위 댓글 수 증가
		if comment.ParentID != 0 {
			if err := tx.Model(&model.Comment{}).
				Where("id = ?", comment.ParentID).
				UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).
				Error; err != nil {
				return err
			}
		}

		// 컨테이너(은하/행성)의 댓글 수 증가
		if err := tx.Table(containerTable(comment.TargetKind)).
			Where("id = ?", comment.TargetID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).
			Error; err != nil {
			return err
		}

		// User 정보를 Preload하여 다시 조회
		if err := tx.Preload("User").Preload("ReplyToUser").
			First(comment, comment.ID).Error; err != nil {
			return err
		}

		return nil
	})
}

// GetByID 댓글 ID로 조회 (상태 무관, 상태 판단은 서비스에서)
func (r *commentRepository) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.
		Preload("User").
		Preload("ReplyToUser").
		First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetRootPage 최상위 댓글 한 페이지 조회 (최신순)
func (r *commentRepository) GetRootPage(kind model.TargetKind, targetID uint, page, pageSize int) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64

	db := r.db.Model(&model.Comment{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Where("parent_id = ?", 0).
		Where("status = ?", model.CommentStatusActive)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// GetChildren 부모 댓글들의 활성 하위 댓글 일괄 조회 (작성순)
func (r *commentRepository) GetChildren(parentIDs []uint) ([]model.Comment, error) {
	if len(parentIDs) == 0 {
		return []model.Comment{}, nil
	}

	var comments []model.Comment
	if err := r.db.
		Preload("User").
		Preload("ReplyToUser").
		Where("parent_id IN ?", parentIDs).
		Where("status = ?", model.CommentStatusActive).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}

// GetLikedSet 사용자가 좋아요한 댓글 ID 집합 조회
func (r *commentRepository) GetLikedSet(userID uint, commentIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool)
	if len(commentIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	if err := r.db.Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// ToggleLike 좋아요 토글
// 좋아요 행이 있으면 삭제하고 like_count 감소(0 미만 방지),
// 없으면 생성하고 like_count 증가. 전체가 하나의 트랜잭션이다.
// 동시 요청으로 unique constraint에 지면 "이미 좋아요" 결과로 수렴한다.
func (r *commentRepository) ToggleLike(commentID, userID uint) (bool, error) {
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CommentLike{}).
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			// 좋아요 취소
			if err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
				Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Comment{}).
				Where("id = ? AND like_count > 0", commentID).
				UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).
				Error; err != nil {
				return err
			}
			liked = false
			return nil
		}

		// 좋아요 생성
		like := &model.CommentLike{
			CommentID: commentID,
			UserID:    userID,
		}
		if err := tx.Create(like).Error; err != nil {
			if isDuplicateKeyError(err) {
				return errLikeRaceLost
			}
			return err
		}
		if err := tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).
			Error; err != nil {
			return err
		}
		liked = true
		return nil
	})

	if errors.Is(err, errLikeRaceLost) {
		// 동시 요청이 먼저 좋아요를 생성함 (카운터는 그쪽에서 증가됨)
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return liked, nil
}

// isDuplicateKeyError unique constraint 위반 여부 (postgres/sqlite)
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}

// DeleteCascade 댓글 및 하위 댓글 전체 소프트 삭제
// 대상의 부모 reply_count는 1회만 감소시키고, 하위 댓글 삭제 시에는
// 대상 자신의 reply_count를 건드리지 않는다 (통째로 제거되므로).
// 깊이가 3으로 제한되므로 하위 탐색은 최대 두 번이면 충분하다.
// 반환값은 삭제된 댓글 수 (대상 포함)
func (r *commentRepository) DeleteCascade(id uint) (int64, error) {
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			return err
		}
		if comment.Status == model.CommentStatusDeleted {
			// 이미 삭제됨 - 두 번째 호출은 NotFound로 처리
			return gorm.ErrRecordNotFound
		}

		// 대상 삭제
		if err := tx.Model(&model.Comment{}).
			Where("id = ?", comment.ID).
			Update("status", model.CommentStatusDeleted).
			Error; err != nil {
			return err
		}
		total = 1

		// 대상이 부모의 보이는 하위 댓글에서 빠지므로 부모 reply_count 감소
		if comment.ParentID != 0 {
			if err := tx.Model(&model.Comment{}).
				Where("id = ? AND reply_count > 0", comment.ParentID).
				UpdateColumn("reply_count", gorm.Expr("reply_count - ?", 1)).
				Error; err != nil {
				return err
			}
		}

		// 하위 댓글 일괄 삭제 (레벨 상한 3 → 최대 두 세대)
		frontier := []uint{comment.ID}
		for pass := 0; pass < model.CommentMaxLevel-1 && len(frontier) > 0; pass++ {
			var childIDs []uint
			if err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Where("status <> ?", model.CommentStatusDeleted).
				Pluck("id", &childIDs).Error; err != nil {
				return err
			}
			if len(childIDs) == 0 {
				break
			}

			if err := tx.Model(&model.Comment{}).
				Where("id IN ?", childIDs).
				Update("status", model.CommentStatusDeleted).
				Error; err != nil {
				return err
			}

			total += int64(len(childIDs))
			frontier = childIDs
		}

		// 컨테이너 댓글 수를 삭제된 만큼 감소 (음수 방지)
		table := containerTable(comment.TargetKind)
		result := tx.Table(table).
			Where("id = ? AND comment_count >= ?", comment.TargetID, total).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", total))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 카운터가 어긋나 있으면 0으로 바로잡음
			if err := tx.Table(table).
				Where("id = ?", comment.TargetID).
				UpdateColumn("comment_count", 0).
				Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountActiveChildren 활성 하위 댓글 수 조회 (카운터 검증용)
func (r *commentRepository) CountActiveChildren(parentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Where("parent_id = ?", parentID).
		Where("status = ?", model.CommentStatusActive).
		Count(&count).Error
	return count, err
}

// PurgeDeletedBefore 보관 기간이 지난 삭제 댓글을 영구 제거
// 좋아요 행도 함께 제거하며, 제거된 댓글 수를 반환한다
func (r *commentRepository) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	var purged int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&model.Comment{}).
			Where("status = ?", model.CommentStatusDeleted).
			Where("updated_at < ?", cutoff).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("comment_id IN ?", ids).
			Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Where("id IN ?", ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return nil
	})

	if err != nil {
		return 0, err
	}
	return purged, nil
}
