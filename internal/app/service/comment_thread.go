package service

import (
	"errors"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"gorm.io/gorm"
)

// placement 새 댓글의 구조적 위치
type placement struct {
	level         int   // 깊이 (1~3)
	parentID      uint  // 구조적 부모 ID (0 = 최상위)
	replyToUserID *uint // 답글 대상 사용자
}

// resolvePlacement 새 댓글의 깊이, 구조적 부모, 답글 대상을 계산한다.
//
// 깊이는 min(부모.Level+1, 3)으로 상한이 정해져 있다. 3단계 댓글에 다시
// 답글을 달면 트리를 더 파고들지 않고 공유하는 2단계 조상 밑으로
// 평탄화하며, 누구에게 단 답글인지는 ReplyToUserID로 보존한다.
// Level은 생성 시 한 번만 계산되며 이후 변하지 않는다.
func (s *commentService) resolvePlacement(req *model.CreateCommentRequest) (*placement, error) {
	// 최상위 댓글
	if req.ParentID == 0 {
		return &placement{level: 1, parentID: 0}, nil
	}

	parent, err := s.repo.GetByID(req.ParentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if parent.Status == model.CommentStatusDeleted {
		return nil, ErrParentDeleted
	}
	if parent.TargetKind != req.TargetKind || parent.TargetID != req.TargetID {
		return nil, ErrParentMismatch
	}

	newLevel := parent.Level + 1
	if newLevel > model.CommentMaxLevel {
		newLevel = model.CommentMaxLevel
	}

	// 1~2단계 부모: 부모 밑에 그대로 달린다
	if parent.Level < model.CommentMaxLevel {
		replyTo := parent.UserID
		return &placement{
			level:         newLevel,
			parentID:      parent.ID,
			replyToUserID: &replyTo,
		}, nil
	}

	// 3단계 부모: 공유하는 2단계 조상 밑으로 평탄화
	ancestor, err := s.repo.GetByID(parent.ParentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	// 답글 대상: 명시적으로 지정한 사용자가 존재하면 그 사용자,
	// 아니면 답글을 단 원 댓글의 작성자
	replyTo := parent.UserID
	if req.ReplyToUserID != nil && s.users.UserExists(*req.ReplyToUserID) {
		replyTo = *req.ReplyToUserID
	}

	return &placement{
		level:         newLevel,
		parentID:      ancestor.ID,
		replyToUserID: &replyTo,
	}, nil
}
