package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ikkim/cosmos-backend/internal/app/model"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrTargetNotFound   = errors.New("comment target not found")
	ErrParentDeleted    = errors.New("cannot reply to a deleted comment")
	ErrParentMismatch   = errors.New("parent comment belongs to another target")
	ErrContentEmpty     = errors.New("comment content is empty")
	ErrContentTooLong   = errors.New("comment content is too long")
	ErrInvalidPage      = errors.New("invalid page parameters")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAuthorBanned     = errors.New("author is banned")
)

// UserDirectory 사용자 확인 협력자
type UserDirectory interface {
	UserExists(id uint) bool
	IsBanned(id uint) bool
}

// ContainerDirectory 댓글 대상 컨테이너(은하/행성) 확인 협력자
type ContainerDirectory interface {
	ContainerExists(kind model.TargetKind, id uint) bool
	ContainerOwner(kind model.TargetKind, id uint) (uint, bool)
	CanModerate(userID uint, kind model.TargetKind, id uint) bool
}

// CommentNotifier 댓글 알림 협력자
// 호출은 모두 fire-and-forget이다. 실패해도 댓글 작업은 성공으로 처리된다.
type CommentNotifier interface {
	NotifyReply(receiverID, senderID, commentID uint)
	NotifyLike(receiverID, senderID, commentID uint)
	NotifyNewComment(receiverID, senderID uint, kind model.TargetKind, targetID, commentID uint)
}

// CommentService 댓글 엔진 인터페이스 (은하/행성 공용)
type CommentService interface {
	Publish(req *model.CreateCommentRequest, authorID uint) (*model.CommentView, error)
	List(query *model.CommentListQuery, viewerID *uint) ([]*model.CommentView, int64, error)
	GetDetail(commentID uint, viewerID *uint) (*model.CommentView, error)
	ToggleLike(commentID, userID uint) (bool, error)
	Delete(commentID, requesterID uint) error
}

type commentService struct {
	repo       repository.CommentRepository
	users      UserDirectory
	containers ContainerDirectory
	notifier   CommentNotifier
}

// NewCommentService 댓글 서비스 생성자
func NewCommentService(
	repo repository.CommentRepository,
	users UserDirectory,
	containers ContainerDirectory,
	notifier CommentNotifier,
) CommentService {
	return &commentService{
		repo:       repo,
		users:      users,
		containers: containers,
		notifier:   notifier,
	}
}

// Publish 댓글 작성
// 깊이 계산과 평탄화는 resolvePlacement가, 삽입과 카운터 갱신은
// 저장소 트랜잭션이 담당한다. 알림은 커밋 이후 비동기로 전송한다.
func (s *commentService) Publish(req *model.CreateCommentRequest, authorID uint) (*model.CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > model.CommentMaxContentLen {
		return nil, ErrContentTooLong
	}
	if !req.TargetKind.Valid() {
		return nil, ErrTargetNotFound
	}

	if !s.users.UserExists(authorID) {
		return nil, ErrUserNotFound
	}
	if s.users.IsBanned(authorID) {
		return nil, ErrAuthorBanned
	}
	if !s.containers.ContainerExists(req.TargetKind, req.TargetID) {
		return nil, ErrTargetNotFound
	}

	placement, err := s.resolvePlacement(req)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		TargetKind:    req.TargetKind,
		TargetID:      req.TargetID,
		Content:       content,
		UserID:        authorID,
		Level:         placement.level,
		ParentID:      placement.parentID,
		ReplyToUserID: placement.replyToUserID,
		Status:        model.CommentStatusActive,
	}

	if err := s.repo.Create(comment); err != nil {
		logger.Error("Failed to create comment", err, map[string]interface{}{
			"target_kind": req.TargetKind,
			"target_id":   req.TargetID,
			"author_id":   authorID,
		})
		return nil, err
	}

	go s.notifyPublished(comment)

	view := newCommentView(comment, nil)
	return view, nil
}

// notifyPublished 댓글 작성 알림 전송 (자기 자신에게는 보내지 않음)
func (s *commentService) notifyPublished(comment *model.Comment) {
	if comment.ReplyToUserID != nil && *comment.ReplyToUserID != comment.UserID {
		s.notifier.NotifyReply(*comment.ReplyToUserID, comment.UserID, comment.ID)
	}

	if comment.Level == 1 {
		if ownerID, ok := s.containers.ContainerOwner(comment.TargetKind, comment.TargetID); ok && ownerID != comment.UserID {
			s.notifier.NotifyNewComment(ownerID, comment.UserID, comment.TargetKind, comment.TargetID, comment.ID)
		}
	}
}

// List 댓글 목록 조회 (최상위 최신순 + 하위 작성순 중첩)
func (s *commentService) List(query *model.CommentListQuery, viewerID *uint) ([]*model.CommentView, int64, error) {
	page := query.Page
	if page == 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, ErrInvalidPage
	}
	if !query.TargetKind.Valid() {
		return nil, 0, ErrInvalidPage
	}

	if !s.containers.ContainerExists(query.TargetKind, query.TargetID) {
		return nil, 0, ErrTargetNotFound
	}

	roots, total, err := s.repo.GetRootPage(query.TargetKind, query.TargetID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.assembleTree(roots, viewerID)
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

// GetDetail 단일 댓글 상세 조회 (하위 댓글 포함)
func (s *commentService) GetDetail(commentID uint, viewerID *uint) (*model.CommentView, error) {
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.Status == model.CommentStatusDeleted {
		return nil, ErrCommentNotFound
	}

	views, err := s.assembleTree([]model.Comment{*comment}, viewerID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ToggleLike 댓글 좋아요 토글
func (s *commentService) ToggleLike(commentID, userID uint) (bool, error) {
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCommentNotFound
		}
		return false, err
	}
	if comment.Status == model.CommentStatusDeleted {
		return false, ErrCommentNotFound
	}

	liked, err := s.repo.ToggleLike(commentID, userID)
	if err != nil {
		return false, err
	}

	if liked && comment.UserID != userID {
		go s.notifier.NotifyLike(comment.UserID, userID, commentID)
	}

	return liked, nil
}

// Delete 댓글 삭제 (하위 댓글까지 전파)
// 작성자 본인 또는 대상 컨테이너의 관리 권한자만 삭제할 수 있다
func (s *commentService) Delete(commentID, requesterID uint) error {
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.Status == model.CommentStatusDeleted {
		return ErrCommentNotFound
	}

	if comment.UserID != requesterID &&
		!s.containers.CanModerate(requesterID, comment.TargetKind, comment.TargetID) {
		return ErrPermissionDenied
	}

	deleted, err := s.repo.DeleteCascade(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 동시 삭제 요청이 먼저 처리됨
			return ErrCommentNotFound
		}
		return err
	}

	logger.Info("Comment deleted", map[string]interface{}{
		"comment_id":    commentID,
		"requester_id":  requesterID,
		"deleted_count": deleted,
	})

	return nil
}
