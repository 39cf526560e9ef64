package service

import (
	"github.com/ikkim/cosmos-backend/internal/app/model"
)

// assembleTree 평면 저장 행으로부터 중첩된 댓글 뷰를 조립한다.
//
// 루트 목록을 받아 `parent_id IN` 일괄 조회 두 번으로 2단계와 3단계
// 하위 댓글을 모두 가져온다. 깊이 상한이 3이므로 조회 횟수는 페이지
// 크기와 무관하게 고정이다. viewerID가 있으면 좋아요 여부를 한 번에
// 조회해 각 뷰에 채워 넣는다.
func (s *commentService) assembleTree(roots []model.Comment, viewerID *uint) ([]*model.CommentView, error) {
	if len(roots) == 0 {
		return []*model.CommentView{}, nil
	}

	allIDs := make([]uint, 0, len(roots))
	frontier := make([]uint, 0, len(roots))
	for i := range roots {
		allIDs = append(allIDs, roots[i].ID)
		frontier = append(frontier, roots[i].ID)
	}

	childrenByParent := make(map[uint][]model.Comment)
	for pass := 0; pass < model.CommentMaxLevel-1 && len(frontier) > 0; pass++ {
		children, err := s.repo.GetChildren(frontier)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, child := range children {
			childrenByParent[child.ParentID] = append(childrenByParent[child.ParentID], child)
			allIDs = append(allIDs, child.ID)
			frontier = append(frontier, child.ID)
		}
	}

	liked := map[uint]bool{}
	if viewerID != nil {
		var err error
		liked, err = s.repo.GetLikedSet(*viewerID, allIDs)
		if err != nil {
			return nil, err
		}
	}

	views := make([]*model.CommentView, 0, len(roots))
	for i := range roots {
		views = append(views, buildView(&roots[i], childrenByParent, liked))
	}
	return views, nil
}

// buildView 댓글 하나의 뷰를 만들고 하위 댓글 뷰를 붙인다
// 하위 댓글은 저장소에서 작성순으로 정렬되어 온다
func buildView(comment *model.Comment, childrenByParent map[uint][]model.Comment, liked map[uint]bool) *model.CommentView {
	view := newCommentView(comment, liked)

	children := childrenByParent[comment.ID]
	for i := range children {
		view.Replies = append(view.Replies, buildView(&children[i], childrenByParent, liked))
	}
	return view
}

// newCommentView 댓글 모델을 응답 뷰로 변환 (Replies는 항상 빈 배열로 시작)
func newCommentView(comment *model.Comment, liked map[uint]bool) *model.CommentView {
	return &model.CommentView{
		ID:            comment.ID,
		TargetKind:    comment.TargetKind,
		TargetID:      comment.TargetID,
		Content:       comment.Content,
		Level:         comment.Level,
		ParentID:      comment.ParentID,
		User:          comment.User,
		ReplyToUserID: comment.ReplyToUserID,
		ReplyToUser:   comment.ReplyToUser,
		LikeCount:     comment.LikeCount,
		ReplyCount:    comment.ReplyCount,
		IsLiked:       liked[comment.ID],
		CreatedAt:     comment.CreatedAt,
		Replies:       []*model.CommentView{},
	}
}
