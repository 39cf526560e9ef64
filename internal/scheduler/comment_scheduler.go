package scheduler

import (
	"time"

	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CommentScheduler 삭제 댓글 정리 스케줄러
// soft delete된 댓글은 보존 기간이 지나면 물리 삭제한다
type CommentScheduler struct {
	cron          *cron.Cron
	commentRepo   repository.CommentRepository
	retentionDays int
}

// NewCommentScheduler 댓글 스케줄러 생성
func NewCommentScheduler(commentRepo repository.CommentRepository, retentionDays int) *CommentScheduler {
	return &CommentScheduler{
		cron:          cron.New(),
		commentRepo:   commentRepo,
		retentionDays: retentionDays,
	}
}

// Start 스케줄러 시작
func (s *CommentScheduler) Start() error {
	// 매일 새벽 4시에 보존 기간이 지난 삭제 댓글 정리
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		s.purgeDeletedComments()
	})
	if err != nil {
		logger.Error("Failed to add cron job for comment purge", err)
		return err
	}

	s.cron.Start()
	logger.Info("Comment purge scheduler started", map[string]interface{}{
		"retention_days": s.retentionDays,
	})

	return nil
}

// Stop 스케줄러 중지
func (s *CommentScheduler) Stop() {
	logger.Info("Stopping comment purge scheduler...", nil)
	s.cron.Stop()
}

// purgeDeletedComments 보존 기간이 지난 삭제 댓글 물리 삭제
func (s *CommentScheduler) purgeDeletedComments() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	logger.Info("Starting scheduled comment purge", map[string]interface{}{
		"cutoff": cutoff.Format(time.RFC3339),
	})

	purged, err := s.commentRepo.PurgeDeletedBefore(cutoff)
	if err != nil {
		logger.Error("Failed to purge deleted comments", err)
		return
	}

	logger.Info("Comment purge completed", map[string]interface{}{
		"purged_count": purged,
	})
}
