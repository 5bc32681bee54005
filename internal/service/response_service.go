package service

import (
	"context"
	"errors"
	"estudo_backend/internal/model"
	"estudo_backend/internal/util"
	"estudo_backend/pkg/logger"
	"estudo_backend/pkg/monitoring"
	"estudo_backend/pkg/tracing"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ResponseStore is the append-only attempt log the service reads and writes.
type ResponseStore interface {
	Submit(ctx context.Context, record *model.AttemptRecord) (int64, error)
	ListAll(ctx context.Context, page, limit int) ([]model.AttemptRecord, error)
	ListForUser(ctx context.Context, userID uint, limit int) ([]model.AttemptRecord, error)
	PerformanceSnapshot(ctx context.Context, userID uint, recentLimit int) (*model.PerformanceSnapshot, error)
}

// ProgressStore recomputes a user's progress from the attempt log.
type ProgressStore interface {
	Progress(ctx context.Context, userID uint) (*model.ProgressReport, *model.ProgressSummary, error)
}

const (
	DefaultUserResponsesLimit = 20
	MaxUserResponsesLimit     = 100
)

// SubmitResponseInput 提交答题记录的输入
type SubmitResponseInput struct {
	UserID           uint
	QuestionID       string
	QuestionText     string
	UserAnswer       string
	CorrectAnswer    string
	IsCorrect        bool
	Subject          string
	Topic            *string
	Difficulty       *string
	TimeSpentSeconds *int
}

// SubmitResult is what a successful submit reports back.
type SubmitResult struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"userId"`
	QuestionID     string `json:"questionId"`
	TotalResponses int64  `json:"totalResponses"`
}

type ResponseService struct {
	Store    ResponseStore
	Progress ProgressStore
}

func NewResponseService(store ResponseStore, progress ProgressStore) *ResponseService {
	return &ResponseService{
		Store:    store,
		Progress: progress,
	}
}

func (in *SubmitResponseInput) validate() error {
	if in.UserID == 0 {
		return util.Validation("userId is required")
	}
	in.QuestionID = strings.TrimSpace(in.QuestionID)
	if in.QuestionID == "" {
		return util.Validation("questionId is required")
	}
	in.Subject = strings.TrimSpace(in.Subject)
	if in.Subject == "" {
		return util.Validation("subject is required")
	}
	if in.TimeSpentSeconds != nil && *in.TimeSpentSeconds < 0 {
		return util.Validation("timeSpentSeconds must be greater than or equal to 0")
	}
	in.Topic = util.NilIfBlank(in.Topic)
	in.Difficulty = util.NilIfBlank(in.Difficulty)
	return nil
}

// Submit validates the attempt and persists it with the summary update.
func (s *ResponseService) Submit(ctx context.Context, in SubmitResponseInput) (*SubmitResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "ResponseService.Submit", in.UserID)
	record := &model.AttemptRecord{
		UserID:           in.UserID,
		QuestionID:       in.QuestionID,
		QuestionText:     in.QuestionText,
		UserAnswer:       in.UserAnswer,
		CorrectAnswer:    in.CorrectAnswer,
		IsCorrect:        in.IsCorrect,
		Subject:          in.Subject,
		Topic:            in.Topic,
		Difficulty:       in.Difficulty,
		TimeSpentSeconds: in.TimeSpentSeconds,
	}

	total, err := s.Store.Submit(ctx, record)
	err = util.StorageFailure(err)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	monitoring.AttemptsSubmitted.WithLabelValues(record.Subject, strconv.FormatBool(record.IsCorrect)).Inc()
	logger.Log.Debug("attempt saved",
		zap.Uint("userId", record.UserID),
		zap.String("questionId", record.QuestionID),
		zap.Int64("totalResponses", total),
	)

	return &SubmitResult{
		ID:             record.ID,
		UserID:         record.UserID,
		QuestionID:     record.QuestionID,
		TotalResponses: total,
	}, nil
}

// ListAll returns all attempts newest first; limit 0 returns every row.
func (s *ResponseService) ListAll(ctx context.Context, page, limit int) ([]model.AttemptRecord, error) {
	if limit < 0 {
		return nil, util.Validation("limit must be positive")
	}
	if page < 1 {
		return nil, util.Validation("page must be positive")
	}
	if limit > MaxUserResponsesLimit {
		limit = MaxUserResponsesLimit
	}
	records, err := s.Store.ListAll(ctx, page, limit)
	if err != nil {
		return nil, util.StorageFailure(err)
	}
	return records, nil
}

// ListForUser returns the user's most recent attempts. limit is clamped to
// [1, MaxUserResponsesLimit]; zero selects the default.
func (s *ResponseService) ListForUser(ctx context.Context, userID uint, limit int) ([]model.AttemptRecord, error) {
	if limit < 0 {
		return nil, util.Validation("limit must be positive")
	}
	if limit == 0 {
		limit = DefaultUserResponsesLimit
	}
	if limit > MaxUserResponsesLimit {
		limit = MaxUserResponsesLimit
	}

	records, err := s.Store.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, util.StorageFailure(err)
	}
	return records, nil
}

// GetProgress recomputes the user's progress from the attempt log.
func (s *ResponseService) GetProgress(ctx context.Context, userID uint) (*model.ProgressReport, error) {
	ctx, span := tracing.StartSpan(ctx, "ResponseService.GetProgress", userID)
	report, summary, err := s.Progress.Progress(ctx, userID)
	err = util.StorageFailure(err)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	if summary != nil && (summary.TotalQuestions != report.TotalQuestoes || summary.CorrectCount != report.Acertos) {
		logger.Log.Warn("progress summary diverged from attempt log",
			zap.Uint("userId", userID),
			zap.Int64("summaryTotal", summary.TotalQuestions),
			zap.Int64("liveTotal", report.TotalQuestoes),
			zap.Int64("summaryCorrect", summary.CorrectCount),
			zap.Int64("liveCorrect", report.Acertos),
		)
	}
	return report, nil
}

// GetPerformance builds the user's performance report. Any failure after
// the user check is reported as an aggregation failure with no partial data.
func (s *ResponseService) GetPerformance(ctx context.Context, userID uint) (*model.PerformanceReport, error) {
	ctx, span := tracing.StartSpan(ctx, "ResponseService.GetPerformance", userID)

	snapshot, err := s.Store.PerformanceSnapshot(ctx, userID, util.RecentResponsesLimit)
	if err != nil {
		if !errors.Is(err, util.ErrNotFound) {
			err = util.Wrap(util.ErrAggregation, err)
		}
		tracing.EndSpan(span, err)
		monitoring.PerformanceReports.WithLabelValues("error").Inc()
		return nil, err
	}

	report := BuildPerformanceReport(snapshot)
	tracing.EndSpan(span, nil)
	monitoring.PerformanceReports.WithLabelValues("ok").Inc()
	return report, nil
}
