package repository

import (
	"context"
	"errors"
	"estudo_backend/internal/model"
	"estudo_backend/internal/util"
	"strconv"

	"gorm.io/gorm"
)

// ResponseRepository is the append-only store of attempt records.
type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// Submit inserts the record and updates the user's progress summary in one
// transaction. It returns the user's attempt count after the insert.
func (r *ResponseRepository) Submit(ctx context.Context, record *model.AttemptRecord) (int64, error) {
	var total int64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := userExists(tx, record.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return util.ErrUserNotFound
		}

		if record.Topic == nil {
			topic, err := questionTopic(tx, record.QuestionID)
			if err != nil {
				return err
			}
			record.Topic = topic
		}

		if err := tx.Create(record).Error; err != nil {
			return err
		}

		totals, err := applyAttempt(tx, record.UserID, record.IsCorrect)
		if err != nil {
			return err
		}
		total = totals.Total
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// questionTopic returns the referenced question's topic, or nil when the id
// is not numeric, the question is unknown, or it has no topic.
func questionTopic(tx *gorm.DB, questionID string) (*string, error) {
	id, err := strconv.ParseUint(questionID, 10, 64)
	if err != nil {
		return nil, nil
	}

	var q model.Question
	err = tx.Select("id", "topic").First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return util.NilIfBlank(q.Topic), nil
}

func recencyOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// ListAll returns every record, newest first. limit <= 0 disables paging.
func (r *ResponseRepository) ListAll(ctx context.Context, page, limit int) ([]model.AttemptRecord, error) {
	records := make([]model.AttemptRecord, 0)
	query := recencyOrder(r.DB.WithContext(ctx))
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListForUser returns the user's most recent limit records, newest first.
func (r *ResponseRepository) ListForUser(ctx context.Context, userID uint, limit int) ([]model.AttemptRecord, error) {
	records := make([]model.AttemptRecord, 0)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := userExists(tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return util.ErrUserNotFound
		}
		return recencyOrder(tx).
			Where("user_id = ?", userID).
			Limit(limit).
			Find(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// PerformanceSnapshot reads every group the performance report needs within
// one transaction so the parts agree with each other.
func (r *ResponseRepository) PerformanceSnapshot(ctx context.Context, userID uint, recentLimit int) (*model.PerformanceSnapshot, error) {
	snapshot := &model.PerformanceSnapshot{
		SubjectTopics: make([]model.SubjectTopicCount, 0),
		Difficulties:  make([]model.DifficultyCount, 0),
		Recent:        make([]model.RecentResponse, 0),
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := userExists(tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return util.ErrUserNotFound
		}

		if err := tx.Model(&model.AttemptRecord{}).
			Select("subject, topic, COUNT(*) AS total_responses, "+correctSumExpr+" AS correct_responses").
			Where("user_id = ?", userID).
			Group("subject, topic").
			Order("subject").
			Scan(&snapshot.SubjectTopics).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.AttemptRecord{}).
			Select("difficulty, COUNT(*) AS total_responses, "+correctSumExpr+" AS correct_responses").
			Where("user_id = ? AND difficulty IS NOT NULL", userID).
			Group("difficulty").
			Order("difficulty").
			Scan(&snapshot.Difficulties).Error; err != nil {
			return err
		}

		return recencyOrder(tx.Model(&model.AttemptRecord{})).
			Select("id, question_text, is_correct, subject, created_at").
			Where("user_id = ?", userID).
			Limit(recentLimit).
			Scan(&snapshot.Recent).Error
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
